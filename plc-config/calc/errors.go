package calc

import (
	"errors"
	"fmt"
	"strings"

	"plc-tools/plc-config/units"
)

// ErrInvalidRange is returned when an ordering or positivity constraint on the inputs is violated.
var ErrInvalidRange = errors.New("invalid range")

// ErrDivisionByZero is returned when a derived denominator is exactly zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrUnknownUnit is returned when a scale or time base is outside its table.
var ErrUnknownUnit = units.ErrUnknownUnit

// Input field names carried by InputError.
const (
	FieldResistance    = "resistance_ohm"
	FieldCurrentMin    = "current_min_mA"
	FieldCurrentMax    = "current_max_mA"
	FieldScaleMin      = "scale_min"
	FieldScaleMax      = "scale_max"
	FieldInputTimeBase = "input_time_base"
	FieldInputScale    = "input_scale"
	FieldOutputScale   = "output_scale"

	FieldCTPrimary     = "ct_primary"
	FieldCTSecondary   = "ct_secondary"
	FieldVTPrimary     = "vt_primary"
	FieldVTSecondary   = "vt_secondary"
	FieldPulsesPerUnit = "pulses_per_unit"
	FieldInstantaneous = "instantaneous_value"
	FieldWindowMinutes = "derivative_window_minutes"
)

// InputError tags a calculation failure with its kind and the offending
// fields. Kind is one of the sentinels above, or a *units.UnknownUnitError.
type InputError struct {
	Kind   error
	Fields []string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v: %s [%s]", e.Kind, e.Reason, strings.Join(e.Fields, ", "))
}

func (e *InputError) Unwrap() error { return e.Kind }

func invalidRange(reason string, fields ...string) error {
	return &InputError{Kind: ErrInvalidRange, Fields: fields, Reason: reason}
}

func divisionByZero(reason string, fields ...string) error {
	return &InputError{Kind: ErrDivisionByZero, Fields: fields, Reason: reason}
}

// unitError names the input field that carried an out-of-table unit.
func unitError(field string, err error) error {
	return &InputError{Kind: err, Fields: []string{field}, Reason: "not in the unit table"}
}
