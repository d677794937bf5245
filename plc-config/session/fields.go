package session

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"plc-tools/plc-config/calc"
	"plc-tools/plc-config/units"
)

// ErrUnknownField is returned by Set for a name the calculator does not have.
var ErrUnknownField = errors.New("unknown field")

// field is one editable form value of a calculator input record.
type field[T any] struct {
	Name  string
	Alias string
	set   func(in *T, v string) error
	get   func(in *T) string
}

func numeric[T any](name, alias string, ptr func(*T) *float64) field[T] {
	return field[T]{
		Name:  name,
		Alias: alias,
		set: func(in *T, v string) error {
			f, err := parseNumber(v)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			*ptr(in) = f
			return nil
		},
		get: func(in *T) string { return strconv.FormatFloat(*ptr(in), 'g', -1, 64) },
	}
}

func scale[T any](name, alias string, ptr func(*T) *units.Scale) field[T] {
	return field[T]{
		Name:  name,
		Alias: alias,
		set: func(in *T, v string) error {
			s, err := units.ParseScale(v)
			if err != nil {
				return err
			}
			*ptr(in) = s
			return nil
		},
		get: func(in *T) string { return ptr(in).String() },
	}
}

// parseNumber accepts a decimal comma as well as a point.
func parseNumber(v string) (float64, error) {
	f, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(v), ",", ".", 1), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a finite number", v)
	}
	return f, nil
}

var analogFields = []field[calc.AnalogInput]{
	numeric(calc.FieldResistance, "r", func(in *calc.AnalogInput) *float64 { return &in.ResistanceOhm }),
	numeric(calc.FieldCurrentMin, "imin", func(in *calc.AnalogInput) *float64 { return &in.CurrentMinMA }),
	numeric(calc.FieldCurrentMax, "imax", func(in *calc.AnalogInput) *float64 { return &in.CurrentMaxMA }),
	numeric(calc.FieldScaleMin, "smin", func(in *calc.AnalogInput) *float64 { return &in.ScaleMin }),
	numeric(calc.FieldScaleMax, "smax", func(in *calc.AnalogInput) *float64 { return &in.ScaleMax }),
	{
		Name:  calc.FieldInputTimeBase,
		Alias: "time",
		set: func(in *calc.AnalogInput, v string) error {
			tb, err := units.ParseTimeBase(v)
			if err != nil {
				return err
			}
			in.InputTimeBase = tb
			return nil
		},
		get: func(in *calc.AnalogInput) string { return in.InputTimeBase.String() },
	},
	scale(calc.FieldInputScale, "in", func(in *calc.AnalogInput) *units.Scale { return &in.InputScale }),
	scale(calc.FieldOutputScale, "out", func(in *calc.AnalogInput) *units.Scale { return &in.OutputScale }),
}

var digitalFields = []field[calc.DigitalInput]{
	numeric(calc.FieldCTPrimary, "ctp", func(in *calc.DigitalInput) *float64 { return &in.CTPrimary }),
	numeric(calc.FieldCTSecondary, "cts", func(in *calc.DigitalInput) *float64 { return &in.CTSecondary }),
	numeric(calc.FieldVTPrimary, "vtp", func(in *calc.DigitalInput) *float64 { return &in.VTPrimary }),
	numeric(calc.FieldVTSecondary, "vts", func(in *calc.DigitalInput) *float64 { return &in.VTSecondary }),
	numeric(calc.FieldPulsesPerUnit, "pulses", func(in *calc.DigitalInput) *float64 { return &in.PulsesPerUnit }),
	numeric(calc.FieldInstantaneous, "rate", func(in *calc.DigitalInput) *float64 { return &in.InstantaneousValue }),
	numeric(calc.FieldWindowMinutes, "window", func(in *calc.DigitalInput) *float64 { return &in.DerivativeWindowMinutes }),
	scale(calc.FieldOutputScale, "out", func(in *calc.DigitalInput) *units.Scale { return &in.OutputScale }),
	{
		Name:  "unit_name",
		Alias: "unit",
		set: func(in *calc.DigitalInput, v string) error {
			in.UnitName = strings.TrimSpace(v)
			return nil
		},
		get: func(in *calc.DigitalInput) string { return in.UnitName },
	},
}

func lookupField[T any](fields []field[T], name string) (field[T], bool) {
	n := strings.ToLower(name)
	for _, f := range fields {
		if n == strings.ToLower(f.Name) || n == f.Alias {
			return f, true
		}
	}
	return field[T]{}, false
}

// Param is a field name and its current value, for display.
type Param struct {
	Name  string
	Alias string
	Value string
}

func params[T any](fields []field[T], in T) []Param {
	out := make([]Param, 0, len(fields))
	for _, f := range fields {
		out = append(out, Param{Name: f.Name, Alias: f.Alias, Value: f.get(&in)})
	}
	return out
}
