// Package format turns calculator results into display lines. Rounding is
// a presentation concern and lives only here.
package format

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"plc-tools/plc-config/calc"
	"plc-tools/plc-config/units"
)

// Line is one labelled value in a result panel.
type Line struct {
	Label string
	Value string
}

// Fixed rounds half away from zero to places decimals.
func Fixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(places)
}

// AnalogLines lays out an analog result for display.
func AnalogLines(r calc.AnalogResult) []Line {
	return []Line{
		{Label: "Gain", Value: Fixed(r.Gain, 4)},
		{Label: "Offset", Value: Fixed(r.Offset, 4)},
		{Label: "Cutoff (threshold)", Value: strconv.FormatInt(r.CutoffThreshold, 10)},
		{Label: "Integrator gain", Value: Fixed(r.IntegratorGain, 4)},
	}
}

// AnalogPreview shows the engineering value the module will report at the
// minimum, mid-span and maximum loop current.
func AnalogPreview(in calc.AnalogInput, r calc.AnalogResult) []Line {
	mid := (in.CurrentMinMA + in.CurrentMaxMA) / 2
	var lines []Line
	for _, mA := range []float64{in.CurrentMinMA, mid, in.CurrentMaxMA} {
		v := calc.ShuntVoltage(in.ResistanceOhm, mA)
		lines = append(lines, Line{
			Label: fmt.Sprintf("%s mA (%s V)", Fixed(mA, 2), Fixed(v, 3)),
			Value: Fixed(r.Engineering(v), 2),
		})
	}
	return lines
}

// DigitalLines lays out a digital result for display.
func DigitalLines(r calc.DigitalResult) []Line {
	unit := r.UnitName
	return []Line{
		{Label: "Ratio K", Value: Fixed(r.RatioK, 2)},
		{Label: "Pulse weight", Value: Fixed(r.PulseWeight, 6)},
		{Label: "Frequency", Value: Fixed(r.FrequencyHz, 4) + " Hz"},
		{Label: "Period", Value: Fixed(r.PeriodMs, 2) + " ms"},
		{Label: "ON/OFF time", Value: Fixed(r.OnOffTimeMs, 2) + " ms"},
		{Label: "Hourly rate", Value: fmt.Sprintf("%s %s/h", Fixed(r.HourlyRate, 2), unit)},
		{Label: "Windowed quantity", Value: fmt.Sprintf("%s %s", Fixed(r.WindowedQuantity, 4), unit)},
	}
}

// Error renders a calculation or input failure as one user-readable line.
func Error(err error) string {
	var ierr *calc.InputError
	var uerr *units.UnknownUnitError
	switch {
	case errors.As(err, &uerr):
		return fmt.Sprintf("Unknown unit: %q is not a valid %s", uerr.Label, uerr.Table)
	case errors.As(err, &ierr) && errors.Is(err, calc.ErrDivisionByZero):
		return fmt.Sprintf("Division by zero: %s (check %s)", ierr.Reason, fieldList(ierr.Fields))
	case errors.As(err, &ierr) && errors.Is(err, calc.ErrInvalidRange):
		return fmt.Sprintf("Invalid range: %s (check %s)", ierr.Reason, fieldList(ierr.Fields))
	case errors.As(err, &ierr):
		return fmt.Sprintf("Error: %s (check %s)", ierr.Reason, fieldList(ierr.Fields))
	default:
		return "Error: " + err.Error()
	}
}

func fieldList(fields []string) string {
	return strings.Join(fields, ", ")
}
