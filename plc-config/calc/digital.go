package calc

import (
	"math"

	"plc-tools/plc-config/units"
)

const (
	secondsPerHour = 3600
	minutesPerHour = 60
)

// DigitalInput describes a pulse output metered behind CT/VT transformers.
type DigitalInput struct {
	CTPrimary               float64
	CTSecondary             float64
	VTPrimary               float64
	VTSecondary             float64
	PulsesPerUnit           float64
	InstantaneousValue      float64 // unit per hour
	DerivativeWindowMinutes float64
	OutputScale             units.Scale
	UnitName                string
}

// DigitalResult is the counter configuration for a pulse input.
type DigitalResult struct {
	RatioK           float64
	PulseWeightBase  float64
	PulseWeight      float64
	FrequencyHz      float64
	PeriodMs         float64
	OnOffTimeMs      float64
	WindowedQuantity float64
	HourlyRate       float64
	UnitName         string
}

// ComputeDigital derives the pulse weight and timing for a counter input. A
// non-positive instantaneous value leaves the timing fields at zero.
func ComputeDigital(in DigitalInput) (DigitalResult, error) {
	for _, t := range []struct {
		field string
		value float64
	}{
		{FieldCTPrimary, in.CTPrimary},
		{FieldCTSecondary, in.CTSecondary},
		{FieldVTPrimary, in.VTPrimary},
		{FieldVTSecondary, in.VTSecondary},
	} {
		if !(t.value >= 1) {
			return DigitalResult{}, invalidRange("transformer ratio terms must be at least 1", t.field)
		}
	}
	if in.PulsesPerUnit == 0 {
		return DigitalResult{}, divisionByZero("pulses per unit is zero", FieldPulsesPerUnit)
	}
	if math.IsNaN(in.PulsesPerUnit) || math.IsInf(in.PulsesPerUnit, 0) {
		return DigitalResult{}, invalidRange("pulses per unit must be a finite number", FieldPulsesPerUnit)
	}
	if !(in.DerivativeWindowMinutes > 0) {
		return DigitalResult{}, invalidRange("derivative window must be positive", FieldWindowMinutes)
	}
	outMul, err := in.OutputScale.Multiplier()
	if err != nil {
		return DigitalResult{}, unitError(FieldOutputScale, err)
	}

	ratio := (in.CTPrimary / in.CTSecondary) * (in.VTPrimary / in.VTSecondary)
	weight := ratio / in.PulsesPerUnit

	res := DigitalResult{
		RatioK:          ratio,
		PulseWeightBase: weight,
		// a finer output unit needs a larger number for the same weight
		PulseWeight: weight / outMul,
		HourlyRate:  in.InstantaneousValue,
		UnitName:    in.UnitName,
	}
	if in.InstantaneousValue > 0 {
		res.FrequencyHz = in.InstantaneousValue / (weight * secondsPerHour)
		res.PeriodMs = (1 / res.FrequencyHz) * 1000
		res.OnOffTimeMs = res.PeriodMs / 2
	}
	res.WindowedQuantity = (in.InstantaneousValue / minutesPerHour) * in.DerivativeWindowMinutes
	return res, nil
}
