// Package calc computes PLC input-module configuration values. Both
// calculators are pure functions of their input records.
package calc

import (
	"math"

	"plc-tools/plc-config/units"
)

// cutoffCountsPerVolt converts the minimum loop voltage into the module's
// fixed-point cutoff register.
const cutoffCountsPerVolt = 10000.0 / 24.0

// AnalogInput describes a current-loop transmitter read across a shunt.
type AnalogInput struct {
	ResistanceOhm float64
	CurrentMinMA  float64
	CurrentMaxMA  float64
	ScaleMin      float64
	ScaleMax      float64
	InputTimeBase units.TimeBase
	InputScale    units.Scale
	OutputScale   units.Scale
}

// AnalogResult is the module configuration for an analog channel.
type AnalogResult struct {
	Gain            float64
	Offset          float64
	CutoffThreshold int64
	IntegratorGain  float64
	VoltageMin      float64
	VoltageMax      float64
}

// ShuntVoltage returns the drop in volts of currentMA across resistanceOhm.
func ShuntVoltage(resistanceOhm, currentMA float64) float64 {
	return resistanceOhm * currentMA / 1000
}

// ComputeAnalog derives gain, offset, cutoff and integrator gain for a channel.
func ComputeAnalog(in AnalogInput) (AnalogResult, error) {
	if !(in.ResistanceOhm > 0) {
		return AnalogResult{}, invalidRange("shunt resistance must be positive", FieldResistance)
	}
	if !(in.CurrentMaxMA > in.CurrentMinMA) {
		return AnalogResult{}, invalidRange("maximum current must exceed minimum current", FieldCurrentMin, FieldCurrentMax)
	}

	kTime, err := in.InputTimeBase.Factor()
	if err != nil {
		return AnalogResult{}, unitError(FieldInputTimeBase, err)
	}
	inMul, err := in.InputScale.Multiplier()
	if err != nil {
		return AnalogResult{}, unitError(FieldInputScale, err)
	}
	outMul, err := in.OutputScale.Multiplier()
	if err != nil {
		return AnalogResult{}, unitError(FieldOutputScale, err)
	}

	vMin := ShuntVoltage(in.ResistanceOhm, in.CurrentMinMA)
	vMax := ShuntVoltage(in.ResistanceOhm, in.CurrentMaxMA)
	if vMax == vMin {
		return AnalogResult{}, divisionByZero("voltage span is zero", FieldResistance, FieldCurrentMin, FieldCurrentMax)
	}

	gain := (in.ScaleMax - in.ScaleMin) / (vMax - vMin)
	if gain == 0 {
		return AnalogResult{}, divisionByZero("scale span is zero", FieldScaleMin, FieldScaleMax)
	}
	// The module adds offset before applying gain, so it is expressed in volts.
	offset := in.ScaleMin/gain - vMin

	return AnalogResult{
		Gain:            gain,
		Offset:          offset,
		CutoffThreshold: int64(math.Trunc(cutoffCountsPerVolt * vMin)),
		IntegratorGain:  float64(kTime) * (inMul / outMul),
		VoltageMin:      vMin,
		VoltageMax:      vMax,
	}, nil
}

// Engineering applies the configured map to a measured voltage.
func (r AnalogResult) Engineering(volts float64) float64 {
	return (volts + r.Offset) * r.Gain
}
