package format

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plc-tools/plc-config/calc"
	"plc-tools/plc-config/units"
)

func TestFixed(t *testing.T) {
	assert.Equal(t, "0.9259", Fixed(1000.0/1080.0, 4))
	assert.Equal(t, "1080.00", Fixed(1080.0000000000002, 2))
	assert.Equal(t, "-0.8000", Fixed(-0.8, 4))
	assert.Equal(t, "5.5", Fixed(5.45, 1))
	assert.Equal(t, "3", Fixed(2.5, 0))
	assert.Equal(t, "NaN", Fixed(math.NaN(), 2))
	assert.Equal(t, "+Inf", Fixed(math.Inf(1), 2))
}

func TestAnalogLines(t *testing.T) {
	res := calc.AnalogResult{Gain: 625, Offset: -0.8, CutoffThreshold: 333, IntegratorGain: 0.06}

	lines := AnalogLines(res)
	require.Len(t, lines, 4)
	assert.Equal(t, Line{Label: "Gain", Value: "625.0000"}, lines[0])
	assert.Equal(t, "-0.8000", lines[1].Value)
	assert.Equal(t, "333", lines[2].Value)
	assert.Equal(t, "0.0600", lines[3].Value)
}

func TestAnalogPreview(t *testing.T) {
	in := calc.AnalogInput{
		ResistanceOhm: 200, CurrentMinMA: 4, CurrentMaxMA: 20,
		ScaleMin: 0, ScaleMax: 2000,
	}
	res, err := calc.ComputeAnalog(in)
	require.NoError(t, err)

	lines := AnalogPreview(in, res)
	require.Len(t, lines, 3)
	assert.Equal(t, "4.00 mA (0.800 V)", lines[0].Label)
	assert.Equal(t, "0.00", lines[0].Value)
	assert.Equal(t, "12.00 mA (2.400 V)", lines[1].Label)
	assert.Equal(t, "1000.00", lines[1].Value)
	assert.Equal(t, "2000.00", lines[2].Value)
}

func TestDigitalLines(t *testing.T) {
	res := calc.DigitalResult{
		RatioK: 3000, PulseWeight: 0.3, FrequencyHz: 1000.0 / 1080.0,
		PeriodMs: 1080, OnOffTimeMs: 540, WindowedQuantity: 1000.0 / 60,
		HourlyRate: 1000, UnitName: "kWh",
	}

	lines := DigitalLines(res)
	want := map[string]string{
		"Ratio K":           "3000.00",
		"Pulse weight":      "0.300000",
		"Frequency":         "0.9259 Hz",
		"Period":            "1080.00 ms",
		"ON/OFF time":       "540.00 ms",
		"Hourly rate":       "1000.00 kWh/h",
		"Windowed quantity": "16.6667 kWh",
	}
	require.Len(t, lines, len(want))
	for _, l := range lines {
		assert.Equal(t, want[l.Label], l.Value, l.Label)
	}
}

func TestError(t *testing.T) {
	_, err := calc.ComputeDigital(calc.DigitalInput{
		CTPrimary: 1, CTSecondary: 1, VTPrimary: 1, VTSecondary: 1,
		DerivativeWindowMinutes: 1,
	})
	assert.Equal(t, "Division by zero: pulses per unit is zero (check pulses_per_unit)", Error(err))

	_, err = calc.ComputeAnalog(calc.AnalogInput{ResistanceOhm: 200, CurrentMinMA: 4, CurrentMaxMA: 4})
	assert.Equal(t, "Invalid range: maximum current must exceed minimum current (check current_min_mA, current_max_mA)", Error(err))

	_, err = units.ParseScale("dozens")
	assert.Equal(t, `Unknown unit: "dozens" is not a valid scale`, Error(err))

	assert.Equal(t, "Error: boom", Error(errors.New("boom")))
}
