package script

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plc-tools/plc-config/session"
)

const commissioning = `
# pump station flow transmitter
analog
set r 200
set smax 2000
set time minute
set out thousands
calc

# energy meter on the MV feeder
digital
set ctp 100
set cts 5
set vtp 15000
set vts 100
calc
`

func TestRun_Commissioning(t *testing.T) {
	var out bytes.Buffer
	failed, err := Run(strings.NewReader(commissioning), &out, session.New(nil), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, failed)

	text := out.String()
	assert.Contains(t, text, "[analog]")
	assert.Contains(t, text, "625.0000")
	assert.Contains(t, text, "-0.8000")
	assert.Contains(t, text, "333")
	assert.Contains(t, text, "0.0600")
	assert.Contains(t, text, "[digital]")
	assert.Contains(t, text, "3000.00")
	assert.Contains(t, text, "0.9259 Hz")
	assert.Contains(t, text, "1080.00 ms")
	assert.Contains(t, text, "540.00 ms")
	assert.Contains(t, text, "16.6667 kWh")
}

func TestRun_ErrorsDoNotStopScript(t *testing.T) {
	src := `analog
set smin 500
set smax 500
calc
set smax 900
calc
digital
set pulses 0
calc
bogus
`
	var out bytes.Buffer
	failed, err := Run(strings.NewReader(src), &out, session.New(nil), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, failed)

	text := out.String()
	assert.Contains(t, text, "line 4: Division by zero: scale span is zero")
	assert.Contains(t, text, "[analog]")
	assert.Contains(t, text, "line 9: Division by zero: pulses per unit is zero")
	assert.Contains(t, text, "line 10: Error: unknown command 'bogus'")
}

func TestRun_QuiescentMeter(t *testing.T) {
	src := "digital\nset rate 0\ncalc\n"
	var out bytes.Buffer
	failed, err := Run(strings.NewReader(src), &out, session.New(nil), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, failed)
	assert.Contains(t, out.String(), "0.0000 Hz")
	assert.Contains(t, out.String(), "0.00 ms")
}

func TestRun_ShowAndQuit(t *testing.T) {
	src := "digital\nshow\nquit\ncalc\n"
	var out bytes.Buffer
	_, err := Run(strings.NewReader(src), &out, session.New(nil), nil)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "[digital form]")
	assert.Contains(t, text, "pulses_per_unit (pulses):")
	assert.NotContains(t, text, "Ratio K")
}

func TestRun_HelpListsCommands(t *testing.T) {
	var out bytes.Buffer
	failed, err := Run(strings.NewReader("help\n"), &out, session.New(nil), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, failed)
	assert.Contains(t, out.String(), "set <field> <value>")
	assert.Contains(t, out.String(), "quit")
}

func TestRun_PreviewUsesComputedForm(t *testing.T) {
	src := "analog\ncalc\nset r 250\nshow\n"
	var out bytes.Buffer
	s := session.New(nil)
	_, err := Run(strings.NewReader(src), &out, s, nil)
	require.NoError(t, err)

	var again bytes.Buffer
	writeResult(&again, session.Analog, s.Snapshot())
	assert.Contains(t, again.String(), "4.00 mA (0.800 V):")
	assert.NotContains(t, again.String(), "125.00")
}
