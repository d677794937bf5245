package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plc-tools/plc-config/calc"
	"plc-tools/plc-config/session"
	"plc-tools/plc-config/units"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"set", "unit", "m3 gas"}, Tokenize(`set unit "m3 gas"`))
	assert.Equal(t, []string{"calc"}, Tokenize("  calc  "))
	assert.Empty(t, Tokenize(""))
}

func TestExecute_SetAndCalc(t *testing.T) {
	s := session.New(nil)

	out := Execute(s, session.Analog, "set out thousands")
	require.NoError(t, out.Err)
	assert.Equal(t, session.Analog, out.Active)

	out = Execute(s, session.Analog, "s time minute")
	require.NoError(t, out.Err)

	out = Execute(s, session.Analog, "calc")
	require.NoError(t, out.Err)
	assert.True(t, out.Computed)

	snap := s.Snapshot()
	require.NotNil(t, snap.LastAnalog)
	assert.InDelta(t, 0.06, snap.LastAnalog.IntegratorGain, 1e-15)
	assert.Equal(t, units.ScaleThousands, snap.Analog.OutputScale)
}

func TestExecute_SwitchCalculator(t *testing.T) {
	s := session.New(nil)

	out := Execute(s, session.Analog, "digital")
	assert.Equal(t, session.Digital, out.Active)

	out = Execute(s, out.Active, `set unit "Sm3"`)
	require.NoError(t, out.Err)
	assert.Equal(t, "Sm3", s.Snapshot().Digital.UnitName)

	out = Execute(s, out.Active, "a")
	assert.Equal(t, session.Analog, out.Active)
}

func TestExecute_CalcFailureIsReported(t *testing.T) {
	s := session.New(nil)

	out := Execute(s, session.Digital, "set pulses 0")
	require.NoError(t, out.Err)

	out = Execute(s, session.Digital, "c")
	assert.True(t, out.Computed)
	assert.ErrorIs(t, out.Err, calc.ErrDivisionByZero)
}

func TestExecute_Errors(t *testing.T) {
	s := session.New(nil)

	assert.Error(t, Execute(s, session.Analog, "set r").Err)
	assert.ErrorIs(t, Execute(s, session.Analog, "set pulses 3").Err, session.ErrUnknownField)
	assert.EqualError(t, Execute(s, session.Analog, "launch").Err, "unknown command 'launch'")
}

func TestExecute_Misc(t *testing.T) {
	s := session.New(nil)

	assert.True(t, Execute(s, session.Analog, "quit").Quit)
	assert.True(t, Execute(s, session.Analog, "show").Show)
	assert.Equal(t, Help, Execute(s, session.Analog, "help").Message)

	Execute(s, session.Analog, "set r 100")
	out := Execute(s, session.Analog, "reset")
	require.NoError(t, out.Err)
	assert.Equal(t, 200.0, s.Snapshot().Analog.ResistanceOhm)

	assert.Equal(t, Outcome{Active: session.Digital}, Execute(s, session.Digital, "   "))
}
