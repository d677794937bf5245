package units

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleMultipliers(t *testing.T) {
	cases := map[Scale]float64{
		ScaleBase:        1.0,
		ScaleThousandths: 0.001,
		ScaleThousands:   1000.0,
	}
	for s, want := range cases {
		got, err := s.Multiplier()
		require.NoError(t, err, s.String())
		assert.Equal(t, want, got, s.String())
	}
}

func TestTimeBaseFactors(t *testing.T) {
	cases := map[TimeBase]int{
		TimeBaseHour:   1,
		TimeBaseMinute: 60,
		TimeBaseSecond: 3600,
	}
	for tb, want := range cases {
		got, err := tb.Factor()
		require.NoError(t, err, tb.String())
		assert.Equal(t, want, got, tb.String())
	}
}

func TestParseScale(t *testing.T) {
	s, err := ParseScale("thousands")
	require.NoError(t, err)
	assert.Equal(t, ScaleThousands, s)

	s, err = ParseScale("  Milli ")
	require.NoError(t, err)
	assert.Equal(t, ScaleThousandths, s)

	s, err = ParseScale("base-unit")
	require.NoError(t, err)
	assert.Equal(t, ScaleBase, s)
}

func TestParseScale_Unknown(t *testing.T) {
	_, err := ParseScale("hundreds")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownUnit))

	var uerr *UnknownUnitError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, "scale", uerr.Table)
	assert.Equal(t, "hundreds", uerr.Label)
}

func TestParseTimeBase(t *testing.T) {
	tb, err := ParseTimeBase("min")
	require.NoError(t, err)
	assert.Equal(t, TimeBaseMinute, tb)

	tb, err = ParseTimeBase("SECOND")
	require.NoError(t, err)
	assert.Equal(t, TimeBaseSecond, tb)

	_, err = ParseTimeBase("day")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestOutOfTableValues(t *testing.T) {
	_, err := Scale(9).Multiplier()
	assert.ErrorIs(t, err, ErrUnknownUnit)

	_, err = TimeBase(-1).Factor()
	assert.ErrorIs(t, err, ErrUnknownUnit)

	assert.Equal(t, "scale(9)", Scale(9).String())
}

func TestLabelsRoundTrip(t *testing.T) {
	for _, s := range Scales() {
		got, err := ParseScale(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	for _, tb := range TimeBases() {
		got, err := ParseTimeBase(tb.String())
		require.NoError(t, err)
		assert.Equal(t, tb, got)
	}
	assert.Equal(t, "Wh / l / g", ScaleThousandths.Describe())
}
