// Package units holds the closed scale and time-base tables shared by the
// analog and digital calculators.
package units

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownUnit is matched by every UnknownUnitError.
var ErrUnknownUnit = errors.New("unknown unit")

// UnknownUnitError reports a label or value outside one of the closed tables.
type UnknownUnitError struct {
	Table string
	Label string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Table, e.Label)
}

func (e *UnknownUnitError) Unwrap() error { return ErrUnknownUnit }

// --- Scale table ---

// Scale is a unit multiplier relative to the base unit (kWh, m3, kg).
type Scale int

const (
	ScaleBase Scale = iota
	ScaleThousandths
	ScaleThousands
)

type scaleEntry struct {
	label       string
	alias       string
	description string
	multiplier  float64
}

var scaleTable = map[Scale]scaleEntry{
	ScaleBase:        {label: "base-unit", alias: "base", description: "kWh / mc / kg", multiplier: 1.0},
	ScaleThousandths: {label: "thousandths", alias: "milli", description: "Wh / l / g", multiplier: 0.001},
	ScaleThousands:   {label: "thousands", alias: "kilo", description: "MWh / t", multiplier: 1000.0},
}

// Scales lists the table in ascending multiplier order.
func Scales() []Scale {
	return []Scale{ScaleThousandths, ScaleBase, ScaleThousands}
}

// ParseScale maps a label (or its short alias) to a Scale.
func ParseScale(label string) (Scale, error) {
	l := strings.ToLower(strings.TrimSpace(label))
	for s, e := range scaleTable {
		if l == e.label || l == e.alias {
			return s, nil
		}
	}
	return 0, &UnknownUnitError{Table: "scale", Label: label}
}

// Multiplier returns the factor relative to the base unit.
func (s Scale) Multiplier() (float64, error) {
	e, ok := scaleTable[s]
	if !ok {
		return 0, &UnknownUnitError{Table: "scale", Label: s.String()}
	}
	return e.multiplier, nil
}

func (s Scale) String() string {
	if e, ok := scaleTable[s]; ok {
		return e.label
	}
	return fmt.Sprintf("scale(%d)", int(s))
}

// Describe returns the example units a technician sees for the scale.
func (s Scale) Describe() string {
	if e, ok := scaleTable[s]; ok {
		return e.description
	}
	return s.String()
}

// --- Time-base table ---

// TimeBase is the time unit a rate is expressed in.
type TimeBase int

const (
	TimeBaseHour TimeBase = iota
	TimeBaseMinute
	TimeBaseSecond
)

type timeBaseEntry struct {
	label  string
	alias  string
	factor int
}

// factor is the count of the unit in one hour
var timeBaseTable = map[TimeBase]timeBaseEntry{
	TimeBaseHour:   {label: "hour", alias: "h", factor: 1},
	TimeBaseMinute: {label: "minute", alias: "min", factor: 60},
	TimeBaseSecond: {label: "second", alias: "s", factor: 3600},
}

func TimeBases() []TimeBase {
	return []TimeBase{TimeBaseHour, TimeBaseMinute, TimeBaseSecond}
}

// ParseTimeBase maps a label (or its short alias) to a TimeBase.
func ParseTimeBase(label string) (TimeBase, error) {
	l := strings.ToLower(strings.TrimSpace(label))
	for t, e := range timeBaseTable {
		if l == e.label || l == e.alias {
			return t, nil
		}
	}
	return 0, &UnknownUnitError{Table: "time base", Label: label}
}

// Factor returns how many of the unit fit in one hour.
func (t TimeBase) Factor() (int, error) {
	e, ok := timeBaseTable[t]
	if !ok {
		return 0, &UnknownUnitError{Table: "time base", Label: t.String()}
	}
	return e.factor, nil
}

func (t TimeBase) String() string {
	if e, ok := timeBaseTable[t]; ok {
		return e.label
	}
	return fmt.Sprintf("timebase(%d)", int(t))
}
