// Package session holds the form state behind one operator's TUI or script.
// Every calculation builds fresh input records from it; nothing is shared
// across sessions.
package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"plc-tools/plc-config/calc"
	"plc-tools/plc-config/config"
)

// Calculator selects one of the two calculators.
type Calculator string

const (
	Analog  Calculator = "analog"
	Digital Calculator = "digital"
)

// Session holds the live form values and the last outcome of each calculator.
type Session struct {
	mu          sync.Mutex
	analog      calc.AnalogInput
	digital     calc.DigitalInput
	lastAnalog  *calc.AnalogResult
	lastDigital *calc.DigitalResult
	analogFrom  calc.AnalogInput // form that produced lastAnalog
	analogErr   error
	digitalErr  error
	status      string
	log         *zap.Logger
}

// Snapshot is a copy of the session safe to render without holding the lock.
type Snapshot struct {
	Analog        calc.AnalogInput
	Digital       calc.DigitalInput
	AnalogParams  []Param
	DigitalParams []Param
	LastAnalog    *calc.AnalogResult
	LastDigital   *calc.DigitalResult
	AnalogFrom    calc.AnalogInput
	AnalogErr     error
	DigitalErr    error
	Status        string
}

func New(logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		analog:  config.DefaultAnalogInput(),
		digital: config.DefaultDigitalInput(),
		status:  "Ready.",
		log:     logger,
	}
}

// Set parses value into the named field of the calculator's form.
func (s *Session) Set(c Calculator, name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch c {
	case Analog:
		f, ok := lookupField(analogFields, name)
		if !ok {
			return fmt.Errorf("%w %q for %s", ErrUnknownField, name, c)
		}
		if err := f.set(&s.analog, value); err != nil {
			return err
		}
		s.log.Debug("Field set", zap.String("calculator", string(c)), zap.String("field", f.Name), zap.String("value", value))
	case Digital:
		f, ok := lookupField(digitalFields, name)
		if !ok {
			return fmt.Errorf("%w %q for %s", ErrUnknownField, name, c)
		}
		if err := f.set(&s.digital, value); err != nil {
			return err
		}
		s.log.Debug("Field set", zap.String("calculator", string(c)), zap.String("field", f.Name), zap.String("value", value))
	default:
		return fmt.Errorf("unknown calculator %q", c)
	}
	return nil
}

// Reset restores a calculator's form to its defaults and clears its outcome.
func (s *Session) Reset(c Calculator) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch c {
	case Analog:
		s.analog = config.DefaultAnalogInput()
		s.lastAnalog, s.analogErr = nil, nil
	case Digital:
		s.digital = config.DefaultDigitalInput()
		s.lastDigital, s.digitalErr = nil, nil
	}
	s.log.Debug("Form reset", zap.String("calculator", string(c)))
}

// Run invokes the chosen calculator on the current form.
func (s *Session) Run(c Calculator) error {
	switch c {
	case Analog:
		_, err := s.RunAnalog()
		return err
	case Digital:
		_, err := s.RunDigital()
		return err
	}
	return fmt.Errorf("unknown calculator %q", c)
}

func (s *Session) RunAnalog() (calc.AnalogResult, error) {
	s.mu.Lock()
	in := s.analog
	s.mu.Unlock()

	id := uuid.NewString()
	res, err := calc.ComputeAnalog(in)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastAnalog, s.analogErr = nil, err
		s.log.Warn("Analog calculation failed", zap.String("calc_id", id), zap.Any("input", in), zap.Error(err))
		return res, err
	}
	s.lastAnalog, s.analogErr = &res, nil
	s.analogFrom = in
	s.log.Info("Analog calculation",
		zap.String("calc_id", id),
		zap.Any("input", in),
		zap.Float64("gain", res.Gain),
		zap.Float64("offset", res.Offset),
		zap.Int64("cutoff", res.CutoffThreshold),
		zap.Float64("integrator_gain", res.IntegratorGain),
	)
	return res, nil
}

func (s *Session) RunDigital() (calc.DigitalResult, error) {
	s.mu.Lock()
	in := s.digital
	s.mu.Unlock()

	id := uuid.NewString()
	res, err := calc.ComputeDigital(in)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastDigital, s.digitalErr = nil, err
		s.log.Warn("Digital calculation failed", zap.String("calc_id", id), zap.Any("input", in), zap.Error(err))
		return res, err
	}
	s.lastDigital, s.digitalErr = &res, nil
	s.log.Info("Digital calculation",
		zap.String("calc_id", id),
		zap.Any("input", in),
		zap.Float64("ratio_k", res.RatioK),
		zap.Float64("pulse_weight", res.PulseWeight),
		zap.Float64("frequency_hz", res.FrequencyHz),
		zap.Float64("windowed_quantity", res.WindowedQuantity),
	)
	return res, nil
}

func (s *Session) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Analog:        s.analog,
		Digital:       s.digital,
		AnalogParams:  params(analogFields, s.analog),
		DigitalParams: params(digitalFields, s.digital),
		AnalogErr:     s.analogErr,
		DigitalErr:    s.digitalErr,
		Status:        s.status,
	}
	if s.lastAnalog != nil {
		r := *s.lastAnalog
		snap.LastAnalog = &r
		snap.AnalogFrom = s.analogFrom
	}
	if s.lastDigital != nil {
		r := *s.lastDigital
		snap.LastDigital = &r
	}
	return snap
}
