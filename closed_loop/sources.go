package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	cruise "cruise-control-core/closed_loop/cruise_control"
	"cruise-control-core/utils"
)

// InputSource supplies the inputs for each step.
type InputSource interface {
	Sample(ctx context.Context, step int) (cruise.Inputs, error)
	Close() error
}

// receiver is implemented by sources that need a background loop.
type receiver interface {
	Receive(ctx context.Context) error
}

type scenarioSource struct {
	scen *Scenario
}

func (s *scenarioSource) Sample(_ context.Context, step int) (cruise.Inputs, error) {
	return EvalInputs(s.scen, step), nil
}

func (s *scenarioSource) Close() error { return nil }

// canSource keeps the last input frame seen on the bus. Until the first
// frame arrives, and whenever the last one is older than maxAge, every line
// reads at its inactive level.
type canSource struct {
	log    *utils.Logger
	cmap   *utils.CANMap
	reader utils.CANReader
	frame  string
	maxAge time.Duration

	mu     sync.Mutex
	lines  cruise.RawLines
	lastRx time.Time
	warned bool
}

func newCANSource(log *utils.Logger, cmap *utils.CANMap, reader utils.CANReader, frame string, maxAge time.Duration) *canSource {
	return &canSource{
		log:    log,
		cmap:   cmap,
		reader: reader,
		frame:  frame,
		maxAge: maxAge,
		lines:  cruise.Inputs{}.Lines(),
	}
}

func (s *canSource) Sample(_ context.Context, _ int) (cruise.Inputs, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	age := time.Since(s.lastRx)
	if s.maxAge > 0 && age > s.maxAge {
		if !s.warned {
			s.log.Warn("No %s frame for %.1f ms - inputs released", s.frame, age.Seconds()*1000)
			s.warned = true
		}
		return cruise.Inputs{}, nil
	}
	s.warned = false
	return s.lines.Inputs(), nil
}

// Receive decodes input frames until ctx is done or the reader fails.
func (s *canSource) Receive(ctx context.Context) error {
	s.log.Debug("RX loop started")
	defer s.log.Debug("RX loop stopped")

	for {
		frame, err := s.reader.ReadFrame(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			s.log.Error("RX error: %v", err)
			return fmt.Errorf("receive %s: %w", s.frame, err)
		}

		name, values, err := s.cmap.DecodeEinrideFrame(frame)
		if err != nil {
			s.log.Trace("RX skip id=0x%X: %v", frame.ID, err)
			continue
		}
		if name != s.frame {
			continue
		}

		s.mu.Lock()
		s.lines = linesFromSignals(values)
		s.lastRx = time.Now()
		s.mu.Unlock()

		s.log.Trace("RX id=0x%X len=%d data=% X", frame.ID, frame.Length, frame.Data[:frame.Length])
	}
}

func (s *canSource) Close() error {
	return s.reader.Close()
}

// lineReader is satisfied by utils.GPIOLines.
type lineReader interface {
	Read() (utils.LineLevels, error)
	Close() error
}

type gpioSource struct {
	lines lineReader
}

func (s *gpioSource) Sample(_ context.Context, _ int) (cruise.Inputs, error) {
	lv, err := s.lines.Read()
	if err != nil {
		return cruise.Inputs{}, err
	}
	return cruise.RawLines{
		Accelerator:       lv.Accelerator,
		Brake:             lv.Brake,
		CC:                lv.CC,
		Add:               lv.Add,
		Subtract:          lv.Subtract,
		TooClose:          lv.TooClose,
		ApproachingObject: lv.ApproachingObject,
	}.Inputs(), nil
}

func (s *gpioSource) Close() error { return s.lines.Close() }

var errNoScenario = errors.New("scenario input requires -scenario")
