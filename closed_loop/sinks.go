package main

import (
	"context"

	"cruise-control-core/utils"
)

// StatusSink consumes the status produced by each step.
type StatusSink interface {
	Publish(ctx context.Context, st Status) error
	Close() error
}

type logSink struct {
	log *utils.Logger
}

func (s *logSink) Publish(_ context.Context, st Status) error {
	s.log.Info("step=%d state=%v current=%d desired=%d leds=%06b ind=%02b",
		st.Result.Step, st.Result.To, st.Result.Speeds.Current, st.Result.Speeds.Desired,
		st.Panel.StateLEDs, st.Panel.Indicators)
	return nil
}

func (s *logSink) Close() error { return nil }

type canSink struct {
	cmap   *utils.CANMap
	writer utils.CANWriter
	frame  string
	log    *utils.Logger
}

func (s *canSink) Publish(ctx context.Context, st Status) error {
	frame, err := s.cmap.EncodeEinrideFrame(s.frame, statusValues(st))
	if err != nil {
		return err
	}
	if err := s.writer.WriteFrame(ctx, frame); err != nil {
		return err
	}
	s.log.Trace("TX id=0x%X len=%d data=% X", frame.ID, frame.Length, frame.Data[:frame.Length])
	return nil
}

func (s *canSink) Close() error { return s.writer.Close() }

// ledShower is satisfied by utils.LEDPanel.
type ledShower interface {
	Show(stateLEDs, indicators uint8) error
	Close() error
}

type ledSink struct {
	panel ledShower
}

func (s *ledSink) Publish(_ context.Context, st Status) error {
	return s.panel.Show(st.Panel.StateLEDs, st.Panel.Indicators)
}

func (s *ledSink) Close() error { return s.panel.Close() }
