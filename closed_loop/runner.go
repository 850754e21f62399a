package main

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	cruise "cruise-control-core/closed_loop/cruise_control"
	"cruise-control-core/utils"
)

type RunnerConfig struct {
	Interface    string
	MapPath      string
	ScenarioPath string
	Inputs       string // scenario | can | gpio
	Status       string // log | can | led
	RxFrame      string
	TxFrame      string
	CycleMS      int // overrides the scenario or frame cycle when > 0
	Steps        int // 0 runs until canceled (or the scenario ends)
	GPIO         utils.GPIOPins
	LEDAddress   byte
	LEDDevice    string
}

type Runner struct {
	cfg    RunnerConfig
	log    *utils.Logger
	ctrl   *cruise.Controller
	source InputSource
	sink   StatusSink
	cycle  time.Duration
	steps  int
	expect *Expectation
}

func NewRunner(ctx context.Context, cfg RunnerConfig, log *utils.Logger) (*Runner, error) {
	var (
		scen *Scenario
		cmap *utils.CANMap
	)

	if cfg.ScenarioPath != "" {
		s, err := LoadScenario(cfg.ScenarioPath)
		if err != nil {
			return nil, fmt.Errorf("load scenario: %w", err)
		}
		scen = &s
	}

	if cfg.Inputs == "can" || cfg.Status == "can" {
		m, err := utils.LoadCANMap(cfg.MapPath)
		if err != nil {
			return nil, fmt.Errorf("load can map: %w", err)
		}
		rx, tx := "", ""
		if cfg.Inputs == "can" {
			rx = cfg.RxFrame
		}
		if cfg.Status == "can" {
			tx = cfg.TxFrame
		}
		if err := checkFrames(m, rx, tx); err != nil {
			return nil, err
		}
		cmap = m
	}

	ctrl := cruise.NewController()
	if scen != nil {
		c, err := cruise.NewControllerFromConfig(scen.Controller)
		if err != nil {
			return nil, fmt.Errorf("scenario controller: %w", err)
		}
		ctrl = c
	}

	source, err := openSource(ctx, cfg, log, scen, cmap)
	if err != nil {
		return nil, err
	}

	sink, err := openSink(ctx, cfg, log, cmap)
	if err != nil {
		_ = source.Close()
		return nil, err
	}

	cycleMS := defaultCycleMS
	switch {
	case cfg.CycleMS > 0:
		cycleMS = cfg.CycleMS
	case scen != nil:
		cycleMS = scen.Timing.CycleMS
	case cmap != nil && cfg.Inputs == "can":
		if fd, err := cmap.FrameByName(cfg.RxFrame); err == nil && fd.CycleMS > 0 {
			cycleMS = fd.CycleMS
		}
	}

	steps := cfg.Steps
	if steps == 0 && scen != nil && cfg.Inputs == "scenario" {
		steps = scen.Timing.Steps
	}

	r := newRunner(cfg, log, ctrl, source, sink, time.Duration(cycleMS)*time.Millisecond, steps)
	if scen != nil && cfg.Inputs == "scenario" {
		r.expect = scen.Expect
	}
	return r, nil
}

func newRunner(cfg RunnerConfig, log *utils.Logger, ctrl *cruise.Controller, source InputSource, sink StatusSink, cycle time.Duration, steps int) *Runner {
	return &Runner{
		cfg:    cfg,
		log:    log,
		ctrl:   ctrl,
		source: source,
		sink:   sink,
		cycle:  cycle,
		steps:  steps,
	}
}

func openSource(ctx context.Context, cfg RunnerConfig, log *utils.Logger, scen *Scenario, cmap *utils.CANMap) (InputSource, error) {
	switch cfg.Inputs {
	case "scenario", "":
		if scen == nil {
			return nil, errNoScenario
		}
		return &scenarioSource{scen: scen}, nil
	case "can":
		reader, err := utils.NewSocketCANReader(ctx, cfg.Interface)
		if err != nil {
			return nil, err
		}
		maxAge := time.Duration(0)
		if fd, err := cmap.FrameByName(cfg.RxFrame); err == nil && fd.CycleMS > 0 {
			maxAge = 4 * time.Duration(fd.CycleMS) * time.Millisecond
		}
		return newCANSource(log, cmap, reader, cfg.RxFrame, maxAge), nil
	case "gpio":
		lines := utils.NewGPIOLines(cfg.GPIO)
		if err := lines.Init(); err != nil {
			return nil, err
		}
		return &gpioSource{lines: lines}, nil
	default:
		return nil, fmt.Errorf("unknown input source %q", cfg.Inputs)
	}
}

func openSink(ctx context.Context, cfg RunnerConfig, log *utils.Logger, cmap *utils.CANMap) (StatusSink, error) {
	switch cfg.Status {
	case "log", "":
		return &logSink{log: log}, nil
	case "can":
		writer, err := utils.NewSocketCANWriter(ctx, cfg.Interface)
		if err != nil {
			return nil, err
		}
		return &canSink{cmap: cmap, writer: writer, frame: cfg.TxFrame, log: log}, nil
	case "led":
		panel := utils.NewLEDPanel(cfg.LEDAddress, cfg.LEDDevice)
		if err := panel.Init(); err != nil {
			_ = panel.Close()
			return nil, err
		}
		return &ledSink{panel: panel}, nil
	default:
		return nil, fmt.Errorf("unknown status sink %q", cfg.Status)
	}
}

func (r *Runner) Close() {
	if r.source != nil {
		_ = r.source.Close()
	}
	if r.sink != nil {
		_ = r.sink.Close()
	}
}

// Run steps the controller once per cycle until ctx is canceled or the
// configured number of steps is done.
func (r *Runner) Run(ctx context.Context) error {
	r.log.Info("Starting controller=%s inputs=%s status=%s cycle=%v steps=%d state=%v current=%d desired=%d",
		r.ctrl.ID(), r.cfg.Inputs, r.cfg.Status, r.cycle, r.steps,
		r.ctrl.State(), r.ctrl.Speeds().Current, r.ctrl.Speeds().Desired)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, groupCtx := errgroup.WithContext(runCtx)

	if rx, ok := r.source.(receiver); ok {
		group.Go(func() error {
			return rx.Receive(groupCtx)
		})
	}

	var done bool
	group.Go(func() error {
		err := r.loop(groupCtx)
		if err == nil {
			done = true
			cancel()
		}
		return err
	})

	err := group.Wait()
	if done {
		return r.finish()
	}
	if err == nil {
		err = ctx.Err()
	}
	return err
}

func (r *Runner) loop(ctx context.Context) error {
	ticker := time.NewTicker(r.cycle)
	defer ticker.Stop()

	for step := 1; r.steps <= 0 || step <= r.steps; step++ {
		select {
		case <-ctx.Done():
			r.log.Warn("Context canceled; stopping after %d steps", step-1)
			return ctx.Err()
		case <-ticker.C:
		}

		in, err := r.source.Sample(ctx, step)
		if err != nil {
			r.log.Error("Sample failed at step %d: %v", step, err)
			return fmt.Errorf("sample step %d: %w", step, err)
		}

		res := r.ctrl.Step(in)
		if res.Changed() {
			r.log.Debug("step=%d %v -> %v current=%d desired=%d",
				res.Step, res.From, res.To, res.Speeds.Current, res.Speeds.Desired)
		}
		r.log.Trace("step=%d inputs=%+v", res.Step, in)

		if err := r.sink.Publish(ctx, newStatus(res)); err != nil {
			r.log.Critical("Publish failed at step %d: %v", step, err)
			return fmt.Errorf("publish step %d: %w", step, err)
		}
	}
	return nil
}

func (r *Runner) finish() error {
	diag := r.ctrl.GetDiagnostics()
	r.log.Info("Completed steps=%d state=%v current=%d desired=%d",
		diag.Steps, diag.State, diag.Speeds.Current, diag.Speeds.Desired)

	if err := r.expect.Check(diag.State, diag.Speeds); err != nil {
		r.log.Error("Scenario expectation failed: %v", err)
		return fmt.Errorf("scenario expectation: %w", err)
	}
	return nil
}
