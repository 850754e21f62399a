package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"cruise-control-core/utils"
)

func main() {
	var (
		iface    = flag.String("iface", "vcan0", "SocketCAN interface name")
		mapPath  = flag.String("map", "config/can/can_map.csv", "Path to can_map.csv")
		scenPath = flag.String("scenario", "", "Scenario JSON file")
		inputs   = flag.String("inputs", "scenario", "Input source: scenario|can|gpio")
		status   = flag.String("status", "log", "Status output: log|can|led")
		rxFrame  = flag.String("rx-frame", "CRUISE_INPUT_1", "Frame carrying the input lines")
		txFrame  = flag.String("tx-frame", "CRUISE_STATUS_1", "Frame to transmit status on")
		cycleMS  = flag.Int("cycle-ms", 0, "Control step period in ms (0 = from scenario or frame)")
		steps    = flag.Int("steps", 0, "Stop after this many steps (0 = scenario length or forever)")
		ledDev   = flag.String("led-dev", utils.DefaultLEDI2CDevice, "I2C device of the PCA9685 LED driver")
		logLevel = flag.String("log", "info", "trace|debug|info|warn|error|critical")
		logFile  = flag.String("logfile", "cruise_control.log", "Log file path")
	)
	flag.Parse()

	log, err := utils.NewFileLogger(*logFile, utils.ParseLevel(*logLevel), true)
	if err != nil {
		_, _ = os.Stderr.WriteString("ERROR: cannot open " + *logFile + ": " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Close()

	cfg := RunnerConfig{
		Interface:    *iface,
		MapPath:      *mapPath,
		ScenarioPath: *scenPath,
		Inputs:       *inputs,
		Status:       *status,
		RxFrame:      *rxFrame,
		TxFrame:      *txFrame,
		CycleMS:      *cycleMS,
		Steps:        *steps,
		GPIO:         utils.DefaultGPIOPins,
		LEDAddress:   utils.DefaultLEDAddress,
		LEDDevice:    *ledDev,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner, err := NewRunner(ctx, cfg, log)
	if err != nil {
		log.Critical("Startup failed: %v", err)
		log.Close()
		os.Exit(1)
	}
	defer runner.Close()
	log.SetPrefix("[" + runner.ctrl.ID().String()[:8] + "] ")

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Critical("Run failed: %v", err)
		runner.Close()
		log.Close()
		os.Exit(1)
	}
}
