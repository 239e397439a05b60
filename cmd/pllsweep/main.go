// Command pllsweep drives a synthesizer frequency sweep from a plan file.
//
// Configuration comes from an optional YAML file plus command-line flags;
// flags win. A minimal config:
//
//	backend: rpi
//	timing:
//	  pulse_width_us: 100
//	  word_delay_us: 1000
//	  pass_pause_ms: 10
//	chip:
//	  prescaler_index: 1
//	  ref_test: true
//	  current1: 3
//	  current2: 3
//
// Targets come from a plan file argument, or inline:
//
//	plan:
//	  ref_mhz: 100
//	  pfd_khz: 1250
//	  targets: [10500, 10495, 10490]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/pllware/go-adf411x/bus/mcp2221"
	"github.com/pllware/go-adf411x/bus/rpi"
	"github.com/pllware/go-adf411x/bus/trace"
	"github.com/pllware/go-adf411x/driver"
	"github.com/pllware/go-adf411x/latch"
	"github.com/pllware/go-adf411x/sweep"
)

type timingConfig struct {
	PulseWidthUS int `koanf:"pulse_width_us"`
	WordDelayUS  int `koanf:"word_delay_us"`
	PassPauseMS  int `koanf:"pass_pause_ms"`
}

type pinConfig struct {
	Clock       int `koanf:"clock"`
	Data        int `koanf:"data"`
	LatchEnable int `koanf:"latch_enable"`
	Sync        int `koanf:"sync"`
}

type chipConfig struct {
	PrescalerIndex uint8 `koanf:"prescaler_index"`
	RefTest        bool  `koanf:"ref_test"`
	Muxout         uint8 `koanf:"muxout"`
	Polarity       uint8 `koanf:"polarity"`
	FastlockMode   uint8 `koanf:"fastlock_mode"`
	TimerCounter   uint8 `koanf:"timer_counter"`
	Current1       uint8 `koanf:"current1"`
	Current2       uint8 `koanf:"current2"`
}

type planConfig struct {
	RefMHz  float64   `koanf:"ref_mhz"`
	PfdKHz  float64   `koanf:"pfd_khz"`
	Targets []float64 `koanf:"targets"`
}

type appConfig struct {
	Backend string       `koanf:"backend"`
	Timing  timingConfig `koanf:"timing"`
	Pins    pinConfig    `koanf:"pins"`
	Chip    chipConfig   `koanf:"chip"`
	Plan    planConfig   `koanf:"plan"`
}

func defaultAppConfig() appConfig {
	def := sweep.DefaultTiming()
	return appConfig{
		Backend: "rpi",
		Timing: timingConfig{
			PulseWidthUS: int(def.PulseWidth / time.Microsecond),
			WordDelayUS:  int(def.WordDelay / time.Microsecond),
			PassPauseMS:  int(def.PassPause / time.Millisecond),
		},
		// -1 means "use the selected backend's default wiring"; the
		// rpi and mcp2221 defaults use different pin numbering.
		Pins: pinConfig{Clock: -1, Data: -1, LatchEnable: -1, Sync: -1},
		Chip: chipConfig{
			PrescalerIndex: 1,
			RefTest:        true,
			Current1:       3,
			Current2:       3,
		},
	}
}

// pinOr returns the configured pin, or the backend default when unset.
func pinOr(configured, def int) int {
	if configured >= 0 {
		return configured
	}
	return def
}

func loadConfig(path string) (appConfig, error) {
	cfg := defaultAppConfig()
	if path == "" {
		return cfg, nil
	}
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return cfg, fmt.Errorf("load %s: %w", path, err)
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c appConfig) timing() sweep.Timing {
	return sweep.Timing{
		PulseWidth: time.Duration(c.Timing.PulseWidthUS) * time.Microsecond,
		WordDelay:  time.Duration(c.Timing.WordDelayUS) * time.Microsecond,
		PassPause:  time.Duration(c.Timing.PassPauseMS) * time.Millisecond,
	}
}

func (c appConfig) chip() latch.ChipConfig {
	chip := latch.ChipConfig{
		PrescalerIndex: c.Chip.PrescalerIndex,
		Muxout:         c.Chip.Muxout,
		Polarity:       c.Chip.Polarity,
		FastlockMode:   c.Chip.FastlockMode,
		TimerCounter:   c.Chip.TimerCounter,
		Current1:       c.Chip.Current1,
		Current2:       c.Chip.Current2,
	}
	if c.Chip.RefTest {
		chip.RefMode = latch.RefModeTest
	}
	return chip
}

// openBus returns the selected bus and a close function.
func openBus(cfg appConfig) (driver.Bus, func() error, error) {
	switch cfg.Backend {
	case "rpi":
		def := rpi.DefaultPins()
		b, err := rpi.New(rpi.Pins{
			Clock:       pinOr(cfg.Pins.Clock, def.Clock),
			Data:        pinOr(cfg.Pins.Data, def.Data),
			LatchEnable: pinOr(cfg.Pins.LatchEnable, def.LatchEnable),
			Sync:        pinOr(cfg.Pins.Sync, def.Sync),
		})
		if err != nil {
			return nil, nil, err
		}
		return b, b.Close, nil
	case "mcp2221":
		def := mcp2221.DefaultPins()
		gp := [4]int{
			pinOr(cfg.Pins.Clock, int(def.Clock)),
			pinOr(cfg.Pins.Data, int(def.Data)),
			pinOr(cfg.Pins.LatchEnable, int(def.LatchEnable)),
			pinOr(cfg.Pins.Sync, int(def.Sync)),
		}
		for _, p := range gp {
			if p > 3 {
				return nil, nil, fmt.Errorf("mcp2221 pin GP%d does not exist (bridge has GP0-GP3)", p)
			}
		}
		b, err := mcp2221.New(mcp2221.Pins{
			Clock:       byte(gp[0]),
			Data:        byte(gp[1]),
			LatchEnable: byte(gp[2]),
			Sync:        byte(gp[3]),
		})
		if err != nil {
			return nil, nil, err
		}
		return b, b.Close, nil
	case "trace":
		b := trace.New(os.Stdout)
		b.Quiet = true
		return b, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q (want rpi, mcp2221 or trace)", cfg.Backend)
	}
}

func main() {
	var (
		configPath = flag.String("config", "", "YAML config file")
		backend    = flag.String("backend", "", "bus backend: rpi, mcp2221 or trace (overrides config)")
		dryRun     = flag.Bool("dry-run", false, "compute and print latch words, do not transmit")
		verbose    = flag.Bool("v", false, "log every transmitted word")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [plan-file]\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	if *backend != "" {
		cfg.Backend = *backend
	}

	// Targets come from a plan file when given, otherwise from the
	// config's inline plan section.
	var plan *sweep.Plan
	switch {
	case flag.NArg() == 1:
		plan, err = sweep.Parse(flag.Arg(0))
		if err != nil {
			log.Fatalf("Plan: %v", err)
		}
	case len(cfg.Plan.Targets) > 0:
		plan = &sweep.Plan{
			RefMHz:  cfg.Plan.RefMHz,
			PfdKHz:  cfg.Plan.PfdKHz,
			Targets: cfg.Plan.Targets,
		}
	default:
		log.Fatal("No plan: give a plan file argument or a plan section in the config")
	}

	table, err := sweep.Build(plan, cfg.chip())
	if err != nil {
		log.Fatalf("Build: %v", err)
	}

	log.Printf("Plan: %d targets, ref %g MHz, PFD %g kHz", table.Len(), table.RefMHz, table.PfdKHz)
	log.Printf("Reference latch: %v  Function latch: %v", table.Reference(), table.Function())

	if *dryRun {
		for _, step := range table.Steps {
			fmt.Printf("%10.3f MHz  %v\n", step.TargetMHz, step.Words.Feedback)
		}
		return
	}

	bus, closeBus, err := openBus(cfg)
	if err != nil {
		log.Fatalf("Bus: %v", err)
	}
	defer closeBus()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []driver.Option{
		driver.WithTiming(cfg.timing()),
		driver.WithPassCallback(func(info driver.PassInfo) {
			if info.Pass%100 == 0 {
				log.Printf("pass %d: %d sends in %v", info.Pass, info.Steps, info.Elapsed.Round(time.Microsecond))
			}
		}),
	}
	if *verbose {
		opts = append(opts, driver.WithLogger(stdLogger{}))
	}

	sweeper := driver.New(bus, table, opts...)
	err = sweeper.Run(ctx)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		log.Print("Sweep stopped")
	default:
		log.Fatalf("Sweep: %v", err)
	}
}

// stdLogger adapts the standard library logger to the driver's interface.
type stdLogger struct{}

func (stdLogger) Debug(msg string, kv ...interface{}) { logKV("DEBUG", msg, kv...) }
func (stdLogger) Info(msg string, kv ...interface{})  { logKV("INFO", msg, kv...) }
func (stdLogger) Error(msg string, kv ...interface{}) { logKV("ERROR", msg, kv...) }

func logKV(level, msg string, kv ...interface{}) {
	line := level + " " + msg
	for i := 0; i+1 < len(kv); i += 2 {
		line += fmt.Sprintf(" %v=%v", kv[i], kv[i+1])
	}
	log.Print(line)
}
