// Package main is the entry point for Wayfinder.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/wayfinder/internal/config"
	"github.com/samdwyer/wayfinder/internal/logger"
	"github.com/samdwyer/wayfinder/internal/sim"
	"github.com/samdwyer/wayfinder/internal/telemetry"
	"github.com/samdwyer/wayfinder/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	seed       int64
	maxTicks   int
	headless   bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("wayfinder", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config (default: built-in)")
	fs.Int64Var(&opts.seed, "seed", 0, "world seed, overrides the config (0 keeps the config value)")
	fs.IntVar(&opts.maxTicks, "max-ticks", -1, "stop after this many ticks, 0 for no limit (default: config value)")
	fs.BoolVar(&opts.headless, "headless", false, "run without the terminal viewer and print a report")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if opts.maxTicks >= 0 {
		cfg.MaxTicks = opts.maxTicks
	}

	// The viewer owns the terminal, so logs only go to stderr when headless.
	logOut := io.Discard
	if opts.headless {
		logOut = os.Stderr
	}
	logs := logger.New(logOut)

	shutdown, err := telemetry.Setup(ctx, telemetryConfig())
	if err != nil {
		logs.WithError(err).Warn("Telemetry setup failed, running without tracing")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logs.WithError(err).Warn("Error shutting down telemetry")
			}
		}()
	}

	rng, seed := sim.NewRand(cfg.Seed)
	logs.WithFields(logrus.Fields{"name": cfg.Name, "seed": seed}).Info("Starting")

	area, err := sim.New(ctx, cfg.Area.SimSettings(), rng, sim.WithLogger(logs))
	if err != nil {
		return err
	}

	var report sim.Report
	if opts.headless {
		report, err = sim.Run(ctx, area, cfg.MaxTicks)
	} else {
		report, err = view(ctx, cfg, area)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	fmt.Fprintf(stdout, "seed=%d status=%s ticks=%d position=%s knowledge=%dx%d explored=%d\n",
		seed, report.Status, report.Ticks, report.Position,
		report.KnowledgeWidth, report.KnowledgeHeight, report.Explored)
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default()
	}
	return config.Load(path)
}

func view(ctx context.Context, cfg *config.Config, area *sim.Area) (sim.Report, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return sim.Report{}, fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Close()

	renderer, err := ui.NewRenderer(screen, area, cfg.Renderer.Background)
	if err != nil {
		return sim.Report{}, err
	}

	runner := &sim.Runner{
		Area:     area,
		Interval: cfg.TickInterval,
		MaxTicks: cfg.MaxTicks,
	}
	return ui.NewViewer(screen, renderer).Run(ctx, runner)
}

// telemetryConfig builds exporter settings from the environment. A Honeycomb
// API key selects the Honeycomb endpoint; otherwise the standard OTEL_*
// variables apply.
func telemetryConfig() telemetry.Config {
	apiKey := os.Getenv("HONEYCOMB_WAYFINDER_API_KEY")
	if apiKey == "" {
		return telemetry.Config{}
	}
	dataset := os.Getenv("HONEYCOMB_WAYFINDER_DATASET")
	if dataset == "" {
		dataset = "wayfinder" // default dataset name
	}
	return telemetry.Config{
		Endpoint: "https://api.honeycomb.io",
		Headers: map[string]string{
			"x-honeycomb-team":    apiKey,
			"x-honeycomb-dataset": dataset,
		},
	}
}
