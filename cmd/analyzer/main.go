package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cryptoanalyzer/internal/app"
	"cryptoanalyzer/internal/config"
	"cryptoanalyzer/internal/dataset"
	"cryptoanalyzer/internal/render"
	"cryptoanalyzer/internal/telemetry"
)

func main() {
	_ = godotenv.Load()

	v := config.New()
	configDir, err := bindFlags(v, os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	cfg, err := config.Load(v, configDir)
	if err != nil {
		slog.Error("cannot load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger := telemetry.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("analysis failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	shutdown, err := telemetry.InitTracing(ctx, telemetry.TraceOptions{
		Enabled: cfg.Trace.Enabled,
		Pretty:  cfg.Trace.Pretty,
		Writer:  os.Stderr,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("Failed to flush traces", "error", err)
		}
	}()

	source, err := dataset.NewSource(cfg.Data.Path, cfg.Data.Format, logger)
	if err != nil {
		return err
	}
	renderer, err := render.NewRenderer(cfg.Output.Format)
	if err != nil {
		return err
	}
	opts, err := cfg.TableOptions()
	if err != nil {
		return err
	}

	a := app.New(logger, source, renderer, app.Options{Table: opts, Validate: cfg.Data.Validate})
	return a.Run(ctx, os.Stdout)
}

// bindFlags parses args and binds each flag onto its viper key. It returns
// the directory to search for config.yaml.
func bindFlags(v *viper.Viper, args []string) (string, error) {
	fs := pflag.NewFlagSet("analyzer", pflag.ContinueOnError)
	configDir := fs.String("config", ".", "directory containing config.yaml")

	flags := []struct {
		name, key, usage string
	}{
		{"data", "data.path", "dataset file; empty uses the bundled sample"},
		{"data-format", "data.format", "dataset format: json, yaml or parquet"},
		{"currency", "table.currency", "show currencies containing this text"},
		{"date", "table.date", "date filter anchor, yyyy-mm-dd"},
		{"date-comparator", "table.date_comparator", "date filter comparator: =, !=, >, >=, <, <="},
		{"sort", "table.sort_field", "column to sort by"},
		{"order", "table.sort_order", "sort order: asc or desc"},
		{"format", "output.format", "output format: text, csv or json"},
		{"log-level", "log.level", "log level: debug, info, warn or error"},
	}
	for _, f := range flags {
		fs.String(f.name, "", f.usage)
	}
	fs.Bool("validate", false, "reject malformed dates and times before analysis")
	fs.Bool("trace", false, "write spans to stderr")

	if err := fs.Parse(args); err != nil {
		return "", err
	}

	for _, f := range flags {
		if err := v.BindPFlag(f.key, fs.Lookup(f.name)); err != nil {
			return "", err
		}
	}
	if err := v.BindPFlag("data.validate", fs.Lookup("validate")); err != nil {
		return "", err
	}
	if err := v.BindPFlag("trace.enabled", fs.Lookup("trace")); err != nil {
		return "", err
	}
	return *configDir, nil
}
