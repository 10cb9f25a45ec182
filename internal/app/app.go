package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"cryptoanalyzer/internal/analyzer"
	"cryptoanalyzer/internal/dataset"
	"cryptoanalyzer/internal/render"
	"cryptoanalyzer/internal/table"
)

const tracerName = "cryptoanalyzer/app"

// Options controls one analysis run.
type Options struct {
	Table    table.Options
	Validate bool
}

// App loads a dataset, analyzes it and renders the resulting table.
type App struct {
	logger   *slog.Logger
	source   dataset.Source
	renderer render.Renderer
	opts     Options
	table    *table.Table
	tracer   trace.Tracer
}

// New creates a new instance of the App.
func New(logger *slog.Logger, source dataset.Source, renderer render.Renderer, opts Options) *App {
	return &App{
		logger:   logger,
		source:   source,
		renderer: renderer,
		opts:     opts,
		table:    table.New(nil),
		tracer:   otel.Tracer(tracerName),
	}
}

// Table returns the table holding the analyzed rows of the last Load.
func (a *App) Table() *table.Table {
	return a.table
}

// Run loads and analyzes the dataset, then writes the table view to w.
func (a *App) Run(ctx context.Context, w io.Writer) (err error) {
	ctx, span := a.tracer.Start(ctx, "run")
	defer func() { endSpan(span, err) }()

	if err = a.Load(ctx); err != nil {
		return err
	}
	return a.Render(ctx, w)
}

// Load reads every record from the source and replaces the analyzed set.
func (a *App) Load(ctx context.Context) (err error) {
	loadCtx, span := a.tracer.Start(ctx, "dataset.load",
		trace.WithAttributes(attribute.String("source", a.source.Name())))
	records, err := a.source.Load(loadCtx)
	if err == nil && a.opts.Validate {
		err = dataset.Validate(records)
	}
	endSpan(span, err)
	if err != nil {
		a.logger.Error("Failed to load dataset", "source", a.source.Name(), "error", err)
		return fmt.Errorf("load dataset: %w", err)
	}

	_, span = a.tracer.Start(ctx, "analyzer.analyze",
		trace.WithAttributes(attribute.Int("records", len(records))))
	rows, err := analyzer.Analyze(records)
	endSpan(span, err)
	if err != nil {
		a.logger.Error("Failed to analyze dataset", "error", err)
		return fmt.Errorf("analyze: %w", err)
	}

	a.table.Replace(rows)
	a.logger.Info("Dataset analyzed", "source", a.source.Name(), "records", len(records), "rows", len(rows))
	return nil
}

// Render filters and sorts the analyzed set and writes it to w.
func (a *App) Render(ctx context.Context, w io.Writer) (err error) {
	_, span := a.tracer.Start(ctx, "table.view")
	rows, err := a.table.View(a.opts.Table)
	endSpan(span, err)
	if err != nil {
		return fmt.Errorf("table view: %w", err)
	}
	a.logger.Debug("Table view ready",
		"rows", len(rows),
		"currency", a.opts.Table.Currency,
		"dateComparator", string(a.opts.Table.Date.Comparator),
		"sortField", a.opts.Table.Sort.Field,
		"sortOrder", string(a.opts.Table.Sort.Order),
	)

	_, span = a.tracer.Start(ctx, "render",
		trace.WithAttributes(attribute.String("format", a.renderer.Format())))
	err = a.renderer.Render(w, rows)
	endSpan(span, err)
	if err != nil {
		return fmt.Errorf("render %s: %w", a.renderer.Format(), err)
	}
	return nil
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
