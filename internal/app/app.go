// Package app is the main entrypoint into the application, responsible for
// configuring and starting the application, services, dependency injection,
// etc.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/mthorpe/grip/internal/grid"
	"github.com/mthorpe/grip/internal/history"
	"github.com/mthorpe/grip/internal/logging"
	"github.com/mthorpe/grip/internal/resize"
	"github.com/mthorpe/grip/internal/tui/top"
	"github.com/mthorpe/grip/internal/version"
)

// App assembles the grid, its resize engine and their supporting services.
type App struct {
	Logger  *logging.Logger
	Grid    *grid.Grid
	History *history.Stack
	Resizes *resize.Service
}

func New(cfg Config) (*App, error) {
	logger := logging.NewLogger(cfg.Logging)

	g, err := buildGrid(cfg)
	if err != nil {
		return nil, err
	}

	hist := history.NewStack(g)

	maxWidth := cfg.MaxWidth
	if maxWidth <= 0 {
		maxWidth = math.Inf(1)
	}
	svc := resize.NewService(resize.ServiceOptions{
		Layout:    g,
		Strategy:  cfg.Strategy,
		ZoneWidth: cfg.ZoneWidth,
		DefaultConstraints: resize.Constraints{
			MinWidth: cfg.MinWidth,
			MaxWidth: maxWidth,
		},
		History:           hist,
		SampleSize:        cfg.SampleSize,
		Padding:           cfg.Padding,
		ValidationTimeout: cfg.ValidationTimeout,
		Logger:            logger,
	})

	// Apply any per-column constraint overrides declared in the column spec.
	for col := 0; col < g.ColumnCount(); col++ {
		c, _ := g.Column(col)
		if c.MinWidth == nil && c.MaxWidth == nil {
			continue
		}
		override := resize.Constraints{
			MinWidth: cfg.MinWidth,
			MaxWidth: maxWidth,
		}
		if c.MinWidth != nil {
			override.MinWidth = *c.MinWidth
		}
		if c.MaxWidth != nil {
			override.MaxWidth = *c.MaxWidth
		}
		svc.SetColumnConstraints(col, override)
	}

	logger.Info("loaded grid",
		"columns", g.ColumnCount(),
		"rows", g.RowCount(),
		"strategy", cfg.Strategy,
	)

	return &App{
		Logger:  logger,
		Grid:    g,
		History: hist,
		Resizes: svc,
	}, nil
}

// Start parses config and starts the TUI, blocking until the user exits.
func Start(stdout, stderr io.Writer, args []string) error {
	cfg, err := Parse(stderr, args)
	if err != nil {
		return err
	}

	if cfg.Version {
		fmt.Fprintln(stdout, "grip", version.Version)
		return nil
	}

	app, err := New(cfg)
	if err != nil {
		return err
	}
	slog.SetDefault(app.Logger.Slog())

	return top.Start(top.Options{
		Grid:        app.Grid,
		Service:     app.Resizes,
		History:     app.History,
		Logger:      app.Logger,
		Debug:       cfg.Debug,
		DeferWrites: cfg.Preview,
	})
}

func buildGrid(cfg Config) (*grid.Grid, error) {
	if cfg.SpecPath == "" {
		return demoGrid(), nil
	}
	spec, err := grid.LoadSpec(cfg.SpecPath)
	if err != nil {
		return nil, fmt.Errorf("loading column spec: %w", err)
	}
	return grid.FromSpec(spec), nil
}
