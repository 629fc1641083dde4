package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/neuratlas/internal/atlas"
	"github.com/vk/neuratlas/internal/config"
	"github.com/vk/neuratlas/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle: load an atlas model, build the tree, drive stimuli through it.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	model  *config.Model
}

// New is the constructor for the main application. It loads the configured
// atlas (or the built-in one) into the format-agnostic model. A failure to
// load is a fatal startup error and panics; the entrypoint recovers it into
// a clean exit.
func New(outW, errW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var model *config.Model
	var err error
	if cfg.AtlasPath != "" {
		model, err = loader.Load(ctx, cfg.AtlasPath)
	} else {
		logger.Debug("No atlas path given, using the built-in nervous system atlas.")
		model, err = atlas.DefaultModel(ctx)
	}
	if err != nil {
		panic(fmt.Errorf("failed to load atlas: %w", err))
	}
	logger.Debug("Atlas loaded and translated into unified model.",
		"components", len(model.Components), "stimuli", len(model.Stimuli))

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		model:  model,
	}
}

// Model returns the loaded atlas model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}
