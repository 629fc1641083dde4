package app

import (
	"errors"

	"github.com/vk/neuratlas/internal/config"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// AtlasPath points at an .hcl atlas file or a directory of them. When
	// empty, the built-in nervous system atlas is used.
	AtlasPath string

	LogFormat string
	LogLevel  string

	// SkipTree suppresses the hierarchy printout.
	SkipTree bool

	// Stimulus is an optional ad-hoc stimulus assembled from CLI flags,
	// applied after any stimuli declared in the atlas itself.
	Stimulus *config.StimulusDef
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Stimulus != nil {
		if cfg.Stimulus.Target == "" {
			return nil, errors.New("a stimulus requires a target component name")
		}
		if cfg.Stimulus.Kind == "" {
			return nil, errors.New("a stimulus requires a signal kind")
		}
	}
	return &cfg, nil
}
