package atlas

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/vk/neuratlas/internal/component"
	"github.com/vk/neuratlas/internal/config"
	"github.com/vk/neuratlas/internal/hcl"
)

//go:embed nervous_system.hcl
var nervousSystemHCL []byte

// DefaultModel parses the embedded human nervous system atlas.
func DefaultModel(ctx context.Context) (*config.Model, error) {
	model, err := hcl.NewLoader().LoadBytes(ctx, "nervous_system.hcl", nervousSystemHCL)
	if err != nil {
		// The fixture ships with the binary, so this is a build defect,
		// not a user error.
		return nil, fmt.Errorf("built-in atlas is invalid: %w", err)
	}
	return model, nil
}

// Default builds the built-in human nervous system tree.
func Default(ctx context.Context) (*component.Component, error) {
	model, err := DefaultModel(ctx)
	if err != nil {
		return nil, err
	}
	return Build(ctx, model)
}
