package atlas

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/neuratlas/internal/component"
	"github.com/vk/neuratlas/internal/config"
	"github.com/vk/neuratlas/internal/ctxlog"
)

// Build constructs a complete, validated component tree from a config model.
func Build(ctx context.Context, model *config.Model) (*component.Component, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: starting tree construction.")

	byPath := make(map[string]*component.Component, len(model.Components))
	var root *component.Component

	// First pass: create every component, indexed by its declared path.
	// Paths disambiguate duplicate names (the fixture has two Hippocampus
	// nodes under different parents).
	for _, def := range model.Components {
		behavior, err := behaviorFor(def)
		if err != nil {
			return nil, err
		}
		c := component.New(def.Name, behavior)
		c.SetActive(def.Active)

		path := def.Path()
		if _, dup := byPath[path]; dup {
			return nil, fmt.Errorf("duplicate component path %q", path)
		}
		byPath[path] = c

		if def.Parent == "" {
			if root != nil {
				return nil, fmt.Errorf("multiple root components: %q and %q", root.Name(), def.Name)
			}
			root = c
		}
	}
	if root == nil {
		return nil, errors.New("atlas declares no root component")
	}
	logger.Debug("Build: component creation complete.", "component_count", len(byPath))

	// Second pass: attach children to parents in declaration order, which
	// fixes child ordering within each parent.
	for _, def := range model.Components {
		if def.Parent == "" {
			continue
		}
		parent, ok := byPath[def.Parent]
		if !ok {
			return nil, fmt.Errorf("component %q references unknown parent %q", def.Name, def.Parent)
		}
		parent.AddChild(byPath[def.Path()])
	}
	logger.Debug("Build: child linking complete.")

	// Third pass: wire lateral connections.
	for _, def := range model.Components {
		c := byPath[def.Path()]
		for _, target := range def.Connections {
			t, ok := byPath[target]
			if !ok {
				return nil, fmt.Errorf("component %q references unknown connection target %q", def.Name, target)
			}
			c.AddConnection(t)
		}
	}

	logger.Debug("Build: tree construction successful.")
	return root, nil
}

// behaviorFor maps a component definition onto its behavior variant.
func behaviorFor(def *config.ComponentDef) (component.Behavior, error) {
	switch def.Variant {
	case config.VariantSystem:
		return component.Passthrough{}, nil
	case config.VariantRegion:
		return &component.Region{Function: def.Function}, nil
	case config.VariantArea:
		switch def.AreaType {
		case component.AreaMotor, component.AreaSensory, component.AreaAssociation:
			// valid
		default:
			return nil, fmt.Errorf("component %q: unknown area_type %q", def.Name, def.AreaType)
		}
		layers := def.Layers
		if layers == 0 {
			layers = component.DefaultLayers
		}
		return &component.CorticalArea{
			Region:   component.Region{Function: def.Function},
			AreaType: def.AreaType,
			Layers:   layers,
		}, nil
	default:
		return nil, fmt.Errorf("component %q: unknown variant %q", def.Name, def.Variant)
	}
}
