package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/vk/neuratlas/internal/config"
	"github.com/vk/neuratlas/internal/ctxlog"
	"github.com/vk/neuratlas/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// decodeInto decodes one parsed atlas body and appends its translated
// contents to the model.
func (l *Loader) decodeInto(ctx context.Context, model *config.Model, body hcl.Body, filename string) error {
	var atlas schema.Atlas
	if diags := gohcl.DecodeBody(body, nil, &atlas); diags.HasErrors() {
		return fmt.Errorf("failed to decode %s: %w", filename, diags)
	}

	for _, cb := range atlas.Components {
		def, err := translateComponent(cb)
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
		model.Components = append(model.Components, def)
	}
	for _, sb := range atlas.Stimuli {
		def, err := translateStimulus(sb)
		if err != nil {
			return fmt.Errorf("%s: %w", filename, err)
		}
		model.Stimuli = append(model.Stimuli, def)
	}

	ctxlog.FromContext(ctx).Debug("Atlas body translated.",
		"file", filename, "components", len(atlas.Components), "stimuli", len(atlas.Stimuli))
	return nil
}

// translateComponent converts the HCL-specific component schema into the
// agnostic model, applying defaults and validating the variant.
func translateComponent(s *schema.Component) (*config.ComponentDef, error) {
	variant := config.Variant(s.Variant)
	switch variant {
	case config.VariantSystem, config.VariantRegion, config.VariantArea:
		// valid
	default:
		return nil, fmt.Errorf("component %q: unknown variant %q", s.Name, s.Variant)
	}
	if s.Name == "" {
		return nil, fmt.Errorf("component with variant %q has an empty name", s.Variant)
	}

	active := true
	if s.Active != nil {
		active = *s.Active
	}

	return &config.ComponentDef{
		Variant:     variant,
		Name:        s.Name,
		Parent:      s.Parent,
		Function:    s.Function,
		AreaType:    s.AreaType,
		Layers:      s.Layers,
		Active:      active,
		Connections: s.Connections,
	}, nil
}

// translateStimulus converts a stimulus block, evaluating its payload
// expression into a plain Go value.
func translateStimulus(s *schema.Stimulus) (*config.StimulusDef, error) {
	payload, err := payloadValue(s.Payload)
	if err != nil {
		return nil, fmt.Errorf("stimulus %q: %w", s.Name, err)
	}
	return &config.StimulusDef{
		Name:      s.Name,
		Target:    s.Target,
		Kind:      s.Kind,
		Strength:  s.Strength,
		Payload:   payload,
		Propagate: s.Propagate,
	}, nil
}

// payloadValue evaluates a payload expression with no variables in scope
// and converts the resulting cty value to a Go value.
func payloadValue(expr hcl.Expression) (any, error) {
	if expr == nil {
		return nil, nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate payload: %w", diags)
	}
	return ctyToGo(val)
}

// ctyToGo converts an evaluated cty value into the loosely-typed form the
// signal payload carries: string, float64, bool, []any, or map[string]any.
func ctyToGo(val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	switch {
	case ty == cty.String:
		var s string
		if err := gocty.FromCtyValue(val, &s); err != nil {
			return nil, err
		}
		return s, nil
	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(val, &f); err != nil {
			return nil, err
		}
		return f, nil
	case ty == cty.Bool:
		var b bool
		if err := gocty.FromCtyValue(val, &b); err != nil {
			return nil, err
		}
		return b, nil
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		var out []any
		for it := val.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			elem, err := ctyToGo(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, elem)
		}
		return out, nil
	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any)
		for it := val.ElementIterator(); it.Next(); {
			kv, ev := it.Element()
			var key string
			if err := gocty.FromCtyValue(kv, &key); err != nil {
				return nil, err
			}
			elem, err := ctyToGo(ev)
			if err != nil {
				return nil, err
			}
			out[key] = elem
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported payload type %s", ty.FriendlyName())
	}
}
