// Package schema holds the HCL-tagged structures that atlas files decode
// into. These are format-specific; the hcl package translates them into the
// agnostic config model.
package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// Component represents a `component` block from an atlas file: one node of
// the anatomy tree, declared as a row of a flat data table.
type Component struct {
	Variant string `hcl:"variant,label"`
	Name    string `hcl:"name,label"`

	// Parent is the full root path of the parent component. Empty marks
	// the tree root. Paths are used instead of bare names because names
	// are not guaranteed unique.
	Parent string `hcl:"parent,optional"`

	// Function is the anatomical function tag of region and area variants.
	Function string `hcl:"function,optional"`

	// AreaType classifies area variants: motor, sensory, or association.
	AreaType string `hcl:"area_type,optional"`

	// Layers overrides the cortical layer count for area variants.
	Layers int `hcl:"layers,optional"`

	// Active defaults to true when omitted.
	Active *bool `hcl:"active,optional"`

	// Connections lists full root paths of lateral broadcast targets.
	Connections []string `hcl:"connections,optional"`
}

// Stimulus represents a `stimulus` block: a named signal injection the
// driver applies after the tree is built.
type Stimulus struct {
	Name     string  `hcl:"name,label"`
	Target   string  `hcl:"target"`
	Kind     string  `hcl:"kind"`
	Strength float64 `hcl:"strength"`

	// Payload is kept as an expression so atlases can attach arbitrary
	// values (strings, numbers, objects); evaluation happens during
	// translation.
	Payload hcl.Expression `hcl:"payload,optional"`

	// Propagate broadcasts the target's outputs along its connections.
	Propagate bool `hcl:"propagate,optional"`
}

// Atlas represents the top-level structure of an atlas file.
type Atlas struct {
	Components []*Component `hcl:"component,block"`
	Stimuli    []*Stimulus  `hcl:"stimulus,block"`
	Body       hcl.Body     `hcl:",remain"`
}
