package config

// Variant names the behavior a component is built with.
type Variant string

const (
	// VariantSystem is a structural passthrough node.
	VariantSystem Variant = "system"
	// VariantRegion is a functional region with an activity accumulator.
	VariantRegion Variant = "region"
	// VariantArea is a cortical area, a region with an area-type modifier.
	VariantArea Variant = "area"
)

// Model is the unified, format-agnostic representation of a loaded atlas:
// the component table plus any declared stimuli.
type Model struct {
	Components []*ComponentDef
	Stimuli    []*StimulusDef
}

// ComponentDef is one row of the component table.
type ComponentDef struct {
	Variant     Variant
	Name        string
	Parent      string // full root path of the parent; empty marks the root
	Function    string
	AreaType    string
	Layers      int
	Active      bool
	Connections []string // full root paths of lateral targets
}

// Path returns the full root path this definition declares.
func (d *ComponentDef) Path() string {
	if d.Parent == "" {
		return d.Name
	}
	return d.Parent + "/" + d.Name
}

// StimulusDef describes a signal injection to run against the built tree.
type StimulusDef struct {
	Name      string
	Target    string // component name, resolved by pre-order search
	Kind      string
	Strength  float64
	Payload   any
	Propagate bool
}
