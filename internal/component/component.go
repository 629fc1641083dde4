package component

import (
	"context"

	"github.com/vk/neuratlas/internal/ctxlog"
	"github.com/vk/neuratlas/internal/signal"
)

// PathSeparator joins ancestor names into a component path.
const PathSeparator = "/"

// Component is a single node of the anatomy tree. Structure is fixed after
// the build phase; only behavior-held state (a Region's activity level)
// changes afterwards.
type Component struct {
	name        string
	parent      *Component
	children    []*Component
	connections []*Component
	active      bool
	behavior    Behavior
}

// New creates an active component with the given behavior. A nil behavior
// defaults to Passthrough.
func New(name string, behavior Behavior) *Component {
	if behavior == nil {
		behavior = Passthrough{}
	}
	return &Component{name: name, active: true, behavior: behavior}
}

func (c *Component) Name() string              { return c.name }
func (c *Component) Parent() *Component        { return c.parent }
func (c *Component) Children() []*Component    { return c.children }
func (c *Component) Connections() []*Component { return c.connections }
func (c *Component) Active() bool              { return c.active }
func (c *Component) SetActive(active bool)     { c.active = active }
func (c *Component) Behavior() Behavior        { return c.behavior }

// AddChild appends child to this component's children and takes ownership
// of it. A child that already belongs to another parent is detached from
// that parent first, so a component is never listed under two parents.
func (c *Component) AddChild(child *Component) {
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = c
	c.children = append(c.children, child)
}

func (c *Component) removeChild(child *Component) {
	for i, ch := range c.children {
		if ch == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return
		}
	}
}

// AddConnection appends a lateral edge to target. Connections are not
// deduplicated or validated; Propagate guards against any cycles they form.
func (c *Component) AddConnection(target *Component) {
	c.connections = append(c.connections, target)
}

// Path returns the root-to-component name chain joined by PathSeparator.
func (c *Component) Path() string {
	if c.parent == nil {
		return c.name
	}
	return c.parent.Path() + PathSeparator + c.name
}

// Process runs the component's behavior on sig and returns the output
// signals. Region-backed components also bump their activity level.
func (c *Component) Process(sig signal.Signal) []signal.Signal {
	return c.behavior.process(c, sig)
}

// ActivityLevel returns the accumulated activity of Region-backed
// components, and 0 for every other variant.
func (c *Component) ActivityLevel() float64 {
	switch b := c.behavior.(type) {
	case *Region:
		return b.activity
	case *CorticalArea:
		return b.Region.activity
	}
	return 0
}

// Propagate broadcasts sig along the connection graph: every active,
// not-yet-visited connection processes the signal and recursively forwards
// its own outputs. Each component processes at most one signal per
// broadcast, which bounds the walk even when connections form a cycle.
func (c *Component) Propagate(ctx context.Context, sig signal.Signal) {
	visited := map[*Component]struct{}{c: {}}
	c.propagate(ctx, sig, visited)
}

func (c *Component) propagate(ctx context.Context, sig signal.Signal, visited map[*Component]struct{}) {
	logger := ctxlog.FromContext(ctx)
	for _, conn := range c.connections {
		if !conn.active {
			logger.Debug("Propagation skipped inactive component.", "component", conn.name)
			continue
		}
		if _, seen := visited[conn]; seen {
			logger.Debug("Propagation cut at already-visited component.", "component", conn.name)
			continue
		}
		visited[conn] = struct{}{}
		for _, out := range conn.Process(sig) {
			conn.propagate(ctx, out, visited)
		}
	}
}
