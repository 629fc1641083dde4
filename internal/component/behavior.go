package component

import (
	"fmt"
	"math"

	"github.com/vk/neuratlas/internal/signal"
)

// Decay and amplification factors applied during signal processing.
const (
	passthroughDecay = 0.9
	regionDecay      = 0.8
	activityGain     = 0.1
	motorGain        = 1.2
	sensoryFilter    = 0.9
)

// Area types recognized by CorticalArea.
const (
	AreaMotor       = "motor"
	AreaSensory     = "sensory"
	AreaAssociation = "association"
)

// KindMotorCommand is the signal kind that motor areas amplify.
const KindMotorCommand = "motor_command"

// DefaultLayers is the layer count assigned to cortical areas unless the
// atlas overrides it.
const DefaultLayers = 6

// Behavior determines how a component transforms an incoming signal into
// zero or more output signals. Implementations document whether they carry
// mutable state across calls.
type Behavior interface {
	process(c *Component, sig signal.Signal) []signal.Signal
}

// Passthrough relays a signal unchanged apart from slight decay. It holds
// no state.
type Passthrough struct{}

func (Passthrough) process(_ *Component, sig signal.Signal) []signal.Signal {
	return []signal.Signal{signal.New(sig.Kind, sig.Strength*passthroughDecay, sig.Payload)}
}

// Region transforms a signal according to its anatomical function and
// accumulates an activity level capped at 1.0. The accumulator is the only
// state mutated after construction.
type Region struct {
	Function string

	activity float64
}

func (r *Region) process(c *Component, sig signal.Signal) []signal.Signal {
	r.activity = math.Min(1.0, r.activity+sig.Strength*activityGain)
	out := signal.New(
		r.Function+"_processed",
		sig.Strength*regionDecay,
		fmt.Sprintf("Processed by %s", c.name),
	)
	return []signal.Signal{out}
}

// CorticalArea composes Region processing with an area-type adjustment:
// motor areas amplify motor commands, sensory areas filter everything,
// association areas leave the Region output untouched.
type CorticalArea struct {
	Region
	AreaType string
	Layers   int
}

func (a *CorticalArea) process(c *Component, sig signal.Signal) []signal.Signal {
	outs := a.Region.process(c, sig)
	switch {
	case a.AreaType == AreaMotor && sig.Kind == KindMotorCommand:
		outs[0].Strength *= motorGain
	case a.AreaType == AreaSensory:
		outs[0].Strength *= sensoryFilter
	}
	return outs
}
