// Package signal defines the value object that travels between components
// during a processing pass. A Signal is immutable by convention: processing
// steps manufacture fresh instances and never mutate their input.
package signal

// Signal carries a kind tag, a strength magnitude, and an opaque payload.
// Strength is conventionally in the 0.0–1.0 range but is not clamped here;
// components apply their own decay and amplification factors.
type Signal struct {
	Kind     string
	Strength float64
	Payload  any
}

// New constructs a Signal value.
func New(kind string, strength float64, payload any) Signal {
	return Signal{Kind: kind, Strength: strength, Payload: payload}
}
