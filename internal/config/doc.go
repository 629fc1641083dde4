// Package config defines the format-agnostic model of a loaded atlas. The
// hcl package produces this model from .hcl files and the atlas package
// consumes it, so neither depends on the other's representation.
package config
