// Package hcl implements the config.Loader interface for HCL atlas files.
// It parses files with hclparse, decodes them into the schema structures,
// and translates the result into the format-agnostic config model,
// evaluating payload expressions into plain Go values along the way.
package hcl
