// Package atlas turns a loaded config model into a component tree. Build is
// a generic multi-pass tree-builder over the declarative component table;
// Default builds the embedded human nervous system fixture that ships with
// the binary.
package atlas
