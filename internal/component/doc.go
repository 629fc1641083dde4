// Package component defines the node model of the anatomy tree. A Component
// holds its place in the strict ownership hierarchy (parent/children), an
// independent set of lateral connections used for signal broadcast, and a
// Behavior that determines how it transforms incoming signals.
//
// The hierarchy is a tree by construction; connections form an unvalidated
// directed graph that may cross subtrees, so Propagate guards its traversal
// with a visited set.
package component
