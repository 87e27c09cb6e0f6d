// Package model assembles resolved fragments into named, emission-ready
// model trees.
//
// The registry is the run's shared naming state: every generated model
// name is claimed there under its parent-qualified form, so equal claims
// deduplicate and contradictory ones fail the owning fragment. Scope
// policy (nested, flattened or mixed) is applied per shape as it is
// claimed, and each finished tree is sorted so declarations precede
// their uses.
package model
