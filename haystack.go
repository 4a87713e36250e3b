// Package haystack is the public facade over the Haystack data model and
// codecs: the process-wide unit registry toggle (the one piece of shared
// state the resource model allows, per spec.md §5) lives here rather than
// in internal/core, since it is configuration a calling program sets once
// at startup, not a data-model concern.
package haystack

import "sync/atomic"

// UnitRegistry resolves a Number's opaque unit label to a display symbol.
// It never changes the wire form of a Number — only callers that ask for
// a resolved symbol see its effect. Left unset, units stay opaque strings,
// matching spec.md §9's "do not hard-code the dependency" design note.
type UnitRegistry interface {
	Resolve(label string) (symbol string, ok bool)
}

// NoopUnitRegistry resolves nothing; it is the default.
type NoopUnitRegistry struct{}

func (NoopUnitRegistry) Resolve(string) (string, bool) { return "", false }

var currentRegistry atomic.Value

func init() {
	currentRegistry.Store(unitRegistryBox{UnitRegistry: NoopUnitRegistry{}})
}

// atomic.Value requires all stored values to share a concrete type, so the
// interface is boxed.
type unitRegistryBox struct {
	UnitRegistry
}

// SetUnitRegistry installs r as the process-wide unit registry. Intended
// to be called once at program start, before any concurrent use.
func SetUnitRegistry(r UnitRegistry) {
	if r == nil {
		r = NoopUnitRegistry{}
	}
	currentRegistry.Store(unitRegistryBox{UnitRegistry: r})
}

// ResolveUnit resolves label through the currently installed registry.
func ResolveUnit(label string) (string, bool) {
	return currentRegistry.Load().(unitRegistryBox).Resolve(label)
}
