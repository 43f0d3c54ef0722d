/*
registry.go - Unit registration and lookup

PURPOSE:
  Provides the table mapping a unit name to its UnitDefinition. The registry
  is the single indirection point that lets Divide/Next/Go stay unit-agnostic:
  every operation resolves behavior through it, so extension packages add
  fiscal calendars, sprints, or stable grids without forking the core.

HOW IT WORKS:
  1. The engine pre-registers the built-in units at construction
  2. Extension packages call DefineUnit with their own definitions
  3. Every operation looks the definition up by name on each call

WHY CONSTRUCTOR-SCOPED (not a package global):
  Two engines with different weekStartsOn settings must be able to coexist
  in one process without their custom units interfering. Each engine owns
  its table; Clear exists only for test isolation.

OVERWRITE SEMANTICS:
  Re-registering a name is a supported extension pattern, so it logs a
  warning instead of failing. Definitions are never implicitly deleted.

SEE ALSO:
  - units.go: built-in definitions
  - engine.go: Engine-level wrappers (DefineUnit, HasUnit, ...)
*/
package temporal

import (
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
)

// =============================================================================
// UNIT DEFINITION
// =============================================================================

// UnitDefinition is a registry entry describing how one unit behaves.
type UnitDefinition struct {
	// CreatePeriod computes the half-open [start, end) boundaries of the
	// unit containing date. Required.
	CreatePeriod func(e *Engine, date time.Time) (start, end time.Time)

	// Step is the duration Next/Previous/Go advance by per unit. Required
	// for navigation; a zero Step makes the unit non-navigable.
	Step Duration

	// Anchor returns the instant navigation steps from. Optional: when nil,
	// navigation anchors on Period.Start, which is correct for any unit
	// whose Start lies inside its nominal span. Units padded with foreign
	// days (the stable month grid) anchor on their nominal boundary instead.
	Anchor func(e *Engine, p Period) time.Time

	// Divisions lists the units this one may legally be divided into.
	// When nil, divisibility falls back to the built-in rank order.
	Divisions []Unit

	// MergesTo names the natural coarser unit this one composes into.
	MergesTo Unit

	// Validate is an optional invariant predicate (e.g. "exactly 42 days").
	// The core never rejects a period on its own; see Engine.Validate.
	Validate func(p Period) bool
}

// =============================================================================
// REGISTRY
// =============================================================================

// Registry is a concurrency-safe name -> definition table. Writes are
// expected at startup/configuration time, reads on every operation.
type Registry struct {
	mu   sync.RWMutex
	defs map[Unit]UnitDefinition
	log  *zap.Logger
}

// NewRegistry creates an empty registry. log may not be nil; pass
// zap.NewNop() for silence.
func NewRegistry(log *zap.Logger) *Registry {
	return &Registry{
		defs: make(map[Unit]UnitDefinition),
		log:  log,
	}
}

// Define registers or overwrites a definition. Overwriting an existing name
// logs a warning: re-registration is legitimate, but usually intentional
// only once.
func (r *Registry) Define(name Unit, def UnitDefinition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.defs[name]; exists {
		r.log.Warn("unit definition overwritten", zap.String("unit", string(name)))
	}
	r.defs[name] = def
}

// Get returns the definition for name.
func (r *Registry) Get(name Unit) (UnitDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[name]
	return def, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name Unit) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.defs[name]
	return ok
}

// Units returns all registered unit names, sorted for determinism.
func (r *Registry) Units() []Unit {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Unit, 0, len(r.defs))
	for name := range r.defs {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clear wipes every entry, built-ins included. Test isolation only:
// already-constructed Periods remain valid snapshots, but they can no longer
// be re-derived until their units are registered again (the engine's
// RegisterBuiltins restores the standard set).
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defs = make(map[Unit]UnitDefinition)
}
