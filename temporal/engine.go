/*
engine.go - Engine construction and the period factory

PURPOSE:
  The Engine bundles the three things every operation needs - the date
  backend, the week-start configuration, and the unit registry - and exposes
  CreatePeriod, the factory that turns (unit, date) into a bounded Period.

CONFIGURATION:
  Both the adapter and weekStartsOn are supplied once at construction and
  threaded through every call; nothing is read from ambient state. A nil
  adapter is a configuration error at New, and every backend-touching
  operation re-checks so a zero-value Engine fails loudly instead of
  defaulting.

SEE ALSO:
  - units.go: built-in unit definitions registered here
  - ops.go: operations on Periods
*/
package temporal

import (
	"time"

	"go.uber.org/zap"
)

// =============================================================================
// ENGINE
// =============================================================================

// Engine is the entry point for all period computations. It is safe for
// concurrent use once configured; the registry is the only mutable state and
// is guarded internally.
type Engine struct {
	adapter      DateAdapter
	weekStartsOn time.Weekday
	registry     *Registry
	log          *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithWeekStartsOn sets the first day of the week (0=Sunday .. 6=Saturday).
// Default: Sunday. The adapter must be constructed with the same value.
func WithWeekStartsOn(d time.Weekday) Option {
	return func(e *Engine) { e.weekStartsOn = d }
}

// WithLogger sets the logger used for registry warnings. Default: no-op.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New creates an Engine over the given backend with the built-in units
// pre-registered. A nil adapter is rejected immediately.
func New(adapter DateAdapter, opts ...Option) (*Engine, error) {
	if adapter == nil {
		return nil, &ConfigurationError{Op: "temporal.New"}
	}
	e := &Engine{
		adapter:      adapter,
		weekStartsOn: time.Sunday,
		log:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.registry = NewRegistry(e.log)
	e.RegisterBuiltins()
	return e, nil
}

// Adapter returns the configured backend.
func (e *Engine) Adapter() DateAdapter { return e.adapter }

// WeekStartsOn returns the configured first day of the week.
func (e *Engine) WeekStartsOn() time.Weekday { return e.weekStartsOn }

// =============================================================================
// REGISTRY SURFACE
// =============================================================================

// DefineUnit registers or overwrites a unit definition.
func (e *Engine) DefineUnit(name Unit, def UnitDefinition) {
	e.registry.Define(name, def)
}

// GetUnitDefinition returns the definition for name.
func (e *Engine) GetUnitDefinition(name Unit) (UnitDefinition, bool) {
	return e.registry.Get(name)
}

// HasUnit reports whether name is registered.
func (e *Engine) HasUnit(name Unit) bool { return e.registry.Has(name) }

// RegisteredUnits returns all registered unit names, sorted.
func (e *Engine) RegisteredUnits() []Unit { return e.registry.Units() }

// ClearUnitRegistry wipes the registry, built-ins included. Test isolation
// only; follow with RegisterBuiltins to restore the standard set.
func (e *Engine) ClearUnitRegistry() { e.registry.Clear() }

// =============================================================================
// PERIOD FACTORY
// =============================================================================

// CreatePeriod builds the Period of the given unit containing date. The unit
// must be registered; there is no fallback.
func (e *Engine) CreatePeriod(unit Unit, date time.Time) (Period, error) {
	if e.adapter == nil {
		return Period{}, &ConfigurationError{Op: "CreatePeriod"}
	}
	def, ok := e.registry.Get(unit)
	if !ok {
		return Period{}, &UnknownUnitError{Unit: unit}
	}
	start, end := def.CreatePeriod(e, date)
	return Period{Type: unit, Start: start, End: end, Date: date}, nil
}

// Validate runs the unit definition's invariant predicate against p.
// Returns nil when the unit has no predicate or the predicate passes.
// Failing validation is soft: the core reports, the caller decides.
func (e *Engine) Validate(p Period) *ValidationError {
	def, ok := e.registry.Get(p.Type)
	if !ok {
		return &ValidationError{Unit: p.Type, Start: p.Start, End: p.End, Reason: "unit not registered"}
	}
	if def.Validate == nil || def.Validate(p) {
		return nil
	}
	return &ValidationError{Unit: p.Type, Start: p.Start, End: p.End, Reason: "definition predicate rejected period"}
}
