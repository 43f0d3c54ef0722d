/*
units.go - Built-in unit definitions

PURPOSE:
  Registers the standard calendar units. Each definition delegates boundary
  arithmetic to the backend, with one documented exception: quarter.

THE QUARTER EXCEPTION:
  Most date backends do not expose quarters natively, so the quarter
  definition computes boundaries from floor(month/3) directly instead of
  delegating to the adapter. Engine.IsSame mirrors the same branch. This
  asymmetry is deliberate and preserved for interoperability across all
  backends - see the engine's IsSame and the conformance suite, which pins
  adapters to NOT understand "quarter".

BOUNDARY CONSTRUCTION:
  start = adapter.StartOf(date, unit); end = adapter.Add(start, one step).
  Since start is aligned, the add never hits month-overflow clamping, and
  end equals the start of the next unit - giving the half-open interval with
  end - start equal to the true calendar duration.
*/
package temporal

import "time"

// RegisterBuiltins (re-)registers the standard calendar units on the
// engine's registry. Called by New; call again after ClearUnitRegistry.
func (e *Engine) RegisterBuiltins() {
	for name, def := range builtinDefinitions() {
		e.registry.Define(name, def)
	}
}

func builtinDefinitions() map[Unit]UnitDefinition {
	defs := map[Unit]UnitDefinition{
		UnitYear: {
			CreatePeriod: calendarBounds(UnitYear, Duration{Years: 1}),
			Step:         Duration{Years: 1},
			Divisions:    []Unit{UnitQuarter, UnitMonth, UnitWeek, UnitDay},
		},
		UnitQuarter: {
			CreatePeriod: quarterBounds,
			Step:         Duration{Months: 3},
			Divisions:    []Unit{UnitMonth, UnitWeek, UnitDay},
			MergesTo:     UnitYear,
		},
		UnitMonth: {
			CreatePeriod: calendarBounds(UnitMonth, Duration{Months: 1}),
			Step:         Duration{Months: 1},
			Divisions:    []Unit{UnitWeek, UnitDay},
			MergesTo:     UnitQuarter,
		},
		UnitWeek: {
			CreatePeriod: calendarBounds(UnitWeek, Duration{Weeks: 1}),
			Step:         Duration{Weeks: 1},
			Divisions:    []Unit{UnitDay, UnitHour},
			MergesTo:     UnitMonth,
		},
		UnitDay: {
			CreatePeriod: calendarBounds(UnitDay, Duration{Days: 1}),
			Step:         Duration{Days: 1},
			Divisions:    []Unit{UnitHour, UnitMinute, UnitSecond},
			MergesTo:     UnitWeek,
		},
		UnitHour: {
			CreatePeriod: calendarBounds(UnitHour, Duration{Hours: 1}),
			Step:         Duration{Hours: 1},
			Divisions:    []Unit{UnitMinute, UnitSecond},
			MergesTo:     UnitDay,
		},
		UnitMinute: {
			CreatePeriod: calendarBounds(UnitMinute, Duration{Minutes: 1}),
			Step:         Duration{Minutes: 1},
			Divisions:    []Unit{UnitSecond},
			MergesTo:     UnitHour,
		},
		UnitSecond: {
			CreatePeriod: calendarBounds(UnitSecond, Duration{Seconds: 1}),
			Step:         Duration{Seconds: 1},
			MergesTo:     UnitMinute,
		},
	}
	return defs
}

// calendarBounds builds the boundary rule for a unit the backend understands.
func calendarBounds(unit Unit, step Duration) func(*Engine, time.Time) (time.Time, time.Time) {
	return func(e *Engine, date time.Time) (time.Time, time.Time) {
		start := e.adapter.StartOf(date, unit)
		return start, e.adapter.Add(start, step)
	}
}

// quarterBounds computes quarter boundaries without the adapter: quarters
// are floor(month/3) groupings of calendar months.
func quarterBounds(e *Engine, date time.Time) (time.Time, time.Time) {
	y, m, _ := date.Date()
	qm := time.Month((int(m)-1)/3*3 + 1)
	start := time.Date(y, qm, 1, 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 3, 0)
}

// quarterIndex returns the zero-based quarter of t. Shared by quarterBounds
// callers and the IsSame quarter branch.
func quarterIndex(t time.Time) int {
	return (int(t.Month()) - 1) / 3
}
