/*
Package temporal provides the core time-period computation engine.

PURPOSE:
  This package contains the types and algorithms for computing calendar
  period boundaries. Given a date and a unit (year, month, week, ...), it
  produces the exact half-open interval for that unit, subdivides it into
  smaller units, navigates forward and backward, and tests containment and
  equality at any granularity. Custom units (fiscal quarters, sprints,
  stable calendar grids) plug in through the unit registry without touching
  the core.

KEY CONCEPTS IN THIS FILE (types.go):
  - Unit: A named granularity of time (string tag, extensible)
  - Duration: Integer counts per unit, applied additively
  - Period: An immutable half-open time interval with its granularity

DESIGN PRINCIPLES:
  1. Immutability: Periods are value snapshots; operations return new ones
  2. Purity: Every operation is a synchronous function of its inputs
  3. Backend independence: All primitive arithmetic goes through DateAdapter
  4. Extensibility: New units register a definition, never fork the core

USAGE:
  eng, _ := temporal.New(adapter.NewNative(time.Monday),
      temporal.WithWeekStartsOn(time.Monday))
  month, _ := eng.CreatePeriod(temporal.UnitMonth, someDate)
  days, _ := eng.Divide(month, temporal.UnitDay)

SEE ALSO:
  - adapter.go: DateAdapter backend contract
  - registry.go: Unit registry
  - ops.go: Divide/Next/Previous/Go/IsSame/Split/Merge
*/
package temporal

import (
	"fmt"
	"time"
)

// =============================================================================
// UNIT - Named granularity of time
// =============================================================================

// Unit identifies a granularity. Built-in units are pre-registered on every
// engine; user-defined names (e.g. "stableMonth", "sprint") are registered
// through DefineUnit.
type Unit string

const (
	UnitYear    Unit = "year"
	UnitQuarter Unit = "quarter"
	UnitMonth   Unit = "month"
	UnitWeek    Unit = "week"
	UnitDay     Unit = "day"
	UnitHour    Unit = "hour"
	UnitMinute  Unit = "minute"
	UnitSecond  Unit = "second"

	// UnitCustom tags spans that do not correspond to a registered unit,
	// such as the parts produced by Split or a non-aligned Merge.
	UnitCustom Unit = "custom"
)

// unitRank orders the built-in units from finest to coarsest. Used as the
// fallback "is smaller than" test when a definition carries no explicit
// Divisions list.
var unitRank = map[Unit]int{
	UnitSecond:  0,
	UnitMinute:  1,
	UnitHour:    2,
	UnitDay:     3,
	UnitWeek:    4,
	UnitMonth:   5,
	UnitQuarter: 6,
	UnitYear:    7,
}

// IsCalendarUnit reports whether u is one of the seven units every
// DateAdapter must understand. Quarter is deliberately excluded: quarter
// arithmetic lives in the engine, never in a backend.
func IsCalendarUnit(u Unit) bool {
	switch u {
	case UnitYear, UnitMonth, UnitWeek, UnitDay, UnitHour, UnitMinute, UnitSecond:
		return true
	}
	return false
}

// =============================================================================
// DURATION - Additive counts per unit
// =============================================================================

// Duration is a bag of integer counts, applied additively by an adapter.
// All fields are optional; the zero value is an empty duration.
type Duration struct {
	Years   int
	Months  int
	Weeks   int
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// IsZero reports whether no field is set.
func (d Duration) IsZero() bool {
	return d == Duration{}
}

// Scale multiplies every count by n. Used by Go for direct multi-step
// navigation.
func (d Duration) Scale(n int) Duration {
	return Duration{
		Years:   d.Years * n,
		Months:  d.Months * n,
		Weeks:   d.Weeks * n,
		Days:    d.Days * n,
		Hours:   d.Hours * n,
		Minutes: d.Minutes * n,
		Seconds: d.Seconds * n,
	}
}

// =============================================================================
// PERIOD - Immutable half-open interval with granularity
// =============================================================================

// Period is a bounded span of time at a given granularity. Start is
// inclusive, End exclusive: the interval is [Start, End). Date is the anchor
// the period was constructed from (Start <= Date < End); it is retained so
// navigation can re-derive the period, and is NOT part of period identity.
type Period struct {
	Type  Unit
	Start time.Time
	End   time.Time
	Date  time.Time
}

// Contains reports whether t falls inside the half-open interval [Start, End).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Duration returns End - Start.
func (p Period) Duration() time.Duration {
	return p.End.Sub(p.Start)
}

// Equal reports whether two periods denote the same span at the same
// granularity. The construction anchor is ignored: next(previous(p)) lands on
// the same period even though its anchor was re-derived.
func (p Period) Equal(other Period) bool {
	return p.Type == other.Type && p.Start.Equal(other.Start) && p.End.Equal(other.End)
}

func (p Period) String() string {
	return fmt.Sprintf("%s[%s, %s)", p.Type,
		p.Start.Format(time.RFC3339), p.End.Format(time.RFC3339))
}
