/*
Package adapter provides the zero-dependency reference DateAdapter.

PURPOSE:
  Implements the temporal.DateAdapter contract on the standard library alone.
  This is the backend the engine is tested against first and the template
  the library-backed backends (adapter/nowtime, adapter/carbon) must match
  bit for bit under the conformance suite.

OVERFLOW GUARD:
  time.AddDate normalizes out-of-range dates (Jan 31 + 1 month = Mar 2/3),
  which violates the contract. Month and year arithmetic here clamps the day
  of month to the target month's length instead: Jan 31 + 1 month is Feb 28
  or 29, Feb 29 + 1 year is Feb 28.

SEE ALSO:
  - temporal/adapter.go: the contract
  - temporal/adaptertest: the compliance suite
*/
package adapter

import (
	"time"

	"github.com/warp/temporal-engine/temporal"
)

// Native is the stdlib-only DateAdapter. The zero value starts weeks on
// Sunday; use NewNative to pick another week start.
type Native struct {
	weekStartsOn time.Weekday
}

// NewNative creates a Native adapter whose week boundaries begin on
// weekStartsOn (0=Sunday .. 6=Saturday).
func NewNative(weekStartsOn time.Weekday) *Native {
	return &Native{weekStartsOn: weekStartsOn}
}

// =============================================================================
// ARITHMETIC
// =============================================================================

// Add applies d additively: calendar months/years first (clamped), then
// weeks/days, then the sub-day fields.
func (n *Native) Add(t time.Time, d temporal.Duration) time.Time {
	t = AddMonthsClamped(t, d.Years*12+d.Months)
	t = t.AddDate(0, 0, d.Weeks*7+d.Days)
	return t.Add(time.Duration(d.Hours)*time.Hour +
		time.Duration(d.Minutes)*time.Minute +
		time.Duration(d.Seconds)*time.Second)
}

// Subtract is the mirror of Add.
func (n *Native) Subtract(t time.Time, d temporal.Duration) time.Time {
	return n.Add(t, d.Scale(-1))
}

// AddMonthsClamped shifts t by the given number of calendar months, clamping
// the day of month to the target month's length. Exported because the
// library-backed adapters without native clamped arithmetic reuse it.
func AddMonthsClamped(t time.Time, months int) time.Time {
	if months == 0 {
		return t
	}
	y, m, day := t.Date()
	hh, mm, ss := t.Clock()

	first := time.Date(y, m, 1, hh, mm, ss, t.Nanosecond(), t.Location()).AddDate(0, months, 0)
	if last := daysIn(first.Year(), first.Month(), t.Location()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, hh, mm, ss, t.Nanosecond(), t.Location())
}

// daysIn returns the number of days in the given month. Day 0 of the next
// month is the last day of this one.
func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// =============================================================================
// BOUNDARIES
// =============================================================================

// StartOf returns the first instant of the unit containing t. Unsupported
// units (anything beyond the seven calendar units) return the zero time.
func (n *Native) StartOf(t time.Time, unit temporal.Unit) time.Time {
	y, m, d := t.Date()
	loc := t.Location()
	switch unit {
	case temporal.UnitYear:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	case temporal.UnitMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case temporal.UnitWeek:
		day := time.Date(y, m, d, 0, 0, 0, 0, loc)
		back := (int(day.Weekday()) - int(n.weekStartsOn) + 7) % 7
		return day.AddDate(0, 0, -back)
	case temporal.UnitDay:
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	case temporal.UnitHour:
		return time.Date(y, m, d, t.Hour(), 0, 0, 0, loc)
	case temporal.UnitMinute:
		return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc)
	case temporal.UnitSecond:
		return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, loc)
	default:
		return time.Time{}
	}
}

// EndOf returns the last representable instant of the unit containing t:
// one nanosecond before the start of the next unit.
func (n *Native) EndOf(t time.Time, unit temporal.Unit) time.Time {
	start := n.StartOf(t, unit)
	if start.IsZero() {
		return time.Time{}
	}
	return n.Add(start, unitStep(unit)).Add(-time.Nanosecond)
}

// IsSame reports whether a and b share the unit's start. False for
// unsupported units, never a fallback.
func (n *Native) IsSame(a, b time.Time, unit temporal.Unit) bool {
	sa := n.StartOf(a, unit)
	if sa.IsZero() {
		return false
	}
	return sa.Equal(n.StartOf(b, unit))
}

// GetWeekday returns t's weekday (0=Sunday .. 6=Saturday).
func (n *Native) GetWeekday(t time.Time) time.Weekday {
	return t.Weekday()
}

// unitStep maps a calendar unit to the duration of one of it.
func unitStep(unit temporal.Unit) temporal.Duration {
	switch unit {
	case temporal.UnitYear:
		return temporal.Duration{Years: 1}
	case temporal.UnitMonth:
		return temporal.Duration{Months: 1}
	case temporal.UnitWeek:
		return temporal.Duration{Weeks: 1}
	case temporal.UnitDay:
		return temporal.Duration{Days: 1}
	case temporal.UnitHour:
		return temporal.Duration{Hours: 1}
	case temporal.UnitMinute:
		return temporal.Duration{Minutes: 1}
	default:
		return temporal.Duration{Seconds: 1}
	}
}
