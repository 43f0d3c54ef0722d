/*
adapter.go - DateAdapter backend contract

PURPOSE:
  Defines the swappable backend that performs primitive date arithmetic.
  The engine makes zero assumptions about how a backend computes; it only
  requires the semantics below. Three interchangeable implementations ship
  with this module:

    temporal/adapter   zero-dependency reference backend (stdlib time)
    adapter/nowtime    backed by github.com/jinzhu/now
    adapter/carbon     backed by github.com/golang-module/carbon/v2

CONTRACT:
  - StartOf/EndOf return the backend's boundary instants for the seven
    calendar units (year, month, week, day, hour, minute, second). EndOf is
    inclusive in the 23:59:59.999999999 style; EndOf(u) - StartOf(u) equals
    the unit's true calendar duration minus one nanosecond (28-31 days for
    month, 365/366 for year).
  - Any other unit (including "quarter", which the engine owns) yields the
    zero time.Time from StartOf/EndOf and false from IsSame. Never a silent
    fallback to some default unit.
  - IsSame(a, b, u) == StartOf(a, u).Equal(StartOf(b, u)).
  - Add/Subtract must clamp month and year rollover: Jan 31 + 1 month is the
    last day of February, never an invalid date or a spill into March.
    Backends built on native date primitives must guard this explicitly.
  - Week boundaries honor the weekStartsOn the backend was constructed with.
    temporal.New threads one value to both engine and backend in the common
    path; a hand-wired mismatch is a caller bug.

  Every implementation must pass the identical compliance suite in
  temporal/adaptertest. No engine operation may depend on backend-specific
  behavior beyond this contract.

SEE ALSO:
  - adapter/native.go: reference implementation
  - adaptertest/adaptertest.go: compliance suite
*/
package temporal

import "time"

// DateAdapter is a stateless date-arithmetic backend.
type DateAdapter interface {
	// Add applies d additively to t, clamping month/year overflow.
	Add(t time.Time, d Duration) time.Time

	// Subtract applies d negatively to t, clamping month/year overflow.
	Subtract(t time.Time, d Duration) time.Time

	// StartOf returns the first instant of the unit containing t.
	StartOf(t time.Time, unit Unit) time.Time

	// EndOf returns the last representable instant of the unit containing t.
	EndOf(t time.Time, unit Unit) time.Time

	// IsSame reports whether a and b fall in the same unit.
	IsSame(a, b time.Time, unit Unit) bool

	// GetWeekday returns the weekday of t (0=Sunday .. 6=Saturday).
	GetWeekday(t time.Time) time.Weekday
}
