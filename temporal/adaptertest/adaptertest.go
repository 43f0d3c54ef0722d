/*
Package adaptertest is the executable specification of the DateAdapter
contract.

PURPOSE:
  Every backend implementation must pass this identical suite - the native
  stdlib adapter and both library-backed adapters run the same assertions,
  so no engine operation can come to depend on backend-specific behavior.

ORGANIZATION:
  The suite is grouped by contract area:
  1. Boundary semantics    - StartOf/EndOf instants and true calendar durations
  2. Sameness              - IsSame == start-of equality
  3. Rollover clamping     - month/year arithmetic never overflows
  4. Week configuration    - Sunday and Monday week starts both honored
  5. Unsupported units     - zero values, never silent fallbacks

USAGE:
  func TestConformance(t *testing.T) {
      adaptertest.Run(t, func(ws time.Weekday) temporal.DateAdapter {
          return mybackend.New(ws)
      })
  }
*/
package adaptertest

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/temporal-engine/temporal"
)

// Factory builds a fresh adapter configured with the given week start.
type Factory func(weekStartsOn time.Weekday) temporal.DateAdapter

// Run executes the full compliance suite against the factory's adapters.
func Run(t *testing.T, factory Factory) {
	t.Run("Boundaries", func(t *testing.T) { testBoundaries(t, factory) })
	t.Run("CalendarDurations", func(t *testing.T) { testCalendarDurations(t, factory) })
	t.Run("Sameness", func(t *testing.T) { testSameness(t, factory) })
	t.Run("RolloverClamp", func(t *testing.T) { testRolloverClamp(t, factory) })
	t.Run("WeekStart", func(t *testing.T) { testWeekStart(t, factory) })
	t.Run("Weekday", func(t *testing.T) { testWeekday(t, factory) })
	t.Run("UnsupportedUnits", func(t *testing.T) { testUnsupportedUnits(t, factory) })
}

func date(y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
}

func testBoundaries(t *testing.T, factory Factory) {
	a := factory(time.Sunday)
	ref := date(2024, time.June, 15, 13, 45, 30)

	cases := []struct {
		unit  temporal.Unit
		start time.Time
	}{
		{temporal.UnitYear, date(2024, time.January, 1, 0, 0, 0)},
		{temporal.UnitMonth, date(2024, time.June, 1, 0, 0, 0)},
		{temporal.UnitWeek, date(2024, time.June, 9, 0, 0, 0)}, // Jun 15 2024 is a Saturday
		{temporal.UnitDay, date(2024, time.June, 15, 0, 0, 0)},
		{temporal.UnitHour, date(2024, time.June, 15, 13, 0, 0)},
		{temporal.UnitMinute, date(2024, time.June, 15, 13, 45, 0)},
		{temporal.UnitSecond, date(2024, time.June, 15, 13, 45, 30)},
	}
	for _, tc := range cases {
		t.Run(string(tc.unit), func(t *testing.T) {
			got := a.StartOf(ref, tc.unit)
			assert.True(t, tc.start.Equal(got), "StartOf(%s): want %s, got %s", tc.unit, tc.start, got)

			// EndOf is inclusive: one nanosecond before the next start.
			end := a.EndOf(ref, tc.unit)
			assert.True(t, end.After(ref) || end.Equal(ref), "EndOf(%s) must not precede the reference", tc.unit)
			assert.Equal(t, 999999999, end.Nanosecond(), "EndOf(%s) should sit at .999999999", tc.unit)
		})
	}
}

func testCalendarDurations(t *testing.T, factory Factory) {
	a := factory(time.Sunday)

	monthDays := []struct {
		in   time.Time
		days int
	}{
		{date(2024, time.January, 10, 0, 0, 0), 31},
		{date(2024, time.February, 10, 0, 0, 0), 29}, // leap
		{date(2023, time.February, 10, 0, 0, 0), 28},
		{date(2024, time.April, 10, 0, 0, 0), 30},
	}
	for _, tc := range monthDays {
		span := a.EndOf(tc.in, temporal.UnitMonth).Sub(a.StartOf(tc.in, temporal.UnitMonth)) + time.Nanosecond
		assert.Equal(t, time.Duration(tc.days)*24*time.Hour, span,
			"month of %s should span %d days", tc.in.Format("2006-01"), tc.days)
	}

	yearDays := []struct {
		in   time.Time
		days int
	}{
		{date(2024, time.July, 1, 0, 0, 0), 366},
		{date(2023, time.July, 1, 0, 0, 0), 365},
	}
	for _, tc := range yearDays {
		span := a.EndOf(tc.in, temporal.UnitYear).Sub(a.StartOf(tc.in, temporal.UnitYear)) + time.Nanosecond
		assert.Equal(t, time.Duration(tc.days)*24*time.Hour, span,
			"year %d should span %d days", tc.in.Year(), tc.days)
	}

	weekSpan := a.EndOf(date(2024, time.June, 15, 0, 0, 0), temporal.UnitWeek).
		Sub(a.StartOf(date(2024, time.June, 15, 0, 0, 0), temporal.UnitWeek)) + time.Nanosecond
	assert.Equal(t, 7*24*time.Hour, weekSpan)
}

func testSameness(t *testing.T, factory Factory) {
	a := factory(time.Sunday)

	assert.True(t, a.IsSame(
		date(2024, time.March, 1, 0, 0, 0),
		date(2024, time.March, 31, 23, 59, 59), temporal.UnitMonth))
	assert.False(t, a.IsSame(
		date(2024, time.March, 31, 23, 59, 59),
		date(2024, time.April, 1, 0, 0, 0), temporal.UnitMonth))
	assert.True(t, a.IsSame(
		date(2024, time.January, 1, 0, 0, 0),
		date(2024, time.December, 31, 0, 0, 0), temporal.UnitYear))
	assert.False(t, a.IsSame(
		date(2023, time.December, 31, 0, 0, 0),
		date(2024, time.January, 1, 0, 0, 0), temporal.UnitYear))

	// Sameness must equal start-of equality, per the contract.
	x, y := date(2024, time.June, 9, 1, 0, 0), date(2024, time.June, 15, 23, 0, 0)
	assert.Equal(t,
		a.StartOf(x, temporal.UnitWeek).Equal(a.StartOf(y, temporal.UnitWeek)),
		a.IsSame(x, y, temporal.UnitWeek))
}

func testRolloverClamp(t *testing.T, factory Factory) {
	a := factory(time.Sunday)

	cases := []struct {
		name string
		in   time.Time
		d    temporal.Duration
		want time.Time
	}{
		{"Jan31+1m=Feb29 (leap)", date(2024, time.January, 31, 0, 0, 0), temporal.Duration{Months: 1}, date(2024, time.February, 29, 0, 0, 0)},
		{"Jan31+1m=Feb28", date(2023, time.January, 31, 0, 0, 0), temporal.Duration{Months: 1}, date(2023, time.February, 28, 0, 0, 0)},
		{"Jan31+2m=Mar31", date(2024, time.January, 31, 0, 0, 0), temporal.Duration{Months: 2}, date(2024, time.March, 31, 0, 0, 0)},
		{"Feb29+1y=Feb28", date(2024, time.February, 29, 0, 0, 0), temporal.Duration{Years: 1}, date(2025, time.February, 28, 0, 0, 0)},
		{"Oct31+1m=Nov30", date(2024, time.October, 31, 0, 0, 0), temporal.Duration{Months: 1}, date(2024, time.November, 30, 0, 0, 0)},
		{"Dec31+1m=Jan31 (year wrap)", date(2023, time.December, 31, 0, 0, 0), temporal.Duration{Months: 1}, date(2024, time.January, 31, 0, 0, 0)},
	}
	for _, tc := range cases {
		t.Run("Add/"+tc.name, func(t *testing.T) {
			got := a.Add(tc.in, tc.d)
			require.True(t, tc.want.Equal(got), "want %s, got %s", tc.want, got)
		})
	}

	sub := []struct {
		name string
		in   time.Time
		d    temporal.Duration
		want time.Time
	}{
		{"Mar31-1m=Feb29 (leap)", date(2024, time.March, 31, 0, 0, 0), temporal.Duration{Months: 1}, date(2024, time.February, 29, 0, 0, 0)},
		{"Mar31-1m=Feb28", date(2023, time.March, 31, 0, 0, 0), temporal.Duration{Months: 1}, date(2023, time.February, 28, 0, 0, 0)},
		{"Jan1-1d=Dec31", date(2024, time.January, 1, 0, 0, 0), temporal.Duration{Days: 1}, date(2023, time.December, 31, 0, 0, 0)},
	}
	for _, tc := range sub {
		t.Run("Subtract/"+tc.name, func(t *testing.T) {
			got := a.Subtract(tc.in, tc.d)
			require.True(t, tc.want.Equal(got), "want %s, got %s", tc.want, got)
		})
	}

	// Plain day/week arithmetic round-trips exactly.
	base := date(2024, time.June, 15, 12, 0, 0)
	for _, d := range []temporal.Duration{{Days: 40}, {Weeks: 3}, {Hours: 30}, {Minutes: 90}, {Seconds: 3600}} {
		assert.True(t, base.Equal(a.Subtract(a.Add(base, d), d)), "add/subtract round trip for %+v", d)
	}
}

func testWeekStart(t *testing.T, factory Factory) {
	// Jun 12 2024 is a Wednesday.
	ref := date(2024, time.June, 12, 10, 0, 0)

	cases := []struct {
		ws   time.Weekday
		want time.Time
	}{
		{time.Sunday, date(2024, time.June, 9, 0, 0, 0)},
		{time.Monday, date(2024, time.June, 10, 0, 0, 0)},
		{time.Saturday, date(2024, time.June, 8, 0, 0, 0)},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("weekStartsOn=%s", tc.ws), func(t *testing.T) {
			a := factory(tc.ws)
			got := a.StartOf(ref, temporal.UnitWeek)
			require.True(t, tc.want.Equal(got), "want %s, got %s", tc.want, got)

			// A date already on the week start is its own boundary.
			onBoundary := a.StartOf(tc.want, temporal.UnitWeek)
			assert.True(t, tc.want.Equal(onBoundary))
		})
	}
}

func testWeekday(t *testing.T, factory Factory) {
	a := factory(time.Sunday)
	assert.Equal(t, time.Sunday, a.GetWeekday(date(2024, time.June, 9, 0, 0, 0)))
	assert.Equal(t, time.Wednesday, a.GetWeekday(date(2024, time.June, 12, 23, 0, 0)))
	assert.Equal(t, time.Saturday, a.GetWeekday(date(2024, time.June, 15, 0, 0, 0)))
}

func testUnsupportedUnits(t *testing.T, factory Factory) {
	a := factory(time.Sunday)
	ref := date(2024, time.June, 15, 0, 0, 0)

	// Quarter belongs to the engine; backends must refuse it rather than
	// guess. Same for arbitrary custom names.
	for _, u := range []temporal.Unit{temporal.UnitQuarter, "stableMonth", "bogus"} {
		assert.True(t, a.StartOf(ref, u).IsZero(), "StartOf(%q) must be zero", u)
		assert.True(t, a.EndOf(ref, u).IsZero(), "EndOf(%q) must be zero", u)
		assert.False(t, a.IsSame(ref, ref, u), "IsSame(%q) must be false", u)
	}
}
