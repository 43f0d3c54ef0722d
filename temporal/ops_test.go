/*
ops_test.go - Specification tests for the period operations

ORGANIZATION:
  1. Divide       - partition law, leap years, invalid divisions
  2. Navigation   - round trips across month/year boundaries, Go arithmetic
  3. IsSame       - adapter delegation and the quarter special case
  4. Split/Merge  - equal-count slicing, duration slicing, recombination
  5. Span         - unit-ratio reporting
*/
package temporal_test

import (
	"errors"
	"testing"
	"time"

	"github.com/warp/temporal-engine/temporal"
)

// =============================================================================
// DIVIDE
// =============================================================================

func TestDivide_YearIntoDays_LeapAware(t *testing.T) {
	// GIVEN: A leap year and a common year
	// WHEN: Dividing into days
	// THEN: 366 vs 365 periods

	eng := newEngine(t)

	leap, _ := eng.CreatePeriod(temporal.UnitYear, utc(2024, time.March, 10))
	days, err := eng.Divide(leap, temporal.UnitDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 366 {
		t.Errorf("2024 should have 366 days, got %d", len(days))
	}

	common, _ := eng.CreatePeriod(temporal.UnitYear, utc(2023, time.March, 10))
	days, err = eng.Divide(common, temporal.UnitDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 365 {
		t.Errorf("2023 should have 365 days, got %d", len(days))
	}
}

func TestDivide_FebruaryIntoDays_LeapAware(t *testing.T) {
	eng := newEngine(t)

	feb24, _ := eng.CreatePeriod(temporal.UnitMonth, utc(2024, time.February, 1))
	days, _ := eng.Divide(feb24, temporal.UnitDay)
	if len(days) != 29 {
		t.Errorf("Feb 2024 should have 29 days, got %d", len(days))
	}

	feb23, _ := eng.CreatePeriod(temporal.UnitMonth, utc(2023, time.February, 1))
	days, _ = eng.Divide(feb23, temporal.UnitDay)
	if len(days) != 28 {
		t.Errorf("Feb 2023 should have 28 days, got %d", len(days))
	}
}

func TestDivide_PartitionLaw(t *testing.T) {
	// GIVEN: A year divided into months
	// WHEN: Inspecting the result
	// THEN: 12 periods, contiguous, non-overlapping, union covers the year

	eng := newEngine(t)
	year, _ := eng.CreatePeriod(temporal.UnitYear, utc(2024, time.June, 1))

	months, err := eng.Divide(year, temporal.UnitMonth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(months) != 12 {
		t.Fatalf("expected 12 months, got %d", len(months))
	}
	if !months[0].Start.Equal(year.Start) {
		t.Errorf("first month should start the year: %s vs %s", months[0].Start, year.Start)
	}
	if !months[len(months)-1].End.Equal(year.End) {
		t.Errorf("last month should end the year: %s vs %s", months[len(months)-1].End, year.End)
	}
	for i := 1; i < len(months); i++ {
		if !months[i].Start.Equal(months[i-1].End) {
			t.Errorf("months %d and %d are not contiguous", i-1, i)
		}
	}
}

func TestDivide_MonthIntoWeeks_CountVaries(t *testing.T) {
	// GIVEN: Months with different weekday alignment
	// WHEN: Dividing by week
	// THEN: The count is 4-6 depending on alignment, never fixed a priori

	eng := newEngine(t)

	// June 2024 starts on a Saturday: 6 intersecting Sunday-weeks.
	june, _ := eng.CreatePeriod(temporal.UnitMonth, utc(2024, time.June, 10))
	weeks, err := eng.Divide(june, temporal.UnitWeek)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(weeks) != 6 {
		t.Errorf("June 2024 intersects 6 Sunday-weeks, got %d", len(weeks))
	}

	// February 2026 starts on a Sunday and has exactly 28 days: 4 weeks.
	feb, _ := eng.CreatePeriod(temporal.UnitMonth, utc(2026, time.February, 1))
	weeks, _ = eng.Divide(feb, temporal.UnitWeek)
	if len(weeks) != 4 {
		t.Errorf("Feb 2026 is exactly 4 Sunday-weeks, got %d", len(weeks))
	}
}

func TestDivide_EqualOrLargerUnit_Rejected(t *testing.T) {
	// GIVEN: A year period
	// WHEN: Dividing into "year"
	// THEN: InvalidDivisionError, not a silent no-op

	eng := newEngine(t)
	year, _ := eng.CreatePeriod(temporal.UnitYear, utc(2024, time.June, 1))

	_, err := eng.Divide(year, temporal.UnitYear)
	var divErr *temporal.InvalidDivisionError
	if !errors.As(err, &divErr) {
		t.Fatalf("expected InvalidDivisionError, got %v", err)
	}

	month, _ := eng.CreatePeriod(temporal.UnitMonth, utc(2024, time.June, 1))
	if _, err := eng.Divide(month, temporal.UnitYear); !errors.Is(err, temporal.ErrInvalidDivision) {
		t.Errorf("dividing month into year should fail, got %v", err)
	}
}

func TestDivide_UnknownTarget_Error(t *testing.T) {
	eng := newEngine(t)
	year, _ := eng.CreatePeriod(temporal.UnitYear, utc(2024, time.June, 1))

	if _, err := eng.Divide(year, "bogus"); !errors.Is(err, temporal.ErrUnknownUnit) {
		t.Errorf("expected ErrUnknownUnit, got %v", err)
	}
}

// =============================================================================
// NAVIGATION
// =============================================================================

func TestNext_Previous_RoundTrip(t *testing.T) {
	// GIVEN: Periods of every built-in unit
	// WHEN: Stepping forward then back (and back then forward)
	// THEN: The original period is recovered

	eng := newEngine(t)
	date := utc(2024, time.June, 15)

	for _, u := range []temporal.Unit{
		temporal.UnitYear, temporal.UnitQuarter, temporal.UnitMonth,
		temporal.UnitWeek, temporal.UnitDay, temporal.UnitHour,
	} {
		p, _ := eng.CreatePeriod(u, date)

		n, err := eng.Next(p)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", u, err)
		}
		back, err := eng.Previous(n)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", u, err)
		}
		if !back.Equal(p) {
			t.Errorf("%s: previous(next(p)) = %s, want %s", u, back, p)
		}

		pr, _ := eng.Previous(p)
		fwd, _ := eng.Next(pr)
		if !fwd.Equal(p) {
			t.Errorf("%s: next(previous(p)) = %s, want %s", u, fwd, p)
		}
	}
}

func TestPrevious_January_CrossesYearBoundary(t *testing.T) {
	// GIVEN: January 2024 as a month period
	// WHEN: Stepping backward
	// THEN: December 2023, type unchanged

	eng := newEngine(t)
	jan, _ := eng.CreatePeriod(temporal.UnitMonth, utc(2024, time.January, 15))

	prev, err := eng.Previous(jan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prev.Type != temporal.UnitMonth {
		t.Errorf("expected type month, got %s", prev.Type)
	}
	if !prev.Start.Equal(utc(2023, time.December, 1)) {
		t.Errorf("expected start 2023-12-01, got %s", prev.Start)
	}
	if !prev.End.Equal(utc(2024, time.January, 1)) {
		t.Errorf("expected end 2024-01-01, got %s", prev.End)
	}
}

func TestNext_StartAdvancesExactlyOneUnit(t *testing.T) {
	// Next(p).Start == adapter.Add(p.Start, one step), per contract.
	eng := newEngine(t)
	ad := eng.Adapter()

	month, _ := eng.CreatePeriod(temporal.UnitMonth, utc(2024, time.January, 10))
	next, _ := eng.Next(month)
	if want := ad.Add(month.Start, temporal.Duration{Months: 1}); !next.Start.Equal(want) {
		t.Errorf("next month start: got %s, want %s", next.Start, want)
	}

	week, _ := eng.CreatePeriod(temporal.UnitWeek, utc(2024, time.January, 10))
	nextWeek, _ := eng.Next(week)
	if want := ad.Add(week.Start, temporal.Duration{Weeks: 1}); !nextWeek.Start.Equal(want) {
		t.Errorf("next week start: got %s, want %s", nextWeek.Start, want)
	}
}

func TestGo_DirectArithmeticMatchesIteration(t *testing.T) {
	// GIVEN: A month period
	// WHEN: Go(p, 25) vs 25 iterations of Next
	// THEN: Identical result (Go uses one multi-step add internally)

	eng := newEngine(t)
	p, _ := eng.CreatePeriod(temporal.UnitMonth, utc(2024, time.January, 1))

	jumped, err := eng.Go(p, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stepped := p
	for i := 0; i < 25; i++ {
		stepped, err = eng.Next(stepped)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if !jumped.Equal(stepped) {
		t.Errorf("Go(25) = %s, iterated = %s", jumped, stepped)
	}

	backJumped, _ := eng.Go(p, -13)
	backStepped := p
	for i := 0; i < 13; i++ {
		backStepped, _ = eng.Previous(backStepped)
	}
	if !backJumped.Equal(backStepped) {
		t.Errorf("Go(-13) = %s, iterated = %s", backJumped, backStepped)
	}
}

func TestGo_Zero_IsIdentity(t *testing.T) {
	eng := newEngine(t)
	p, _ := eng.CreatePeriod(temporal.UnitDay, utc(2024, time.June, 15))

	same, err := eng.Go(p, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !same.Equal(p) {
		t.Errorf("Go(p, 0) should be p, got %s", same)
	}
}

// =============================================================================
// ISSAME
// =============================================================================

func TestIsSame_Quarter_ManualComputation(t *testing.T) {
	// GIVEN: Dates inside and across quarter boundaries
	// WHEN: Comparing at quarter granularity
	// THEN: Same-quarter is year + floor(month/3) equality, bypassing the
	//       adapter (which does not understand quarters)

	eng := newEngine(t)

	same, err := eng.IsSame(utc(2024, time.January, 15), utc(2024, time.March, 20), temporal.UnitQuarter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !same {
		t.Error("Jan 15 and Mar 20 2024 share Q1")
	}

	diff, _ := eng.IsSame(utc(2024, time.March, 31), utc(2024, time.April, 1), temporal.UnitQuarter)
	if diff {
		t.Error("Mar 31 and Apr 1 2024 are different quarters")
	}

	// Same quarter index, different year.
	crossYear, _ := eng.IsSame(utc(2023, time.February, 1), utc(2024, time.February, 1), temporal.UnitQuarter)
	if crossYear {
		t.Error("Q1 2023 and Q1 2024 are not the same quarter")
	}
}

func TestIsSame_CalendarUnits(t *testing.T) {
	eng := newEngine(t)

	cases := []struct {
		a, b time.Time
		unit temporal.Unit
		want bool
	}{
		{utc(2024, time.June, 1), utc(2024, time.June, 30), temporal.UnitMonth, true},
		{utc(2024, time.June, 30), utc(2024, time.July, 1), temporal.UnitMonth, false},
		{utc(2024, time.January, 1), utc(2024, time.December, 31), temporal.UnitYear, true},
		{utc(2023, time.December, 31), utc(2024, time.January, 1), temporal.UnitYear, false},
		{utc(2024, time.June, 9), utc(2024, time.June, 15), temporal.UnitWeek, true}, // same Sunday-week
		{utc(2024, time.June, 8), utc(2024, time.June, 9), temporal.UnitWeek, false},
	}
	for _, tc := range cases {
		got, err := eng.IsSame(tc.a, tc.b, tc.unit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tc.want {
			t.Errorf("IsSame(%s, %s, %s) = %v, want %v", tc.a, tc.b, tc.unit, got, tc.want)
		}
	}
}

func TestIsSame_UnknownUnit_Error(t *testing.T) {
	eng := newEngine(t)
	if _, err := eng.IsSame(utc(2024, time.June, 1), utc(2024, time.June, 2), "bogus"); !errors.Is(err, temporal.ErrUnknownUnit) {
		t.Errorf("expected ErrUnknownUnit, got %v", err)
	}
}

// =============================================================================
// SPLIT / MERGE
// =============================================================================

func TestSplit_ByCount_EqualContiguousParts(t *testing.T) {
	// GIVEN: A 30-day month
	// WHEN: Splitting into 4 equal parts
	// THEN: 4 contiguous parts of 7.5 days covering the month exactly

	eng := newEngine(t)
	june, _ := eng.CreatePeriod(temporal.UnitMonth, utc(2024, time.June, 1))

	parts, err := eng.Split(june, temporal.SplitOptions{Count: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) != 4 {
		t.Fatalf("expected 4 parts, got %d", len(parts))
	}
	if !parts[0].Start.Equal(june.Start) || !parts[3].End.Equal(june.End) {
		t.Error("parts should cover the period exactly")
	}
	want := 30 * 24 * time.Hour / 4
	for i, p := range parts {
		if p.Type != temporal.UnitCustom {
			t.Errorf("part %d should carry UnitCustom, got %s", i, p.Type)
		}
		if p.Duration() != want {
			t.Errorf("part %d duration %s, want %s", i, p.Duration(), want)
		}
		if i > 0 && !p.Start.Equal(parts[i-1].End) {
			t.Errorf("parts %d and %d are not contiguous", i-1, i)
		}
	}
}

func TestSplit_ByCount_UnevenStaysContiguous(t *testing.T) {
	// 30 days into 7 parts does not divide evenly; fenceposts must still
	// tile the interval with no gap and no overlap.
	eng := newEngine(t)
	june, _ := eng.CreatePeriod(temporal.UnitMonth, utc(2024, time.June, 1))

	parts, err := eng.Split(june, temporal.SplitOptions{Count: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) != 7 {
		t.Fatalf("expected 7 parts, got %d", len(parts))
	}
	if !parts[0].Start.Equal(june.Start) || !parts[6].End.Equal(june.End) {
		t.Error("parts should cover the period exactly")
	}
	for i := 1; i < len(parts); i++ {
		if !parts[i].Start.Equal(parts[i-1].End) {
			t.Errorf("parts %d and %d are not contiguous", i-1, i)
		}
	}
}

func TestSplit_ByDuration_TruncatesFinalChunk(t *testing.T) {
	// GIVEN: A 30-day month
	// WHEN: Splitting every 1 week
	// THEN: 4 full weeks plus a truncated 2-day tail

	eng := newEngine(t)
	june, _ := eng.CreatePeriod(temporal.UnitMonth, utc(2024, time.June, 1))

	parts, err := eng.Split(june, temporal.SplitOptions{Every: temporal.Duration{Weeks: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) != 5 {
		t.Fatalf("expected 5 chunks, got %d", len(parts))
	}
	for i := 0; i < 4; i++ {
		if parts[i].Duration() != 7*24*time.Hour {
			t.Errorf("chunk %d should be a full week", i)
		}
	}
	if parts[4].Duration() != 2*24*time.Hour {
		t.Errorf("final chunk should be 2 days, got %s", parts[4].Duration())
	}
	if !parts[4].End.Equal(june.End) {
		t.Error("final chunk must be truncated at the period end")
	}
}

func TestSplit_DegenerateOptions_Rejected(t *testing.T) {
	eng := newEngine(t)
	june, _ := eng.CreatePeriod(temporal.UnitMonth, utc(2024, time.June, 1))

	if _, err := eng.Split(june, temporal.SplitOptions{}); !errors.Is(err, temporal.ErrInvalidSplit) {
		t.Errorf("empty options should be rejected, got %v", err)
	}
	both := temporal.SplitOptions{Count: 2, Every: temporal.Duration{Days: 3}}
	if _, err := eng.Split(june, both); !errors.Is(err, temporal.ErrInvalidSplit) {
		t.Errorf("both strategies should be rejected, got %v", err)
	}
}

func TestMerge_AlignedMonths_ProduceQuarter(t *testing.T) {
	// GIVEN: January, February, March 2024 (in any order)
	// WHEN: Merging
	// THEN: Q1 2024 as a real quarter period, because month merges to
	//       quarter and the span reproduces it exactly

	eng := newEngine(t)
	jan, _ := eng.CreatePeriod(temporal.UnitMonth, utc(2024, time.January, 1))
	feb, _ := eng.CreatePeriod(temporal.UnitMonth, utc(2024, time.February, 1))
	mar, _ := eng.CreatePeriod(temporal.UnitMonth, utc(2024, time.March, 1))

	merged, err := eng.Merge([]temporal.Period{feb, jan, mar})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if merged.Type != temporal.UnitQuarter {
		t.Errorf("expected quarter, got %s", merged.Type)
	}
	if !merged.Start.Equal(utc(2024, time.January, 1)) || !merged.End.Equal(utc(2024, time.April, 1)) {
		t.Errorf("expected Q1 2024, got [%s, %s)", merged.Start, merged.End)
	}
}

func TestMerge_NonAlignedSpan_IsCustom(t *testing.T) {
	eng := newEngine(t)
	feb, _ := eng.CreatePeriod(temporal.UnitMonth, utc(2024, time.February, 1))
	mar, _ := eng.CreatePeriod(temporal.UnitMonth, utc(2024, time.March, 1))

	merged, err := eng.Merge([]temporal.Period{feb, mar})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if merged.Type != temporal.UnitCustom {
		t.Errorf("Feb+Mar does not reproduce a quarter; expected custom, got %s", merged.Type)
	}
	if !merged.Start.Equal(feb.Start) || !merged.End.Equal(mar.End) {
		t.Errorf("span should cover both inputs, got [%s, %s)", merged.Start, merged.End)
	}
}

func TestMerge_Empty_Rejected(t *testing.T) {
	eng := newEngine(t)
	if _, err := eng.Merge(nil); !errors.Is(err, temporal.ErrInvalidPeriod) {
		t.Errorf("expected ErrInvalidPeriod, got %v", err)
	}
}

// =============================================================================
// SPAN
// =============================================================================

func TestSpan_ReportsUnitRatio(t *testing.T) {
	eng := newEngine(t)
	june, _ := eng.CreatePeriod(temporal.UnitMonth, utc(2024, time.June, 1))

	days, err := eng.Span(june, temporal.UnitDay)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !days.Equal(days.Truncate(0)) || days.IntPart() != 30 {
		t.Errorf("June spans 30 days, got %s", days)
	}

	weeks, _ := eng.Span(june, temporal.UnitWeek)
	if weeks.InexactFloat64() < 4.28 || weeks.InexactFloat64() > 4.29 {
		t.Errorf("June spans ~4.2857 weeks, got %s", weeks)
	}
}
