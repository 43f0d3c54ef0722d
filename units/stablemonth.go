/*
Package units provides custom unit definitions built on the temporal core.

PURPOSE:
  Demonstrates and exercises the registry's extension surface: units whose
  periods are not simple calendar boundaries register a definition and the
  unit-agnostic operations (Divide, Next, IsSame, ...) work unchanged.

THIS FILE: the stable month grid.
  Calendar UIs reflow when months span 4, 5, or 6 weeks. The stableMonth
  unit always yields a fixed 6x7 grid - exactly 42 days - for any month, by
  padding the front with trailing days of the previous month and the back
  with leading days of the next:

      start = startOfMonth - ((weekday(startOfMonth) - weekStartsOn + 7) mod 7) days
      end   = start + 42 days

  Dividing a stableMonth by week always yields 6 periods; by day, 42. The
  padding days belong to the grid but not to the nominal month: IsPadding
  distinguishes them so UIs can gray those cells out.

USAGE:
  eng, _ := temporal.New(adapter.NewNative(time.Monday),
      temporal.WithWeekStartsOn(time.Monday))
  units.RegisterStableMonth(eng)
  grid, _ := eng.CreatePeriod(units.StableMonth, someDate)
  weeks, _ := eng.Divide(grid, temporal.UnitWeek) // always 6
*/
package units

import (
	"time"

	"github.com/warp/temporal-engine/temporal"
)

// StableMonth is the fixed 6x7 calendar grid unit.
const StableMonth temporal.Unit = "stableMonth"

// StableMonthDays is the invariant grid size: 6 weeks of 7 days.
const StableMonthDays = 42

// RegisterStableMonth registers the stableMonth definition on the engine.
func RegisterStableMonth(e *temporal.Engine) {
	e.DefineUnit(StableMonth, temporal.UnitDefinition{
		CreatePeriod: stableMonthBounds,
		Step:         temporal.Duration{Months: 1},

		// The grid's Start usually lies in the previous month, so navigation
		// anchors on the nominal month boundary instead of Start.
		Anchor: func(e *temporal.Engine, p temporal.Period) time.Time {
			return e.Adapter().StartOf(p.Date, temporal.UnitMonth)
		},

		Divisions: []temporal.Unit{temporal.UnitWeek, temporal.UnitDay},
		MergesTo:  "",
		Validate: func(p temporal.Period) bool {
			return p.End.Sub(p.Start) == StableMonthDays*24*time.Hour
		},
	})
}

func stableMonthBounds(e *temporal.Engine, date time.Time) (time.Time, time.Time) {
	ad := e.Adapter()
	monthStart := ad.StartOf(date, temporal.UnitMonth)
	padding := (int(ad.GetWeekday(monthStart)) - int(e.WeekStartsOn()) + 7) % 7
	start := ad.Subtract(monthStart, temporal.Duration{Days: padding})
	return start, ad.Add(start, temporal.Duration{Days: StableMonthDays})
}

// ActualMonth returns the nominal calendar month a stable grid represents -
// the month its anchor date falls in, not the padded 42-day span.
func ActualMonth(e *temporal.Engine, grid temporal.Period) (temporal.Period, error) {
	return e.CreatePeriod(temporal.UnitMonth, grid.Date)
}

// IsPadding reports whether a day of the grid belongs to an adjacent month
// rather than the nominal one. Days outside the grid entirely are not
// padding; they are simply not part of it (check grid.Contains first if
// that distinction matters).
func IsPadding(e *temporal.Engine, grid temporal.Period, day time.Time) (bool, error) {
	month, err := ActualMonth(e, grid)
	if err != nil {
		return false, err
	}
	return grid.Contains(day) && !month.Contains(day), nil
}
