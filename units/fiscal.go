/*
fiscal.go - Fiscal year and fiscal quarter units

PURPOSE:
  Registers a fiscal calendar with a configurable start month (e.g. April
  for many jurisdictions). A date before the fiscal start month belongs to
  the previous fiscal year. Fiscal quarters tile the fiscal year in
  three-month blocks from its start.

  Boundaries are computed directly from calendar components: every boundary
  is the first of some month, so no overflow clamping can arise and the
  adapter is not consulted.
*/
package units

import (
	"time"

	"github.com/warp/temporal-engine/temporal"
)

// FiscalYear and FiscalQuarter are the fiscal calendar units.
const (
	FiscalYear    temporal.Unit = "fiscalYear"
	FiscalQuarter temporal.Unit = "fiscalQuarter"
)

// RegisterFiscal registers fiscalYear and fiscalQuarter with the given start
// month (1-12). Registering twice with different start months overwrites,
// with the registry's usual warning.
func RegisterFiscal(e *temporal.Engine, startMonth time.Month) {
	e.DefineUnit(FiscalYear, temporal.UnitDefinition{
		CreatePeriod: func(_ *temporal.Engine, date time.Time) (time.Time, time.Time) {
			start := fiscalYearStart(date, startMonth)
			return start, start.AddDate(1, 0, 0)
		},
		Step:      temporal.Duration{Years: 1},
		Divisions: []temporal.Unit{FiscalQuarter, temporal.UnitMonth, temporal.UnitWeek, temporal.UnitDay},
	})

	e.DefineUnit(FiscalQuarter, temporal.UnitDefinition{
		CreatePeriod: func(_ *temporal.Engine, date time.Time) (time.Time, time.Time) {
			fy := fiscalYearStart(date, startMonth)
			q := monthsBetween(fy, date) / 3
			start := fy.AddDate(0, q*3, 0)
			return start, start.AddDate(0, 3, 0)
		},
		Step:      temporal.Duration{Months: 3},
		Divisions: []temporal.Unit{temporal.UnitMonth, temporal.UnitWeek, temporal.UnitDay},
		MergesTo:  FiscalYear,
	})
}

// fiscalYearStart returns the first instant of the fiscal year containing
// date. Dates before the fiscal start month roll back a year.
func fiscalYearStart(date time.Time, startMonth time.Month) time.Time {
	start := time.Date(date.Year(), startMonth, 1, 0, 0, 0, 0, date.Location())
	if date.Before(start) {
		start = start.AddDate(-1, 0, 0)
	}
	return start
}

// monthsBetween counts whole calendar months from a (a first-of-month
// instant) up to date.
func monthsBetween(a, date time.Time) int {
	return (date.Year()-a.Year())*12 + int(date.Month()) - int(a.Month())
}
