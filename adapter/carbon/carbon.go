/*
Package carbon implements the DateAdapter contract on
github.com/golang-module/carbon/v2.

PURPOSE:
  Third of the three interchangeable backends. Carbon brings its own
  overflow-safe calendar arithmetic (AddMonthsNoOverflow), its own boundary
  computations, and per-instance week-start configuration, so this wrapper
  is a thin translation layer.

  Year arithmetic is folded into months (years*12 + months) before the
  single NoOverflow call so that combined durations clamp exactly like the
  reference backend.

SEE ALSO:
  - temporal/adaptertest: the suite this backend must pass
*/
package carbon

import (
	"time"

	lib "github.com/golang-module/carbon/v2"

	"github.com/warp/temporal-engine/temporal"
)

// Adapter is a DateAdapter backed by carbon.
type Adapter struct {
	weekStartsOn time.Weekday
}

// New creates an adapter whose week boundaries begin on weekStartsOn.
func New(weekStartsOn time.Weekday) *Adapter {
	return &Adapter{weekStartsOn: weekStartsOn}
}

// c wraps t with the instance's week-start configuration applied. Carbon's
// weekday constants are the English day names, which time.Weekday.String
// produces verbatim.
func (a *Adapter) c(t time.Time) lib.Carbon {
	return lib.CreateFromStdTime(t).SetWeekStartsAt(a.weekStartsOn.String())
}

// Add applies d using carbon's overflow-safe arithmetic.
func (a *Adapter) Add(t time.Time, d temporal.Duration) time.Time {
	return a.c(t).
		AddMonthsNoOverflow(d.Years*12 + d.Months).
		AddDays(d.Weeks*7 + d.Days).
		AddHours(d.Hours).
		AddMinutes(d.Minutes).
		AddSeconds(d.Seconds).
		StdTime()
}

// Subtract is the mirror of Add.
func (a *Adapter) Subtract(t time.Time, d temporal.Duration) time.Time {
	return a.Add(t, d.Scale(-1))
}

// StartOf returns carbon's start-of boundary for the unit. Unsupported
// units return the zero time.
func (a *Adapter) StartOf(t time.Time, unit temporal.Unit) time.Time {
	switch unit {
	case temporal.UnitYear:
		return a.c(t).StartOfYear().StdTime()
	case temporal.UnitMonth:
		return a.c(t).StartOfMonth().StdTime()
	case temporal.UnitWeek:
		return a.c(t).StartOfWeek().StdTime()
	case temporal.UnitDay:
		return a.c(t).StartOfDay().StdTime()
	case temporal.UnitHour:
		return a.c(t).StartOfHour().StdTime()
	case temporal.UnitMinute:
		return a.c(t).StartOfMinute().StdTime()
	case temporal.UnitSecond:
		return a.c(t).StartOfSecond().StdTime()
	default:
		return time.Time{}
	}
}

// EndOf returns carbon's end-of boundary (23:59:59.999999999 style).
func (a *Adapter) EndOf(t time.Time, unit temporal.Unit) time.Time {
	switch unit {
	case temporal.UnitYear:
		return a.c(t).EndOfYear().StdTime()
	case temporal.UnitMonth:
		return a.c(t).EndOfMonth().StdTime()
	case temporal.UnitWeek:
		return a.c(t).EndOfWeek().StdTime()
	case temporal.UnitDay:
		return a.c(t).EndOfDay().StdTime()
	case temporal.UnitHour:
		return a.c(t).EndOfHour().StdTime()
	case temporal.UnitMinute:
		return a.c(t).EndOfMinute().StdTime()
	case temporal.UnitSecond:
		return a.c(t).EndOfSecond().StdTime()
	default:
		return time.Time{}
	}
}

// IsSame reports start-of equality at the unit, per the contract.
func (a *Adapter) IsSame(x, y time.Time, unit temporal.Unit) bool {
	sx := a.StartOf(x, unit)
	if sx.IsZero() {
		return false
	}
	return sx.Equal(a.StartOf(y, unit))
}

// GetWeekday returns t's weekday (0=Sunday .. 6=Saturday).
func (a *Adapter) GetWeekday(t time.Time) time.Weekday {
	return t.Weekday()
}
