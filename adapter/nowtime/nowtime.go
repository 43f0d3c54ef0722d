/*
Package nowtime implements the DateAdapter contract on github.com/jinzhu/now.

PURPOSE:
  Second of the three interchangeable backends. jinzhu/now supplies the
  start-of/end-of boundary computations (including configurable week starts);
  it performs no calendar arithmetic, so Add/Subtract reuse the reference
  adapter's clamped arithmetic - the overflow guard must hold on every
  backend regardless of what its library offers.

SEE ALSO:
  - temporal/adapter: the reference backend whose arithmetic is reused
  - temporal/adaptertest: the suite this backend must pass
*/
package nowtime

import (
	"time"

	"github.com/jinzhu/now"

	"github.com/warp/temporal-engine/temporal"
	"github.com/warp/temporal-engine/temporal/adapter"
)

// Adapter is a DateAdapter backed by jinzhu/now.
type Adapter struct {
	native *adapter.Native
	cfg    *now.Config
}

// New creates an adapter whose week boundaries begin on weekStartsOn.
func New(weekStartsOn time.Weekday) *Adapter {
	return &Adapter{
		native: adapter.NewNative(weekStartsOn),
		cfg:    &now.Config{WeekStartDay: weekStartsOn},
	}
}

// Add delegates to the reference arithmetic; jinzhu/now has none of its own.
func (a *Adapter) Add(t time.Time, d temporal.Duration) time.Time {
	return a.native.Add(t, d)
}

// Subtract delegates to the reference arithmetic.
func (a *Adapter) Subtract(t time.Time, d temporal.Duration) time.Time {
	return a.native.Subtract(t, d)
}

// StartOf returns the library's beginning-of boundary for the unit.
// Unsupported units return the zero time.
func (a *Adapter) StartOf(t time.Time, unit temporal.Unit) time.Time {
	n := a.cfg.With(t)
	switch unit {
	case temporal.UnitYear:
		return n.BeginningOfYear()
	case temporal.UnitMonth:
		return n.BeginningOfMonth()
	case temporal.UnitWeek:
		return n.BeginningOfWeek()
	case temporal.UnitDay:
		return n.BeginningOfDay()
	case temporal.UnitHour:
		return n.BeginningOfHour()
	case temporal.UnitMinute:
		return n.BeginningOfMinute()
	case temporal.UnitSecond:
		// The library stops at minutes; seconds are plain truncation.
		return a.native.StartOf(t, unit)
	default:
		return time.Time{}
	}
}

// EndOf returns the library's end-of boundary (23:59:59.999999999 style).
func (a *Adapter) EndOf(t time.Time, unit temporal.Unit) time.Time {
	n := a.cfg.With(t)
	switch unit {
	case temporal.UnitYear:
		return n.EndOfYear()
	case temporal.UnitMonth:
		return n.EndOfMonth()
	case temporal.UnitWeek:
		return n.EndOfWeek()
	case temporal.UnitDay:
		return n.EndOfDay()
	case temporal.UnitHour:
		return n.EndOfHour()
	case temporal.UnitMinute:
		return n.EndOfMinute()
	case temporal.UnitSecond:
		return a.native.EndOf(t, unit)
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
