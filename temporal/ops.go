/*
ops.go - Operations over Periods

PURPOSE:
  The pure functions consumers call: Divide (subdivision), Next/Previous/Go
  (navigation), IsSame (equality at a granularity), Split/Merge (arbitrary
  slicing and combination), Span (unit-ratio reporting). All resolve unit
  behavior through the registry and primitive arithmetic through the
  adapter; none mutate their inputs.

NAVIGATION:
  Next recreates the period one step forward from its anchor, so
  Next(p).Start == adapter.Add(p.Start, one step) for every aligned unit.
  Go(p, n) applies ONE multi-step add of n x Step rather than iterating
  Next n times: the adapters clamp multi-month/year jumps the same way, so
  the results are identical and the cost stays O(1) for large n.

SPLIT PRECISION:
  Equal-count split computes its fenceposts with decimal arithmetic over
  nanoseconds. Accumulating float64 offsets drifts for large periods and
  high counts; decimal keeps every boundary exact and the parts contiguous.
*/
package temporal

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// DIVIDE - Subdivision
// =============================================================================

// Divide returns the ordered sequence of target-unit Periods intersecting
// [p.Start, p.End). The target must be a strictly smaller unit: dividing
// into an equal or larger unit is a contract violation, not a no-op.
//
// The subdivisions are contiguous and non-overlapping, in calendar order.
// For targets aligned with p (days in a month, months in a year, weeks in a
// stable grid) their union covers [p.Start, p.End) exactly.
func (e *Engine) Divide(p Period, target Unit) ([]Period, error) {
	if e.adapter == nil {
		return nil, &ConfigurationError{Op: "Divide"}
	}
	parentDef, ok := e.registry.Get(p.Type)
	if !ok {
		return nil, &UnknownUnitError{Unit: p.Type}
	}
	if !e.registry.Has(target) {
		return nil, &UnknownUnitError{Unit: target}
	}
	if !divisible(parentDef, p.Type, target) {
		return nil, &InvalidDivisionError{From: p.Type, To: target}
	}

	cur, err := e.CreatePeriod(target, p.Start)
	if err != nil {
		return nil, err
	}
	var out []Period
	for cur.Start.Before(p.End) {
		if cur.End.After(p.Start) {
			out = append(out, cur)
		}
		cur, err = e.Next(cur)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// divisible reports whether target is a legal subdivision of parent. The
// parent's Divisions list is authoritative when present; otherwise the
// built-in rank order decides. Units outside both are not comparable.
func divisible(parentDef UnitDefinition, parent, target Unit) bool {
	if target == parent {
		return false
	}
	for _, u := range parentDef.Divisions {
		if u == target {
			return true
		}
	}
	pr, pok := unitRank[parent]
	tr, tok := unitRank[target]
	return pok && tok && tr < pr
}

// =============================================================================
// NEXT / PREVIOUS / GO - Navigation
// =============================================================================

// Next returns the Period of the same type exactly one unit forward.
func (e *Engine) Next(p Period) (Period, error) { return e.shift(p, 1) }

// Previous returns the Period of the same type exactly one unit backward.
func (e *Engine) Previous(p Period) (Period, error) { return e.shift(p, -1) }

// Go returns the Period n units away: positive n moves to the future,
// negative to the past, zero re-derives p in place.
func (e *Engine) Go(p Period, n int) (Period, error) { return e.shift(p, n) }

func (e *Engine) shift(p Period, n int) (Period, error) {
	if e.adapter == nil {
		return Period{}, &ConfigurationError{Op: "Go"}
	}
	def, ok := e.registry.Get(p.Type)
	if !ok {
		return Period{}, &UnknownUnitError{Unit: p.Type}
	}
	anchor := p.Start
	if def.Anchor != nil {
		anchor = def.Anchor(e, p)
	}
	var moved time.Time
	if n >= 0 {
		moved = e.adapter.Add(anchor, def.Step.Scale(n))
	} else {
		moved = e.adapter.Subtract(anchor, def.Step.Scale(-n))
	}
	return e.CreatePeriod(p.Type, moved)
}

// =============================================================================
// ISSAME - Equality at a granularity
// =============================================================================

// IsSame reports whether a and b fall in the same unit. Calendar units
// delegate to the adapter. Quarter is computed manually - year equality plus
// floor(month/3) equality - because no backend is required to understand
// quarters; this asymmetry is deliberate and must hold identically across
// every backend. Custom units compare the starts of their derived periods.
func (e *Engine) IsSame(a, b time.Time, unit Unit) (bool, error) {
	if e.adapter == nil {
		return false, &ConfigurationError{Op: "IsSame"}
	}
	if unit == UnitQuarter {
		return a.Year() == b.Year() && quarterIndex(a) == quarterIndex(b), nil
	}
	if IsCalendarUnit(unit) {
		return e.adapter.IsSame(a, b, unit), nil
	}
	if !e.registry.Has(unit) {
		return false, &UnknownUnitError{Unit: unit}
	}
	pa, err := e.CreatePeriod(unit, a)
	if err != nil {
		return false, err
	}
	pb, err := e.CreatePeriod(unit, b)
	if err != nil {
		return false, err
	}
	return pa.Start.Equal(pb.Start), nil
}

// =============================================================================
// SPLIT / MERGE - Arbitrary slicing and combination
// =============================================================================

// SplitOptions selects exactly one slicing strategy.
type SplitOptions struct {
	// Count slices the period into this many equal contiguous parts.
	Count int

	// Every slices the period into chunks of this duration; the final chunk
	// is truncated at the period's end.
	Every Duration
}

// Split slices p according to opts. Parts carry UnitCustom: they are spans,
// not instances of a registered unit.
func (e *Engine) Split(p Period, opts SplitOptions) ([]Period, error) {
	if e.adapter == nil {
		return nil, &ConfigurationError{Op: "Split"}
	}
	byCount := opts.Count > 0
	byEvery := !opts.Every.IsZero()
	if byCount == byEvery {
		return nil, ErrInvalidSplit
	}
	if byCount {
		return splitByCount(p, opts.Count), nil
	}
	return e.splitByDuration(p, opts.Every), nil
}

func splitByCount(p Period, count int) []Period {
	total := decimal.NewFromInt(int64(p.End.Sub(p.Start)))
	parts := decimal.NewFromInt(int64(count))

	// Fencepost i sits at start + round(i*total/count) ns; the rounding
	// error never accumulates because each boundary is computed from the
	// origin, not from its predecessor.
	boundary := func(i int) time.Time {
		offset := total.Mul(decimal.NewFromInt(int64(i))).Div(parts).Round(0)
		return p.Start.Add(time.Duration(offset.IntPart()))
	}

	out := make([]Period, 0, count)
	lo := p.Start
	for i := 1; i <= count; i++ {
		hi := boundary(i)
		out = append(out, Period{Type: UnitCustom, Start: lo, End: hi, Date: lo})
		lo = hi
	}
	return out
}

func (e *Engine) splitByDuration(p Period, every Duration) []Period {
	var out []Period
	lo := p.Start
	for lo.Before(p.End) {
		hi := e.adapter.Add(lo, every)
		if hi.After(p.End) {
			hi = p.End
		}
		if !hi.After(lo) {
			// Degenerate duration that does not advance; stop rather than spin.
			break
		}
		out = append(out, Period{Type: UnitCustom, Start: lo, End: hi, Date: lo})
		lo = hi
	}
	return out
}

// Merge combines periods into the single span from the earliest Start to the
// latest End. When every input shares a type whose definition names a
// MergesTo unit and the span reproduces that parent period exactly, the
// parent Period is returned; otherwise the span carries UnitCustom.
func (e *Engine) Merge(periods []Period) (Period, error) {
	if e.adapter == nil {
		return Period{}, &ConfigurationError{Op: "Merge"}
	}
	if len(periods) == 0 {
		return Period{}, ErrInvalidPeriod
	}

	start, end := periods[0].Start, periods[0].End
	sameType := true
	for _, p := range periods[1:] {
		if p.Start.Before(start) {
			start = p.Start
		}
		if p.End.After(end) {
			end = p.End
		}
		if p.Type != periods[0].Type {
			sameType = false
		}
	}

	if sameType {
		if def, ok := e.registry.Get(periods[0].Type); ok && def.MergesTo != "" {
			parent, err := e.CreatePeriod(def.MergesTo, start)
			if err == nil && parent.Start.Equal(start) && parent.End.Equal(end) {
				return parent, nil
			}
		}
	}
	return Period{Type: UnitCustom, Start: start, End: end, Date: start}, nil
}

// =============================================================================
// SPAN - Unit-ratio reporting
// =============================================================================

// Span measures p in the given unit, as the exact decimal ratio of p's
// duration to the duration of one unit at p.Start. Reporting helper: a
// February month spans 4 or ~4.14 weeks, a stable grid always 6.
func (e *Engine) Span(p Period, unit Unit) (decimal.Decimal, error) {
	ref, err := e.CreatePeriod(unit, p.Start)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromInt(int64(p.Duration())).
		Div(decimal.NewFromInt(int64(ref.Duration()))), nil
}
