/*
Package factory provides JSON to Go unit-definition conversion.

PURPOSE:
  Converts JSON unit definitions into temporal.UnitDefinition entries. This
  enables calendar configuration without code changes - a product team can
  define sprints, semesters, or billing cycles in JSON, and the factory
  registers the proper definitions.

JSON SCHEMA:
  {
    "name": "sprint",
    "length": {"weeks": 2},
    "epoch": "2024-01-01",
    "divisions": ["week", "day"],
    "merges_to": "",
    "exact_days": 14
  }

  length     - exactly one granularity family: day-granular (weeks/days) or
               month-granular (years/months), never mixed
  epoch      - the date the tiling is anchored on (YYYY-MM-DD); every period
               of the unit is a whole number of lengths away from it
  divisions  - smaller units this one may be divided into
  merges_to  - optional natural parent unit
  exact_days - optional invariant; becomes the definition's Validate

TILING:
  Day-granular units tile the timeline in fixed-length blocks from the
  epoch: period index = floor(daysSince(epoch) / lengthDays). Month-granular
  units tile by calendar months from the epoch's month, so a 6-month
  "semester" tracks real month boundaries.

USAGE:
  unit, err := factory.Register(eng, units.SprintJSON("sprint", 2, "2024-01-01"))

SEE ALSO:
  - units/presets.go: preset JSON builders
  - temporal/registry.go: UnitDefinition
*/
package factory

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/warp/temporal-engine/temporal"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// UnitJSON is the JSON representation of a custom unit definition.
type UnitJSON struct {
	Name      string       `json:"name"`
	Length    DurationJSON `json:"length"`
	Epoch     string       `json:"epoch"`
	Divisions []string     `json:"divisions,omitempty"`
	MergesTo  string       `json:"merges_to,omitempty"`
	ExactDays *int         `json:"exact_days,omitempty"`
}

// DurationJSON represents a fixed unit length.
type DurationJSON struct {
	Years  int `json:"years,omitempty"`
	Months int `json:"months,omitempty"`
	Weeks  int `json:"weeks,omitempty"`
	Days   int `json:"days,omitempty"`
}

// =============================================================================
// PARSING
// =============================================================================

// ParseUnit parses a JSON string into a unit name and its definition.
func ParseUnit(jsonStr string) (temporal.Unit, temporal.UnitDefinition, error) {
	var uj UnitJSON
	if err := json.Unmarshal([]byte(jsonStr), &uj); err != nil {
		return "", temporal.UnitDefinition{}, fmt.Errorf("failed to parse unit JSON: %w", err)
	}
	return FromJSON(uj)
}

// Register parses and registers the unit on the engine in one step.
func Register(e *temporal.Engine, jsonStr string) (temporal.Unit, error) {
	name, def, err := ParseUnit(jsonStr)
	if err != nil {
		return "", err
	}
	e.DefineUnit(name, def)
	return name, nil
}

// FromJSON converts UnitJSON to a registrable definition.
func FromJSON(uj UnitJSON) (temporal.Unit, temporal.UnitDefinition, error) {
	if uj.Name == "" {
		return "", temporal.UnitDefinition{}, fmt.Errorf("unit definition requires a name")
	}

	dayLen := uj.Length.Weeks*7 + uj.Length.Days
	monthLen := uj.Length.Years*12 + uj.Length.Months
	switch {
	case dayLen > 0 && monthLen > 0:
		return "", temporal.UnitDefinition{}, fmt.Errorf("unit %q: length mixes day and month granularity", uj.Name)
	case dayLen <= 0 && monthLen <= 0:
		return "", temporal.UnitDefinition{}, fmt.Errorf("unit %q: length must be positive", uj.Name)
	}

	if uj.Epoch == "" {
		return "", temporal.UnitDefinition{}, fmt.Errorf("unit %q: epoch is required", uj.Name)
	}
	epoch, err := time.Parse("2006-01-02", uj.Epoch)
	if err != nil {
		return "", temporal.UnitDefinition{}, fmt.Errorf("unit %q: invalid epoch: %w", uj.Name, err)
	}

	def := temporal.UnitDefinition{
		Divisions: parseDivisions(uj.Divisions),
		MergesTo:  temporal.Unit(uj.MergesTo),
	}
	if dayLen > 0 {
		def.CreatePeriod = dayTiling(epoch, dayLen)
		def.Step = temporal.Duration{Days: dayLen}
	} else {
		def.CreatePeriod = monthTiling(epoch, monthLen)
		def.Step = temporal.Duration{Months: monthLen}
	}
	if uj.ExactDays != nil {
		want := time.Duration(*uj.ExactDays) * 24 * time.Hour
		def.Validate = func(p temporal.Period) bool { return p.End.Sub(p.Start) == want }
	}
	return temporal.Unit(uj.Name), def, nil
}

func parseDivisions(names []string) []temporal.Unit {
	if len(names) == 0 {
		return nil
	}
	out := make([]temporal.Unit, 0, len(names))
	for _, n := range names {
		out = append(out, temporal.Unit(n))
	}
	return out
}

// =============================================================================
// TILING RULES
// =============================================================================

// dayTiling builds the boundary rule for a fixed day-length unit anchored
// on epoch.
func dayTiling(epoch time.Time, lengthDays int) func(*temporal.Engine, time.Time) (time.Time, time.Time) {
	return func(e *temporal.Engine, date time.Time) (time.Time, time.Time) {
		day := e.Adapter().StartOf(date, temporal.UnitDay)
		anchor := time.Date(epoch.Year(), epoch.Month(), epoch.Day(), 0, 0, 0, 0, day.Location())
		idx := floorDiv(int64(day.Sub(anchor)), int64(24*time.Hour))
		idx = floorDiv(idx, int64(lengthDays))
		start := anchor.AddDate(0, 0, int(idx)*lengthDays)
		return start, start.AddDate(0, 0, lengthDays)
	}
}

// monthTiling builds the boundary rule for a fixed month-length unit
// anchored on the epoch's month.
func monthTiling(epoch time.Time, lengthMonths int) func(*temporal.Engine, time.Time) (time.Time, time.Time) {
	return func(_ *temporal.Engine, date time.Time) (time.Time, time.Time) {
		anchor := time.Date(epoch.Year(), epoch.Month(), 1, 0, 0, 0, 0, date.Location())
		months := (date.Year()-anchor.Year())*12 + int(date.Month()) - int(anchor.Month())
		idx := floorDiv(int64(months), int64(lengthMonths))
		start := anchor.AddDate(0, int(idx)*lengthMonths, 0)
		return start, start.AddDate(0, lengthMonths, 0)
	}
}

// floorDiv divides rounding toward negative infinity, so dates before the
// epoch land in the correct (negative-index) tile.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
