/*
presets.go - Preset JSON unit definitions

PURPOSE:
  Convenience builders emitting JSON definitions for common custom units.
  They construct JSON strings directly to avoid import cycles with the
  factory package.

USAGE:
  import "github.com/warp/temporal-engine/units"

  jsonStr := units.SprintJSON("sprint", 2, "2024-01-01")
  name, err := factory.Register(eng, jsonStr)
*/
package units

import (
	"encoding/json"
)

// SprintJSON returns JSON for a fixed-length sprint of the given number of
// weeks, tiled from the epoch date (YYYY-MM-DD).
func SprintJSON(name string, weeks int, epoch string) string {
	uj := map[string]interface{}{
		"name":       name,
		"length":     map[string]interface{}{"weeks": weeks},
		"epoch":      epoch,
		"divisions":  []string{"week", "day"},
		"exact_days": weeks * 7,
	}
	b, _ := json.MarshalIndent(uj, "", "  ")
	return string(b)
}

// SemesterJSON returns JSON for a six-month academic semester tiled from
// the epoch's month.
func SemesterJSON(name string, epoch string) string {
	uj := map[string]interface{}{
		"name":      name,
		"length":    map[string]interface{}{"months": 6},
		"epoch":     epoch,
		"divisions": []string{"month", "week", "day"},
	}
	b, _ := json.MarshalIndent(uj, "", "  ")
	return string(b)
}

// BillingCycleJSON returns JSON for an n-month billing cycle tiled from the
// epoch's month.
func BillingCycleJSON(name string, months int, epoch string) string {
	uj := map[string]interface{}{
		"name":      name,
		"length":    map[string]interface{}{"months": months},
		"epoch":     epoch,
		"divisions": []string{"month", "week", "day"},
	}
	b, _ := json.MarshalIndent(uj, "", "  ")
	return string(b)
}

// FourWeekGridJSON returns JSON for a fixed 28-day reporting grid, a
// simpler cousin of the stable month.
func FourWeekGridJSON(name string, epoch string) string {
	uj := map[string]interface{}{
		"name":       name,
		"length":     map[string]interface{}{"weeks": 4},
		"epoch":      epoch,
		"divisions":  []string{"week", "day"},
		"exact_days": 28,
	}
	b, _ := json.MarshalIndent(uj, "", "  ")
	return string(b)
}
