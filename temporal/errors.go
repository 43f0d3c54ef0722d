/*
errors.go - Centralized error types for the period engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Extension packages wrap these errors with additional context.

ERROR CATEGORIES:
  1. Configuration errors - Engine wired without a backend
  2. Unit errors - Unknown units, illegal divisions
  3. Operation errors - Degenerate split/merge input
  4. Validation errors - A unit definition's predicate failed (soft)

PROPAGATION POLICY:
  Every error is a synchronous return at the offending call site. These are
  deterministic logic errors, not transient failures: there is no retry and
  no partial result - an invalid call fails wholly. The single warning-grade
  event is a registry overwrite, which is a supported extension pattern and
  is logged rather than returned.

USAGE:
  if errors.Is(err, temporal.ErrUnknownUnit) { ... }

  var divErr *temporal.InvalidDivisionError
  if errors.As(err, &divErr) { ... divErr.From, divErr.To ... }
*/
package temporal

import (
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrConfiguration is returned when an operation requires a backend and
	// none was supplied. Fatal: never silently defaulted.
	ErrConfiguration = errors.New("engine not configured with a date adapter")

	// ErrUnknownUnit is returned when an operation names a unit that is not
	// registered. No operation falls back to a default unit.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrInvalidDivision is returned when dividing a period into an equal or
	// larger unit. Rejected rather than returning an empty result.
	ErrInvalidDivision = errors.New("cannot divide into equal or larger unit")

	// ErrInvalidSplit is returned for degenerate split options (no count,
	// no duration, or both).
	ErrInvalidSplit = errors.New("invalid split options")

	// ErrInvalidPeriod is returned for malformed period input, e.g. merging
	// an empty set.
	ErrInvalidPeriod = errors.New("invalid period")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ConfigurationError reports which operation was attempted without a backend.
type ConfigurationError struct {
	Op string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: no date adapter configured", e.Op)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// UnknownUnitError reports the unit name that was not registered.
type UnknownUnitError struct {
	Unit Unit
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit %q", string(e.Unit))
}

func (e *UnknownUnitError) Unwrap() error { return ErrUnknownUnit }

// InvalidDivisionError reports an attempt to divide From into To where To is
// not a smaller unit.
type InvalidDivisionError struct {
	From Unit
	To   Unit
}

func (e *InvalidDivisionError) Error() string {
	return fmt.Sprintf("cannot divide %q into %q", string(e.From), string(e.To))
}

func (e *InvalidDivisionError) Unwrap() error { return ErrInvalidDivision }

// ValidationError reports a unit definition's Validate predicate returning
// false. Soft by design: the core only surfaces it from Engine.Validate;
// whether a failed validation is fatal is the caller's policy.
type ValidationError struct {
	Unit   Unit
	Start  time.Time
	End    time.Time
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s period [%s, %s) failed validation: %s",
		e.Unit, e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339), e.Reason)
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input
// rather than engine misconfiguration.
func IsClientError(err error) bool {
	return errors.Is(err, ErrUnknownUnit) ||
		errors.Is(err, ErrInvalidDivision) ||
		errors.Is(err, ErrInvalidSplit) ||
		errors.Is(err, ErrInvalidPeriod)
}
