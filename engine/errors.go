/*
errors.go - Centralized error types for the accounting engine

PURPOSE:
  All engine error types in one place. Every error here is a local
  validation failure on malformed input; none represent transient
  conditions, so the engine never retries anything.

ERROR CATEGORIES:
  1. Time parsing errors - unparsable clock values
  2. Shift errors - a record whose accounting cannot be derived
  3. Profile errors - missing or incomplete employee metadata
  4. Severance errors - invalid employment dates or salary

USAGE:
  Adapter layers map these to client errors:

    if engine.IsClientError(err) {
        http.Error(w, err.Error(), http.StatusBadRequest)
    }

SEE ALSO:
  - clock.go: Raises ErrInvalidTimeFormat
  - accountant.go: Raises ErrInvalidShift, ErrMissingProfile
*/
package engine

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidTimeFormat is returned when a clock value is not a valid
	// "HH:MM" 24-hour time.
	ErrInvalidTimeFormat = errors.New("invalid time format")

	// ErrInvalidShift is returned when a shift's accounting cannot be
	// derived, usually because one of its clock values failed to parse.
	ErrInvalidShift = errors.New("invalid shift")

	// ErrMissingProfile is returned when the employee profile required for
	// classification is absent or incomplete.
	ErrMissingProfile = errors.New("missing employee profile")

	// ErrShiftTooLong is returned by validation when the rollover heuristic
	// implies an implausibly long shift. See MaxShiftHours.
	ErrShiftTooLong = errors.New("shift exceeds maximum length")

	// ErrInvalidDateRange is returned when a termination date precedes the
	// admission date.
	ErrInvalidDateRange = errors.New("termination precedes admission")

	// ErrInvalidSalary is returned when a salary is zero or negative.
	ErrInvalidSalary = errors.New("salary must be positive")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// TimeFormatError reports which clock value failed to parse.
type TimeFormatError struct {
	Value string
}

func (e *TimeFormatError) Error() string {
	return fmt.Sprintf("invalid time format: %q (want HH:MM)", e.Value)
}

func (e *TimeFormatError) Unwrap() error { return ErrInvalidTimeFormat }

// ShiftError wraps the cause of a failed accounting with the shift date.
type ShiftError struct {
	Date string
	Err  error
}

func (e *ShiftError) Error() string {
	return fmt.Sprintf("invalid shift on %s: %v", e.Date, e.Err)
}

// Unwrap exposes both the sentinel and the underlying failure, so
// errors.Is matches ErrInvalidShift as well as the parse error it wraps.
func (e *ShiftError) Unwrap() []error { return []error{ErrInvalidShift, e.Err} }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid caller input.
// Every engine error is; the helper exists so adapter layers don't need to
// enumerate sentinels.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidTimeFormat) ||
		errors.Is(err, ErrInvalidShift) ||
		errors.Is(err, ErrMissingProfile) ||
		errors.Is(err, ErrShiftTooLong) ||
		errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrInvalidSalary)
}
