/*
clock.go - Clock-time parsing and shift duration

PURPOSE:
  Turns a pair of "HH:MM" clock values into a decimal hour count, handling
  shifts that cross midnight.

MIDNIGHT ROLLOVER:
  If the parsed exit is not strictly after the entry, the shift is assumed
  to span into the next day and 24h (1440 minutes) are added. This is
  unconditional - NOT gated by the night-shift flag - so the caller never
  has to pre-classify overnight shifts. The cost is that a zero-duration
  or exactly-24h shift cannot be represented; the validation layer rejects
  implausible results instead (see MaxShiftHours).

ROUNDING:
  All hour quantities are rounded to whole-minute precision before any
  subtraction or comparison, so that summing many daily values never
  accumulates sub-minute drift.

SEE ALSO:
  - accountant.go: The only consumer of Duration inside the engine
  - night.go: Reuses the same minutes-of-day coordinates
*/
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const minutesPerDay = 24 * 60

var (
	sixty       = decimal.NewFromInt(60)
	maxShiftHrs = decimal.NewFromInt(MaxShiftHours)
)

// MaxShiftHours is the longest shift the validation layer accepts. Anything
// longer almost certainly means clock-in and clock-out were swapped or
// mistyped, and the rollover heuristic turned it into an overnight shift.
const MaxShiftHours = 16

// clockMinutes parses "HH:MM" into minutes since midnight.
func clockMinutes(value string) (int, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, &TimeFormatError{Value: value}
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &TimeFormatError{Value: value}
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &TimeFormatError{Value: value}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, &TimeFormatError{Value: value}
	}
	return hour*60 + minute, nil
}

// Duration computes the worked hours between clockIn and clockOut.
// If clockOut is not strictly after clockIn the shift is treated as
// crossing midnight.
func Duration(clockIn, clockOut string) (decimal.Decimal, error) {
	entry, err := clockMinutes(clockIn)
	if err != nil {
		return decimal.Zero, err
	}
	exit, err := clockMinutes(clockOut)
	if err != nil {
		return decimal.Zero, err
	}
	if exit <= entry {
		exit += minutesPerDay
	}
	return decimal.NewFromInt(int64(exit - entry)).Div(sixty), nil
}

// ValidateShiftLength rejects durations the rollover heuristic made
// implausible. Lives outside Duration so the pure function keeps its
// total contract.
func ValidateShiftLength(hours decimal.Decimal) error {
	if hours.GreaterThan(maxShiftHrs) {
		return fmt.Errorf("%w: %s worked hours (max %d)",
			ErrShiftTooLong, hours.StringFixed(2), MaxShiftHours)
	}
	return nil
}

// RoundToMinute rounds a decimal hour quantity to the nearest whole minute.
func RoundToMinute(hours decimal.Decimal) decimal.Decimal {
	return hours.Mul(sixty).Round(0).Div(sixty)
}

// FormatHours renders decimal hours as "HH:MM:SS" for display. Negative or
// invalid values render as "00:00:00", matching how deficit buckets are
// always reported as positive magnitudes.
func FormatHours(hours decimal.Decimal) string {
	if hours.IsNegative() {
		return "00:00:00"
	}
	totalMinutes := hours.Mul(sixty).Round(0).IntPart()
	return fmt.Sprintf("%02d:%02d:00", totalMinutes/60, totalMinutes%60)
}
