/*
night.go - Night-differential hours

PURPOSE:
  Computes the portion of a shift that overlaps the legal night window,
  22:00 through 05:00 of the following day. Night differential is an
  opt-in classification: the caller flags the shift, the engine never
  infers it from the clock times.

COORDINATES:
  The window is [22:00, 29:00) - i.e. 1320..1740 minutes - expressed in
  minutes since midnight of the day the shift STARTED, using the same
  rollover rule as Duration. This makes partial overlap a plain interval
  intersection regardless of whether the shift starts before, during or
  after the window.

SEE ALSO:
  - clock.go: clockMinutes and the rollover rule
  - accountant.go: Adds the result as an independent bucket
*/
package engine

import "github.com/shopspring/decimal"

const (
	nightWindowStart = 22 * 60 // 22:00
	nightWindowEnd   = 29 * 60 // 05:00 next day
)

// NightHours returns the hours of the shift inside the night window, or
// zero when the shift is not flagged as a night shift.
func NightHours(clockIn, clockOut string, nightShift bool) (decimal.Decimal, error) {
	if !nightShift {
		return decimal.Zero, nil
	}
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

	overlapStart := max(entry, nightWindowStart)
	overlapEnd := min(exit, nightWindowEnd)
	if overlapEnd <= overlapStart {
		return decimal.Zero, nil
	}
	return decimal.NewFromInt(int64(overlapEnd - overlapStart)).Div(sixty), nil
}
