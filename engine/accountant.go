/*
accountant.go - The central daily classification algorithm

PURPOSE:
  Combines shift duration, the schedule table and the holiday calendar to
  classify one day of worked time into banked/overtime/deficit buckets,
  plus the independent night-differential bucket.

THE RULES:
  1. Holiday or Sunday: the ENTIRE worked time is overtime at the 2.0x
     premium multiplier. Nothing is banked, nothing is deficit.
  2. Any other day, surplus = worked - required:
       surplus > 2h:    bank 2h, the rest is overtime at 1.5x
       0 < surplus <= 2: bank the surplus
       surplus <= 0:     the shortfall is deficit
  3. Night differential is additive: it never replaces a bucket above.

  Multipliers are recorded as metadata on the result and applied only by
  the payroll aggregator. The source system had variants that also
  pre-multiplied the hour values, which double-counted the premium once
  aggregation re-applied it; keeping the multiplier external is the
  canonical behavior here.

ROUNDING:
  Worked and required hours are rounded to the whole minute BEFORE the
  subtraction, so bucket values are exact minute quantities and period
  sums cannot drift.

FAILURE:
  ErrInvalidShift (wrapping the parse failure) when the duration cannot be
  computed; ErrMissingProfile when the profile is nil. Nothing else fails.

SEE ALSO:
  - clock.go, schedule.go, night.go, holiday.go: The inputs
  - recompute.go: Bulk re-derivation over stored shifts
*/
package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

var bankedCap = decimal.NewFromInt(2)

// Accountant derives DailyAccounting values from raw shifts. It is
// stateless apart from the injected calendar and safe for concurrent use.
type Accountant struct {
	calendar HolidayCalendar
}

// NewAccountant creates an accountant backed by the given calendar.
// A nil calendar behaves as NoHolidays.
func NewAccountant(calendar HolidayCalendar) *Accountant {
	if calendar == nil {
		calendar = NoHolidays{}
	}
	return &Accountant{calendar: calendar}
}

// Account classifies a single shift for the given employee profile.
func (a *Accountant) Account(shift Shift, profile *Profile) (DailyAccounting, error) {
	if profile == nil {
		return DailyAccounting{}, ErrMissingProfile
	}

	total, err := Duration(shift.ClockIn, shift.ClockOut)
	if err != nil {
		return DailyAccounting{}, &ShiftError{Date: shift.Date.Format("2006-01-02"), Err: err}
	}
	total = RoundToMinute(total)

	nightDiff, err := NightHours(shift.ClockIn, shift.ClockOut, shift.NightShift)
	if err != nil {
		return DailyAccounting{}, &ShiftError{Date: shift.Date.Format("2006-01-02"), Err: err}
	}
	nightDiff = RoundToMinute(nightDiff)

	holiday := a.calendar.IsHoliday(shift.Date)
	result := DailyAccounting{
		Total:      total,
		NightDiff:  nightDiff,
		Holiday:    holiday,
		Multiplier: MultiplierStandard,
	}

	if holiday || shift.Weekday() == time.Sunday {
		result.Overtime = total
		result.Multiplier = MultiplierPremium
		return result, nil
	}

	required := RoundToMinute(RequiredHours(profile.Schedule, shift.Weekday()))
	surplus := total.Sub(required)
	switch {
	case surplus.GreaterThan(bankedCap):
		result.Banked = bankedCap
		result.Overtime = surplus.Sub(bankedCap)
	case surplus.IsPositive():
		result.Banked = surplus
	default:
		result.Deficit = surplus.Neg()
	}
	return result, nil
}
