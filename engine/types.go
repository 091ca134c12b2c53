/*
Package engine provides the labor-hours accounting core.

PURPOSE:
  This package contains the pure computational rules that turn a raw
  clock-in/clock-out pair plus employee schedule metadata into accounted
  hours: banked hours, paid overtime, deficit ("negative") hours, night
  differential and holiday classification.

KEY CONCEPTS IN THIS FILE (types.go):
  - ScheduleType: The employee's work schedule (6x1 or 5x2)
  - Shift: A single clock-in/clock-out record for one calendar day
  - DailyAccounting: The immutable derived result for one shift
  - Profile: Employee schedule and salary metadata

DESIGN PRINCIPLES:
  1. Purity: Every operation is a side-effect-free function of its inputs,
     safe to call concurrently. Recomputing a shift twice yields identical
     results.
  2. Precision: Uses decimal.Decimal for all hour quantities to avoid
     floating-point drift when many daily values are summed.
  3. Multiplier as metadata: Premium multipliers (1.5x weekday overtime,
     2.0x holiday/Sunday) are recorded on the result and applied only
     during monetary aggregation, never baked into the hour values.

USAGE:
  acc := engine.NewAccountant(engine.Brazil2025())
  result, err := acc.Account(shift, profile)

SEE ALSO:
  - clock.go: Clock-time parsing and shift duration
  - accountant.go: The central classification algorithm
  - holiday.go: Holiday calendar implementations
*/
package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SCHEDULE TYPE
// =============================================================================

// ScheduleType identifies the employee's work schedule.
type ScheduleType string

const (
	// ScheduleSixOne is six worked days per one rest day (Sunday off).
	ScheduleSixOne ScheduleType = "6x1"

	// ScheduleFiveTwo is five worked days per two rest days
	// (short Saturday, Sunday off).
	ScheduleFiveTwo ScheduleType = "5x2"
)

// Valid reports whether s is a known schedule.
func (s ScheduleType) Valid() bool {
	return s == ScheduleSixOne || s == ScheduleFiveTwo
}

// =============================================================================
// SHIFT - One submitted punch record
// =============================================================================

// Shift is a single clock-in/clock-out pair for one calendar day.
// It is immutable once accounted; corrections create a new Shift and
// re-derive the accounting from scratch.
type Shift struct {
	Date       time.Time
	ClockIn    string // "HH:MM", 24h
	ClockOut   string // "HH:MM", 24h
	NightShift bool   // opt-in night-differential classification
}

// Weekday returns the day of week of the shift date.
func (s Shift) Weekday() time.Weekday { return s.Date.Weekday() }

// =============================================================================
// DAILY ACCOUNTING - Derived, immutable result
// =============================================================================

// DailyAccounting classifies the worked time of a single shift.
//
// Invariant: at most one of Banked/Deficit is non-zero. On holidays and
// Sundays both are zero and the full worked time lands in Overtime.
type DailyAccounting struct {
	Total      decimal.Decimal // worked hours, rounded to the minute
	Banked     decimal.Decimal // surplus credited to the time bank, 0..2
	Overtime   decimal.Decimal // paid surplus beyond the banked cap
	Deficit    decimal.Decimal // shortfall versus required hours
	NightDiff  decimal.Decimal // hours inside the 22:00-05:00 window
	Holiday    bool            // shift date is a calendar holiday
	Multiplier decimal.Decimal // overtime pay multiplier (1.5 or 2.0)
}

// PremiumDay reports whether the record is paid at the holiday/Sunday rate.
func (d DailyAccounting) PremiumDay() bool {
	return d.Multiplier.Equal(MultiplierPremium)
}

// Overtime pay multipliers, applied during monetary aggregation only.
var (
	MultiplierStandard = decimal.RequireFromString("1.5") // regular workday
	MultiplierPremium  = decimal.RequireFromString("2")   // holiday or Sunday
)

// NightDiffRate is the night-differential premium over the base hourly
// rate (50%).
var NightDiffRate = decimal.RequireFromString("0.5")

// =============================================================================
// PROFILE - Employee schedule and salary metadata
// =============================================================================

// Profile carries the employee metadata the accountant and the payroll
// aggregator need. The engine never mutates it; the hourly rate is derived
// on demand so salary changes take effect immediately.
type Profile struct {
	Schedule          ScheduleType
	MonthlySalary     decimal.Decimal
	MonthlyHoursQuota decimal.Decimal
}
