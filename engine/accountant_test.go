/*
accountant_test.go - Executable specification of the daily classification

Each test documents one behavior of the accounting contract: the banked
cap, premium days, the mutual-exclusivity invariant, the independence of
the night bucket and idempotence. Tests are intentionally verbose.
*/
package engine_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/esc4n0rx/pontoflex/engine"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func sixOneProfile() *engine.Profile {
	return &engine.Profile{
		Schedule:          engine.ScheduleSixOne,
		MonthlySalary:     decimal.NewFromInt(3000),
		MonthlyHoursQuota: decimal.NewFromInt(220),
	}
}

func shiftOn(date time.Time, in, out string) engine.Shift {
	return engine.Shift{Date: date, ClockIn: in, ClockOut: out}
}

// 2025-06-10 is a Tuesday with no holiday.
var tuesday = time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

// 2025-06-08 is a Sunday.
var sunday = time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC)

func account(t *testing.T, calendar engine.HolidayCalendar, shift engine.Shift, profile *engine.Profile) engine.DailyAccounting {
	t.Helper()
	result, err := engine.NewAccountant(calendar).Account(shift, profile)
	if err != nil {
		t.Fatalf("Account: %v", err)
	}
	return result
}

// =============================================================================
// STANDARD WEEKDAYS
// =============================================================================

func TestAccount_SurplusWithinBankedCap(t *testing.T) {
	// GIVEN: 08:00-17:00 on a Tuesday, 6x1 schedule (required 7h20m)
	// WHEN:  accounted
	// THEN:  total 9h, surplus 1h40m all banked, no overtime, no deficit

	result := account(t, nil, shiftOn(tuesday, "08:00", "17:00"), sixOneProfile())

	if got := engine.FormatHours(result.Total); got != "09:00:00" {
		t.Errorf("Total = %s, want 09:00:00", got)
	}
	if got := engine.FormatHours(result.Banked); got != "01:40:00" {
		t.Errorf("Banked = %s, want 01:40:00", got)
	}
	if !result.Overtime.IsZero() || !result.Deficit.IsZero() {
		t.Errorf("Overtime/Deficit = %s/%s, want 0/0", result.Overtime, result.Deficit)
	}
	if result.Holiday {
		t.Error("Holiday = true, want false")
	}
}

func TestAccount_SurplusBeyondBankedCap(t *testing.T) {
	// GIVEN: 08:00-20:00 on a Tuesday, 6x1 schedule
	// WHEN:  accounted
	// THEN:  total 12h, surplus 4h40m: bank 2h, 2h40m overtime at 1.5x

	result := account(t, nil, shiftOn(tuesday, "08:00", "20:00"), sixOneProfile())

	if got := engine.FormatHours(result.Total); got != "12:00:00" {
		t.Errorf("Total = %s, want 12:00:00", got)
	}
	if !result.Banked.Equal(decimal.NewFromInt(2)) {
		t.Errorf("Banked = %s, want 2", result.Banked)
	}
	if got := engine.FormatHours(result.Overtime); got != "02:40:00" {
		t.Errorf("Overtime = %s, want 02:40:00", got)
	}
	if !result.Multiplier.Equal(engine.MultiplierStandard) {
		t.Errorf("Multiplier = %s, want 1.5", result.Multiplier)
	}
}

func TestAccount_Deficit(t *testing.T) {
	// GIVEN: 08:00-14:00 on a Tuesday, 6x1 schedule (required 7h20m)
	// THEN:  1h20m deficit, nothing banked, no overtime

	result := account(t, nil, shiftOn(tuesday, "08:00", "14:00"), sixOneProfile())

	if got := engine.FormatHours(result.Deficit); got != "01:20:00" {
		t.Errorf("Deficit = %s, want 01:20:00", got)
	}
	if !result.Banked.IsZero() || !result.Overtime.IsZero() {
		t.Errorf("Banked/Overtime = %s/%s, want 0/0", result.Banked, result.Overtime)
	}
}

func TestAccount_ExactQuotaIsNeitherBankedNorDeficit(t *testing.T) {
	// GIVEN: exactly the required 7h20m on a 6x1 Tuesday (08:00-15:20)
	// THEN:  all buckets zero

	result := account(t, nil, shiftOn(tuesday, "08:00", "15:20"), sixOneProfile())

	if !result.Banked.IsZero() || !result.Overtime.IsZero() || !result.Deficit.IsZero() {
		t.Errorf("buckets = %s/%s/%s, want all zero",
			result.Banked, result.Overtime, result.Deficit)
	}
}

// =============================================================================
// PREMIUM DAYS (HOLIDAY / SUNDAY)
// =============================================================================

func TestAccount_SundayIsAllOvertimeAtPremium(t *testing.T) {
	// GIVEN: any shift on a Sunday
	// THEN:  the ENTIRE worked time is overtime at 2.0x; nothing banked,
	//        nothing deficit, even though required hours are 0

	result := account(t, nil, shiftOn(sunday, "08:00", "12:00"), sixOneProfile())

	if got := engine.FormatHours(result.Overtime); got != "04:00:00" {
		t.Errorf("Overtime = %s, want 04:00:00", got)
	}
	if !result.Banked.IsZero() || !result.Deficit.IsZero() {
		t.Errorf("Banked/Deficit = %s/%s, want 0/0", result.Banked, result.Deficit)
	}
	if !result.Multiplier.Equal(engine.MultiplierPremium) {
		t.Errorf("Multiplier = %s, want 2", result.Multiplier)
	}
}

func TestAccount_HolidayIsAllOvertimeAtPremium(t *testing.T) {
	// GIVEN: a full workday on Tiradentes (2025-04-21, a Monday)
	// THEN:  all 9h are overtime at 2.0x and the record is flagged

	tiradentes := time.Date(2025, time.April, 21, 0, 0, 0, 0, time.UTC)
	result := account(t, engine.Brazil2025(), shiftOn(tiradentes, "08:00", "17:00"), sixOneProfile())

	if !result.Holiday {
		t.Fatal("Holiday = false, want true")
	}
	if got := engine.FormatHours(result.Overtime); got != "09:00:00" {
		t.Errorf("Overtime = %s, want 09:00:00", got)
	}
	if !result.Multiplier.Equal(engine.MultiplierPremium) {
		t.Errorf("Multiplier = %s, want 2", result.Multiplier)
	}
}

func TestAccount_HolidayTableScopedToYear(t *testing.T) {
	// GIVEN: the same month/day one year outside the covered table
	// THEN:  not a holiday; normal weekday classification applies

	apr21of2026 := time.Date(2026, time.April, 21, 0, 0, 0, 0, time.UTC) // Tuesday
	result := account(t, engine.Brazil2025(), shiftOn(apr21of2026, "08:00", "17:00"), sixOneProfile())

	if result.Holiday {
		t.Error("2026-04-21 flagged as holiday by the 2025 table")
	}
	if result.Overtime.IsPositive() && result.Banked.IsZero() {
		t.Error("classified as premium day instead of standard weekday")
	}
}

// =============================================================================
// NIGHT DIFFERENTIAL INDEPENDENCE
// =============================================================================

func TestAccount_NightDiffIsAdditive(t *testing.T) {
	// GIVEN: a flagged 22:00-06:00 night shift on a Tuesday
	// THEN:  night hours are reported alongside, not instead of, the
	//        banked/overtime split of the 8 worked hours

	shift := engine.Shift{Date: tuesday, ClockIn: "22:00", ClockOut: "06:00", NightShift: true}
	result := account(t, nil, shift, sixOneProfile())

	if got := engine.FormatHours(result.NightDiff); got != "07:00:00" {
		t.Errorf("NightDiff = %s, want 07:00:00", got)
	}
	// 8h worked - 7h20m required = 40m banked, untouched by the night bucket.
	if got := engine.FormatHours(result.Banked); got != "00:40:00" {
		t.Errorf("Banked = %s, want 00:40:00", got)
	}
}

// =============================================================================
// INVARIANTS
// =============================================================================

func TestAccount_BankedAndDeficitAreMutuallyExclusive(t *testing.T) {
	// Sweep a range of shift lengths; banked and deficit must never both
	// be non-zero for the same record.

	outs := []string{"10:00", "12:00", "14:00", "15:20", "16:00", "18:00", "20:00", "23:00"}
	for _, out := range outs {
		result := account(t, nil, shiftOn(tuesday, "08:00", out), sixOneProfile())
		if result.Banked.IsPositive() && result.Deficit.IsPositive() {
			t.Errorf("out=%s: banked %s AND deficit %s are both non-zero",
				out, result.Banked, result.Deficit)
		}
	}
}

func TestAccount_Idempotent(t *testing.T) {
	// Recomputing from the same inputs must yield identical results:
	// the accountant is a pure function with no hidden state.

	acc := engine.NewAccountant(engine.Brazil2025())
	shift := engine.Shift{Date: tuesday, ClockIn: "08:00", ClockOut: "20:00", NightShift: true}

	first, err := acc.Account(shift, sixOneProfile())
	if err != nil {
		t.Fatal(err)
	}
	second, err := acc.Account(shift, sixOneProfile())
	if err != nil {
		t.Fatal(err)
	}
	if !first.Total.Equal(second.Total) || !first.Banked.Equal(second.Banked) ||
		!first.Overtime.Equal(second.Overtime) || !first.Deficit.Equal(second.Deficit) ||
		!first.NightDiff.Equal(second.NightDiff) || first.Holiday != second.Holiday {
		t.Errorf("recomputation differs: %+v vs %+v", first, second)
	}
}

// =============================================================================
// FAILURES
// =============================================================================

func TestAccount_InvalidClockFailsWithInvalidShift(t *testing.T) {
	_, err := engine.NewAccountant(nil).Account(shiftOn(tuesday, "8h00", "17:00"), sixOneProfile())
	if !errors.Is(err, engine.ErrInvalidShift) {
		t.Errorf("error = %v, want ErrInvalidShift", err)
	}
	if !errors.Is(err, engine.ErrInvalidTimeFormat) {
		t.Errorf("error = %v, should wrap ErrInvalidTimeFormat", err)
	}
}

func TestAccount_NilProfileFailsWithMissingProfile(t *testing.T) {
	_, err := engine.NewAccountant(nil).Account(shiftOn(tuesday, "08:00", "17:00"), nil)
	if !errors.Is(err, engine.ErrMissingProfile) {
		t.Errorf("error = %v, want ErrMissingProfile", err)
	}
}
