package payroll_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/esc4n0rx/pontoflex/engine"
	"github.com/esc4n0rx/pontoflex/payroll"
)

func testProfile() *engine.Profile {
	// 2200 / 220h quota = 10/h, chosen so the premium math stays readable.
	return &engine.Profile{
		Schedule:          engine.ScheduleSixOne,
		MonthlySalary:     decimal.NewFromInt(2200),
		MonthlyHoursQuota: decimal.NewFromInt(220),
	}
}

func TestHourlyRate(t *testing.T) {
	rate, err := payroll.HourlyRate(testProfile())
	if err != nil {
		t.Fatal(err)
	}
	if !rate.Equal(decimal.NewFromInt(10)) {
		t.Errorf("rate = %s, want 10", rate)
	}

	if _, err := payroll.HourlyRate(nil); !errors.Is(err, engine.ErrMissingProfile) {
		t.Errorf("nil profile: error = %v, want ErrMissingProfile", err)
	}
	zeroQuota := &engine.Profile{MonthlySalary: decimal.NewFromInt(2200)}
	if _, err := payroll.HourlyRate(zeroQuota); !errors.Is(err, engine.ErrMissingProfile) {
		t.Errorf("zero quota: error = %v, want ErrMissingProfile", err)
	}
}

func TestSummarize_EmptyInputIsZero(t *testing.T) {
	s, err := payroll.Summarize(nil, testProfile())
	if err != nil {
		t.Fatal(err)
	}
	if !s.TotalPayable.IsZero() || !s.TotalHours.IsZero() {
		t.Errorf("empty summary not zero: %+v", s)
	}
}

func TestSummarize_MoneyPerMultiplier(t *testing.T) {
	// GIVEN: rate 10/h and three records:
	//   weekday:  2h overtime at 1.5x           -> 30
	//   premium:  3h overtime at 2.0x           -> 60
	//   night:    4h night differential at 0.5x -> 20
	// THEN: totalPayable = 110; banked/deficit never enter the money

	records := []engine.DailyAccounting{
		{
			Total:      decimal.NewFromInt(9),
			Banked:     decimal.NewFromInt(2),
			Overtime:   decimal.NewFromInt(2),
			Multiplier: engine.MultiplierStandard,
		},
		{
			Total:      decimal.NewFromInt(3),
			Overtime:   decimal.NewFromInt(3),
			Holiday:    true,
			Multiplier: engine.MultiplierPremium,
		},
		{
			Total:      decimal.NewFromInt(8),
			Deficit:    decimal.NewFromInt(1),
			NightDiff:  decimal.NewFromInt(4),
			Multiplier: engine.MultiplierStandard,
		},
	}

	s, err := payroll.Summarize(records, testProfile())
	if err != nil {
		t.Fatal(err)
	}

	if !s.TotalPayable.Equal(decimal.NewFromInt(110)) {
		t.Errorf("TotalPayable = %s, want 110", s.TotalPayable)
	}
	if !s.TotalHours.Equal(decimal.NewFromInt(20)) {
		t.Errorf("TotalHours = %s, want 20", s.TotalHours)
	}
	if !s.BankedHours.Equal(decimal.NewFromInt(2)) {
		t.Errorf("BankedHours = %s, want 2", s.BankedHours)
	}
	if !s.OvertimeHours.Equal(decimal.NewFromInt(5)) {
		t.Errorf("OvertimeHours = %s, want 5", s.OvertimeHours)
	}
	if !s.DeficitHours.Equal(decimal.NewFromInt(1)) {
		t.Errorf("DeficitHours = %s, want 1", s.DeficitHours)
	}
	if !s.NightHours.Equal(decimal.NewFromInt(4)) {
		t.Errorf("NightHours = %s, want 4", s.NightHours)
	}
}

func TestSummarize_LegacyRecordWithoutMultiplier(t *testing.T) {
	// Records persisted before the multiplier column default to 1.5x,
	// or 2.0x when flagged as holidays.
	records := []engine.DailyAccounting{
		{Overtime: decimal.NewFromInt(2)},                // -> 2 * 10 * 1.5 = 30
		{Overtime: decimal.NewFromInt(2), Holiday: true}, // -> 2 * 10 * 2.0 = 40
	}
	s, err := payroll.Summarize(records, testProfile())
	if err != nil {
		t.Fatal(err)
	}
	if !s.TotalPayable.Equal(decimal.NewFromInt(70)) {
		t.Errorf("TotalPayable = %s, want 70", s.TotalPayable)
	}
}
