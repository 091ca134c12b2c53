/*
aggregate.go - Period aggregation and monetary conversion

PURPOSE:
  Folds a period's DailyAccounting records into field-wise totals and a
  payable estimate.

MONEY:
  hourlyRate = monthlySalary / monthlyHoursQuota, derived on demand so a
  salary change is reflected immediately. Per record:

    pay = overtime * rate * multiplier  +  nightDiff * rate * 0.5

  where multiplier is the metadata recorded by the accountant (2.0 for
  holiday/Sunday records, 1.5 otherwise). Banked and deficit hours move
  the time bank, not money, so they never enter the payable total.

SEE ALSO:
  - engine/accountant.go: Where the multiplier metadata comes from
*/
package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/esc4n0rx/pontoflex/engine"
)

// Summary holds the aggregated totals of one pay period.
type Summary struct {
	TotalHours    decimal.Decimal
	BankedHours   decimal.Decimal
	OvertimeHours decimal.Decimal
	DeficitHours  decimal.Decimal
	NightHours    decimal.Decimal
	TotalPayable  decimal.Decimal
}

// HourlyRate derives the employee's hourly rate from salary and monthly
// quota. Never cached: salary changes must take effect on the next call.
func HourlyRate(profile *engine.Profile) (decimal.Decimal, error) {
	if profile == nil || !profile.MonthlyHoursQuota.IsPositive() {
		return decimal.Zero, engine.ErrMissingProfile
	}
	return profile.MonthlySalary.Div(profile.MonthlyHoursQuota), nil
}

// Summarize folds the records of one period into a Summary. An empty
// input yields an all-zero summary, not an error.
func Summarize(records []engine.DailyAccounting, profile *engine.Profile) (Summary, error) {
	rate, err := HourlyRate(profile)
	if err != nil {
		return Summary{}, err
	}

	var s Summary
	for _, r := range records {
		s.TotalHours = s.TotalHours.Add(r.Total)
		s.BankedHours = s.BankedHours.Add(r.Banked)
		s.OvertimeHours = s.OvertimeHours.Add(r.Overtime)
		s.DeficitHours = s.DeficitHours.Add(r.Deficit)
		s.NightHours = s.NightHours.Add(r.NightDiff)

		overtimePay := r.Overtime.Mul(rate).Mul(multiplierOf(r))
		nightPay := r.NightDiff.Mul(rate).Mul(engine.NightDiffRate)
		s.TotalPayable = s.TotalPayable.Add(overtimePay).Add(nightPay)
	}
	return s, nil
}

// multiplierOf tolerates records persisted before the multiplier column
// existed; they default to the standard rate unless flagged premium.
func multiplierOf(r engine.DailyAccounting) decimal.Decimal {
	if r.Multiplier.IsZero() {
		if r.Holiday {
			return engine.MultiplierPremium
		}
		return engine.MultiplierStandard
	}
	return r.Multiplier
}
