/*
Package severance computes the one-time settlement owed on employment
termination ("rescisão").

PURPOSE:
  From admission/termination dates, the current salary and the
  termination reason, derives each settlement component and the payable
  total. Independent of the hours engine: it consumes employment dates
  and money only.

COMPONENTS:
  salary balance            (salary/30) * day-of-month of termination
  expired vacation          salary * 4/3 when a vacation period lapsed
  proportional vacation     (salary/12 + salary/36) * months worked this year
  proportional 13th salary  (salary/12) * months worked this year
  notice pay                salary + 3 days' pay per full year beyond the
                            first, zero when notice was served
  severance fund balance    8% of salary per month of completed years
  fund penalty              40% of the fund balance, only when the
                            employer terminated without cause

  "Months worked this year" is the 1-based month index of the termination
  date, and years of service are floor(days/365) - the original system's
  conventions, kept for parity.

FAILURE:
  ErrInvalidDateRange when termination precedes admission;
  ErrInvalidSalary when salary <= 0.
*/
package severance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/esc4n0rx/pontoflex/engine"
)

// Reason is why the employment ended. It only changes the fund penalty.
type Reason string

const (
	ReasonEmployeeInitiated Reason = "employee_initiated"
	ReasonForCause          Reason = "for_cause"
	ReasonWithoutCause      Reason = "without_cause"
)

// Valid reports whether r is a known termination reason.
func (r Reason) Valid() bool {
	return r == ReasonEmployeeInitiated || r == ReasonForCause || r == ReasonWithoutCause
}

// Input is everything the settlement depends on.
type Input struct {
	AdmissionDate   time.Time
	TerminationDate time.Time
	Salary          decimal.Decimal
	Reason          Reason
	NoticeServed    bool
	ExpiredVacation bool // one full vacation period lapsed unpaid
}

// Breakdown is the itemized settlement, all values in currency.
type Breakdown struct {
	SalaryBalance        decimal.Decimal
	ExpiredVacationPay   decimal.Decimal
	ProportionalVacation decimal.Decimal
	ProportionalThirteen decimal.Decimal
	NoticePay            decimal.Decimal
	FundBalance          decimal.Decimal
	FundPenalty          decimal.Decimal
	TotalPayable         decimal.Decimal
}

var (
	thirty      = decimal.NewFromInt(30)
	twelve      = decimal.NewFromInt(12)
	thirtySix   = decimal.NewFromInt(36)
	three       = decimal.NewFromInt(3)
	fundRate    = decimal.RequireFromString("0.08")
	penaltyRate = decimal.RequireFromString("0.4")
	oneThird    = decimal.NewFromInt(1).Div(decimal.NewFromInt(3))
)

// Compute derives the full settlement.
func Compute(in Input) (Breakdown, error) {
	if !in.Salary.IsPositive() {
		return Breakdown{}, engine.ErrInvalidSalary
	}
	if in.TerminationDate.Before(in.AdmissionDate) {
		return Breakdown{}, engine.ErrInvalidDateRange
	}

	yearsOfService := int64(in.TerminationDate.Sub(in.AdmissionDate).Hours() / 24 / 365)
	monthsThisYear := decimal.NewFromInt(int64(in.TerminationDate.Month()))

	dailyPay := in.Salary.Div(thirty)
	var b Breakdown

	b.SalaryBalance = dailyPay.Mul(decimal.NewFromInt(int64(in.TerminationDate.Day())))

	if in.ExpiredVacation {
		b.ExpiredVacationPay = in.Salary.Add(in.Salary.Mul(oneThird))
	}

	b.ProportionalVacation = in.Salary.Div(twelve).Add(in.Salary.Div(thirtySix)).Mul(monthsThisYear)
	b.ProportionalThirteen = in.Salary.Div(twelve).Mul(monthsThisYear)

	if !in.NoticeServed {
		extraYears := yearsOfService - 1
		if extraYears < 0 {
			extraYears = 0
		}
		b.NoticePay = in.Salary.Add(dailyPay.Mul(three).Mul(decimal.NewFromInt(extraYears)))
	}

	b.FundBalance = in.Salary.Mul(fundRate).Mul(twelve).Mul(decimal.NewFromInt(yearsOfService))
	if in.Reason == ReasonWithoutCause {
		b.FundPenalty = b.FundBalance.Mul(penaltyRate)
	}

	b.TotalPayable = b.SalaryBalance.
		Add(b.ExpiredVacationPay).
		Add(b.ProportionalVacation).
		Add(b.ProportionalThirteen).
		Add(b.NoticePay).
		Add(b.FundBalance).
		Add(b.FundPenalty)
	return b, nil
}
