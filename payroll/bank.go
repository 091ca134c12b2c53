/*
bank.go - Banked-hours running balance ("banco de horas")

PURPOSE:
  Derives an employee's hour-bank statement by replaying daily accounting
  entries chronologically. There is no stored balance field that can get
  out of sync: credits are each day's banked hours, debits each day's
  deficit, and the balance is always the replayed sum.

KEY INSIGHT:
  Banked and deficit are mutually exclusive per day, so each entry moves
  the balance in exactly one direction. A negative balance is legal - it
  means the employee owes hours.

SEE ALSO:
  - aggregate.go: Period totals and payable amounts
  - engine/accountant.go: Produces the per-day banked/deficit split
*/
package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/esc4n0rx/pontoflex/engine"
)

// =============================================================================
// BANK STATEMENT - Replayed from daily entries
// =============================================================================

// BankEntry is one day's movement in the hour bank.
type BankEntry struct {
	Accounting engine.DailyAccounting

	// Delta is banked minus deficit for the day (at most one is non-zero).
	Delta decimal.Decimal

	// Balance is the running balance after this entry.
	Balance decimal.Decimal
}

// BankStatement is the replayed hour-bank history plus its closing state.
type BankStatement struct {
	Entries []BankEntry

	TotalCredited decimal.Decimal // sum of banked hours
	TotalDebited  decimal.Decimal // sum of deficit hours
	Balance       decimal.Decimal // TotalCredited - TotalDebited
}

// InDebt reports whether the employee owes hours.
func (s BankStatement) InDebt() bool {
	return s.Balance.IsNegative()
}

// BankBalance replays accounting entries in the order given and returns
// the full statement. Callers pass records already sorted by date; the
// function itself is order-preserving, not order-enforcing.
func BankBalance(records []engine.DailyAccounting) BankStatement {
	s := BankStatement{Entries: make([]BankEntry, 0, len(records))}
	for _, acc := range records {
		delta := acc.Banked.Sub(acc.Deficit)
		s.TotalCredited = s.TotalCredited.Add(acc.Banked)
		s.TotalDebited = s.TotalDebited.Add(acc.Deficit)
		s.Balance = s.Balance.Add(delta)
		s.Entries = append(s.Entries, BankEntry{
			Accounting: acc,
			Delta:      delta,
			Balance:    s.Balance,
		})
	}
	return s
}
