package payroll_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/esc4n0rx/pontoflex/engine"
	"github.com/esc4n0rx/pontoflex/payroll"
)

func TestBankBalance_ReplaysRunningBalance(t *testing.T) {
	// GIVEN: four days of movements
	//   +2 banked, +1 banked, -4 deficit, +0.5 banked
	// THEN: running balances 2, 3, -1, -0.5 and a closing debt of half an hour

	records := []engine.DailyAccounting{
		{Banked: decimal.NewFromInt(2)},
		{Banked: decimal.NewFromInt(1)},
		{Deficit: decimal.NewFromInt(4)},
		{Banked: decimal.RequireFromString("0.5")},
	}

	s := payroll.BankBalance(records)

	wantBalances := []string{"2", "3", "-1", "-0.5"}
	if len(s.Entries) != len(wantBalances) {
		t.Fatalf("entries = %d, want %d", len(s.Entries), len(wantBalances))
	}
	for i, want := range wantBalances {
		if got := s.Entries[i].Balance; !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("entry %d: balance = %s, want %s", i, got, want)
		}
	}

	if !s.TotalCredited.Equal(decimal.RequireFromString("3.5")) {
		t.Errorf("TotalCredited = %s, want 3.5", s.TotalCredited)
	}
	if !s.TotalDebited.Equal(decimal.NewFromInt(4)) {
		t.Errorf("TotalDebited = %s, want 4", s.TotalDebited)
	}
	if !s.Balance.Equal(decimal.RequireFromString("-0.5")) {
		t.Errorf("Balance = %s, want -0.5", s.Balance)
	}
	if !s.InDebt() {
		t.Error("InDebt() = false, want true")
	}
}

func TestBankBalance_Empty(t *testing.T) {
	s := payroll.BankBalance(nil)
	if len(s.Entries) != 0 || !s.Balance.IsZero() || s.InDebt() {
		t.Errorf("empty statement not zero: %+v", s)
	}
}

func TestBankBalance_DeltaMatchesEntry(t *testing.T) {
	// Banked and deficit are mutually exclusive per day, so each delta is
	// exactly one of them, signed.
	records := []engine.DailyAccounting{
		{Banked: decimal.NewFromInt(2)},
		{Deficit: decimal.RequireFromString("1.25")},
	}
	s := payroll.BankBalance(records)
	if !s.Entries[0].Delta.Equal(decimal.NewFromInt(2)) {
		t.Errorf("delta[0] = %s, want 2", s.Entries[0].Delta)
	}
	if !s.Entries[1].Delta.Equal(decimal.RequireFromString("-1.25")) {
		t.Errorf("delta[1] = %s, want -1.25", s.Entries[1].Delta)
	}
}
