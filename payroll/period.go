/*
Package payroll resolves pay periods and aggregates daily accounting into
a monetary estimate.

PURPOSE:
  The payroll sheet ("folha") runs on a 16th-to-15th cycle: a period
  always starts on the 16th of some month and ends on the 15th of the
  following month. This package resolves the period containing a given
  date, enumerates past periods for the period picker, and folds a
  period's daily accounting records into a Summary with a payable total.

KEY CONCEPTS IN THIS FILE (period.go):
  - Period: A [16th, 15th] value object with a human-readable pt-BR label
  - CurrentPeriod: Resolves the cycle containing a date
  - PastPeriods: Enumerates trailing cycles, oldest first

SEE ALSO:
  - aggregate.go: Summarize and the hourly-rate money conversion
*/
package payroll

import (
	"fmt"
	"time"
)

// cycleDay is the day of month a pay period starts; the previous period
// ends the day before.
const cycleDay = 16

// Period is one 16th-to-15th payroll cycle. Start.Day() is always 16 and
// End.Day() is always 15; the span is 30-31 days depending on month
// lengths. Periods are value objects with no persisted identity.
type Period struct {
	Start time.Time
	End   time.Time
	Label string
}

// Contains reports whether date falls inside the period (inclusive).
func (p Period) Contains(date time.Time) bool {
	d := dateOnly(date)
	return !d.Before(p.Start) && !d.After(p.End)
}

func (p Period) String() string {
	return "[" + p.Start.Format("2006-01-02") + ", " + p.End.Format("2006-01-02") + "]"
}

// Portuguese month names for period labels, indexed by time.Month.
var monthNamesPT = [...]string{
	time.January:   "Janeiro",
	time.February:  "Fevereiro",
	time.March:     "Março",
	time.April:     "Abril",
	time.May:       "Maio",
	time.June:      "Junho",
	time.July:      "Julho",
	time.August:    "Agosto",
	time.September: "Setembro",
	time.October:   "Outubro",
	time.November:  "Novembro",
	time.December:  "Dezembro",
}

// CurrentPeriod returns the pay period containing today. Before the 16th
// the period started on the 16th of the previous month; from the 16th on
// it started this month.
func CurrentPeriod(today time.Time) Period {
	year, month, _ := today.Date()
	start := time.Date(year, month, cycleDay, 0, 0, 0, 0, time.UTC)
	if today.Day() < cycleDay {
		start = start.AddDate(0, -1, 0)
	}
	end := start.AddDate(0, 1, -1)
	return Period{
		Start: start,
		End:   end,
		Label: periodLabel(start, end),
	}
}

// PastPeriods returns the n most recent pay periods relative to today,
// oldest first. The current period is the last element.
func PastPeriods(n int, today time.Time) []Period {
	if n <= 0 {
		return nil
	}
	periods := make([]Period, n)
	current := CurrentPeriod(today)
	for i := 0; i < n; i++ {
		periods[n-1-i] = current
		// Walking back from the 16th is always safe; shifting "today" back
		// a month is not (the 31st would normalize into the wrong cycle).
		start := current.Start.AddDate(0, -1, 0)
		end := start.AddDate(0, 1, -1)
		current = Period{Start: start, End: end, Label: periodLabel(start, end)}
	}
	return periods
}

func periodLabel(start, end time.Time) string {
	return fmt.Sprintf("%s (%s – %s)",
		monthNamesPT[start.Month()],
		start.Format("02/01/2006"),
		end.Format("02/01/2006"))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
