/*
schedule.go - Required daily hours per schedule and day of week

PURPOSE:
  A pure lookup table mapping {schedule type, day of week} to the hours
  the employee is required to work that day.

THE TABLE:
  6x1: Sunday 0h, every other day 7h20m
  5x2: Sunday 0h, Saturday 2h, weekdays 8h45m

SEE ALSO:
  - accountant.go: Subtracts required hours from worked hours
*/
package engine

import (
	"time"

	"github.com/shopspring/decimal"
)

// Required hours expressed in minutes to stay exact (7h20m and 8h45m are
// not representable as short decimals).
var (
	requiredSixOne   = decimal.NewFromInt(7*60 + 20).Div(sixty) // 7.333...
	requiredFiveTwo  = decimal.NewFromInt(8*60 + 45).Div(sixty) // 8.75
	requiredSaturday = decimal.NewFromInt(2)
)

// RequiredHours returns the daily quota for the given schedule and weekday.
// Unknown schedules behave as 6x1, the original system's default.
func RequiredHours(schedule ScheduleType, day time.Weekday) decimal.Decimal {
	if day == time.Sunday {
		return decimal.Zero
	}
	switch schedule {
	case ScheduleFiveTwo:
		if day == time.Saturday {
			return requiredSaturday
		}
		return requiredFiveTwo
	default:
		return requiredSixOne
	}
}
