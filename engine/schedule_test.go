package engine_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/esc4n0rx/pontoflex/engine"
)

func TestRequiredHours_Table(t *testing.T) {
	sevenTwenty := decimal.NewFromInt(7*60 + 20).Div(decimal.NewFromInt(60))
	eightFortyFive := decimal.RequireFromString("8.75")

	cases := []struct {
		schedule engine.ScheduleType
		day      time.Weekday
		want     decimal.Decimal
	}{
		{engine.ScheduleSixOne, time.Sunday, decimal.Zero},
		{engine.ScheduleSixOne, time.Monday, sevenTwenty},
		{engine.ScheduleSixOne, time.Saturday, sevenTwenty},
		{engine.ScheduleFiveTwo, time.Sunday, decimal.Zero},
		{engine.ScheduleFiveTwo, time.Saturday, decimal.NewFromInt(2)},
		{engine.ScheduleFiveTwo, time.Wednesday, eightFortyFive},
		{engine.ScheduleFiveTwo, time.Friday, eightFortyFive},
	}
	for _, c := range cases {
		got := engine.RequiredHours(c.schedule, c.day)
		if !got.Equal(c.want) {
			t.Errorf("RequiredHours(%s, %s) = %s, want %s", c.schedule, c.day, got, c.want)
		}
	}
}
