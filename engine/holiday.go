/*
holiday.go - Holiday calendar implementations

PURPOSE:
  Answers "is this date a holiday?" for the accountant. Exposed as an
  interface so the bundled static table and an external HTTP provider are
  interchangeable without touching the classification algorithm.

IMPLEMENTATIONS:
  StaticCalendar:  (month, day) table scoped to one calendar year.
                   Dates outside the covered year are NOT holidays, so the
                   accountant stays total over time.
  RemoteCalendar:  Queries a feriados HTTP API (BrasilAPI-compatible) with
                   a bounded timeout. On ANY failure it degrades to "not a
                   holiday" - an accounting batch must never abort because
                   the holiday service is down. This availability-over-
                   correctness tradeoff is deliberate; callers that need
                   certainty should use the static table.
  NoHolidays:      The zero calendar, for tests and disabled setups.

SEE ALSO:
  - accountant.go: The consumer
*/
package engine

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// HolidayCalendar reports whether a calendar date is a holiday.
type HolidayCalendar interface {
	IsHoliday(date time.Time) bool
}

// =============================================================================
// STATIC CALENDAR
// =============================================================================

// monthDay is a (month, day) pair within the calendar's year.
type monthDay struct {
	Month time.Month
	Day   int
}

// StaticCalendar is a fixed per-year holiday table.
type StaticCalendar struct {
	year int
	days map[monthDay]struct{}
}

// NewStaticCalendar builds a calendar for a single year from (month, day)
// pairs.
func NewStaticCalendar(year int, days []monthDay) *StaticCalendar {
	set := make(map[monthDay]struct{}, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return &StaticCalendar{year: year, days: set}
}

// IsHoliday returns true only for covered dates of the covered year.
func (c *StaticCalendar) IsHoliday(date time.Time) bool {
	if date.Year() != c.year {
		return false
	}
	_, ok := c.days[monthDay{Month: date.Month(), Day: date.Day()}]
	return ok
}

// Brazil2025 returns the bundled Brazilian national holiday table for 2025.
func Brazil2025() *StaticCalendar {
	return NewStaticCalendar(2025, []monthDay{
		{time.January, 1},   // Confraternização Universal
		{time.March, 3},     // Carnaval
		{time.March, 4},     // Carnaval
		{time.April, 18},    // Sexta-feira Santa
		{time.April, 21},    // Tiradentes
		{time.May, 1},       // Dia do Trabalho
		{time.June, 19},     // Corpus Christi
		{time.September, 7}, // Independência
		{time.October, 12},  // Nossa Senhora Aparecida
		{time.November, 2},  // Finados
		{time.November, 15}, // Proclamação da República
		{time.November, 20}, // Consciência Negra
		{time.December, 25}, // Natal
	})
}

// NoHolidays is a calendar with no holidays at all.
type NoHolidays struct{}

func (NoHolidays) IsHoliday(time.Time) bool { return false }

// =============================================================================
// REMOTE CALENDAR
// =============================================================================

// DefaultHolidayTimeout bounds the remote lookup. A transient provider
// failure must not stall an accounting batch.
const DefaultHolidayTimeout = 5 * time.Second

// RemoteCalendar looks holidays up from an HTTP provider exposing
// GET {base}/{year} with a JSON array of {"date": "YYYY-MM-DD", ...}
// entries (the BrasilAPI feriados shape). Responses are cached per year.
type RemoteCalendar struct {
	BaseURL string
	Client  *http.Client

	mu    sync.RWMutex
	years map[int]map[monthDay]struct{}
}

// NewRemoteCalendar creates a remote calendar with the default timeout.
func NewRemoteCalendar(baseURL string) *RemoteCalendar {
	return &RemoteCalendar{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: DefaultHolidayTimeout},
		years:   make(map[int]map[monthDay]struct{}),
	}
}

// IsHoliday queries (or serves from cache) the provider for the date's
// year. Lookup failures silently resolve to false; surfacing them is the
// adapter's concern, not the engine's.
func (c *RemoteCalendar) IsHoliday(date time.Time) bool {
	set, err := c.yearSet(date.Year())
	if err != nil {
		return false
	}
	_, ok := set[monthDay{Month: date.Month(), Day: date.Day()}]
	return ok
}

func (c *RemoteCalendar) yearSet(year int) (map[monthDay]struct{}, error) {
	c.mu.RLock()
	set, ok := c.years[year]
	c.mu.RUnlock()
	if ok {
		return set, nil
	}

	set, err := c.fetch(year)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.years[year] = set
	c.mu.Unlock()
	return set, nil
}

func (c *RemoteCalendar) fetch(year int) (map[monthDay]struct{}, error) {
	resp, err := c.Client.Get(fmt.Sprintf("%s/%d", c.BaseURL, year))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("holiday provider returned %d", resp.StatusCode)
	}

	var entries []struct {
		Date string `json:"date"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, err
	}

	set := make(map[monthDay]struct{}, len(entries))
	for _, e := range entries {
		d, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			continue
		}
		set[monthDay{Month: d.Month(), Day: d.Day()}] = struct{}{}
	}
	return set, nil
}
