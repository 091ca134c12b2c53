package engine_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/esc4n0rx/pontoflex/engine"
)

func TestStaticCalendar_CoveredYearOnly(t *testing.T) {
	cal := engine.Brazil2025()

	christmas2025 := time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC)
	if !cal.IsHoliday(christmas2025) {
		t.Error("2025-12-25 should be a holiday")
	}

	// Same month/day, different year: NOT a holiday. The calendar stays
	// total over time instead of failing outside its coverage.
	christmas2024 := time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC)
	if cal.IsHoliday(christmas2024) {
		t.Error("2024-12-25 is outside the 2025 table")
	}

	ordinary := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	if cal.IsHoliday(ordinary) {
		t.Error("2025-06-10 should not be a holiday")
	}
}

func TestRemoteCalendar_LooksUpProvider(t *testing.T) {
	// GIVEN: a provider answering the BrasilAPI feriados shape
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2025" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`[{"date":"2025-04-21","name":"Tiradentes"},{"date":"2025-05-01","name":"Dia do Trabalho"}]`))
	}))
	defer srv.Close()

	cal := engine.NewRemoteCalendar(srv.URL)
	tiradentes := time.Date(2025, time.April, 21, 0, 0, 0, 0, time.UTC)
	if !cal.IsHoliday(tiradentes) {
		t.Error("2025-04-21 should be a holiday per the provider")
	}
	ordinary := time.Date(2025, time.April, 22, 0, 0, 0, 0, time.UTC)
	if cal.IsHoliday(ordinary) {
		t.Error("2025-04-22 should not be a holiday")
	}
}

func TestRemoteCalendar_DegradesToNotHolidayOnFailure(t *testing.T) {
	// GIVEN: a provider that always errors
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	// THEN: lookups silently resolve to false - an accounting batch must
	// never abort because the holiday service is down.
	cal := engine.NewRemoteCalendar(srv.URL)
	date := time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC)
	if cal.IsHoliday(date) {
		t.Error("failed lookup should degrade to 'not a holiday'")
	}
}

func TestRemoteCalendar_DegradesOnUnreachableProvider(t *testing.T) {
	cal := engine.NewRemoteCalendar("http://127.0.0.1:1")
	cal.Client.Timeout = 200 * time.Millisecond

	date := time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC)
	if cal.IsHoliday(date) {
		t.Error("unreachable provider should degrade to 'not a holiday'")
	}
}
