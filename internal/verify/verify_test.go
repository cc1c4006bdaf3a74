package verify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"

	"github.com/vtsukur/trading-date-time/internal/calendar"
)

type fakeCalendarAPI struct {
	days     []alpaca.CalendarDay
	failures int
	calls    int
}

func (f *fakeCalendarAPI) GetCalendar(_ alpaca.GetCalendarRequest) ([]alpaca.CalendarDay, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("transient API error")
	}
	return f.days, nil
}

func usCal(t *testing.T) *calendar.Calendar {
	t.Helper()
	cal, err := calendar.NewCalendar(calendar.USEquities())
	if err != nil {
		t.Fatal(err)
	}
	return cal
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func day(date, openAt, closeAt string) alpaca.CalendarDay {
	return alpaca.CalendarDay{Date: date, Open: openAt, Close: closeAt}
}

func utc(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// The week of MLK Day 2024: Alpaca lists Tue-Fri, our tables agree.
func TestRunAgreement(t *testing.T) {
	api := &fakeCalendarAPI{days: []alpaca.CalendarDay{
		day("2024-01-16", "09:30", "16:00"),
		day("2024-01-17", "09:30", "16:00"),
		day("2024-01-18", "09:30", "16:00"),
		day("2024-01-19", "09:30", "16:00"),
	}}
	v := New(usCal(t), api, discardLogger(), 1)

	mismatches, err := v.Run(context.Background(), utc(2024, time.January, 13), utc(2024, time.January, 19))
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if len(mismatches) != 0 {
		t.Errorf("Run() = %v, want no mismatches", mismatches)
	}
}

func TestRunDetectsTradingDayDisagreements(t *testing.T) {
	// Remote omits the 16th and adds the MLK holiday: both directions must
	// be reported.
	api := &fakeCalendarAPI{days: []alpaca.CalendarDay{
		day("2024-01-15", "09:30", "16:00"),
	}}
	v := New(usCal(t), api, discardLogger(), 1)

	mismatches, err := v.Run(context.Background(), utc(2024, time.January, 15), utc(2024, time.January, 16))
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if len(mismatches) != 2 {
		t.Fatalf("Run() = %v, want 2 mismatches", mismatches)
	}
	if mismatches[0].Date != "2024-01-15" || mismatches[1].Date != "2024-01-16" {
		t.Errorf("mismatch dates = %s, %s", mismatches[0].Date, mismatches[1].Date)
	}
}

func TestRunDetectsCloseTimeDisagreement(t *testing.T) {
	// Black Friday 2024: our tables say 13:00 close; a remote full-day close
	// must be flagged.
	api := &fakeCalendarAPI{days: []alpaca.CalendarDay{
		day("2024-11-29", "09:30", "16:00"),
	}}
	v := New(usCal(t), api, discardLogger(), 1)

	mismatches, err := v.Run(context.Background(), utc(2024, time.November, 29), utc(2024, time.November, 29))
	if err != nil {
		t.Fatalf("Run() returned error: %v", err)
	}
	if len(mismatches) != 1 {
		t.Fatalf("Run() = %v, want 1 mismatch", mismatches)
	}
	if mismatches[0].Date != "2024-11-29" {
		t.Errorf("mismatch date = %s, want 2024-11-29", mismatches[0].Date)
	}
}

func TestRunRetriesFetch(t *testing.T) {
	api := &fakeCalendarAPI{
		failures: 2,
		days:     []alpaca.CalendarDay{day("2024-01-16", "09:30", "16:00")},
	}
	v := New(usCal(t), api, discardLogger(), 3)
	v.retryDelay = 0

	if _, err := v.Run(context.Background(), utc(2024, time.January, 16), utc(2024, time.January, 16)); err != nil {
		t.Fatalf("Run() returned error after retries: %v", err)
	}
	if api.calls != 3 {
		t.Errorf("GetCalendar called %d times, want 3", api.calls)
	}
}

func TestRunFetchFailure(t *testing.T) {
	api := &fakeCalendarAPI{failures: 10}
	v := New(usCal(t), api, discardLogger(), 2)
	v.retryDelay = 0

	if _, err := v.Run(context.Background(), utc(2024, time.January, 16), utc(2024, time.January, 16)); err == nil {
		t.Error("Run() succeeded, want fetch error after exhausted retries")
	}
	if api.calls != 2 {
		t.Errorf("GetCalendar called %d times, want 2", api.calls)
	}
}
