// Package verify cross-checks the static trading-day tables against the
// Alpaca trading-calendar API. The tables are literal source data; this is
// the tool that keeps them honest as new exchange years are published.
package verify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"

	"github.com/vtsukur/trading-date-time/internal/calendar"
	"github.com/vtsukur/trading-date-time/internal/util"
)

// CalendarAPI is the slice of the Alpaca client used by the verifier.
type CalendarAPI interface {
	GetCalendar(req alpaca.GetCalendarRequest) ([]alpaca.CalendarDay, error)
}

// Mismatch records one disagreement between the local calendar and Alpaca.
type Mismatch struct {
	Date   string
	Reason string
}

// Verifier compares a local Calendar against the Alpaca trading calendar.
type Verifier struct {
	cal         *calendar.Calendar
	api         CalendarAPI
	log         *slog.Logger
	maxAttempts int
	retryDelay  time.Duration
}

// New creates a Verifier. maxAttempts bounds retries of the calendar fetch.
func New(cal *calendar.Calendar, api CalendarAPI, log *slog.Logger, maxAttempts int) *Verifier {
	return &Verifier{
		cal:         cal,
		api:         api,
		log:         log,
		maxAttempts: maxAttempts,
		retryDelay:  time.Second,
	}
}

// Run fetches the remote calendar for [start, end] and walks every day in
// the range, reporting trading-day and close-time disagreements. An empty
// result means the local tables agree with the exchange data.
func (v *Verifier) Run(ctx context.Context, start, end time.Time) ([]Mismatch, error) {
	var days []alpaca.CalendarDay
	err := util.Retry(ctx, v.maxAttempts, v.retryDelay, func() error {
		var err error
		days, err = v.api.GetCalendar(alpaca.GetCalendarRequest{Start: start, End: end})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("GetCalendar: %w", err)
	}
	v.log.Info("fetched remote calendar", "days", len(days),
		"start", start.Format("2006-01-02"), "end", end.Format("2006-01-02"))

	remote := make(map[string]alpaca.CalendarDay, len(days))
	for _, d := range days {
		remote[d.Date] = d
	}

	var mismatches []Mismatch
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		iso := d.Format("2006-01-02")
		date, err := v.cal.Date(iso)
		if err != nil {
			return nil, err
		}

		day, remoteOpen := remote[iso]
		localOpen := v.cal.IsTradingDay(date)

		switch {
		case localOpen && !remoteOpen:
			mismatches = append(mismatches, Mismatch{Date: iso, Reason: "local calendar open, exchange closed"})
		case !localOpen && remoteOpen:
			mismatches = append(mismatches, Mismatch{Date: iso, Reason: "exchange open, local calendar closed"})
		case localOpen && remoteOpen:
			if m := v.checkClose(date, day); m != "" {
				mismatches = append(mismatches, Mismatch{Date: iso, Reason: m})
			}
		}
	}
	return mismatches, nil
}

// checkClose compares the regular-session close, which is where early-close
// mistakes in the tables show up.
func (v *Verifier) checkClose(date time.Time, day alpaca.CalendarDay) string {
	iv, err := v.cal.TradingHours(date, calendar.ScopeRegular)
	if err != nil || iv == nil {
		return ""
	}
	localClose := iv.End.Format("15:04")
	if day.Close != "" && day.Close != localClose {
		return fmt.Sprintf("regular close %s, exchange closes %s", localClose, day.Close)
	}
	return ""
}
