// Package calendar implements timezone-aware trading-day semantics for
// financial-market timestamps: day classification (trading day, early close),
// session open/close intervals, and bounded next/previous trading-day
// navigation. All state is immutable after construction, so calendars are
// safe for arbitrary concurrent readers.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// navigationLimit bounds trading-day searches so a misconfigured dataset
// fails loudly instead of looping forever. It exceeds the longest plausible
// holiday cluster by a wide margin.
const navigationLimit = 30

// ErrNoTradingDay is returned when trading-day navigation exhausts its
// search bound without finding a trading day.
var ErrNoTradingDay = errors.New("no trading day found")

const (
	isoDateLayout     = "2006-01-02"
	isoDateTimeLayout = "2006-01-02T15:04:05"
)

// instantFactory builds instants from ISO local date-time strings in one
// fixed zone.
type instantFactory struct {
	zone *time.Location
}

// fromLocal parses "YYYY-MM-DDTHH:mm:ss" in the factory's zone, returning
// the zero (invalid) time when the string does not denote a real date-time.
func (f instantFactory) fromLocal(s string) time.Time {
	t, err := time.ParseInLocation(isoDateTimeLayout, s, f.zone)
	if err != nil {
		return time.Time{}
	}
	return t
}

// at materializes the wall-clock time tod on the same calendar date as t.
func (f instantFactory) at(t time.Time, tod TimeOfDay) time.Time {
	return f.fromLocal(fmt.Sprintf("%04d-%02d-%02dT%s", t.Year(), int(t.Month()), t.Day(), tod))
}

// MarketConfig describes everything needed to build one market's Calendar.
type MarketConfig struct {
	// Zone is the IANA timezone name the market trades in.
	Zone string
	// Rules classifies dates for the market.
	Rules DayRules
	// Sessions holds the market's session hours for both scopes.
	Sessions SessionConfig
}

// Calendar answers trading-day queries for a single market. It combines day
// classification rules, session-hours configuration, and an instant factory
// bound to the market's timezone. One instance per market, created once and
// never mutated.
type Calendar struct {
	zone     *time.Location
	rules    DayRules
	sessions SessionConfig
	factory  instantFactory
}

// NewCalendar builds a Calendar from cfg, loading the market timezone.
func NewCalendar(cfg MarketConfig) (*Calendar, error) {
	if cfg.Rules == nil {
		return nil, errors.New("day rules are required")
	}
	loc, err := time.LoadLocation(cfg.Zone)
	if err != nil {
		return nil, fmt.Errorf("loading zone %q: %w", cfg.Zone, err)
	}
	return &Calendar{
		zone:     loc,
		rules:    cfg.Rules,
		sessions: cfg.Sessions,
		factory:  instantFactory{zone: loc},
	}, nil
}

// Zone returns the market timezone.
func (c *Calendar) Zone() *time.Location {
	return c.zone
}

// Date parses an ISO date string ("YYYY-MM-DD") into a zone-local midnight
// instant.
func (c *Calendar) Date(s string) (time.Time, error) {
	t, err := time.ParseInLocation(isoDateLayout, s, c.zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return t, nil
}

// IsTradingDay reports whether the market is open on the date of t.
func (c *Calendar) IsTradingDay(t time.Time) bool {
	return c.rules.IsTradingDay(t)
}

// IsEarlyCloseDay reports whether sessions end early on the date of t.
func (c *Calendar) IsEarlyCloseDay(t time.Time) bool {
	return c.rules.IsEarlyCloseDay(t)
}

// NextTradingDay returns the first trading day strictly after the date of t.
func (c *Calendar) NextTradingDay(t time.Time) (time.Time, error) {
	return c.stepTradingDay(t, 1)
}

// PrevTradingDay returns the first trading day strictly before the date of t.
func (c *Calendar) PrevTradingDay(t time.Time) (time.Time, error) {
	return c.stepTradingDay(t, -1)
}

// stepTradingDay walks one day at a time in the given direction until it
// finds a trading day, giving up after navigationLimit steps.
func (c *Calendar) stepTradingDay(t time.Time, direction int) (time.Time, error) {
	day := t
	for i := 0; i < navigationLimit; i++ {
		day = day.AddDate(0, 0, direction)
		if c.rules.IsTradingDay(day) {
			return day, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w within %d days of %s",
		ErrNoTradingDay, navigationLimit, t.Format(isoDateLayout))
}

// TradingHours returns the session interval for the given scope on the date
// of t, or nil when t is not a trading day. On early-close days the interval
// ends at the scope's early-close time. Sessions never cross midnight.
func (c *Calendar) TradingHours(t time.Time, scope Scope) (*Interval, error) {
	hours, ok := c.sessions.forScope(scope)
	if !ok {
		return nil, fmt.Errorf("unknown session scope %q", scope)
	}
	if !c.rules.IsTradingDay(t) {
		return nil, nil
	}
	end := hours.Close
	if c.rules.IsEarlyCloseDay(t) {
		end = hours.EarlyClose
	}
	return &Interval{
		Start: c.factory.at(t, hours.Open),
		End:   c.factory.at(t, end),
	}, nil
}
