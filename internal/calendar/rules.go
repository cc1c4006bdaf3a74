package calendar

import "time"

// DayRules classifies calendar dates for one market. Additional markets plug
// in their own holiday tables or weekend conventions by providing another
// implementation; Calendar never inspects the tables directly.
type DayRules interface {
	// IsTradingDay reports whether the market is open for at least part of
	// its regular session on the date of t.
	IsTradingDay(t time.Time) bool
	// IsEarlyCloseDay reports whether sessions end early on the date of t.
	// It does not imply IsTradingDay; the dataset guarantees every
	// early-close day is also a trading day.
	IsEarlyCloseDay(t time.Time) bool
}

// TableRules implements DayRules for markets with a Monday-Friday trading
// week and table-driven holidays.
type TableRules struct {
	closed     *CalendarData
	earlyClose *CalendarData
}

// NewTableRules creates TableRules over the given closed-day and
// early-close-day tables.
func NewTableRules(closed, earlyClose *CalendarData) *TableRules {
	return &TableRules{
		closed:     closed,
		earlyClose: earlyClose,
	}
}

// isoWeekday returns the ISO weekday number, Monday=1 through Sunday=7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// IsTradingDay reports whether t falls on a weekday not present in the
// closed-day table. The zero time classifies as false.
func (r *TableRules) IsTradingDay(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	// Weekend first: cheaper than the table lookup.
	if isoWeekday(t) >= 6 {
		return false
	}
	return !r.closed.Contains(t.Year(), t.Month(), t.Day())
}

// IsEarlyCloseDay reports whether t is present in the early-close table.
func (r *TableRules) IsEarlyCloseDay(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	return r.earlyClose.Contains(t.Year(), t.Month(), t.Day())
}
