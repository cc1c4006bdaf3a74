package calendar

import (
	"fmt"
	"time"
)

// DayTable is the literal form of a CalendarData dataset: year -> month ->
// days of month. It exists so date tables can be written down compactly in
// source and validated once on load.
type DayTable map[int]map[time.Month][]int

// CalendarData is an immutable year/month/day membership table. It backs the
// closed-day and early-close-day lookups and is shared read-only across all
// queries after construction.
type CalendarData struct {
	years map[int]map[time.Month]map[int]struct{}
}

// NewCalendarData builds a CalendarData from a literal table. Every entry is
// validated by constructing the date and reading the components back, so a
// typo like February 30 fails here instead of silently rolling over to
// March 2 at query time.
func NewCalendarData(entries DayTable) (*CalendarData, error) {
	years := make(map[int]map[time.Month]map[int]struct{}, len(entries))
	for year, months := range entries {
		ym := make(map[time.Month]map[int]struct{}, len(months))
		for month, days := range months {
			md := make(map[int]struct{}, len(days))
			for _, day := range days {
				d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
				if d.Year() != year || d.Month() != month || d.Day() != day {
					return nil, fmt.Errorf("invalid calendar date %04d-%02d-%02d", year, int(month), day)
				}
				md[day] = struct{}{}
			}
			ym[month] = md
		}
		years[year] = ym
	}
	return &CalendarData{years: years}, nil
}

// mustCalendarData is for the literal datasets compiled into the binary; a
// malformed entry is a fatal configuration error.
func mustCalendarData(entries DayTable) *CalendarData {
	cd, err := NewCalendarData(entries)
	if err != nil {
		panic(err)
	}
	return cd
}

// Contains reports whether the given date is present in the table. Dates
// outside the loaded range simply return false.
func (cd *CalendarData) Contains(year int, month time.Month, day int) bool {
	months, ok := cd.years[year]
	if !ok {
		return false
	}
	days, ok := months[month]
	if !ok {
		return false
	}
	_, ok = days[day]
	return ok
}
