package calendar

import (
	"testing"
	"time"
)

func TestCalendarDataContains(t *testing.T) {
	cd, err := NewCalendarData(DayTable{
		2024: {time.January: {15}, time.December: {25}},
		2025: {time.January: {1, 9, 20}},
	})
	if err != nil {
		t.Fatalf("NewCalendarData() returned error: %v", err)
	}

	tests := []struct {
		year  int
		month time.Month
		day   int
		want  bool
	}{
		{2024, time.January, 15, true},
		{2024, time.December, 25, true},
		{2025, time.January, 9, true},
		{2024, time.January, 16, false},
		{2024, time.February, 15, false},
		// Outside the loaded range: false, never an error.
		{1999, time.January, 1, false},
		{2030, time.July, 4, false},
		{2024, time.January, 0, false},
		{2024, time.January, 32, false},
	}
	for _, tt := range tests {
		if got := cd.Contains(tt.year, tt.month, tt.day); got != tt.want {
			t.Errorf("Contains(%d, %v, %d) = %v, want %v", tt.year, tt.month, tt.day, got, tt.want)
		}
	}
}

func TestCalendarDataRejectsInvalidDates(t *testing.T) {
	tests := []struct {
		name  string
		table DayTable
	}{
		{"february 30", DayTable{2024: {time.February: {30}}}},
		{"april 31", DayTable{2023: {time.April: {31}}}},
		{"february 29 in non-leap year", DayTable{2023: {time.February: {29}}}},
		{"day zero", DayTable{2024: {time.March: {0}}}},
		{"negative day", DayTable{2024: {time.March: {-1}}}},
	}
	for _, tt := range tests {
		if _, err := NewCalendarData(tt.table); err == nil {
			t.Errorf("NewCalendarData(%s) succeeded, want rollover/validation error", tt.name)
		}
	}
}

func TestCalendarDataAcceptsLeapDay(t *testing.T) {
	if _, err := NewCalendarData(DayTable{2024: {time.February: {29}}}); err != nil {
		t.Errorf("NewCalendarData(2024-02-29) returned error: %v", err)
	}
}
