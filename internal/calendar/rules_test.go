package calendar

import (
	"testing"
	"time"
)

func testRules(t *testing.T) *TableRules {
	t.Helper()
	closed, err := NewCalendarData(DayTable{
		2024: {time.January: {15}, time.December: {25}},
	})
	if err != nil {
		t.Fatalf("building closed table: %v", err)
	}
	early, err := NewCalendarData(DayTable{
		2024: {time.November: {29}, time.December: {24}},
	})
	if err != nil {
		t.Fatalf("building early-close table: %v", err)
	}
	return NewTableRules(closed, early)
}

func utcDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestTableRulesIsTradingDay(t *testing.T) {
	rules := testRules(t)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"ordinary tuesday", utcDate(2024, time.January, 16), true},
		{"saturday", utcDate(2024, time.January, 13), false},
		{"sunday", utcDate(2024, time.January, 14), false},
		{"holiday monday", utcDate(2024, time.January, 15), false},
		{"holiday midweek", utcDate(2024, time.December, 25), false},
		{"early-close day is still a trading day", utcDate(2024, time.November, 29), true},
		{"zero time", time.Time{}, false},
	}
	for _, tt := range tests {
		if got := rules.IsTradingDay(tt.date); got != tt.want {
			t.Errorf("IsTradingDay(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTableRulesIsEarlyCloseDay(t *testing.T) {
	rules := testRules(t)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"black friday", utcDate(2024, time.November, 29), true},
		{"christmas eve", utcDate(2024, time.December, 24), true},
		{"ordinary day", utcDate(2024, time.January, 16), false},
		{"full holiday", utcDate(2024, time.December, 25), false},
		{"zero time", time.Time{}, false},
	}
	for _, tt := range tests {
		if got := rules.IsEarlyCloseDay(tt.date); got != tt.want {
			t.Errorf("IsEarlyCloseDay(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// The early-close lookup is a pure table membership test: it does not also
// require the date to be a trading day.
func TestIsEarlyCloseDayIgnoresWeekday(t *testing.T) {
	early, err := NewCalendarData(DayTable{
		2024: {time.January: {13}}, // a Saturday
	})
	if err != nil {
		t.Fatal(err)
	}
	closed, err := NewCalendarData(DayTable{})
	if err != nil {
		t.Fatal(err)
	}
	rules := NewTableRules(closed, early)

	saturday := utcDate(2024, time.January, 13)
	if !rules.IsEarlyCloseDay(saturday) {
		t.Error("IsEarlyCloseDay(saturday in table) = false, want true")
	}
	if rules.IsTradingDay(saturday) {
		t.Error("IsTradingDay(saturday) = true, want false")
	}
}

func TestIsoWeekday(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{utcDate(2024, time.January, 15), 1}, // Monday
		{utcDate(2024, time.January, 19), 5}, // Friday
		{utcDate(2024, time.January, 13), 6}, // Saturday
		{utcDate(2024, time.January, 14), 7}, // Sunday
	}
	for _, tt := range tests {
		if got := isoWeekday(tt.date); got != tt.want {
			t.Errorf("isoWeekday(%s) = %d, want %d", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}
