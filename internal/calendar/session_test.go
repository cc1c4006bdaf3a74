package calendar

import "testing"

func TestNewTimeOfDay(t *testing.T) {
	tod, err := NewTimeOfDay(9, 30)
	if err != nil {
		t.Fatalf("NewTimeOfDay(9, 30) returned error: %v", err)
	}
	if tod.Hour != 9 || tod.Minute != 30 {
		t.Errorf("NewTimeOfDay(9, 30) = %+v, want {9 30}", tod)
	}

	invalid := []struct {
		hour, minute int
	}{
		{-1, 0}, {24, 0}, {0, -1}, {0, 60}, {25, 61},
	}
	for _, tt := range invalid {
		if _, err := NewTimeOfDay(tt.hour, tt.minute); err == nil {
			t.Errorf("NewTimeOfDay(%d, %d) succeeded, want range error", tt.hour, tt.minute)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	tests := []struct {
		hour, minute int
		want         string
	}{
		{9, 30, "09:30:00"},
		{16, 0, "16:00:00"},
		{4, 0, "04:00:00"},
		{13, 0, "13:00:00"},
		{0, 0, "00:00:00"},
		{23, 59, "23:59:00"},
	}
	for _, tt := range tests {
		if got := mustTimeOfDay(tt.hour, tt.minute).String(); got != tt.want {
			t.Errorf("TimeOfDay{%d, %d}.String() = %q, want %q", tt.hour, tt.minute, got, tt.want)
		}
	}
}

func TestParseScope(t *testing.T) {
	for _, s := range []string{"regular", "extended"} {
		scope, err := ParseScope(s)
		if err != nil {
			t.Errorf("ParseScope(%q) returned error: %v", s, err)
		}
		if string(scope) != s {
			t.Errorf("ParseScope(%q) = %q", s, scope)
		}
	}
	for _, s := range []string{"", "Regular", "premarket", "full"} {
		if _, err := ParseScope(s); err == nil {
			t.Errorf("ParseScope(%q) succeeded, want error", s)
		}
	}
}
