package calendar

import "fmt"

// TimeOfDay is a validated wall-clock time with minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// NewTimeOfDay validates hour and minute ranges and returns the TimeOfDay.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("hour %d out of range [0, 23]", hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("minute %d out of range [0, 59]", minute)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// mustTimeOfDay is for the compiled-in session constants.
func mustTimeOfDay(hour, minute int) TimeOfDay {
	tod, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return tod
}

// String renders the wall-clock time as "HH:mm:ss", suitable for composing
// an ISO local date-time string.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:00", t.Hour, t.Minute)
}

// Scope selects which session window of a trading day applies. The extended
// window fully contains the regular one.
type Scope string

const (
	ScopeRegular  Scope = "regular"
	ScopeExtended Scope = "extended"
)

// ParseScope converts a string into a Scope, rejecting unknown values.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeRegular, ScopeExtended:
		return Scope(s), nil
	}
	return "", fmt.Errorf("unknown session scope %q", s)
}

// SessionHours holds the wall-clock boundaries of one session scope.
type SessionHours struct {
	Open       TimeOfDay
	Close      TimeOfDay
	EarlyClose TimeOfDay
}

// SessionConfig holds the per-market session hours for both scopes. Values
// are constants fixed at calendar-registration time.
type SessionConfig struct {
	Regular  SessionHours
	Extended SessionHours
}

// forScope picks the hours record for the given scope.
func (c SessionConfig) forScope(scope Scope) (SessionHours, bool) {
	switch scope {
	case ScopeRegular:
		return c.Regular, true
	case ScopeExtended:
		return c.Extended, true
	}
	return SessionHours{}, false
}
