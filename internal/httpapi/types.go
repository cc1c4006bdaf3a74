// Package httpapi provides a JSON HTTP API over the registered market
// calendars: day classification, trading-day navigation, and session hours.
package httpapi

// MarketsResponse lists the registered market codes.
type MarketsResponse struct {
	Markets []string `json:"markets"`
}

// DayResponse is the classification result for one calendar date.
type DayResponse struct {
	Market     string `json:"market"`
	Date       string `json:"date"`
	TradingDay bool   `json:"tradingDay"`
	EarlyClose bool   `json:"earlyClose"`
}

// NavigationResponse holds the result of a next/prev trading-day query.
type NavigationResponse struct {
	Market string `json:"market"`
	From   string `json:"from"`
	Date   string `json:"date"`
}

// HoursResponse describes the session window for one date and scope. Open
// and Close are RFC3339 instants in the market timezone; they are empty when
// Trading is false (no session exists on that date).
type HoursResponse struct {
	Market  string `json:"market"`
	Date    string `json:"date"`
	Scope   string `json:"scope"`
	Trading bool   `json:"trading"`
	Open    string `json:"open,omitempty"`
	Close   string `json:"close,omitempty"`
	// EarlyClose reports whether the window ends at the early-close time.
	EarlyClose bool `json:"earlyClose,omitempty"`
}
