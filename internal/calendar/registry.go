package calendar

import (
	"errors"
	"fmt"
	"sort"
)

// Market identifies a registered market.
type Market string

// MarketUSEquities is the US equities market (NYSE/Nasdaq conventions).
const MarketUSEquities Market = "us"

// ErrUnknownMarket is returned when looking up a market that was never
// registered.
var ErrUnknownMarket = errors.New("unknown market")

// Registry holds one immutable Calendar per registered market. Registries
// are built explicitly and passed to whoever needs them; there are no
// package-level calendar singletons.
type Registry struct {
	calendars map[Market]*Calendar
}

// NewRegistry builds a Calendar for every market configuration. Any broken
// configuration fails the whole registry.
func NewRegistry(configs map[Market]MarketConfig) (*Registry, error) {
	calendars := make(map[Market]*Calendar, len(configs))
	for market, cfg := range configs {
		cal, err := NewCalendar(cfg)
		if err != nil {
			return nil, fmt.Errorf("market %s: %w", market, err)
		}
		calendars[market] = cal
	}
	return &Registry{calendars: calendars}, nil
}

// Get returns the Calendar registered for market.
func (r *Registry) Get(market Market) (*Calendar, error) {
	cal, ok := r.calendars[market]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMarket, market)
	}
	return cal, nil
}

// Markets returns the registered market codes in sorted order.
func (r *Registry) Markets() []Market {
	markets := make([]Market, 0, len(r.calendars))
	for m := range r.calendars {
		markets = append(markets, m)
	}
	sort.Slice(markets, func(i, j int) bool { return markets[i] < markets[j] })
	return markets
}
