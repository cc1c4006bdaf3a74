package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/vtsukur/trading-date-time/internal/calendar"
	"github.com/vtsukur/trading-date-time/internal/util"
)

// Server serves calendar queries for every registered market.
type Server struct {
	registry *calendar.Registry
	log      *slog.Logger
	limiter  *util.RateLimiter
}

// NewServer creates a Server over the given registry. limiter may be nil to
// disable rate limiting.
func NewServer(registry *calendar.Registry, log *slog.Logger, limiter *util.RateLimiter) *Server {
	return &Server{
		registry: registry,
		log:      log,
		limiter:  limiter,
	}
}

// RegisterRoutes registers all API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/markets", s.handleMarkets)
	mux.HandleFunc("GET /api/v1/{market}/day", s.handleDay)
	mux.HandleFunc("GET /api/v1/{market}/next", s.handleNext)
	mux.HandleFunc("GET /api/v1/{market}/prev", s.handlePrev)
	mux.HandleFunc("GET /api/v1/{market}/hours", s.handleHours)
}

// Handler returns the fully assembled http.Handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)
	return s.rateLimitMiddleware(corsMiddleware(mux))
}

func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	if s.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// resolve extracts the market from the path and the date from the query,
// writing the appropriate error response when either is bad.
func (s *Server) resolve(w http.ResponseWriter, r *http.Request) (*calendar.Calendar, time.Time, bool) {
	market := calendar.Market(r.PathValue("market"))
	cal, err := s.registry.Get(market)
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown market %q", market))
		return nil, time.Time{}, false
	}

	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		writeError(w, http.StatusBadRequest, "date required")
		return nil, time.Time{}, false
	}
	date, err := cal.Date(dateParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("bad date %q", dateParam))
		return nil, time.Time{}, false
	}
	return cal, date, true
}

func (s *Server) handleMarkets(w http.ResponseWriter, _ *http.Request) {
	markets := s.registry.Markets()
	out := make([]string, len(markets))
	for i, m := range markets {
		out[i] = string(m)
	}
	writeJSON(w, MarketsResponse{Markets: out})
}

func (s *Server) handleDay(w http.ResponseWriter, r *http.Request) {
	cal, date, ok := s.resolve(w, r)
	if !ok {
		return
	}
	writeJSON(w, DayResponse{
		Market:     r.PathValue("market"),
		Date:       date.Format("2006-01-02"),
		TradingDay: cal.IsTradingDay(date),
		EarlyClose: cal.IsEarlyCloseDay(date),
	})
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	s.handleNavigation(w, r, (*calendar.Calendar).NextTradingDay)
}

func (s *Server) handlePrev(w http.ResponseWriter, r *http.Request) {
	s.handleNavigation(w, r, (*calendar.Calendar).PrevTradingDay)
}

func (s *Server) handleNavigation(w http.ResponseWriter, r *http.Request, step func(*calendar.Calendar, time.Time) (time.Time, error)) {
	cal, date, ok := s.resolve(w, r)
	if !ok {
		return
	}
	day, err := step(cal, date)
	if err != nil {
		if errors.Is(err, calendar.ErrNoTradingDay) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.log.Error("trading-day navigation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "navigation failed")
		return
	}
	writeJSON(w, NavigationResponse{
		Market: r.PathValue("market"),
		From:   date.Format("2006-01-02"),
		Date:   day.Format("2006-01-02"),
	})
}

func (s *Server) handleHours(w http.ResponseWriter, r *http.Request) {
	cal, date, ok := s.resolve(w, r)
	if !ok {
		return
	}

	scopeParam := r.URL.Query().Get("scope")
	if scopeParam == "" {
		scopeParam = string(calendar.ScopeRegular)
	}
	scope, err := calendar.ParseScope(scopeParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	iv, err := cal.TradingHours(date, scope)
	if err != nil {
		s.log.Error("computing trading hours", "error", err)
		writeError(w, http.StatusInternalServerError, "computing trading hours failed")
		return
	}

	resp := HoursResponse{
		Market: r.PathValue("market"),
		Date:   date.Format("2006-01-02"),
		Scope:  string(scope),
	}
	if iv != nil {
		resp.Trading = true
		resp.Open = iv.Start.Format(time.RFC3339)
		resp.Close = iv.End.Format(time.RFC3339)
		resp.EarlyClose = cal.IsEarlyCloseDay(date)
	}
	writeJSON(w, resp)
}
