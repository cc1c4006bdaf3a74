// Command us-verify-calendar compares the built-in US-equities tables with
// the Alpaca trading-calendar API and reports every disagreement. Run it
// when extending the dataset to a new exchange year.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/alpaca"

	"github.com/vtsukur/trading-date-time/internal/calendar"
	"github.com/vtsukur/trading-date-time/internal/config"
	"github.com/vtsukur/trading-date-time/internal/util"
	"github.com/vtsukur/trading-date-time/internal/verify"
)

func main() {
	cfgPath := "config/trading-date-time.yaml"
	if p := os.Getenv("TDT_CONFIG"); p != "" {
		cfgPath = p
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := util.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	util.SetDefault(logger)

	cal, err := calendar.NewCalendar(calendar.USEquities())
	if err != nil {
		log.Fatalf("building calendar: %v", err)
	}

	start, end, err := verifyRange(cfg, cal)
	if err != nil {
		log.Fatalf("resolving date range: %v", err)
	}

	client := alpaca.NewClient(alpaca.ClientOpts{
		APIKey:    cfg.Alpaca.APIKey,
		APISecret: cfg.Alpaca.APISecret,
		BaseURL:   cfg.Alpaca.BaseURL,
	})

	v := verify.New(cal, client, logger, cfg.Verify.MaxAttempts)
	mismatches, err := v.Run(context.Background(), start, end)
	if err != nil {
		log.Fatalf("verification failed: %v", err)
	}

	if len(mismatches) == 0 {
		fmt.Printf("calendar tables agree with the exchange for %s .. %s\n",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
		return
	}

	for _, m := range mismatches {
		fmt.Printf("%s: %s\n", m.Date, m.Reason)
	}
	os.Exit(1)
}

// verifyRange resolves the comparison window from config, defaulting to the
// trailing year ending today.
func verifyRange(cfg *config.Config, cal *calendar.Calendar) (time.Time, time.Time, error) {
	end := time.Now().In(cal.Zone())
	if cfg.Verify.EndDate != "" {
		var err error
		if end, err = cal.Date(cfg.Verify.EndDate); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	start := end.AddDate(-1, 0, 0)
	if cfg.Verify.StartDate != "" {
		var err error
		if start, err = cal.Date(cfg.Verify.StartDate); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("start %s is after end %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return start, end, nil
}
