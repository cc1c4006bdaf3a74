package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vtsukur/trading-date-time/internal/calendar"
	"github.com/vtsukur/trading-date-time/internal/config"
	"github.com/vtsukur/trading-date-time/internal/httpapi"
	"github.com/vtsukur/trading-date-time/internal/util"
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

	registry, err := calendar.NewRegistry(map[calendar.Market]calendar.MarketConfig{
		calendar.MarketUSEquities: calendar.USEquities(),
	})
	if err != nil {
		logger.Error("building calendar registry", "error", err)
		os.Exit(1)
	}

	srv := httpapi.NewServer(registry, logger, util.NewRateLimiter(cfg.API.RateLimitPerMin))
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("calendar-server listening", "addr", addr, "markets", registry.Markets())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
