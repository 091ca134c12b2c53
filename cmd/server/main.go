/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the PontoFlex accounting server: configuration,
  dependency wiring and graceful shutdown.

STARTUP SEQUENCE:
  1. Load .env (if present), then read environment with defaults
  2. Open the SQLite store
  3. Build the accountant (static table or remote holiday provider)
  4. Configure the chi router and the nightly recalculate job
  5. Serve with graceful shutdown on SIGINT/SIGTERM

ENVIRONMENT:
  PORT                 HTTP port (default 8080)
  DATABASE_PATH        SQLite path (default pontoflex.db, ":memory:" ok)
  HOLIDAY_API_URL      feriados provider base URL; empty = bundled table
  RECALC_CRON          cron spec for the nightly recompute (default 0 3 * * *)

SEE ALSO:
  - api/server.go: Router configuration
  - store/sqlite: Database implementation
*/
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/esc4n0rx/pontoflex/api"
	"github.com/esc4n0rx/pontoflex/engine"
	"github.com/esc4n0rx/pontoflex/store/sqlite"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	// Missing .env is fine; environment may be set by the platform.
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded")
	}

	port := getEnv("PORT", "8080")
	dbPath := getEnv("DATABASE_PATH", "pontoflex.db")
	holidayURL := getEnv("HOLIDAY_API_URL", "")
	recalcSpec := getEnv("RECALC_CRON", "0 3 * * *")

	st, err := sqlite.New(dbPath)
	if err != nil {
		logger.WithError(err).Fatal("failed to open store")
	}
	defer st.Close()

	var calendar engine.HolidayCalendar = engine.Brazil2025()
	if holidayURL != "" {
		calendar = engine.NewRemoteCalendar(holidayURL)
		logger.WithField("url", holidayURL).Info("using remote holiday provider")
	}

	handler := api.NewHandler(st, engine.NewAccountant(calendar), logger)
	scheduler := api.NewRecalcScheduler(handler, recalcSpec)
	if err := scheduler.Start(); err != nil {
		logger.WithError(err).Fatal("failed to start scheduler")
	}
	defer scheduler.Stop()

	server := &http.Server{
		Addr:    ":" + port,
		Handler: api.NewRouter(handler),
	}

	go func() {
		logger.WithField("addr", server.Addr).Info("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("forced shutdown")
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}
