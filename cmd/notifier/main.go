package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/survey-manager/survey-backend/config"
	"github.com/survey-manager/survey-backend/internal/bootstrap"
	"github.com/survey-manager/survey-backend/internal/logger"
	"github.com/survey-manager/survey-backend/internal/surveys/repository"
)

// notifier follows the survey event stream and logs every committed change.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := bootstrap.OpenCache(ctx, &cfg.Cache)
	if err != nil {
		log.Fatal("cache unavailable", "error", err)
	}
	defer rdb.Close()

	bus := repository.NewRedisEventBus(rdb)
	log.Info("notifier started")

	err = bus.Subscribe(ctx, func(env repository.EventEnvelope) {
		log.Info("survey event",
			"type", env.Type,
			"survey_id", env.SurveyID,
			"payload_bytes", len(env.Payload),
		)
	}, func(err error) {
		log.Warn("skipping event", "error", err)
	})
	if err != nil {
		log.Error("subscription ended", "error", err)
		return
	}
	log.Info("notifier stopped")
}
