package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"metrics-consolidation-backend/config"
	"metrics-consolidation-backend/internal/service"
)

// NewScheduler runs the ingestion cycle on the configured cron schedule.
// An empty schedule disables periodic ingestion; the GET / endpoint remains
// the manual trigger either way.
func NewScheduler(lc fx.Lifecycle, cfg *config.Config, ingestService service.MetricIngestService) *cron.Cron {
	schedule := cfg.Ingest.Schedule
	if schedule == "" {
		log.Info().Msg("No ingest schedule configured, periodic ingestion disabled")
		return nil
	}

	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.DowOptional | cron.Descriptor)
	c := cron.New(cron.WithParser(parser))

	_, err := c.AddFunc(schedule, func() {
		if _, err := ingestService.IngestOnce(context.Background()); err != nil {
			log.Error().Err(err).Msg("Error during scheduled metric ingestion")
		}
	})
	if err != nil {
		log.Fatal().Err(err).Str("schedule", schedule).Msg("Failed to add cron job")
		return nil
	}
	log.Info().Str("schedule", schedule).Msg("Scheduled periodic metric ingestion")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msg("Starting cron scheduler")
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Stopping cron scheduler...")
			stopCtx := c.Stop()
			select {
			case <-stopCtx.Done():
				log.Info().Msg("Cron scheduler stopped gracefully.")
				return nil
			case <-ctx.Done():
				log.Error().Msg("Context cancelled while waiting for cron scheduler to stop.")
				return ctx.Err()
			}
		},
	})

	return c
}
