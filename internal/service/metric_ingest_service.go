package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"metrics-consolidation-backend/internal/apperr"
	"metrics-consolidation-backend/internal/kafka"
	"metrics-consolidation-backend/internal/model"
	"metrics-consolidation-backend/internal/remote"
	"metrics-consolidation-backend/internal/repository"
	"metrics-consolidation-backend/internal/util"
)

// MetricIngestService runs one fetch-stamp-insert cycle against the upstream
// monitoring API. Cycles are not deduplicated: calling twice stores two
// batches, distinguishable by their createdAt stamps.
type MetricIngestService interface {
	IngestOnce(ctx context.Context) ([]model.MetricRecord, error)
}

type metricIngestService struct {
	fetcher    remote.MetricsFetcher
	metricRepo repository.MetricRepository
	producer   kafka.MetricProducer
	now        func() time.Time
}

func NewMetricIngestService(
	fetcher remote.MetricsFetcher,
	metricRepo repository.MetricRepository,
	producer kafka.MetricProducer,
) MetricIngestService {
	return &metricIngestService{
		fetcher:    fetcher,
		metricRepo: metricRepo,
		producer:   producer,
		now:        util.NowJakarta,
	}
}

func (s *metricIngestService) IngestOnce(ctx context.Context) ([]model.MetricRecord, error) {
	records, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrIngestionFailed, err)
	}

	// createdAt is assigned here and only here; a caller-supplied value is
	// overwritten.
	stamp := s.now().Format(time.RFC3339)
	for i := range records {
		records[i][model.FieldCreatedAt] = stamp
	}

	if err := s.metricRepo.Insert(ctx, records); err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrIngestionFailed, err)
	}
	log.Info().Int("count", len(records)).Str("created_at", stamp).Msg("Ingested metric batch")

	if s.producer != nil {
		if err := s.producer.Produce(ctx, records); err != nil {
			// Publishing is a tap on the ingest flow; the batch is already
			// persisted, so the cycle still succeeds.
			log.Warn().Err(err).Msg("Failed to publish ingested batch to Kafka")
		}
	}

	return records, nil
}
