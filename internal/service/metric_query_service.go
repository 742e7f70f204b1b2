package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"metrics-consolidation-backend/internal/apperr"
	"metrics-consolidation-backend/internal/dto"
	"metrics-consolidation-backend/internal/model"
	"metrics-consolidation-backend/internal/repository"
	"metrics-consolidation-backend/internal/validation"
)

// MetricQueryService serves the read-only views over stored metrics.
type MetricQueryService interface {
	Find(ctx context.Context, filter dto.MetricFilterRequest) ([]model.MetricRecord, error)
	Aggregate(ctx context.Context, dimension model.Dimension, match string) ([]dto.MetricAggregateRow, error)
	FindByDateRange(ctx context.Context, dateRange validation.DateRange) ([]model.MetricRecord, error)
}

type metricQueryService struct {
	metricRepo repository.MetricRepository
}

func NewMetricQueryService(metricRepo repository.MetricRepository) MetricQueryService {
	return &metricQueryService{
		metricRepo: metricRepo,
	}
}

func (s *metricQueryService) Find(ctx context.Context, filter dto.MetricFilterRequest) ([]model.MetricRecord, error) {
	records, err := s.metricRepo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrQueryFailed, err)
	}
	return records, nil
}

// Aggregate groups all records by the dimension's field, optionally
// pre-filtered by an equality match on that same field, and sums the four
// counters per group.
func (s *metricQueryService) Aggregate(ctx context.Context, dimension model.Dimension, match string) ([]dto.MetricAggregateRow, error) {
	field, ok := dimension.Field()
	if !ok {
		return nil, fmt.Errorf("%w: unknown aggregation dimension %q", apperr.ErrInvalidInput, dimension)
	}

	log.Info().Str("field", field).Str("match", match).Msg("Aggregating metrics")
	rows, err := s.metricRepo.Aggregate(ctx, field, match)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrQueryFailed, err)
	}
	return rows, nil
}

// FindByDateRange requires an already-validated range; see validation.DateRangeValidator.
func (s *metricQueryService) FindByDateRange(ctx context.Context, dateRange validation.DateRange) ([]model.MetricRecord, error) {
	records, err := s.metricRepo.FindByDateRange(ctx, dateRange)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", apperr.ErrQueryFailed, err)
	}
	return records, nil
}
