package repository

import (
	"context"

	"metrics-consolidation-backend/internal/dto"
	"metrics-consolidation-backend/internal/model"
	"metrics-consolidation-backend/internal/validation"
)

// MetricRepository is the read/write surface over the metrics collection.
// Insert is the only writer; stored records are never updated or deleted.
type MetricRepository interface {
	Insert(ctx context.Context, records []model.MetricRecord) error
	Find(ctx context.Context, filter dto.MetricFilterRequest) ([]model.MetricRecord, error)
	Aggregate(ctx context.Context, field string, match string) ([]dto.MetricAggregateRow, error)
	FindByDateRange(ctx context.Context, dateRange validation.DateRange) ([]model.MetricRecord, error)
}
