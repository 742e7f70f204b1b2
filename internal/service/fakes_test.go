package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"metrics-consolidation-backend/internal/dto"
	"metrics-consolidation-backend/internal/model"
	"metrics-consolidation-backend/internal/validation"
)

func validDateRange(t *testing.T) validation.DateRange {
	t.Helper()
	dateRange, err := validation.NewDateRangeValidator().Validate("2000-01-01", "2000-01-02")
	require.NoError(t, err)
	return dateRange
}

type fakeFetcher struct {
	records []model.MetricRecord
	err     error
}

func (f *fakeFetcher) Fetch(ctx context.Context) ([]model.MetricRecord, error) {
	return f.records, f.err
}

type fakeMetricRepo struct {
	inserted      [][]model.MetricRecord
	insertErr     error
	findResult    []model.MetricRecord
	findErr       error
	lastFilter    dto.MetricFilterRequest
	aggResult     []dto.MetricAggregateRow
	aggErr        error
	lastAggField  string
	lastAggMatch  string
	rangeResult   []model.MetricRecord
	rangeErr      error
	lastDateRange validation.DateRange
}

func (f *fakeMetricRepo) Insert(ctx context.Context, records []model.MetricRecord) error {
	f.inserted = append(f.inserted, records)
	return f.insertErr
}

func (f *fakeMetricRepo) Find(ctx context.Context, filter dto.MetricFilterRequest) ([]model.MetricRecord, error) {
	f.lastFilter = filter
	return f.findResult, f.findErr
}

func (f *fakeMetricRepo) Aggregate(ctx context.Context, field string, match string) ([]dto.MetricAggregateRow, error) {
	f.lastAggField = field
	f.lastAggMatch = match
	return f.aggResult, f.aggErr
}

func (f *fakeMetricRepo) FindByDateRange(ctx context.Context, dateRange validation.DateRange) ([]model.MetricRecord, error) {
	f.lastDateRange = dateRange
	return f.rangeResult, f.rangeErr
}

type fakeProducer struct {
	produced [][]model.MetricRecord
	err      error
}

func (f *fakeProducer) Produce(ctx context.Context, records []model.MetricRecord) error {
	f.produced = append(f.produced, records)
	return f.err
}

func (f *fakeProducer) Close() error { return nil }

type fakeUserRepo struct {
	created   model.UserDocument
	createErr error
	users     []model.UserDocument
	findErr   error
	byID      model.UserDocument
	byIDErr   error
	updateErr error
	deleteErr error
	calls     int
	lastID    uuid.UUID
}

func (f *fakeUserRepo) Create(ctx context.Context, doc model.UserDocument) (model.UserDocument, error) {
	f.calls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func (f *fakeUserRepo) FindAll(ctx context.Context) ([]model.UserDocument, error) {
	f.calls++
	return f.users, f.findErr
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (model.UserDocument, error) {
	f.calls++
	f.lastID = id
	return f.byID, f.byIDErr
}

func (f *fakeUserRepo) Update(ctx context.Context, id uuid.UUID, fields model.UserDocument) error {
	f.calls++
	f.lastID = id
	return f.updateErr
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.calls++
	f.lastID = id
	return f.deleteErr
}

var errStore = errors.New("store exploded")
