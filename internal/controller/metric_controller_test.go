package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metrics-consolidation-backend/internal/apperr"
	"metrics-consolidation-backend/internal/dto"
	"metrics-consolidation-backend/internal/model"
	"metrics-consolidation-backend/internal/util"
	"metrics-consolidation-backend/internal/validation"
)

type fakeIngestService struct {
	records []model.MetricRecord
	err     error
}

func (f *fakeIngestService) IngestOnce(ctx context.Context) ([]model.MetricRecord, error) {
	return f.records, f.err
}

type fakeQueryService struct {
	findResult  []model.MetricRecord
	findErr     error
	lastFilter  dto.MetricFilterRequest
	aggRows     []dto.MetricAggregateRow
	aggErr      error
	lastDim     model.Dimension
	lastMatch   string
	rangeResult []model.MetricRecord
	rangeErr    error
	rangeCalled bool
}

func (f *fakeQueryService) Find(ctx context.Context, filter dto.MetricFilterRequest) ([]model.MetricRecord, error) {
	f.lastFilter = filter
	return f.findResult, f.findErr
}

func (f *fakeQueryService) Aggregate(ctx context.Context, dimension model.Dimension, match string) ([]dto.MetricAggregateRow, error) {
	f.lastDim = dimension
	f.lastMatch = match
	return f.aggRows, f.aggErr
}

func (f *fakeQueryService) FindByDateRange(ctx context.Context, dateRange validation.DateRange) ([]model.MetricRecord, error) {
	f.rangeCalled = true
	return f.rangeResult, f.rangeErr
}

func setupMetricRouter(ingest *fakeIngestService, query *fakeQueryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterMetricRoutes(router, NewMetricController(ingest, query, validation.NewDateRangeValidator()))
	return router
}

func TestMetricController_IngestMetrics(t *testing.T) {
	ingest := &fakeIngestService{records: []model.MetricRecord{
		{"SERVICENAME": "svc-a", "createdAt": "2024-05-09T15:04:05+07:00"},
	}}
	router := setupMetricRouter(ingest, &fakeQueryService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var records []model.MetricRecord
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.NotEmpty(t, records[0]["createdAt"])
}

func TestMetricController_IngestMetrics_Failure(t *testing.T) {
	ingest := &fakeIngestService{err: fmt.Errorf("%w: upstream blew up", apperr.ErrIngestionFailed)}
	router := setupMetricRouter(ingest, &fakeQueryService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to fetch metrics summary")
	assert.NotContains(t, w.Body.String(), "upstream blew up")
}

func TestMetricController_GetMetrics(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedFilter dto.MetricFilterRequest
	}{
		{
			name:           "With Filters",
			body:           `{"SERVICENAME":"svc-a","CLIENTNAME":"client-1"}`,
			expectedStatus: http.StatusOK,
			expectedFilter: dto.MetricFilterRequest{ServiceName: "svc-a", ClientName: "client-1"},
		},
		{
			name:           "Empty Body Returns Everything",
			body:           "",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Empty Object",
			body:           `{}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Non-String Filter Rejected",
			body:           `{"SERVICENAME":42}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := &fakeQueryService{findResult: []model.MetricRecord{}}
			router := setupMetricRouter(&fakeIngestService{}, query)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/konsolidasi", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedFilter, query.lastFilter)
			}
		})
	}
}

func TestMetricController_AggregateRoutes(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		body         string
		expectedDim  model.Dimension
		expectedKey  string
		expectedWant string
	}{
		{
			name:         "By Service",
			path:         "/konsolidasi-service",
			body:         `{"SERVICENAME":"svc-a"}`,
			expectedDim:  model.DimensionService,
			expectedKey:  "svc-a",
			expectedWant: `"SERVICENAME":"svc-a"`,
		},
		{
			name:         "By Display",
			path:         "/konsolidasi-display",
			body:         `{"DISPLAYNAME":"Display A"}`,
			expectedDim:  model.DimensionDisplay,
			expectedKey:  "Display A",
			expectedWant: `"DISPLAYNAME":"Display A"`,
		},
		{
			name:         "By Client",
			path:         "/konsolidasi-client",
			body:         `{"CLIENTNAME":"client-1"}`,
			expectedDim:  model.DimensionClient,
			expectedKey:  "client-1",
			expectedWant: `"CLIENTNAME":"client-1"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			field, _ := tt.expectedDim.Field()
			query := &fakeQueryService{aggRows: []dto.MetricAggregateRow{
				{Field: field, Key: tt.expectedKey, TotalFailures: 3, TotalSuccesses: 10},
			}}
			router := setupMetricRouter(&fakeIngestService{}, query)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.expectedDim, query.lastDim)
			assert.Equal(t, tt.expectedKey, query.lastMatch)
			assert.Contains(t, w.Body.String(), tt.expectedWant)
			assert.Contains(t, w.Body.String(), `"totalFailures":3`)
		})
	}
}

func TestMetricController_AggregateWithoutBody(t *testing.T) {
	query := &fakeQueryService{}
	router := setupMetricRouter(&fakeIngestService{}, query)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/konsolidasi-service", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, query.lastMatch)
}

func TestMetricController_GetMetricsByDate(t *testing.T) {
	query := &fakeQueryService{rangeResult: []model.MetricRecord{{"SERVICENAME": "svc-a"}}}
	router := setupMetricRouter(&fakeIngestService{}, query)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/konsolidasi-by-date",
		strings.NewReader(`{"startDate":"2000-01-01","endDate":"2000-01-02"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, query.rangeCalled)
}

func TestMetricController_GetMetricsByDate_ValidationFailure(t *testing.T) {
	query := &fakeQueryService{}
	router := setupMetricRouter(&fakeIngestService{}, query)

	today := util.NowJakarta().Format(util.DateLayout)
	body := fmt.Sprintf(`{"startDate":"2000-01-01","endDate":%q}`, today)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/konsolidasi-by-date", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request data")
	assert.Contains(t, w.Body.String(), `cannot be today`)
	assert.False(t, query.rangeCalled, "store must not be queried for an invalid range")
}

func TestMetricController_GetMetricsByDate_StoreFailure(t *testing.T) {
	query := &fakeQueryService{rangeErr: fmt.Errorf("%w: boom", apperr.ErrQueryFailed)}
	router := setupMetricRouter(&fakeIngestService{}, query)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/konsolidasi-by-date",
		strings.NewReader(`{"startDate":"2000-01-01","endDate":"2000-01-02"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to fetch metrics data by date")
}
