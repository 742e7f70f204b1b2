package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/rs/zerolog/log"

	"metrics-consolidation-backend/config"
	"metrics-consolidation-backend/internal/dto"
	"metrics-consolidation-backend/internal/model"
	"metrics-consolidation-backend/internal/repository"
	"metrics-consolidation-backend/internal/validation"
)

// No pagination is offered upstream of this repository, so scans and
// aggregations are capped at the store's default result window.
const maxResultWindow = 10000

const dateRangeLayout = "2006-01-02T15:04:05.000-07:00"

type elasticMetricRepository struct {
	client *elasticsearch.Client
	index  string
}

func NewElasticMetricRepository(cfg *config.Config, client *elasticsearch.Client) repository.MetricRepository {
	return &elasticMetricRepository{
		client: client,
		index:  cfg.Elasticsearch.MetricIndex,
	}
}

// Insert writes the batch through the _bulk endpoint in one request.
// refresh=wait_for keeps the read-your-writes behavior the ingestion
// endpoint's response implies.
func (r *elasticMetricRepository) Insert(ctx context.Context, records []model.MetricRecord) error {
	if len(records) == 0 {
		return nil
	}

	var body bytes.Buffer
	for _, record := range records {
		body.WriteString(`{"index":{}}` + "\n")
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal metric record: %w", err)
		}
		body.Write(data)
		body.WriteByte('\n')
	}

	res, err := r.client.Bulk(
		bytes.NewReader(body.Bytes()),
		r.client.Bulk.WithContext(ctx),
		r.client.Bulk.WithIndex(r.index),
		r.client.Bulk.WithRefresh("wait_for"),
	)
	if err != nil {
		return fmt.Errorf("bulk insert request failed: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("bulk insert returned error status: %s", res.Status())
	}

	var bulkRes struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			Status int `json:"status"`
			Error  *struct {
				Type   string `json:"type"`
				Reason string `json:"reason"`
			} `json:"error"`
		} `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&bulkRes); err != nil {
		return fmt.Errorf("failed to decode bulk response: %w", err)
	}
	if bulkRes.Errors {
		for _, item := range bulkRes.Items {
			for _, result := range item {
				if result.Error != nil {
					return fmt.Errorf("bulk insert item failed: %s: %s", result.Error.Type, result.Error.Reason)
				}
			}
		}
		return fmt.Errorf("bulk insert reported item failures")
	}

	log.Debug().Int("count", len(records)).Str("index", r.index).Msg("Inserted metric batch")
	return nil
}

func (r *elasticMetricRepository) Find(ctx context.Context, filter dto.MetricFilterRequest) ([]model.MetricRecord, error) {
	return r.search(ctx, buildFilterQuery(filter))
}

func (r *elasticMetricRepository) FindByDateRange(ctx context.Context, dateRange validation.DateRange) ([]model.MetricRecord, error) {
	return r.search(ctx, buildDateRangeQuery(dateRange))
}

func (r *elasticMetricRepository) search(ctx context.Context, query map[string]interface{}) ([]model.MetricRecord, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search query: %w", err)
	}

	res, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(r.index),
		r.client.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search returned error status: %s", res.Status())
	}

	var searchRes struct {
		Hits struct {
			Hits []struct {
				ID     string          `json:"_id"`
				Source json.RawMessage `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&searchRes); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	records := make([]model.MetricRecord, 0, len(searchRes.Hits.Hits))
	for _, hit := range searchRes.Hits.Hits {
		var record model.MetricRecord
		if err := json.Unmarshal(hit.Source, &record); err != nil {
			log.Error().Err(err).Str("id", hit.ID).Msg("Failed to unmarshal metric hit source")
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *elasticMetricRepository) Aggregate(ctx context.Context, field string, match string) ([]dto.MetricAggregateRow, error) {
	body, err := json.Marshal(buildAggregateQuery(field, match))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal aggregation query: %w", err)
	}

	res, err := r.client.Search(
		r.client.Search.WithContext(ctx),
		r.client.Search.WithIndex(r.index),
		r.client.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("aggregation request failed: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("aggregation returned error status: %s", res.Status())
	}

	var aggRes struct {
		Aggregations struct {
			Groups struct {
				Buckets []struct {
					Key              string   `json:"key"`
					TotalFailures    aggValue `json:"totalFailures"`
					TotalSuccesses   aggValue `json:"totalSuccesses"`
					TotalExceptions  aggValue `json:"totalExceptions"`
					TotalNumMessages aggValue `json:"totalNumMessages"`
				} `json:"buckets"`
			} `json:"groups"`
		} `json:"aggregations"`
	}
	if err := json.NewDecoder(res.Body).Decode(&aggRes); err != nil {
		return nil, fmt.Errorf("failed to decode aggregation response: %w", err)
	}

	rows := make([]dto.MetricAggregateRow, 0, len(aggRes.Aggregations.Groups.Buckets))
	for _, bucket := range aggRes.Aggregations.Groups.Buckets {
		rows = append(rows, dto.MetricAggregateRow{
			Field:            field,
			Key:              bucket.Key,
			TotalFailures:    int64(bucket.TotalFailures.Value),
			TotalSuccesses:   int64(bucket.TotalSuccesses.Value),
			TotalExceptions:  int64(bucket.TotalExceptions.Value),
			TotalNumMessages: int64(bucket.TotalNumMessages.Value),
		})
	}
	return rows, nil
}

type aggValue struct {
	Value float64 `json:"value"`
}

// buildFilterQuery turns the non-empty filters into a term conjunction,
// falling back to match_all when nothing is set.
func buildFilterQuery(filter dto.MetricFilterRequest) map[string]interface{} {
	terms := []map[string]interface{}{}
	for field, value := range map[string]string{
		model.FieldServiceName: filter.ServiceName,
		model.FieldDisplayName: filter.DisplayName,
		model.FieldClientName:  filter.ClientName,
	} {
		if value != "" {
			terms = append(terms, map[string]interface{}{
				"term": map[string]interface{}{field: value},
			})
		}
	}

	var query map[string]interface{}
	if len(terms) == 0 {
		query = map[string]interface{}{"match_all": map[string]interface{}{}}
	} else {
		query = map[string]interface{}{
			"bool": map[string]interface{}{"filter": terms},
		}
	}
	return map[string]interface{}{
		"query": query,
		"size":  maxResultWindow,
	}
}

// buildAggregateQuery groups by the given keyword field, summing the four
// counters per group. Records missing the field land in the "" bucket rather
// than being dropped.
func buildAggregateQuery(field string, match string) map[string]interface{} {
	sums := map[string]interface{}{}
	for _, counter := range []string{
		model.FieldTotalFailures,
		model.FieldTotalSuccesses,
		model.FieldTotalExceptions,
		model.FieldTotalNumMessages,
	} {
		sums[counter] = map[string]interface{}{
			"sum": map[string]interface{}{"field": counter},
		}
	}

	var query map[string]interface{}
	if match == "" {
		query = map[string]interface{}{"match_all": map[string]interface{}{}}
	} else {
		query = map[string]interface{}{
			"term": map[string]interface{}{field: match},
		}
	}

	return map[string]interface{}{
		"size":  0,
		"query": query,
		"aggs": map[string]interface{}{
			"groups": map[string]interface{}{
				"terms": map[string]interface{}{
					"field":   field,
					"missing": "",
					"size":    maxResultWindow,
				},
				"aggs": sums,
			},
		},
	}
}

// buildDateRangeQuery bounds createdAt to [start 00:00:00.000, end 23:59:59.999]
// in the reference timezone, matching how the stamps were written.
func buildDateRangeQuery(dateRange validation.DateRange) map[string]interface{} {
	start := dateRange.StartDate()
	end := dateRange.EndDate().Add(24*time.Hour - time.Millisecond)
	return map[string]interface{}{
		"query": map[string]interface{}{
			"range": map[string]interface{}{
				model.FieldCreatedAt: map[string]interface{}{
					"gte": start.Format(dateRangeLayout),
					"lte": end.Format(dateRangeLayout),
				},
			},
		},
		"size": maxResultWindow,
	}
}
