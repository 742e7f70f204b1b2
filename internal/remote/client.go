// Package remote pulls metric snapshots from the upstream monitoring API.
package remote

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"metrics-consolidation-backend/config"
	"metrics-consolidation-backend/internal/model"
)

// MetricsFetcher retrieves one batch of metric records from the upstream API.
type MetricsFetcher interface {
	Fetch(ctx context.Context) ([]model.MetricRecord, error)
}

type restyMetricsFetcher struct {
	client *resty.Client
	url    string
}

func NewMetricsFetcher(cfg *config.Config) MetricsFetcher {
	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetBasicAuth(cfg.MetricsAPI.Username, cfg.MetricsAPI.Password)

	if cfg.MetricsAPI.InsecureTLS {
		// Opt-in trust relaxation for upstreams with self-signed certificates.
		log.Warn().Msg("TLS certificate verification disabled for the metrics API")
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	return &restyMetricsFetcher{
		client: client,
		url:    cfg.MetricsAPI.URL,
	}
}

// metricsEnvelope is the upstream response wrapper; the records live in result.
type metricsEnvelope struct {
	Result []model.MetricRecord `json:"result"`
}

func (f *restyMetricsFetcher) Fetch(ctx context.Context) ([]model.MetricRecord, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(f.url)
	if err != nil {
		return nil, fmt.Errorf("metrics API request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("metrics API returned status %d", resp.StatusCode())
	}

	var envelope metricsEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode metrics API response: %w", err)
	}
	if envelope.Result == nil {
		return nil, fmt.Errorf("metrics API response missing result field")
	}

	log.Debug().Int("count", len(envelope.Result)).Msg("Fetched metric batch from upstream API")
	return envelope.Result, nil
}
