package elasticsearch

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/rs/zerolog/log"

	"metrics-consolidation-backend/config"
)

// metricIndexMapping pins the fields the query layer depends on: the three
// grouping keys as keywords and the ingestion timestamp as a date. Everything
// else the upstream returns is mapped dynamically.
const metricIndexMapping = `{
  "mappings": {
    "properties": {
      "SERVICENAME": {"type": "keyword"},
      "DISPLAYNAME": {"type": "keyword"},
      "CLIENTNAME": {"type": "keyword"},
      "createdAt": {"type": "date"}
    }
  }
}`

// NewElasticClient connects to the document store with retries and verifies
// the connection. Exhausting the retry budget is fatal: the process must not
// come up without its store.
func NewElasticClient(cfg *config.Config) (*elasticsearch.Client, error) {
	if len(cfg.Elasticsearch.Addresses) == 0 {
		log.Error().Msg("Elasticsearch addresses are not configured.")
		return nil, errors.New("elasticsearch configuration missing")
	}
	transport := &http.Transport{
		MaxIdleConnsPerHost:   10,
		ResponseHeaderTimeout: time.Second * 10,
		DialContext:           (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		TLSHandshakeTimeout:   5 * time.Second,
	}
	esCfg := elasticsearch.Config{
		Addresses: cfg.Elasticsearch.Addresses,
		Username:  cfg.Elasticsearch.Username,
		Password:  cfg.Elasticsearch.Password,
		Transport: transport,
	}

	var esClient *elasticsearch.Client
	var err error
	operation := func() error {
		esClient, err = elasticsearch.NewClient(esCfg)
		if err != nil {
			log.Warn().Err(err).Msg("Attempt failed: Error creating the Elasticsearch client")
			return err
		}

		res, errPing := esClient.Info(
			esClient.Info.WithContext(context.Background()),
		)
		if errPing != nil {
			log.Warn().Err(errPing).Msg("Attempt failed: Error during Elasticsearch Info() call")
			return errPing
		}
		defer res.Body.Close()
		if res.IsError() {
			errMsg := fmt.Errorf("elasticsearch Info() returned error status: %s", res.Status())
			log.Warn().Err(errMsg).Msg("Attempt failed: Elasticsearch ping returned error status")
			return errMsg
		}
		log.Info().Msg("Elasticsearch client initialized and connection verified")
		return nil
	}

	connectBackoff := backoff.NewExponentialBackOff()
	connectBackoff.InitialInterval = 2 * time.Second
	connectBackoff.MaxInterval = 15 * time.Second
	connectBackoff.MaxElapsedTime = 90 * time.Second

	log.Info().Msg("Attempting to connect to Elasticsearch with retries...")
	err = backoff.Retry(operation, connectBackoff)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Elasticsearch after multiple retries")
		return nil, err
	}

	if err := ensureMetricIndex(context.Background(), esClient, cfg.Elasticsearch.MetricIndex); err != nil {
		log.Fatal().Err(err).Str("index", cfg.Elasticsearch.MetricIndex).Msg("Failed to ensure metrics index exists")
		return nil, err
	}

	return esClient, nil
}

func ensureMetricIndex(ctx context.Context, client *elasticsearch.Client, index string) error {
	existsRes, err := client.Indices.Exists(
		[]string{index},
		client.Indices.Exists.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed checking metrics index: %w", err)
	}
	defer existsRes.Body.Close()
	if existsRes.StatusCode == http.StatusOK {
		log.Info().Str("index", index).Msg("Metrics index already exists")
		return nil
	}

	createRes, err := client.Indices.Create(
		index,
		client.Indices.Create.WithContext(ctx),
		client.Indices.Create.WithBody(strings.NewReader(metricIndexMapping)),
	)
	if err != nil {
		return fmt.Errorf("failed creating metrics index: %w", err)
	}
	defer createRes.Body.Close()
	if createRes.IsError() {
		// Racing creators are fine, anything else is not.
		if strings.Contains(createRes.String(), "resource_already_exists_exception") {
			return nil
		}
		return fmt.Errorf("metrics index creation returned error status: %s", createRes.Status())
	}
	log.Info().Str("index", index).Msg("Created metrics index")
	return nil
}
