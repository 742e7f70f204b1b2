package kafka

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"

	"metrics-consolidation-backend/config"
	"metrics-consolidation-backend/internal/model"
)

// MetricProducer publishes ingested metric batches for downstream consumers.
type MetricProducer interface {
	Produce(ctx context.Context, records []model.MetricRecord) error
	Close() error
}

type kafkaMetricProducer struct {
	writer *kafka.Writer
	topic  string
}

// NewKafkaMetricProducer returns nil when no brokers are configured;
// publishing is an optional tap on the ingestion flow, not a requirement.
func NewKafkaMetricProducer(lc fx.Lifecycle, cfg *config.Config) MetricProducer {
	if len(cfg.Kafka.Brokers) == 0 {
		log.Info().Msg("Kafka brokers not configured, metric batch publishing disabled")
		return nil
	}
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    cfg.Kafka.MetricTopic,
		Balancer: &kafka.LeastBytes{},
	})
	p := &kafkaMetricProducer{
		writer: writer,
		topic:  cfg.Kafka.MetricTopic,
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Closing Kafka producer")
			return p.Close()
		},
	})
	log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.MetricTopic).Msg("Kafka producer initialized")
	return p
}

func (p *kafkaMetricProducer) Produce(ctx context.Context, records []model.MetricRecord) error {
	if len(records) == 0 {
		return nil
	}
	messages := make([]kafka.Message, 0, len(records))

	for _, record := range records {
		value, err := json.Marshal(record)
		if err != nil {
			log.Error().Err(err).Msg("Failed to marshal metric record for Kafka")
			continue
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(record.ServiceName()),
			Value: value,
		})
	}
	if len(messages) == 0 {
		log.Warn().Msg("No valid messages to produce.")
		return nil
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		log.Error().Err(err).Int("message_count", len(messages)).Msg("Failed to write messages to Kafka")
		return err
	}

	log.Debug().Int("message_count", len(messages)).Str("topic", p.topic).Msg("Published metric batch to Kafka")
	return nil
}

func (p *kafkaMetricProducer) Close() error {
	return p.writer.Close()
}
