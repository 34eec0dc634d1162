package utils

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/minseo-dev/event-marketing-backend/config"
)

var kafkaWriter *kafka.Writer

// InitializeKafka sets up the shared producer for event activity messages.
func InitializeKafka(cfg *config.Config) {
	kafkaWriter = &kafka.Writer{
		Addr:         kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
	}

	Logger.Info().Str("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("kafka producer initialized")
}

// PublishActivity sends a JSON message keyed by entity id. Errors are logged,
// not returned: a broker outage must not fail the originating API call.
func PublishActivity(key string, payload interface{}) {
	if kafkaWriter == nil {
		return
	}

	value, err := json.Marshal(payload)
	if err != nil {
		LogError(err, map[string]interface{}{"key": key}, "failed to marshal activity message")
		return
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := kafkaWriter.WriteMessages(writeCtx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	}); err != nil {
		LogError(err, map[string]interface{}{"key": key}, "failed to publish activity message")
	}
}

// NewActivityReader builds a consumer for the activity topic.
func NewActivityReader(cfg *config.Config, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  strings.Split(cfg.KafkaBrokers, ","),
		GroupID:  groupID,
		Topic:    cfg.KafkaTopic,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
}
