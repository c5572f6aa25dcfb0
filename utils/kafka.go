package utils

import (
	"context"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/sharath018/travel-agency-backend/config"
)

var kafkaWriter *kafka.Writer

// InitializeKafka sets up the writer for booking submission events.
// Kafka being down must never block a booking, so publishes are best effort.
func InitializeKafka(cfg *config.Config) {
	broker := cfg.KafkaBroker
	if broker == "" {
		log.Println("⚠️ KAFKA_BROKER not set, booking events disabled")
		return
	}

	kafkaWriter = &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
	}
	log.Printf("✅ Kafka writer ready (topic=%s)", cfg.KafkaTopic)
}

// PublishBookingEvent writes one event keyed by booking reference.
func PublishBookingEvent(ctx context.Context, key string, payload []byte) error {
	if kafkaWriter == nil {
		return nil
	}
	return kafkaWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
}
