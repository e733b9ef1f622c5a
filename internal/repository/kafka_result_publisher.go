package repository

import (
	"context"

	"VibraPulse/internal/domain/models"
	domrepo "VibraPulse/internal/domain/repository"
	pkgkafka "VibraPulse/pkg/kafka"
)

// KafkaResultPublisher publishes computed batch analyses to the results topic,
// keyed by sensor so per-sensor ordering survives partitioning.
type KafkaResultPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

func NewKafkaResultPublisher(producer *pkgkafka.Producer, topic string) domrepo.ResultPublisher {
	return &KafkaResultPublisher{producer: producer, topic: topic}
}

func (p *KafkaResultPublisher) Publish(ctx context.Context, res *models.BatchAnalysis) error {
	return p.producer.Publish(ctx, p.topic, []byte(res.SensorID), res)
}

func (p *KafkaResultPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
