// internal/event/kafka/publisher.go
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"deposit-service/internal/domain"
	"deposit-service/internal/event"
)

// Producer is the keyed-message transport a Publisher writes through.
// *messaging.KafkaProducer implements it.
type Producer interface {
	Publish(ctx context.Context, key string, value []byte) error
}

// Publisher implements event.Publisher on top of a Kafka topic.
type Publisher struct {
	producer Producer
}

// NewPublisher creates a Publisher writing through the given producer.
func NewPublisher(producer Producer) event.Publisher {
	return &Publisher{producer: producer}
}

// PublishCreated wraps the deposit in a creation-event envelope and writes it
// to the topic, keyed by the deposit number.
func (p *Publisher) PublishCreated(ctx context.Context, deposit *domain.Deposit) error {
	envelope := domain.DepositCreatedEvent{
		ID:   uuid.NewString(),
		Type: domain.EventTypeCreated,
		Date: time.Now().UTC(),
		Data: deposit,
	}

	payload, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to encode creation event for deposit %s: %w", deposit.DepositNumber, err)
	}

	if err := p.producer.Publish(ctx, deposit.DepositNumber, payload); err != nil {
		return fmt.Errorf("failed to publish creation event for deposit %s: %w", deposit.DepositNumber, err)
	}
	return nil
}
