// internal/event/publisher.go
package event

import (
	"context"

	"deposit-service/internal/domain"
)

// Publisher defines the interface for emitting deposit domain events.
type Publisher interface {
	// PublishCreated emits a creation event for a stored deposit, keyed by
	// its deposit number. Delivery is fire-and-forget: no retry is
	// performed and no acknowledgment beyond success/failure is surfaced.
	PublishCreated(ctx context.Context, deposit *domain.Deposit) error
}
