// internal/domain/event.go
package domain

import "time"

// EventType defines the type of a deposit domain event.
type EventType string

const (
	EventTypeCreated EventType = "CREATED"
)

// DepositCreatedEvent is the envelope published to the event channel after a
// deposit has been durably stored.
type DepositCreatedEvent struct {
	ID   string    `json:"id"`   // Freshly generated unique event id
	Type EventType `json:"type"` // Always CREATED for this event
	Date time.Time `json:"date"` // Emission timestamp
	Data *Deposit  `json:"data"` // Full stored deposit payload
}
