package service

import (
	"context"
)

// ContactCreatedEvent is emitted after a redemption stores a new contact
type ContactCreatedEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Type      string `json:"type"`
	ContactID string `json:"contact_id"`
	AgencyID  string `json:"agency_id"`
	StoreID   string `json:"store_id"`
	Email     string `json:"email"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishContactCreated publishes a contact event for async processing
	PublishContactCreated(ctx context.Context, event *ContactCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
