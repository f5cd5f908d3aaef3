package service

import (
	"context"

	"ummana/internal/domain/entity"
)

// DirectoryAction is the kind of change applied to a directory record.
type DirectoryAction string

const (
	DirectoryActionCreated DirectoryAction = "created"
	DirectoryActionUpdated DirectoryAction = "updated"
	DirectoryActionDeleted DirectoryAction = "deleted"
)

// DirectoryEvent announces a successful change made through the console,
// so other console instances can reload the affected collection.
type DirectoryEvent struct {
	RequestID string          `json:"request_id,omitempty"` // For distributed tracing
	Kind      entity.Kind     `json:"kind"`
	Action    DirectoryAction `json:"action"`
	ID        string          `json:"id"`

	// Origin is the instance ID of the console that made the change.
	Origin string `json:"origin,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDirectoryEvent publishes a change event; delivery is best effort
	PublishDirectoryEvent(ctx context.Context, event *DirectoryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
