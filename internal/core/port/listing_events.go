package port

import (
	"context"

	"idx-service/internal/core/domain"
)

// ListingEventPublisherPort announces listings as the feed sync ingests them.
type ListingEventPublisherPort interface {
	PublishIngested(ctx context.Context, listing domain.Listing) error
	Close() error
}

// EventListenerPort is a long-running consumer of incoming events. Start
// blocks until the context is cancelled or the listener fails.
type EventListenerPort interface {
	Start(ctx context.Context) error
	Close() error
}
