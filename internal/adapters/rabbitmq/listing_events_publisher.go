package rabbitmq_adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"idx-service/internal/constants"
	"idx-service/internal/core/domain"
	"idx-service/internal/core/port"
	"idx-service/pkg/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ListingEventPublisher implements ListingEventPublisherPort on the listings
// exchange.
type ListingEventPublisher struct {
	publisher *rabbitmq.Publisher
	logger    port.LoggerPort
}

func NewListingEventPublisher(brokerURL string, logger port.LoggerPort) (*ListingEventPublisher, error) {
	publisher, err := rabbitmq.NewPublisher(rabbitmq.PublisherConfig{
		URL:             brokerURL,
		ExchangeName:    constants.ListingsExchange,
		ExchangeType:    constants.ListingsExchangeType,
		DurableExchange: true,
		DeclareExchange: true,
		Logger:          NewLoggerBridge(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create listing event publisher: %w", err)
	}

	return &ListingEventPublisher{publisher: publisher, logger: logger}, nil
}

func (p *ListingEventPublisher) PublishIngested(ctx context.Context, listing domain.Listing) error {
	event := toListingEvent(listing, time.Now().UTC())

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal listing event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.IngestedAt,
		Body:         body,
	}
	if err := p.publisher.Publish(ctx, constants.RoutingKeyListingIngested, msg); err != nil {
		return fmt.Errorf("failed to publish listing event: %w", err)
	}

	p.logger.Debug("Published listing ingested event", port.Fields{"listing_id": listing.ID})
	return nil
}

func (p *ListingEventPublisher) Close() error {
	return p.publisher.Close()
}
