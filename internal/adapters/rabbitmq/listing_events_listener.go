package rabbitmq_adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"idx-service/internal/constants"
	"idx-service/internal/contextkeys"
	"idx-service/internal/core/port"
	"idx-service/internal/core/port/usecases_port"
	"idx-service/pkg/rabbitmq"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// ListingEventListener consumes listing-ingested events and hands each one to
// the saved-search matcher.
type ListingEventListener struct {
	consumer   *rabbitmq.Consumer
	matchUC    usecases_port.MatchListingUseCasePort
	baseLogger port.LoggerPort
}

func NewListingEventListener(brokerURL string, matchUC usecases_port.MatchListingUseCasePort, baseLogger port.LoggerPort) (*ListingEventListener, error) {
	consumer, err := rabbitmq.NewConsumer(rabbitmq.ConsumerConfig{
		URL:             brokerURL,
		QueueName:       constants.ListingIngestQueue,
		DurableQueue:    true,
		ExchangeName:    constants.ListingsExchange,
		ExchangeType:    constants.ListingsExchangeType,
		DurableExchange: true,
		RoutingKey:      constants.RoutingKeyListingIngested,
		PrefetchCount:   10,
		Logger:          NewLoggerBridge(baseLogger),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create listing event listener: %w", err)
	}

	return &ListingEventListener{
		consumer:   consumer,
		matchUC:    matchUC,
		baseLogger: baseLogger,
	}, nil
}

// Start blocks until ctx is cancelled or the broker channel closes.
func (l *ListingEventListener) Start(ctx context.Context) error {
	return l.consumer.Start(ctx, l.handleDelivery)
}

func (l *ListingEventListener) handleDelivery(ctx context.Context, delivery amqp.Delivery) error {
	traceID := uuid.New().String()
	eventLogger := l.baseLogger.WithFields(port.Fields{
		"trace_id":    traceID,
		"routing_key": delivery.RoutingKey,
	})
	ctx = contextkeys.ContextWithTraceID(ctx, traceID)
	ctx = contextkeys.ContextWithLogger(ctx, eventLogger)

	var event ListingIngestedEvent
	if err := json.Unmarshal(delivery.Body, &event); err != nil {
		eventLogger.Error("Failed to decode listing event", err, nil)
		return fmt.Errorf("failed to decode listing event: %w", err)
	}

	eventLogger.Debug("Listing event received", port.Fields{"listing_id": event.ID})
	return l.matchUC.Execute(ctx, event.toDomain())
}

func (l *ListingEventListener) Close() error {
	return l.consumer.Close()
}
