package rabbitmq

import (
	"context"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DeliveryHandler processes one delivery. A non-nil error nacks the message
// without requeue.
type DeliveryHandler func(ctx context.Context, delivery amqp.Delivery) error

// ConsumerConfig configures a Consumer.
type ConsumerConfig struct {
	URL string

	QueueName    string
	DurableQueue bool

	ExchangeName    string // empty skips exchange declaration and binding
	ExchangeType    string
	DurableExchange bool
	RoutingKey      string

	PrefetchCount int
	ConsumerTag   string

	Logger Logger
}

// Consumer owns a dedicated connection and channel and dispatches deliveries
// to a handler.
type Consumer struct {
	config     ConsumerConfig
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
	wg         sync.WaitGroup

	Logger Logger
}

func NewConsumer(cfg ConsumerConfig) (*Consumer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = NewNoopLogger()
	}

	if cfg.URL == "" {
		return nil, fmt.Errorf("consumer: broker URL is required")
	}
	if cfg.QueueName == "" {
		return nil, fmt.Errorf("consumer: queue name is required")
	}
	if cfg.ExchangeName != "" && cfg.ExchangeType == "" {
		return nil, fmt.Errorf("consumer: exchange type is required when binding to an exchange")
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("consumer: failed to dial RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("consumer: failed to open a channel: %w", err)
	}

	c := &Consumer{
		config:     cfg,
		connection: conn,
		channel:    ch,
		Logger:     logger,
	}

	if err := c.setup(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("consumer: setup failed: %w", err)
	}

	return c, nil
}

func (c *Consumer) setup() error {
	if c.config.PrefetchCount > 0 {
		if err := c.channel.Qos(c.config.PrefetchCount, 0, false); err != nil {
			return fmt.Errorf("failed to set QoS: %w", err)
		}
	}

	if c.config.ExchangeName != "" {
		c.Logger.Debug("Declaring exchange", "name", c.config.ExchangeName, "type", c.config.ExchangeType)
		err := c.channel.ExchangeDeclare(
			c.config.ExchangeName,
			c.config.ExchangeType,
			c.config.DurableExchange,
			false, // auto-delete
			false, // internal
			false, // no-wait
			nil,
		)
		if err != nil {
			return fmt.Errorf("failed to declare exchange '%s': %w", c.config.ExchangeName, err)
		}
	}

	queue, err := c.channel.QueueDeclare(
		c.config.QueueName,
		c.config.DurableQueue,
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue '%s': %w", c.config.QueueName, err)
	}
	c.queueName = queue.Name

	if c.config.ExchangeName != "" {
		c.Logger.Debug("Binding queue",
			"queue", c.queueName,
			"exchange", c.config.ExchangeName,
			"routing_key", c.config.RoutingKey,
		)
		err = c.channel.QueueBind(
			c.queueName,
			c.config.RoutingKey,
			c.config.ExchangeName,
			false, // no-wait
			nil,
		)
		if err != nil {
			return fmt.Errorf("failed to bind queue '%s': %w", c.queueName, err)
		}
	}

	return nil
}

// Start consumes deliveries until ctx is cancelled or the channel closes. It
// blocks; run it in its own goroutine.
func (c *Consumer) Start(ctx context.Context, handler DeliveryHandler) error {
	if handler == nil {
		return fmt.Errorf("consumer: handler is required")
	}

	deliveries, err := c.channel.Consume(
		c.queueName,
		c.config.ConsumerTag,
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("consumer: failed to start consuming: %w", err)
	}

	c.Logger.Info("Consumer started", "queue", c.queueName)

	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("Consumer stopping: context cancelled", "queue", c.queueName)
			c.wg.Wait()
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				c.Logger.Warn("Consumer stopping: delivery channel closed", "queue", c.queueName)
				c.wg.Wait()
				return nil
			}

			c.wg.Add(1)
			func() {
				defer c.wg.Done()
				if err := handler(ctx, delivery); err != nil {
					c.Logger.Error(err, "Handler failed, rejecting message",
						"queue", c.queueName,
						"routing_key", delivery.RoutingKey,
					)
					_ = delivery.Nack(false, false)
					return
				}
				_ = delivery.Ack(false)
			}()
		}
	}
}

func (c *Consumer) Close() error {
	c.Logger.Debug("Consumer: Closing...")
	var firstErr error

	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			c.Logger.Error(err, "Error closing channel")
			firstErr = err
		}
		c.channel = nil
	}
	if c.connection != nil {
		if err := c.connection.Close(); err != nil {
			c.Logger.Error(err, "Error closing connection")
			if firstErr == nil {
				firstErr = err
			}
		}
		c.connection = nil
	}

	c.Logger.Info("Consumer closed.")
	return firstErr
}
