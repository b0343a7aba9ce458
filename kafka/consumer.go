package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/RehanShaikh007/texhub-backend/pkg/logger"
)

// StockLowHandler consumes stock low events
type StockLowHandler func(ctx context.Context, event StockLowEvent) error

// Consumer consumes the stock-low topic and routes events to a handler,
// typically the low-stock alert dispatcher
type Consumer struct {
	consumer sarama.ConsumerGroup
	groupID  string
	handler  StockLowHandler
}

// NewConsumer creates a new Kafka consumer group for low stock alerts
func NewConsumer(brokers []string, groupID string, handler StockLowHandler) (*Consumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_6_0_0
	config.Consumer.Group.Rebalance.Strategy = sarama.NewBalanceStrategyRoundRobin()
	config.Consumer.Offsets.Initial = sarama.OffsetNewest
	config.Consumer.Return.Errors = true

	consumer, err := sarama.NewConsumerGroup(brokers, groupID, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka consumer: %w", err)
	}

	logger.Logger.Info().
		Strs("brokers", brokers).
		Str("group_id", groupID).
		Msg("Kafka consumer initialized")

	return &Consumer{
		consumer: consumer,
		groupID:  groupID,
		handler:  handler,
	}, nil
}

// Start starts consuming messages until ctx is cancelled
func (c *Consumer) Start(ctx context.Context) {
	handler := &consumerGroupHandler{consumer: c}

	go func() {
		for {
			select {
			case <-ctx.Done():
				logger.Logger.Info().Msg("Consumer context cancelled, stopping")
				return
			default:
				if err := c.consumer.Consume(ctx, []string{TopicStockLow}, handler); err != nil {
					logger.Logger.Error().
						Err(err).
						Msg("Error from consumer")
				}
			}
		}
	}()

	go func() {
		for err := range c.consumer.Errors() {
			logger.Logger.Error().
				Err(err).
				Msg("Consumer error")
		}
	}()

	logger.Logger.Info().
		Str("topic", TopicStockLow).
		Str("group_id", c.groupID).
		Msg("Kafka consumer started")
}

// Close closes the Kafka consumer
func (c *Consumer) Close() error {
	if c.consumer != nil {
		return c.consumer.Close()
	}
	return nil
}

// consumerGroupHandler implements sarama.ConsumerGroupHandler
type consumerGroupHandler struct {
	consumer *Consumer
}

func (h *consumerGroupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *consumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *consumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		h.handleMessage(session.Context(), message)
		session.MarkMessage(message, "")
	}
	return nil
}

func (h *consumerGroupHandler) handleMessage(ctx context.Context, message *sarama.ConsumerMessage) {
	// Extract trace context from Kafka headers
	carrier := propagation.MapCarrier{}
	for _, header := range message.Headers {
		key := string(header.Key)
		if key == "traceparent" || key == "tracestate" {
			carrier[key] = string(header.Value)
		}
	}
	ctx = otel.GetTextMapPropagator().Extract(ctx, carrier)

	tracer := otel.Tracer("kafka-consumer")
	ctx, span := tracer.Start(ctx, "kafka.consume.stock_low",
		trace.WithSpanKind(trace.SpanKindConsumer),
		trace.WithAttributes(
			attribute.String("messaging.system", "kafka"),
			attribute.String("messaging.source", message.Topic),
			attribute.Int("messaging.kafka.partition", int(message.Partition)),
			attribute.Int64("messaging.kafka.offset", message.Offset),
		),
	)
	defer span.End()

	var event StockLowEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to unmarshal event")
		logger.Logger.Error().
			Err(err).
			Str("topic", message.Topic).
			Msg("Failed to unmarshal stock low event")
		return
	}

	span.SetAttributes(
		attribute.String("event.id", event.EventID),
		attribute.Int64("stock.id", int64(event.StockLotID)),
	)

	if err := h.consumer.handler(ctx, event); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Handler failed")
		logger.Error(ctx).
			Err(err).
			Str("event_id", event.EventID).
			Msg("Stock low handler failed")
		return
	}

	span.SetStatus(codes.Ok, "Event handled")
}
