// Package kafka publishes audit entries as JSON events on a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/audit"
	"dispatch/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker"
)

const (
	breakerFailureThreshold = 5
	breakerOpenTimeout      = 30 * time.Second
	fleetKey                = "fleet"
)

var ErrPublisherUnavailable = errors.New("audit event publisher is unavailable")

// MessageWriter is the part of kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// AuditEvent is the JSON payload of one published audit entry.
type AuditEvent struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	OrderID     string    `json:"orderId,omitempty"`
	CustomID    string    `json:"customId,omitempty"`
	From        string    `json:"from,omitempty"`
	To          string    `json:"to,omitempty"`
	VehicleName string    `json:"vehicleName,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	Message     string    `json:"message"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// AuditEventPublisher writes audit entries through a circuit breaker, so that a
// broker outage fails fast instead of stalling every command.
type AuditEventPublisher struct {
	writer  MessageWriter
	breaker *gobreaker.CircuitBreaker
	logger  *slog.Logger
}

// NewAuditEventPublisher creates a publisher writing to topic on brokers.
func NewAuditEventPublisher(brokers []string, topic string, logger *slog.Logger) *AuditEventPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
	return NewAuditEventPublisherWithWriter(writer, logger)
}

// NewAuditEventPublisherWithWriter creates a publisher on an existing writer.
func NewAuditEventPublisherWithWriter(writer MessageWriter, logger *slog.Logger) *AuditEventPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "AuditEventPublisher")

	settings := gobreaker.Settings{
		Name:    "audit-events",
		Timeout: breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &AuditEventPublisher{
		writer:  writer,
		breaker: gobreaker.NewCircuitBreaker(settings),
		logger:  logger,
	}
}

// Publish writes all entries in one batch. Entries about the same order share
// a message key and therefore a partition.
func (p *AuditEventPublisher) Publish(ctx context.Context, entries ...audit.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(entries))
	for _, e := range entries {
		msg, err := toMessage(e)
		if err != nil {
			return err
		}
		messages = append(messages, msg)
	}

	_, err := p.breaker.Execute(func() (interface{}, error) {
		return nil, p.writer.WriteMessages(ctx, messages...)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w", ErrPublisherUnavailable, err)
	}
	if err != nil {
		return fmt.Errorf("failed to publish %d audit events: %w", len(messages), err)
	}

	p.logger.DebugContext(ctx, "audit events published", "count", len(messages))
	return nil
}

// State reports the circuit breaker state.
func (p *AuditEventPublisher) State() gobreaker.State {
	return p.breaker.State()
}

func (p *AuditEventPublisher) Close() error {
	return p.writer.Close()
}

func toMessage(e audit.Entry) (kafka.Message, error) {
	event := AuditEvent{
		ID:          e.ID().String(),
		Kind:        e.Kind().String(),
		CustomID:    e.CustomID(),
		From:        statusName(e.From()),
		To:          statusName(e.To()),
		VehicleName: e.VehicleName(),
		Reason:      e.Reason(),
		Message:     e.Message(),
		OccurredAt:  e.OccurredAt(),
	}

	key := fleetKey
	if id := e.OrderID(); id != nil {
		event.OrderID = id.String()
		key = event.OrderID
	}

	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to marshal audit event %s: %w", event.ID, err)
	}

	return kafka.Message{
		Key:   []byte(key),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event-id", Value: []byte(event.ID)},
			{Key: "event-type", Value: []byte(event.Kind)},
			{Key: "content-type", Value: []byte("application/json")},
		},
		Time: event.OccurredAt,
	}, nil
}

func statusName(s order.Status) string {
	if s == order.Unknown {
		return ""
	}
	return s.String()
}
