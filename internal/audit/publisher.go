package audit

//go:generate mockgen -destination=../mocks/mock_publisher.go -package=mocks github.com/EAATA-Brasil/backendAppShop/internal/audit Publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/segmentio/kafka-go"
)

// Event is one admission decision. Events are keyed by customer so a
// compacted topic keeps the latest decision per customer.
type Event struct {
	EventID    string `json:"event_id"`
	CustomerID string `json:"customer_id"`
	DeviceID   string `json:"device_id"`
	Outcome    string `json:"outcome"`
	Timestamp  int64  `json:"timestamp"`
}

// Publisher records admission decisions. Publishing is best-effort: a failed
// publish must never change the outcome of a check.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Config struct {
	Brokers string
	Topic   string
}

type KafkaPublisher struct {
	writer messageWriter
}

func NewKafkaPublisher(cfg Config) *KafkaPublisher {
	return &KafkaPublisher{
		// Async: admission checks must not block on broker batching; write
		// errors surface through the writer's logger, not the caller.
		writer: kafka.NewWriter(kafka.WriterConfig{
			Brokers: splitBrokers(cfg.Brokers),
			Topic:   cfg.Topic,
			Async:   true,
		}),
	}
}

// splitBrokers turns a comma-separated broker list into addresses.
func splitBrokers(brokers string) []string {
	parts := strings.Split(brokers, ",")
	addrs := make([]string, 0, len(parts))
	for _, part := range parts {
		if addr := strings.TrimSpace(part); addr != "" {
			addrs = append(addrs, addr)
		}
	}
	return addrs
}

func (p *KafkaPublisher) Publish(ctx context.Context, event Event) {
	out, err := json.Marshal(event)
	if err != nil {
		slog.WarnContext(ctx, "failed to encode admission event", "customer_id", event.CustomerID, "error", err)
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(event.CustomerID), Value: out})
	if err != nil {
		slog.WarnContext(ctx, "failed to publish admission event", "customer_id", event.CustomerID, "error", err)
	}
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher is wired when no brokers are configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) {}
