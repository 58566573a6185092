// Package kafka adapts the message-bus ports to Apache Kafka using
// segmentio/kafka-go.
package kafka

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// Writer is the subset of kafka.Writer the transport needs. Narrowed
// for broker-free tests.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// NewWriter builds a shared topic-agnostic writer. The topic is set per
// message so one writer serves every destination.
func NewWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Balancer: &kafka.LeastBytes{},
	}
}

// Transport implements ports.MessageTransport on a kafka writer.
type Transport struct {
	writer Writer
	log    zerolog.Logger
}

func NewTransport(writer Writer, log zerolog.Logger) *Transport {
	return &Transport{writer: writer, log: log}
}

// Publish writes one message to the destination topic. Header values
// are carried as kafka record headers.
func (t *Transport) Publish(ctx context.Context, destination string, headers map[string]string, payload []byte) error {
	msg := kafka.Message{
		Topic: destination,
		Value: payload,
	}
	for key, value := range headers {
		msg.Headers = append(msg.Headers, kafka.Header{Key: key, Value: []byte(value)})
	}

	if err := t.writer.WriteMessages(ctx, msg); err != nil {
		t.log.Error().Err(err).Str("topic", destination).Msg("kafka publish failed")
		return err
	}
	return nil
}

func headerValue(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
