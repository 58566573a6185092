package kafka

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"agenin-transaction/internal/bridge"
	"agenin-transaction/internal/core/ports"
)

// Reader is the subset of kafka.Reader the consumer loops need.
type Reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewReader builds a consumer-group reader for one topic.
func NewReader(brokers []string, groupID string, topic string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: groupID,
		Topic:   topic,
	})
}

// ReplyListener is the shared consumer on the reply topic. It
// demultiplexes replies to waiting SendSync calls strictly by
// correlation id.
type ReplyListener struct {
	reader   Reader
	resolver ports.ReplyResolver
	log      zerolog.Logger
}

func NewReplyListener(reader Reader, resolver ports.ReplyResolver, log zerolog.Logger) *ReplyListener {
	return &ReplyListener{reader: reader, resolver: resolver, log: log}
}

// Run consumes until ctx is cancelled. Messages without a correlation
// id, or whose waiter is gone, are committed and dropped.
func (l *ReplyListener) Run(ctx context.Context) error {
	for {
		msg, err := l.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}

		correlationID := headerValue(msg, bridge.CorrelationIDHeader)
		if correlationID == "" {
			l.log.Debug().Str("topic", msg.Topic).Msg("reply without correlation id dropped")
		} else if !l.resolver.Resolve(correlationID, msg.Value) {
			l.log.Debug().Str("correlation_id", correlationID).Msg("late reply dropped")
		}

		if err := l.reader.CommitMessages(ctx, msg); err != nil {
			l.log.Error().Err(err).Msg("commit reply offset failed")
		}
	}
}

// Close releases the underlying reader.
func (l *ReplyListener) Close() error {
	return l.reader.Close()
}
