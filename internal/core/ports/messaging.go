package ports

import (
	"context"
	"time"
)

// MessageTransport publishes raw messages to a named destination.
// Headers carry correlation metadata for the request/reply pattern.
type MessageTransport interface {
	Publish(ctx context.Context, destination string, headers map[string]string, payload []byte) error
}

// MessageBridge layers request/reply semantics over the transport.
type MessageBridge interface {
	// SendAsync is fire-and-forget. It never waits for a reply.
	SendAsync(ctx context.Context, destination string, payload []byte) error
	// SendSync publishes with a fresh correlation id and blocks until a
	// reply carrying the same id arrives on replyDestination, the
	// timeout elapses, or ctx is cancelled.
	SendSync(ctx context.Context, destination string, replyDestination string, payload []byte) ([]byte, error)
}

// ReplyResolver is the bridge surface the reply listener needs: it
// completes the pending call registered under a correlation id.
type ReplyResolver interface {
	Resolve(correlationID string, payload []byte) bool
}

// ResponseCache caches assembled read-model responses.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil when absent
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
