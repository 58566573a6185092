// Package bridge layers blocking request/reply semantics over a
// one-way message transport. Callers publish with a correlation id and
// park until the shared reply listener resolves the matching entry.
package bridge

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"agenin-transaction/internal/core/ports"
	"agenin-transaction/pkg/apperror"
)

// Header names carried on every request expecting a reply. The reply
// producer copies the correlation id onto its response.
const (
	CorrelationIDHeader = "kafka_correlationId"
	ReplyTopicHeader    = "kafka_replyTopic"
)

// DefaultSyncTimeout bounds how long SendSync waits for a reply.
const DefaultSyncTimeout = 60 * time.Second

// Bridge implements ports.MessageBridge with a pending-call table keyed
// by correlation id. Each entry holds a one-shot buffered channel so
// Resolve never blocks on a slow or departed waiter.
type Bridge struct {
	transport ports.MessageTransport
	timeout   time.Duration
	log       zerolog.Logger

	mu      sync.Mutex
	pending map[string]chan []byte
}

// New creates a Bridge. A non-positive timeout falls back to
// DefaultSyncTimeout.
func New(transport ports.MessageTransport, timeout time.Duration, log zerolog.Logger) *Bridge {
	if timeout <= 0 {
		timeout = DefaultSyncTimeout
	}
	return &Bridge{
		transport: transport,
		timeout:   timeout,
		log:       log,
		pending:   make(map[string]chan []byte),
	}
}

// SendAsync publishes fire-and-forget. It returns as soon as the
// transport accepts the message and never waits for a reply.
func (b *Bridge) SendAsync(ctx context.Context, destination string, payload []byte) error {
	if err := b.transport.Publish(ctx, destination, nil, payload); err != nil {
		return apperror.ErrTransport(err)
	}
	return nil
}

// SendSync publishes with a fresh correlation id and blocks until a
// reply carrying the same id arrives on replyDestination, the timeout
// elapses, or ctx is cancelled. Replies are matched strictly by id, so
// a slow reply for one call is never handed to another. The pending
// entry is removed on every exit path.
func (b *Bridge) SendSync(ctx context.Context, destination string, replyDestination string, payload []byte) ([]byte, error) {
	correlationID := uuid.NewString()

	ch := make(chan []byte, 1)
	b.mu.Lock()
	b.pending[correlationID] = ch
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		delete(b.pending, correlationID)
		b.mu.Unlock()
	}()

	headers := map[string]string{
		CorrelationIDHeader: correlationID,
		ReplyTopicHeader:    replyDestination,
	}
	if err := b.transport.Publish(ctx, destination, headers, payload); err != nil {
		return nil, apperror.ErrTransport(err)
	}

	timer := time.NewTimer(b.timeout)
	defer timer.Stop()

	select {
	case reply := <-ch:
		return reply, nil
	case <-timer.C:
		b.log.Warn().
			Str("destination", destination).
			Str("correlation_id", correlationID).
			Dur("timeout", b.timeout).
			Msg("no correlated reply before timeout")
		return nil, apperror.ErrTimeout()
	case <-ctx.Done():
		// The request message is already out; only the wait is abandoned.
		return nil, ctx.Err()
	}
}

// Resolve completes the pending call registered under correlationID.
// It reports false for unknown or already-resolved ids, which the
// caller drops (a late reply after timeout is expected traffic).
func (b *Bridge) Resolve(correlationID string, payload []byte) bool {
	b.mu.Lock()
	ch, ok := b.pending[correlationID]
	if ok {
		delete(b.pending, correlationID)
	}
	b.mu.Unlock()

	if !ok {
		b.log.Debug().
			Str("correlation_id", correlationID).
			Msg("dropping reply with no pending call")
		return false
	}

	ch <- payload
	return true
}
