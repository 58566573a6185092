package bridge

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agenin-transaction/pkg/apperror"
)

type publishedMsg struct {
	Destination string
	Headers     map[string]string
	Payload     []byte
}

// fakeTransport records publishes and can fail on demand.
type fakeTransport struct {
	mu       sync.Mutex
	messages []publishedMsg
	err      error
}

func (f *fakeTransport) Publish(_ context.Context, destination string, headers map[string]string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, publishedMsg{Destination: destination, Headers: headers, Payload: payload})
	return nil
}

func (f *fakeTransport) published() []publishedMsg {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]publishedMsg, len(f.messages))
	copy(out, f.messages)
	return out
}

func newTestBridge(transport *fakeTransport, timeout time.Duration) *Bridge {
	return New(transport, timeout, zerolog.Nop())
}

func TestSendAsync_PublishesWithoutHeaders(t *testing.T) {
	transport := &fakeTransport{}
	b := newTestBridge(transport, time.Second)

	err := b.SendAsync(context.Background(), "audit-log", []byte(`{"table":"transactions"}`))
	require.NoError(t, err)

	msgs := transport.published()
	require.Len(t, msgs, 1)
	assert.Equal(t, "audit-log", msgs[0].Destination)
	assert.Empty(t, msgs[0].Headers)
}

func TestSendAsync_TransportError(t *testing.T) {
	transport := &fakeTransport{err: errors.New("broker unavailable")}
	b := newTestBridge(transport, time.Second)

	err := b.SendAsync(context.Background(), "audit-log", []byte("x"))

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TRANSPORT", appErr.Code)
}

func TestSendSync_ReplyResolvedByCorrelationID(t *testing.T) {
	transport := &fakeTransport{}
	b := newTestBridge(transport, 5*time.Second)

	done := make(chan struct{})
	var reply []byte
	var err error
	go func() {
		defer close(done)
		reply, err = b.SendSync(context.Background(), "user-lookup", "user-lookup-reply", []byte("req"))
	}()

	// Wait for the request to hit the transport, then answer it.
	var corrID string
	require.Eventually(t, func() bool {
		msgs := transport.published()
		if len(msgs) == 0 {
			return false
		}
		corrID = msgs[0].Headers[CorrelationIDHeader]
		return corrID != ""
	}, time.Second, 5*time.Millisecond)

	assert.True(t, b.Resolve(corrID, []byte("the-reply")))

	<-done
	require.NoError(t, err)
	assert.Equal(t, []byte("the-reply"), reply)

	msgs := transport.published()
	assert.Equal(t, "user-lookup-reply", msgs[0].Headers[ReplyTopicHeader])
}

func TestSendSync_Timeout_RequestStillPublishedOnce(t *testing.T) {
	transport := &fakeTransport{}
	b := newTestBridge(transport, 20*time.Millisecond)

	_, err := b.SendSync(context.Background(), "user-lookup", "reply", []byte("req"))

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TIMEOUT", appErr.Code)
	assert.Len(t, transport.published(), 1, "request must be published exactly once even when no reply arrives")
}

func TestSendSync_ContextCancelled(t *testing.T) {
	transport := &fakeTransport{}
	b := newTestBridge(transport, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() {
		_, err := b.SendSync(ctx, "user-lookup", "reply", []byte("req"))
		errCh <- err
	}()

	require.Eventually(t, func() bool { return len(transport.published()) == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("SendSync did not return after cancellation")
	}
}

func TestSendSync_ConcurrentCallsDoNotCrossReplies(t *testing.T) {
	transport := &fakeTransport{}
	b := newTestBridge(transport, 5*time.Second)

	const calls = 8
	results := make([][]byte, calls)
	var wg sync.WaitGroup
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reply, err := b.SendSync(context.Background(), "dest", "reply", []byte{byte(i)})
			require.NoError(t, err)
			results[i] = reply
		}(i)
	}

	require.Eventually(t, func() bool { return len(transport.published()) == calls }, time.Second, 5*time.Millisecond)

	// Resolve in reverse publish order: correlation, not arrival order,
	// decides who gets which reply.
	msgs := transport.published()
	for i := len(msgs) - 1; i >= 0; i-- {
		echo := append([]byte("echo:"), msgs[i].Payload...)
		require.True(t, b.Resolve(msgs[i].Headers[CorrelationIDHeader], echo))
	}
	wg.Wait()

	for i := 0; i < calls; i++ {
		assert.Equal(t, append([]byte("echo:"), byte(i)), results[i])
	}
}

func TestResolve_UnknownCorrelationID(t *testing.T) {
	b := newTestBridge(&fakeTransport{}, time.Second)
	assert.False(t, b.Resolve("never-registered", []byte("late")))
}

func TestResolve_AfterTimeoutIsDropped(t *testing.T) {
	transport := &fakeTransport{}
	b := newTestBridge(transport, 10*time.Millisecond)

	_, err := b.SendSync(context.Background(), "dest", "reply", []byte("req"))
	require.Error(t, err)

	corrID := transport.published()[0].Headers[CorrelationIDHeader]
	assert.False(t, b.Resolve(corrID, []byte("too late")), "entry must be removed after timeout")
}

func TestNew_NonPositiveTimeoutFallsBack(t *testing.T) {
	b := New(&fakeTransport{}, 0, zerolog.Nop())
	assert.Equal(t, DefaultSyncTimeout, b.timeout)
}
