package bridge

import (
	"context"
	"errors"
	"io"
	"sync"
)

// Common bridge errors.
var (
	// ErrClosed is returned by Push after Close or Fail. Late chunks from a
	// finished transfer are expected; callers normally drop them.
	ErrClosed = errors.New("bridge: closed")
	// ErrOverflow is returned by Push when a bounded bridge is full. The
	// producer side has no way to wait, so this is a protocol violation,
	// not a transient condition.
	ErrOverflow = errors.New("bridge: buffer overflow")
)

// Bridge is a FIFO queue of byte chunks connecting a callback-driven
// producer to a suspending consumer. The zero value is not usable; call
// New or NewBounded.
type Bridge struct {
	mu       sync.Mutex
	chunks   [][]byte
	buffered int64 // total bytes currently queued
	capacity int   // max queued chunks, 0 = unbounded
	closed   bool
	err      error         // terminal error, nil for a clean close
	wake     chan struct{} // closed and replaced on every state change
}

// New creates an unbounded bridge. This is the policy the engine uses:
// memory is traded for never stalling the transport's delivery goroutine.
func New() *Bridge {
	return NewBounded(0)
}

// NewBounded creates a bridge that accepts at most capacity queued chunks.
// A capacity of 0 means unbounded.
func NewBounded(capacity int) *Bridge {
	return &Bridge{
		capacity: capacity,
		wake:     make(chan struct{}),
	}
}

// Push appends a chunk to the queue. The chunk is copied, so the caller may
// reuse its buffer. Push never blocks: it returns ErrClosed after Close or
// Fail, and ErrOverflow when a bounded bridge is full. Empty chunks are
// dropped.
func (b *Bridge) Push(chunk []byte) error {
	if len(chunk) == 0 {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}
	if b.capacity > 0 && len(b.chunks) >= b.capacity {
		return ErrOverflow
	}

	c := make([]byte, len(chunk))
	copy(c, chunk)
	b.chunks = append(b.chunks, c)
	b.buffered += int64(len(c))
	b.broadcast()
	return nil
}

// Close marks a clean end-of-stream. Chunks pushed before Close remain
// drainable. Idempotent; a Close after Fail keeps the failure.
func (b *Bridge) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	b.broadcast()
}

// Fail closes the stream carrying err. The consumer observes err instead of
// io.EOF once the queue drains. The first of Close/Fail wins.
func (b *Bridge) Fail(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	b.err = err
	b.broadcast()
}

// Next returns the next chunk in FIFO order. It suspends until a chunk is
// available, the stream ends (io.EOF on a clean close, the failure error
// otherwise), or ctx is cancelled. Buffered chunks are always drainable,
// even when ctx is already cancelled: the context only gates waiting.
func (b *Bridge) Next(ctx context.Context) ([]byte, error) {
	for {
		b.mu.Lock()
		if len(b.chunks) > 0 {
			chunk := b.chunks[0]
			b.chunks = b.chunks[1:]
			b.buffered -= int64(len(chunk))
			b.mu.Unlock()
			return chunk, nil
		}
		if b.closed {
			err := b.err
			b.mu.Unlock()
			if err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
		wake := b.wake
		b.mu.Unlock()

		select {
		case <-wake:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// Buffered reports the queued chunk count and total queued bytes. Used for
// monitoring the unbounded buffering policy.
func (b *Bridge) Buffered() (chunks int, bytes int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.chunks), b.buffered
}

// broadcast wakes all waiting consumers. Caller must hold b.mu.
func (b *Bridge) broadcast() {
	close(b.wake)
	b.wake = make(chan struct{})
}
