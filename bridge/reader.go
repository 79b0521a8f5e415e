package bridge

import (
	"context"
	"errors"
	"io"
	"sync"
)

// ErrReaderClosed is returned by Read after the reader has been closed.
var ErrReaderClosed = errors.New("bridge: reader closed")

// Reader adapts the bridge to io.ReadCloser so it can serve as a response
// body. Reads run on the caller's goroutine; draining happens pull by pull
// rather than through a background copier.
//
// ctx bounds how long a Read may wait for the next chunk. Closing the
// reader stops consumption only; it does not disturb the producer side.
func (b *Bridge) Reader(ctx context.Context) io.ReadCloser {
	return &reader{bridge: b, ctx: ctx}
}

type reader struct {
	bridge *Bridge
	ctx    context.Context

	mu     sync.Mutex
	rest   []byte // unread tail of the current chunk
	closed bool
	err    error // sticky terminal error
}

func (r *reader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0, ErrReaderClosed
	}
	if len(r.rest) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		chunk, err := r.bridge.Next(r.ctx)
		if err != nil {
			r.err = err
			return 0, err
		}
		r.rest = chunk
	}

	n := copy(p, r.rest)
	r.rest = r.rest[n:]
	return n, nil
}

// Close stops consumption. Subsequent reads fail with ErrReaderClosed.
func (r *reader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.rest = nil
	return nil
}
