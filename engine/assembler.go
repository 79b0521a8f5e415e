package engine

import (
	"context"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/kbukum/httpengine/bridge"
	"github.com/kbukum/httpengine/logger"
	"github.com/kbukum/httpengine/transport"
)

// assembler is the per-call transport delegate. It forwards data events to
// the bridge and builds the Response from the terminal callback, resolving
// the pending call exactly once.
type assembler struct {
	bridge      *bridge.Bridge
	requestTime time.Time
	bodyCtx     context.Context
	log         *logger.Logger
	onBytes     func(int64)

	// resolved guards the terminal slot: only the first of
	// {success, failure, cancellation} wins.
	resolved atomic.Bool
	done     chan struct{}
	resp     *Response
	err      error

	// cancelTransfer is set once the transfer handle exists. Used to stop
	// the transfer on a backpressure violation.
	cancelTransfer atomic.Value // of func()
}

var _ transport.Delegate = (*assembler)(nil)

func newAssembler(requestTime time.Time, br *bridge.Bridge, bodyCtx context.Context, log *logger.Logger, onBytes func(int64)) *assembler {
	return &assembler{
		bridge:      br,
		requestTime: requestTime,
		bodyCtx:     bodyCtx,
		log:         log,
		onBytes:     onBytes,
		done:        make(chan struct{}),
	}
}

// resolve claims the terminal slot. Returns false if the call already
// resolved, in which case resp and err are discarded.
func (a *assembler) resolve(resp *Response, err error) bool {
	if !a.resolved.CompareAndSwap(false, true) {
		return false
	}
	a.resp = resp
	a.err = err
	close(a.done)
	return true
}

// setCancel registers the transfer's cancellation handle.
func (a *assembler) setCancel(fn func()) {
	a.cancelTransfer.Store(fn)
}

// OnData forwards a chunk to the bridge. A rejected chunk on a full bridge
// is a protocol violation that fails the whole call; chunks arriving after
// the terminal event are dropped.
func (a *assembler) OnData(chunk []byte) {
	if a.onBytes != nil {
		a.onBytes(int64(len(chunk)))
	}
	switch err := a.bridge.Push(chunk); err {
	case nil, bridge.ErrClosed:
	case bridge.ErrOverflow:
		berr := NewBackpressureError()
		a.bridge.Fail(berr)
		if a.resolve(nil, berr) {
			a.log.Error("bridge overflow, failing call")
			if fn, ok := a.cancelTransfer.Load().(func()); ok {
				fn()
			}
		}
	}
}

// OnRedirect always suppresses automatic redirect following. Redirect
// policy belongs to a higher layer; the redirect response becomes the
// transfer's terminal response.
func (a *assembler) OnRedirect(status int, _ http.Header, location *url.URL) transport.RedirectDecision {
	loc := ""
	if location != nil {
		loc = location.String()
	}
	a.log.Debug("redirect suppressed", logger.Fields(
		"status", status,
		"location", loc,
	))
	return transport.NoRedirect
}

// OnComplete handles the terminal event. On failure the bridge is failed so
// a partial consumer observes the error; on success the bridge is closed
// and the Response is built with a bridge-backed body stream.
func (a *assembler) OnComplete(status int, proto string, header http.Header, err error) {
	if err != nil {
		terr := classifyTransport(err)
		a.bridge.Fail(terr)
		a.resolve(nil, terr)
		return
	}

	a.bridge.Close()
	if proto == "" {
		proto = "HTTP/1.1"
	}
	h := header.Clone()
	if h == nil {
		h = make(http.Header)
	}
	a.resolve(&Response{
		StatusCode:  status,
		Proto:       proto,
		RequestTime: a.requestTime,
		Header:      h,
		Body:        a.bridge.Reader(a.bodyCtx),
	}, nil)
}
