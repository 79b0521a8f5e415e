package transport

import (
	"net/http"
	"net/url"
	"time"
)

// Transport opens per-call sessions against an underlying networking stack.
type Transport interface {
	// OpenSession creates a session configured with cfg. Sessions are
	// cheap; the engine opens one per call.
	OpenSession(cfg SessionConfig) (Session, error)
}

// SessionConfig carries the per-session settings the engine controls.
// Configuration hooks may mutate it before the session is opened.
type SessionConfig struct {
	// Proxy routes the transfer through the given proxy URL. Nil falls
	// back to the transport's environment-based default.
	Proxy *url.URL
	// DisableCaching opts the transfer out of any response caching.
	DisableCaching bool
	// EnableH2C uses cleartext HTTP/2 instead of HTTP/1.1.
	EnableH2C bool
	// InsecureSkipTLSVerify disables server certificate verification.
	// Development only.
	InsecureSkipTLSVerify bool
}

// Session executes a single request submission.
type Session interface {
	// Submit starts the transfer and returns a cancellation handle. All
	// further progress is reported through d on the transport's own
	// goroutine: zero or more OnData calls, at most one OnRedirect per
	// hop, and exactly one OnComplete.
	Submit(req SubmitRequest, d Delegate) (Handle, error)
	// Close releases session resources. Safe after the transfer finished.
	Close() error
}

// SubmitRequest is the fully-encoded request handed to the transport. The
// body must be complete at submission time; the protocol has no streaming
// upload.
type SubmitRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
	// Timeout bounds the whole transfer. Zero keeps the transport default.
	Timeout time.Duration
}

// Handle cancels an in-flight submission. Cancel is advisory and
// non-blocking: the transport stops as soon as it can, and still delivers
// the terminal OnComplete.
type Handle interface {
	Cancel()
}

// RedirectDecision answers an OnRedirect callback.
type RedirectDecision int

const (
	// NoRedirect stops automatic following; the redirect response itself
	// becomes the transfer's terminal response.
	NoRedirect RedirectDecision = iota
	// FollowRedirect lets the transport follow the redirect.
	FollowRedirect
)

// Delegate receives transfer events. Implementations must be safe to call
// from the transport's goroutine while the submitting goroutine runs
// concurrently.
type Delegate interface {
	// OnData delivers the next body chunk. The transport may reuse the
	// buffer after the call returns.
	OnData(chunk []byte)
	// OnRedirect reports a redirect response and asks whether to follow.
	OnRedirect(status int, header http.Header, location *url.URL) RedirectDecision
	// OnComplete is the terminal event. On success err is nil and status,
	// proto, and header describe the final response; on failure err is
	// non-nil and the rest is zero. Called exactly once, after all OnData
	// calls for the transfer.
	OnComplete(status int, proto string, header http.Header, err error)
}
