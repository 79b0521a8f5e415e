package engine

import (
	"net/http"
	"time"

	"github.com/kbukum/httpengine/transport"
)

// ExtSocketTimeout is the extension key for a per-request socket timeout
// override. The value is interpreted as milliseconds for integer types; a
// time.Duration is used as-is. Absence leaves the transport default
// untouched.
const ExtSocketTimeout = "socket_timeout"

// Request describes an outbound HTTP request. The engine treats it as
// immutable once passed to Execute.
type Request struct {
	// Method is the HTTP method. Defaults to GET.
	Method string
	// URL is the absolute request URL.
	URL string
	// Header holds request headers. Repeated header instances are
	// preserved. Values here win over engine defaults and content-implied
	// headers.
	Header http.Header
	// Content is the outgoing body. Nil means no body.
	Content Content
	// Extensions carries per-request overrides keyed by well-known names
	// such as ExtSocketTimeout.
	Extensions map[string]any
	// Auth overrides the engine-level auth for this request.
	Auth *AuthConfig
	// ConfigureSession is a per-call session hook applied after the
	// engine-wide hook; its changes win.
	ConfigureSession func(*transport.SessionConfig)
}

// WithSocketTimeout returns a copy of the request carrying a socket-timeout
// override in its extension map.
func (r Request) WithSocketTimeout(d time.Duration) Request {
	ext := make(map[string]any, len(r.Extensions)+1)
	for k, v := range r.Extensions {
		ext[k] = v
	}
	ext[ExtSocketTimeout] = d
	r.Extensions = ext
	return r
}

// SocketTimeout resolves the socket-timeout extension. Integer values are
// milliseconds.
func (r Request) SocketTimeout() (time.Duration, bool) {
	v, ok := r.Extensions[ExtSocketTimeout]
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case time.Duration:
		return t, true
	case int:
		return time.Duration(t) * time.Millisecond, true
	case int64:
		return time.Duration(t) * time.Millisecond, true
	case float64:
		return time.Duration(t * float64(time.Millisecond)), true
	default:
		return 0, false
	}
}
