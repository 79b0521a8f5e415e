package engine

import (
	"io"
	"net/http"
	"time"
)

// Response is the result of an executed request. It is created exactly
// once, when the transport's terminal success callback fires.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Proto is the negotiated protocol version, "HTTP/1.1" when the
	// transport did not report one.
	Proto string
	// RequestTime is captured when the call begins.
	RequestTime time.Time
	// Header holds the response headers. Repeated header instances are
	// preserved.
	Header http.Header
	// Body is a live byte stream fed by the transfer. Draining it is
	// independent of the Execute call; closing it stops consumption only.
	Body io.ReadCloser
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}

// ReadAll drains and closes the body.
func (r *Response) ReadAll() ([]byte, error) {
	defer func() { _ = r.Body.Close() }()
	return io.ReadAll(r.Body)
}
