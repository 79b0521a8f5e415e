// Package nethttp implements the transport boundary over net/http.
//
// Each session wraps a one-shot http.Client. The transfer runs on its own
// goroutine and reports progress through the delegate callbacks, which is
// the shape the engine expects from a platform networking stack.
package nethttp

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net"
	"net/http"

	"golang.org/x/net/http2"

	"github.com/kbukum/httpengine/transport"
)

// readBufferSize is the chunk size for delegate data delivery.
const readBufferSize = 32 * 1024

// Transport is the net/http-backed transport.
type Transport struct{}

// compile-time assertion
var _ transport.Transport = (*Transport)(nil)

// New creates a net/http transport.
func New() *Transport {
	return &Transport{}
}

// OpenSession builds a session from the given configuration.
func (t *Transport) OpenSession(cfg transport.SessionConfig) (transport.Session, error) {
	var rt http.RoundTripper

	if cfg.EnableH2C {
		// Cleartext HTTP/2 dials the origin directly; there is no CONNECT
		// tunnel to route through and no TLS handshake to relax, so a proxy
		// cannot be honored here. Reject instead of silently dropping it.
		if cfg.Proxy != nil {
			return nil, errors.New("nethttp: proxy is not supported with h2c sessions")
		}
		rt = &http2.Transport{
			AllowHTTP: true,
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return (&net.Dialer{}).DialContext(ctx, network, addr)
			},
		}
	} else {
		tr := http.DefaultTransport.(*http.Transport).Clone()
		if cfg.Proxy != nil {
			tr.Proxy = http.ProxyURL(cfg.Proxy)
		}
		if cfg.InsecureSkipTLSVerify {
			tr.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		}
		rt = tr
	}

	return &session{rt: rt, disableCaching: cfg.DisableCaching}, nil
}

type session struct {
	rt             http.RoundTripper
	disableCaching bool
}

// Submit starts the transfer goroutine and returns its cancellation handle.
func (s *session) Submit(req transport.SubmitRequest, d transport.Delegate) (transport.Handle, error) {
	ctx := context.Background()
	var cancel context.CancelFunc
	if req.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		cancel()
		return nil, err
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if s.disableCaching && httpReq.Header.Get("Cache-Control") == "" {
		httpReq.Header.Set("Cache-Control", "no-cache")
	}

	client := &http.Client{
		Transport: s.rt,
		CheckRedirect: func(r *http.Request, _ []*http.Request) error {
			prev := r.Response
			if d.OnRedirect(prev.StatusCode, prev.Header, r.URL) == transport.FollowRedirect {
				return nil
			}
			// The redirect response itself becomes the terminal response.
			return http.ErrUseLastResponse
		},
	}

	go run(client, httpReq, d, cancel)
	return handle{cancel: cancel}, nil
}

// Close releases idle connections held by the session's transport.
func (s *session) Close() error {
	if tr, ok := s.rt.(*http.Transport); ok {
		tr.CloseIdleConnections()
	}
	return nil
}

// run performs the transfer and drives the delegate. Exactly one OnComplete
// is delivered, after all OnData calls.
func run(client *http.Client, req *http.Request, d transport.Delegate, cancel context.CancelFunc) {
	defer cancel()

	resp, err := client.Do(req)
	if err != nil {
		d.OnComplete(0, "", nil, err)
		return
	}
	defer func() { _ = resp.Body.Close() }()

	buf := make([]byte, readBufferSize)
	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			d.OnData(buf[:n])
		}
		if err == io.EOF {
			d.OnComplete(resp.StatusCode, resp.Proto, resp.Header, nil)
			return
		}
		if err != nil {
			d.OnComplete(0, "", nil, err)
			return
		}
	}
}

type handle struct {
	cancel context.CancelFunc
}

// Cancel aborts the in-flight transfer. Advisory: the terminal OnComplete
// still fires, carrying the cancellation as its error.
func (h handle) Cancel() {
	h.cancel()
}
