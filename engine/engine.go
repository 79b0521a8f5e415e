package engine

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/httpengine/bridge"
	"github.com/kbukum/httpengine/logger"
	"github.com/kbukum/httpengine/transport"
	"github.com/kbukum/httpengine/transport/nethttp"
	"github.com/kbukum/httpengine/version"
)

const instrumentationName = "github.com/kbukum/httpengine/engine"

// Engine executes single HTTP requests against a callback-driven transport,
// bridging its delegate events into an awaitable call with a streamed
// response body.
type Engine struct {
	config    Config
	transport transport.Transport
	proxy     *url.URL
	log       *logger.Logger
	tracer    trace.Tracer

	calls    metric.Int64Counter
	errors   metric.Int64Counter
	rxBytes  metric.Int64Counter
	duration metric.Float64Histogram
}

// New creates an engine with the given configuration. A nil transport
// selects the net/http-backed default.
func New(cfg Config, t transport.Transport) (*Engine, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if t == nil {
		t = nethttp.New()
	}

	meter := otel.Meter(instrumentationName)
	calls, _ := meter.Int64Counter("httpengine.calls",
		metric.WithDescription("Executed calls"))
	errs, _ := meter.Int64Counter("httpengine.errors",
		metric.WithDescription("Failed calls by error code"))
	rx, _ := meter.Int64Counter("httpengine.received_bytes",
		metric.WithDescription("Response body bytes delivered by the transport"),
		metric.WithUnit("By"))
	dur, _ := meter.Float64Histogram("httpengine.call_duration",
		metric.WithDescription("Call duration until the terminal event"),
		metric.WithUnit("ms"))

	return &Engine{
		config:    cfg,
		transport: t,
		proxy:     cfg.proxyURL(),
		log:       logger.Get(cfg.Name),
		tracer:    otel.Tracer(instrumentationName),
		calls:     calls,
		errors:    errs,
		rxBytes:   rx,
		duration:  dur,
	}, nil
}

// Execute runs one request to its terminal event. It suspends the calling
// goroutine until the transport reports success or failure, and returns a
// Response whose body is a live stream the caller drains independently.
//
// Cancelling ctx before the terminal event issues a best-effort transport
// cancel and resolves the call with ErrCodeCancelled; cancelling after the
// Response exists affects body consumption only.
func (e *Engine) Execute(ctx context.Context, req Request) (*Response, error) {
	requestTime := time.Now()
	callID := uuid.NewString()
	log := e.log.WithFields(map[string]interface{}{
		logger.FieldCallID: callID,
		logger.FieldMethod: req.Method,
		logger.FieldURL:    req.URL,
	})

	ctx, span := e.tracer.Start(ctx, "engine.execute",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.full", req.URL),
		))
	defer span.End()

	resp, err := e.execute(ctx, req, requestTime, log)

	elapsed := time.Since(requestTime)
	e.calls.Add(ctx, 1)
	e.duration.Record(ctx, float64(elapsed.Milliseconds()))
	if err != nil {
		code := "unknown"
		var ee *Error
		if errors.As(err, &ee) {
			code = ee.Code.String()
		}
		e.errors.Add(ctx, 1, metric.WithAttributes(attribute.String("error.code", code)))
		span.RecordError(err)
		span.SetStatus(codes.Error, code)
		log.Warn("call failed", logger.Fields("error", err.Error(), "duration_ms", elapsed.Milliseconds()))
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	log.Debug("call completed", logger.Fields("status", resp.StatusCode, "duration_ms", elapsed.Milliseconds()))
	return resp, nil
}

// execute drives one call through the per-call state machine:
// Configuring -> AwaitingBody -> InFlight -> Terminal.
func (e *Engine) execute(ctx context.Context, req Request, requestTime time.Time, log *logger.Logger) (*Response, error) {
	// Configuring: engine-wide hook first, per-call hook wins.
	scfg := transport.SessionConfig{
		Proxy:                 e.proxy,
		DisableCaching:        true,
		EnableH2C:             e.config.EnableH2C,
		InsecureSkipTLSVerify: e.config.InsecureSkipTLSVerify,
	}
	if e.config.ConfigureSession != nil {
		e.config.ConfigureSession(&scfg)
	}
	if req.ConfigureSession != nil {
		req.ConfigureSession(&scfg)
	}

	sess, err := e.transport.OpenSession(scfg)
	if err != nil {
		return nil, NewTransportError(err)
	}

	sub := transport.SubmitRequest{
		Method: req.Method,
		URL:    req.URL,
		Header: make(http.Header),
	}
	if sub.Method == "" {
		sub.Method = http.MethodGet
	}
	for k, v := range e.config.Headers {
		sub.Header.Set(k, v)
	}

	// AwaitingBody: submission waits for the encoder.
	content := req.Content
	if content == nil {
		content = NoContent{}
	}
	body, err := encodeContent(ctx, content)
	if err != nil {
		_ = sess.Close()
		return nil, err
	}
	sub.Body = body
	if ct := content.ContentType(); ct != "" {
		sub.Header.Set("Content-Type", ct)
	}
	// Descriptor headers win over defaults and content-implied values.
	for k, vs := range req.Header {
		sub.Header.Del(k)
		for _, v := range vs {
			sub.Header.Add(k, v)
		}
	}

	auth := e.config.Auth
	if req.Auth != nil {
		auth = req.Auth
	}
	auth.apply(&sub)

	if d, ok := req.SocketTimeout(); ok {
		sub.Timeout = d
	}
	if sub.Header.Get("User-Agent") == "" {
		sub.Header.Set("User-Agent", version.UserAgent())
	}
	if e.config.ConfigureRequest != nil {
		e.config.ConfigureRequest(&sub)
	}

	// InFlight.
	br := bridge.New()
	asm := newAssembler(requestTime, br, ctx, log, func(n int64) {
		e.rxBytes.Add(context.Background(), n)
	})

	handle, err := sess.Submit(sub, asm)
	if err != nil {
		_ = sess.Close()
		return nil, NewInvalidRequestError(err)
	}
	asm.setCancel(handle.Cancel)

	// Cancellation wins only if it claims the terminal slot first; a
	// racing native completion is then dropped.
	stop := context.AfterFunc(ctx, func() {
		cerr := NewCancelledError(context.Cause(ctx))
		if asm.resolve(nil, cerr) {
			br.Fail(cerr)
			handle.Cancel()
		}
	})
	defer stop()

	// Terminal: all data events precede the terminal callback, so the
	// bridge is fully fed (and closed or failed) by the time this returns.
	<-asm.done
	_ = sess.Close()
	return asm.resp, asm.err
}
