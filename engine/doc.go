// Package engine executes single HTTP requests against a callback-driven
// transport and exposes the result as an awaitable call with a live,
// incrementally-delivered response body.
//
// The transport (see the transport package) reports progress through
// delegate callbacks on its own goroutine. The engine bridges those events
// into the caller's world: data events feed a byte stream bridge, the
// terminal event resolves the pending call exactly once, and the returned
// Response carries a bridge-backed body the caller drains at its own pace.
//
// # Basic Usage
//
//	eng, err := engine.New(engine.Config{Name: "api"}, nil)
//
//	resp, err := eng.Execute(ctx, engine.Request{
//	    Method:  http.MethodPost,
//	    URL:     "https://api.example.com/items",
//	    Content: engine.TextContent("hello"),
//	})
//	if err != nil {
//	    // engine.IsTimeout(err), engine.IsCancelled(err), ...
//	}
//	body, err := resp.ReadAll()
//
// Redirects are never followed automatically; the redirect response itself
// is returned. Retry policy belongs to callers, which can classify
// failures with IsTimeout and IsRetryable.
package engine
