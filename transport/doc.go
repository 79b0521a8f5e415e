// Package transport defines the boundary between the HTTP engine and the
// underlying networking stack.
//
// The engine drives a transport through a narrow request/response/cancel
// protocol: open a session, submit one request with a Delegate, optionally
// cancel. The transport owns sockets, DNS, TLS, and connection pooling, and
// reports back exclusively through the delegate callbacks on its own
// goroutine.
//
// The nethttp subpackage provides the production implementation over
// net/http. Tests supply their own mock transports.
package transport
