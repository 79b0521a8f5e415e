// Package bridge relays byte chunks from a push-style producer to a
// pull-style consumer.
//
// The underlying transport delivers response bytes via callbacks on its own
// goroutine and offers no backpressure signal, so the bridge buffers
// unboundedly by default: Push never blocks the delivery goroutine. The
// consumer side pulls chunks one at a time with Next, or through the
// io.ReadCloser returned by Reader.
//
// A bridge serves exactly one transfer: one producer role (the transport
// callbacks), one consumer role (the response body). Chunk order is FIFO.
package bridge
