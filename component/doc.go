// Package component defines the core interfaces for lifecycle-managed
// infrastructure pieces of the HTTP engine.
//
// Components represent services that require startup, shutdown, and health
// monitoring: the engine itself, transports holding connection pools, and
// observability providers. A Registry starts them in registration order and
// stops them in reverse.
package component
