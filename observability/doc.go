// Package observability bootstraps OpenTelemetry tracing and metrics for
// applications embedding the HTTP engine.
//
// The engine instruments itself through the global otel providers; this
// package wires those providers to OTLP HTTP exporters. Without
// initialization the engine's spans and instruments are no-ops.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"))
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-service"))
//	defer mp.Shutdown(ctx)
package observability
