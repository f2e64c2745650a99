// Package telemetry provides OpenTelemetry integration for distributed
// tracing and metrics on the trajectory finder pipeline. It exposes:
//   - Distributed tracing with trace IDs and span context propagation
//   - Prometheus metrics for run, ingestion, conflict-analysis,
//     solution-pool, and trajectory-emission statistics
//   - Custom metrics exporters and collectors
package telemetry
