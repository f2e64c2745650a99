// Package server provides an optional HTTP API server for the trajectory
// finder pipeline. It enables programmatic access to the pipeline with
// support for:
//   - A trajectory-computation endpoint that accepts input DAGs as JSON
//   - Health check and readiness endpoints
//   - Prometheus metrics endpoint
//   - Request/response logging and tracing
//   - Graceful shutdown
package server
