// Package observer provides an event-driven observer pattern for trajectory
// finder pipeline runs.
//
// # Overview
//
// The observer package implements the observer pattern to enable monitoring,
// logging, and reacting to pipeline run events. Observers can track run
// lifecycle, per-stage progress, and diagnostics without coupling to the
// pipeline implementation.
//
// # Features
//
//   - Event-driven: react to run and stage events
//   - Multiple observers: register multiple observers simultaneously
//   - Lifecycle hooks: observe every stage of a run
//   - Diagnostic events: surface non-fatal issues (dropped files, cyclic
//     input lines) without aborting the run
//   - Thread-safe: concurrent event emission
//
// # Observer Interface
//
//	type Observer interface {
//	    OnEvent(ctx context.Context, event Event)
//	}
//
// # Run Events
//
// EventRunStart:
//   - Emitted when a pipeline run begins
//   - Before ingestion
//
// EventRunEnd:
//   - Emitted when a run completes, successfully or not
//   - Event.Error is set on failure
//
// # Stage Events
//
// EventStageStart / EventStageEnd bracket each pipeline stage (ingest,
// analyze, resolve, solve, reconstruct, dedup, support).
// Event.Stage names the stage; Event.ElapsedTime is set on the end event.
//
// EventDiagnostic:
//   - Emitted for a non-fatal issue surfaced by a stage
//   - Does not abort the run
//   - Event.ProcessID is set when the diagnostic is scoped to one process
//
// # Basic Usage
//
//	import "github.com/yesoreyeram/thaiyyal/backend/pkg/observer"
//
//	obs := observer.NewConsoleObserver()
//	mgr := observer.NewManager()
//	mgr.Register(obs)
//
//	mgr.Notify(ctx, observer.Event{
//	    Type: observer.EventRunStart, Status: observer.StatusStarted,
//	    RunID: runID, Timestamp: time.Now(),
//	})
//
// # Custom Observer Example
//
//	type MetricsObserver struct {
//	    metrics MetricsCollector
//	}
//
//	func (o *MetricsObserver) OnEvent(ctx context.Context, event observer.Event) {
//	    switch event.Type {
//	    case observer.EventRunStart:
//	        o.metrics.Increment("run.started")
//	    case observer.EventRunEnd:
//	        o.metrics.Increment("run.completed")
//	    case observer.EventStageEnd:
//	        o.metrics.Histogram(event.Stage+".duration", event.ElapsedTime)
//	    }
//	}
//
// # Built-in Observers
//
// NoOpObserver:
//   - Ignores all events, the default when no observer is configured
//
// ConsoleObserver:
//   - Logs all run and stage events through a Logger
//   - Includes timing information
//
// # Observer Composition
//
// Multiple observers can be registered through a Manager:
//
//	mgr.Register(consoleObserver)
//	mgr.Register(metricsObserver)
//
// All observers receive all events. Notify runs each observer in its own
// goroutine, so neither the order across observers nor the order of
// successive events is guaranteed.
//
// # Event Timing
//
//	Run Lifecycle:
//	  EventRunStart
//	    → Stage (for each pipeline stage)
//	       EventStageStart
//	         → run stage
//	       EventStageEnd (or EventDiagnostic, any number of times)
//	  EventRunEnd
//
// # Performance Considerations
//
//   - Observers should not block; Manager.Notify dispatches each observer
//     in its own goroutine
//   - Minimize allocations in hot paths
//   - Consider observer overhead for large input sets
//
// # Error Handling
//
// Observer panics are recovered by Manager.Notify and do not affect other
// observers or the run itself.
//
// # Use Cases
//
//   - Logging and auditing
//   - Metrics collection and monitoring
//   - Progress reporting for long-running runs
//   - Debugging and troubleshooting
//
// # Thread Safety
//
// Observer methods may be called concurrently from multiple goroutines.
// Implementations must be thread-safe using appropriate synchronization.
package observer
