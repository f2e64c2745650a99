package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yesoreyeram/thaiyyal/backend/pkg/observer"
)

// TelemetryObserver implements observer.Observer and records telemetry data
// for pipeline run and stage events.
type TelemetryObserver struct {
	provider *Provider

	// mu serialises OnEvent, since Manager.Notify delivers events from
	// concurrent goroutines.
	mu sync.Mutex

	// Track active spans for the run and its stages
	runSpan    trace.Span
	stageSpans map[string]trace.Span

	// Track execution times
	runStartTime   time.Time
	stageStartTime map[string]time.Time
}

// NewTelemetryObserver creates a new telemetry observer
func NewTelemetryObserver(provider *Provider) *TelemetryObserver {
	return &TelemetryObserver{
		provider:       provider,
		stageSpans:     make(map[string]trace.Span),
		stageStartTime: make(map[string]time.Time),
	}
}

// OnEvent handles execution events and records telemetry data
func (o *TelemetryObserver) OnEvent(ctx context.Context, event observer.Event) {
	o.mu.Lock()
	defer o.mu.Unlock()
	switch event.Type {
	case observer.EventRunStart:
		o.handleRunStart(ctx, event)
	case observer.EventRunEnd:
		o.handleRunEnd(ctx, event)
	case observer.EventStageStart:
		o.handleStageStart(ctx, event)
	case observer.EventStageEnd:
		o.handleStageEnd(ctx, event)
	case observer.EventDiagnostic:
		o.handleDiagnostic(ctx, event)
	}
}

func (o *TelemetryObserver) handleRunStart(ctx context.Context, event observer.Event) {
	_, span := o.provider.Tracer().Start(ctx, "pipeline.run",
		trace.WithAttributes(
			attribute.String("run.id", event.RunID),
		),
	)

	o.runSpan = span
	o.runStartTime = event.Timestamp
}

func (o *TelemetryObserver) handleRunEnd(ctx context.Context, event observer.Event) {
	duration := time.Since(o.runStartTime)

	trajectoriesEmitted := 0
	if val, ok := event.Metadata["trajectories_emitted"]; ok {
		if count, ok := val.(int); ok {
			trajectoriesEmitted = count
		}
	}

	success := event.Status == observer.StatusSuccess
	o.provider.RecordRun(ctx, event.RunID, duration, success, trajectoriesEmitted)

	if o.runSpan != nil {
		if event.Error != nil {
			o.runSpan.RecordError(event.Error)
			o.runSpan.SetStatus(codes.Error, event.Error.Error())
		} else {
			o.runSpan.SetStatus(codes.Ok, "run completed successfully")
		}
		o.runSpan.End()
	}
}

func (o *TelemetryObserver) handleStageStart(ctx context.Context, event observer.Event) {
	var spanCtx context.Context
	if o.runSpan != nil {
		spanCtx = trace.ContextWithSpan(ctx, o.runSpan)
	} else {
		spanCtx = ctx
	}

	_, span := o.provider.Tracer().Start(spanCtx, "pipeline.stage."+event.Stage,
		trace.WithAttributes(
			attribute.String("stage", event.Stage),
			attribute.String("run.id", event.RunID),
		),
	)

	o.stageSpans[event.Stage] = span
	o.stageStartTime[event.Stage] = event.Timestamp
}

func (o *TelemetryObserver) handleStageEnd(ctx context.Context, event observer.Event) {
	if startTime, ok := o.stageStartTime[event.Stage]; ok {
		if event.Stage == "support" {
			count := 0
			if val, ok := event.Metadata["trajectories_emitted"]; ok {
				if c, ok := val.(int); ok {
					count = c
				}
			}
			o.provider.RecordTrajectories(ctx, count, time.Since(startTime))
		}
		delete(o.stageStartTime, event.Stage)
	}

	if span, ok := o.stageSpans[event.Stage]; ok {
		if event.Error != nil {
			span.RecordError(event.Error)
			span.SetStatus(codes.Error, event.Error.Error())
		} else {
			span.SetStatus(codes.Ok, "stage completed successfully")
		}
		span.End()
		delete(o.stageSpans, event.Stage)
	}
}

func (o *TelemetryObserver) handleDiagnostic(ctx context.Context, event observer.Event) {
	if span, ok := o.stageSpans[event.Stage]; ok {
		span.AddEvent("diagnostic", trace.WithAttributes(
			attribute.String("process.id", event.ProcessID),
		))
	}
}
