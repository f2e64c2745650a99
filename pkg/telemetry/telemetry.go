package telemetry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName = "trajfinder"

	metricRunsTotal         = "pipeline.runs.total"
	metricRunDuration       = "pipeline.run.duration"
	metricRunSuccess        = "pipeline.runs.success.total"
	metricRunFailure        = "pipeline.runs.failure.total"
	metricDAGsIngested      = "pipeline.dags.ingested.total"
	metricPairsAnalyzed     = "pipeline.pairs.analyzed.total"
	metricConflictEdges     = "pipeline.conflict_edges.total"
	metricPolicyReinstated  = "pipeline.policy.reinstated_edges.total"
	metricSolutionPoolSize  = "pipeline.solution_pool.size"
	metricTrajectoriesTotal = "pipeline.trajectories.emitted.total"
	metricSupportDuration   = "pipeline.support.duration"
)

// Provider manages OpenTelemetry setup and provides access to the
// tracer and the pipeline-stage metric instruments.
type Provider struct {
	meterProvider  *sdkmetric.MeterProvider
	tracerProvider trace.TracerProvider
	meter          metric.Meter
	tracer         trace.Tracer

	runsTotal         metric.Int64Counter
	runDuration       metric.Float64Histogram
	runSuccess        metric.Int64Counter
	runFailure        metric.Int64Counter
	dagsIngested      metric.Int64Counter
	pairsAnalyzed     metric.Int64Counter
	conflictEdges     metric.Int64Counter
	policyReinstated  metric.Int64Counter
	solutionPoolSize  metric.Int64Histogram
	trajectoriesTotal metric.Int64Counter
	supportDuration   metric.Float64Histogram

	mu sync.RWMutex
}

// Config holds telemetry configuration.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	EnableTracing  bool
	EnableMetrics  bool
}

// DefaultConfig returns default telemetry configuration.
func DefaultConfig() Config {
	return Config{
		ServiceName:    serviceName,
		ServiceVersion: "0.1.0",
		Environment:    "development",
		EnableTracing:  true,
		EnableMetrics:  true,
	}
}

// NewProvider creates a new telemetry provider with a Prometheus metrics
// exporter, initializing OpenTelemetry with the given configuration.
func NewProvider(ctx context.Context, config Config) (*Provider, error) {
	provider := &Provider{}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(config.ServiceName),
			semconv.ServiceVersion(config.ServiceVersion),
			attribute.String("environment", config.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	if config.EnableMetrics {
		if err := provider.initMetrics(res); err != nil {
			return nil, fmt.Errorf("failed to initialize metrics: %w", err)
		}
	}

	if config.EnableTracing {
		provider.initTracing()
	}

	return provider, nil
}

func (p *Provider) initMetrics(res *resource.Resource) error {
	exporter, err := prometheus.New()
	if err != nil {
		return fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	p.meterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(p.meterProvider)
	p.meter = p.meterProvider.Meter(serviceName)

	if err := p.createMetricInstruments(); err != nil {
		return fmt.Errorf("failed to create metric instruments: %w", err)
	}
	return nil
}

func (p *Provider) initTracing() {
	p.tracerProvider = otel.GetTracerProvider()
	p.tracer = p.tracerProvider.Tracer(serviceName)
}

func (p *Provider) createMetricInstruments() error {
	var err error

	if p.runsTotal, err = p.meter.Int64Counter(metricRunsTotal,
		metric.WithDescription("Total number of pipeline runs")); err != nil {
		return err
	}
	if p.runDuration, err = p.meter.Float64Histogram(metricRunDuration,
		metric.WithDescription("Pipeline run duration in milliseconds"), metric.WithUnit("ms")); err != nil {
		return err
	}
	if p.runSuccess, err = p.meter.Int64Counter(metricRunSuccess,
		metric.WithDescription("Total number of successful pipeline runs")); err != nil {
		return err
	}
	if p.runFailure, err = p.meter.Int64Counter(metricRunFailure,
		metric.WithDescription("Total number of failed pipeline runs")); err != nil {
		return err
	}
	if p.dagsIngested, err = p.meter.Int64Counter(metricDAGsIngested,
		metric.WithDescription("Total number of input DAGs ingested")); err != nil {
		return err
	}
	if p.pairsAnalyzed, err = p.meter.Int64Counter(metricPairsAnalyzed,
		metric.WithDescription("Total number of DAG pairs analysed for conflicts")); err != nil {
		return err
	}
	if p.conflictEdges, err = p.meter.Int64Counter(metricConflictEdges,
		metric.WithDescription("Total number of conflict edges found in the union graph")); err != nil {
		return err
	}
	if p.policyReinstated, err = p.meter.Int64Counter(metricPolicyReinstated,
		metric.WithDescription("Total number of potential conflicts reinstated by a resolution policy")); err != nil {
		return err
	}
	if p.solutionPoolSize, err = p.meter.Int64Histogram(metricSolutionPoolSize,
		metric.WithDescription("Size of the ILP's optimal solution pool per run")); err != nil {
		return err
	}
	if p.trajectoriesTotal, err = p.meter.Int64Counter(metricTrajectoriesTotal,
		metric.WithDescription("Total number of trajectories emitted after deduplication")); err != nil {
		return err
	}
	if p.supportDuration, err = p.meter.Float64Histogram(metricSupportDuration,
		metric.WithDescription("Support computation duration in milliseconds"), metric.WithUnit("ms")); err != nil {
		return err
	}
	return nil
}

// Tracer returns the tracer for creating spans.
func (p *Provider) Tracer() trace.Tracer {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.tracer
}

// Meter returns the meter for recording metrics.
func (p *Provider) Meter() metric.Meter {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.meter
}

// RecordRun records metrics for one end-to-end pipeline run.
func (p *Provider) RecordRun(ctx context.Context, runID string, duration time.Duration, success bool, trajectoriesEmitted int) {
	if p.meter == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String("run.id", runID),
		attribute.Int("trajectories.emitted", trajectoriesEmitted),
	}
	p.runsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	p.runDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	if success {
		p.runSuccess.Add(ctx, 1, metric.WithAttributes(attrs...))
	} else {
		p.runFailure.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordIngest records the number of DAGs ingested for one process.
func (p *Provider) RecordIngest(ctx context.Context, processID string, dagCount int) {
	if p.meter == nil {
		return
	}
	p.dagsIngested.Add(ctx, int64(dagCount), metric.WithAttributes(attribute.String("process.id", processID)))
}

// RecordConflictAnalysis records the outcome of the pairwise conflict
// analysis and assembly stages for one run.
func (p *Provider) RecordConflictAnalysis(ctx context.Context, pairsAnalyzed, conflictEdges, reinstated int) {
	if p.meter == nil {
		return
	}
	p.pairsAnalyzed.Add(ctx, int64(pairsAnalyzed))
	p.conflictEdges.Add(ctx, int64(conflictEdges))
	p.policyReinstated.Add(ctx, int64(reinstated))
}

// RecordSolutionPool records the size of one run's ILP solution pool.
func (p *Provider) RecordSolutionPool(ctx context.Context, poolSize int) {
	if p.meter == nil {
		return
	}
	p.solutionPoolSize.Record(ctx, int64(poolSize))
}

// RecordTrajectories records the number of trajectories emitted after
// deduplication, and the duration of the support computation stage.
func (p *Provider) RecordTrajectories(ctx context.Context, count int, supportDuration time.Duration) {
	if p.meter == nil {
		return
	}
	p.trajectoriesTotal.Add(ctx, int64(count))
	p.supportDuration.Record(ctx, float64(supportDuration.Milliseconds()))
}

// Shutdown gracefully shuts down the telemetry provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.meterProvider != nil {
		if err := p.meterProvider.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown meter provider: %w", err)
		}
	}
	return nil
}
