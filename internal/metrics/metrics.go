package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the instruments shared by the orchestrator components. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	errors       metric.Int64Counter
	polls        metric.Int64Counter
	stepDuration metric.Int64Histogram
}

func New(meter metric.Meter) (*Metrics, error) {
	errors, err := meter.Int64Counter("errors", metric.WithDescription("errors returned by remote calls"))
	if err != nil {
		return nil, fmt.Errorf("failed to create errors counter: %w", err)
	}

	polls, err := meter.Int64Counter("polls", metric.WithDescription("poll ticks while waiting for remote state"))
	if err != nil {
		return nil, fmt.Errorf("failed to create polls counter: %w", err)
	}

	stepDuration, err := meter.Int64Histogram("step_duration", metric.WithDescription("duration of orchestration steps"), metric.WithUnit("ms"))
	if err != nil {
		return nil, fmt.Errorf("failed to create step_duration histogram: %w", err)
	}

	return &Metrics{
		errors:       errors,
		polls:        polls,
		stepDuration: stepDuration,
	}, nil
}

// Error counts an error returned to component
func (m *Metrics) Error(ctx context.Context, component string) {
	if m == nil {
		return
	}
	m.errors.Add(ctx, 1, metric.WithAttributes(attribute.String("component", component)))
}

// Poll counts one poll tick of the named wait loop
func (m *Metrics) Poll(ctx context.Context, loop string) {
	if m == nil {
		return
	}
	m.polls.Add(ctx, 1, metric.WithAttributes(attribute.String("loop", loop)))
}

// ObserveStep records the time since start for the named step
func (m *Metrics) ObserveStep(ctx context.Context, step string, start time.Time) {
	if m == nil {
		return
	}
	m.stepDuration.Record(ctx, time.Since(start).Milliseconds(), metric.WithAttributes(attribute.String("step", step)))
}
