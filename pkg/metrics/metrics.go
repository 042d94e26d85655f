// Package metrics holds the OpenTelemetry instruments recorded by the password
// service and the prometheus-backed meter provider used by the API server.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const meterName = "passgen"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// attemptBuckets covers the retry loop up to its default cap.
var attemptBuckets = []float64{1, 2, 3, 5, 10, 25, 50, 100} //nolint: gochecknoglobals

// NewPrometheusProvider returns a meter provider whose readings are exposed
// through reg.
func NewPrometheusProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// Instruments records password service activity.
type Instruments struct {
	generated metric.Int64Counter
	failures  metric.Int64Counter
	attempts  metric.Int64Histogram
	duration  metric.Float64Histogram
}

// NewInstruments registers the instruments on mp. A nil provider yields
// instruments that record nothing.
func NewInstruments(mp metric.MeterProvider) (*Instruments, error) {
	if mp == nil {
		mp = noop.NewMeterProvider()
	}
	meter := mp.Meter(meterName)

	generated, err := meter.Int64Counter("passgen.passwords.generated",
		metric.WithDescription("Number of generated passwords by strength."),
		metric.WithUnit("{password}"))
	if err != nil {
		return nil, fmt.Errorf("could not create generated counter: %w", err)
	}

	failures, err := meter.Int64Counter("passgen.generation.failures",
		metric.WithDescription("Number of failed generation requests by reason."),
		metric.WithUnit("{request}"))
	if err != nil {
		return nil, fmt.Errorf("could not create failures counter: %w", err)
	}

	attempts, err := meter.Int64Histogram("passgen.generation.attempts",
		metric.WithDescription("Samples drawn until a password covered every requested class."),
		metric.WithUnit("{attempt}"),
		metric.WithExplicitBucketBoundaries(attemptBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create attempts histogram: %w", err)
	}

	duration, err := meter.Float64Histogram("passgen.operation.duration",
		metric.WithDescription("Duration of service operations."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &Instruments{
		generated: generated,
		failures:  failures,
		attempts:  attempts,
		duration:  duration,
	}, nil
}

// PasswordGenerated records one generated password.
func (i *Instruments) PasswordGenerated(ctx context.Context, strength string, attempts int) {
	i.generated.Add(ctx, 1, metric.WithAttributes(attribute.String("strength", strength)))
	i.attempts.Record(ctx, int64(attempts))
}

// GenerationFailed records a rejected or failed generation request.
func (i *Instruments) GenerationFailed(ctx context.Context, reason string) {
	i.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

// ObserveDuration records how long operation took since start.
func (i *Instruments) ObserveDuration(ctx context.Context, operation string, start time.Time) {
	i.duration.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("operation", operation)))
}
