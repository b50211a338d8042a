// Package metrics collects per-round game metrics with OpenTelemetry
// instruments exported into a private Prometheus registry, so a run can dump
// its totals in the Prometheus text format when it finishes.
package metrics

import (
	"context"
	"fmt"
	"io"
	"montyhall/pkg/domain"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides histogram buckets in seconds for round durations.
// Simulated rounds land in the first bucket, interactive ones spread out.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60} //nolint: gochecknoglobals

const meterName = "montyhall"

// Metrics holds the instruments recorded after every round. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry
	provider *sdkmetric.MeterProvider

	rounds        metric.Int64Counter
	switchWins    metric.Int64Counter
	roundDuration metric.Float64Histogram
}

// New creates the meter provider, its Prometheus exporter and the round
// instruments.
func New() (*Metrics, error) {
	registry := prometheus.NewRegistry()

	exp, err := otelprom.New(otelprom.WithRegisterer(registry), otelprom.WithoutTargetInfo())
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	meter := provider.Meter(meterName)

	m := &Metrics{registry: registry, provider: provider}

	m.rounds, err = meter.Int64Counter("montyhall_rounds",
		metric.WithDescription("Rounds played, by mode, decision and result."),
		metric.WithUnit("{round}"))
	if err != nil {
		return nil, fmt.Errorf("could not create rounds counter: %w", err)
	}

	m.switchWins, err = meter.Int64Counter("montyhall_switch_wins",
		metric.WithDescription("Rounds in which switching doors would have won."),
		metric.WithUnit("{round}"))
	if err != nil {
		return nil, fmt.Errorf("could not create switch wins counter: %w", err)
	}

	m.roundDuration, err = meter.Float64Histogram("montyhall_round_duration",
		metric.WithDescription("Wall time spent playing one round, including waiting for input."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create round duration histogram: %w", err)
	}

	return m, nil
}

// RecordRound records one completed round.
func (m *Metrics) RecordRound(ctx context.Context, simulated bool, outcome domain.Outcome, elapsed time.Duration) {
	if m == nil {
		return
	}

	mode := "interactive"
	if simulated {
		mode = "simulated"
	}
	decision := "stayed"
	if outcome.Switched {
		decision = "switched"
	}

	attrs := metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.String("decision", decision),
		attribute.Bool("won", outcome.Won),
	)
	m.rounds.Add(ctx, 1, attrs)
	if outcome.ShouldHaveSwitched {
		m.switchWins.Add(ctx, 1, metric.WithAttributes(attribute.String("mode", mode)))
	}
	m.roundDuration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attribute.String("mode", mode)))
}

// Registry exposes the Prometheus registry backing the exporter.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}

	return m.registry
}

// Write encodes every gathered metric family to w in the Prometheus text
// exposition format.
func (m *Metrics) Write(w io.Writer) error {
	if m == nil {
		return nil
	}

	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("could not gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, family := range families {
		if err := enc.Encode(family); err != nil {
			return fmt.Errorf("could not encode metric family %s: %w", family.GetName(), err)
		}
	}

	return nil
}

// Shutdown flushes and stops the meter provider.
func (m *Metrics) Shutdown(ctx context.Context) error {
	if m == nil {
		return nil
	}
	if err := m.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("could not shutdown meter provider: %w", err)
	}

	return nil
}
