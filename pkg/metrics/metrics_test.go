package metrics_test

import (
	"bytes"
	"context"
	"montyhall/pkg/domain"
	"montyhall/pkg/metrics"
	"strings"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

// counterTotal sums every counter sample of the families whose name starts
// with prefix.
func counterTotal(t *testing.T, m *metrics.Metrics, prefix string) float64 {
	t.Helper()

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	var total float64
	var found bool
	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), prefix) || family.GetType() != dto.MetricType_COUNTER {
			continue
		}
		found = true
		for _, sample := range family.GetMetric() {
			total += sample.GetCounter().GetValue()
		}
	}
	require.True(t, found, "no counter family with prefix %q", prefix)

	return total
}

func TestRecordRound(t *testing.T) {
	m, err := metrics.New()
	require.NoError(t, err)
	ctx := context.Background()

	m.RecordRound(ctx, true, domain.Outcome{ShouldHaveSwitched: true}, time.Millisecond)
	m.RecordRound(ctx, true, domain.Outcome{Won: true}, time.Millisecond)
	m.RecordRound(ctx, false, domain.Outcome{Won: true, Switched: true, ShouldHaveSwitched: true}, time.Second)

	require.InDelta(t, 3, counterTotal(t, m, "montyhall_rounds"), 1e-9)
	require.InDelta(t, 2, counterTotal(t, m, "montyhall_switch_wins"), 1e-9)
	require.NoError(t, m.Shutdown(ctx))
}

func TestWriteTextExposition(t *testing.T) {
	m, err := metrics.New()
	require.NoError(t, err)

	m.RecordRound(context.Background(), true, domain.Outcome{ShouldHaveSwitched: true}, time.Millisecond)

	var buf bytes.Buffer
	require.NoError(t, m.Write(&buf))

	text := buf.String()
	require.Contains(t, text, "montyhall_rounds")
	require.Contains(t, text, "montyhall_round_duration")
	require.Contains(t, text, `mode="simulated"`)
	require.Contains(t, text, `decision="stayed"`)
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics

	require.NotPanics(t, func() {
		m.RecordRound(context.Background(), true, domain.Outcome{}, time.Millisecond)
	})
	require.Nil(t, m.Registry())
	require.NoError(t, m.Write(&bytes.Buffer{}))
	require.NoError(t, m.Shutdown(context.Background()))
}

func TestRegistryNamesMatchExposition(t *testing.T) {
	m, err := metrics.New()
	require.NoError(t, err)

	m.RecordRound(context.Background(), false, domain.Outcome{Won: true}, time.Millisecond)

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	require.Contains(t, names, "montyhall_rounds_total")
	require.Contains(t, names, "montyhall_round_duration_seconds")
}
