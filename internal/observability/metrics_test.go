package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewRecorder(reg)
	rec.now = func() time.Time { return time.Unix(1_700_000_000, 0) }

	rec.SummaryComputed("Running")
	rec.SummaryComputed("Running")
	rec.SummaryComputed("Swimming")
	rec.ComputeFailed("unknown_workout_type")
	rec.BatchCompleted(4, 1)

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, mf := range families {
		byName[mf.GetName()] = mf
	}

	computed := byName["workouts_summary_computed_total"]
	require.NotNil(t, computed)
	require.Equal(t, 2.0, counterValue(t, computed, "training_type", "Running"))
	require.Equal(t, 1.0, counterValue(t, computed, "training_type", "Swimming"))

	failures := byName["workouts_summary_failures_total"]
	require.NotNil(t, failures)
	require.Equal(t, 1.0, counterValue(t, failures, "kind", "unknown_workout_type"))

	size := byName["workouts_batch_packages"]
	require.NotNil(t, size)
	require.Equal(t, uint64(1), size.GetMetric()[0].GetHistogram().GetSampleCount())
	require.Equal(t, 4.0, size.GetMetric()[0].GetHistogram().GetSampleSum())

	require.Equal(t, 1.0, byName["workouts_batch_last_failed_packages"].GetMetric()[0].GetGauge().GetValue())
	require.Equal(t, 1_700_000_000.0, byName["workouts_batch_last_completed_timestamp_seconds"].GetMetric()[0].GetGauge().GetValue())
}

func TestNewRecorderRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewRecorder(reg)
	require.Panics(t, func() { NewRecorder(reg) })
}

func counterValue(t *testing.T, mf *dto.MetricFamily, label, value string) float64 {
	t.Helper()
	for _, m := range mf.GetMetric() {
		for _, lp := range m.GetLabel() {
			if lp.GetName() == label && lp.GetValue() == value {
				return m.GetCounter().GetValue()
			}
		}
	}
	t.Fatalf("no %s sample with %s=%s", mf.GetName(), label, value)
	return 0
}
