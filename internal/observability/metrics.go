package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder publishes workout computation events as Prometheus metrics.
type Recorder struct {
	computed    *prometheus.CounterVec
	failures    *prometheus.CounterVec
	batchSize   prometheus.Histogram
	batchFailed prometheus.Gauge
	lastBatch   prometheus.Gauge
	now         func() time.Time
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		computed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workouts",
			Subsystem: "summary",
			Name:      "computed_total",
			Help:      "Number of workout summaries computed, by training type.",
		}, []string{"training_type"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "workouts",
			Subsystem: "summary",
			Name:      "failures_total",
			Help:      "Number of packages that could not be summarized, by error kind.",
		}, []string{"kind"}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "workouts",
			Subsystem: "batch",
			Name:      "packages",
			Help:      "Number of packages per batch.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		batchFailed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "workouts",
			Subsystem: "batch",
			Name:      "last_failed_packages",
			Help:      "Number of packages that failed in the most recently completed batch.",
		}),
		lastBatch: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "workouts",
			Subsystem: "batch",
			Name:      "last_completed_timestamp_seconds",
			Help:      "Unix timestamp of the most recently completed batch.",
		}),
		now: time.Now,
	}
	reg.MustRegister(r.computed, r.failures, r.batchSize, r.batchFailed, r.lastBatch)
	return r
}

// SummaryComputed counts one successful summary.
func (r *Recorder) SummaryComputed(trainingType string) {
	r.computed.WithLabelValues(trainingType).Inc()
}

// ComputeFailed counts one failed package.
func (r *Recorder) ComputeFailed(kind string) {
	r.failures.WithLabelValues(kind).Inc()
}

// BatchCompleted observes the batch size and failures and updates the completion watermark.
func (r *Recorder) BatchCompleted(size, failed int) {
	r.batchSize.Observe(float64(size))
	r.batchFailed.Set(float64(failed))
	r.lastBatch.Set(float64(r.now().Unix()))
}
