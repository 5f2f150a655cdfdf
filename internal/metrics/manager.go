// Package metrics holds the Prometheus instrumentation of the server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/claude/liftlog/internal/models"
)

// Manager holds the request and dataset metrics of one server.
type Manager struct {
	// counters
	CounterRequests       *prometheus.CounterVec
	CounterDatasetsLoaded *prometheus.CounterVec
	CounterRowsRejected   *prometheus.CounterVec

	// gauges
	GaugeRequests  prometheus.Gauge
	GaugeSets      prometheus.Gauge
	GaugeExercises prometheus.Gauge
	GaugeWorkouts  prometheus.Gauge

	// histograms
	HistRequestDuration prometheus.Histogram
	HistBuildDuration   prometheus.Histogram
}

// NewTestManager returns a Manager on a private registry.
func NewTestManager() *Manager {
	return NewManager("liftlog", "test_server", prometheus.NewRegistry())
}

// NewTestManagerAndRegistry is NewTestManager that also returns the
// registry, for tests that gather or serve it.
func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("liftlog", "test_server", reg), reg
}

// NewManager registers all metrics on reg under namespace and subsystem.
func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterDatasetsLoaded := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "datasets_loaded",
		Help:      "The total number of datasets loaded, by schema variant",
	}, []string{"variant"})
	counterRowsRejected := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rows_rejected",
		Help:      "The total number of export rows excluded during normalization",
	}, []string{"reason"})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeSets := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "dataset_sets",
		Help:      "Number of accepted sets in the current dataset",
	})
	gaugeExercises := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "dataset_exercises",
		Help:      "Number of distinct exercises in the current dataset",
	})
	gaugeWorkouts := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "dataset_workouts",
		Help:      "Number of workout days in the current dataset",
	})

	histReqDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets: []float64{
				0.00001, 0.0001, 0.001, 0.005, 0.01,
				0.05, 0.1, 0.5, 1, 5, 10,
			},
			Name: "request_duration_seconds",
			Help: "Total duration of requests in seconds",
		},
	)
	histBuildDuration := factory.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Buckets: []float64{
				0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 10,
			},
			Name: "dataset_build_duration_seconds",
			Help: "Duration of parsing and aggregating one export in seconds",
		},
	)

	return &Manager{
		CounterRequests:       counterRequests,
		CounterDatasetsLoaded: counterDatasetsLoaded,
		CounterRowsRejected:   counterRowsRejected,
		GaugeRequests:         gaugeRequests,
		GaugeSets:             gaugeSets,
		GaugeExercises:        gaugeExercises,
		GaugeWorkouts:         gaugeWorkouts,
		HistRequestDuration:   histReqDuration,
		HistBuildDuration:     histBuildDuration,
	}
}

// ObserveDataset records a completed load. A nil Manager is a no-op so
// command-line tools can run without instrumentation.
func (m *Manager) ObserveDataset(snap *models.Snapshot, seconds float64) {
	if m == nil || snap == nil {
		return
	}
	m.CounterDatasetsLoaded.WithLabelValues(string(snap.Variant)).Inc()
	for reason, n := range snap.Rejected {
		m.CounterRowsRejected.WithLabelValues(reason).Add(float64(n))
	}
	m.GaugeSets.Set(float64(len(snap.Sets)))
	m.GaugeExercises.Set(float64(len(snap.Exercises)))
	m.GaugeWorkouts.Set(float64(len(snap.Workouts)))
	m.HistBuildDuration.Observe(seconds)
}
