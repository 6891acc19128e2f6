package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pmax"

// Recorder groups the application metrics. A nil *Recorder is a valid no-op.
type Recorder struct {
	requests       *prometheus.CounterVec
	retries        *prometheus.CounterVec
	mutations      *prometheus.CounterVec
	runs           *prometheus.CounterVec
	runDuration    prometheus.Histogram
	newLabels      prometheus.Gauge
	emptyCampaigns prometheus.Gauge
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ads_requests_total",
			Help:      "Google Ads API requests by method and outcome.",
		}, []string{"method", "outcome"}),
		retries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ads_retries_total",
			Help:      "Retries of Google Ads operations by transient reason.",
		}, []string{"operation", "reason"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Campaign mutations issued by kind and outcome.",
		}, []string{"kind", "outcome"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconciliation_runs_total",
			Help:      "Reconciliation runs by mode and outcome.",
		}, []string{"mode", "outcome"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reconciliation_run_duration_seconds",
			Help:      "Duration of reconciliation runs.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
		newLabels: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reconciliation_new_labels",
			Help:      "New labels found by the last reconciliation run.",
		}),
		emptyCampaigns: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reconciliation_empty_campaigns",
			Help:      "Empty campaigns found by the last reconciliation run.",
		}),
	}

	reg.MustRegister(r.requests, r.retries, r.mutations, r.runs, r.runDuration, r.newLabels, r.emptyCampaigns)
	return r
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func (r *Recorder) ObserveRequest(method string, err error) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(method, outcome(err)).Inc()
}

func (r *Recorder) ObserveRetry(operation, reason string) {
	if r == nil {
		return
	}
	r.retries.WithLabelValues(operation, reason).Inc()
}

func (r *Recorder) ObserveMutation(kind string, err error) {
	if r == nil {
		return
	}
	r.mutations.WithLabelValues(kind, outcome(err)).Inc()
}

func (r *Recorder) ObserveRun(mode string, err error, newLabels, emptyCampaigns int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.runs.WithLabelValues(mode, outcome(err)).Inc()
	r.runDuration.Observe(elapsed.Seconds())
	r.newLabels.Set(float64(newLabels))
	r.emptyCampaigns.Set(float64(emptyCampaigns))
}
