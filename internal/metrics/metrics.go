package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "freelance_hub"

// Metrics 集中所有 Prometheus 指標；nil *Metrics 的方法皆為 no-op
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	ProjectsCreatedTotal  prometheus.Counter
	ProjectsDeletedTotal  prometheus.Counter
	JoinsTotal            *prometheus.CounterVec
	LeavesTotal           prometheus.Counter
	VacancyDriftFixed     prometheus.Counter
	ReconcileRunsTotal    *prometheus.CounterVec
	OpportunitiesCacheHit *prometheus.CounterVec
}

// New 註冊到 default registry
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

func NewWithRegistry(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "endpoint"},
		),
		ProjectsCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "projects_created_total",
				Help:      "Total number of projects created",
			},
		),
		ProjectsDeletedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "projects_deleted_total",
				Help:      "Total number of projects deleted",
			},
		),
		JoinsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "project_joins_total",
				Help:      "Join attempts by outcome",
			},
			[]string{"outcome"},
		),
		LeavesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "project_leaves_total",
				Help:      "Total number of participants removed from projects",
			},
		),
		VacancyDriftFixed: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "vacancy_drift_fixed_total",
				Help:      "Projects whose has_vacancies flag was corrected by the reconciler",
			},
		),
		ReconcileRunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "vacancy_reconcile_runs_total",
				Help:      "Vacancy reconcile runs by result",
			},
			[]string{"result"},
		),
		OpportunitiesCacheHit: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "opportunities_cache_requests_total",
				Help:      "Opportunities cache lookups by result",
			},
			[]string{"result"},
		),
	}
}

func (m *Metrics) ObserveHTTP(method, endpoint, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(seconds)
}

func (m *Metrics) ProjectCreated() {
	if m == nil {
		return
	}
	m.ProjectsCreatedTotal.Inc()
}

func (m *Metrics) ProjectDeleted() {
	if m == nil {
		return
	}
	m.ProjectsDeletedTotal.Inc()
}

// JoinOutcome 的 outcome 例如 joined、not_found、private、full、duplicate
func (m *Metrics) JoinOutcome(outcome string) {
	if m == nil {
		return
	}
	m.JoinsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ParticipantLeft() {
	if m == nil {
		return
	}
	m.LeavesTotal.Inc()
}

func (m *Metrics) DriftFixed(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.VacancyDriftFixed.Add(float64(n))
}

func (m *Metrics) ReconcileRun(result string) {
	if m == nil {
		return
	}
	m.ReconcileRunsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) CacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.OpportunitiesCacheHit.WithLabelValues(result).Inc()
}
