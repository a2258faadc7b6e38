package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jonathan/resume-ats/internal/types"
)

const namespace = "ats"

// Metrics holds the collectors recorded by the scoring paths and the HTTP API.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	scores          *prometheus.CounterVec
	totalScore      prometheus.Histogram
	scoringDuration prometheus.Histogram
	issues          *prometheus.CounterVec
	adjustments     *prometheus.CounterVec
	cacheLookups    *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// NewMetrics registers every collector on a fresh registry, together with the
// Go runtime and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		scores: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scores_total",
			Help:      "Résumés scored, by rating band.",
		}, []string{"rating"}),
		totalScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "total_score",
			Help:      "Distribution of final ATS scores.",
			Buckets:   prometheus.LinearBuckets(10, 10, 10),
		}),
		scoringDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "scoring_duration_seconds",
			Help:      "Time spent scoring one résumé.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		issues: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flagged_issues_total",
			Help:      "Flagged issues, by severity.",
		}, []string{"severity"}),
		adjustments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "score_adjustments_total",
			Help:      "Global penalties and boosts applied, by name.",
		}, []string{"name"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Result cache lookups, by outcome (hit, miss, error).",
		}, []string{"outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests, by route and status code.",
		}, []string{"route", "code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.scores, m.totalScore, m.scoringDuration, m.issues, m.adjustments,
		m.cacheLookups, m.httpRequests, m.httpDuration,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveScore records one scoring call.
func (m *Metrics) ObserveScore(res types.ATSResult, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.scores.WithLabelValues(res.Rating).Inc()
	m.totalScore.Observe(float64(res.TotalScore))
	m.scoringDuration.Observe(elapsed.Seconds())
	m.issues.WithLabelValues(string(types.SeverityCritical)).Add(float64(len(res.FlaggedIssues.Critical)))
	m.issues.WithLabelValues(string(types.SeverityMajor)).Add(float64(len(res.FlaggedIssues.Major)))
	m.issues.WithLabelValues(string(types.SeverityMinor)).Add(float64(len(res.FlaggedIssues.Minor)))
	for _, a := range res.ScoreAdjustments {
		m.adjustments.WithLabelValues(a.Name).Inc()
	}
}

// Cache lookup outcomes.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// ObserveCache records one result-cache lookup.
func (m *Metrics) ObserveCache(outcome string) {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues(outcome).Inc()
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}
