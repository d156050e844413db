package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "tim"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	pageDuration  *prom.HistogramVec
	pageResults   *prom.CounterVec
	diagnostics   *prom.CounterVec
	buildDuration *prom.HistogramVec
	buildOutcome  *prom.CounterVec
}

// NewPrometheusRecorder constructs the collectors and registers them on reg.
// A nil reg gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		pageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "page_render_duration_seconds",
			Help:      "Duration of individual page renders",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"site"}),
		pageResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "page_results_total",
			Help:      "Page results by outcome",
		}, []string{"site", "result"}),
		diagnostics: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "render_diagnostics_total",
			Help:      "Render diagnostics by level",
		}, []string{"site", "level"}),
		buildDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Total site build duration",
			Buckets:   prom.DefBuckets,
		}, []string{"site"}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"site", "outcome"}),
	}
	reg.MustRegister(pr.pageDuration, pr.pageResults, pr.diagnostics, pr.buildDuration, pr.buildOutcome)
	return pr
}

func (p *PrometheusRecorder) ObservePageDuration(site string, d time.Duration) {
	if p == nil {
		return
	}
	p.pageDuration.WithLabelValues(site).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncPageResult(site string, result ResultLabel) {
	if p == nil {
		return
	}
	p.pageResults.WithLabelValues(site, string(result)).Inc()
}

func (p *PrometheusRecorder) IncDiagnostic(site, level string) {
	if p == nil {
		return
	}
	p.diagnostics.WithLabelValues(site, level).Inc()
}

func (p *PrometheusRecorder) ObserveBuildDuration(site string, d time.Duration) {
	if p == nil {
		return
	}
	p.buildDuration.WithLabelValues(site).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBuildOutcome(site string, outcome BuildOutcomeLabel) {
	if p == nil {
		return
	}
	p.buildOutcome.WithLabelValues(site, string(outcome)).Inc()
}
