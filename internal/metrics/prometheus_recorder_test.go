package metrics

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObservePageDuration("blog", 3*time.Millisecond)
	pr.IncPageResult("blog", ResultSuccess)
	pr.IncPageResult("blog", ResultSuccess)
	pr.IncPageResult("blog", ResultFailed)
	pr.IncDiagnostic("blog", "warn")
	pr.ObserveBuildDuration("blog", 40*time.Millisecond)
	pr.IncBuildOutcome("blog", BuildOutcomeFailed)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 5)

	assert.InDelta(t, 2, counterValue(t, reg, "tim_page_results_total", "success"), 0)
	assert.InDelta(t, 1, counterValue(t, reg, "tim_page_results_total", "failed"), 0)
	assert.InDelta(t, 1, counterValue(t, reg, "tim_render_diagnostics_total", "warn"), 0)
	assert.InDelta(t, 1, counterValue(t, reg, "tim_build_outcomes_total", "failed"), 0)
}

// counterValue returns the counter in family name carrying a label whose value is label.
func counterValue(t *testing.T, reg *prom.Registry, name, label string) float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetValue() == label {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	t.Fatalf("counter %s{%s} not found", name, label)
	return 0
}

func TestNilPrometheusRecorderIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.ObservePageDuration("blog", time.Millisecond)
		pr.IncPageResult("blog", ResultSuccess)
		pr.IncDiagnostic("blog", "warn")
		pr.ObserveBuildDuration("blog", time.Millisecond)
		pr.IncBuildOutcome("blog", BuildOutcomeSuccess)
	})
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncBuildOutcome("blog", BuildOutcomeSuccess)

	path := filepath.Join(t.TempDir(), "tim.prom")
	require.NoError(t, WriteTextfile(reg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `tim_build_outcomes_total{outcome="success",site="blog"} 1`)
}

func TestHTTPHandler(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncPageResult("blog", ResultOmitted)

	rec := httptest.NewRecorder()
	HTTPHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "tim_page_results_total"))
}
