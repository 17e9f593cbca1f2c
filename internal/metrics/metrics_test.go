package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/curp/internal/metrics"
)

func TestCounters(t *testing.T) {
	t.Parallel()

	m := metrics.NewWithRegistry(prometheus.NewRegistry())

	m.IncGenerated("JC")
	m.IncGenerated("JC")
	m.IncGenerated("DF")
	m.IncDateValidation("valid")
	m.IncDateValidation("february_leap")
	m.IncFailure("state")
	m.ObserveIssueLatency(time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.Generated.WithLabelValues("JC")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Generated.WithLabelValues("DF")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.DateValidations.WithLabelValues("february_leap")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Failures.WithLabelValues("state")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.IssueLatency))
}

func TestNilMetricsIsNoop(t *testing.T) {
	t.Parallel()

	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.IncGenerated("JC")
		m.IncDateValidation("valid")
		m.IncFailure("internal")
		m.ObserveIssueLatency(time.Second)
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	m.IncGenerated("NL")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `curp_generated_total{state="NL"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
