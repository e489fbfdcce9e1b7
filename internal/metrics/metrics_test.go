package metrics_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/mindengage-psychotest/internal/metrics"
)

func TestObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.Observe("disc", 3, true)
	m.Observe("disc", 0, false)
	m.Observe("papi", 1, true)

	expected := `
# HELP psychotest_scored_total Answer sheets scored, by instrument.
# TYPE psychotest_scored_total counter
psychotest_scored_total{instrument="disc"} 2
psychotest_scored_total{instrument="papi"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "psychotest_scored_total"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	require.Contains(t, body, `psychotest_skipped_answers_total{instrument="disc"} 3`)
	require.Contains(t, body, `psychotest_incomplete_total{instrument="disc"} 1`)
}

func TestObserve_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	m.Observe("disc", 1, false)
}
