package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.AttemptsStarted.WithLabelValues("created").Inc()

	assert.Contains(t, scrape(t, a), `portal_attempts_started_total{outcome="created"} 1`)
	assert.NotContains(t, scrape(t, b), `portal_attempts_started_total{outcome="created"}`)
}

func TestHandler_ExposesCollectors(t *testing.T) {
	m := New()
	m.AttemptsFinished.WithLabelValues("completed").Inc()
	m.AttemptScores.Observe(75)

	body := scrape(t, m)
	assert.Contains(t, body, `portal_attempts_finished_total{status="completed"} 1`)
	assert.Contains(t, body, "portal_attempts_score_percent_count 1")
}
