package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveDirectoryCall(t *testing.T) {
	m := New()

	m.ObserveDirectoryCall("list_communities", http.StatusOK, 20*time.Millisecond)
	m.ObserveDirectoryCall("list_communities", http.StatusOK, 30*time.Millisecond)
	m.ObserveDirectoryCall("list_communities", 0, time.Second)

	assert.InDelta(t, 2, testutil.ToFloat64(m.directoryRequests.WithLabelValues("list_communities", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.directoryRequests.WithLabelValues("list_communities", "error")), 0)
}

func TestMetrics_ObserveSubmission(t *testing.T) {
	m := New()

	m.ObserveSubmission("agent", true)
	m.ObserveSubmission("agent", false)
	m.ObserveSubmission("agent", false)

	assert.InDelta(t, 1, testutil.ToFloat64(m.submissions.WithLabelValues("agent", ResultSuccess)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.submissions.WithLabelValues("agent", ResultFailure)), 0)
}

func TestMetrics_ObserveHTTPRequest(t *testing.T) {
	m := New()

	m.ObserveHTTPRequest(http.MethodGet, "/communities", http.StatusOK)
	m.ObserveHTTPRequest(http.MethodGet, "/communities", http.StatusOK)

	assert.InDelta(t, 2, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/communities", "200")), 0)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveDirectoryCall("x", 200, time.Millisecond)
		m.ObserveSubmission("agent", true)
		m.SetOpenDrafts(3)
		m.ObserveHTTPRequest("GET", "/health", 200)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.SetOpenDrafts(4)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "ummana_forms_open_drafts 4")
}
