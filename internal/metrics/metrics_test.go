package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersCollectors(t *testing.T) {
	m := New()
	require.NotNil(t, m.Registry())

	m.UpstreamRequests.WithLabelValues("PortfolioStats", "success").Inc()
	m.RateLimitRemaining.WithLabelValues("graphql").Set(4999)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequests.WithLabelValues("PortfolioStats", "success")))
	assert.Equal(t, 4999.0, testutil.ToFloat64(m.RateLimitRemaining.WithLabelValues("graphql")))

	// two independent instances must not share state
	other := New()
	assert.Equal(t, 0.0, testutil.ToFloat64(other.UpstreamRequests.WithLabelValues("PortfolioStats", "success")))
}

func TestHandler(t *testing.T) {
	m := New()
	m.HTTPRequests.WithLabelValues("/api/stats", "GET", "200").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `portfolio_http_requests_total{method="GET",route="/api/stats",status="200"} 1`)
}
