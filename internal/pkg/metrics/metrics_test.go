package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderPlaced_CountsByStatus(t *testing.T) {
	m := metrics.New()

	m.OrderPlaced(order.Assigned)
	m.OrderPlaced(order.Assigned)
	m.OrderPlaced(order.OnHold)

	assert.InDelta(t, 2, testutil.ToFloat64(m.OrdersPlaced.WithLabelValues("assigned")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.OrdersPlaced.WithLabelValues("on-hold")), 0)
}

func TestRebalanceCompleted_SetsSummaryGauges(t *testing.T) {
	m := metrics.New()

	m.RebalanceCompleted(services.Summary{Assigned: 4, OnHold: 1, Pending: 2}, 30*time.Millisecond)

	assert.InDelta(t, 4, testutil.ToFloat64(m.OrdersByOutcome.WithLabelValues("assigned")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.OrdersByOutcome.WithLabelValues("on-hold")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.OrdersByOutcome.WithLabelValues("pending")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.OrdersByOutcome.WithLabelValues("unassignable")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.RebalanceDuration))
}

func TestRebalanceFailed_IncrementsCounter(t *testing.T) {
	m := metrics.New()

	m.RebalanceFailed()
	m.RebalanceFailed()

	assert.InDelta(t, 2, testutil.ToFloat64(m.RebalanceFailures), 0)
}

func TestMiddleware_RecordsRouteTemplate(t *testing.T) {
	m := metrics.New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/v1/orders/:orderId", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/orders/abc", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.InDelta(t, 1,
		testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/orders/:orderId", "204")), 0)
}

func TestHandler_ExposesRegisteredMetrics(t *testing.T) {
	m := metrics.New()
	m.RebalanceFailed()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "dispatch_rebalance_failures_total 1")
}
