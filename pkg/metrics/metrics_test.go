package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("salon-test")

	m.ObserveDBQuery("select", time.Now(), nil)
	m.ObserveDBQuery("select", time.Now(), errors.New("boom"))
	m.IncPreferenceFallback("get")
	m.IncStoreStatus(true)
	m.IncStoreStatus(false)
	m.IncStoreStatus(false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("select", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("select", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PreferenceFallbacks.WithLabelValues("get")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.StoreStatusChecks.WithLabelValues("closed")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New("salon-test")
	m.IncStoreStatus(true)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "store_status_checks_total")
}

func TestNew_Twice(t *testing.T) {
	assert.NotPanics(t, func() {
		New("a")
		New("b")
	})
}
