package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IbuprofenLover/brewing-stand/pkg/errors"
)

func TestCollectorsAreIndependent(t *testing.T) {
	a := NewCollector("test")
	b := NewCollector("test")

	a.RecordNotModified("coffee")

	assert.Equal(t, 1.0, testutil.ToFloat64(a.NotModified.WithLabelValues("coffee")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.NotModified.WithLabelValues("coffee")))
}

func TestRecordMutation(t *testing.T) {
	c := NewCollector("test")

	c.RecordMutation("coffees", "create", nil)
	c.RecordMutation("coffees", "create", nil)
	c.RecordMutation("coffees", "create", errors.NewConflictError("taken"))
	c.RecordMutation("reviews", "create", errors.NewReferentialError("no coffee"))
	c.RecordMutation("reviews", "delete", assert.AnError)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Mutations.WithLabelValues("coffees", "create", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Mutations.WithLabelValues("coffees", "create", "conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Mutations.WithLabelValues("reviews", "create", "referential")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Mutations.WithLabelValues("reviews", "delete", "internal")))
}

func TestSetEntityCount(t *testing.T) {
	c := NewCollector("test")

	c.SetEntityCount("coffees", 10)
	c.SetEntityCount("coffees", 9)

	assert.Equal(t, 9.0, testutil.ToFloat64(c.Entities.WithLabelValues("coffees")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	c := NewCollector("brewing")
	c.ObserveRequest(http.MethodGet, "/api/v1/coffees", http.StatusOK, 25*time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `brewing_http_requests_total{method="GET",route="/api/v1/coffees",status="200"} 1`)
	assert.Contains(t, body, "brewing_http_request_duration_seconds_bucket")
}
