package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("generates an id when none is provided", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		var seen string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = GetRequestID(r.Context())
			w.WriteHeader(http.StatusOK)
		}))
		handler.ServeHTTP(w, req)

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("keeps the provided id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, "test-request-id")
		w := httptest.NewRecorder()

		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-request-id", GetRequestID(r.Context()))
		}))
		handler.ServeHTTP(w, req)

		assert.Equal(t, "test-request-id", w.Header().Get(RequestIDHeader))
	})
}

func TestLoggerMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	handler := RequestID(Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/boom" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("hello"))
	})))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/coffees", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	entries := logs.All()
	require.Len(t, entries, 2)

	ok := entries[0].ContextMap()
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "/coffees", ok["path"])
	assert.EqualValues(t, http.StatusOK, ok["status"])
	assert.EqualValues(t, 5, ok["bytes"])
	assert.NotEmpty(t, ok["requestID"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

type observation struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	mu   sync.Mutex
	seen []observation
}

func (f *fakeObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seen = append(f.seen, observation{method, route, status})
}

func TestMetricsMiddleware(t *testing.T) {
	obs := &fakeObserver{}
	router := chi.NewRouter()
	router.Use(Metrics(obs))
	router.Get("/coffees/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotModified)
	})
	router.Get("/silent", func(w http.ResponseWriter, r *http.Request) {})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/coffees/Espresso", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/silent", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	require.Len(t, obs.seen, 3)
	assert.Equal(t, observation{http.MethodGet, "/coffees/{name}", http.StatusNotModified}, obs.seen[0])
	assert.Equal(t, observation{http.MethodGet, "/silent", http.StatusOK}, obs.seen[1])
	assert.Equal(t, http.StatusNotFound, obs.seen[2].status)
}
