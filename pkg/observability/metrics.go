// Package observability exposes the Prometheus metrics of the service.
package observability

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/IbuprofenLover/brewing-stand/pkg/errors"
)

// Mutation results reported by RecordMutation besides the error types
const ResultOK = "ok"

// Collector holds all Prometheus metrics for the application.
// Each collector owns its registry, so tests can build as many as they need.
type Collector struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Store metrics
	Mutations *prometheus.CounterVec
	Entities  *prometheus.GaugeVec

	// Conditional read metrics
	NotModified *prometheus.CounterVec
}

// NewCollector creates a new metrics collector with the given namespace
func NewCollector(namespace string) *Collector {
	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	mutations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_mutations_total",
			Help:      "Total number of store mutations by outcome",
		},
		[]string{"store", "operation", "result"},
	)

	entities := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_entities",
			Help:      "Number of live entities per store",
		},
		[]string{"store"},
	)

	notModified := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_not_modified_total",
			Help:      "Total number of conditional reads answered with 304",
		},
		[]string{"resource"},
	)

	registry.MustRegister(
		httpRequests,
		httpDuration,
		mutations,
		entities,
		notModified,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Collector{
		registry:     registry,
		HTTPRequests: httpRequests,
		HTTPDuration: httpDuration,
		Mutations:    mutations,
		Entities:     entities,
		NotModified:  notModified,
	}
}

// ObserveRequest records one served HTTP request
func (c *Collector) ObserveRequest(method, route string, status int, duration time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordMutation counts a store mutation. A nil err counts as success,
// anything else is labelled with its error type.
func (c *Collector) RecordMutation(store, operation string, err error) {
	c.Mutations.WithLabelValues(store, operation, resultOf(err)).Inc()
}

// RecordNotModified counts a conditional read that matched the client token
func (c *Collector) RecordNotModified(resource string) {
	c.NotModified.WithLabelValues(resource).Inc()
}

// SetEntityCount publishes the live entity count of a store
func (c *Collector) SetEntityCount(store string, count int) {
	c.Entities.WithLabelValues(store).Set(float64(count))
}

// GetRegistry returns the Prometheus registry for this collector
func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func resultOf(err error) string {
	if err == nil {
		return ResultOK
	}
	if appErr := errors.GetAppError(err); appErr != nil {
		return strings.ToLower(string(appErr.Type))
	}
	return strings.ToLower(string(errors.ErrorTypeInternal))
}
