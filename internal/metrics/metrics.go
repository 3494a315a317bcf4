// Package metrics provides Prometheus metric collection and exposition
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector gathers the API's Prometheus metrics
type Collector struct {
	requestsTotal      *prometheus.CounterVec
	requestDuration    prometheus.Histogram
	contactSubmissions prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with the
// given registry
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "website_api_requests_total",
			Help: "Total HTTP requests by method and status code",
		}, []string{"method", "status_code"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "website_api_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		contactSubmissions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "website_api_contact_submissions_total",
			Help: "Total accepted contact form submissions",
		}),
	}

	reg.MustRegister(
		c.requestsTotal,
		c.requestDuration,
		c.contactSubmissions,
	)

	return c
}

// RecordRequest records one completed HTTP request
func (c *Collector) RecordRequest(method string, statusCode int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
	c.requestDuration.Observe(duration.Seconds())
}

// RecordContactSubmission records one accepted contact submission
func (c *Collector) RecordContactSubmission() {
	c.contactSubmissions.Inc()
}

// Handler returns the /metrics exposition handler for the registry
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
