// Package metrics collects Prometheus metrics of the user service and
// exposes them for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics interface used by the HTTP layer.
type Recorder interface {
	RecordRequest(route string, statusCode int, duration time.Duration)
	RecordBulkCreate(succeeded, failed int)
}

// Collector is the Prometheus implementation of Recorder.
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	bulkCreated     *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics in reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "user_service_http_requests_total",
			Help: "Number of HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "user_service_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		bulkCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "user_service_bulk_create_users_total",
			Help: "Users processed by bulk create, by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(c.requestsTotal, c.requestDuration, c.bulkCreated)

	return c
}

func (c *Collector) RecordRequest(route string, statusCode int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(route, strconv.Itoa(statusCode)).Inc()
	c.requestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

func (c *Collector) RecordBulkCreate(succeeded, failed int) {
	c.bulkCreated.WithLabelValues("success").Add(float64(succeeded))
	c.bulkCreated.WithLabelValues("failure").Add(float64(failed))
}

// Handler returns the HTTP handler serving the scrape endpoint.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
