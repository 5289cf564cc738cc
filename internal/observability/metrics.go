// Package observability bundles the Prometheus metrics for the HTTP
// surface and the computational core.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector registers and holds the service metrics.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec

	QuotesComputed   prometheus.Counter
	PurchasesCreated prometheus.Counter
	Recommendations  prometheus.Counter
}

// NewCollector registers metrics against the provided registerer,
// defaulting to the global Prometheus registry when nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of handled HTTP requests, labeled by method, route, and status code.",
	}, []string{"method", "route", "code"})
	if err := reg.Register(requests); err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"method", "route"})
	if err := reg.Register(durations); err != nil {
		return nil, err
	}

	quotes := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quotes_computed_total",
		Help: "Total number of price/emission quotes computed.",
	})
	if err := reg.Register(quotes); err != nil {
		return nil, err
	}

	purchases := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "offset_purchases_created_total",
		Help: "Total number of CO2 offset purchases created.",
	})
	if err := reg.Register(purchases); err != nil {
		return nil, err
	}

	recommendations := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommendations_served_total",
		Help: "Total number of recommendation requests served.",
	})
	if err := reg.Register(recommendations); err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:         gatherer,
		HTTPRequests:     requests,
		HTTPDurations:    durations,
		QuotesComputed:   quotes,
		PurchasesCreated: purchases,
		Recommendations:  recommendations,
	}, nil
}

// Middleware records request counts and durations per route.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		code := strconv.Itoa(ctx.Writer.Status())
		c.HTTPRequests.WithLabelValues(ctx.Request.Method, route, code).Inc()
		c.HTTPDurations.WithLabelValues(ctx.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the /metrics scrape endpoint.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}
