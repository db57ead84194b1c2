// Package metrics exposes document-export counters for Prometheus
// scraping.
package metrics

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels used on the export counter.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Options configures the metrics endpoint.
type Options struct {
	// Port for the metrics server (default: 9090).
	Port int

	// Path for the metrics endpoint (default: "/metrics").
	Path string

	// ReadTimeout for the HTTP server (default: 5s).
	ReadTimeout time.Duration

	// WriteTimeout for the HTTP server (default: 10s).
	WriteTimeout time.Duration
}

// Collector tracks report-export activity. Each Collector owns its
// registry, so tests can create as many as they need without label
// collisions.
type Collector struct {
	registry *prometheus.Registry
	server   *http.Server
	opts     Options

	exportsTotal   *prometheus.CounterVec
	exportDuration *prometheus.HistogramVec
	reportsStored  prometheus.Gauge

	mu     sync.Mutex
	closed bool
}

// NewCollector creates a collector with its metrics registered on a
// private registry. No server is started; call Serve for that.
func NewCollector() *Collector {
	c := &Collector{registry: prometheus.NewRegistry()}

	c.exportsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pensh_exports_total",
			Help: "Total number of report exports by format and outcome",
		},
		[]string{"format", "status"},
	)

	c.exportDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pensh_export_duration_seconds",
			Help:    "Report export duration distribution in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
		[]string{"format"},
	)

	c.reportsStored = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "pensh_reports_stored",
		Help: "Number of reports currently in the store",
	})

	c.registry.MustRegister(c.exportsTotal, c.exportDuration, c.reportsStored)
	return c
}

// ObserveExport records one finished export attempt.
func (c *Collector) ObserveExport(format, status string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.exportsTotal.WithLabelValues(format, status).Inc()
	c.exportDuration.WithLabelValues(format).Observe(elapsed.Seconds())
}

// SetReportCount updates the stored-reports gauge.
func (c *Collector) SetReportCount(n int) {
	if c == nil {
		return
	}
	c.reportsStored.Set(float64(n))
}

// Serve starts an HTTP server exposing the collector's registry. It
// returns immediately; the server runs until Close.
func (c *Collector) Serve(opts Options) error {
	if opts.Port == 0 {
		opts.Port = 9090
	}
	if opts.Path == "" {
		opts.Path = "/metrics"
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 5 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 10 * time.Second
	}
	c.opts = opts

	mux := http.NewServeMux()
	mux.Handle(opts.Path, promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))

	c.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", opts.Port),
		Handler:      mux,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	}

	go func() {
		if err := c.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("metrics: server error: %v", err)
		}
	}()

	return nil
}

// Addr returns the address where metrics are served. Useful for
// logging and tests.
func (c *Collector) Addr() string {
	return fmt.Sprintf("http://localhost:%d%s", c.opts.Port, c.opts.Path)
}

// Close shuts down the metrics server if one was started.
func (c *Collector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	if c.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return c.server.Shutdown(ctx)
	}
	return nil
}
