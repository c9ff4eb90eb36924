// Package server exposes calculation metrics over HTTP in Prometheus format.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kugelrund/oeis-A300793/internal/logging"
)

// Metrics bundles the Prometheus instruments tracking sequence calculations.
// Each Metrics owns its registry, so independent instances never collide.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	termsComputed *prometheus.CounterVec
	runs          *prometheus.CounterVec
	mismatches    prometheus.Counter
	durations     *prometheus.HistogramVec
}

// NewMetrics creates and registers the calculation metrics along with the
// standard Go runtime and process collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		termsComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "a300793_terms_computed_total",
			Help: "Total number of sequence terms computed, by formula.",
		}, []string{"formula"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "a300793_runs_total",
			Help: "Total number of calculation runs, by outcome.",
		}, []string{"status"}),
		mismatches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "a300793_mismatches_total",
			Help: "Total number of term disagreements detected between formulas.",
		}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "a300793_calculation_duration_seconds",
			Help:    "Wall-clock duration of formula runs.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 12),
		}, []string{"formula"}),
	}

	registry.MustRegister(
		m.termsComputed,
		m.runs,
		m.mismatches,
		m.durations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// ObserveCalculation records one formula run.
func (m *Metrics) ObserveCalculation(formula string, terms int, duration time.Duration) {
	m.termsComputed.WithLabelValues(formula).Add(float64(terms))
	m.durations.WithLabelValues(formula).Observe(duration.Seconds())
}

// ObserveRun records the outcome of a whole cross-validation run.
func (m *Metrics) ObserveRun(status string) {
	m.runs.WithLabelValues(status).Inc()
}

// ObserveMismatch records a detected disagreement between formulas.
func (m *Metrics) ObserveMismatch() {
	m.mismatches.Inc()
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// readHeaderTimeout bounds slow-client header reads on the metrics listener.
const readHeaderTimeout = 5 * time.Second

// Server serves the metrics endpoint over HTTP.
type Server struct {
	metrics *Metrics
	logger  logging.Logger
	httpSrv *http.Server
}

// NewServer creates a metrics server listening on addr.
func NewServer(addr string, metrics *Metrics, logger logging.Logger) *Server {
	s := &Server{metrics: metrics, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", s.handleMetrics)
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

// handleMetrics serves GET /metrics.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Warn("rejected metrics request",
			logging.String("method", r.Method),
			logging.String("remote", r.RemoteAddr))
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// Serve runs the HTTP listener until ctx is canceled, then shuts down
// gracefully. It returns nil on clean shutdown.
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("metrics endpoint listening", logging.String("addr", s.httpSrv.Addr))
		errCh <- s.httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
