// Package observability wires logging, tracing and metrics for the backend.
package observability

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/Harbour-City-League/roster-bot/config"
)

// Observability bundles the logger, tracer and metrics every module receives.
type Observability struct {
	Logger   *slog.Logger
	Tracer   trace.Tracer
	Registry *prometheus.Registry
	Metrics  Metrics

	server *http.Server
}

// New builds an Observability from configuration. Development environments
// get text logs, everything else JSON.
func New(cfg config.ObservabilityConfig) *Observability {
	var handler slog.Handler
	if cfg.Environment == "development" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	logger := slog.New(handler)

	registry := prometheus.NewRegistry()
	metrics := NewOperationMetrics(registry)

	router := chi.NewRouter()
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return &Observability{
		Logger:   logger,
		Tracer:   otel.Tracer("roster-bot"),
		Registry: registry,
		Metrics:  metrics,
		server: &http.Server{
			Addr:              cfg.MetricsAddress,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// ServeHTTP runs the health/metrics endpoint until the server is shut down.
func (o *Observability) ServeHTTP() error {
	if err := o.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the health/metrics endpoint.
func (o *Observability) Shutdown(ctx context.Context) error {
	return o.server.Shutdown(ctx)
}
