package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
// Make fields public so they can be accessed from other packages.
type AppMetrics struct {
	HTTPRequestsTotal   metric.Int64Counter
	HTTPRequestDuration metric.Float64Histogram
	GenerationsTotal    metric.Int64Counter
	GenerationDuration  metric.Float64Histogram
	ExportsTotal        metric.Int64Counter
	SessionsStarted     metric.Int64Counter
}

var (
	// Global instance of AppMetrics (initialized once)
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("tripweaver")
		var err error
		m := &AppMetrics{}

		m.HTTPRequestsTotal, err = meter.Int64Counter(
			"http_requests_total",
			metric.WithDescription("Total number of HTTP requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_requests_total: %v", err)
		}

		m.HTTPRequestDuration, err = meter.Float64Histogram(
			"http_request_duration_seconds",
			metric.WithDescription("Duration of HTTP requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create http_request_duration_seconds: %v", err)
		}

		m.GenerationsTotal, err = meter.Int64Counter(
			"plan_generations_total",
			metric.WithDescription("Total number of plan generation attempts by outcome"),
			metric.WithUnit("{generation}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create plan_generations_total: %v", err)
		}

		m.GenerationDuration, err = meter.Float64Histogram(
			"plan_generation_duration_seconds",
			metric.WithDescription("Duration of plan generation calls in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create plan_generation_duration_seconds: %v", err)
		}

		m.ExportsTotal, err = meter.Int64Counter(
			"plan_exports_total",
			metric.WithDescription("Total number of plan document exports by outcome"),
			metric.WithUnit("{export}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create plan_exports_total: %v", err)
		}

		m.SessionsStarted, err = meter.Int64Counter(
			"sessions_started_total",
			metric.WithDescription("Total number of planning sessions created"),
			metric.WithUnit("{session}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create sessions_started_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the global metrics instance, or nil when metrics were not
// initialized (tests).
func Get() *AppMetrics {
	return appMetrics
}
