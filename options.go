package neuroscan

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/neuroscan-ai/sdk/health"
	"github.com/neuroscan-ai/sdk/ontology"
)

// analyzerConfig holds the optional collaborators and settings applied by
// Options during New.
type analyzerConfig struct {
	logger         *slog.Logger
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	now            func() time.Time
	temperature    float64
	seeder         *ontology.Seeder
	verifier       health.ConnectivityVerifier
	modelPath      string
	storageDirs    []string
}

// Option configures an Analyzer during construction.
type Option func(*analyzerConfig)

// WithLogger sets the structured logger used for run progress and failures.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *analyzerConfig) {
		c.logger = logger
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider used for run and
// stage spans. Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *analyzerConfig) {
		c.tracerProvider = tp
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider used for the run
// counter. Defaults to the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *analyzerConfig) {
		c.meterProvider = mp
	}
}

// WithClock overrides the time source used for report timestamps. Used by
// tests; defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *analyzerConfig) {
		c.now = now
	}
}

// WithTemperature sets the sampling temperature passed to both narrative
// generation calls. Defaults to 0.7.
func WithTemperature(t float64) Option {
	return func(c *analyzerConfig) {
		c.temperature = t
	}
}

// WithSeeder attaches the ontology seeder, enabling the administrative
// SeedKnowledgeBase operation.
func WithSeeder(s *ontology.Seeder) Option {
	return func(c *analyzerConfig) {
		c.seeder = s
	}
}

// WithHealthChecks attaches the targets probed by Health: the graph store
// verifier, the classifier weights path, and writable storage directories.
func WithHealthChecks(verifier health.ConnectivityVerifier, modelPath string, storageDirs ...string) Option {
	return func(c *analyzerConfig) {
		c.verifier = verifier
		c.modelPath = modelPath
		c.storageDirs = storageDirs
	}
}
