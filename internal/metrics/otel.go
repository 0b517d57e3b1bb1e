package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "match-tracker-service"
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

type otelInstruments struct {
	ctx context.Context

	requests         metric.Int64Counter
	requestLatencyMs metric.Float64Histogram

	providerAttempts  metric.Int64Counter
	providerErrors    metric.Int64Counter
	providerLatencyMs metric.Float64Histogram

	cycles        metric.Int64Counter
	cycleErrors   metric.Int64Counter
	cycleDuration metric.Float64Histogram

	discovered       metric.Int64Counter
	postponed        metric.Int64Counter
	resultsPublished metric.Int64Counter
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("match-tracker-service")

	requests, err := meter.Int64Counter("http_requests_total")
	if err != nil {
		return nil, err
	}
	requestLatency, err := meter.Float64Histogram("http_request_duration_ms")
	if err != nil {
		return nil, err
	}
	providerAttempts, err := meter.Int64Counter("provider_attempts_total")
	if err != nil {
		return nil, err
	}
	providerErrors, err := meter.Int64Counter("provider_errors_total")
	if err != nil {
		return nil, err
	}
	providerLatency, err := meter.Float64Histogram("provider_duration_ms")
	if err != nil {
		return nil, err
	}
	cycles, err := meter.Int64Counter("tracker_cycles_total")
	if err != nil {
		return nil, err
	}
	cycleErrors, err := meter.Int64Counter("tracker_cycle_errors_total")
	if err != nil {
		return nil, err
	}
	cycleDuration, err := meter.Float64Histogram("tracker_cycle_duration_ms")
	if err != nil {
		return nil, err
	}
	discovered, err := meter.Int64Counter("fixtures_discovered_total")
	if err != nil {
		return nil, err
	}
	postponed, err := meter.Int64Counter("fixtures_postponed_total")
	if err != nil {
		return nil, err
	}
	resultsPublished, err := meter.Int64Counter("results_published_total")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:               context.Background(),
		requests:          requests,
		requestLatencyMs:  requestLatency,
		providerAttempts:  providerAttempts,
		providerErrors:    providerErrors,
		providerLatencyMs: providerLatency,
		cycles:            cycles,
		cycleErrors:       cycleErrors,
		cycleDuration:     cycleDuration,
		discovered:        discovered,
		postponed:         postponed,
		resultsPublished:  resultsPublished,
	}, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	}
	o.recordCounter(o.requests, 1, attrs...)
	o.recordHistogram(o.requestLatencyMs, float64(duration.Milliseconds()), attrs...)
}

func (o *otelInstruments) recordProviderAttempt(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrProvider, provider)}
	o.recordCounter(o.providerAttempts, 1, attrs...)
	o.recordHistogram(o.providerLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.providerErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordCycle(kind string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrCycle, kind)}
	o.recordCounter(o.cycles, 1, attrs...)
	o.recordHistogram(o.cycleDuration, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.cycleErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordDiscovered(count int) {
	o.recordCounter(o.discovered, int64(count))
}

func (o *otelInstruments) recordPostponed(count int) {
	o.recordCounter(o.postponed, int64(count))
}

func (o *otelInstruments) recordResultsPublished(count int) {
	o.recordCounter(o.resultsPublished, int64(count))
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil || counter == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil || hist == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
