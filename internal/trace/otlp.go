package trace

import (
	"context"
	"os"
	"time"

	"cornscore/internal/ui"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const tracerName = "cornscore/navigator"

// OTLPExporter exports navigation spans to an OTLP endpoint
type OTLPExporter struct {
	provider *sdktrace.TracerProvider
}

// NewOTLPExporter creates an OTLP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if endpoint not configured (disabled)
func NewOTLPExporter(ctx context.Context) (*OTLPExporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil // Disabled
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "cornscore"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	return &OTLPExporter{
		provider: sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
			sdktrace.WithResource(res),
		),
	}, nil
}

// Observer returns a navigator observer that records into this exporter.
// A nil exporter yields a nil observer, which navigators ignore.
func (e *OTLPExporter) Observer() ui.Observer {
	if e == nil {
		return nil
	}
	return NewNavTracer(e.provider)
}

// Shutdown flushes and closes the exporter
func (e *OTLPExporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}

// NavTracer turns navigation calls into spans. Each span starts at the call
// and ends when the call's transition would settle.
type NavTracer struct {
	tracer oteltrace.Tracer
	now    func() time.Time
}

// NewNavTracer creates a tracer on tp.
func NewNavTracer(tp oteltrace.TracerProvider) *NavTracer {
	return &NavTracer{tracer: tp.Tracer(tracerName), now: time.Now}
}

// DidPush implements ui.Observer.
func (t *NavTracer) DidPush(ev ui.NavEvent) { t.record("navigator.push", ev) }

// DidPop implements ui.Observer.
func (t *NavTracer) DidPop(ev ui.NavEvent) { t.record("navigator.pop", ev) }

// DidSwitch implements ui.Observer.
func (t *NavTracer) DidSwitch(ev ui.NavEvent) { t.record("navigator.switch", ev) }

func (t *NavTracer) record(name string, ev ui.NavEvent) {
	start := t.now()
	_, span := t.tracer.Start(context.Background(), name, oteltrace.WithTimestamp(start))
	span.SetAttributes(
		attribute.String("cornscore.page.from", pageID(ev.From)),
		attribute.String("cornscore.page.to", pageID(ev.To)),
		attribute.Int("cornscore.nav.index", ev.Index),
		attribute.Int("cornscore.nav.depth", ev.Depth),
		attribute.Bool("cornscore.nav.animated", ev.Animated),
	)
	span.End(oteltrace.WithTimestamp(start.Add(ev.Duration)))
}

func pageID(p *ui.Page) string {
	if p == nil {
		return ""
	}
	return p.ID()
}
