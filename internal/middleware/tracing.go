package middleware

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// HeaderTraceID echoes the trace id of the request span.
const HeaderTraceID = "X-Trace-ID"

// Tracing wraps requests in OpenTelemetry server spans using the global
// tracer provider. Incoming W3C trace context is honoured. Span names use
// the method and path; query strings are never recorded.
func Tracing(service string) func(http.Handler) http.Handler {
	propagators := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(exposeTraceID(next), service,
			otelhttp.WithPropagators(propagators),
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		)
	}
}

func exposeTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if traceID, _ := TraceContext(r); traceID != "" {
			w.Header().Set(HeaderTraceID, traceID)
		}
		next.ServeHTTP(w, r)
	})
}

// TraceContext returns the trace and span ids of the request span, or empty
// strings when there is none.
func TraceContext(r *http.Request) (traceID, spanID string) {
	sc := trace.SpanContextFromContext(r.Context())
	if !sc.IsValid() {
		return "", ""
	}
	return sc.TraceID().String(), sc.SpanID().String()
}
