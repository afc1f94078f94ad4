package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSetupWithoutEndpointIsNoop(t *testing.T) {
	shutdown, err := Setup(context.Background(), "splitledger-test", "")
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown failed: %v", err)
	}
}

func TestTracerUsesGlobalProvider(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	_, span := Tracer().Start(context.Background(), "CreateTransaction")
	span.End()

	ended := recorder.Ended()
	if len(ended) != 1 || ended[0].Name() != "CreateTransaction" {
		t.Fatalf("recorded spans = %v", ended)
	}
	if got := ended[0].InstrumentationScope().Name; got != TracerName {
		t.Errorf("scope = %q, want %q", got, TracerName)
	}
}
