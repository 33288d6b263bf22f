package telemetry

import (
	"context"
	"os"
	"testing"
)

func TestConfigureEnv(t *testing.T) {
	t.Setenv(envAPIKey, "secret")
	t.Setenv(envDataset, "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	ConfigureEnv()

	if got := getenv(t, "OTEL_EXPORTER_OTLP_ENDPOINT"); got != "https://api.honeycomb.io" {
		t.Errorf("endpoint = %q", got)
	}
	want := "x-honeycomb-team=secret,x-honeycomb-dataset=treasurehunt"
	if got := getenv(t, "OTEL_EXPORTER_OTLP_HEADERS"); got != want {
		t.Errorf("headers = %q, want %q", got, want)
	}
	if !Enabled() {
		t.Error("Enabled() = false with an API key set")
	}
}

func TestConfigureEnvKeepsExplicitEndpoint(t *testing.T) {
	t.Setenv(envAPIKey, "secret")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://localhost:4318")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	ConfigureEnv()

	if got := getenv(t, "OTEL_EXPORTER_OTLP_ENDPOINT"); got != "http://localhost:4318" {
		t.Errorf("endpoint = %q, want explicit value kept", got)
	}
}

func TestNoopTracer(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "noop")
	defer span.End()
	if span.SpanContext().IsValid() {
		t.Error("noop span should not carry a valid span context")
	}
}

func getenv(t *testing.T, key string) string {
	t.Helper()
	return os.Getenv(key)
}
