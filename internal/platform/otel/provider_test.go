package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/boardbots/internal/platform/otel"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("BOARDBOTS_OTEL_ENDPOINT", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("BOARDBOTS_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("BOARDBOTS_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_RejectsMalformedRatio(t *testing.T) {
	t.Setenv("BOARDBOTS_OTEL_SAMPLE_RATIO", "half")

	if _, err := otel.Setup(context.Background(), "test-service"); err == nil {
		t.Fatal("expected malformed sample ratio to fail")
	}
}

func TestSetupWithConfig_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no export happens.
	cfg := otel.Config{Endpoint: "http://192.0.2.1:4318", Enabled: true, SampleRatio: 0.5}

	shutdown, err := otel.SetupWithConfig(context.Background(), "gateway", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestConfigActive(t *testing.T) {
	t.Parallel()

	if (otel.Config{Endpoint: "http://collector:4318"}).Active() {
		t.Fatal("expected disabled config to be inactive")
	}
	if (otel.Config{Enabled: true}).Active() {
		t.Fatal("expected config without endpoint to be inactive")
	}
	if !(otel.Config{Endpoint: "http://collector:4318", Enabled: true}).Active() {
		t.Fatal("expected enabled config with endpoint to be active")
	}
}
