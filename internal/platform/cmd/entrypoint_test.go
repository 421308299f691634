package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
	"time"

	"github.com/louisbranch/boardbots/internal/platform/timeouts"
)

const testPrefix = "CMD_TEST_"

type testConfig struct {
	Address string `env:"ADDRESS" envDefault:"127.0.0.1:3000"`
	Mode    string `env:"MODE" envDefault:"development"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("CMD_TEST_ADDRESS", "env:9000")
	t.Setenv("CMD_TEST_MODE", "production")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfgRef := testConfig{}
	if err := ParseConfig(testPrefix, &cfgRef); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfgRef.Address, "address", cfgRef.Address, "address")
	fs.StringVar(&cfgRef.Mode, "mode", cfgRef.Mode, "mode")

	if err := ParseArgs(fs, []string{"-address", "flag:9001"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfgRef.Address != "flag:9001" {
		t.Fatalf("expected flag value for address, got %q", cfgRef.Address)
	}
	if cfgRef.Mode != "production" {
		t.Fatalf("expected env mode, got %q", cfgRef.Mode)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](testPrefix, nil); err == nil {
		t.Fatal("expected nil config target to be rejected")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	if err := RunWithTelemetry(context.Background(), "", func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceGateway, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("BOARDBOTS_OTEL_ENDPOINT", "")
	want := errors.New("boom")

	err := RunWithTelemetry(context.Background(), ServiceGateway, func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("RunWithTelemetry() error = %v, want %v", err, want)
	}
}

func TestFlushTelemetryBoundsShutdown(t *testing.T) {
	var deadline time.Time
	var hasDeadline bool
	flushTelemetry(ServiceGateway, func(ctx context.Context) error {
		deadline, hasDeadline = ctx.Deadline()
		return errors.New("exporter unreachable")
	})
	if !hasDeadline {
		t.Fatal("expected shutdown context to carry a deadline")
	}
	if remaining := time.Until(deadline); remaining <= 0 || remaining > timeouts.Shutdown {
		t.Fatalf("shutdown deadline in %v, want within %v", remaining, timeouts.Shutdown)
	}
}
