package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	Locale string `env:"CMD_TEST_LOCALE" envDefault:"en"`
	Ledger string `env:"CMD_TEST_LEDGER"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("HERB_MARKET_CMD_TEST_LOCALE", "de")
	t.Setenv("HERB_MARKET_CMD_TEST_LEDGER", "env.db")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := testConfig{}
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "locale")
	fs.StringVar(&cfg.Ledger, "ledger", cfg.Ledger, "ledger")

	if err := ParseArgs(fs, []string{"-ledger", "flag.db"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Ledger != "flag.db" {
		t.Fatalf("expected flag value for ledger, got %q", cfg.Ledger)
	}
	if cfg.Locale != "de" {
		t.Fatalf("expected env value for locale, got %q", cfg.Locale)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target error")
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
	if err := RunWithTelemetry(context.Background(), ServiceHerbMarket, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	t.Setenv("HERB_MARKET_OTEL_ENDPOINT", "")
	want := errors.New("boom")
	err := RunWithTelemetry(context.Background(), ServiceHerbMarket, func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("run error = %v, want %v", err, want)
	}
}
