package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/herb-market/internal/platform/otel"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("HERB_MARKET_OTEL_ENDPOINT", "")
	t.Setenv("HERB_MARKET_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "herb-market")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("HERB_MARKET_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("HERB_MARKET_OTEL_ENABLED", "FALSE")

	shutdown, err := otel.Setup(context.Background(), "herb-market")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address; nothing is exported because no spans are ended.
	t.Setenv("HERB_MARKET_OTEL_ENDPOINT", "http://192.0.2.1:4318")
	t.Setenv("HERB_MARKET_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "herb-market")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestTracerStartsSpansWithoutProvider(t *testing.T) {
	_, span := otel.Tracer().Start(context.Background(), "stock.generate")
	span.End()
}
