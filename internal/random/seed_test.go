package random

import "testing"

func TestResolveKeepsExplicitSeed(t *testing.T) {
	got, err := Resolve(99)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != 99 {
		t.Fatalf("seed = %d, want 99", got)
	}
}

func TestResolveDrawsFreshSeed(t *testing.T) {
	got, err := Resolve(0)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got == 0 {
		t.Fatal("expected non-zero seed")
	}
}

func TestNewIsReproducible(t *testing.T) {
	a, b := New(7), New(7)
	for i := 0; i < 16; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %v != %v", i, x, y)
		}
	}
}
