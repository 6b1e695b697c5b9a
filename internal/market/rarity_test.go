package market

import (
	"errors"
	"strings"
	"testing"
)

func TestRarityNext(t *testing.T) {
	tests := []struct {
		in     Rarity
		want   Rarity
		wantOK bool
	}{
		{Common, Uncommon, true},
		{Uncommon, Rare, true},
		{Rare, VeryRare, true},
		{VeryRare, VeryRare, false},
	}
	for _, tt := range tests {
		got, ok := tt.in.Next()
		if ok != tt.wantOK {
			t.Fatalf("%s.Next() ok = %v, want %v", tt.in, ok, tt.wantOK)
		}
		if ok && got != tt.want {
			t.Fatalf("%s.Next() = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestRarityOrder(t *testing.T) {
	all := Rarities()
	for i := 1; i < len(all); i++ {
		if !(all[i-1] < all[i]) {
			t.Fatalf("expected %s < %s", all[i-1], all[i])
		}
	}
}

func TestParseRarityRoundTrip(t *testing.T) {
	for _, r := range Rarities() {
		got, err := ParseRarity(r.String())
		if err != nil {
			t.Fatalf("parse %s: %v", r, err)
		}
		if got != r {
			t.Fatalf("round trip = %s, want %s", got, r)
		}
	}
}

func TestParseRarityUnknownSuggests(t *testing.T) {
	_, err := ParseRarity("Very Rare")
	var tagErr *UnknownTagError
	if !errors.As(err, &tagErr) {
		t.Fatalf("expected UnknownTagError, got %v", err)
	}
	if tagErr.Suggestion() != "VeryRare" {
		t.Fatalf("suggestion = %q, want VeryRare", tagErr.Suggestion())
	}
	if !strings.Contains(err.Error(), `did you mean "VeryRare"`) {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestParseRarityIsCaseSensitive(t *testing.T) {
	if _, err := ParseRarity("common"); err == nil {
		t.Fatal("expected lowercase tag to be rejected")
	}
}

func TestParseBiomeUnknownListsValid(t *testing.T) {
	_, err := ParseBiome("Volcano")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Underdark") {
		t.Fatalf("expected valid biomes in message, got %v", err)
	}
}

func TestBiomeSet(t *testing.T) {
	set := NewBiomeSet(Forest, Hills, Forest)
	if !set.Contains(Forest) || !set.Contains(Hills) {
		t.Fatal("expected members to be present")
	}
	if set.Contains(Desert) {
		t.Fatal("unexpected member Desert")
	}
	if set.ContainsAny([]Biome{Desert, Arctic}) {
		t.Fatal("unexpected overlap")
	}
	if !set.ContainsAny([]Biome{Desert, Hills}) {
		t.Fatal("expected overlap on Hills")
	}
	if set.ContainsAny(nil) {
		t.Fatal("empty biome list is never local")
	}
	got := set.Biomes()
	if len(got) != 2 || got[0] != Forest || got[1] != Hills {
		t.Fatalf("biomes = %v, want [Forest Hills]", got)
	}
}
