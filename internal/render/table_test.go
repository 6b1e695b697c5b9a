package render

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/louisbranch/herb-market/internal/market"
)

func sampleStock() []market.StockEntry {
	return []market.StockEntry{
		{Herb: market.Herb{Name: "Arctic Creeper"}, Rarity: market.Rare, Quantity: 2, Price: 120},
		{Herb: market.Herb{Name: "Ironwood Heart"}, Rarity: market.VeryRare, Quantity: 1, Price: 1200},
		{Herb: market.Herb{Name: "Sage"}, Rarity: market.Common, Quantity: 7, Price: 3},
	}
}

func TestTableIsFenced(t *testing.T) {
	var buf bytes.Buffer
	if err := Table(&buf, sampleStock(), language.English); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "```\n") {
		t.Fatalf("expected opening fence, got %q", out)
	}
	if !strings.HasSuffix(out, "\n```\n") {
		t.Fatalf("expected closing fence, got %q", out)
	}
	for _, header := range []string{HeaderHerb, HeaderQuantity, HeaderPrice} {
		if !strings.Contains(out, header) {
			t.Fatalf("missing header %q in %q", header, out)
		}
	}
}

func TestTableKeepsRowOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := Table(&buf, sampleStock(), language.English); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	arctic := strings.Index(out, "Arctic Creeper")
	ironwood := strings.Index(out, "Ironwood Heart")
	sage := strings.Index(out, "Sage")
	if arctic < 0 || ironwood < 0 || sage < 0 {
		t.Fatalf("missing rows in %q", out)
	}
	if !(arctic < ironwood && ironwood < sage) {
		t.Fatalf("rows out of order in %q", out)
	}
}

func TestTableFormatsNumbersForLocale(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"", " 1200 "},
		{"en", "1,200"},
		{"de", "1.200"},
	}
	for _, tt := range tests {
		t.Run("locale="+tt.locale, func(t *testing.T) {
			tag, err := ParseLocale(tt.locale)
			if err != nil {
				t.Fatalf("parse locale: %v", err)
			}
			var buf bytes.Buffer
			if err := Table(&buf, sampleStock(), tag); err != nil {
				t.Fatalf("render: %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Fatalf("expected %q in %q", tt.want, buf.String())
			}
		})
	}
}

func TestTableEmptyStock(t *testing.T) {
	var buf bytes.Buffer
	if err := Table(&buf, nil, language.English); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), HeaderHerb) {
		t.Fatalf("expected header row for empty stock, got %q", buf.String())
	}
}

func TestParseLocale(t *testing.T) {
	tag, err := ParseLocale("")
	if err != nil {
		t.Fatalf("parse empty locale: %v", err)
	}
	if tag != language.Und {
		t.Fatalf("default locale = %v, want und", tag)
	}
	if _, err := ParseLocale("not a locale!"); err == nil {
		t.Fatal("expected error for invalid locale")
	}
}
