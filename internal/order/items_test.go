package order

import (
	"testing"

	"github.com/IlogonPearl/Canteen-Genai-System/internal/cart"
)

func TestFormatItems(t *testing.T) {
	got := FormatItems([]cart.Line{
		{Item: "Burger", Quantity: 2},
		{Item: "Fries", Quantity: 1},
	})

	if got != "Burger x2, Fries x1" {
		t.Errorf("unexpected items string: %q", got)
	}
}

func TestParseItems_RoundTrip(t *testing.T) {
	lines := []cart.Line{
		{Item: "Chicken Curry", Quantity: 3},
		{Item: "Iced Tea", Quantity: 1},
	}

	parsed := ParseItems(FormatItems(lines))

	if len(parsed) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(parsed))
	}
	if parsed[0] != lines[0] || parsed[1] != lines[1] {
		t.Errorf("round trip mismatch: %v", parsed)
	}
}

func TestParseItems_SkipsMalformedEntries(t *testing.T) {
	parsed := ParseItems("Burger x2, garbage, Fries xNaN, Coke x1")

	if len(parsed) != 2 {
		t.Fatalf("expected 2 parseable lines, got %d", len(parsed))
	}
	if parsed[0].Item != "Burger" || parsed[1].Item != "Coke" {
		t.Errorf("unexpected lines: %v", parsed)
	}
}

func TestParseItems_Empty(t *testing.T) {
	if got := ParseItems(""); len(got) != 0 {
		t.Errorf("expected no lines, got %v", got)
	}
}
