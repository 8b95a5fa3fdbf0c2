package catalog

import (
	"errors"
	"testing"
)

func TestPriceOf_KnownItem(t *testing.T) {
	c := Default()

	price, err := c.PriceOf("Burger")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if price != 50 {
		t.Errorf("expected price 50, got %d", price)
	}
}

func TestPriceOf_UnknownItem(t *testing.T) {
	c := Default()

	_, err := c.PriceOf("Sushi")
	if !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
}

func TestCategoryOf(t *testing.T) {
	c := Default()

	category, ok := c.CategoryOf("Leche Flan")
	if !ok {
		t.Fatal("expected item to be found")
	}

	if category != "Dessert" {
		t.Errorf("expected category 'Dessert', got '%s'", category)
	}

	if _, ok := c.CategoryOf("Sushi"); ok {
		t.Error("expected unknown item to report not found")
	}
}

func TestNew_RejectsNonPositivePrice(t *testing.T) {
	_, err := New(map[string]map[string]int{
		"Snack": {"Burger": 0},
	})
	if err == nil {
		t.Fatal("expected error for zero price")
	}
}

func TestNew_RejectsDuplicateItemAcrossCategories(t *testing.T) {
	_, err := New(map[string]map[string]int{
		"Snack": {"Burger": 50},
		"Lunch": {"Burger": 45},
	})
	if err == nil {
		t.Fatal("expected error for duplicate item")
	}
}

func TestItems_SortedAndComplete(t *testing.T) {
	c, err := New(map[string]map[string]int{
		"Drinks": {"Coke": 20, "Iced Tea": 25},
		"Snack":  {"Burger": 50},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := c.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	if items[0].Name != "Coke" || items[1].Name != "Iced Tea" || items[2].Name != "Burger" {
		t.Errorf("unexpected order: %v", items)
	}
}
