package order

import (
	"context"
	"testing"
	"time"
)

func TestCSVRepository_EmptyStore(t *testing.T) {
	repo, err := NewCSVRepository(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	receipts, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(receipts) != 0 {
		t.Errorf("expected empty slice, got %d receipts", len(receipts))
	}
}

func TestCSVRepository_InsertAndList(t *testing.T) {
	repo, err := NewCSVRepository(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	details := "ref-001"

	first := &Receipt{
		OrderID:       "aaaa1111",
		Items:         "Burger x2, Fries x1",
		Total:         130,
		PaymentMethod: "Cash",
		CreatedAt:     time.Now().Add(-time.Minute),
	}
	second := &Receipt{
		OrderID:       "bbbb2222",
		Items:         "Pizza x1",
		Total:         250,
		PaymentMethod: "Card",
		Details:       &details,
		CreatedAt:     time.Now(),
	}

	if err := repo.Insert(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Insert(ctx, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	receipts, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(receipts) != 2 {
		t.Fatalf("expected 2 receipts, got %d", len(receipts))
	}

	// Most recent first.
	if receipts[0].OrderID != "bbbb2222" {
		t.Errorf("expected most recent receipt first, got %s", receipts[0].OrderID)
	}
	if receipts[0].Details == nil || *receipts[0].Details != "ref-001" {
		t.Error("expected details to round trip")
	}
	if receipts[1].Details != nil {
		t.Error("expected empty details to round trip as nil")
	}
	if receipts[1].Total != 130 {
		t.Errorf("expected total 130, got %d", receipts[1].Total)
	}
}

func TestCSVRepository_ItemsWithCommasRoundTrip(t *testing.T) {
	repo, err := NewCSVRepository(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	rec := &Receipt{
		OrderID:       "cccc3333",
		Items:         "Burger x2, Fries x1, Coke x3",
		Total:         190,
		PaymentMethod: "Online",
	}

	if err := repo.Insert(ctx, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	receipts, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(receipts) != 1 {
		t.Fatalf("expected 1 receipt, got %d", len(receipts))
	}
	if receipts[0].Items != rec.Items {
		t.Errorf("items string corrupted: %q", receipts[0].Items)
	}
}
