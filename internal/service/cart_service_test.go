package service

import (
	"errors"
	"testing"

	"github.com/voltmart/internal/repository"
)

func newCartServiceForTest() *CartService {
	return NewCartService(repository.NewCartRepository())
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc := newCartServiceForTest()
	if err := svc.AddItem("s1", "missing"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestAddItemIncrementsExisting(t *testing.T) {
	svc := newCartServiceForTest()
	if err := svc.AddItem("s1", "d1"); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := svc.AddItem("s1", "d1"); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := svc.AddItem("s1", "s1"); err != nil {
		t.Fatalf("add item failed: %v", err)
	}

	view, err := svc.Cart("s1")
	if err != nil {
		t.Fatalf("cart failed: %v", err)
	}
	if len(view.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(view.Entries))
	}
	if view.Count != 3 {
		t.Fatalf("expected count 3, got %d", view.Count)
	}
	// d1 x2 @10 + s1 x1 @5
	if view.Subtotal.String() != "25.00" {
		t.Fatalf("expected subtotal 25.00, got %s", view.Subtotal)
	}
}

func TestUpdateQuantityZeroRemoves(t *testing.T) {
	svc := newCartServiceForTest()
	if err := svc.AddItem("s1", "d1"); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := svc.UpdateQuantity("s1", "d1", 0); err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	view, err := svc.Cart("s1")
	if err != nil {
		t.Fatalf("cart failed: %v", err)
	}
	if len(view.Entries) != 0 {
		t.Fatalf("expected empty cart, got %d entries", len(view.Entries))
	}
}

func TestUpdateQuantityMissingIsNoop(t *testing.T) {
	svc := newCartServiceForTest()
	if err := svc.UpdateQuantity("s1", "d1", 4); err != nil {
		t.Fatalf("update of missing item should be a no-op: %v", err)
	}
	count, err := svc.Count("s1")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty cart, got count %d", count)
	}
}

func TestUpdateQuantitySetsValue(t *testing.T) {
	svc := newCartServiceForTest()
	if err := svc.AddItem("s1", "mc3"); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := svc.UpdateQuantity("s1", "mc3", 4); err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
	view, err := svc.Cart("s1")
	if err != nil {
		t.Fatalf("cart failed: %v", err)
	}
	if view.Count != 4 {
		t.Fatalf("expected count 4, got %d", view.Count)
	}
	// mc3 x4 @15
	if view.Subtotal.String() != "60.00" {
		t.Fatalf("expected subtotal 60.00, got %s", view.Subtotal)
	}
}

func TestSubtotalIndependentOfInsertionOrder(t *testing.T) {
	forward := newCartServiceForTest()
	for _, id := range []string{"d1", "s2", "mc2"} {
		if err := forward.AddItem("s1", id); err != nil {
			t.Fatalf("add item failed: %v", err)
		}
	}
	backward := newCartServiceForTest()
	for _, id := range []string{"mc2", "s2", "d1"} {
		if err := backward.AddItem("s1", id); err != nil {
			t.Fatalf("add item failed: %v", err)
		}
	}

	forwardView, err := forward.Cart("s1")
	if err != nil {
		t.Fatalf("cart failed: %v", err)
	}
	backwardView, err := backward.Cart("s1")
	if err != nil {
		t.Fatalf("cart failed: %v", err)
	}
	if !forwardView.Subtotal.Equal(backwardView.Subtotal.Decimal) {
		t.Fatalf("subtotal should not depend on insertion order: %s vs %s",
			forwardView.Subtotal, backwardView.Subtotal)
	}
}

func TestRemoveItemAndClear(t *testing.T) {
	svc := newCartServiceForTest()
	if err := svc.AddItem("s1", "d1"); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := svc.AddItem("s1", "d2"); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if err := svc.RemoveItem("s1", "d1"); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	view, err := svc.Cart("s1")
	if err != nil {
		t.Fatalf("cart failed: %v", err)
	}
	if len(view.Entries) != 1 || view.Entries[0].Product.ID != "d2" {
		t.Fatalf("unexpected entries after remove: %+v", view.Entries)
	}
	if err := svc.Clear("s1"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	count, err := svc.Count("s1")
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty cart after clear, got count %d", count)
	}
}
