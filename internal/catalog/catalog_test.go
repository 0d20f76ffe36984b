package catalog

import "testing"

func TestCategoriesReturnsHomeOrder(t *testing.T) {
	categories := Categories()
	if len(categories) != 9 {
		t.Fatalf("expected 9 categories, got %d", len(categories))
	}
	if categories[0].ID != "diodes" {
		t.Fatalf("expected diodes first, got %s", categories[0].ID)
	}
	if categories[8].ID != "others" {
		t.Fatalf("expected others last, got %s", categories[8].ID)
	}
}

func TestGetCategoryKnown(t *testing.T) {
	category := GetCategory("diodes")
	if category == nil {
		t.Fatalf("expected diodes category")
	}
	if len(category.Products) != 8 {
		t.Fatalf("expected 8 diode products, got %d", len(category.Products))
	}
}

func TestGetCategoryUnknown(t *testing.T) {
	if category := GetCategory("capacitors"); category != nil {
		t.Fatalf("expected nil for category without product data, got %+v", category)
	}
	if category := GetCategory("nope"); category != nil {
		t.Fatalf("expected nil for unknown category, got %+v", category)
	}
}

func TestGetCategoryReturnsCopy(t *testing.T) {
	first := GetCategory("sensors")
	first.Products[0].Name = "mutated"
	second := GetCategory("sensors")
	if second.Products[0].Name == "mutated" {
		t.Fatalf("category products should not share backing storage")
	}
}

func TestFindProduct(t *testing.T) {
	product := FindProduct("mc1")
	if product == nil {
		t.Fatalf("expected product mc1")
	}
	if product.Name != "Arduino Nano" {
		t.Fatalf("unexpected product name: %s", product.Name)
	}
	if product.Price.String() != "12.00" {
		t.Fatalf("unexpected product price: %s", product.Price)
	}
	if FindProduct("zz9") != nil {
		t.Fatalf("expected nil for unknown product")
	}
}
