package catalog

import (
	"testing"

	"vitrina/internal/domain/models"
)

func sampleItems() []models.Product {
	return []models.Product{
		{SKU: "T1", Name: "Иван-чай", PriceRub: 450, Stock: 12, Tags: []string{"чай", "подарки"}},
		{SKU: "T2", Name: "Сбор трав", PriceRub: 300, Stock: 0, Tags: []string{"чай"}},
		{SKU: "T3", Name: "Мёд", PriceRub: 0, Stock: 5, Tags: []string{"подарки"}},
		{SKU: "T4", Name: "Варенье", PriceRub: 250, Stock: 3, Tags: []string{}},
	}
}

func TestAvailable(t *testing.T) {
	got := Available(sampleItems())
	if len(got) != 2 {
		t.Fatalf("available = %d, want 2", len(got))
	}
	// нулевой остаток и нулевая цена отфильтрованы
	if got[0].SKU != "T1" || got[1].SKU != "T4" {
		t.Fatalf("available = %v", got)
	}
}

func TestByCategory(t *testing.T) {
	items := sampleItems()

	got := ByCategory(items, "Чай")
	if len(got) != 2 {
		t.Fatalf("category filter = %d, want 2 (case-insensitive)", len(got))
	}

	if got := ByCategory(items, "all"); len(got) != len(items) {
		t.Fatalf("'all' must be a no-op")
	}
	if got := ByCategory(items, ""); len(got) != len(items) {
		t.Fatalf("empty category must be a no-op")
	}
	if got := ByCategory(items, "нет такой"); len(got) != 0 {
		t.Fatalf("unknown category = %v, want empty", got)
	}
}

func TestSearch(t *testing.T) {
	items := sampleItems()

	if got := Search(items, "чай"); len(got) != 2 {
		t.Fatalf("search by name/tags = %d, want 2", len(got))
	}
	if got := Search(items, "t4"); len(got) != 1 || got[0].SKU != "T4" {
		t.Fatalf("search by sku = %v", got)
	}
	if got := Search(items, ""); len(got) != 0 {
		t.Fatalf("empty query must return empty result")
	}
	if got := Search(items, "  МЁД  "); len(got) != 1 {
		t.Fatalf("search must trim and lower the query: %v", got)
	}
}
