package types

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestLineItemTotal(t *testing.T) {
	item := LineItem{Quantity: 3, UnitPrice: decimal.NewFromInt(100)}
	if !item.Total().Equal(decimal.NewFromInt(300)) {
		t.Errorf("total = %s, want 300", item.Total())
	}
}

func TestGroupTotals(t *testing.T) {
	group := &Group{
		Title:    "Rental",
		Category: CategoryRental,
		Items: []LineItem{
			{Quantity: 1, UnitPrice: decimal.NewFromInt(600)},
			{Quantity: 3, UnitPrice: decimal.NewFromInt(100),
				Tax: decimal.NewNullDecimal(decimal.NewFromInt(24))},
		},
	}

	if !group.Total().Equal(decimal.NewFromInt(900)) {
		t.Errorf("total = %s, want 900", group.Total())
	}
	// The untaxed item contributes zero, not an error.
	if !group.TaxTotal().Equal(decimal.NewFromInt(24)) {
		t.Errorf("tax total = %s, want 24", group.TaxTotal())
	}
}

func TestOrderedGroupsSkipsNil(t *testing.T) {
	quote := &Quote{Groups: map[Category]*Group{}}
	for _, category := range AllCategories() {
		quote.Groups[category] = nil
	}
	quote.Groups[CategoryRental] = &Group{Title: "Rental", Category: CategoryRental}
	quote.Groups[CategoryService] = &Group{Title: "Service", Category: CategoryService}

	ordered := quote.OrderedGroups()
	if len(ordered) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(ordered))
	}
	if ordered[0].Category != CategoryService || ordered[1].Category != CategoryRental {
		t.Errorf("groups out of order: %s, %s", ordered[0].Category, ordered[1].Category)
	}
}

func TestAllCategoriesStable(t *testing.T) {
	want := []Category{
		CategoryService,
		CategoryRental,
		CategoryMaterial,
		CategoryDelivery,
		CategoryRemoval,
		CategoryFuelAndEnvironmental,
	}
	got := AllCategories()
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("category %d = %s, want %s", i, got[i], want[i])
		}
	}
}
