package services

import (
	"testing"

	"github.com/ghuser/pantry/services/inventory/domain/models"
)

func named(name string, phase models.Phase) *models.Item {
	return &models.Item{Name: models.ItemName(name), PrimaryLoc: "Pantry", SecondaryLoc: models.LocationNone, Phase: phase}
}

func TestStockCheckView_Ordering(t *testing.T) {
	a := named("A", models.Flagged())
	b := named("B", models.Checking())
	c := named("C", models.Flagged())

	got := StockCheckView([]*models.Item{a, b, c}, models.LocationFilterAll)
	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got))
	}
	// Flagged items come first; stable sort preserves A before C.
	if got[0] != a || got[1] != c || got[2] != b {
		t.Fatalf("unexpected order: %v, %v, %v", got[0].Name, got[1].Name, got[2].Name)
	}
}

func TestStockCheckView_ExcludesShoppingList(t *testing.T) {
	items := []*models.Item{
		named("listed", models.Listed()),
		named("collected", models.Collected()),
		named("stocked", models.Checking()),
	}
	got := StockCheckView(items, "")
	if len(got) != 1 || got[0].Name != "stocked" {
		t.Fatalf("expected only the in-stock item, got %d items", len(got))
	}
}

func TestStockCheckView_LocationFilter(t *testing.T) {
	pantry := named("pantry item", models.Checking())
	closet := named("closet item", models.Checking())
	closet.PrimaryLoc = "Hall closet"
	both := named("both", models.Checking())
	both.SecondaryLoc = "Hall closet"

	t.Run("matches primary or secondary", func(t *testing.T) {
		got := StockCheckView([]*models.Item{pantry, closet, both}, "Hall closet")
		if len(got) != 2 {
			t.Fatalf("expected 2 items, got %d", len(got))
		}
	})

	t.Run("all sentinel disables the filter", func(t *testing.T) {
		got := StockCheckView([]*models.Item{pantry, closet, both}, models.LocationFilterAll)
		if len(got) != 3 {
			t.Fatalf("expected 3 items, got %d", len(got))
		}
	})
}

func TestShoppingListView(t *testing.T) {
	collected := named("collected", models.Collected())
	listed := named("listed", models.Listed())
	flagged := named("flagged", models.Flagged())

	got := ShoppingListView([]*models.Item{collected, listed, flagged})
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0] != listed || got[1] != collected {
		t.Fatalf("uncollected items must sort first, got %v then %v", got[0].Name, got[1].Name)
	}
}

func TestFlaggedItems(t *testing.T) {
	items := []*models.Item{
		named("a", models.Flagged()),
		named("b", models.Checking()),
		named("c", models.Listed()),
	}
	got := FlaggedItems(items)
	if len(got) != 1 || got[0].Name != "a" {
		t.Fatalf("expected only the flagged item, got %d items", len(got))
	}
}
