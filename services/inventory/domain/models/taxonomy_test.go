package models

import (
	"testing"

	"github.com/google/uuid"
)

func sentinelCount(locations []string) int {
	n := 0
	for _, l := range locations {
		if l == LocationNone {
			n++
		}
	}
	return n
}

func TestNewTaxonomy(t *testing.T) {
	tax := NewTaxonomy(uuid.New())
	if len(tax.Categories) == 0 {
		t.Fatal("expected seeded categories")
	}
	if sentinelCount(tax.Locations) != 1 {
		t.Fatalf("expected exactly one %q sentinel, got %d", LocationNone, sentinelCount(tax.Locations))
	}
	if tax.Locations[len(tax.Locations)-1] != LocationNone {
		t.Fatalf("sentinel must be last, got %v", tax.Locations)
	}
}

func TestTaxonomy_Categories(t *testing.T) {
	tax := NewTaxonomy(uuid.New())

	t.Run("add", func(t *testing.T) {
		if err := tax.AddCategory("Garage"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !contains(tax.Categories, "Garage") {
			t.Fatal("category not added")
		}
	})

	t.Run("empty rejected", func(t *testing.T) {
		if err := tax.AddCategory(""); err == nil {
			t.Fatal("expected error for empty category")
		}
	})

	t.Run("duplicate rejected", func(t *testing.T) {
		if err := tax.AddCategory("Garage"); err == nil {
			t.Fatal("expected error for duplicate category")
		}
	})

	t.Run("remove", func(t *testing.T) {
		tax.RemoveCategory("Garage")
		if contains(tax.Categories, "Garage") {
			t.Fatal("category not removed")
		}
	})

	t.Run("remove of absent label is a no-op", func(t *testing.T) {
		before := len(tax.Categories)
		tax.RemoveCategory("Attic")
		if len(tax.Categories) != before {
			t.Fatal("removing an absent category changed the set")
		}
	})
}

func TestTaxonomy_Locations(t *testing.T) {
	tax := NewTaxonomy(uuid.New())

	t.Run("add keeps sentinel last and unique", func(t *testing.T) {
		if err := tax.AddLocation("Balcony"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sentinelCount(tax.Locations) != 1 {
			t.Fatalf("expected one sentinel, got %v", tax.Locations)
		}
		if tax.Locations[len(tax.Locations)-1] != LocationNone {
			t.Fatalf("sentinel must be last, got %v", tax.Locations)
		}
	})

	t.Run("remove keeps sentinel exactly once", func(t *testing.T) {
		if err := tax.RemoveLocation("Pantry"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if contains(tax.Locations, "Pantry") {
			t.Fatal("location not removed")
		}
		if sentinelCount(tax.Locations) != 1 {
			t.Fatalf("expected exactly one sentinel after removal, got %v", tax.Locations)
		}
	})

	t.Run("sentinel is reserved", func(t *testing.T) {
		if err := tax.AddLocation(LocationNone); err == nil {
			t.Fatal("expected error adding the reserved sentinel")
		}
		if err := tax.RemoveLocation(LocationNone); err == nil {
			t.Fatal("expected error removing the reserved sentinel")
		}
	})

	t.Run("removable list excludes the sentinel", func(t *testing.T) {
		for _, l := range tax.RemovableLocations() {
			if l == LocationNone {
				t.Fatal("removable list must not contain the sentinel")
			}
		}
	})

	t.Run("removal does not cascade to items", func(t *testing.T) {
		item := &Item{PrimaryLoc: "Hall closet"}
		if err := tax.RemoveLocation("Hall closet"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.PrimaryLoc != "Hall closet" {
			t.Fatal("item location must be left dangling, not rewritten")
		}
	})
}
