package models

import (
	"fmt"

	"github.com/google/uuid"
)

const (
	// LocationNone is the reserved secondary-location sentinel. It is always
	// present in the location set, never user-removable, and re-appended after
	// every mutation.
	LocationNone = "none"

	// LocationFilterAll is the stock-check view selector for "no location filter".
	LocationFilterAll = "all"
)

// Taxonomy holds the household's editable category and location label sets.
// Removing a label never cascades to items referencing it; stale references
// are tolerated.
type Taxonomy struct {
	HouseholdID uuid.UUID
	Categories  []string
	Locations   []string // invariant: ends with LocationNone, which appears exactly once
}

// NewTaxonomy seeds a fresh household with the default labels.
func NewTaxonomy(householdID uuid.UUID) *Taxonomy {
	return &Taxonomy{
		HouseholdID: householdID,
		Categories:  []string{"Kitchen", "Bath", "Washroom", "Toilet"},
		Locations:   []string{"Pantry", "Hall closet", "Under sink", LocationNone},
	}
}

// AddCategory appends a category label. Empty and duplicate labels are rejected.
func (t *Taxonomy) AddCategory(name string) error {
	if name == "" {
		return fmt.Errorf("category name must not be empty")
	}
	if contains(t.Categories, name) {
		return fmt.Errorf("category %q already exists", name)
	}
	t.Categories = append(t.Categories, name)
	return nil
}

// RemoveCategory drops a category label. Removing a label that is not present
// is a no-op; items referencing the removed category are left untouched.
func (t *Taxonomy) RemoveCategory(name string) {
	t.Categories = remove(t.Categories, name)
}

// AddLocation appends a location label ahead of the sentinel.
func (t *Taxonomy) AddLocation(name string) error {
	if name == "" {
		return fmt.Errorf("location name must not be empty")
	}
	if name == LocationNone {
		return fmt.Errorf("location %q is reserved", LocationNone)
	}
	if contains(t.Locations, name) {
		return fmt.Errorf("location %q already exists", name)
	}
	t.Locations = append(remove(t.Locations, LocationNone), name, LocationNone)
	return nil
}

// RemoveLocation drops a location label. The sentinel cannot be removed and is
// re-appended afterwards; items referencing the removed location are left
// untouched.
func (t *Taxonomy) RemoveLocation(name string) error {
	if name == LocationNone {
		return fmt.Errorf("location %q is reserved", LocationNone)
	}
	t.Locations = append(remove(remove(t.Locations, name), LocationNone), LocationNone)
	return nil
}

// RemovableLocations is the user-facing location list: everything except the
// sentinel.
func (t *Taxonomy) RemovableLocations() []string {
	return remove(t.Locations, LocationNone)
}

func contains(set []string, name string) bool {
	for _, s := range set {
		if s == name {
			return true
		}
	}
	return false
}

func remove(set []string, name string) []string {
	out := make([]string, 0, len(set))
	for _, s := range set {
		if s != name {
			out = append(out, s)
		}
	}
	return out
}
