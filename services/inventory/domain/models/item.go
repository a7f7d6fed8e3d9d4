package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Item is the core aggregate: one physical good tracked by the household.
type Item struct {
	ID           uuid.UUID
	HouseholdID  uuid.UUID // tenant scope — always filter by this in queries
	Name         ItemName
	RealName     string    // optional concrete product description
	Category     string    // label from the taxonomy; stale values are tolerated
	PrimaryLoc   string
	SecondaryLoc string    // LocationNone when the item has a single location
	Price        int64     // unit price in yen, tax included
	Quantity     int
	Phase        Phase
	CreatedAt    time.Time
}

// NewItem constructs a freshly registered Item. New items start Flagged so
// they show up at the top of the next stock check, with price 0 and quantity 1.
func NewItem(householdID uuid.UUID, name ItemName, realName, category, primaryLoc, secondaryLoc string) (*Item, error) {
	if secondaryLoc == "" {
		secondaryLoc = LocationNone
	}
	return &Item{
		ID:           uuid.New(),
		HouseholdID:  householdID,
		Name:         name,
		RealName:     realName,
		Category:     category,
		PrimaryLoc:   primaryLoc,
		SecondaryLoc: secondaryLoc,
		Price:        0,
		Quantity:     1,
		Phase:        Flagged(),
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// Subtotal is the line total the budget calculator sums over.
func (i *Item) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

// UpdateDetails overwrites the descriptive fields from an edit form.
// It never touches the phase or the shopping fields.
func (i *Item) UpdateDetails(name ItemName, realName, category, primaryLoc, secondaryLoc string) {
	if secondaryLoc == "" {
		secondaryLoc = LocationNone
	}
	i.Name = name
	i.RealName = realName
	i.Category = category
	i.PrimaryLoc = primaryLoc
	i.SecondaryLoc = secondaryLoc
}

// ToggleFlag flips the stock-check flag on an in-stock item.
func (i *Item) ToggleFlag() error {
	p, err := i.Phase.ToggleFlag()
	if err != nil {
		return err
	}
	i.Phase = p
	return nil
}

// ToggleCollected flips the in-cart mark on a listed item.
func (i *Item) ToggleCollected() error {
	p, err := i.Phase.ToggleCollected()
	if err != nil {
		return err
	}
	i.Phase = p
	return nil
}

// SetQuantity overwrites the quantity. Editable only while Listed.
func (i *Item) SetQuantity(n int) error {
	if !i.Phase.Editable() {
		return fmt.Errorf("quantity is editable only while the item is listed and uncollected")
	}
	if n < 0 {
		return fmt.Errorf("quantity must not be negative")
	}
	i.Quantity = n
	return nil
}

// SetPrice overwrites the unit price. Editable only while Listed.
func (i *Item) SetPrice(p int64) error {
	if !i.Phase.Editable() {
		return fmt.Errorf("price is editable only while the item is listed and uncollected")
	}
	if p < 0 {
		return fmt.Errorf("price must not be negative")
	}
	i.Price = p
	return nil
}

// MatchesLocation reports whether the item sits at the given location,
// checking both the primary and secondary slots. The LocationFilterAll
// sentinel matches everything.
func (i *Item) MatchesLocation(location string) bool {
	if location == "" || location == LocationFilterAll {
		return true
	}
	return i.PrimaryLoc == location || i.SecondaryLoc == location
}
