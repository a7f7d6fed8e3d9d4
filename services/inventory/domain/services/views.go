package services

import (
	"sort"

	"github.com/ghuser/pantry/services/inventory/domain/models"
)

// StockCheckView projects the stock-check list: items not on the shopping
// list, optionally narrowed to one location (matching either location slot;
// models.LocationFilterAll or "" disables the filter), with flagged items
// sorted first. The sort is stable so the store's name order is preserved
// within each group.
func StockCheckView(items []*models.Item, location string) []*models.Item {
	out := make([]*models.Item, 0, len(items))
	for _, i := range items {
		if !i.Phase.NeedsPurchase() && i.MatchesLocation(location) {
			out = append(out, i)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Phase.IsFlagged() && !out[b].Phase.IsFlagged()
	})
	return out
}

// ShoppingListView projects the active shopping list: items marked for
// purchase, with uncollected items sorted before those already in the cart.
func ShoppingListView(items []*models.Item) []*models.Item {
	out := make([]*models.Item, 0, len(items))
	for _, i := range items {
		if i.Phase.NeedsPurchase() {
			out = append(out, i)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return !out[a].Phase.IsCollected() && out[b].Phase.IsCollected()
	})
	return out
}

// FlaggedItems returns the items a confirm-to-buy-list batch would target.
func FlaggedItems(items []*models.Item) []*models.Item {
	out := make([]*models.Item, 0, len(items))
	for _, i := range items {
		if i.Phase.IsFlagged() {
			out = append(out, i)
		}
	}
	return out
}
