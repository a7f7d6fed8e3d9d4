// Package services contains stateless domain services for the inventory
// bounded context: the budget calculator and the two list projections.
// Everything here operates purely on domain types with no external
// dependencies beyond stdlib and the domain layer.
package services

import (
	"math"

	"github.com/ghuser/pantry/services/inventory/domain/models"
)

// PointsMultiplier converts the household's point balance into spendable yen.
const PointsMultiplier = 1.5

// SpendableBudget derives the budget from the point balance:
// floor(points × 1.5).
func SpendableBudget(points int64) int64 {
	return int64(math.Floor(float64(points) * PointsMultiplier))
}

// TotalCommitted sums price × quantity over every item currently on the
// shopping list. Collected items stay in the sum; leaving the list is the only
// way out.
func TotalCommitted(items []*models.Item) int64 {
	var total int64
	for _, i := range items {
		if i.Phase.NeedsPurchase() {
			total += i.Subtotal()
		}
	}
	return total
}

// Remaining is the spendable budget minus the committed total. A negative
// result is a valid over-budget state, not an error.
func Remaining(points int64, items []*models.Item) int64 {
	return SpendableBudget(points) - TotalCommitted(items)
}
