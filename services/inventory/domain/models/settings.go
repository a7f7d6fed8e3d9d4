package models

import (
	"fmt"

	"github.com/google/uuid"
)

// BudgetSettings is the per-household budget singleton. Points drive the
// spendable budget; LoyaltyPoints is a display-only balance with no budget
// linkage.
type BudgetSettings struct {
	HouseholdID   uuid.UUID
	Points        int64
	LoyaltyPoints int64
}

// DefaultBudgetSettings returns the zero-points settings used before the
// household has saved anything.
func DefaultBudgetSettings(householdID uuid.UUID) *BudgetSettings {
	return &BudgetSettings{HouseholdID: householdID}
}

// SetPoints overwrites the point balance.
func (s *BudgetSettings) SetPoints(points int64) error {
	if points < 0 {
		return fmt.Errorf("points must not be negative")
	}
	s.Points = points
	return nil
}
