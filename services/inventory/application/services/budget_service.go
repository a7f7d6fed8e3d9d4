package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	invdomain "github.com/ghuser/pantry/services/inventory/domain"
	"github.com/ghuser/pantry/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/pantry/services/inventory/domain/services"
)

// BudgetSummary is the derived budget view: spendable budget from points,
// the committed shopping-list total, and what is left. Remaining may be
// negative (over budget). LoyaltyPoints is display-only.
type BudgetSummary struct {
	Points         int64
	LoyaltyPoints  int64
	Budget         int64
	TotalCommitted int64
	Remaining      int64
}

// BudgetService derives the budget summary and edits the points singleton.
type BudgetService struct {
	settings repositories.SettingsRepository
	items    repositories.ItemRepository
}

// NewBudgetService returns a BudgetService over the settings and item repositories.
func NewBudgetService(settings repositories.SettingsRepository, items repositories.ItemRepository) *BudgetService {
	return &BudgetService{settings: settings, items: items}
}

// Summary computes the budget from the stored point balance and the live item
// collection.
func (s *BudgetService) Summary(ctx context.Context, householdID uuid.UUID) (*BudgetSummary, error) {
	settings, err := s.settings.Get(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	items, err := s.items.FindByHousehold(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return &BudgetSummary{
		Points:         settings.Points,
		LoyaltyPoints:  settings.LoyaltyPoints,
		Budget:         domainsvcs.SpendableBudget(settings.Points),
		TotalCommitted: domainsvcs.TotalCommitted(items),
		Remaining:      domainsvcs.Remaining(settings.Points, items),
	}, nil
}

// SetPoints overwrites the point balance with upsert semantics, like the old
// settings/points document.
func (s *BudgetService) SetPoints(ctx context.Context, householdID uuid.UUID, points int64) error {
	settings, err := s.settings.Get(ctx, householdID)
	if err != nil {
		return fmt.Errorf("get settings: %w", err)
	}
	if err := settings.SetPoints(points); err != nil {
		return fmt.Errorf("%w: %w", invdomain.ErrInvalidAmount, err)
	}
	if err := s.settings.Upsert(ctx, settings); err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
