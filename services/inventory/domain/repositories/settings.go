package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/pantry/services/inventory/domain/models"
)

// SettingsRepository persists the per-household budget singleton with upsert
// semantics. Get returns zero-point defaults for households that have never
// saved points.
type SettingsRepository interface {
	Get(ctx context.Context, householdID uuid.UUID) (*models.BudgetSettings, error)
	Upsert(ctx context.Context, settings *models.BudgetSettings) error
}
