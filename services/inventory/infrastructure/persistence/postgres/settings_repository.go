package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/pantry/pkg/database"
	"github.com/ghuser/pantry/services/inventory/domain/models"
)

// SettingsRepository implements repositories.SettingsRepository against
// PostgreSQL: one budget-settings row per household with upsert semantics,
// like the old settings/points document.
type SettingsRepository struct {
	db *database.Database
}

// NewSettingsRepository returns a SettingsRepository backed by the given pool.
func NewSettingsRepository(db *database.Database) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get loads the household's budget settings, returning zero-point defaults
// when no row exists yet.
func (r *SettingsRepository) Get(ctx context.Context, householdID uuid.UUID) (*models.BudgetSettings, error) {
	settings := &models.BudgetSettings{HouseholdID: householdID}
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT points, loyalty_points
		FROM inventory_budget_settings
		WHERE household_id = $1`,
		householdID,
	).Scan(&settings.Points, &settings.LoyaltyPoints)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultBudgetSettings(householdID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}
	return settings, nil
}

// Upsert writes the budget settings, creating the row on first save.
func (r *SettingsRepository) Upsert(ctx context.Context, settings *models.BudgetSettings) error {
	_, err := r.db.DB().ExecContext(ctx, `
		INSERT INTO inventory_budget_settings (household_id, points, loyalty_points)
		VALUES ($1, $2, $3)
		ON CONFLICT (household_id)
		DO UPDATE SET points = EXCLUDED.points, loyalty_points = EXCLUDED.loyalty_points`,
		settings.HouseholdID, settings.Points, settings.LoyaltyPoints,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
