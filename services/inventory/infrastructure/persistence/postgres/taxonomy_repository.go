package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/pantry/pkg/database"
	"github.com/ghuser/pantry/services/inventory/domain/models"
)

// TaxonomyRepository implements repositories.TaxonomyRepository against
// PostgreSQL. The label sets are stored as jsonb documents, one row per
// household, written whole on every mutation.
type TaxonomyRepository struct {
	db *database.Database
}

// NewTaxonomyRepository returns a TaxonomyRepository backed by the given pool.
func NewTaxonomyRepository(db *database.Database) *TaxonomyRepository {
	return &TaxonomyRepository{db: db}
}

// Get loads the household's taxonomy, returning the seeded defaults when no
// row exists yet. The "none" sentinel is re-appended on read in case an older
// writer stripped it.
func (r *TaxonomyRepository) Get(ctx context.Context, householdID uuid.UUID) (*models.Taxonomy, error) {
	var catJSON, locJSON []byte
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT categories, locations
		FROM inventory_taxonomies
		WHERE household_id = $1`,
		householdID,
	).Scan(&catJSON, &locJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NewTaxonomy(householdID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("query taxonomy: %w", err)
	}

	tax := &models.Taxonomy{HouseholdID: householdID}
	if err := json.Unmarshal(catJSON, &tax.Categories); err != nil {
		return nil, fmt.Errorf("unmarshal categories: %w", err)
	}
	var locations []string
	if err := json.Unmarshal(locJSON, &locations); err != nil {
		return nil, fmt.Errorf("unmarshal locations: %w", err)
	}
	tax.Locations = locations
	if !hasSentinel(locations) {
		tax.Locations = append(tax.Locations, models.LocationNone)
	}
	return tax, nil
}

// Save upserts the entire label sets for the household.
func (r *TaxonomyRepository) Save(ctx context.Context, tax *models.Taxonomy) error {
	catJSON, err := json.Marshal(tax.Categories)
	if err != nil {
		return fmt.Errorf("marshal categories: %w", err)
	}
	locJSON, err := json.Marshal(tax.Locations)
	if err != nil {
		return fmt.Errorf("marshal locations: %w", err)
	}

	_, err = r.db.DB().ExecContext(ctx, `
		INSERT INTO inventory_taxonomies (household_id, categories, locations)
		VALUES ($1, $2, $3)
		ON CONFLICT (household_id)
		DO UPDATE SET categories = EXCLUDED.categories, locations = EXCLUDED.locations`,
		tax.HouseholdID, catJSON, locJSON,
	)
	if err != nil {
		return fmt.Errorf("upsert taxonomy: %w", err)
	}
	return nil
}

func hasSentinel(locations []string) bool {
	for _, l := range locations {
		if l == models.LocationNone {
			return true
		}
	}
	return false
}
