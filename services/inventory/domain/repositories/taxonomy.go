package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/pantry/services/inventory/domain/models"
)

// TaxonomyRepository persists the household's label sets. Save always writes
// the entire updated set, not a delta, matching the old store's document
// semantics. Get returns the seeded defaults when the household has never
// saved a taxonomy.
type TaxonomyRepository interface {
	Get(ctx context.Context, householdID uuid.UUID) (*models.Taxonomy, error)
	Save(ctx context.Context, taxonomy *models.Taxonomy) error
}
