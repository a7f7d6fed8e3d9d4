package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/pantry/services/inventory/domain/models"
)

// StateChange is one entry of an atomic batch transition.
type StateChange struct {
	ItemID uuid.UUID
	Phase  models.Phase
}

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Writes mirror the old realtime-store contract: single-document updates for
// per-item edits and an all-or-nothing batch for the two bulk transitions.
type ItemRepository interface {
	Save(ctx context.Context, item *models.Item) error
	GetByID(ctx context.Context, householdID, id uuid.UUID) (*models.Item, error)

	// FindByHousehold retrieves every item for the household, ordered by name.
	FindByHousehold(ctx context.Context, householdID uuid.UUID) ([]*models.Item, error)

	// Update persists the descriptive fields (name, realName, category,
	// locations). It never touches the phase or shopping fields.
	Update(ctx context.Context, item *models.Item) error

	// UpdateState persists a single-item phase change.
	UpdateState(ctx context.Context, householdID, id uuid.UUID, phase models.Phase) error

	// UpdateShoppingFields overwrites quantity and price.
	UpdateShoppingFields(ctx context.Context, householdID, id uuid.UUID, quantity int, price int64) error

	// BatchUpdateStates applies all changes in one transaction: either every
	// targeted item transitions or none do.
	BatchUpdateStates(ctx context.Context, householdID uuid.UUID, changes []StateChange) error

	// ResetAll is the finish-shopping-trip write: one atomic update putting
	// every item of the household back into the Flagged phase. Returns the
	// number of items reset.
	ResetAll(ctx context.Context, householdID uuid.UUID) (int, error)

	// Delete permanently removes an item scoped to the household.
	Delete(ctx context.Context, householdID, id uuid.UUID) error

	// Exists reports whether an item with the given ID exists for the household.
	Exists(ctx context.Context, householdID, id uuid.UUID) (bool, error)
}
