package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	pkgcache "github.com/ghuser/pantry/pkg/cache"
	invdomain "github.com/ghuser/pantry/services/inventory/domain"
	"github.com/ghuser/pantry/services/inventory/domain/models"
	"github.com/ghuser/pantry/services/inventory/domain/repositories"
	domainsvcs "github.com/ghuser/pantry/services/inventory/domain/services"
)

// ShoppingService is the state transition engine: the per-item toggles plus
// the two atomic bulk operations. Confirmation for bulk operations happens in
// the client; the engine only checks that the flag arrived.
type ShoppingService struct {
	repo  repositories.ItemRepository
	cache *pkgcache.ItemCache
}

// NewShoppingService returns a ShoppingService backed by the given repository.
// cache may be nil; state writes invalidate the affected entries.
func NewShoppingService(repo repositories.ItemRepository, itemCache *pkgcache.ItemCache) *ShoppingService {
	return &ShoppingService{repo: repo, cache: itemCache}
}

// ToggleFlag flips the stock-check flag on an in-stock item
// (Checking ↔ Flagged).
func (s *ShoppingService) ToggleFlag(ctx context.Context, householdID, id uuid.UUID) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, householdID, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if err := item.ToggleFlag(); err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidTransition, err)
	}
	if err := s.repo.UpdateState(ctx, householdID, id, item.Phase); err != nil {
		return nil, fmt.Errorf("update state: %w", err)
	}
	s.invalidate(householdID, id)
	return item, nil
}

// ToggleCollected flips the in-cart mark on a listed item
// (Listed ↔ Collected).
func (s *ShoppingService) ToggleCollected(ctx context.Context, householdID, id uuid.UUID) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, householdID, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if err := item.ToggleCollected(); err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidTransition, err)
	}
	if err := s.repo.UpdateState(ctx, householdID, id, item.Phase); err != nil {
		return nil, fmt.Errorf("update state: %w", err)
	}
	s.invalidate(householdID, id)
	return item, nil
}

// SetShoppingFields overwrites quantity and/or price on a listed item. Nil
// means "leave unchanged" — the client debounces rapid edits into one write
// per changed field, so most calls carry a single field.
func (s *ShoppingService) SetShoppingFields(ctx context.Context, householdID, id uuid.UUID, quantity *int, price *int64) (*models.Item, error) {
	item, err := s.repo.GetByID(ctx, householdID, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if !item.Phase.Editable() {
		return nil, fmt.Errorf("%w: shopping fields are editable only while listed", invdomain.ErrInvalidTransition)
	}
	if quantity != nil {
		if err := item.SetQuantity(*quantity); err != nil {
			return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidAmount, err)
		}
	}
	if price != nil {
		if err := item.SetPrice(*price); err != nil {
			return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidAmount, err)
		}
	}
	if err := s.repo.UpdateShoppingFields(ctx, householdID, id, item.Quantity, item.Price); err != nil {
		return nil, fmt.Errorf("update shopping fields: %w", err)
	}
	s.invalidate(householdID, id)
	return item, nil
}

// ConfirmToBuyList moves every flagged item onto the shopping list in one
// atomic batch. Zero flagged items is a normal no-op. Returns the number of
// items moved.
func (s *ShoppingService) ConfirmToBuyList(ctx context.Context, householdID uuid.UUID, confirmed bool) (int, error) {
	if !confirmed {
		return 0, invdomain.ErrConfirmationRequired
	}

	items, err := s.repo.FindByHousehold(ctx, householdID)
	if err != nil {
		return 0, fmt.Errorf("list items: %w", err)
	}

	flagged := domainsvcs.FlaggedItems(items)
	if len(flagged) == 0 {
		return 0, nil
	}

	changes := make([]repositories.StateChange, len(flagged))
	for i, item := range flagged {
		changes[i] = repositories.StateChange{
			ItemID: item.ID,
			Phase:  item.Phase.ConfirmToList(),
		}
	}

	if err := s.repo.BatchUpdateStates(ctx, householdID, changes); err != nil {
		return 0, fmt.Errorf("confirm to buy list: %w", err)
	}
	for _, c := range changes {
		s.invalidate(householdID, c.ItemID)
	}
	return len(changes), nil
}

// FinishTrip resets the entire collection for the next stock check: every
// item, regardless of phase, goes back to Flagged in one atomic write.
// Returns the number of items reset.
func (s *ShoppingService) FinishTrip(ctx context.Context, householdID uuid.UUID, confirmed bool) (int, error) {
	if !confirmed {
		return 0, invdomain.ErrConfirmationRequired
	}
	n, err := s.repo.ResetAll(ctx, householdID)
	if err != nil {
		return 0, fmt.Errorf("finish trip: %w", err)
	}
	// Stale cache entries are re-warmed by the worker when it sees the
	// trip-finished event.
	return n, nil
}

func (s *ShoppingService) invalidate(householdID, id uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), householdID, id)
	}
}
