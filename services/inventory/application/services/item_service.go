package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/pantry/pkg/cache"
	invdomain "github.com/ghuser/pantry/services/inventory/domain"
	"github.com/ghuser/pantry/services/inventory/domain/models"
	"github.com/ghuser/pantry/services/inventory/domain/repositories"
)

// ItemService orchestrates creation, editing and deletion of Items.
// Event publishing is handled by the repository layer (outbox pattern).
// Single-item reads are served from Redis cache when available.
type ItemService struct {
	repo  repositories.ItemRepository
	cache *pkgcache.ItemCache
}

// NewItemService returns an ItemService wired with the given repository and cache.
func NewItemService(repo repositories.ItemRepository, itemCache *pkgcache.ItemCache) *ItemService {
	return &ItemService{repo: repo, cache: itemCache}
}

// ItemDetails carries the descriptive fields of the create and edit forms.
// The two flows use separate request structs at the handler layer so an edit
// never leaks stale fields into a subsequent create.
type ItemDetails struct {
	Name         string
	RealName     string
	Category     string
	PrimaryLoc   string
	SecondaryLoc string
}

// Create validates and persists a new Item. The repository publishes
// ItemCreatedEvent. New items start flagged for the next stock check.
func (s *ItemService) Create(ctx context.Context, householdID uuid.UUID, details ItemDetails) (*models.Item, error) {
	name, err := models.NewItemName(details.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidItemName, err)
	}

	item, err := models.NewItem(householdID, name, details.RealName, details.Category,
		details.PrimaryLoc, details.SecondaryLoc)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("save item: %w", err)
	}

	return item, nil
}

// GetByID retrieves an Item using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ItemService) GetByID(ctx context.Context, householdID, id uuid.UUID) (*models.Item, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, householdID, id); err == nil {
			return cachedToItem(cached), nil
		} else if !errors.Is(err, redis.Nil) {
			// Cache error — fall through to Postgres.
			_ = err
		}
	}

	item, err := s.repo.GetByID(ctx, householdID, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), itemToCached(item))
		}()
	}

	return item, nil
}

// List returns every item of the household, ordered by name.
func (s *ItemService) List(ctx context.Context, householdID uuid.UUID) ([]*models.Item, error) {
	items, err := s.repo.FindByHousehold(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// UpdateDetails overwrites the descriptive fields of an existing item.
// The phase and shopping fields are untouched.
func (s *ItemService) UpdateDetails(ctx context.Context, householdID, id uuid.UUID, details ItemDetails) (*models.Item, error) {
	name, err := models.NewItemName(details.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidItemName, err)
	}

	item, err := s.repo.GetByID(ctx, householdID, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	item.UpdateDetails(name, details.RealName, details.Category, details.PrimaryLoc, details.SecondaryLoc)
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	s.invalidate(householdID, id)
	return item, nil
}

// Delete permanently removes an item. The confirmation flag must be set; a
// declined confirmation never reaches the engine.
func (s *ItemService) Delete(ctx context.Context, householdID, id uuid.UUID, confirmed bool) error {
	if !confirmed {
		return invdomain.ErrConfirmationRequired
	}
	exists, err := s.repo.Exists(ctx, householdID, id)
	if err != nil {
		return fmt.Errorf("check item: %w", err)
	}
	if !exists {
		return invdomain.ErrItemNotFound
	}
	if err := s.repo.Delete(ctx, householdID, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	s.invalidate(householdID, id)
	return nil
}

func (s *ItemService) invalidate(householdID, id uuid.UUID) {
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), householdID, id)
	}
}

func cachedToItem(c *pkgcache.CachedItem) *models.Item {
	return &models.Item{
		ID:           c.ID,
		HouseholdID:  c.HouseholdID,
		Name:         models.ItemName(c.Name),
		RealName:     c.RealName,
		Category:     c.Category,
		PrimaryLoc:   c.PrimaryLoc,
		SecondaryLoc: c.SecondaryLoc,
		Price:        c.Price,
		Quantity:     c.Quantity,
		Phase:        models.PhaseFromFlags(c.ToBuy, c.IsPacked, c.IsChecking),
		CreatedAt:    c.CreatedAt,
	}
}

func itemToCached(i *models.Item) *pkgcache.CachedItem {
	toBuy, isPacked, isChecking := i.Phase.Flags()
	return &pkgcache.CachedItem{
		ID:           i.ID,
		HouseholdID:  i.HouseholdID,
		Name:         i.Name.String(),
		RealName:     i.RealName,
		Category:     i.Category,
		PrimaryLoc:   i.PrimaryLoc,
		SecondaryLoc: i.SecondaryLoc,
		Price:        i.Price,
		Quantity:     i.Quantity,
		ToBuy:        toBuy,
		IsPacked:     isPacked,
		IsChecking:   isChecking,
		CreatedAt:    i.CreatedAt,
	}
}
