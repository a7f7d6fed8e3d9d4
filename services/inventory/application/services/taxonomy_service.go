package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	invdomain "github.com/ghuser/pantry/services/inventory/domain"
	"github.com/ghuser/pantry/services/inventory/domain/models"
	"github.com/ghuser/pantry/services/inventory/domain/repositories"
)

// TaxonomyService edits the household's category and location label sets.
// Every mutation persists the whole updated set. Removals never cascade to
// items referencing the removed label.
type TaxonomyService struct {
	repo repositories.TaxonomyRepository
}

// NewTaxonomyService returns a TaxonomyService backed by the given repository.
func NewTaxonomyService(repo repositories.TaxonomyRepository) *TaxonomyService {
	return &TaxonomyService{repo: repo}
}

// Get returns the current taxonomy, seeding defaults for new households.
func (s *TaxonomyService) Get(ctx context.Context, householdID uuid.UUID) (*models.Taxonomy, error) {
	tax, err := s.repo.Get(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("get taxonomy: %w", err)
	}
	return tax, nil
}

// AddCategory appends a category label and persists the set.
func (s *TaxonomyService) AddCategory(ctx context.Context, householdID uuid.UUID, name string) (*models.Taxonomy, error) {
	return s.mutate(ctx, householdID, func(t *models.Taxonomy) error {
		return t.AddCategory(name)
	})
}

// RemoveCategory drops a category label and persists the set.
func (s *TaxonomyService) RemoveCategory(ctx context.Context, householdID uuid.UUID, name string) (*models.Taxonomy, error) {
	return s.mutate(ctx, householdID, func(t *models.Taxonomy) error {
		t.RemoveCategory(name)
		return nil
	})
}

// AddLocation appends a location label and persists the set.
func (s *TaxonomyService) AddLocation(ctx context.Context, householdID uuid.UUID, name string) (*models.Taxonomy, error) {
	return s.mutate(ctx, householdID, func(t *models.Taxonomy) error {
		return t.AddLocation(name)
	})
}

// RemoveLocation drops a location label and persists the set. The "none"
// sentinel survives every mutation.
func (s *TaxonomyService) RemoveLocation(ctx context.Context, householdID uuid.UUID, name string) (*models.Taxonomy, error) {
	return s.mutate(ctx, householdID, func(t *models.Taxonomy) error {
		return t.RemoveLocation(name)
	})
}

func (s *TaxonomyService) mutate(ctx context.Context, householdID uuid.UUID, fn func(*models.Taxonomy) error) (*models.Taxonomy, error) {
	tax, err := s.repo.Get(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("get taxonomy: %w", err)
	}
	if err := fn(tax); err != nil {
		return nil, fmt.Errorf("%w: %w", invdomain.ErrInvalidLabel, err)
	}
	if err := s.repo.Save(ctx, tax); err != nil {
		return nil, fmt.Errorf("save taxonomy: %w", err)
	}
	return tax, nil
}
