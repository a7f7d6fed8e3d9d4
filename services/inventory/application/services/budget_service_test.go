package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	invdomain "github.com/ghuser/pantry/services/inventory/domain"
	"github.com/ghuser/pantry/services/inventory/domain/models"
)

type fakeSettingsRepo struct {
	settings map[uuid.UUID]*models.BudgetSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: make(map[uuid.UUID]*models.BudgetSettings)}
}

func (r *fakeSettingsRepo) Get(_ context.Context, householdID uuid.UUID) (*models.BudgetSettings, error) {
	if s, ok := r.settings[householdID]; ok {
		copied := *s
		return &copied, nil
	}
	return models.DefaultBudgetSettings(householdID), nil
}

func (r *fakeSettingsRepo) Upsert(_ context.Context, s *models.BudgetSettings) error {
	copied := *s
	r.settings[s.HouseholdID] = &copied
	return nil
}

func TestBudgetService_Summary(t *testing.T) {
	ctx := context.Background()
	householdID := uuid.New()

	settings := newFakeSettingsRepo()
	settings.settings[householdID] = &models.BudgetSettings{HouseholdID: householdID, Points: 1000, LoyaltyPoints: 250}

	listed := testItem("a", models.Listed())
	listed.Price, listed.Quantity = 300, 2
	stocked := testItem("b", models.Checking())
	stocked.Price, stocked.Quantity = 999, 9

	svc := NewBudgetService(settings, newFakeItemRepo(listed, stocked))

	summary, err := svc.Summary(ctx, householdID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Budget != 1500 {
		t.Fatalf("Budget = %d, want 1500", summary.Budget)
	}
	if summary.TotalCommitted != 600 {
		t.Fatalf("TotalCommitted = %d, want 600", summary.TotalCommitted)
	}
	if summary.Remaining != 900 {
		t.Fatalf("Remaining = %d, want 900", summary.Remaining)
	}
	if summary.LoyaltyPoints != 250 {
		t.Fatalf("LoyaltyPoints = %d, want 250", summary.LoyaltyPoints)
	}
}

func TestBudgetService_Summary_OverBudget(t *testing.T) {
	ctx := context.Background()
	householdID := uuid.New()

	settings := newFakeSettingsRepo()
	settings.settings[householdID] = &models.BudgetSettings{HouseholdID: householdID, Points: 100}

	item := testItem("a", models.Listed())
	item.Price, item.Quantity = 200, 1

	svc := NewBudgetService(settings, newFakeItemRepo(item))

	summary, err := svc.Summary(ctx, householdID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Remaining != -50 {
		t.Fatalf("Remaining = %d, want -50 (over budget is a valid state)", summary.Remaining)
	}
}

func TestBudgetService_SetPoints(t *testing.T) {
	ctx := context.Background()
	householdID := uuid.New()
	settings := newFakeSettingsRepo()
	svc := NewBudgetService(settings, newFakeItemRepo())

	t.Run("upserts the balance", func(t *testing.T) {
		if err := svc.SetPoints(ctx, householdID, 1200); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if settings.settings[householdID].Points != 1200 {
			t.Fatalf("points not persisted: %+v", settings.settings[householdID])
		}
	})

	t.Run("negative balance rejected", func(t *testing.T) {
		err := svc.SetPoints(ctx, householdID, -1)
		if !errors.Is(err, invdomain.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})
}
