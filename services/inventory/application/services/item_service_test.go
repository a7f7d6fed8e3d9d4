package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	invdomain "github.com/ghuser/pantry/services/inventory/domain"
	"github.com/ghuser/pantry/services/inventory/domain/models"
)

func TestItemService_Create(t *testing.T) {
	ctx := context.Background()
	householdID := uuid.New()

	t.Run("empty name rejected before any write", func(t *testing.T) {
		repo := newFakeItemRepo()
		svc := NewItemService(repo, nil)

		_, err := svc.Create(ctx, householdID, ItemDetails{Name: ""})
		if !errors.Is(err, invdomain.ErrInvalidItemName) {
			t.Fatalf("expected ErrInvalidItemName, got %v", err)
		}
		if len(repo.items) != 0 {
			t.Fatal("no record may appear in the collection")
		}
	})

	t.Run("new item starts flagged with defaults", func(t *testing.T) {
		repo := newFakeItemRepo()
		svc := NewItemService(repo, nil)

		item, err := svc.Create(ctx, householdID, ItemDetails{
			Name:       "Dish soap",
			Category:   "Kitchen",
			PrimaryLoc: "Pantry",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Price != 0 || item.Quantity != 1 {
			t.Fatalf("unexpected defaults: price=%d quantity=%d", item.Price, item.Quantity)
		}
		if !item.Phase.IsFlagged() {
			t.Fatalf("expected flagged, got %v", item.Phase)
		}
		if _, ok := repo.items[item.ID]; !ok {
			t.Fatal("item not persisted")
		}
	})
}

func TestItemService_UpdateDetails(t *testing.T) {
	ctx := context.Background()
	item := testItem("soap", models.Listed())
	repo := newFakeItemRepo(item)
	svc := NewItemService(repo, nil)

	updated, err := svc.UpdateDetails(ctx, item.HouseholdID, item.ID, ItemDetails{
		Name:       "Scrub sponge",
		Category:   "Bath",
		PrimaryLoc: "Under sink",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Scrub sponge" {
		t.Fatalf("name not updated: %q", updated.Name)
	}
	if repo.items[item.ID].Phase != models.Listed() {
		t.Fatalf("editing details must not change the phase, got %v", repo.items[item.ID].Phase)
	}
}

func TestItemService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("requires confirmation", func(t *testing.T) {
		item := testItem("soap", models.Checking())
		repo := newFakeItemRepo(item)
		svc := NewItemService(repo, nil)

		err := svc.Delete(ctx, item.HouseholdID, item.ID, false)
		if !errors.Is(err, invdomain.ErrConfirmationRequired) {
			t.Fatalf("expected ErrConfirmationRequired, got %v", err)
		}
		if _, ok := repo.items[item.ID]; !ok {
			t.Fatal("declined confirmation must not delete")
		}
	})

	t.Run("removes the record", func(t *testing.T) {
		item := testItem("soap", models.Checking())
		repo := newFakeItemRepo(item)
		svc := NewItemService(repo, nil)

		if err := svc.Delete(ctx, item.HouseholdID, item.ID, true); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := repo.items[item.ID]; ok {
			t.Fatal("item not deleted")
		}
	})

	t.Run("missing item", func(t *testing.T) {
		svc := NewItemService(newFakeItemRepo(), nil)
		err := svc.Delete(ctx, uuid.New(), uuid.New(), true)
		if !errors.Is(err, invdomain.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}
