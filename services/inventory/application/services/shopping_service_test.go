package services

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"

	invdomain "github.com/ghuser/pantry/services/inventory/domain"
	"github.com/ghuser/pantry/services/inventory/domain/models"
	"github.com/ghuser/pantry/services/inventory/domain/repositories"
)

// fakeItemRepo is an in-memory ItemRepository for service tests. Batch writes
// are all-or-nothing like the real implementation.
type fakeItemRepo struct {
	items     map[uuid.UUID]*models.Item
	failBatch bool
}

func newFakeItemRepo(items ...*models.Item) *fakeItemRepo {
	r := &fakeItemRepo{items: make(map[uuid.UUID]*models.Item)}
	for _, i := range items {
		r.items[i.ID] = i
	}
	return r
}

func (r *fakeItemRepo) Save(_ context.Context, item *models.Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) GetByID(_ context.Context, _, id uuid.UUID) (*models.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, invdomain.ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (r *fakeItemRepo) FindByHousehold(_ context.Context, _ uuid.UUID) ([]*models.Item, error) {
	out := make([]*models.Item, 0, len(r.items))
	for _, i := range r.items {
		copied := *i
		out = append(out, &copied)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Name < out[b].Name })
	return out, nil
}

func (r *fakeItemRepo) Update(_ context.Context, item *models.Item) error {
	stored, ok := r.items[item.ID]
	if !ok {
		return invdomain.ErrItemNotFound
	}
	stored.Name = item.Name
	stored.RealName = item.RealName
	stored.Category = item.Category
	stored.PrimaryLoc = item.PrimaryLoc
	stored.SecondaryLoc = item.SecondaryLoc
	return nil
}

func (r *fakeItemRepo) UpdateState(_ context.Context, _, id uuid.UUID, phase models.Phase) error {
	stored, ok := r.items[id]
	if !ok {
		return invdomain.ErrItemNotFound
	}
	stored.Phase = phase
	return nil
}

func (r *fakeItemRepo) UpdateShoppingFields(_ context.Context, _, id uuid.UUID, quantity int, price int64) error {
	stored, ok := r.items[id]
	if !ok {
		return invdomain.ErrItemNotFound
	}
	stored.Quantity = quantity
	stored.Price = price
	return nil
}

func (r *fakeItemRepo) BatchUpdateStates(_ context.Context, _ uuid.UUID, changes []repositories.StateChange) error {
	if r.failBatch {
		return errors.New("batch failed")
	}
	for _, c := range changes {
		if _, ok := r.items[c.ItemID]; !ok {
			return invdomain.ErrItemNotFound
		}
	}
	for _, c := range changes {
		r.items[c.ItemID].Phase = c.Phase
	}
	return nil
}

func (r *fakeItemRepo) ResetAll(_ context.Context, _ uuid.UUID) (int, error) {
	for _, i := range r.items {
		i.Phase = i.Phase.ResetForCheck()
	}
	return len(r.items), nil
}

func (r *fakeItemRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeItemRepo) Exists(_ context.Context, _, id uuid.UUID) (bool, error) {
	_, ok := r.items[id]
	return ok, nil
}

func testItem(name string, phase models.Phase) *models.Item {
	return &models.Item{
		ID:          uuid.New(),
		HouseholdID: uuid.New(),
		Name:        models.ItemName(name),
		Quantity:    1,
		Phase:       phase,
	}
}

func TestShoppingService_ToggleFlag(t *testing.T) {
	ctx := context.Background()

	t.Run("flips checking to flagged and back", func(t *testing.T) {
		item := testItem("soap", models.Checking())
		repo := newFakeItemRepo(item)
		svc := NewShoppingService(repo, nil)

		if _, err := svc.ToggleFlag(ctx, item.HouseholdID, item.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !repo.items[item.ID].Phase.IsFlagged() {
			t.Fatal("expected flagged after first toggle")
		}

		if _, err := svc.ToggleFlag(ctx, item.HouseholdID, item.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.items[item.ID].Phase != models.Checking() {
			t.Fatal("expected checking after second toggle")
		}
	})

	t.Run("rejected for listed items", func(t *testing.T) {
		item := testItem("soap", models.Listed())
		svc := NewShoppingService(newFakeItemRepo(item), nil)

		_, err := svc.ToggleFlag(ctx, item.HouseholdID, item.ID)
		if !errors.Is(err, invdomain.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestShoppingService_ToggleCollected(t *testing.T) {
	ctx := context.Background()
	item := testItem("soap", models.Listed())
	repo := newFakeItemRepo(item)
	svc := NewShoppingService(repo, nil)

	if _, err := svc.ToggleCollected(ctx, item.HouseholdID, item.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.items[item.ID].Phase.IsCollected() {
		t.Fatal("expected collected after toggle")
	}

	_, err := svc.ToggleCollected(ctx, item.HouseholdID, uuid.New())
	if !errors.Is(err, invdomain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestShoppingService_SetShoppingFields(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites quantity and price while listed", func(t *testing.T) {
		item := testItem("soap", models.Listed())
		repo := newFakeItemRepo(item)
		svc := NewShoppingService(repo, nil)

		qty, price := 3, int64(498)
		if _, err := svc.SetShoppingFields(ctx, item.HouseholdID, item.ID, &qty, &price); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.items[item.ID].Quantity != 3 || repo.items[item.ID].Price != 498 {
			t.Fatalf("fields not persisted: %+v", repo.items[item.ID])
		}
	})

	t.Run("single-field write leaves the other unchanged", func(t *testing.T) {
		item := testItem("soap", models.Listed())
		item.Price = 120
		repo := newFakeItemRepo(item)
		svc := NewShoppingService(repo, nil)

		qty := 5
		if _, err := svc.SetShoppingFields(ctx, item.HouseholdID, item.ID, &qty, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.items[item.ID].Price != 120 {
			t.Fatalf("price must be untouched, got %d", repo.items[item.ID].Price)
		}
	})

	t.Run("rejected after collection", func(t *testing.T) {
		item := testItem("soap", models.Collected())
		svc := NewShoppingService(newFakeItemRepo(item), nil)

		qty := 2
		_, err := svc.SetShoppingFields(ctx, item.HouseholdID, item.ID, &qty, nil)
		if !errors.Is(err, invdomain.ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("rejected for negative values", func(t *testing.T) {
		item := testItem("soap", models.Listed())
		svc := NewShoppingService(newFakeItemRepo(item), nil)

		price := int64(-1)
		_, err := svc.SetShoppingFields(ctx, item.HouseholdID, item.ID, nil, &price)
		if !errors.Is(err, invdomain.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})
}

func TestShoppingService_ConfirmToBuyList(t *testing.T) {
	ctx := context.Background()
	householdID := uuid.New()

	t.Run("moves flagged items only", func(t *testing.T) {
		flagged1 := testItem("a", models.Flagged())
		stocked := testItem("b", models.Checking())
		flagged2 := testItem("c", models.Flagged())
		listed := testItem("d", models.Listed())
		repo := newFakeItemRepo(flagged1, stocked, flagged2, listed)
		svc := NewShoppingService(repo, nil)

		n, err := svc.ConfirmToBuyList(ctx, householdID, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 2 {
			t.Fatalf("expected 2 items moved, got %d", n)
		}
		for _, id := range []uuid.UUID{flagged1.ID, flagged2.ID} {
			p := repo.items[id].Phase
			if !p.NeedsPurchase() || p.IsFlagged() {
				t.Fatalf("flagged item not listed: %v", p)
			}
		}
		if repo.items[stocked.ID].Phase != models.Checking() {
			t.Fatal("unflagged item must be untouched")
		}
		if repo.items[listed.ID].Phase != models.Listed() {
			t.Fatal("already-listed item must be untouched")
		}
	})

	t.Run("zero flagged items is a no-op", func(t *testing.T) {
		repo := newFakeItemRepo(testItem("a", models.Checking()))
		svc := NewShoppingService(repo, nil)

		n, err := svc.ConfirmToBuyList(ctx, householdID, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != 0 {
			t.Fatalf("expected no-op, got %d", n)
		}
	})

	t.Run("missing confirmation rejected", func(t *testing.T) {
		svc := NewShoppingService(newFakeItemRepo(testItem("a", models.Flagged())), nil)

		_, err := svc.ConfirmToBuyList(ctx, householdID, false)
		if !errors.Is(err, invdomain.ErrConfirmationRequired) {
			t.Fatalf("expected ErrConfirmationRequired, got %v", err)
		}
	})

	t.Run("batch failure leaves no partial state", func(t *testing.T) {
		flagged := testItem("a", models.Flagged())
		repo := newFakeItemRepo(flagged)
		repo.failBatch = true
		svc := NewShoppingService(repo, nil)

		if _, err := svc.ConfirmToBuyList(ctx, householdID, true); err == nil {
			t.Fatal("expected batch error")
		}
		if !repo.items[flagged.ID].Phase.IsFlagged() {
			t.Fatal("failed batch must not mutate any item")
		}
	})
}

func TestShoppingService_FinishTrip(t *testing.T) {
	ctx := context.Background()
	householdID := uuid.New()

	t.Run("resets every item regardless of phase", func(t *testing.T) {
		items := []*models.Item{
			testItem("a", models.Checking()),
			testItem("b", models.Flagged()),
			testItem("c", models.Listed()),
			testItem("d", models.Collected()),
		}
		repo := newFakeItemRepo(items...)
		svc := NewShoppingService(repo, nil)

		n, err := svc.FinishTrip(ctx, householdID, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != len(items) {
			t.Fatalf("expected %d items reset, got %d", len(items), n)
		}
		for _, i := range repo.items {
			if i.Phase != models.Flagged() {
				t.Fatalf("item %s not reset, phase %v", i.Name, i.Phase)
			}
		}
	})

	t.Run("missing confirmation rejected", func(t *testing.T) {
		svc := NewShoppingService(newFakeItemRepo(), nil)
		_, err := svc.FinishTrip(ctx, householdID, false)
		if !errors.Is(err, invdomain.ErrConfirmationRequired) {
			t.Fatalf("expected ErrConfirmationRequired, got %v", err)
		}
	})
}
