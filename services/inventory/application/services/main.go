package services

import (
	"github.com/ghuser/pantry/pkg/app"
	"github.com/ghuser/pantry/pkg/cache"
	"github.com/ghuser/pantry/services/inventory/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item     *ItemService
	Shopping *ShoppingService
	Budget   *BudgetService
	Taxonomy *TaxonomyService
}

// New wires all inventory application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	items := postgres.NewItemRepository(a.Db, a.EventBus)
	settings := postgres.NewSettingsRepository(a.Db)
	taxonomy := postgres.NewTaxonomyRepository(a.Db)
	itemCache := cache.NewItemCache(a.Redis)
	return &Services{
		Item:     NewItemService(items, itemCache),
		Shopping: NewShoppingService(items, itemCache),
		Budget:   NewBudgetService(settings, items),
		Taxonomy: NewTaxonomyService(taxonomy),
	}
}
