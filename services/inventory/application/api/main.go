package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/pantry/pkg/app"
	"github.com/ghuser/pantry/services/inventory/application/handlers"
	appsvcs "github.com/ghuser/pantry/services/inventory/application/services"
)

// InventoryRoutes registers inventory endpoints on the provided chi router.
func InventoryRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/item", func(r chi.Router) {
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handlers.NewGetItemHandler(svcs).Execute)
				r.Patch("/", handlers.NewPatchItemHandler(svcs).Execute)
				r.Delete("/", handlers.NewDeleteItemHandler(svcs).Execute)
				r.Post("/flag", handlers.NewPostItemFlagHandler(svcs).Execute)
				r.Post("/collected", handlers.NewPostItemCollectedHandler(svcs).Execute)
				r.Patch("/shopping", handlers.NewPatchItemShoppingHandler(svcs).Execute)
			})
		})
		r.Get("/items", handlers.NewGetItemsHandler(svcs).Execute)
		r.Route("/shopping", func(r chi.Router) {
			r.Post("/confirm", handlers.NewPostShoppingConfirmHandler(svcs).Execute)
			r.Post("/finish", handlers.NewPostShoppingFinishHandler(svcs).Execute)
		})
		r.Route("/budget", func(r chi.Router) {
			r.Get("/", handlers.NewGetBudgetHandler(svcs).Execute)
			r.Put("/points", handlers.NewPutBudgetPointsHandler(svcs).Execute)
		})
		r.Route("/taxonomy", func(r chi.Router) {
			r.Get("/", handlers.NewGetTaxonomyHandler(svcs).Execute)
			r.Post("/categories", handlers.NewPostTaxonomyCategoryHandler(svcs).Execute)
			r.Delete("/categories/{name}", handlers.NewDeleteTaxonomyCategoryHandler(svcs).Execute)
			r.Post("/locations", handlers.NewPostTaxonomyLocationHandler(svcs).Execute)
			r.Delete("/locations/{name}", handlers.NewDeleteTaxonomyLocationHandler(svcs).Execute)
		})
	})
}
