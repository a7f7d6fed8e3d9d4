package handlers

import (
	"net/http"

	"github.com/ghuser/pantry/pkg/errhttp"
	"github.com/ghuser/pantry/pkg/httpx"
	appsvcs "github.com/ghuser/pantry/services/inventory/application/services"
	"github.com/ghuser/pantry/services/inventory/domain/models"
)

// TaxonomyResponse carries both label sets. Locations always end with the
// reserved "none" entry.
type TaxonomyResponse struct {
	Categories []string `json:"categories" example:"Kitchen,Bath"`
	Locations  []string `json:"locations" example:"Pantry,none"`
} // @name TaxonomyResponse

func toTaxonomyResponse(t *models.Taxonomy) TaxonomyResponse {
	return TaxonomyResponse{Categories: t.Categories, Locations: t.Locations}
}

// GetTaxonomyHandler handles GET /taxonomy requests.
type GetTaxonomyHandler struct {
	svc *appsvcs.Services
}

// NewGetTaxonomyHandler returns a GetTaxonomyHandler backed by the given services.
func NewGetTaxonomyHandler(svc *appsvcs.Services) *GetTaxonomyHandler {
	return &GetTaxonomyHandler{svc: svc}
}

// Execute returns the household's category and location label sets.
//
//	@Summary		Get taxonomy
//	@Description	Returns the household's category and location labels
//	@Tags			taxonomy
//	@Produce		json
//	@Success		200	{object}	TaxonomyResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/taxonomy [get]
func (h *GetTaxonomyHandler) Execute(w http.ResponseWriter, r *http.Request) {
	hid, ok := householdID(w, r)
	if !ok {
		return
	}

	tax, err := h.svc.Taxonomy.Get(r.Context(), hid)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toTaxonomyResponse(tax))
}
