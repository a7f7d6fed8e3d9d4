package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/pantry/pkg/errhttp"
	"github.com/ghuser/pantry/pkg/httpx"
	appsvcs "github.com/ghuser/pantry/services/inventory/application/services"
)

// labelParam extracts the {name} route parameter, unescaping labels that
// contain spaces.
func labelParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid label"})
		return "", false
	}
	return name, true
}

// DeleteTaxonomyCategoryHandler handles DELETE /taxonomy/categories/{name} requests.
type DeleteTaxonomyCategoryHandler struct {
	svc *appsvcs.Services
}

// NewDeleteTaxonomyCategoryHandler returns a DeleteTaxonomyCategoryHandler backed by the given services.
func NewDeleteTaxonomyCategoryHandler(svc *appsvcs.Services) *DeleteTaxonomyCategoryHandler {
	return &DeleteTaxonomyCategoryHandler{svc: svc}
}

// Execute removes a category label. Items that reference the label keep their
// value; removal never cascades.
//
//	@Summary		Remove category
//	@Description	Removes a category label; items keep any dangling reference
//	@Tags			taxonomy
//	@Produce		json
//	@Param			name	path		string	true	"Label to remove"
//	@Success		200		{object}	TaxonomyResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Router			/taxonomy/categories/{name} [delete]
func (h *DeleteTaxonomyCategoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	hid, ok := householdID(w, r)
	if !ok {
		return
	}
	name, ok := labelParam(w, r)
	if !ok {
		return
	}

	tax, err := h.svc.Taxonomy.RemoveCategory(r.Context(), hid, name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toTaxonomyResponse(tax))
}

// DeleteTaxonomyLocationHandler handles DELETE /taxonomy/locations/{name} requests.
type DeleteTaxonomyLocationHandler struct {
	svc *appsvcs.Services
}

// NewDeleteTaxonomyLocationHandler returns a DeleteTaxonomyLocationHandler backed by the given services.
func NewDeleteTaxonomyLocationHandler(svc *appsvcs.Services) *DeleteTaxonomyLocationHandler {
	return &DeleteTaxonomyLocationHandler{svc: svc}
}

// Execute removes a location label. The reserved "none" entry cannot be
// removed.
//
//	@Summary		Remove location
//	@Description	Removes a location label; the reserved "none" entry is kept
//	@Tags			taxonomy
//	@Produce		json
//	@Param			name	path		string	true	"Label to remove"
//	@Success		200		{object}	TaxonomyResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/taxonomy/locations/{name} [delete]
func (h *DeleteTaxonomyLocationHandler) Execute(w http.ResponseWriter, r *http.Request) {
	hid, ok := householdID(w, r)
	if !ok {
		return
	}
	name, ok := labelParam(w, r)
	if !ok {
		return
	}

	tax, err := h.svc.Taxonomy.RemoveLocation(r.Context(), hid, name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toTaxonomyResponse(tax))
}
