package handlers

import (
	"net/http"

	"github.com/ghuser/pantry/pkg/errhttp"
	"github.com/ghuser/pantry/pkg/httpx"
	pkgvalidator "github.com/ghuser/pantry/pkg/validator"
	appsvcs "github.com/ghuser/pantry/services/inventory/application/services"
)

// AddLabelRequest is the request body for adding a category or location.
type AddLabelRequest struct {
	Name string `json:"name" validate:"required,max=255" example:"Garage"`
} // @name AddLabelRequest

// PostTaxonomyCategoryHandler handles POST /taxonomy/categories requests.
type PostTaxonomyCategoryHandler struct {
	svc *appsvcs.Services
}

// NewPostTaxonomyCategoryHandler returns a PostTaxonomyCategoryHandler backed by the given services.
func NewPostTaxonomyCategoryHandler(svc *appsvcs.Services) *PostTaxonomyCategoryHandler {
	return &PostTaxonomyCategoryHandler{svc: svc}
}

// Execute adds a category label.
//
//	@Summary		Add category
//	@Description	Adds a category label to the household's taxonomy
//	@Tags			taxonomy
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AddLabelRequest	true	"Label to add"
//	@Success		201		{object}	TaxonomyResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/taxonomy/categories [post]
func (h *PostTaxonomyCategoryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	hid, ok := householdID(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[AddLabelRequest](w, r)
	if !ok {
		return
	}

	tax, err := h.svc.Taxonomy.AddCategory(r.Context(), hid, req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toTaxonomyResponse(tax))
}

// PostTaxonomyLocationHandler handles POST /taxonomy/locations requests.
type PostTaxonomyLocationHandler struct {
	svc *appsvcs.Services
}

// NewPostTaxonomyLocationHandler returns a PostTaxonomyLocationHandler backed by the given services.
func NewPostTaxonomyLocationHandler(svc *appsvcs.Services) *PostTaxonomyLocationHandler {
	return &PostTaxonomyLocationHandler{svc: svc}
}

// Execute adds a location label. The reserved "none" entry keeps its place at
// the end of the list.
//
//	@Summary		Add location
//	@Description	Adds a location label to the household's taxonomy
//	@Tags			taxonomy
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AddLabelRequest	true	"Label to add"
//	@Success		201		{object}	TaxonomyResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/taxonomy/locations [post]
func (h *PostTaxonomyLocationHandler) Execute(w http.ResponseWriter, r *http.Request) {
	hid, ok := householdID(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[AddLabelRequest](w, r)
	if !ok {
		return
	}

	tax, err := h.svc.Taxonomy.AddLocation(r.Context(), hid, req.Name)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toTaxonomyResponse(tax))
}
