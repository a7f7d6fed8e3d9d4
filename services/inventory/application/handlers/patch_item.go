package handlers

import (
	"net/http"

	"github.com/ghuser/pantry/pkg/errhttp"
	"github.com/ghuser/pantry/pkg/httpx"
	pkgvalidator "github.com/ghuser/pantry/pkg/validator"
	appsvcs "github.com/ghuser/pantry/services/inventory/application/services"
)

// UpdateItemRequest is the request body for PATCH /item/{id}. All descriptive
// fields are written as given; shopping state is never touched here.
type UpdateItemRequest struct {
	Name         string `json:"name" validate:"required,max=255" example:"Dish soap"`
	RealName     string `json:"real_name" validate:"max=255"`
	Category     string `json:"category" validate:"max=255" example:"Kitchen"`
	PrimaryLoc   string `json:"primary_loc" validate:"max=255" example:"Under sink"`
	SecondaryLoc string `json:"secondary_loc" validate:"max=255"`
} // @name UpdateItemRequest

// PatchItemHandler handles PATCH /item/{id} requests.
type PatchItemHandler struct {
	svc *appsvcs.Services
}

// NewPatchItemHandler returns a PatchItemHandler backed by the given services.
func NewPatchItemHandler(svc *appsvcs.Services) *PatchItemHandler {
	return &PatchItemHandler{svc: svc}
}

// Execute updates an item's descriptive fields.
//
//	@Summary		Update item details
//	@Description	Updates name, real name, category and locations; state flags are unaffected
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Item ID"
//	@Param			request	body		UpdateItemRequest	true	"Item update request"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/item/{id} [patch]
func (h *PatchItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	hid, ok := householdID(w, r)
	if !ok {
		return
	}
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UpdateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.UpdateDetails(r.Context(), hid, id, appsvcs.ItemDetails{
		Name:         req.Name,
		RealName:     req.RealName,
		Category:     req.Category,
		PrimaryLoc:   req.PrimaryLoc,
		SecondaryLoc: req.SecondaryLoc,
	})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
