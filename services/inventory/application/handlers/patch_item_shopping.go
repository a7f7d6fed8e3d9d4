package handlers

import (
	"net/http"

	"github.com/ghuser/pantry/pkg/errhttp"
	"github.com/ghuser/pantry/pkg/httpx"
	pkgvalidator "github.com/ghuser/pantry/pkg/validator"
	appsvcs "github.com/ghuser/pantry/services/inventory/application/services"
)

// ShoppingFieldsRequest is the request body for PATCH /item/{id}/shopping.
// Omitted fields are left unchanged, so a debounced client can send one write
// per field edit.
type ShoppingFieldsRequest struct {
	Quantity *int   `json:"quantity,omitempty" validate:"omitempty,min=0" example:"2"`
	Price    *int64 `json:"price,omitempty" validate:"omitempty,min=0" example:"250"`
} // @name ShoppingFieldsRequest

// PatchItemShoppingHandler handles PATCH /item/{id}/shopping requests.
type PatchItemShoppingHandler struct {
	svc *appsvcs.Services
}

// NewPatchItemShoppingHandler returns a PatchItemShoppingHandler backed by the given services.
func NewPatchItemShoppingHandler(svc *appsvcs.Services) *PatchItemShoppingHandler {
	return &PatchItemShoppingHandler{svc: svc}
}

// Execute sets quantity and/or price on a shopping-list item. Rejected unless
// the item is listed and not yet collected.
//
//	@Summary		Edit shopping fields
//	@Description	Sets quantity and/or unit price on a listed item
//	@Tags			shopping
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Item ID"
//	@Param			request	body		ShoppingFieldsRequest	true	"Fields to set"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/item/{id}/shopping [patch]
func (h *PatchItemShoppingHandler) Execute(w http.ResponseWriter, r *http.Request) {
	hid, ok := householdID(w, r)
	if !ok {
		return
	}
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ShoppingFieldsRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Shopping.SetShoppingFields(r.Context(), hid, id, req.Quantity, req.Price)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
