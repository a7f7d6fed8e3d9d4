package handlers

import (
	"net/http"

	"github.com/ghuser/pantry/pkg/errhttp"
	"github.com/ghuser/pantry/pkg/httpx"
	appsvcs "github.com/ghuser/pantry/services/inventory/application/services"
)

// PostItemFlagHandler handles POST /item/{id}/flag requests.
type PostItemFlagHandler struct {
	svc *appsvcs.Services
}

// NewPostItemFlagHandler returns a PostItemFlagHandler backed by the given services.
func NewPostItemFlagHandler(svc *appsvcs.Services) *PostItemFlagHandler {
	return &PostItemFlagHandler{svc: svc}
}

// Execute toggles the stock-check flag on an in-stock item. Items already on
// the shopping list cannot be flagged.
//
//	@Summary		Toggle stock-check flag
//	@Description	Flips the flag on an in-stock item during a stock check
//	@Tags			shopping
//	@Produce		json
//	@Param			id	path		string	true	"Item ID"
//	@Success		200	{object}	ItemResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/item/{id}/flag [post]
func (h *PostItemFlagHandler) Execute(w http.ResponseWriter, r *http.Request) {
	hid, ok := householdID(w, r)
	if !ok {
		return
	}
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Shopping.ToggleFlag(r.Context(), hid, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
