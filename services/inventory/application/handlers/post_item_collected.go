package handlers

import (
	"net/http"

	"github.com/ghuser/pantry/pkg/errhttp"
	"github.com/ghuser/pantry/pkg/httpx"
	appsvcs "github.com/ghuser/pantry/services/inventory/application/services"
)

// PostItemCollectedHandler handles POST /item/{id}/collected requests.
type PostItemCollectedHandler struct {
	svc *appsvcs.Services
}

// NewPostItemCollectedHandler returns a PostItemCollectedHandler backed by the given services.
func NewPostItemCollectedHandler(svc *appsvcs.Services) *PostItemCollectedHandler {
	return &PostItemCollectedHandler{svc: svc}
}

// Execute toggles the in-cart mark on a listed item. Only items on the
// shopping list can be collected.
//
//	@Summary		Toggle collected mark
//	@Description	Flips the in-cart mark on a shopping-list item
//	@Tags			shopping
//	@Produce		json
//	@Param			id	path		string	true	"Item ID"
//	@Success		200	{object}	ItemResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/item/{id}/collected [post]
func (h *PostItemCollectedHandler) Execute(w http.ResponseWriter, r *http.Request) {
	hid, ok := householdID(w, r)
	if !ok {
		return
	}
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	item, err := h.svc.Shopping.ToggleCollected(r.Context(), hid, id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
