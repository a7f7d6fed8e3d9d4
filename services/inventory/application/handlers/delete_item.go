package handlers

import (
	"net/http"

	"github.com/ghuser/pantry/pkg/errhttp"
	appsvcs "github.com/ghuser/pantry/services/inventory/application/services"
)

// DeleteItemHandler handles DELETE /item/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute permanently deletes an item. The caller must pass confirm=true;
// deletion is irreversible, so an unconfirmed request is rejected before any
// lookup happens.
//
//	@Summary		Delete item
//	@Description	Permanently deletes an item; requires confirm=true
//	@Tags			items
//	@Produce		json
//	@Param			id		path	string	true	"Item ID"
//	@Param			confirm	query	bool	true	"Must be true to proceed"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		401	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		428	{object}	ErrorResponse
//	@Router			/item/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	hid, ok := householdID(w, r)
	if !ok {
		return
	}
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	confirmed := r.URL.Query().Get("confirm") == "true"
	if err := h.svc.Item.Delete(r.Context(), hid, id, confirmed); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
