package handlers

import (
	"net/http"

	"github.com/ghuser/pantry/pkg/errhttp"
	"github.com/ghuser/pantry/pkg/httpx"
	pkgvalidator "github.com/ghuser/pantry/pkg/validator"
	appsvcs "github.com/ghuser/pantry/services/inventory/application/services"
)

// ConfirmRequest is the shared request body for the two bulk operations. The
// confirmed flag must be true; the dialog lives in the client, the server only
// refuses to act without it.
type ConfirmRequest struct {
	Confirmed bool `json:"confirmed" example:"true"`
} // @name ConfirmRequest

// BulkResultResponse reports how many items a bulk operation touched.
type BulkResultResponse struct {
	Count int `json:"count" example:"4"`
} // @name BulkResultResponse

// PostShoppingConfirmHandler handles POST /shopping/confirm requests.
type PostShoppingConfirmHandler struct {
	svc *appsvcs.Services
}

// NewPostShoppingConfirmHandler returns a PostShoppingConfirmHandler backed by the given services.
func NewPostShoppingConfirmHandler(svc *appsvcs.Services) *PostShoppingConfirmHandler {
	return &PostShoppingConfirmHandler{svc: svc}
}

// Execute moves every flagged item onto the shopping list in one atomic
// batch. Zero flagged items is a normal no-op.
//
//	@Summary		Confirm to-buy list
//	@Description	Moves all flagged items onto the shopping list atomically
//	@Tags			shopping
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ConfirmRequest	true	"Confirmation"
//	@Success		200		{object}	BulkResultResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		428		{object}	ErrorResponse
//	@Router			/shopping/confirm [post]
func (h *PostShoppingConfirmHandler) Execute(w http.ResponseWriter, r *http.Request) {
	hid, ok := householdID(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ConfirmRequest](w, r)
	if !ok {
		return
	}

	n, err := h.svc.Shopping.ConfirmToBuyList(r.Context(), hid, req.Confirmed)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, BulkResultResponse{Count: n})
}
