package handlers

import (
	"net/http"

	"github.com/ghuser/pantry/pkg/errhttp"
	"github.com/ghuser/pantry/pkg/httpx"
	pkgvalidator "github.com/ghuser/pantry/pkg/validator"
	appsvcs "github.com/ghuser/pantry/services/inventory/application/services"
)

// PostShoppingFinishHandler handles POST /shopping/finish requests.
type PostShoppingFinishHandler struct {
	svc *appsvcs.Services
}

// NewPostShoppingFinishHandler returns a PostShoppingFinishHandler backed by the given services.
func NewPostShoppingFinishHandler(svc *appsvcs.Services) *PostShoppingFinishHandler {
	return &PostShoppingFinishHandler{svc: svc}
}

// Execute ends the shopping trip: every item in the household goes back to
// flagged, ready for the next stock check.
//
//	@Summary		Finish shopping trip
//	@Description	Resets every item to the flagged state for the next stock check
//	@Tags			shopping
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ConfirmRequest	true	"Confirmation"
//	@Success		200		{object}	BulkResultResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		428		{object}	ErrorResponse
//	@Router			/shopping/finish [post]
func (h *PostShoppingFinishHandler) Execute(w http.ResponseWriter, r *http.Request) {
	hid, ok := householdID(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ConfirmRequest](w, r)
	if !ok {
		return
	}

	n, err := h.svc.Shopping.FinishTrip(r.Context(), hid, req.Confirmed)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, BulkResultResponse{Count: n})
}
