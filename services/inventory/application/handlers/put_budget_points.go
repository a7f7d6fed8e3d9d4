package handlers

import (
	"net/http"

	"github.com/ghuser/pantry/pkg/errhttp"
	"github.com/ghuser/pantry/pkg/httpx"
	pkgvalidator "github.com/ghuser/pantry/pkg/validator"
	appsvcs "github.com/ghuser/pantry/services/inventory/application/services"
)

// SetPointsRequest is the request body for PUT /budget/points.
type SetPointsRequest struct {
	Points int64 `json:"points" validate:"min=0" example:"1000"`
} // @name SetPointsRequest

// PutBudgetPointsHandler handles PUT /budget/points requests.
type PutBudgetPointsHandler struct {
	svc *appsvcs.Services
}

// NewPutBudgetPointsHandler returns a PutBudgetPointsHandler backed by the given services.
func NewPutBudgetPointsHandler(svc *appsvcs.Services) *PutBudgetPointsHandler {
	return &PutBudgetPointsHandler{svc: svc}
}

// Execute sets the household's points and returns the recalculated summary.
//
//	@Summary		Set budget points
//	@Description	Overwrites the points balance the spendable budget derives from
//	@Tags			budget
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SetPointsRequest	true	"New points balance"
//	@Success		200		{object}	BudgetResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/budget/points [put]
func (h *PutBudgetPointsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	hid, ok := householdID(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[SetPointsRequest](w, r)
	if !ok {
		return
	}

	if err := h.svc.Budget.SetPoints(r.Context(), hid, req.Points); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	summary, err := h.svc.Budget.Summary(r.Context(), hid)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, BudgetResponse{
		Points:         summary.Points,
		LoyaltyPoints:  summary.LoyaltyPoints,
		Budget:         summary.Budget,
		TotalCommitted: summary.TotalCommitted,
		Remaining:      summary.Remaining,
	})
}
