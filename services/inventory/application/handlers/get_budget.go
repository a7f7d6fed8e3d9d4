package handlers

import (
	"net/http"

	"github.com/ghuser/pantry/pkg/errhttp"
	"github.com/ghuser/pantry/pkg/httpx"
	appsvcs "github.com/ghuser/pantry/services/inventory/application/services"
)

// BudgetResponse is the response body for GET /budget. Budget is the
// spendable amount derived from points; remaining may go negative when the
// committed total exceeds it.
type BudgetResponse struct {
	Points         int64 `json:"points" example:"1000"`
	LoyaltyPoints  int64 `json:"loyalty_points" example:"320"`
	Budget         int64 `json:"budget" example:"1500"`
	TotalCommitted int64 `json:"total_committed" example:"600"`
	Remaining      int64 `json:"remaining" example:"900"`
} // @name BudgetResponse

// GetBudgetHandler handles GET /budget requests.
type GetBudgetHandler struct {
	svc *appsvcs.Services
}

// NewGetBudgetHandler returns a GetBudgetHandler backed by the given services.
func NewGetBudgetHandler(svc *appsvcs.Services) *GetBudgetHandler {
	return &GetBudgetHandler{svc: svc}
}

// Execute returns the household's budget summary.
//
//	@Summary		Budget summary
//	@Description	Returns points, the derived spendable budget and the committed shopping total
//	@Tags			budget
//	@Produce		json
//	@Success		200	{object}	BudgetResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/budget [get]
func (h *GetBudgetHandler) Execute(w http.ResponseWriter, r *http.Request) {
	hid, ok := householdID(w, r)
	if !ok {
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
