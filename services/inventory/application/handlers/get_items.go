package handlers

import (
	"net/http"

	"github.com/ghuser/pantry/pkg/errhttp"
	"github.com/ghuser/pantry/pkg/httpx"
	appsvcs "github.com/ghuser/pantry/services/inventory/application/services"
	domainsvcs "github.com/ghuser/pantry/services/inventory/domain/services"
)

// ListItemsResponse is the response body for GET /items.
type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
	Count int            `json:"count" example:"12"`
} // @name ListItemsResponse

// GetItemsHandler handles GET /items requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute lists the household's items. view=stock returns the stock-check
// projection (items not committed to buy, flagged first, optionally filtered
// by location); view=shopping returns the shopping-list projection (committed
// items, uncollected first). Without a view the full set is returned ordered
// by name.
//
//	@Summary		List items
//	@Description	Lists inventory items, optionally projected as the stock-check or shopping view
//	@Tags			items
//	@Produce		json
//	@Param			view		query		string	false	"Projection"	Enums(stock, shopping)
//	@Param			location	query		string	false	"Location filter for the stock view; 'all' disables filtering"
//	@Success		200			{object}	ListItemsResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Router			/items [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	hid, ok := householdID(w, r)
	if !ok {
		return
	}

	items, err := h.svc.Item.List(r.Context(), hid)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	switch view := r.URL.Query().Get("view"); view {
	case "stock":
		items = domainsvcs.StockCheckView(items, r.URL.Query().Get("location"))
	case "shopping":
		items = domainsvcs.ShoppingListView(items)
	case "":
	default:
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "unknown view: " + view})
		return
	}

	httpx.JSON(w, http.StatusOK, ListItemsResponse{
		Items: toItemResponses(items),
		Count: len(items),
	})
}
