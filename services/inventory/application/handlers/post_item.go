package handlers

import (
	"net/http"

	"github.com/ghuser/pantry/pkg/errhttp"
	"github.com/ghuser/pantry/pkg/httpx"
	pkgvalidator "github.com/ghuser/pantry/pkg/validator"
	appsvcs "github.com/ghuser/pantry/services/inventory/application/services"
)

// CreateItemRequest is the request body for POST /item.
type CreateItemRequest struct {
	Name         string `json:"name" validate:"required,max=255" example:"Dish soap"`
	RealName     string `json:"real_name" validate:"max=255" example:"Brand X lemon"`
	Category     string `json:"category" validate:"max=255" example:"Kitchen"`
	PrimaryLoc   string `json:"primary_loc" validate:"max=255" example:"Under sink"`
	SecondaryLoc string `json:"secondary_loc" validate:"max=255" example:"Pantry"`
} // @name CreateItemRequest

// PostItemHandler handles POST /item requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new item. New items enter the flagged state so they show
// up at the top of the next stock check.
//
//	@Summary		Create item
//	@Description	Creates a new inventory item scoped to a household
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/item [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	hid, ok := householdID(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Item.Create(r.Context(), hid, appsvcs.ItemDetails{
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

	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}
