package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/pantry/pkg/auth"
	"github.com/ghuser/pantry/pkg/httpx"
)

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

// householdID pulls the household scope from the request context, writing a
// 401 when the routing layer failed to establish one.
func householdID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := auth.HouseholdIDFromCtx(r.Context())
	if err != nil {
		httpx.JSON(w, http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
		return uuid.Nil, false
	}
	return id, true
}

// itemID parses the {id} route parameter, writing a 400 on malformed IDs.
func itemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid item id"})
		return uuid.Nil, false
	}
	return id, true
}
