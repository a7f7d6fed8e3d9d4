package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/ghuser/pantry/pkg/httpx"
	"github.com/ghuser/pantry/pkg/logger"
)

const sessionName = "pantry_session"
const sessionHouseholdIDKey = "household_id"

// RequireAuth is a chi middleware that enforces authentication via session cookies.
// It reads the session cookie, extracts the HouseholdID, and injects it into the request context.
// Returns 401 Unauthorized if the session is missing, invalid, or lacks a valid household_id.
//
// After this middleware, handlers can safely call auth.HouseholdIDFromCtx(r.Context()).
func RequireAuth(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			householdIDStr, ok := session.Values[sessionHouseholdIDKey].(string)
			if !ok || householdIDStr == "" {
				log.WarnContext(r.Context(), "session missing household_id")
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			householdID, err := uuid.Parse(householdIDStr)
			if err != nil {
				log.WarnContext(r.Context(), "invalid household_id in session", "household_id", householdIDStr, "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid session data"})
				return
			}

			ctx := WithHouseholdID(r.Context(), householdID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DefaultHousehold injects a fixed household ID into requests that carry no
// authenticated one. Single-household deployments run with this until
// RequireAuth is mounted in front of it.
func DefaultHousehold(id uuid.UUID) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, err := HouseholdIDFromCtx(r.Context()); err != nil {
				r = r.WithContext(WithHouseholdID(r.Context(), id))
			}
			next.ServeHTTP(w, r)
		})
	}
}
