package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const householdIDKey contextKey = "household_id"

// ErrHouseholdIDNotFound is returned when no HouseholdID exists in the request context.
// Handlers should return 401 when this error occurs.
var ErrHouseholdIDNotFound = errors.New("household_id not found in context")

// HouseholdIDFromCtx extracts the authenticated household ID from the request context.
// Returns uuid.Nil and ErrHouseholdIDNotFound if no HouseholdID is set (unauthenticated request).
func HouseholdIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	householdID, ok := ctx.Value(householdIDKey).(uuid.UUID)
	if !ok || householdID == uuid.Nil {
		return uuid.Nil, ErrHouseholdIDNotFound
	}
	return householdID, nil
}

// WithHouseholdID returns a new context with the given HouseholdID attached.
// Used by authentication middleware after validating the session.
func WithHouseholdID(ctx context.Context, householdID uuid.UUID) context.Context {
	return context.WithValue(ctx, householdIDKey, householdID)
}
