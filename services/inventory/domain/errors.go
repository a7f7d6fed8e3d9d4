package domain

import "errors"

// Sentinel errors for the inventory domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemAlreadyExists indicates an item with the same unique constraint already exists.
	ErrItemAlreadyExists = errors.New("item already exists")

	// ErrInvalidItemName indicates the item name violates domain constraints.
	ErrInvalidItemName = errors.New("invalid item name")

	// ErrInvalidTransition indicates a state change that the item's current
	// phase does not allow (e.g. flagging an item already on the shopping list).
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrInvalidAmount indicates a negative price, quantity or point balance.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidLabel indicates a taxonomy label that is empty, duplicated or reserved.
	ErrInvalidLabel = errors.New("invalid label")

	// ErrConfirmationRequired indicates a bulk or destructive operation was
	// submitted without the explicit confirmation flag.
	ErrConfirmationRequired = errors.New("confirmation required")
)
