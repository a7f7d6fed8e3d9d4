package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the inventory context. Consumers subscribe via
// EventBus.Subscribe(ctx, topic) and receive one event per changed document,
// mirroring the change-feed the UI used to get from the realtime store.
const (
	TopicItemCreated  = "inventory.item.created"
	TopicItemChanged  = "inventory.item.changed"
	TopicItemDeleted  = "inventory.item.deleted"
	TopicTripFinished = "inventory.trip.finished"
)

// ItemCreatedEvent is published after a new Item is persisted.
type ItemCreatedEvent struct {
	EventID     uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID      uuid.UUID `json:"item_id"`
	HouseholdID uuid.UUID `json:"household_id"`
	Name        string    `json:"name"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// ItemChangedEvent is published after any single-item update (details, phase,
// or shopping fields) and once per item in a confirm-to-buy-list batch.
type ItemChangedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	Version     int       `json:"version"`
	ItemID      uuid.UUID `json:"item_id"`
	HouseholdID uuid.UUID `json:"household_id"`
	Phase       string    `json:"phase"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// ItemDeletedEvent is published after an item is permanently removed.
type ItemDeletedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	Version     int       `json:"version"`
	ItemID      uuid.UUID `json:"item_id"`
	HouseholdID uuid.UUID `json:"household_id"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// TripFinishedEvent is published once per finish-shopping-trip batch, after
// every item in the household has been reset for the next stock check.
type TripFinishedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	Version     int       `json:"version"`
	HouseholdID uuid.UUID `json:"household_id"`
	ItemCount   int       `json:"item_count"`
	OccurredAt  time.Time `json:"occurred_at"`
}
