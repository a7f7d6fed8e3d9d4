package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// ItemCacheTTL is the time-to-live for cached items.
	ItemCacheTTL = 24 * time.Hour

	itemCacheKeyPrefix = "item"
)

// CachedItem is the denormalized item read model stored in Redis. The state
// flags are flattened into the hash alongside the descriptive fields so a
// cache hit can serve both stock-check and shopping reads.
type CachedItem struct {
	ID           uuid.UUID `json:"id"`
	HouseholdID  uuid.UUID `json:"household_id"`
	Name         string    `json:"name"`
	RealName     string    `json:"real_name"`
	Category     string    `json:"category"`
	PrimaryLoc   string    `json:"primary_loc"`
	SecondaryLoc string    `json:"secondary_loc"`
	Price        int64     `json:"price"`
	Quantity     int       `json:"quantity"`
	ToBuy        bool      `json:"to_buy"`
	IsPacked     bool      `json:"is_packed"`
	IsChecking   bool      `json:"is_checking"`
	CreatedAt    time.Time `json:"created_at"`
}

// ItemCache provides structured read/write operations for item cache entries.
// Keys are scoped by householdID to prevent cross-household data leakage.
// Key format: "item:{householdID}:{itemID}"
type ItemCache struct {
	client *RedisClient
}

// NewItemCache creates a new ItemCache backed by the given RedisClient.
func NewItemCache(r *RedisClient) *ItemCache {
	return &ItemCache{client: r}
}

// Get retrieves a cached item by household + item ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ItemCache) Get(ctx context.Context, householdID, itemID uuid.UUID) (*CachedItem, error) {
	key := c.key(householdID, itemID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	hid, err := uuid.Parse(vals["household_id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse household_id: %w", err)
	}
	price, err := strconv.ParseInt(vals["price"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse price: %w", err)
	}
	quantity, err := strconv.Atoi(vals["quantity"])
	if err != nil {
		return nil, fmt.Errorf("cache parse quantity: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, vals["created_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse created_at: %w", err)
	}

	return &CachedItem{
		ID:           id,
		HouseholdID:  hid,
		Name:         vals["name"],
		RealName:     vals["real_name"],
		Category:     vals["category"],
		PrimaryLoc:   vals["primary_loc"],
		SecondaryLoc: vals["secondary_loc"],
		Price:        price,
		Quantity:     quantity,
		ToBuy:        vals["to_buy"] == "1",
		IsPacked:     vals["is_packed"] == "1",
		IsChecking:   vals["is_checking"] == "1",
		CreatedAt:    createdAt,
	}, nil
}

// Set writes a cached item as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ItemCache) Set(ctx context.Context, item *CachedItem) error {
	key := c.key(item.HouseholdID, item.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", item.ID.String(),
		"household_id", item.HouseholdID.String(),
		"name", item.Name,
		"real_name", item.RealName,
		"category", item.Category,
		"primary_loc", item.PrimaryLoc,
		"secondary_loc", item.SecondaryLoc,
		"price", strconv.FormatInt(item.Price, 10),
		"quantity", strconv.Itoa(item.Quantity),
		"to_buy", boolField(item.ToBuy),
		"is_packed", boolField(item.IsPacked),
		"is_checking", boolField(item.IsChecking),
		"created_at", item.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, ItemCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached item.
func (c *ItemCache) Delete(ctx context.Context, householdID, itemID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(householdID, itemID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "item:{householdID}:{itemID}"
func (c *ItemCache) key(householdID, itemID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", itemCacheKeyPrefix, householdID, itemID)
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
