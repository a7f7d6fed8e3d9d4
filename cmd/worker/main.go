package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/pantry/pkg/app"
	"github.com/ghuser/pantry/pkg/cache"
	"github.com/ghuser/pantry/pkg/config"
	"github.com/ghuser/pantry/pkg/database"
	"github.com/ghuser/pantry/pkg/events"
	"github.com/ghuser/pantry/pkg/logger"
	"github.com/ghuser/pantry/pkg/telemetry"
	invdomain "github.com/ghuser/pantry/services/inventory/domain"
	invEvents "github.com/ghuser/pantry/services/inventory/domain/events"
	"github.com/ghuser/pantry/services/inventory/domain/models"
	"github.com/ghuser/pantry/services/inventory/domain/repositories"
	"github.com/ghuser/pantry/services/inventory/infrastructure/persistence/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// cacheWarmer keeps the Redis item read model in step with the change feed.
// Handlers must be idempotent — EventBus retries up to 3× on failure, and
// re-warming the same item is harmless.
type cacheWarmer struct {
	repo  repositories.ItemRepository
	cache *cache.ItemCache
	log   logger.Logger
}

func newCacheWarmer(a *app.Application) *cacheWarmer {
	return &cacheWarmer{
		repo:  postgres.NewItemRepository(a.Db, a.EventBus),
		cache: cache.NewItemCache(a.Redis),
		log:   a.Logger,
	}
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	warmer := newCacheWarmer(a)

	subscriptions := map[string]func(context.Context, *message.Message) error{
		invEvents.TopicItemCreated:  warmer.handleItemWrite,
		invEvents.TopicItemChanged:  warmer.handleItemWrite,
		invEvents.TopicItemDeleted:  warmer.handleItemDeleted,
		invEvents.TopicTripFinished: warmer.handleTripFinished,
	}

	topics := make([]string, 0, len(subscriptions))
	for topic, handler := range subscriptions {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		topics = append(topics, topic)

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// handleItemWrite warms the cache after a create or any single-item change.
// Both event payloads share the item_id/household_id envelope, which is all
// the warmer needs; the authoritative row is re-read from the repository.
func (c *cacheWarmer) handleItemWrite(ctx context.Context, msg *message.Message) error {
	var evt invEvents.ItemChangedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return err
	}
	return c.warm(ctx, evt.HouseholdID, evt.ItemID)
}

// handleItemDeleted drops the cache entry for a removed item.
func (c *cacheWarmer) handleItemDeleted(ctx context.Context, msg *message.Message) error {
	var evt invEvents.ItemDeletedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return err
	}
	if err := c.cache.Delete(ctx, evt.HouseholdID, evt.ItemID); err != nil {
		c.log.WarnContext(ctx, "cache invalidation failed",
			"item_id", evt.ItemID, "error", err)
	}
	return nil
}

// handleTripFinished re-warms every item in the household; a finish-trip
// resets all phases in one SQL statement, so per-item change events are not
// published for it.
func (c *cacheWarmer) handleTripFinished(ctx context.Context, msg *message.Message) error {
	var evt invEvents.TripFinishedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return err
	}

	items, err := c.repo.FindByHousehold(ctx, evt.HouseholdID)
	if err != nil {
		return err
	}
	for _, item := range items {
		c.setCached(ctx, item)
	}
	c.log.InfoContext(ctx, "cache re-warmed after trip finish",
		"household_id", evt.HouseholdID, "items", len(items))
	return nil
}

func (c *cacheWarmer) warm(ctx context.Context, householdID, itemID uuid.UUID) error {
	item, err := c.repo.GetByID(ctx, householdID, itemID)
	if errors.Is(err, invdomain.ErrItemNotFound) {
		// Deleted between publish and handling; nothing to warm.
		return nil
	}
	if err != nil {
		return err
	}
	c.setCached(ctx, item)
	return nil
}

// setCached is best-effort; a failed warm only costs a later cache miss.
func (c *cacheWarmer) setCached(ctx context.Context, item *models.Item) {
	toBuy, isPacked, isChecking := item.Phase.Flags()
	if err := c.cache.Set(ctx, &cache.CachedItem{
		ID:           item.ID,
		HouseholdID:  item.HouseholdID,
		Name:         item.Name.String(),
		RealName:     item.RealName,
		Category:     item.Category,
		PrimaryLoc:   item.PrimaryLoc,
		SecondaryLoc: item.SecondaryLoc,
		Price:        item.Price,
		Quantity:     item.Quantity,
		ToBuy:        toBuy,
		IsPacked:     isPacked,
		IsChecking:   isChecking,
		CreatedAt:    item.CreatedAt,
	}); err != nil {
		c.log.WarnContext(ctx, "cache warm failed",
			"item_id", item.ID, "error", err)
	} else {
		c.log.InfoContext(ctx, "cache warmed",
			"item_id", item.ID, "household_id", item.HouseholdID)
	}
}
