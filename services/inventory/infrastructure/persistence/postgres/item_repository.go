package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/pantry/pkg/database"
	"github.com/ghuser/pantry/pkg/events"
	invdomain "github.com/ghuser/pantry/services/inventory/domain"
	domainevents "github.com/ghuser/pantry/services/inventory/domain/events"
	"github.com/ghuser/pantry/services/inventory/domain/models"
	"github.com/ghuser/pantry/services/inventory/domain/repositories"
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
// The item phase is stored as the legacy boolean triad (to_buy, is_packed,
// is_checking) for wire compatibility with the old document store; rows are
// normalized back through models.PhaseFromFlags on read.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection
// pool and event bus. Change events are published transactionally with each
// write, standing in for the old store's realtime change feed.
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

const itemColumns = `id, household_id, name, real_name, category, primary_loc, secondary_loc,
	price, quantity, to_buy, is_packed, is_checking, created_at`

// Save persists a new Item and publishes ItemCreatedEvent within the same
// transaction. Returns ErrItemAlreadyExists on unique constraint violations.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		toBuy, isPacked, isChecking := item.Phase.Flags()
		_, err := tx.ExecContext(ctx, `
			INSERT INTO inventory_items (`+itemColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			item.ID, item.HouseholdID, item.Name.String(), item.RealName, item.Category,
			item.PrimaryLoc, item.SecondaryLoc, item.Price, item.Quantity,
			toBuy, isPacked, isChecking, item.CreatedAt,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return invdomain.ErrItemAlreadyExists
			}
			return fmt.Errorf("insert item: %w", err)
		}

		if r.bus != nil {
			event := domainevents.ItemCreatedEvent{
				EventID:     uuid.New(),
				Version:     1,
				ItemID:      item.ID,
				HouseholdID: item.HouseholdID,
				Name:        item.Name.String(),
				OccurredAt:  item.CreatedAt,
			}
			if err := r.publish(tx, domainevents.TopicItemCreated, event, event.EventID); err != nil {
				return fmt.Errorf("publish item created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves an Item by ID scoped to the household. Returns
// ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(ctx context.Context, householdID, id uuid.UUID) (*models.Item, error) {
	row := r.db.DB().QueryRowContext(ctx, `
		SELECT `+itemColumns+`
		FROM inventory_items
		WHERE id = $1 AND household_id = $2`,
		id, householdID,
	)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return item, nil
}

// FindByHousehold retrieves every item for the household, ordered by name
// like the old store's subscription query.
func (r *ItemRepository) FindByHousehold(ctx context.Context, householdID uuid.UUID) ([]*models.Item, error) {
	rows, err := r.db.DB().QueryContext(ctx, `
		SELECT `+itemColumns+`
		FROM inventory_items
		WHERE household_id = $1
		ORDER BY name`,
		householdID,
	)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// Update persists the descriptive fields. The phase triad and shopping fields
// are deliberately absent from the statement.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE inventory_items
			SET name = $3, real_name = $4, category = $5, primary_loc = $6, secondary_loc = $7
			WHERE id = $1 AND household_id = $2`,
			item.ID, item.HouseholdID, item.Name.String(), item.RealName,
			item.Category, item.PrimaryLoc, item.SecondaryLoc,
		)
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		if err := requireRow(res); err != nil {
			return err
		}
		return r.publishChanged(tx, item.HouseholdID, item.ID, item.Phase.String())
	})
}

// UpdateState persists a single-item phase change.
func (r *ItemRepository) UpdateState(ctx context.Context, householdID, id uuid.UUID, phase models.Phase) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := execState(ctx, tx, householdID, id, phase); err != nil {
			return err
		}
		return r.publishChanged(tx, householdID, id, phase.String())
	})
}

// UpdateShoppingFields overwrites quantity and price.
func (r *ItemRepository) UpdateShoppingFields(ctx context.Context, householdID, id uuid.UUID, quantity int, price int64) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE inventory_items
			SET quantity = $3, price = $4
			WHERE id = $1 AND household_id = $2`,
			id, householdID, quantity, price,
		)
		if err != nil {
			return fmt.Errorf("update shopping fields: %w", err)
		}
		if err := requireRow(res); err != nil {
			return err
		}
		return r.publishChanged(tx, householdID, id, models.Listed().String())
	})
}

// BatchUpdateStates applies every state change in one transaction; a failure
// anywhere rolls back the whole batch.
func (r *ItemRepository) BatchUpdateStates(ctx context.Context, householdID uuid.UUID, changes []repositories.StateChange) error {
	if len(changes) == 0 {
		return nil
	}
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		for _, c := range changes {
			if err := execState(ctx, tx, householdID, c.ItemID, c.Phase); err != nil {
				return err
			}
			if err := r.publishChanged(tx, householdID, c.ItemID, c.Phase.String()); err != nil {
				return err
			}
		}
		return nil
	})
}

// ResetAll puts every item of the household back into the Flagged phase with
// one statement and publishes a single TripFinishedEvent.
func (r *ItemRepository) ResetAll(ctx context.Context, householdID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE inventory_items
			SET to_buy = false, is_packed = false, is_checking = true
			WHERE household_id = $1`,
			householdID,
		)
		if err != nil {
			return fmt.Errorf("reset items: %w", err)
		}
		count, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected: %w", err)
		}

		if r.bus == nil {
			return nil
		}
		event := domainevents.TripFinishedEvent{
			EventID:     uuid.New(),
			Version:     1,
			HouseholdID: householdID,
			ItemCount:   int(count),
			OccurredAt:  time.Now().UTC(),
		}
		if err := r.publish(tx, domainevents.TopicTripFinished, event, event.EventID); err != nil {
			return fmt.Errorf("publish trip finished: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

// Delete permanently removes an item and publishes ItemDeletedEvent.
func (r *ItemRepository) Delete(ctx context.Context, householdID, id uuid.UUID) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			DELETE FROM inventory_items
			WHERE id = $1 AND household_id = $2`,
			id, householdID,
		)
		if err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		if err := requireRow(res); err != nil {
			return err
		}

		if r.bus == nil {
			return nil
		}
		event := domainevents.ItemDeletedEvent{
			EventID:     uuid.New(),
			Version:     1,
			ItemID:      id,
			HouseholdID: householdID,
			OccurredAt:  time.Now().UTC(),
		}
		if err := r.publish(tx, domainevents.TopicItemDeleted, event, event.EventID); err != nil {
			return fmt.Errorf("publish item deleted: %w", err)
		}
		return nil
	})
}

// Exists reports whether an item with the given ID exists for the household.
func (r *ItemRepository) Exists(ctx context.Context, householdID, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.DB().QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM inventory_items WHERE id = $1 AND household_id = $2
		)`,
		id, householdID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check item exists: %w", err)
	}
	return exists, nil
}

func execState(ctx context.Context, tx *sql.Tx, householdID, id uuid.UUID, phase models.Phase) error {
	toBuy, isPacked, isChecking := phase.Flags()
	res, err := tx.ExecContext(ctx, `
		UPDATE inventory_items
		SET to_buy = $3, is_packed = $4, is_checking = $5
		WHERE id = $1 AND household_id = $2`,
		id, householdID, toBuy, isPacked, isChecking,
	)
	if err != nil {
		return fmt.Errorf("update state: %w", err)
	}
	return requireRow(res)
}

func (r *ItemRepository) publishChanged(tx *sql.Tx, householdID, id uuid.UUID, phase string) error {
	if r.bus == nil {
		return nil
	}
	event := domainevents.ItemChangedEvent{
		EventID:     uuid.New(),
		Version:     1,
		ItemID:      id,
		HouseholdID: householdID,
		Phase:       phase,
		OccurredAt:  time.Now().UTC(),
	}
	if err := r.publish(tx, domainevents.TopicItemChanged, event, event.EventID); err != nil {
		return fmt.Errorf("publish item changed: %w", err)
	}
	return nil
}

func (r *ItemRepository) publish(tx *sql.Tx, topic string, event any, eventID uuid.UUID) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return invdomain.ErrItemNotFound
	}
	return nil
}

// scanItem maps one row onto a domain Item, rebuilding the phase from the
// stored triad (which normalizes any stale to_buy+is_checking combination).
func scanItem(row interface{ Scan(...any) error }) (*models.Item, error) {
	var (
		item                      models.Item
		name                      string
		toBuy, isPacked, checking bool
	)
	if err := row.Scan(
		&item.ID, &item.HouseholdID, &name, &item.RealName, &item.Category,
		&item.PrimaryLoc, &item.SecondaryLoc, &item.Price, &item.Quantity,
		&toBuy, &isPacked, &checking, &item.CreatedAt,
	); err != nil {
		return nil, err
	}
	item.Name = models.ItemName(name)
	item.Phase = models.PhaseFromFlags(toBuy, isPacked, checking)
	return &item, nil
}
