package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"trailpack/internal/domain"
)

var ErrItemNotFound = errors.New("item not found")

type ItemRepository struct {
	db ExtHandle
}

func NewItemRepository(db ExtHandle) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(item *domain.Item) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.Must(uuid.NewV7())
	}
	item.CreatedAt = time.Now().UTC().Truncate(time.Second)

	query := r.db.Rebind(`
		INSERT INTO items (id, created_at, user_id, list_id, name, description, category, item_type, weight_grams, quantity)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := r.db.Exec(query,
		item.ID, item.CreatedAt, item.UserID, item.ListID,
		item.Name, item.Description, item.Category, item.Type, item.WeightGrams, item.Quantity,
	)
	return err
}

func (r *ItemRepository) FindByID(userID, id uuid.UUID) (*domain.Item, error) {
	query := r.db.Rebind(`
		SELECT id, created_at, user_id, list_id, name, description, category, item_type, weight_grams, quantity
		FROM items
		WHERE id = ? AND user_id = ?
	`)

	item := &domain.Item{}
	if err := sqlx.Get(r.db, item, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	return item, nil
}

func (r *ItemRepository) FindByList(userID, listID uuid.UUID) ([]*domain.Item, error) {
	query := r.db.Rebind(`
		SELECT id, created_at, user_id, list_id, name, description, category, item_type, weight_grams, quantity
		FROM items
		WHERE user_id = ? AND list_id = ?
		ORDER BY category ASC, name ASC, created_at ASC, id ASC
	`)

	items := []*domain.Item{}
	if err := sqlx.Select(r.db, &items, query, userID, listID); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *ItemRepository) Delete(userID, id uuid.UUID) error {
	query := r.db.Rebind(`DELETE FROM items WHERE id = ? AND user_id = ?`)

	res, err := r.db.Exec(query, id, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *ItemRepository) DeleteByList(userID, listID uuid.UUID) error {
	query := r.db.Rebind(`DELETE FROM items WHERE user_id = ? AND list_id = ?`)

	_, err := r.db.Exec(query, userID, listID)
	return err
}

func (r *ItemRepository) UpdateCategory(userID, id uuid.UUID, category string) error {
	return r.updateColumn(userID, id, `category`, category)
}

func (r *ItemRepository) UpdateType(userID, id uuid.UUID, itemType domain.ItemType) error {
	return r.updateColumn(userID, id, `item_type`, string(itemType))
}

func (r *ItemRepository) UpdateQuantity(userID, id uuid.UUID, quantity int) error {
	return r.updateColumn(userID, id, `quantity`, quantity)
}

func (r *ItemRepository) updateColumn(userID, id uuid.UUID, column string, value interface{}) error {
	query := r.db.Rebind(`UPDATE items SET ` + column + ` = ? WHERE id = ? AND user_id = ?`)

	res, err := r.db.Exec(query, value, id, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrItemNotFound
	}
	return nil
}

// UpdateWeightByKey fans a weight edit out to every item of the user matching
// the pre-edit gear key, across all lists.
func (r *ItemRepository) UpdateWeightByKey(userID uuid.UUID, key domain.GearKey, newGrams int) (int64, error) {
	query := r.db.Rebind(`
		UPDATE items
		SET weight_grams = ?
		WHERE user_id = ? AND name = ? AND category = ? AND item_type = ? AND weight_grams = ?
	`)

	res, err := r.db.Exec(query, newGrams, userID, key.Name, key.Category, key.Type, key.WeightGrams)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// UpdateDescriptionByKey matches on the coarser (name, type, weight) triple:
// category is excluded so siblings filed under different categories stay in sync.
func (r *ItemRepository) UpdateDescriptionByKey(userID uuid.UUID, name string, itemType domain.ItemType, grams int, description string) (int64, error) {
	query := r.db.Rebind(`
		UPDATE items
		SET description = ?
		WHERE user_id = ? AND name = ? AND item_type = ? AND weight_grams = ?
	`)

	res, err := r.db.Exec(query, description, userID, name, itemType, grams)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// AttachOrphans assigns items without a list to the given one.
func (r *ItemRepository) AttachOrphans(userID, listID uuid.UUID) error {
	query := r.db.Rebind(`UPDATE items SET list_id = ? WHERE user_id = ? AND list_id IS NULL`)

	_, err := r.db.Exec(query, listID, userID)
	return err
}

func (r *ItemRepository) DistinctCategories(userID uuid.UUID) ([]string, error) {
	query := r.db.Rebind(`
		SELECT DISTINCT category
		FROM items
		WHERE user_id = ? AND category <> ''
		ORDER BY category ASC
	`)

	categories := []string{}
	if err := sqlx.Select(r.db, &categories, query, userID); err != nil {
		return nil, err
	}
	return categories, nil
}
