package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"trailpack/internal/domain"
)

var (
	ErrCatalogEntryNotFound = errors.New("catalog entry not found")
	ErrCatalogEntryExists   = errors.New("catalog entry already exists")
)

type CatalogRepository struct {
	db ExtHandle
}

func NewCatalogRepository(db ExtHandle) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) Create(entry *domain.CatalogEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.Must(uuid.NewV7())
	}
	entry.CreatedAt = time.Now().UTC().Truncate(time.Second)

	query := r.db.Rebind(`
		INSERT INTO catalog_entries (id, created_at, user_id, name, description, category, item_type, weight_grams, default_qty)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := r.db.Exec(query,
		entry.ID, entry.CreatedAt, entry.UserID,
		entry.Name, entry.Description, entry.Category, entry.Type, entry.WeightGrams, entry.DefaultQty,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrCatalogEntryExists
		}
		return err
	}
	return nil
}

func (r *CatalogRepository) FindByID(userID, id uuid.UUID) (*domain.CatalogEntry, error) {
	query := r.db.Rebind(`
		SELECT id, created_at, user_id, name, description, category, item_type, weight_grams, default_qty
		FROM catalog_entries
		WHERE id = ? AND user_id = ?
	`)

	entry := &domain.CatalogEntry{}
	if err := sqlx.Get(r.db, entry, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCatalogEntryNotFound
		}
		return nil, err
	}

	return entry, nil
}

func (r *CatalogRepository) FindByKey(userID uuid.UUID, key domain.GearKey) (*domain.CatalogEntry, error) {
	query := r.db.Rebind(`
		SELECT id, created_at, user_id, name, description, category, item_type, weight_grams, default_qty
		FROM catalog_entries
		WHERE user_id = ? AND name = ? AND category = ? AND item_type = ? AND weight_grams = ?
	`)

	entry := &domain.CatalogEntry{}
	err := sqlx.Get(r.db, entry, query, userID, key.Name, key.Category, key.Type, key.WeightGrams)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCatalogEntryNotFound
		}
		return nil, err
	}

	return entry, nil
}

func (r *CatalogRepository) FindAllByUser(userID uuid.UUID) ([]*domain.CatalogEntry, error) {
	query := r.db.Rebind(`
		SELECT id, created_at, user_id, name, description, category, item_type, weight_grams, default_qty
		FROM catalog_entries
		WHERE user_id = ?
		ORDER BY category ASC, name ASC, weight_grams ASC
	`)

	entries := []*domain.CatalogEntry{}
	if err := sqlx.Select(r.db, &entries, query, userID); err != nil {
		return nil, err
	}

	return entries, nil
}

// FindAllWithPresence lists the catalog together with the derived "already in
// this list" flag. The flag is recomputed on every call, never stored.
func (r *CatalogRepository) FindAllWithPresence(userID, listID uuid.UUID) ([]*domain.CatalogEntryPresence, error) {
	query := r.db.Rebind(`
		SELECT ce.id, ce.created_at, ce.user_id, ce.name, ce.description, ce.category, ce.item_type, ce.weight_grams, ce.default_qty,
			EXISTS (
				SELECT 1 FROM items i
				WHERE i.user_id = ce.user_id
					AND i.list_id = ?
					AND i.name = ce.name
					AND i.category = ce.category
					AND i.item_type = ce.item_type
					AND i.weight_grams = ce.weight_grams
			) AS in_list
		FROM catalog_entries ce
		WHERE ce.user_id = ?
		ORDER BY ce.category ASC, ce.name ASC, ce.weight_grams ASC
	`)

	entries := []*domain.CatalogEntryPresence{}
	if err := sqlx.Select(r.db, &entries, query, listID, userID); err != nil {
		return nil, err
	}

	return entries, nil
}

// Fold updates an entry's default quantity and description, the merge half of
// an upsert.
func (r *CatalogRepository) Fold(userID, id uuid.UUID, defaultQty int, description string) error {
	query := r.db.Rebind(`
		UPDATE catalog_entries
		SET default_qty = ?, description = ?
		WHERE id = ? AND user_id = ?
	`)

	res, err := r.db.Exec(query, defaultQty, description, id, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrCatalogEntryNotFound
	}
	return nil
}

func (r *CatalogRepository) UpdateWeight(userID, id uuid.UUID, grams int) error {
	query := r.db.Rebind(`
		UPDATE catalog_entries
		SET weight_grams = ?
		WHERE id = ? AND user_id = ?
	`)

	res, err := r.db.Exec(query, grams, id, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrCatalogEntryNotFound
	}
	return nil
}

// UpdateDescriptionByTriple syncs the description of every entry sharing
// (name, type, weight), regardless of category.
func (r *CatalogRepository) UpdateDescriptionByTriple(userID uuid.UUID, name string, itemType domain.ItemType, grams int, description string) (int64, error) {
	query := r.db.Rebind(`
		UPDATE catalog_entries
		SET description = ?
		WHERE user_id = ? AND name = ? AND item_type = ? AND weight_grams = ?
	`)

	res, err := r.db.Exec(query, description, userID, name, itemType, grams)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *CatalogRepository) Delete(userID, id uuid.UUID) error {
	query := r.db.Rebind(`DELETE FROM catalog_entries WHERE id = ? AND user_id = ?`)

	res, err := r.db.Exec(query, id, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrCatalogEntryNotFound
	}
	return nil
}
