package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"trailpack/internal/domain"
)

var ErrListNotFound = errors.New("list not found")

type ListRepository struct {
	db ExtHandle
}

func NewListRepository(db ExtHandle) *ListRepository {
	return &ListRepository{db: db}
}

func (r *ListRepository) Create(list *domain.PackList) error {
	// Whole-second timestamps render as the same fixed-width text on both
	// backends, so lexicographic order equals chronological order. Version 7
	// ids are time-ordered and break same-second ties in insert order.
	if list.ID == uuid.Nil {
		list.ID = uuid.Must(uuid.NewV7())
	}
	list.CreatedAt = time.Now().UTC().Truncate(time.Second)

	query := r.db.Rebind(`
		INSERT INTO lists (id, created_at, user_id, name)
		VALUES (?, ?, ?, ?)
	`)

	_, err := r.db.Exec(query, list.ID, list.CreatedAt, list.UserID, list.Name)
	return err
}

func (r *ListRepository) FindByID(userID, id uuid.UUID) (*domain.PackList, error) {
	query := r.db.Rebind(`
		SELECT id, created_at, user_id, name
		FROM lists
		WHERE id = ? AND user_id = ?
	`)

	list := &domain.PackList{}
	if err := sqlx.Get(r.db, list, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrListNotFound
		}
		return nil, err
	}

	return list, nil
}

func (r *ListRepository) FindAllByUser(userID uuid.UUID) ([]*domain.PackList, error) {
	query := r.db.Rebind(`
		SELECT id, created_at, user_id, name
		FROM lists
		WHERE user_id = ?
		ORDER BY created_at ASC, id ASC
	`)

	lists := []*domain.PackList{}
	if err := sqlx.Select(r.db, &lists, query, userID); err != nil {
		return nil, err
	}

	return lists, nil
}

// First returns the user's oldest list, the ambient default.
func (r *ListRepository) First(userID uuid.UUID) (*domain.PackList, error) {
	query := r.db.Rebind(`
		SELECT id, created_at, user_id, name
		FROM lists
		WHERE user_id = ?
		ORDER BY created_at ASC, id ASC
		LIMIT 1
	`)

	list := &domain.PackList{}
	if err := sqlx.Get(r.db, list, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrListNotFound
		}
		return nil, err
	}

	return list, nil
}

func (r *ListRepository) CountByUser(userID uuid.UUID) (int, error) {
	query := r.db.Rebind(`SELECT COUNT(*) FROM lists WHERE user_id = ?`)

	var count int
	if err := sqlx.Get(r.db, &count, query, userID); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ListRepository) Delete(userID, id uuid.UUID) error {
	query := r.db.Rebind(`DELETE FROM lists WHERE id = ? AND user_id = ?`)

	res, err := r.db.Exec(query, id, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrListNotFound
	}
	return nil
}
