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
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

type UserRepository struct {
	db ExtHandle
}

func NewUserRepository(db ExtHandle) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *domain.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.Must(uuid.NewV7())
	}
	user.CreatedAt = time.Now().UTC().Truncate(time.Second)

	query := r.db.Rebind(`
		INSERT INTO users (id, created_at, username, email, password)
		VALUES (?, ?, ?, ?, ?)
	`)

	_, err := r.db.Exec(query, user.ID, user.CreatedAt, user.Username, user.Email, user.Password)
	if err != nil {
		if isUniqueConstraintError(err) {
			return ErrUserExists
		}
		return err
	}
	return nil
}

func (r *UserRepository) FindByID(id uuid.UUID) (*domain.User, error) {
	query := r.db.Rebind(`
		SELECT id, created_at, username, email, password
		FROM users
		WHERE id = ?
	`)

	user := &domain.User{}
	if err := sqlx.Get(r.db, user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) FindByUsername(username string) (*domain.User, error) {
	query := r.db.Rebind(`
		SELECT id, created_at, username, email, password
		FROM users
		WHERE username = ?
	`)

	user := &domain.User{}
	if err := sqlx.Get(r.db, user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) FindByEmail(email string) (*domain.User, error) {
	query := r.db.Rebind(`
		SELECT id, created_at, username, email, password
		FROM users
		WHERE email = ?
	`)

	user := &domain.User{}
	if err := sqlx.Get(r.db, user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) UpdatePassword(userID uuid.UUID, hashed string) error {
	query := r.db.Rebind(`UPDATE users SET password = ? WHERE id = ?`)

	res, err := r.db.Exec(query, hashed, userID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrUserNotFound
	}
	return nil
}
