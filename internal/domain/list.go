package domain

import "github.com/google/uuid"

// MaxListNameLen is the limit list names are truncated to on create/clone.
const MaxListNameLen = 40

type PackList struct {
	Model
	UserID uuid.UUID `db:"user_id"`
	Name   string    `db:"name"`
}
