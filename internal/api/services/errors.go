package services

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidWeight   = errors.New("invalid weight")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidItemType = errors.New("invalid item type")

	// ErrLastListProtected guards the one standing invariant of list
	// lifecycle: a user always keeps at least one list.
	ErrLastListProtected = errors.New("cannot delete the last remaining list")

	// ErrSyncFailed and ErrCloneFailed signal that a multi-statement
	// transaction rolled back; nothing was applied and the caller may retry.
	ErrSyncFailed  = errors.New("catalog sync failed")
	ErrCloneFailed = errors.New("list clone failed")
)
