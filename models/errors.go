package models

import "errors"

var (
	// ErrNotFound is returned when the target row is absent or already removed.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write collides with a unique key.
	ErrConflict = errors.New("conflict")
	// ErrNoUpdates is returned for an update that carries no assignable field.
	ErrNoUpdates = errors.New("no updates provided")
)
