package shortener

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Code represents a short URL code.
type Code string

// Mapping represents a short code to original URL mapping.
type Mapping struct {
	Code        Code
	OriginalURL string
	CreatedAt   time.Time
}

var (
	// ErrNotFound is returned when no mapping exists for a code.
	ErrNotFound = errors.New("mapping not found")

	// ErrCodeExists is returned by a Store when an insert violates code
	// uniqueness.
	ErrCodeExists = errors.New("code already exists")

	// ErrEmptyURL is returned when a create request carries no URL.
	ErrEmptyURL = errors.New("original url is required")

	// ErrInvalidCode is returned when a custom code contains characters
	// outside the code alphabet.
	ErrInvalidCode = errors.New("custom code must be alphanumeric")
)

// DuplicateError reports that a caller-chosen custom code is already taken.
type DuplicateError struct {
	Code Code
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("short code %q is already taken", e.Code)
}

func (e *DuplicateError) Unwrap() error {
	return ErrCodeExists
}

// Store defines the persistence operations the service needs. The store owns
// the uniqueness invariant on Code.
type Store interface {
	// Insert persists a new mapping. Returns ErrCodeExists when the code is
	// already present.
	Insert(ctx context.Context, mapping *Mapping) error

	// GetByCode retrieves a mapping by exact code match. Returns ErrNotFound
	// when no mapping exists.
	GetByCode(ctx context.Context, code Code) (*Mapping, error)

	// DeleteByCode removes a mapping. Deleting an absent code is not an
	// error.
	DeleteByCode(ctx context.Context, code Code) error
}
