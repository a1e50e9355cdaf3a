// Package store persists loan inputs under generated identifiers and caches
// computed analyses.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/refi/refi-calculator/internal/domain"
)

// ErrNotFound is returned when no inputs are stored under an identifier
var ErrNotFound = errors.New("scenario not found")

// InputStore saves raw loan inputs and fetches them back by identifier.
// Computed results are never stored here.
type InputStore interface {
	Save(ctx context.Context, in domain.LoanInputs) (string, error)
	Get(ctx context.Context, id string) (domain.LoanInputs, error)
}

// NewID returns a fresh scenario identifier
func NewID() string {
	return uuid.NewString()
}

// ParseID normalizes an identifier, rejecting anything that is not a UUID
// with ErrNotFound so callers treat malformed and unknown ids alike.
func ParseID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return u.String(), nil
}
