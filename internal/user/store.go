package user

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no user matches the lookup.
var ErrNotFound = errors.New("user: not found")

// Store is the data-access surface gated by the authorization layer.
// Implementations are consulted only after an allow decision; their results
// pass through to the caller unaltered.
type Store interface {
	List(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
}
