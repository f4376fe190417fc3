package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("account not found")
	ErrDuplicateEmail = errors.New("email already taken")
)

// Repository is the account registry. The default implementation is an
// in-process collection seeded at startup; a Postgres-backed one can be
// swapped in without touching callers.
type Repository interface {
	Insert(ctx context.Context, a Account) error
	FindByEmail(ctx context.Context, email string) (Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (Account, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
