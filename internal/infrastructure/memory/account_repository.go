package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"techconnect/internal/domain/account"
)

// AccountRepository is the in-process account registry. It is the default
// backing store for the mock-data design; the Postgres repository can be
// swapped in through the same interface.
type AccountRepository struct {
	mu    sync.RWMutex
	items []account.Account
}

func NewAccountRepository(seed []account.Account) *AccountRepository {
	items := make([]account.Account, len(seed))
	copy(items, seed)
	return &AccountRepository{items: items}
}

func (r *AccountRepository) Insert(_ context.Context, a account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, it := range r.items {
		if strings.EqualFold(it.Email, a.Email) {
			return account.ErrDuplicateEmail
		}
	}
	r.items = append(r.items, a)
	return nil
}

func (r *AccountRepository) FindByEmail(_ context.Context, email string) (account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if strings.EqualFold(it.Email, email) {
			return it, nil
		}
	}
	return account.Account{}, account.ErrNotFound
}

func (r *AccountRepository) FindByID(_ context.Context, id uuid.UUID) (account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return account.Account{}, account.ErrNotFound
}

func (r *AccountRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, it := range r.items {
		if strings.EqualFold(it.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// Len reports the number of registered accounts.
func (r *AccountRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
