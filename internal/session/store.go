package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"techconnect/internal/domain/account"
)

var (
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInternal               = errors.New("internal error")
)

// MinSecretLength is the minimum accepted secret length at signup,
// counted in runes. MaxSecretLength is the bcrypt input ceiling in
// bytes; longer secrets are rejected as input, not hashed truncated.
const (
	MinSecretLength = 6
	MaxSecretLength = 72
)

// Store tracks at most one authenticated account and mirrors it into
// durable storage so it survives restarts. Credential checks go through
// the account registry; sign-in failure is deliberately undifferentiated
// so callers cannot distinguish an unknown email from a wrong secret.
type Store struct {
	accounts account.Repository
	storage  Storage
	logger   *log.Logger

	mu      sync.Mutex
	current *account.Account
}

func NewStore(accounts account.Repository, storage Storage, logger *log.Logger) *Store {
	return &Store{accounts: accounts, storage: storage, logger: logger}
}

type storedAccount struct {
	ID         uuid.UUID    `json:"id"`
	Email      string       `json:"email"`
	SecretHash string       `json:"secret_hash"`
	Kind       account.Kind `json:"kind"`
	CreatedAt  time.Time    `json:"created_at"`
}

// SignIn scans the registry for an exact (email, secret) match. On
// success the matched account becomes the current session and is
// persisted; any failure is ErrInvalidCredentials.
func (s *Store) SignIn(ctx context.Context, email, secret string) (account.Account, error) {
	email = normalizeEmail(email)
	if email == "" || secret == "" {
		return account.Account{}, ErrInvalidCredentials
	}

	a, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.Account{}, ErrInvalidCredentials
		}
		return account.Account{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.SecretHash), []byte(secret)); err != nil {
		return account.Account{}, ErrInvalidCredentials
	}

	if err := s.establish(ctx, a); err != nil {
		return account.Account{}, err
	}
	return a, nil
}

// SignUp rejects duplicate emails without touching the registry or the
// current session. Otherwise it creates the account and immediately
// establishes it as the current session.
func (s *Store) SignUp(ctx context.Context, email, secret string, kind account.Kind) (account.Account, error) {
	email = normalizeEmail(email)
	if email == "" {
		return account.Account{}, ErrInvalidInput
	}
	if utf8.RuneCountInString(strings.TrimSpace(secret)) < MinSecretLength {
		return account.Account{}, ErrInvalidInput
	}
	if len(secret) > MaxSecretLength {
		return account.Account{}, ErrInvalidInput
	}
	if !kind.Valid() {
		return account.Account{}, ErrInvalidInput
	}

	exists, err := s.accounts.ExistsByEmail(ctx, email)
	if err != nil {
		return account.Account{}, ErrInternal
	}
	if exists {
		return account.Account{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return account.Account{}, ErrInternal
	}

	a := account.Account{
		ID:         uuid.New(),
		Email:      email,
		SecretHash: string(hash),
		Kind:       kind,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.accounts.Insert(ctx, a); err != nil {
		exists, exErr := s.accounts.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return account.Account{}, ErrEmailAlreadyRegistered
		}
		return account.Account{}, ErrInternal
	}

	if err := s.establish(ctx, a); err != nil {
		return account.Account{}, err
	}
	return a, nil
}

// SignOut clears the current session and its durable mirror. Calling it
// with no active session is a no-op.
func (s *Store) SignOut(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if s.storage == nil {
		return nil
	}
	if err := s.storage.Delete(ctx, StorageKey); err != nil {
		return ErrInternal
	}
	return nil
}

// Restore reads the persisted session once at startup and reinstates it.
// The stored account is re-validated against the live registry by ID; a
// stale entry (reseeded or reset registry) is discarded rather than
// restored as authenticated.
func (s *Store) Restore(ctx context.Context) (account.Account, bool, error) {
	if s.storage == nil {
		return account.Account{}, false, nil
	}

	raw, found, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		return account.Account{}, false, ErrInternal
	}
	if !found {
		return account.Account{}, false, nil
	}

	var rec storedAccount
	if err := json.Unmarshal(raw, &rec); err != nil {
		if s.logger != nil {
			s.logger.Printf("[Session] discarding unreadable stored session: %v", err)
		}
		_ = s.storage.Delete(ctx, StorageKey)
		return account.Account{}, false, nil
	}

	a, err := s.accounts.FindByID(ctx, rec.ID)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			if s.logger != nil {
				s.logger.Printf("[Session] stored session references unknown account %s, discarding", rec.ID)
			}
			_ = s.storage.Delete(ctx, StorageKey)
			return account.Account{}, false, nil
		}
		return account.Account{}, false, ErrInternal
	}

	s.mu.Lock()
	s.current = &a
	s.mu.Unlock()
	return a, true, nil
}

// Current returns a copy of the session account, or nil when anonymous.
func (s *Store) Current() *account.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	a := *s.current
	return &a
}

func (s *Store) IsAuthenticated() bool {
	return s.Current() != nil
}

func (s *Store) establish(ctx context.Context, a account.Account) error {
	s.mu.Lock()
	cp := a
	s.current = &cp
	s.mu.Unlock()

	if s.storage == nil {
		return nil
	}

	raw, err := json.Marshal(storedAccount{
		ID:         a.ID,
		Email:      a.Email,
		SecretHash: a.SecretHash,
		Kind:       a.Kind,
		CreatedAt:  a.CreatedAt,
	})
	if err != nil {
		return ErrInternal
	}
	if err := s.storage.Set(ctx, StorageKey, raw); err != nil {
		return ErrInternal
	}
	return nil
}

// Email comparison is case-insensitive: addresses are normalized to lower
// case both at signup and at sign-in.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
