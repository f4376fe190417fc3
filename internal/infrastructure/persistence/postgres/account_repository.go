package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"techconnect/internal/database"
	"techconnect/internal/domain/account"
)

// AccountRepository is the Postgres-backed account registry. It serves
// the same interface as the in-memory one; the container picks it when a
// database is configured.
type AccountRepository struct {
	db database.DB
}

func NewAccountRepository(db database.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// EnsureSchema creates the accounts table when it does not exist yet.
// Email uniqueness is enforced on the lowercased address, matching the
// registry's case-insensitive comparison.
func (r *AccountRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS accounts (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL,
			secret_hash TEXT NOT NULL,
			kind TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS accounts_email_lower_idx ON accounts (lower(email))`)
	return err
}

func (r *AccountRepository) Insert(ctx context.Context, a account.Account) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO accounts (id, email, secret_hash, kind, created_at) VALUES ($1, $2, $3, $4, $5)`,
		a.ID, a.Email, a.SecretHash, string(a.Kind), a.CreatedAt,
	)
	return err
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (account.Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, secret_hash, kind, created_at FROM accounts WHERE lower(email) = lower($1)`,
		email,
	)
	return scanAccount(row)
}

func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (account.Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, secret_hash, kind, created_at FROM accounts WHERE id = $1`,
		id,
	)
	return scanAccount(row)
}

func (r *AccountRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE lower(email) = lower($1))`,
		email,
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func scanAccount(row database.Row) (account.Account, error) {
	var a account.Account
	var kind string
	if err := row.Scan(&a.ID, &a.Email, &a.SecretHash, &kind, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return account.Account{}, account.ErrNotFound
		}
		return account.Account{}, err
	}
	a.Kind = account.Kind(kind)
	return a, nil
}
