package dto

import (
	"time"

	"github.com/google/uuid"

	"techconnect/internal/domain/account"
)

type AccountResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Kind      string    `json:"kind"`
	CreatedAt string    `json:"created_at"`
}

func NewAccountResponse(a account.Account) AccountResponse {
	created := ""
	if !a.CreatedAt.IsZero() {
		created = a.CreatedAt.UTC().Format(time.RFC3339)
	}
	return AccountResponse{
		ID:        a.ID,
		Email:     a.Email,
		Kind:      string(a.Kind),
		CreatedAt: created,
	}
}
