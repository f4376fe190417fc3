package account

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind is the two-valued role of a registered account, fixed at signup.
type Kind string

const (
	KindProfessional Kind = "professional"
	KindCompany      Kind = "company"
)

func (k Kind) Valid() bool {
	return k == KindProfessional || k == KindCompany
}

// Opposite returns the other account kind. Contact disclosure is
// reciprocal: each kind sees the other kind's gated details.
func (k Kind) Opposite() Kind {
	if k == KindProfessional {
		return KindCompany
	}
	return KindProfessional
}

func ParseKind(s string) (Kind, bool) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", false
	}
	return k, true
}

type Account struct {
	ID         uuid.UUID
	Email      string
	SecretHash string
	Kind       Kind
	CreatedAt  time.Time
}
