package listing

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"techconnect/internal/domain"
)

type ContractKind string

const (
	ContractPJ         ContractKind = "pj"
	ContractCLT        ContractKind = "clt"
	ContractFreelancer ContractKind = "freelancer"
)

func ContractKinds() []ContractKind {
	return []ContractKind{ContractPJ, ContractCLT, ContractFreelancer}
}

func (c ContractKind) Valid() bool {
	switch c {
	case ContractPJ, ContractCLT, ContractFreelancer:
		return true
	}
	return false
}

func ParseContractKind(s string) (ContractKind, bool) {
	c := ContractKind(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return "", true
	}
	if !c.Valid() {
		return "", false
	}
	return c, true
}

type WorkMode string

const (
	WorkOnSite WorkMode = "on_site"
	WorkRemote WorkMode = "remote"
	WorkHybrid WorkMode = "hybrid"
)

func WorkModes() []WorkMode {
	return []WorkMode{WorkOnSite, WorkRemote, WorkHybrid}
}

func (w WorkMode) Valid() bool {
	switch w {
	case WorkOnSite, WorkRemote, WorkHybrid:
		return true
	}
	return false
}

func ParseWorkMode(s string) (WorkMode, bool) {
	w := WorkMode(strings.ToLower(strings.TrimSpace(s)))
	if w == "" {
		return "", true
	}
	if !w.Valid() {
		return "", false
	}
	return w, true
}

// Contact holds the disclosure-gated fields of a listing. They are only
// rendered to authenticated professional viewers.
type Contact struct {
	Email   string
	Phone   string
	Website string
}

type Listing struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	CompanyName    string
	Title          string
	ContractKind   ContractKind
	Level          domain.Level
	WorkMode       WorkMode
	BudgetRange    string
	Description    string
	RequiredSkills []string
	Location       string
	LogoURL        string
	CreatedAt      time.Time
	Contact        Contact
}

var ErrNotFound = errors.New("listing not found")

type Repository interface {
	ListAll(ctx context.Context) ([]Listing, error)
	FindByID(ctx context.Context, id uuid.UUID) (Listing, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Listing, error)
}
