package profile

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"techconnect/internal/domain"
)

type Availability string

const (
	AvailabilityAvailable            Availability = "available"
	AvailabilityBusy                 Availability = "busy"
	AvailabilitySeekingOpportunities Availability = "seeking_opportunities"
)

func Availabilities() []Availability {
	return []Availability{AvailabilityAvailable, AvailabilityBusy, AvailabilitySeekingOpportunities}
}

func (a Availability) Valid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilitySeekingOpportunities:
		return true
	}
	return false
}

func ParseAvailability(s string) (Availability, bool) {
	a := Availability(strings.ToLower(strings.TrimSpace(s)))
	if a == "" {
		return "", true
	}
	if !a.Valid() {
		return "", false
	}
	return a, true
}

// Contact holds the disclosure-gated fields of a profile. They are only
// rendered to authenticated company viewers.
type Contact struct {
	Email     string
	Phone     string
	Portfolio string
	Website   string
	LinkedIn  string
}

// Profile is a professional's public card plus gated contact details.
// Skills keep their declared order; it is also the display order.
type Profile struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Headline     string
	Bio          string
	Skills       []string
	Level        domain.Level
	Location     string
	Availability Availability
	PhotoURL     string
	Contact      Contact
}

var ErrNotFound = errors.New("profile not found")

type Repository interface {
	ListAll(ctx context.Context) ([]Profile, error)
	FindByID(ctx context.Context, id uuid.UUID) (Profile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (Profile, error)
}
