package memory

import (
	"context"

	"github.com/google/uuid"

	"techconnect/internal/domain/profile"
)

// ProfileRepository serves the compiled-in professional collection.
type ProfileRepository struct {
	items []profile.Profile
}

func NewProfileRepository(seed []profile.Profile) *ProfileRepository {
	items := make([]profile.Profile, len(seed))
	copy(items, seed)
	return &ProfileRepository{items: items}
}

func (r *ProfileRepository) ListAll(_ context.Context) ([]profile.Profile, error) {
	out := make([]profile.Profile, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *ProfileRepository) FindByID(_ context.Context, id uuid.UUID) (profile.Profile, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return profile.Profile{}, profile.ErrNotFound
}

func (r *ProfileRepository) FindByUserID(_ context.Context, userID uuid.UUID) (profile.Profile, error) {
	for _, it := range r.items {
		if it.UserID == userID {
			return it, nil
		}
	}
	return profile.Profile{}, profile.ErrNotFound
}
