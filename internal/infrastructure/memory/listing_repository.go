package memory

import (
	"context"

	"github.com/google/uuid"

	"techconnect/internal/domain/listing"
)

// ListingRepository serves the compiled-in opportunity collection.
type ListingRepository struct {
	items []listing.Listing
}

func NewListingRepository(seed []listing.Listing) *ListingRepository {
	items := make([]listing.Listing, len(seed))
	copy(items, seed)
	return &ListingRepository{items: items}
}

func (r *ListingRepository) ListAll(_ context.Context) ([]listing.Listing, error) {
	out := make([]listing.Listing, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *ListingRepository) FindByID(_ context.Context, id uuid.UUID) (listing.Listing, error) {
	for _, it := range r.items {
		if it.ID == id {
			return it, nil
		}
	}
	return listing.Listing{}, listing.ErrNotFound
}

func (r *ListingRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]listing.Listing, error) {
	out := make([]listing.Listing, 0)
	for _, it := range r.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}
