package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"techconnect/internal/domain"
	"techconnect/internal/domain/account"
	"techconnect/internal/domain/listing"
	"techconnect/internal/search"
	"techconnect/internal/visibility"
)

type OpportunityFilterOptions struct {
	Skills        []string
	Levels        []domain.Level
	ContractKinds []listing.ContractKind
	WorkModes     []listing.WorkMode
}

type OpportunityUsecase interface {
	ListOpportunities(ctx context.Context, c search.ListingCriteria) ([]listing.Listing, error)
	GetOpportunity(ctx context.Context, id uuid.UUID, viewer *account.Account) (visibility.ListingView, error)
	FilterOptions(ctx context.Context) (OpportunityFilterOptions, error)
}

type Opportunity struct {
	listings listing.Repository
	cache    SearchCache
	logger   *log.Logger
}

func NewOpportunityUsecase(listings listing.Repository, cache SearchCache, logger *log.Logger) *Opportunity {
	return &Opportunity{listings: listings, cache: cache, logger: logger}
}

// ListOpportunities filters the collection by the active criteria. The
// result keeps collection order. Filtered results are cached per
// criteria digest; an unfiltered listing is always computed fresh.
func (u *Opportunity) ListOpportunities(ctx context.Context, c search.ListingCriteria) ([]listing.Listing, error) {
	cacheable := c.HasFilter() && u.cache != nil
	cacheKey := ""
	if cacheable {
		cacheKey = OpportunitiesSearchCacheKey(c)
		var cached []listing.Listing
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Opportunities] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
		if u.logger != nil {
			u.logger.Printf("[Opportunities] Cache MISS: %s", cacheKey)
		}
	}

	items, err := u.listings.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out := search.FilterListings(items, c)

	if cacheable {
		_ = u.cache.SetJSON(ctx, cacheKey, out, 0)
	}
	return out, nil
}

// GetOpportunity shapes the listing for the viewer: contact details only
// pass the gate for authenticated professionals, everyone else gets the
// truncated description and a signup call to action.
func (u *Opportunity) GetOpportunity(ctx context.Context, id uuid.UUID, viewer *account.Account) (visibility.ListingView, error) {
	l, err := u.listings.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, listing.ErrNotFound) {
			return visibility.ListingView{}, ErrNotFound
		}
		return visibility.ListingView{}, ErrInternal
	}
	return visibility.NewListingView(l, viewer), nil
}

// FilterOptions derives the filter vocabulary from the current
// collection. The skill list is recomputed on every call so it follows
// the collection; enum vocabularies are static.
func (u *Opportunity) FilterOptions(ctx context.Context) (OpportunityFilterOptions, error) {
	items, err := u.listings.ListAll(ctx)
	if err != nil {
		return OpportunityFilterOptions{}, ErrInternal
	}
	return OpportunityFilterOptions{
		Skills:        search.ListingSkills(items),
		Levels:        domain.Levels(),
		ContractKinds: listing.ContractKinds(),
		WorkModes:     listing.WorkModes(),
	}, nil
}
