package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"techconnect/internal/domain"
	"techconnect/internal/domain/account"
	"techconnect/internal/domain/profile"
	"techconnect/internal/search"
	"techconnect/internal/visibility"
)

type ProfessionalFilterOptions struct {
	Skills         []string
	Levels         []domain.Level
	Availabilities []profile.Availability
}

type ProfessionalUsecase interface {
	ListProfessionals(ctx context.Context, c search.ProfileCriteria) ([]profile.Profile, error)
	GetProfessional(ctx context.Context, id uuid.UUID, viewer *account.Account) (visibility.ProfileView, error)
	FilterOptions(ctx context.Context) (ProfessionalFilterOptions, error)
}

type Professional struct {
	profiles profile.Repository
	cache    SearchCache
	logger   *log.Logger
}

func NewProfessionalUsecase(profiles profile.Repository, cache SearchCache, logger *log.Logger) *Professional {
	return &Professional{profiles: profiles, cache: cache, logger: logger}
}

func (u *Professional) ListProfessionals(ctx context.Context, c search.ProfileCriteria) ([]profile.Profile, error) {
	cacheable := c.HasFilter() && u.cache != nil
	cacheKey := ""
	if cacheable {
		cacheKey = ProfessionalsSearchCacheKey(c)
		var cached []profile.Profile
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Professionals] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
		if u.logger != nil {
			u.logger.Printf("[Professionals] Cache MISS: %s", cacheKey)
		}
	}

	items, err := u.profiles.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	out := search.FilterProfiles(items, c)

	if cacheable {
		_ = u.cache.SetJSON(ctx, cacheKey, out, 0)
	}
	return out, nil
}

func (u *Professional) GetProfessional(ctx context.Context, id uuid.UUID, viewer *account.Account) (visibility.ProfileView, error) {
	p, err := u.profiles.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return visibility.ProfileView{}, ErrNotFound
		}
		return visibility.ProfileView{}, ErrInternal
	}
	return visibility.NewProfileView(p, viewer), nil
}

func (u *Professional) FilterOptions(ctx context.Context) (ProfessionalFilterOptions, error) {
	items, err := u.profiles.ListAll(ctx)
	if err != nil {
		return ProfessionalFilterOptions{}, ErrInternal
	}
	return ProfessionalFilterOptions{
		Skills:         search.ProfileSkills(items),
		Levels:         domain.Levels(),
		Availabilities: profile.Availabilities(),
	}, nil
}
