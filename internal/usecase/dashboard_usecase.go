package usecase

import (
	"context"
	"errors"

	"techconnect/internal/domain/account"
	"techconnect/internal/domain/listing"
	"techconnect/internal/domain/profile"
)

// DashboardOverview is the owner's view of their own data, ungated. This
// is the ownership rule, separate from the reciprocal visibility gate:
// an account always sees its own records in full.
type DashboardOverview struct {
	Account  account.Account
	Profile  *profile.Profile
	Listings []listing.Listing
}

type DashboardUsecase interface {
	Overview(ctx context.Context, viewer account.Account) (DashboardOverview, error)
}

type Dashboard struct {
	profiles profile.Repository
	listings listing.Repository
}

func NewDashboardUsecase(profiles profile.Repository, listings listing.Repository) *Dashboard {
	return &Dashboard{profiles: profiles, listings: listings}
}

func (u *Dashboard) Overview(ctx context.Context, viewer account.Account) (DashboardOverview, error) {
	out := DashboardOverview{Account: viewer}
	out.Account.SecretHash = ""

	switch viewer.Kind {
	case account.KindProfessional:
		p, err := u.profiles.FindByUserID(ctx, viewer.ID)
		if err != nil {
			// A professional account without a profile is a valid state.
			if !errors.Is(err, profile.ErrNotFound) {
				return DashboardOverview{}, ErrInternal
			}
		} else {
			out.Profile = &p
		}
	case account.KindCompany:
		items, err := u.listings.FindByUserID(ctx, viewer.ID)
		if err != nil {
			return DashboardOverview{}, ErrInternal
		}
		out.Listings = items
	default:
		return DashboardOverview{}, ErrInvalidInput
	}

	return out, nil
}
