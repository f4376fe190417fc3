package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"techconnect/internal/domain/account"
	"techconnect/internal/domain/listing"
	"techconnect/internal/domain/profile"
)

func TestDashboardOverview_ProfessionalSeesOwnProfileInFull(t *testing.T) {
	userID := uuid.New()
	profiles := &fakeProfileRepo{items: []profile.Profile{
		{ID: uuid.New(), UserID: userID, Name: "Ana Souza", Contact: profile.Contact{Email: "ana@exemplo.com"}},
	}}
	u := NewDashboardUsecase(profiles, &fakeListingRepo{})

	out, err := u.Overview(context.Background(), account.Account{
		ID:         userID,
		Kind:       account.KindProfessional,
		SecretHash: "must-not-leak",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Account.SecretHash != "" {
		t.Fatalf("secret hash must be blanked")
	}
	if out.Profile == nil || out.Profile.Contact.Email != "ana@exemplo.com" {
		t.Fatalf("owner must see their own contact data: %+v", out.Profile)
	}
}

func TestDashboardOverview_ProfessionalWithoutProfile(t *testing.T) {
	u := NewDashboardUsecase(&fakeProfileRepo{}, &fakeListingRepo{})

	out, err := u.Overview(context.Background(), account.Account{ID: uuid.New(), Kind: account.KindProfessional})
	if err != nil {
		t.Fatalf("a missing profile is a valid state, got %v", err)
	}
	if out.Profile != nil {
		t.Fatalf("expected no profile, got %+v", out.Profile)
	}
}

func TestDashboardOverview_CompanySeesOwnListings(t *testing.T) {
	userID := uuid.New()
	listings := &fakeListingRepo{items: []listing.Listing{
		{ID: uuid.New(), UserID: userID, Title: "Bubble Developer"},
		{ID: uuid.New(), UserID: uuid.New(), Title: "Someone else's"},
	}}
	u := NewDashboardUsecase(&fakeProfileRepo{}, listings)

	out, err := u.Overview(context.Background(), account.Account{ID: userID, Kind: account.KindCompany})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Listings) != 1 || out.Listings[0].Title != "Bubble Developer" {
		t.Fatalf("expected only the owner's listings: %+v", out.Listings)
	}
}

func TestDashboardOverview_UnknownKind(t *testing.T) {
	u := NewDashboardUsecase(&fakeProfileRepo{}, &fakeListingRepo{})

	if _, err := u.Overview(context.Background(), account.Account{ID: uuid.New()}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
