package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"techconnect/internal/domain"
	"techconnect/internal/domain/account"
	"techconnect/internal/domain/profile"
	"techconnect/internal/search"
)

type fakeProfileRepo struct {
	items []profile.Profile
}

func (f *fakeProfileRepo) ListAll(_ context.Context) ([]profile.Profile, error) {
	return f.items, nil
}

func (f *fakeProfileRepo) FindByID(_ context.Context, id uuid.UUID) (profile.Profile, error) {
	for _, it := range f.items {
		if it.ID == id {
			return it, nil
		}
	}
	return profile.Profile{}, profile.ErrNotFound
}

func (f *fakeProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (profile.Profile, error) {
	for _, it := range f.items {
		if it.UserID == userID {
			return it, nil
		}
	}
	return profile.Profile{}, profile.ErrNotFound
}

func fixtureProfiles() []profile.Profile {
	return []profile.Profile{
		{ID: uuid.New(), Name: "Ana Souza", Skills: []string{"Bubble"}, Level: domain.LevelSenior, Availability: profile.AvailabilityAvailable, Contact: profile.Contact{Email: "ana@exemplo.com"}},
		{ID: uuid.New(), Name: "Carlos Lima", Skills: []string{"Webflow"}, Level: domain.LevelMid, Availability: profile.AvailabilityBusy},
	}
}

func TestListProfessionals_Filtering(t *testing.T) {
	u := NewProfessionalUsecase(&fakeProfileRepo{items: fixtureProfiles()}, nil, nil)

	got, err := u.ListProfessionals(context.Background(), search.ProfileCriteria{Availability: profile.AvailabilityBusy})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Carlos Lima" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestGetProfessional_GateByViewerKind(t *testing.T) {
	items := fixtureProfiles()
	u := NewProfessionalUsecase(&fakeProfileRepo{items: items}, nil, nil)
	ctx := context.Background()

	gated, err := u.GetProfessional(ctx, items[0].ID, &account.Account{Kind: account.KindProfessional})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gated.ContactsVisible || gated.Contact != nil {
		t.Fatalf("professional viewer must not see profile contacts")
	}
	if gated.CallToAction == "" {
		t.Fatalf("expected a call to action")
	}

	full, err := u.GetProfessional(ctx, items[0].ID, &account.Account{Kind: account.KindCompany})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !full.ContactsVisible || full.Contact == nil || full.Contact.Email != "ana@exemplo.com" {
		t.Fatalf("company viewer must see profile contacts")
	}
}

func TestGetProfessional_NotFound(t *testing.T) {
	u := NewProfessionalUsecase(&fakeProfileRepo{items: fixtureProfiles()}, nil, nil)

	if _, err := u.GetProfessional(context.Background(), uuid.New(), nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProfessionalFilterOptions(t *testing.T) {
	u := NewProfessionalUsecase(&fakeProfileRepo{items: fixtureProfiles()}, nil, nil)

	opts, err := u.FilterOptions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts.Skills) != 2 {
		t.Fatalf("unexpected skills: %v", opts.Skills)
	}
	if len(opts.Availabilities) != 3 {
		t.Fatalf("expected the full availability vocabulary")
	}
}
