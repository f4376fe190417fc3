package visibility

import (
	"strings"
	"testing"

	"techconnect/internal/domain/account"
	"techconnect/internal/domain/listing"
	"techconnect/internal/domain/profile"
)

func viewerOf(kind account.Kind) *account.Account {
	return &account.Account{Email: "viewer@exemplo.com", Kind: kind}
}

func TestGate_ReciprocalDisclosure(t *testing.T) {
	cases := []struct {
		name        string
		viewer      *account.Account
		seesProfile bool
		seesListing bool
	}{
		{name: "anonymous", viewer: nil, seesProfile: false, seesListing: false},
		{name: "professional", viewer: viewerOf(account.KindProfessional), seesProfile: false, seesListing: true},
		{name: "company", viewer: viewerOf(account.KindCompany), seesProfile: true, seesListing: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanViewProfileContacts(tc.viewer); got != tc.seesProfile {
				t.Fatalf("profile contacts: expected %v, got %v", tc.seesProfile, got)
			}
			if got := CanViewListingContacts(tc.viewer); got != tc.seesListing {
				t.Fatalf("listing contacts: expected %v, got %v", tc.seesListing, got)
			}
		})
	}
}

func TestNewListingView_GatedViewerGetsExcerptAndCallToAction(t *testing.T) {
	l := listing.Listing{
		Title:       "Bubble Developer",
		Description: strings.Repeat("x", 500),
		Contact:     listing.Contact{Email: "rh@exemplo.com", Phone: "+55 11 99999-0000"},
	}

	v := NewListingView(l, viewerOf(account.KindCompany))

	if v.ContactsVisible {
		t.Fatalf("company viewer must not see listing contacts")
	}
	if v.Contact != nil {
		t.Fatalf("expected contact to be withheld, got %+v", v.Contact)
	}
	if v.CallToAction == "" {
		t.Fatalf("expected a call to action for the gated viewer")
	}
	runes := []rune(v.Description)
	if len(runes) != ListingExcerptLimit+3 {
		t.Fatalf("expected %d runes plus ellipsis, got %d", ListingExcerptLimit, len(runes))
	}
	if !strings.HasSuffix(v.Description, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", v.Description[len(v.Description)-8:])
	}
}

func TestNewListingView_ProfessionalSeesEverything(t *testing.T) {
	l := listing.Listing{
		Title:       "Bubble Developer",
		Description: strings.Repeat("x", 500),
		Contact:     listing.Contact{Email: "rh@exemplo.com"},
	}

	v := NewListingView(l, viewerOf(account.KindProfessional))

	if !v.ContactsVisible {
		t.Fatalf("professional viewer must see listing contacts")
	}
	if v.Contact == nil || v.Contact.Email != "rh@exemplo.com" {
		t.Fatalf("expected full contact, got %+v", v.Contact)
	}
	if v.Description != l.Description {
		t.Fatalf("expected untruncated description")
	}
	if v.CallToAction != "" {
		t.Fatalf("unexpected call to action for an entitled viewer")
	}
}

func TestNewProfileView_GatedViewerGetsExcerptAndCallToAction(t *testing.T) {
	p := profile.Profile{
		Name:    "Ana Souza",
		Bio:     strings.Repeat("a", 400),
		Contact: profile.Contact{Email: "ana@exemplo.com"},
	}

	v := NewProfileView(p, viewerOf(account.KindProfessional))

	if v.ContactsVisible || v.Contact != nil {
		t.Fatalf("professional viewer must not see profile contacts")
	}
	if v.CallToAction == "" {
		t.Fatalf("expected a call to action for the gated viewer")
	}
	if got := len([]rune(v.Bio)); got != ProfileExcerptLimit+3 {
		t.Fatalf("expected %d runes plus ellipsis, got %d", ProfileExcerptLimit, got)
	}
}

func TestNewProfileView_CompanySeesContacts(t *testing.T) {
	p := profile.Profile{
		Name:    "Ana Souza",
		Bio:     "short bio",
		Contact: profile.Contact{Email: "ana@exemplo.com", LinkedIn: "linkedin.com/in/ana"},
	}

	v := NewProfileView(p, viewerOf(account.KindCompany))

	if !v.ContactsVisible {
		t.Fatalf("company viewer must see profile contacts")
	}
	if v.Contact == nil || v.Contact.LinkedIn != "linkedin.com/in/ana" {
		t.Fatalf("expected full contact, got %+v", v.Contact)
	}
	if v.Bio != "short bio" {
		t.Fatalf("expected untruncated bio")
	}
}

func TestExcerpt(t *testing.T) {
	// Multi-byte text must be cut on rune boundaries.
	s := strings.Repeat("é", 10)
	got := Excerpt(s, 4)
	if got != "éééé..." {
		t.Fatalf("expected rune-safe prefix, got %q", got)
	}

	if got := Excerpt("short", 150); got != "short..." {
		t.Fatalf("short input still gets the ellipsis, got %q", got)
	}
}
