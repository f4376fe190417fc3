package visibility

import (
	"time"

	"github.com/google/uuid"

	"techconnect/internal/domain"
	"techconnect/internal/domain/account"
	"techconnect/internal/domain/listing"
	"techconnect/internal/domain/profile"
)

// Long-form text shown to gated viewers is cut to a fixed prefix.
const (
	ProfileExcerptLimit = 150
	ListingExcerptLimit = 200
)

const (
	profileCallToAction = "Sign up as a company to see full contact details"
	listingCallToAction = "Sign up as a professional to see the full description and contact details"
)

// ProfileView is a profile shaped for the current viewer. Contact is nil
// whenever the gate denies disclosure, regardless of the underlying data.
type ProfileView struct {
	ID              uuid.UUID
	Name            string
	Headline        string
	Bio             string
	Skills          []string
	Level           domain.Level
	Location        string
	Availability    profile.Availability
	PhotoURL        string
	ContactsVisible bool
	Contact         *profile.Contact
	CallToAction    string
}

// ListingView is a listing shaped for the current viewer.
type ListingView struct {
	ID              uuid.UUID
	CompanyName     string
	Title           string
	ContractKind    listing.ContractKind
	Level           domain.Level
	WorkMode        listing.WorkMode
	BudgetRange     string
	Description     string
	RequiredSkills  []string
	Location        string
	LogoURL         string
	CreatedAt       time.Time
	ContactsVisible bool
	Contact         *listing.Contact
	CallToAction    string
}

func NewProfileView(p profile.Profile, viewer *account.Account) ProfileView {
	v := ProfileView{
		ID:           p.ID,
		Name:         p.Name,
		Headline:     p.Headline,
		Bio:          p.Bio,
		Skills:       p.Skills,
		Level:        p.Level,
		Location:     p.Location,
		Availability: p.Availability,
		PhotoURL:     p.PhotoURL,
	}

	if CanViewProfileContacts(viewer) {
		v.ContactsVisible = true
		c := p.Contact
		v.Contact = &c
		return v
	}

	v.Bio = Excerpt(p.Bio, ProfileExcerptLimit)
	v.CallToAction = profileCallToAction
	return v
}

func NewListingView(l listing.Listing, viewer *account.Account) ListingView {
	v := ListingView{
		ID:             l.ID,
		CompanyName:    l.CompanyName,
		Title:          l.Title,
		ContractKind:   l.ContractKind,
		Level:          l.Level,
		WorkMode:       l.WorkMode,
		BudgetRange:    l.BudgetRange,
		Description:    l.Description,
		RequiredSkills: l.RequiredSkills,
		Location:       l.Location,
		LogoURL:        l.LogoURL,
		CreatedAt:      l.CreatedAt,
	}

	if CanViewListingContacts(viewer) {
		v.ContactsVisible = true
		c := l.Contact
		v.Contact = &c
		return v
	}

	v.Description = Excerpt(l.Description, ListingExcerptLimit)
	v.CallToAction = listingCallToAction
	return v
}

// Excerpt cuts s to the first limit runes and appends an ellipsis. The cut
// is rune-based so multi-byte text stays valid.
func Excerpt(s string, limit int) string {
	r := []rune(s)
	if len(r) > limit {
		r = r[:limit]
	}
	return string(r) + "..."
}
