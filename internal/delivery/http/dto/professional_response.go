package dto

import (
	"github.com/google/uuid"

	"techconnect/internal/domain/profile"
	"techconnect/internal/visibility"
)

// ProfessionalListItemResponse carries the always-public card fields.
// Contact details never appear on the list.
type ProfessionalListItemResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Headline     string    `json:"headline"`
	Bio          string    `json:"bio"`
	Skills       []string  `json:"skills"`
	Level        string    `json:"level"`
	Location     string    `json:"location"`
	Availability string    `json:"availability"`
	PhotoURL     string    `json:"photo_url,omitempty"`
}

func NewProfessionalListResponse(items []profile.Profile) []ProfessionalListItemResponse {
	out := make([]ProfessionalListItemResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ProfessionalListItemResponse{
			ID:           p.ID,
			Name:         p.Name,
			Headline:     p.Headline,
			Bio:          p.Bio,
			Skills:       p.Skills,
			Level:        string(p.Level),
			Location:     p.Location,
			Availability: string(p.Availability),
			PhotoURL:     p.PhotoURL,
		})
	}
	return out
}

type ProfileContactResponse struct {
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Website   string `json:"website,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// ProfessionalDetailResponse mirrors the viewer-shaped profile view.
// Contact is omitted entirely when the gate denies disclosure.
type ProfessionalDetailResponse struct {
	ID              uuid.UUID               `json:"id"`
	Name            string                  `json:"name"`
	Headline        string                  `json:"headline"`
	Bio             string                  `json:"bio"`
	Skills          []string                `json:"skills"`
	Level           string                  `json:"level"`
	Location        string                  `json:"location"`
	Availability    string                  `json:"availability"`
	PhotoURL        string                  `json:"photo_url,omitempty"`
	ContactsVisible bool                    `json:"contacts_visible"`
	Contact         *ProfileContactResponse `json:"contact,omitempty"`
	CallToAction    string                  `json:"call_to_action,omitempty"`
}

func NewProfessionalDetailResponse(v visibility.ProfileView) ProfessionalDetailResponse {
	out := ProfessionalDetailResponse{
		ID:              v.ID,
		Name:            v.Name,
		Headline:        v.Headline,
		Bio:             v.Bio,
		Skills:          v.Skills,
		Level:           string(v.Level),
		Location:        v.Location,
		Availability:    string(v.Availability),
		PhotoURL:        v.PhotoURL,
		ContactsVisible: v.ContactsVisible,
		CallToAction:    v.CallToAction,
	}
	if v.Contact != nil {
		out.Contact = &ProfileContactResponse{
			Email:     v.Contact.Email,
			Phone:     v.Contact.Phone,
			Portfolio: v.Contact.Portfolio,
			Website:   v.Contact.Website,
			LinkedIn:  v.Contact.LinkedIn,
		}
	}
	return out
}

type ProfessionalFilterOptionsResponse struct {
	Skills         []string `json:"skills"`
	Levels         []string `json:"levels"`
	Availabilities []string `json:"availabilities"`
}
