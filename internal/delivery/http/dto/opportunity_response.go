package dto

import (
	"time"

	"github.com/google/uuid"

	"techconnect/internal/domain/listing"
	"techconnect/internal/visibility"
)

type OpportunityListItemResponse struct {
	ID             uuid.UUID `json:"id"`
	CompanyName    string    `json:"company_name"`
	Title          string    `json:"title"`
	ContractKind   string    `json:"contract_kind"`
	Level          string    `json:"level"`
	WorkMode       string    `json:"work_mode"`
	BudgetRange    string    `json:"budget_range,omitempty"`
	Description    string    `json:"description"`
	RequiredSkills []string  `json:"required_skills"`
	Location       string    `json:"location"`
	LogoURL        string    `json:"logo_url,omitempty"`
	CreatedAt      string    `json:"created_at"`
}

func NewOpportunityListResponse(items []listing.Listing) []OpportunityListItemResponse {
	out := make([]OpportunityListItemResponse, 0, len(items))
	for _, l := range items {
		out = append(out, OpportunityListItemResponse{
			ID:             l.ID,
			CompanyName:    l.CompanyName,
			Title:          l.Title,
			ContractKind:   string(l.ContractKind),
			Level:          string(l.Level),
			WorkMode:       string(l.WorkMode),
			BudgetRange:    l.BudgetRange,
			Description:    l.Description,
			RequiredSkills: l.RequiredSkills,
			Location:       l.Location,
			LogoURL:        l.LogoURL,
			CreatedAt:      formatDate(l.CreatedAt),
		})
	}
	return out
}

type ListingContactResponse struct {
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
}

type OpportunityDetailResponse struct {
	ID              uuid.UUID               `json:"id"`
	CompanyName     string                  `json:"company_name"`
	Title           string                  `json:"title"`
	ContractKind    string                  `json:"contract_kind"`
	Level           string                  `json:"level"`
	WorkMode        string                  `json:"work_mode"`
	BudgetRange     string                  `json:"budget_range,omitempty"`
	Description     string                  `json:"description"`
	RequiredSkills  []string                `json:"required_skills"`
	Location        string                  `json:"location"`
	LogoURL         string                  `json:"logo_url,omitempty"`
	CreatedAt       string                  `json:"created_at"`
	ContactsVisible bool                    `json:"contacts_visible"`
	Contact         *ListingContactResponse `json:"contact,omitempty"`
	CallToAction    string                  `json:"call_to_action,omitempty"`
}

func NewOpportunityDetailResponse(v visibility.ListingView) OpportunityDetailResponse {
	out := OpportunityDetailResponse{
		ID:              v.ID,
		CompanyName:     v.CompanyName,
		Title:           v.Title,
		ContractKind:    string(v.ContractKind),
		Level:           string(v.Level),
		WorkMode:        string(v.WorkMode),
		BudgetRange:     v.BudgetRange,
		Description:     v.Description,
		RequiredSkills:  v.RequiredSkills,
		Location:        v.Location,
		LogoURL:         v.LogoURL,
		CreatedAt:       formatDate(v.CreatedAt),
		ContactsVisible: v.ContactsVisible,
		CallToAction:    v.CallToAction,
	}
	if v.Contact != nil {
		out.Contact = &ListingContactResponse{
			Email:   v.Contact.Email,
			Phone:   v.Contact.Phone,
			Website: v.Contact.Website,
		}
	}
	return out
}

type OpportunityFilterOptionsResponse struct {
	Skills        []string `json:"skills"`
	Levels        []string `json:"levels"`
	ContractKinds []string `json:"contract_kinds"`
	WorkModes     []string `json:"work_modes"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
