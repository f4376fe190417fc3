package dto

import "techconnect/internal/usecase"

// DashboardResponse is the owner's own data, ungated: a professional
// account gets its profile with full contacts, a company account gets
// its listings with full contacts.
type DashboardResponse struct {
	Account  AccountResponse             `json:"account"`
	Profile  *ProfessionalDetailResponse `json:"profile,omitempty"`
	Listings []OpportunityDetailResponse `json:"listings,omitempty"`
}

func NewDashboardResponse(o usecase.DashboardOverview) DashboardResponse {
	out := DashboardResponse{Account: NewAccountResponse(o.Account)}

	if o.Profile != nil {
		p := *o.Profile
		c := p.Contact
		out.Profile = &ProfessionalDetailResponse{
			ID:              p.ID,
			Name:            p.Name,
			Headline:        p.Headline,
			Bio:             p.Bio,
			Skills:          p.Skills,
			Level:           string(p.Level),
			Location:        p.Location,
			Availability:    string(p.Availability),
			PhotoURL:        p.PhotoURL,
			ContactsVisible: true,
			Contact: &ProfileContactResponse{
				Email:     c.Email,
				Phone:     c.Phone,
				Portfolio: c.Portfolio,
				Website:   c.Website,
				LinkedIn:  c.LinkedIn,
			},
		}
	}

	if len(o.Listings) > 0 {
		out.Listings = make([]OpportunityDetailResponse, 0, len(o.Listings))
		for _, l := range o.Listings {
			out.Listings = append(out.Listings, OpportunityDetailResponse{
				ID:              l.ID,
				CompanyName:     l.CompanyName,
				Title:           l.Title,
				ContractKind:    string(l.ContractKind),
				Level:           string(l.Level),
				WorkMode:        string(l.WorkMode),
				BudgetRange:     l.BudgetRange,
				Description:     l.Description,
				RequiredSkills:  l.RequiredSkills,
				Location:        l.Location,
				LogoURL:         l.LogoURL,
				CreatedAt:       formatDate(l.CreatedAt),
				ContactsVisible: true,
				Contact: &ListingContactResponse{
					Email:   l.Contact.Email,
					Phone:   l.Contact.Phone,
					Website: l.Contact.Website,
				},
			})
		}
	}

	return out
}
