package visibility

import (
	"techconnect/internal/domain/account"
)

// The gate is reciprocal, not ownership-based: a viewer of one kind sees
// gated contact details only on records of the opposite kind. A
// professional viewing another professional, or a company viewing another
// company's listing, never passes the gate. Owners seeing their own full
// data is a separate rule applied only on the dashboard.

// CanViewProfileContacts reports whether the viewer may see a
// professional profile's contact details.
func CanViewProfileContacts(viewer *account.Account) bool {
	return viewer != nil && viewer.Kind == account.KindCompany
}

// CanViewListingContacts reports whether the viewer may see an
// opportunity listing's contact details.
func CanViewListingContacts(viewer *account.Account) bool {
	return viewer != nil && viewer.Kind == account.KindProfessional
}
