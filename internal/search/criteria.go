package search

import (
	"strings"

	"techconnect/internal/domain"
	"techconnect/internal/domain/listing"
	"techconnect/internal/domain/profile"
)

// ListingCriteria is the active filter state for the opportunity search.
// Zero values mean "unset": an empty criteria matches everything.
type ListingCriteria struct {
	Text         string
	Skills       []string
	Level        domain.Level
	ContractKind listing.ContractKind
	WorkMode     listing.WorkMode
}

// ProfileCriteria is the active filter state for the professional search.
type ProfileCriteria struct {
	Text         string
	Skills       []string
	Level        domain.Level
	Availability profile.Availability
}

func (c ListingCriteria) HasFilter() bool {
	return strings.TrimSpace(c.Text) != "" ||
		len(c.Skills) > 0 ||
		c.Level != "" ||
		c.ContractKind != "" ||
		c.WorkMode != ""
}

func (c ProfileCriteria) HasFilter() bool {
	return strings.TrimSpace(c.Text) != "" ||
		len(c.Skills) > 0 ||
		c.Level != "" ||
		c.Availability != ""
}

// ToggleSkill flips membership of skill in the selected set: selecting an
// already-selected skill removes it, selecting a new one appends it.
func (c *ListingCriteria) ToggleSkill(skill string) {
	c.Skills = toggleSkill(c.Skills, skill)
}

func (c *ProfileCriteria) ToggleSkill(skill string) {
	c.Skills = toggleSkill(c.Skills, skill)
}

// Clear resets every criterion to its unset default in one step.
func (c *ListingCriteria) Clear() {
	*c = ListingCriteria{}
}

func (c *ProfileCriteria) Clear() {
	*c = ProfileCriteria{}
}

func toggleSkill(selected []string, skill string) []string {
	for i, s := range selected {
		if s == skill {
			return append(selected[:i:i], selected[i+1:]...)
		}
	}
	return append(selected, skill)
}
