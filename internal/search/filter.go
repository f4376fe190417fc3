package search

import (
	"sort"
	"strings"

	"techconnect/internal/domain/listing"
	"techconnect/internal/domain/profile"
)

// FilterListings returns the subset of items matching every active
// criterion. The result preserves the input order; nothing is re-sorted.
func FilterListings(items []listing.Listing, c ListingCriteria) []listing.Listing {
	out := make([]listing.Listing, 0, len(items))
	for _, it := range items {
		if MatchListing(it, c) {
			out = append(out, it)
		}
	}
	return out
}

func FilterProfiles(items []profile.Profile, c ProfileCriteria) []profile.Profile {
	out := make([]profile.Profile, 0, len(items))
	for _, it := range items {
		if MatchProfile(it, c) {
			out = append(out, it)
		}
	}
	return out
}

func MatchListing(l listing.Listing, c ListingCriteria) bool {
	if !matchesText(c.Text, []string{l.Title, l.CompanyName, l.Description}, l.RequiredSkills) {
		return false
	}
	if !matchesSkills(c.Skills, l.RequiredSkills) {
		return false
	}
	if c.Level != "" && l.Level != c.Level {
		return false
	}
	if c.ContractKind != "" && l.ContractKind != c.ContractKind {
		return false
	}
	if c.WorkMode != "" && l.WorkMode != c.WorkMode {
		return false
	}
	return true
}

func MatchProfile(p profile.Profile, c ProfileCriteria) bool {
	if !matchesText(c.Text, []string{p.Name, p.Headline, p.Bio}, p.Skills) {
		return false
	}
	if !matchesSkills(c.Skills, p.Skills) {
		return false
	}
	if c.Level != "" && p.Level != c.Level {
		return false
	}
	if c.Availability != "" && p.Availability != c.Availability {
		return false
	}
	return true
}

// matchesText is a case-insensitive substring match over the record's
// free-text fields and its skill names. An empty query matches everything.
func matchesText(query string, fields []string, skills []string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	for _, s := range skills {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

// matchesSkills uses OR semantics: the record matches when its skill set
// shares at least one entry with the selection. Selection entries come
// from the derived vocabulary, so membership is exact.
func matchesSkills(selected []string, have []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, want := range selected {
		for _, s := range have {
			if s == want {
				return true
			}
		}
	}
	return false
}

// ListingSkills derives the filter vocabulary from the current collection:
// the deduplicated, alphabetically sorted union of all required skills.
// It is recomputed from the collection on every call.
func ListingSkills(items []listing.Listing) []string {
	sets := make([][]string, 0, len(items))
	for _, it := range items {
		sets = append(sets, it.RequiredSkills)
	}
	return skillUnion(sets)
}

func ProfileSkills(items []profile.Profile) []string {
	sets := make([][]string, 0, len(items))
	for _, it := range items {
		sets = append(sets, it.Skills)
	}
	return skillUnion(sets)
}

func skillUnion(sets [][]string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, set := range sets {
		for _, s := range set {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
