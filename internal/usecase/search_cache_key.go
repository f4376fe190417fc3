package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"techconnect/internal/search"
)

type listingSearchKeyInput struct {
	Text         string   `json:"text"`
	Skills       []string `json:"skills"`
	Level        string   `json:"level"`
	ContractKind string   `json:"contract_kind"`
	WorkMode     string   `json:"work_mode"`
}

type profileSearchKeyInput struct {
	Text         string   `json:"text"`
	Skills       []string `json:"skills"`
	Level        string   `json:"level"`
	Availability string   `json:"availability"`
}

// normalizeSearchText applies exactly what the text matcher applies to
// the query (trim + lowercase), so criteria merged here cannot differ in
// match outcome. Inner whitespace is significant to the substring match
// and is kept as-is.
func normalizeSearchText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// copySkills keeps the selection byte-for-byte: skill membership is
// case-sensitive and exact, so any rewriting here could merge criteria
// with different results. The copy only pins nil and empty to one shape.
func copySkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	return append(out, skills...)
}

func OpportunitiesSearchCacheKey(c search.ListingCriteria) string {
	in := listingSearchKeyInput{
		Text:         normalizeSearchText(c.Text),
		Skills:       copySkills(c.Skills),
		Level:        string(c.Level),
		ContractKind: string(c.ContractKind),
		WorkMode:     string(c.WorkMode),
	}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "opportunities:search:" + hex.EncodeToString(sum[:])
}

func ProfessionalsSearchCacheKey(c search.ProfileCriteria) string {
	in := profileSearchKeyInput{
		Text:         normalizeSearchText(c.Text),
		Skills:       copySkills(c.Skills),
		Level:        string(c.Level),
		Availability: string(c.Availability),
	}
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return "professionals:search:" + hex.EncodeToString(sum[:])
}
