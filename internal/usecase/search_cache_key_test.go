package usecase

import (
	"strings"
	"testing"

	"techconnect/internal/domain"
	"techconnect/internal/domain/listing"
	"techconnect/internal/search"
)

func TestOpportunitiesSearchCacheKey_TextMatchesQueryNormalization(t *testing.T) {
	// The text matcher trims and lowercases the query, so keys may merge
	// exactly that much and no more.
	a := OpportunitiesSearchCacheKey(search.ListingCriteria{Text: "  Bubble Dev "})
	b := OpportunitiesSearchCacheKey(search.ListingCriteria{Text: "bubble dev"})
	if a != b {
		t.Fatalf("trim and case of the text query must not change the key:\n%s\n%s", a, b)
	}

	c := OpportunitiesSearchCacheKey(search.ListingCriteria{Text: "bubble  dev"})
	if c == b {
		t.Fatalf("inner whitespace changes substring matching and must change the key")
	}
}

func TestOpportunitiesSearchCacheKey_SkillCaseIsSignificant(t *testing.T) {
	exact := search.ListingCriteria{Skills: []string{"Bubble"}}
	lower := search.ListingCriteria{Skills: []string{"bubble"}}

	// Skill membership is case-sensitive, so these criteria filter
	// differently and must never share a cache entry.
	items := []listing.Listing{{Title: "Bubble Developer", RequiredSkills: []string{"Bubble"}}}
	if got := len(search.FilterListings(items, exact)); got != 1 {
		t.Fatalf("exact-case selection: expected 1 match, got %d", got)
	}
	if got := len(search.FilterListings(items, lower)); got != 0 {
		t.Fatalf("lowercased selection: expected 0 matches, got %d", got)
	}

	if OpportunitiesSearchCacheKey(exact) == OpportunitiesSearchCacheKey(lower) {
		t.Fatalf("criteria with different results share one cache key")
	}
}

func TestOpportunitiesSearchCacheKey_DiffersPerCriteria(t *testing.T) {
	a := OpportunitiesSearchCacheKey(search.ListingCriteria{Level: domain.LevelSenior})
	b := OpportunitiesSearchCacheKey(search.ListingCriteria{Level: domain.LevelJunior})
	if a == b {
		t.Fatalf("distinct criteria must not collide")
	}
	if !strings.HasPrefix(a, "opportunities:search:") {
		t.Fatalf("unexpected key prefix: %s", a)
	}
}

func TestProfessionalsSearchCacheKey_SkillCaseIsSignificant(t *testing.T) {
	a := ProfessionalsSearchCacheKey(search.ProfileCriteria{Skills: []string{"Webflow"}})
	b := ProfessionalsSearchCacheKey(search.ProfileCriteria{Skills: []string{"webflow"}})
	if a == b {
		t.Fatalf("skill case must change the key")
	}
	if !strings.HasPrefix(a, "professionals:search:") {
		t.Fatalf("unexpected key prefix: %s", a)
	}
}
