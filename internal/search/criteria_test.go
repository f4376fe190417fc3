package search

import (
	"reflect"
	"testing"

	"techconnect/internal/domain"
	"techconnect/internal/domain/listing"
)

func TestToggleSkill_FlipsMembership(t *testing.T) {
	c := ListingCriteria{}

	c.ToggleSkill("Bubble")
	if !reflect.DeepEqual(c.Skills, []string{"Bubble"}) {
		t.Fatalf("expected [Bubble], got %v", c.Skills)
	}

	c.ToggleSkill("Webflow")
	if !reflect.DeepEqual(c.Skills, []string{"Bubble", "Webflow"}) {
		t.Fatalf("expected [Bubble Webflow], got %v", c.Skills)
	}

	c.ToggleSkill("Bubble")
	if !reflect.DeepEqual(c.Skills, []string{"Webflow"}) {
		t.Fatalf("expected [Webflow], got %v", c.Skills)
	}
}

func TestClear_ResetsAllCriteria(t *testing.T) {
	c := ListingCriteria{
		Text:         "bubble",
		Skills:       []string{"Bubble", "Make"},
		Level:        domain.LevelSenior,
		ContractKind: listing.ContractPJ,
		WorkMode:     listing.WorkRemote,
	}

	c.Clear()
	if c.HasFilter() {
		t.Fatalf("expected no active filters after clear, got %+v", c)
	}
}

func TestClear_IsIdempotent(t *testing.T) {
	c := ListingCriteria{Text: "bubble", Skills: []string{"Bubble"}}

	c.Clear()
	once := c
	c.Clear()

	if !reflect.DeepEqual(once, c) {
		t.Fatalf("expected clearing twice to equal clearing once")
	}
}

func TestHasFilter(t *testing.T) {
	if (ListingCriteria{}).HasFilter() {
		t.Fatalf("empty criteria should report no filter")
	}
	if !(ListingCriteria{Text: "x"}).HasFilter() {
		t.Fatalf("text criteria should report a filter")
	}
	if !(ProfileCriteria{Skills: []string{"Bubble"}}).HasFilter() {
		t.Fatalf("skill criteria should report a filter")
	}
}
