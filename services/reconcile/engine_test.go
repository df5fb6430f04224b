package reconcile

import (
	"testing"

	"skyretail/models"
)

func TestNumericCore(t *testing.T) {
	tests := []struct {
		ref, prefix, want string
	}{
		{"fl913653037", "fl", "913653037"},
		{"seg913653037", "seg", "913653037"},
		{"fl913653037", "seg", ""},
		{"flABC", "fl", ""},
		{"fl", "fl", ""},
		{"913653037", "fl", ""},
		{"fl91a", "fl", ""},
		{"fl1", "", ""},
	}
	for _, tc := range tests {
		if got := numericCore(tc.ref, tc.prefix); got != tc.want {
			t.Errorf("numericCore(%q, %q) = %q, want %q", tc.ref, tc.prefix, got, tc.want)
		}
	}
}

func testEngine() *Engine {
	serviceDefs := models.NewServiceDefinitionIndex([]models.ServiceDefinition{
		{ID: "SD-BAG", Code: "XBAG", Category: models.CategoryBaggage},
		{ID: "SD-SEAT", Code: "STDS", Category: models.CategorySeat},
		{ID: "SD-MEAL", Code: "MEAL", Category: models.CategoryMeal},
		{ID: "SD-WIFI", Code: "WIFI", Category: models.CategoryAncillary},
	})
	bundleDefs := models.NewBundleDefinitionIndex([]models.BundleDefinition{
		{
			ServiceDefinition: models.ServiceDefinition{ID: "SD-PLUS", Code: "PLUS", Category: models.CategoryBundle},
			IncludedRefs:      []string{"SD-BAG", "SD-SEAT", "SD-MEAL", "SD-WIFI", "SD-GONE"},
		},
		{
			ServiceDefinition: models.ServiceDefinition{ID: "SD-MAX", Code: "MAX", Category: models.CategoryBundle},
			IncludedRefs:      []string{"SD-BAG", "SD-MEAL"},
		},
	})
	return NewEngine("fl", "seg", serviceDefs, bundleDefs, nil)
}

func TestMatchBundlesByNumericCore(t *testing.T) {
	e := testEngine()
	items := []models.ALaCarteOfferItem{
		{ID: "PLUS-ADT", ServiceDefRef: "SD-PLUS", PaxRefs: []string{"ADT1"}, JourneyRefs: []string{"fl913653037"}},
		{ID: "PLUS-OTHER", ServiceDefRef: "SD-PLUS", PaxRefs: []string{"ADT1"}, JourneyRefs: []string{"fl555000111"}},
	}

	// The offer references only segments; correlation goes through the
	// shared numeric core 913653037.
	got := e.MatchBundlesToOffer(items, "OFFER-1", []string{"seg913653037"}, nil, "ALC-1")
	if len(got) != 1 {
		t.Fatalf("got %d bundles, want 1", len(got))
	}
	b := got[0]
	if b.Definition.Code != "PLUS" {
		t.Errorf("bundle code = %q, want PLUS", b.Definition.Code)
	}
	if b.ContainerOfferID != "ALC-1" {
		t.Errorf("container = %q, want ALC-1", b.ContainerOfferID)
	}
	if len(b.PaxRefs) != 1 || b.PaxItemIDs["ADT1"] != "PLUS-ADT" {
		t.Errorf("pax item ids = %v", b.PaxItemIDs)
	}
	if len(b.JourneyRefs) != 1 || b.JourneyRefs[0] != "fl913653037" {
		t.Errorf("journey refs = %v, unrelated item must not contribute", b.JourneyRefs)
	}
}

func TestMatchBundlesByDirectRefs(t *testing.T) {
	e := testEngine()
	items := []models.ALaCarteOfferItem{
		{ID: "P1", ServiceDefRef: "SD-PLUS", PaxRefs: []string{"ADT1"}, JourneyRefs: []string{"fl42"}},
		{ID: "P2", ServiceDefRef: "SD-MAX", PaxRefs: []string{"ADT1"}, SegmentRefs: []string{"seg42"}},
	}

	got := e.MatchBundlesToOffer(items, "OFFER-1", []string{"seg42"}, []string{"fl42"}, "ALC-1")
	if len(got) != 2 {
		t.Fatalf("got %d bundles, want 2 (one by journey ref, one by segment ref)", len(got))
	}
	// Output is ordered by bundle code.
	if got[0].Definition.Code != "MAX" || got[1].Definition.Code != "PLUS" {
		t.Errorf("codes = %q, %q, want MAX, PLUS", got[0].Definition.Code, got[1].Definition.Code)
	}
}

func TestMatchBundlesAllItemsFallback(t *testing.T) {
	e := testEngine()
	items := []models.ALaCarteOfferItem{
		{ID: "P1", ServiceDefRef: "SD-PLUS", PaxRefs: []string{"ADT1"}, JourneyRefs: []string{"flXYZ"}},
		{ID: "M1", ServiceDefRef: "SD-MAX", PaxRefs: []string{"ADT1"}, JourneyRefs: []string{"unrelated"}},
	}

	// Nothing correlates; the engine must keep every item rather than
	// drop paid ancillaries.
	got := e.MatchBundlesToOffer(items, "OFFER-1", []string{"seg913653037"}, []string{"fl913653037"}, "ALC-1")
	if len(got) != 2 {
		t.Fatalf("fallback produced %d bundles, want 2", len(got))
	}
}

func TestMatchBundlesNoItems(t *testing.T) {
	e := testEngine()
	if got := e.MatchBundlesToOffer(nil, "OFFER-1", []string{"seg1"}, nil, "ALC-1"); len(got) != 0 {
		t.Errorf("got %d bundles from no items, want 0", len(got))
	}
}

func TestGroupByBundleMergesPaxTypeVariants(t *testing.T) {
	e := testEngine()
	// The same bundle concept issued under two item ids, one per
	// passenger type. CHD1 appears twice; the first item id wins.
	items := []models.ALaCarteOfferItem{
		{ID: "PLUS-ADT", ServiceDefRef: "SD-PLUS", PaxRefs: []string{"ADT1", "ADT2"}, JourneyRefs: []string{"fl1"}},
		{ID: "PLUS-CHD", ServiceDefRef: "SD-PLUS", PaxRefs: []string{"CHD1"}, JourneyRefs: []string{"fl1"}},
		{ID: "PLUS-CHD-DUP", ServiceDefRef: "SD-PLUS", PaxRefs: []string{"CHD1"}, JourneyRefs: []string{"fl1"}},
		{ID: "OTHER", ServiceDefRef: "SD-BAG", PaxRefs: []string{"ADT1"}, JourneyRefs: []string{"fl1"}},
	}

	got := e.MatchBundlesToOffer(items, "OFFER-1", nil, []string{"fl1"}, "ALC-1")
	if len(got) != 1 {
		t.Fatalf("got %d bundles, want 1", len(got))
	}
	b := got[0]
	if len(b.PaxRefs) != 3 {
		t.Errorf("pax refs = %v, want ADT1 ADT2 CHD1", b.PaxRefs)
	}
	want := map[string]string{"ADT1": "PLUS-ADT", "ADT2": "PLUS-ADT", "CHD1": "PLUS-CHD"}
	for pax, id := range want {
		if b.PaxItemIDs[pax] != id {
			t.Errorf("PaxItemIDs[%s] = %q, want %q", pax, b.PaxItemIDs[pax], id)
		}
	}
	if len(b.JourneyRefs) != 1 {
		t.Errorf("journey refs = %v, want deduplicated fl1", b.JourneyRefs)
	}
}

func TestResolveInclusions(t *testing.T) {
	e := testEngine()
	def := models.BundleDefinition{
		ServiceDefinition: models.ServiceDefinition{ID: "SD-PLUS", Code: "PLUS"},
		IncludedRefs:      []string{"SD-BAG", "SD-SEAT", "SD-MEAL", "SD-WIFI", "SD-GONE"},
	}
	inc := e.ResolveInclusions(def)
	if len(inc.Baggage) != 1 || inc.Baggage[0].Code != "XBAG" {
		t.Errorf("baggage = %+v", inc.Baggage)
	}
	if len(inc.Seats) != 1 || inc.Seats[0].Code != "STDS" {
		t.Errorf("seats = %+v", inc.Seats)
	}
	if len(inc.Meals) != 1 || inc.Meals[0].Code != "MEAL" {
		t.Errorf("meals = %+v", inc.Meals)
	}
	// Unresolvable refs are skipped, not errored.
	if len(inc.Other) != 1 || inc.Other[0].Code != "WIFI" {
		t.Errorf("other = %+v", inc.Other)
	}
}
