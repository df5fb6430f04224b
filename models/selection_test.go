package models

import "testing"

func TestSelectionAncillaryItems(t *testing.T) {
	sel := Selection{
		Bundles:  []SelectedBundle{{Code: "PLUS", ContainerOfferID: "ALC-1"}},
		Services: []SelectedServiceItem{{ItemID: "BAG-1", ServiceCategory: CategoryBaggage}},
		Seats:    []SeatSelection{{SegmentRef: "seg1", PaxRef: "ADT1", Row: 1, Column: "A"}},
	}
	items := sel.AncillaryItems()
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	wantKinds := []ItemKind{ItemKindBundle, ItemKindService, ItemKindSeat}
	for i, item := range items {
		if item.Kind() != wantKinds[i] {
			t.Errorf("item %d kind = %q, want %q", i, item.Kind(), wantKinds[i])
		}
	}
	if !sel.HasAncillaries() {
		t.Error("HasAncillaries = false, want true")
	}
	if (Selection{FareItems: []SelectedFareItem{{ItemID: "F1"}}}).HasAncillaries() {
		t.Error("fare-only selection must not report ancillaries")
	}
}

func TestSeatServiceIDsLookup(t *testing.T) {
	ids := SeatServiceIDs{Entries: []SeatServiceID{
		{Code: "EXTRA_LEGROOM", SegmentRef: "seg1", PaxRef: "ADT1", ItemID: "LEG-1"},
		{Code: "UPFRONT_SEAT", SegmentRef: "seg1", PaxRef: "ADT1", ItemID: "UPF-1"},
	}}
	if id, ok := ids.Lookup("EXTRA_LEGROOM", "seg1", "ADT1"); !ok || id != "LEG-1" {
		t.Errorf("Lookup = %q/%v, want LEG-1/true", id, ok)
	}
	if _, ok := ids.Lookup("EXTRA_LEGROOM", "seg2", "ADT1"); ok {
		t.Error("lookup must miss on a different segment")
	}
}

func TestSeatID(t *testing.T) {
	if got := (Seat{Row: 12, Column: "C"}).ID(); got != "12C" {
		t.Errorf("seat id = %q, want 12C", got)
	}
}
