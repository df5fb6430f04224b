package pricereq

import (
	"errors"
	"reflect"
	"testing"

	"skyretail/models"
)

func fareSelection() models.Selection {
	return models.Selection{
		OfferID: "id-v2-9f6a-o-1",
		Owner:   "VA",
		FareItems: []models.SelectedFareItem{
			{ItemID: "id-v2-9f6a-o-1-i-1", PaxRefs: []string{"ADT2", "ADT1"}},
		},
	}
}

func TestBuildFareOnly(t *testing.T) {
	b := NewBuilder(nil)
	req, err := b.Build(fareSelection(), "SR-1")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if req.ShoppingResponseID != "SR-1" {
		t.Errorf("ShoppingResponseID = %q", req.ShoppingResponseID)
	}
	if len(req.SelectedOffers) != 1 {
		t.Fatalf("got %d blocks, want 1", len(req.SelectedOffers))
	}
	block := req.SelectedOffers[0]
	if block.OfferID != "id-v2-9f6a-o-1" || block.Owner != "VA" {
		t.Errorf("block = %q/%q", block.OfferID, block.Owner)
	}
	if len(block.OfferItems) != 1 {
		t.Fatalf("got %d items, want 1", len(block.OfferItems))
	}
	if got := block.OfferItems[0].PaxRefs; !reflect.DeepEqual(got, []string{"ADT1", "ADT2"}) {
		t.Errorf("pax refs = %v, want sorted", got)
	}
}

func TestBuildBundlePerPassengerExpansion(t *testing.T) {
	sel := fareSelection()
	sel.Bundles = []models.SelectedBundle{{
		Code:    "PLUS",
		PaxRefs: []string{"ADT1", "ADT2", "INF1"},
		// The infant type has no priceable bundle item; it is skipped,
		// never errored.
		PaxItemIDs:       map[string]string{"ADT1": "PLUS-ADT", "ADT2": "PLUS-ADT"},
		JourneyRefs:      []string{"fl913653037"},
		ContainerOfferID: "ALC-1",
	}}

	req, err := NewBuilder(nil).Build(sel, "SR-1")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(req.SelectedOffers) != 2 {
		t.Fatalf("got %d blocks, want fare + ancillary", len(req.SelectedOffers))
	}
	anc := req.SelectedOffers[1]
	if anc.OfferID != "ALC-1" {
		t.Errorf("ancillary block id = %q, want ALC-1", anc.OfferID)
	}
	if len(anc.OfferItems) != 2 {
		t.Fatalf("got %d bundle entries, want exactly 2 (one per eligible passenger)", len(anc.OfferItems))
	}
	for i, item := range anc.OfferItems {
		if item.ItemID != "PLUS-ADT" {
			t.Errorf("entry %d item id = %q, want PLUS-ADT", i, item.ItemID)
		}
		if len(item.PaxRefs) != 1 {
			t.Errorf("entry %d pax refs = %v, want a single passenger", i, item.PaxRefs)
		}
		if item.Association != models.AssociationJourney ||
			!reflect.DeepEqual(item.AssociationRefs, []string{"fl913653037"}) {
			t.Errorf("entry %d association = %s %v", i, item.Association, item.AssociationRefs)
		}
	}
	if anc.OfferItems[0].PaxRefs[0] == anc.OfferItems[1].PaxRefs[0] {
		t.Error("both entries carry the same passenger")
	}
}

func TestBuildOneBlockPerContainer(t *testing.T) {
	sel := fareSelection()
	sel.Services = []models.SelectedServiceItem{
		{
			ServiceID: "SD-BAG", ServiceCategory: models.CategoryBaggage,
			ItemID: "BAG-1", PaxRefs: []string{"ADT1"},
			Association: models.AssociationJourney, AssociationRefs: []string{"fl1"},
			ContainerOfferID: "A2",
		},
		{
			ServiceID: "SD-MEAL", ServiceCategory: models.CategoryMeal,
			ItemID: "MEAL-1", PaxRefs: []string{"ADT1"},
			Association: models.AssociationSegment, AssociationRefs: []string{"seg1"},
			ContainerOfferID: "A1",
		},
	}

	req, err := NewBuilder(nil).Build(sel, "SR-1")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(req.SelectedOffers) != 3 {
		t.Fatalf("got %d blocks, want fare + A1 + A2", len(req.SelectedOffers))
	}
	// Fare first, then containers in id order.
	if req.SelectedOffers[0].OfferID != "id-v2-9f6a-o-1" {
		t.Errorf("first block = %q, want the fare block", req.SelectedOffers[0].OfferID)
	}
	if req.SelectedOffers[1].OfferID != "A1" || req.SelectedOffers[2].OfferID != "A2" {
		t.Errorf("container blocks = %q, %q, want A1, A2",
			req.SelectedOffers[1].OfferID, req.SelectedOffers[2].OfferID)
	}
	if len(req.SelectedOffers[1].OfferItems) != 1 || req.SelectedOffers[1].OfferItems[0].ItemID != "MEAL-1" {
		t.Errorf("A1 items = %+v", req.SelectedOffers[1].OfferItems)
	}
	if len(req.SelectedOffers[2].OfferItems) != 1 || req.SelectedOffers[2].OfferItems[0].ItemID != "BAG-1" {
		t.Errorf("A2 items = %+v", req.SelectedOffers[2].OfferItems)
	}
}

func TestBuildMergesServiceDuplicates(t *testing.T) {
	sel := models.Selection{
		Owner: "VA",
		Services: []models.SelectedServiceItem{
			{
				ServiceID: "SD-BAG", ServiceCategory: models.CategoryBaggage,
				ItemID: "BAG-1", PaxRefs: []string{"ADT1"},
				Association: models.AssociationJourney, AssociationRefs: []string{"fl1"},
				ContainerOfferID: "ALC-1",
			},
			{
				ServiceID: "SD-BAG", ServiceCategory: models.CategoryBaggage,
				ItemID: "BAG-1", PaxRefs: []string{"ADT2"},
				Association: models.AssociationJourney, AssociationRefs: []string{"fl2"},
				ContainerOfferID: "ALC-1",
			},
		},
	}

	req, err := NewBuilder(nil).Build(sel, "SR-1")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(req.SelectedOffers) != 1 {
		t.Fatalf("got %d blocks, want 1", len(req.SelectedOffers))
	}
	items := req.SelectedOffers[0].OfferItems
	if len(items) != 1 {
		t.Fatalf("got %d items, want the duplicates merged into 1", len(items))
	}
	if !reflect.DeepEqual(items[0].PaxRefs, []string{"ADT1", "ADT2"}) {
		t.Errorf("merged pax refs = %v", items[0].PaxRefs)
	}
	if !reflect.DeepEqual(items[0].AssociationRefs, []string{"fl1", "fl2"}) {
		t.Errorf("merged association refs = %v", items[0].AssociationRefs)
	}
}

func TestBuildNeverMergesSeats(t *testing.T) {
	sel := models.Selection{
		Owner: "VA",
		Seats: []models.SeatSelection{
			{SegmentRef: "seg1", PaxRef: "ADT1", PaxType: models.PaxTypeAdult, Row: 12, Column: "A", ItemID: "SEAT-ADT", ContainerOfferID: "ALC-1"},
			{SegmentRef: "seg1", PaxRef: "ADT2", PaxType: models.PaxTypeAdult, Row: 12, Column: "B", ItemID: "SEAT-ADT", ContainerOfferID: "ALC-1"},
		},
	}

	req, err := NewBuilder(nil).Build(sel, "SR-1")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	items := req.SelectedOffers[0].OfferItems
	if len(items) != 2 {
		t.Fatalf("got %d seat entries, want 2 (seats never merge)", len(items))
	}
	if items[0].SeatColumn != "A" || items[1].SeatColumn != "B" {
		t.Errorf("seat columns = %q, %q", items[0].SeatColumn, items[1].SeatColumn)
	}
}

func TestBuildSeatCarriesSpecialServices(t *testing.T) {
	sel := models.Selection{
		Owner: "VA",
		Seats: []models.SeatSelection{{
			SegmentRef: "seg1", PaxRef: "ADT1", PaxType: models.PaxTypeAdult,
			Row: 1, Column: "C", ItemID: "SEAT-1", ContainerOfferID: "ALC-1",
			ServiceCodes:   []string{"EXTRA_LEGROOM"},
			ServiceItemIDs: map[string]string{"EXTRA_LEGROOM": "LEG-1"},
		}},
	}

	req, err := NewBuilder(nil).Build(sel, "SR-1")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	items := req.SelectedOffers[0].OfferItems
	if len(items) != 2 {
		t.Fatalf("got %d items, want seat + special service", len(items))
	}
	// Sorted by item id: LEG-1 before SEAT-1.
	if items[0].ItemID != "LEG-1" || items[0].SeatColumn != "" {
		t.Errorf("service entry = %+v", items[0])
	}
	if items[1].ItemID != "SEAT-1" || items[1].SeatRow != 1 || items[1].SeatColumn != "C" {
		t.Errorf("seat entry = %+v", items[1])
	}
}

func TestBuildFareBlockExcludesAncillaryIDs(t *testing.T) {
	sel := models.Selection{
		OfferID: "OFFER-1",
		Owner:   "VA",
		FareItems: []models.SelectedFareItem{
			{ItemID: "FARE-1", PaxRefs: []string{"ADT1"}},
			{ItemID: "BAG-1", PaxRefs: []string{"ADT1"}},
		},
		Services: []models.SelectedServiceItem{{
			ServiceID: "SD-BAG", ServiceCategory: models.CategoryBaggage,
			ItemID: "BAG-1", PaxRefs: []string{"ADT1"},
			Association: models.AssociationJourney, AssociationRefs: []string{"fl1"},
			ContainerOfferID: "ALC-1",
		}},
	}

	req, err := NewBuilder(nil).Build(sel, "SR-1")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	fare := req.SelectedOffers[0]
	if fare.OfferID != "OFFER-1" || len(fare.OfferItems) != 1 || fare.OfferItems[0].ItemID != "FARE-1" {
		t.Errorf("fare block = %+v, BAG-1 must be routed to the ancillary block only", fare)
	}
}

func TestBuildEmptyAncillaryError(t *testing.T) {
	sel := models.Selection{
		OfferID:   "OFFER-1",
		Owner:     "VA",
		FareItems: []models.SelectedFareItem{{ItemID: "FARE-1", PaxRefs: []string{"ADT1"}}},
		Bundles: []models.SelectedBundle{{
			Code:             "PLUS",
			PaxRefs:          []string{"INF1"},
			PaxItemIDs:       map[string]string{},
			ContainerOfferID: "ALC-1",
		}},
	}

	_, err := NewBuilder(nil).Build(sel, "SR-1")
	var eerr *EmptyAncillaryError
	if !errors.As(err, &eerr) {
		t.Fatalf("err = %v, want *EmptyAncillaryError", err)
	}
	if eerr.SelectionCount != 1 {
		t.Errorf("SelectionCount = %d, want 1", eerr.SelectionCount)
	}
}

func TestBuildIsIdempotent(t *testing.T) {
	sel := fareSelection()
	sel.Bundles = []models.SelectedBundle{{
		Code:             "PLUS",
		PaxRefs:          []string{"ADT2", "ADT1"},
		PaxItemIDs:       map[string]string{"ADT1": "PLUS-ADT", "ADT2": "PLUS-ADT"},
		JourneyRefs:      []string{"fl2", "fl1"},
		ContainerOfferID: "ALC-1",
	}}
	sel.Services = []models.SelectedServiceItem{{
		ServiceID: "SD-MEAL", ServiceCategory: models.CategoryMeal,
		ItemID: "MEAL-1", PaxRefs: []string{"ADT1"},
		Association: models.AssociationSegment, AssociationRefs: []string{"seg1"},
		ContainerOfferID: "ALC-2",
	}}

	b := NewBuilder(nil)
	first, err := b.Build(sel, "SR-1")
	if err != nil {
		t.Fatalf("first Build failed: %v", err)
	}
	second, err := b.Build(sel, "SR-1")
	if err != nil {
		t.Fatalf("second Build failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("requests differ across runs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestResolveContainerIDFallbacks(t *testing.T) {
	b := NewBuilder(nil)

	t.Run("explicit id wins", func(t *testing.T) {
		item := models.SelectedServiceItem{ItemID: "BAG-1", ContainerOfferID: "ALC-1", ServiceCategory: models.CategoryBaggage}
		if got := b.resolveContainerID(item, models.Selection{Services: []models.SelectedServiceItem{item}}); got != "ALC-1" {
			t.Errorf("container = %q, want ALC-1", got)
		}
	})

	t.Run("same category reuse", func(t *testing.T) {
		sel := models.Selection{Services: []models.SelectedServiceItem{
			{ItemID: "BAG-1", ServiceCategory: models.CategoryBaggage},
			{ItemID: "BAG-2", ServiceCategory: models.CategoryBaggage, ContainerOfferID: "ALC-7"},
		}}
		if got := b.resolveContainerID(sel.Services[0], sel); got != "ALC-7" {
			t.Errorf("container = %q, want ALC-7 reused from sibling", got)
		}
	})

	t.Run("suffix derivation", func(t *testing.T) {
		item := models.SelectedServiceItem{ItemID: "ALC1-7", ServiceCategory: models.CategoryBaggage}
		if got := b.resolveContainerID(item, models.Selection{Services: []models.SelectedServiceItem{item}}); got != "ALC1" {
			t.Errorf("container = %q, want ALC1 derived from item id", got)
		}
	})

	t.Run("unresolvable", func(t *testing.T) {
		item := models.SelectedServiceItem{ItemID: "NOPATTERN", ServiceCategory: models.CategoryBaggage}
		if got := b.resolveContainerID(item, models.Selection{Services: []models.SelectedServiceItem{item}}); got != "" {
			t.Errorf("container = %q, want empty", got)
		}
	})
}

func TestDeriveContainerID(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ALC1-7", "ALC1"},
		{"ALC1_12", "ALC1"},
		{"ALC1-7-3", "ALC1-7"},
		{"ALC1", ""},
		{"ALC1-x", ""},
		{"-7", ""},
		{"", ""},
	}
	for _, tc := range tests {
		if got := deriveContainerID(tc.in); got != tc.want {
			t.Errorf("deriveContainerID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
