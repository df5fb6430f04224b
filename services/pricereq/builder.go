// Package pricereq re-serializes the user's current selection into the
// follow-up pricing request. The request's grouping rules are stricter
// than the shopping response's structure: flight fare items and
// ancillary items never share a block, and every distinct a-la-carte
// container gets exactly one block of its own.
package pricereq

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"skyretail/models"
)

// Builder assembles price requests from selections.
type Builder struct {
	Logger *zap.Logger
}

// NewBuilder returns a Builder.
func NewBuilder(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{Logger: logger}
}

// blockAccumulator collects the request items of one container block.
// Service entries are mergeable by item id; bundle expansions keep one
// entry per passenger and seat entries are unique per passenger per
// segment, so neither is ever merged.
type blockAccumulator struct {
	items      []models.RequestOfferItem
	serviceIdx map[string]int
}

func (a *blockAccumulator) append(item models.RequestOfferItem) {
	a.items = append(a.items, item)
}

// appendService merges a service entry into an existing one with the
// same item id: passenger refs and association refs are unioned, the
// quantity is untouched.
func (a *blockAccumulator) appendService(item models.RequestOfferItem) {
	if a.serviceIdx == nil {
		a.serviceIdx = map[string]int{}
	}
	if idx, ok := a.serviceIdx[item.ItemID]; ok {
		existing := &a.items[idx]
		existing.PaxRefs = unionSorted(existing.PaxRefs, item.PaxRefs)
		existing.AssociationRefs = unionSorted(existing.AssociationRefs, item.AssociationRefs)
		return
	}
	a.serviceIdx[item.ItemID] = len(a.items)
	a.items = append(a.items, item)
}

// Build produces the normalized price request for a selection snapshot.
// It is deterministic: the same snapshot always yields the same block
// partitioning and per-block item sets.
func (b *Builder) Build(sel models.Selection, shoppingResponseID string) (*models.PriceRequest, error) {
	req := &models.PriceRequest{ShoppingResponseID: shoppingResponseID}

	blocks := map[string]*blockAccumulator{}
	ancillaryIDs := map[string]bool{}
	emitted := 0

	block := func(container string) *blockAccumulator {
		acc, ok := blocks[container]
		if !ok {
			acc = &blockAccumulator{}
			blocks[container] = acc
		}
		return acc
	}

	for _, item := range sel.AncillaryItems() {
		container := b.resolveContainerID(item, sel)
		if container == "" {
			b.Logger.Warn("dropping ancillary selection without resolvable container",
				zap.String("kind", string(item.Kind())))
			continue
		}

		switch v := item.(type) {
		case models.SelectedBundle:
			for _, entry := range bundleEntries(v) {
				block(container).append(entry)
				ancillaryIDs[entry.ItemID] = true
				emitted++
			}
		case models.SelectedServiceItem:
			for _, entry := range serviceEntries(v) {
				block(container).appendService(entry)
				ancillaryIDs[entry.ItemID] = true
				emitted++
			}
		case models.SeatSelection:
			for _, entry := range seatEntries(v) {
				block(container).append(entry)
				ancillaryIDs[entry.ItemID] = true
				emitted++
			}
		}
	}

	if sel.HasAncillaries() && emitted == 0 {
		return nil, &EmptyAncillaryError{SelectionCount: len(sel.AncillaryItems())}
	}

	if fare := fareBlock(sel, ancillaryIDs); fare != nil {
		req.SelectedOffers = append(req.SelectedOffers, *fare)
	}

	containers := make([]string, 0, len(blocks))
	for id := range blocks {
		containers = append(containers, id)
	}
	sort.Strings(containers)
	for _, id := range containers {
		items := blocks[id].items
		sortItems(items)
		req.SelectedOffers = append(req.SelectedOffers, models.SelectedOfferBlock{
			OfferID:    id,
			Owner:      sel.Owner,
			OfferItems: items,
		})
	}
	return req, nil
}

// fareBlock emits the flight-fare block. Fare items whose id also
// appears among the ancillary items are routed out; a fare block never
// carries bundle, service or seat ids.
func fareBlock(sel models.Selection, ancillaryIDs map[string]bool) *models.SelectedOfferBlock {
	if sel.OfferID == "" || len(sel.FareItems) == 0 {
		return nil
	}
	block := models.SelectedOfferBlock{OfferID: sel.OfferID, Owner: sel.Owner}
	for _, fi := range sel.FareItems {
		if ancillaryIDs[fi.ItemID] {
			continue
		}
		block.OfferItems = append(block.OfferItems, models.RequestOfferItem{
			ItemID:  fi.ItemID,
			PaxRefs: sortedCopy(fi.PaxRefs),
		})
	}
	if len(block.OfferItems) == 0 {
		return nil
	}
	sortItems(block.OfferItems)
	return &block
}

// bundleEntries expands one bundle selection into one entry per
// passenger, each carrying that passenger's own item id. Passengers
// without an id for this bundle (ineligible types) are skipped.
func bundleEntries(b models.SelectedBundle) []models.RequestOfferItem {
	var out []models.RequestOfferItem
	for _, pax := range b.PaxRefs {
		itemID, ok := b.PaxItemIDs[pax]
		if !ok || itemID == "" {
			continue
		}
		out = append(out, models.RequestOfferItem{
			ItemID:          itemID,
			PaxRefs:         []string{pax},
			Association:     models.AssociationJourney,
			AssociationRefs: sortedCopy(b.JourneyRefs),
		})
	}
	return out
}

func serviceEntries(s models.SelectedServiceItem) []models.RequestOfferItem {
	if s.ItemID == "" {
		return nil
	}
	return []models.RequestOfferItem{{
		ItemID:          s.ItemID,
		PaxRefs:         sortedCopy(s.PaxRefs),
		Association:     s.Association,
		AssociationRefs: sortedCopy(s.AssociationRefs),
	}}
}

// seatEntries emits the seat item plus one entry per special service
// the seat's characteristics require. Seat entries are never merged:
// each seat assignment is unique per passenger per segment.
func seatEntries(s models.SeatSelection) []models.RequestOfferItem {
	if s.ItemID == "" {
		return nil
	}
	out := []models.RequestOfferItem{{
		ItemID:          s.ItemID,
		PaxRefs:         []string{s.PaxRef},
		Association:     models.AssociationSegment,
		AssociationRefs: []string{s.SegmentRef},
		SeatRow:         s.Row,
		SeatColumn:      s.Column,
	}}
	codes := make([]string, 0, len(s.ServiceItemIDs))
	for code := range s.ServiceItemIDs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		out = append(out, models.RequestOfferItem{
			ItemID:          s.ServiceItemIDs[code],
			PaxRefs:         []string{s.PaxRef},
			Association:     models.AssociationSegment,
			AssociationRefs: []string{s.SegmentRef},
		})
	}
	return out
}

func sortItems(items []models.RequestOfferItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].ItemID != items[j].ItemID {
			return items[i].ItemID < items[j].ItemID
		}
		if items[i].SeatRow != items[j].SeatRow {
			return items[i].SeatRow < items[j].SeatRow
		}
		if items[i].SeatColumn != items[j].SeatColumn {
			return items[i].SeatColumn < items[j].SeatColumn
		}
		return strings.Join(items[i].PaxRefs, ",") < strings.Join(items[j].PaxRefs, ",")
	})
}

func sortedCopy(refs []string) []string {
	out := append([]string(nil), refs...)
	sort.Strings(out)
	return out
}

func unionSorted(a, b []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range append(append([]string(nil), a...), b...) {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
