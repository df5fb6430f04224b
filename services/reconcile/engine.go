// Package reconcile matches the a-la-carte ancillary items of a
// shopping response to the flight offer and journey they price. The
// upstream identifiers are derived rather than foreign keys: a-la-carte
// items reference journeys as "fl"+NNN while flight offers reference
// segments as "seg"+NNN with the same numeric suffix, and neither is
// guaranteed to resolve directly.
package reconcile

import (
	"sort"

	"go.uber.org/zap"

	"skyretail/metrics"
	"skyretail/models"
)

// Engine reconciles a-la-carte items against offers. The lookup
// indexes are built once per parse and are read-only.
type Engine struct {
	JourneyRefPrefix string
	SegmentRefPrefix string
	ServiceDefs      models.ServiceDefinitionIndex
	BundleDefs       models.BundleDefinitionIndex
	Logger           *zap.Logger
}

// NewEngine returns an Engine over the given response indexes.
func NewEngine(journeyPrefix, segmentPrefix string, serviceDefs models.ServiceDefinitionIndex, bundleDefs models.BundleDefinitionIndex, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		JourneyRefPrefix: journeyPrefix,
		SegmentRefPrefix: segmentPrefix,
		ServiceDefs:      serviceDefs,
		BundleDefs:       bundleDefs,
		Logger:           logger,
	}
}

// MatchBundlesToOffer returns at most one BundleOfferItem per distinct
// bundle product code for the given offer. Items that cannot be
// correlated by any rule are excluded; when no item at all correlates,
// the engine conservatively falls back to all items and reports the
// anomaly.
func (e *Engine) MatchBundlesToOffer(items []models.ALaCarteOfferItem, offerID string, offerSegmentRefs, offerJourneyRefs []string, containerOfferID string) []models.BundleOfferItem {
	matched := e.matchItems(items, offerSegmentRefs, offerJourneyRefs)

	if len(matched) == 0 && len(items) > 0 {
		// Conservative fallback: with no journey-specific match, keep
		// every item rather than dropping paid ancillaries. Reported
		// loudly because it can over-attach on mixed-cabin searches.
		e.Logger.Warn("no a-la-carte item correlated to offer, applying all-items fallback",
			zap.String("offerId", offerID),
			zap.Int("itemCount", len(items)))
		metrics.ReconcileFallbackTotal.Inc()
		matched = items
	}

	return e.groupByBundle(matched, containerOfferID)
}

// matchItems keeps the items whose refs correlate with the offer,
// either by shared numeric core or by direct ref containment.
func (e *Engine) matchItems(items []models.ALaCarteOfferItem, offerSegmentRefs, offerJourneyRefs []string) []models.ALaCarteOfferItem {
	segmentCores := make(map[string]bool, len(offerSegmentRefs))
	for _, ref := range offerSegmentRefs {
		if core := numericCore(ref, e.SegmentRefPrefix); core != "" {
			segmentCores[core] = true
		}
	}
	journeySet := stringSet(offerJourneyRefs)
	segmentSet := stringSet(offerSegmentRefs)

	var matched []models.ALaCarteOfferItem
	for _, item := range items {
		if e.itemMatches(item, segmentCores, journeySet, segmentSet) {
			matched = append(matched, item)
		}
	}
	return matched
}

func (e *Engine) itemMatches(item models.ALaCarteOfferItem, segmentCores, journeySet, segmentSet map[string]bool) bool {
	for _, ref := range item.JourneyRefs {
		if journeySet[ref] {
			return true
		}
		if core := numericCore(ref, e.JourneyRefPrefix); core != "" && segmentCores[core] {
			return true
		}
	}
	for _, ref := range item.SegmentRefs {
		if segmentSet[ref] {
			return true
		}
	}
	return false
}

// groupByBundle groups matched items by bundle product code. The same
// bundle concept issues one item id per passenger type, so grouping by
// item id would split a single purchasable bundle into several.
func (e *Engine) groupByBundle(items []models.ALaCarteOfferItem, containerOfferID string) []models.BundleOfferItem {
	byCode := make(map[string]*models.BundleOfferItem)
	var codes []string

	for _, item := range items {
		def, ok := e.BundleDefs[item.ServiceDefRef]
		if !ok {
			continue
		}
		group, exists := byCode[def.Code]
		if !exists {
			group = &models.BundleOfferItem{
				Definition:       def,
				Price:            item.Price,
				PaxItemIDs:       make(map[string]string),
				Inclusions:       e.ResolveInclusions(def),
				ContainerOfferID: containerOfferID,
			}
			byCode[def.Code] = group
			codes = append(codes, def.Code)
		}
		for _, pax := range item.PaxRefs {
			if _, dup := group.PaxItemIDs[pax]; dup {
				continue
			}
			group.PaxItemIDs[pax] = item.ID
			group.PaxRefs = append(group.PaxRefs, pax)
		}
		for _, ref := range item.JourneyRefs {
			if !containsString(group.JourneyRefs, ref) {
				group.JourneyRefs = append(group.JourneyRefs, ref)
			}
		}
	}

	sort.Strings(codes)
	out := make([]models.BundleOfferItem, 0, len(codes))
	for _, code := range codes {
		out = append(out, *byCode[code])
	}
	return out
}

// ResolveInclusions buckets a bundle's included services by category.
func (e *Engine) ResolveInclusions(def models.BundleDefinition) models.BundleInclusions {
	var inc models.BundleInclusions
	for _, ref := range def.IncludedRefs {
		svc, ok := e.ServiceDefs[ref]
		if !ok {
			continue
		}
		switch svc.Category {
		case models.CategoryBaggage:
			inc.Baggage = append(inc.Baggage, svc)
		case models.CategorySeat:
			inc.Seats = append(inc.Seats, svc)
		case models.CategoryMeal:
			inc.Meals = append(inc.Meals, svc)
		default:
			inc.Other = append(inc.Other, svc)
		}
	}
	return inc
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
