package pricereq

import (
	"regexp"

	"go.uber.org/zap"

	"skyretail/metrics"
	"skyretail/models"
)

var trailingNumericSuffix = regexp.MustCompile(`[-_][0-9]+$`)

// resolveContainerID finds the a-la-carte container an ancillary
// selection belongs to. Fallback order: the item's own explicit
// container id, then the container of any already-selected ancillary of
// the same category, then derivation by stripping the numeric suffix
// from the legacy-style item id. The derivation step leans on an
// undocumented upstream id format, so it is logged and counted.
func (b *Builder) resolveContainerID(item models.SelectedItem, sel models.Selection) string {
	if id := item.Container(); id != "" {
		return id
	}

	for _, other := range sel.AncillaryItems() {
		if other.Category() == item.Category() && other.Container() != "" {
			return other.Container()
		}
	}

	itemID := firstItemID(item)
	if derived := deriveContainerID(itemID); derived != "" {
		b.Logger.Warn("container offer id derived from item id pattern",
			zap.String("itemId", itemID),
			zap.String("derived", derived))
		metrics.ContainerIDDerivedTotal.Inc()
		return derived
	}
	return ""
}

// deriveContainerID strips a trailing numeric suffix from a
// legacy/bundle-style id, e.g. "ALC1-7" -> "ALC1". It returns "" when
// the id does not match the pattern.
func deriveContainerID(itemID string) string {
	if itemID == "" {
		return ""
	}
	derived := trailingNumericSuffix.ReplaceAllString(itemID, "")
	if derived == itemID || derived == "" {
		return ""
	}
	return derived
}

// firstItemID returns a representative priceable id for the selection.
func firstItemID(item models.SelectedItem) string {
	switch v := item.(type) {
	case models.SelectedBundle:
		for _, pax := range v.PaxRefs {
			if id, ok := v.PaxItemIDs[pax]; ok {
				return id
			}
		}
	case models.SelectedServiceItem:
		return v.ItemID
	case models.SeatSelection:
		return v.ItemID
	}
	return ""
}
