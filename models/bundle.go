package models

// BundleInclusions buckets the services packaged inside a bundle by
// category.
type BundleInclusions struct {
	Baggage []ServiceDefinition `json:"baggage,omitempty"`
	Seats   []ServiceDefinition `json:"seats,omitempty"`
	Meals   []ServiceDefinition `json:"meals,omitempty"`
	Other   []ServiceDefinition `json:"other,omitempty"`
}

// BundleOfferItem is the per-offer view of a purchasable bundle,
// produced by the reconciliation engine. The upstream system issues a
// distinct priceable item id per passenger type for the same bundle
// concept, so PaxItemIDs maps each eligible pax ref to its own id.
type BundleOfferItem struct {
	Definition       BundleDefinition  `json:"definition"`
	Price            Money             `json:"price"`
	PaxRefs          []string          `json:"paxRefs"`
	PaxItemIDs       map[string]string `json:"paxItemIds"`
	JourneyRefs      []string          `json:"journeyRefs,omitempty"`
	Inclusions       BundleInclusions  `json:"inclusions"`
	ContainerOfferID string            `json:"containerOfferId"`
}
