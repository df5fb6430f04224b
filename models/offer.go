package models

import "time"

// Offer is a priced flight proposal from the airline system.
// The sum of OfferItem totals need not equal TotalPrice; the upstream
// system may include non-itemized adjustments at offer level.
type Offer struct {
	ID          string      `json:"id"`
	Owner       string      `json:"owner"` // airline owner code, e.g. "VA"
	TotalPrice  Money       `json:"totalPrice"`
	Expiry      *time.Time  `json:"expiry,omitempty"`
	Items       []OfferItem `json:"items"`
	JourneyRefs []string    `json:"journeyRefs,omitempty"`
	SegmentRefs []string    `json:"segmentRefs,omitempty"`

	// Bundles is filled by the reconciliation engine after parsing.
	Bundles []BundleOfferItem `json:"bundles,omitempty"`
}

// OfferItem is one priceable line within an Offer, scoped to a subset
// of the passengers.
type OfferItem struct {
	ID          string   `json:"id"`
	PaxRefs     []string `json:"paxRefs"`
	BaseAmount  Money    `json:"baseAmount"`
	TaxAmount   Money    `json:"taxAmount"`
	TotalAmount Money    `json:"totalAmount"`
	FareBasis   string   `json:"fareBasis,omitempty"`
	Cabin       string   `json:"cabin,omitempty"`
	RBD         string   `json:"rbd,omitempty"`
	SegmentRefs []string `json:"segmentRefs,omitempty"`
}
