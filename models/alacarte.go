package models

// ALaCarteOfferItem is one individually priced ancillary line from the
// a-la-carte offer container. This is the only place ancillary prices
// exist; the flight Offer never nests them. JourneyRefs and SegmentRefs
// describe eligibility and use derived, loosely patterned identifiers
// that do not reliably resolve against the flight offer's own refs.
type ALaCarteOfferItem struct {
	ID            string   `json:"id"`
	ServiceDefRef string   `json:"serviceDefRef"`
	Price         Money    `json:"price"`
	PaxRefs       []string `json:"paxRefs"`
	JourneyRefs   []string `json:"journeyRefs,omitempty"`
	SegmentRefs   []string `json:"segmentRefs,omitempty"`
}
