package models

import "time"

// ShoppingResponse is the normalized form of one upstream shopping
// response document. All fields are immutable after normalization.
type ShoppingResponse struct {
	ShoppingResponseID string              `json:"shoppingResponseId"`
	Offers             []Offer             `json:"offers"`
	Segments           []FlightSegment     `json:"segments"`
	Journeys           []PaxJourney        `json:"journeys"`
	Passengers         []Passenger         `json:"passengers"`
	ServiceDefinitions []ServiceDefinition `json:"serviceDefinitions,omitempty"`
	BundleDefinitions  []BundleDefinition  `json:"bundleDefinitions,omitempty"`
	PriceClasses       []PriceClass        `json:"priceClasses,omitempty"`
	ALaCarteItems      []ALaCarteOfferItem `json:"alaCarteItems,omitempty"`
	ALaCarteOfferID    string              `json:"alaCarteOfferId,omitempty"`
	ALaCarteOwner      string              `json:"alaCarteOwner,omitempty"`
}

// ShoppingSession is the per-user working state for one shopping round:
// the immutable normalized snapshot plus the user's current selection.
// Version increases on every selection change so that a superseded
// in-flight update cannot overwrite newer state (last request wins).
type ShoppingSession struct {
	SessionID      string           `json:"sessionId"`
	Version        int              `json:"version"`
	Response       ShoppingResponse `json:"response"`
	Selection      Selection        `json:"selection"`
	SeatServiceIDs SeatServiceIDs   `json:"seatServiceIds,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}
