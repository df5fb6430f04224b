package models

// RequestOfferItem is one line of a selected offer block in the
// follow-up pricing request. Ancillary items carry their association
// kind and refs; seat items additionally carry row and column.
type RequestOfferItem struct {
	ItemID          string          `json:"itemId"`
	PaxRefs         []string        `json:"paxRefs"`
	Association     AssociationKind `json:"associationKind,omitempty"`
	AssociationRefs []string        `json:"associationRefs,omitempty"`
	SeatRow         int             `json:"seatRow,omitempty"`
	SeatColumn      string          `json:"seatColumn,omitempty"`
}

// SelectedOfferBlock groups the offer items re-submitted for one
// originating offer container. Flight fare items and ancillary items
// never share a block, and ancillaries from different containers are
// never merged; the upstream system rejects the whole request otherwise.
type SelectedOfferBlock struct {
	OfferID    string             `json:"offerId"`
	Owner      string             `json:"owner,omitempty"`
	OfferItems []RequestOfferItem `json:"offerItems"`
}

// PriceRequest is the normalized follow-up pricing request model.
type PriceRequest struct {
	ShoppingResponseID string               `json:"shoppingResponseId"`
	SelectedOffers     []SelectedOfferBlock `json:"selectedOffers"`
}
