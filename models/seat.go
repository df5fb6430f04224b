package models

import "fmt"

// Seat characteristic codes as they appear on upstream seat maps.
const (
	SeatCharWindow       = "W"
	SeatCharAisle        = "A"
	SeatCharMiddle       = "M"
	SeatCharExitRow      = "E"
	SeatCharExtraLegroom = "L"
	SeatCharUpfront      = "U"
)

// Seat is one selectable seat on a segment's seat map. Pricing is per
// passenger type: PaxTypeItemIDs maps a passenger type to the priceable
// item id issued for that type; a missing entry means the seat cannot
// be priced for that passenger type.
type Seat struct {
	Row             int                `json:"row"`
	Column          string             `json:"column"`
	Characteristics []string           `json:"characteristics,omitempty"`
	Occupied        bool               `json:"occupied,omitempty"`
	Price           Money              `json:"price"`
	PaxTypeItemIDs  map[PaxType]string `json:"paxTypeItemIds,omitempty"`
}

// ID returns the row+column seat identifier, e.g. "12C".
func (s Seat) ID() string {
	return fmt.Sprintf("%d%s", s.Row, s.Column)
}

// HasCharacteristic reports whether the seat carries the given code.
func (s Seat) HasCharacteristic(code string) bool {
	for _, c := range s.Characteristics {
		if c == code {
			return true
		}
	}
	return false
}

// SeatMap lists the selectable seats of one segment.
type SeatMap struct {
	SegmentRef string `json:"segmentRef"`
	Seats      []Seat `json:"seats"`
}

// SeatSelection binds one passenger to one seat on one segment.
// ServiceItemIDs carries the priceable ids of the special services the
// seat's characteristics require (extra legroom, upfront), keyed by
// service code.
type SeatSelection struct {
	SegmentRef       string            `json:"segmentRef"`
	PaxRef           string            `json:"paxRef"`
	PaxType          PaxType           `json:"paxType"`
	Row              int               `json:"row"`
	Column           string            `json:"column"`
	ItemID           string            `json:"itemId"`
	Price            Money             `json:"price"`
	ContainerOfferID string            `json:"containerOfferId,omitempty"`
	ServiceCodes     []string          `json:"serviceCodes,omitempty"`
	ServiceItemIDs   map[string]string `json:"serviceItemIds,omitempty"`
}

// SeatID returns the row+column identifier of the selected seat.
func (s SeatSelection) SeatID() string {
	return fmt.Sprintf("%d%s", s.Row, s.Column)
}

// SeatServiceID is one entry of the service-list-sourced id map used to
// resolve seat-implied special services, keyed by (code, segment, passenger).
type SeatServiceID struct {
	Code       string `json:"code"`
	SegmentRef string `json:"segmentRef"`
	PaxRef     string `json:"paxRef"`
	ItemID     string `json:"itemId"`
}

// SeatServiceIDs resolves seat-implied special service codes to
// priceable item ids.
type SeatServiceIDs struct {
	Entries []SeatServiceID `json:"entries,omitempty"`
}

// Lookup returns the item id for the given code/segment/passenger triple.
func (m SeatServiceIDs) Lookup(code, segmentRef, paxRef string) (string, bool) {
	for _, e := range m.Entries {
		if e.Code == code && e.SegmentRef == segmentRef && e.PaxRef == paxRef {
			return e.ItemID, true
		}
	}
	return "", false
}
