package models

import "fmt"

// Money is an amount in a specific currency.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

func (m Money) String() string {
	return fmt.Sprintf("%.2f %s", m.Amount, m.Currency)
}

// PaxType is an upstream passenger type code.
type PaxType string

const (
	PaxTypeAdult  PaxType = "ADT"
	PaxTypeChild  PaxType = "CHD"
	PaxTypeInfant PaxType = "INF"
)

// AssociationKind describes which flight scope an ancillary selection
// is attached to.
type AssociationKind string

const (
	AssociationSegment AssociationKind = "segment"
	AssociationJourney AssociationKind = "journey"
	AssociationLeg     AssociationKind = "leg"
)

// Passenger is one traveller in the shopping request.
type Passenger struct {
	PaxID string  `json:"paxId"` // e.g. "ADT1", "CHD1"
	Type  PaxType `json:"type"`
}

// PassengerIndex looks passengers up by their pax ref.
type PassengerIndex map[string]Passenger

// NewPassengerIndex builds the lookup map once; it is read-only afterwards.
func NewPassengerIndex(passengers []Passenger) PassengerIndex {
	idx := make(PassengerIndex, len(passengers))
	for _, p := range passengers {
		idx[p.PaxID] = p
	}
	return idx
}
