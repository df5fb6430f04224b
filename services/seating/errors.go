package seating

import (
	"fmt"

	"skyretail/models"
)

// RestrictionError rejects one seat/passenger pairing for safety
// reasons. The caller may retry with a different seat.
type RestrictionError struct {
	SeatID  string
	PaxRef  string
	PaxType models.PaxType
	Code    string
}

func (e *RestrictionError) Error() string {
	return fmt.Sprintf("seat %s is restricted for passenger %s (type %s, characteristic %s)",
		e.SeatID, e.PaxRef, e.PaxType, e.Code)
}

// PricingUnavailableError rejects a seat that carries no priceable
// item id for the passenger's type.
type PricingUnavailableError struct {
	SeatID  string
	PaxType models.PaxType
}

func (e *PricingUnavailableError) Error() string {
	return fmt.Sprintf("seat %s has no price for passenger type %s", e.SeatID, e.PaxType)
}

// ShortageReason distinguishes why a segment could not seat the group.
type ShortageReason string

const (
	// ShortageNoSeats: the seat map has no open seats at all.
	ShortageNoSeats ShortageReason = "no_seats"
	// ShortageRaw: fewer open seats than passengers before filtering.
	ShortageRaw ShortageReason = "raw_shortage"
	// ShortageRestricted: enough open seats, but restriction filtering
	// left fewer suitable ones than passengers.
	ShortageRestricted ShortageReason = "restricted_shortage"
)

// ShortageError reports insufficient suitable seats on one segment.
type ShortageError struct {
	SegmentRef string
	Reason     ShortageReason
	Needed     int
	Available  int
}

func (e *ShortageError) Error() string {
	return fmt.Sprintf("segment %s: %s (need %d, have %d)",
		e.SegmentRef, e.Reason, e.Needed, e.Available)
}
