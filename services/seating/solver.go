// Package seating validates manual seat picks and computes automatic
// seat assignments across passengers and segments.
package seating

import (
	"sort"

	"go.uber.org/zap"

	"skyretail/models"
)

// Solver assigns seats. RowOffset spreads the preferred rows across
// segments so multi-segment itineraries do not always land in row 1.
type Solver struct {
	RowOffset int
	Logger    *zap.Logger
}

// NewSolver returns a Solver with the given per-segment row offset.
func NewSolver(rowOffset int, logger *zap.Logger) *Solver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Solver{RowOffset: rowOffset, Logger: logger}
}

// SelectSeat validates a manual pick of one seat for one passenger on
// one segment. It returns a typed rejection when the seat is restricted
// for the passenger type or carries no price for it.
func (s *Solver) SelectSeat(seat models.Seat, pax models.Passenger, segmentRef string, serviceIDs models.SeatServiceIDs, containerOfferID string) (*models.SeatSelection, error) {
	if seat.Occupied {
		return nil, &RestrictionError{SeatID: seat.ID(), PaxRef: pax.PaxID, PaxType: pax.Type, Code: "occupied"}
	}
	if code := restrictedCharacteristic(seat, pax.Type); code != "" {
		return nil, &RestrictionError{SeatID: seat.ID(), PaxRef: pax.PaxID, PaxType: pax.Type, Code: code}
	}
	itemID, ok := seat.PaxTypeItemIDs[pax.Type]
	if !ok || itemID == "" {
		return nil, &PricingUnavailableError{SeatID: seat.ID(), PaxType: pax.Type}
	}
	return s.buildSelection(seat, pax, segmentRef, itemID, serviceIDs, containerOfferID), nil
}

// AutoAssign computes one seat per passenger per segment, honoring
// restrictions and comfort preferences. It returns a typed shortage
// error naming the first segment that cannot seat the group.
func (s *Solver) AutoAssign(passengers []models.Passenger, seatMaps []models.SeatMap, serviceIDs models.SeatServiceIDs, containerOfferID string) ([]models.SeatSelection, error) {
	var out []models.SeatSelection

	for segmentIndex, seatMap := range seatMaps {
		open := openSeats(seatMap.Seats)
		if len(open) == 0 {
			return nil, &ShortageError{SegmentRef: seatMap.SegmentRef, Reason: ShortageNoSeats, Needed: len(passengers)}
		}
		if len(open) < len(passengers) {
			return nil, &ShortageError{SegmentRef: seatMap.SegmentRef, Reason: ShortageRaw, Needed: len(passengers), Available: len(open)}
		}

		// Drop every seat the group as a whole may not use: one infant
		// in the party removes exit rows from this segment entirely.
		forbidden := groupForbiddenCodes(passengers)
		candidates := open[:0:0]
		for _, seat := range open {
			if !hasAnyCharacteristic(seat, forbidden) {
				candidates = append(candidates, seat)
			}
		}
		if len(candidates) < len(passengers) {
			return nil, &ShortageError{SegmentRef: seatMap.SegmentRef, Reason: ShortageRestricted, Needed: len(passengers), Available: len(candidates)}
		}

		s.sortCandidates(candidates, segmentIndex)

		claimed := map[string]bool{}
		for _, pax := range passengers {
			seat, ok := s.claimSeat(candidates, claimed, pax)
			if !ok {
				return nil, &ShortageError{SegmentRef: seatMap.SegmentRef, Reason: ShortageRestricted, Needed: len(passengers), Available: len(candidates)}
			}
			claimed[seat.ID()] = true
			itemID := seat.PaxTypeItemIDs[pax.Type]
			out = append(out, *s.buildSelection(seat, pax, seatMap.SegmentRef, itemID, serviceIDs, containerOfferID))
		}
	}
	return out, nil
}

// claimSeat scans the ordered candidates for the first seat that is
// unclaimed, unrestricted for this specific passenger type and priced
// for it.
func (s *Solver) claimSeat(candidates []models.Seat, claimed map[string]bool, pax models.Passenger) (models.Seat, bool) {
	for _, seat := range candidates {
		if claimed[seat.ID()] {
			continue
		}
		if restrictedCharacteristic(seat, pax.Type) != "" {
			continue
		}
		if id, ok := seat.PaxTypeItemIDs[pax.Type]; !ok || id == "" {
			continue
		}
		return seat, true
	}
	return models.Seat{}, false
}

// sortCandidates orders seats by tier, then closeness to the segment's
// target row band, then window/aisle preference, then price. Shifting
// the target row by segment index varies the chosen rows across a
// multi-segment itinerary.
func (s *Solver) sortCandidates(seats []models.Seat, segmentIndex int) {
	targetDistance := func(row int) int {
		d := row - segmentIndex*s.RowOffset
		if d < 0 {
			return -d
		}
		return d
	}
	sort.SliceStable(seats, func(i, j int) bool {
		ti, tj := seatTier(seats[i]), seatTier(seats[j])
		if ti != tj {
			return ti > tj
		}
		di, dj := targetDistance(seats[i].Row), targetDistance(seats[j].Row)
		if di != dj {
			return di < dj
		}
		ci, cj := comfortScore(seats[i]), comfortScore(seats[j])
		if ci != cj {
			return ci > cj
		}
		if seats[i].Price.Amount != seats[j].Price.Amount {
			return seats[i].Price.Amount < seats[j].Price.Amount
		}
		if seats[i].Row != seats[j].Row {
			return seats[i].Row < seats[j].Row
		}
		return seats[i].Column < seats[j].Column
	})
}

func (s *Solver) buildSelection(seat models.Seat, pax models.Passenger, segmentRef, itemID string, serviceIDs models.SeatServiceIDs, containerOfferID string) *models.SeatSelection {
	sel := &models.SeatSelection{
		SegmentRef:       segmentRef,
		PaxRef:           pax.PaxID,
		PaxType:          pax.Type,
		Row:              seat.Row,
		Column:           seat.Column,
		ItemID:           itemID,
		Price:            seat.Price,
		ContainerOfferID: containerOfferID,
		ServiceCodes:     requiredServiceCodes(seat),
	}
	for _, code := range sel.ServiceCodes {
		if id, ok := serviceIDs.Lookup(code, segmentRef, pax.PaxID); ok {
			if sel.ServiceItemIDs == nil {
				sel.ServiceItemIDs = map[string]string{}
			}
			sel.ServiceItemIDs[code] = id
		}
	}
	return sel
}

// Seat tiers, best first: extra legroom, premium/upfront, standard
// (nothing beyond position codes), other.
func seatTier(seat models.Seat) int {
	switch {
	case seat.HasCharacteristic(models.SeatCharExtraLegroom):
		return 3
	case seat.HasCharacteristic(models.SeatCharUpfront):
		return 2
	case onlyPositional(seat):
		return 1
	default:
		return 0
	}
}

func onlyPositional(seat models.Seat) bool {
	for _, c := range seat.Characteristics {
		switch c {
		case models.SeatCharWindow, models.SeatCharAisle, models.SeatCharMiddle:
		default:
			return false
		}
	}
	return true
}

func comfortScore(seat models.Seat) int {
	switch {
	case seat.HasCharacteristic(models.SeatCharWindow):
		return 2
	case seat.HasCharacteristic(models.SeatCharAisle):
		return 1
	default:
		return 0
	}
}

func openSeats(seats []models.Seat) []models.Seat {
	var out []models.Seat
	for _, seat := range seats {
		if !seat.Occupied {
			out = append(out, seat)
		}
	}
	return out
}

func hasAnyCharacteristic(seat models.Seat, codes map[string]bool) bool {
	for _, c := range seat.Characteristics {
		if codes[c] {
			return true
		}
	}
	return false
}
