package seating

import "skyretail/models"

// paxRestrictions lists the seat characteristic codes a passenger type
// may never occupy. Exit rows are off limits for children and infants;
// extra-legroom rows double as emergency egress on most layouts, so
// infants are kept out of those as well.
var paxRestrictions = map[models.PaxType][]string{
	models.PaxTypeChild:  {models.SeatCharExitRow},
	models.PaxTypeInfant: {models.SeatCharExitRow, models.SeatCharExtraLegroom},
}

// seatServiceCodes maps a seat characteristic to the special-service
// code the carrier requires on the follow-up request.
var seatServiceCodes = map[string]string{
	models.SeatCharExtraLegroom: "EXTRA_LEGROOM",
	models.SeatCharUpfront:      "UPFRONT_SEAT",
}

// restrictedCharacteristic returns the first characteristic of the seat
// the passenger type may not occupy, or "".
func restrictedCharacteristic(seat models.Seat, paxType models.PaxType) string {
	for _, code := range paxRestrictions[paxType] {
		if seat.HasCharacteristic(code) {
			return code
		}
	}
	return ""
}

// groupForbiddenCodes unions the restrictions of every passenger type
// present in the group. Auto-assignment drops e.g. all exit-row seats
// for the whole segment when any child or infant needs a seat on it.
func groupForbiddenCodes(passengers []models.Passenger) map[string]bool {
	forbidden := map[string]bool{}
	for _, p := range passengers {
		for _, code := range paxRestrictions[p.Type] {
			forbidden[code] = true
		}
	}
	return forbidden
}

// requiredServiceCodes returns the special-service codes implied by the
// seat's characteristics, in characteristic order.
func requiredServiceCodes(seat models.Seat) []string {
	var out []string
	for _, c := range seat.Characteristics {
		if code, ok := seatServiceCodes[c]; ok {
			out = append(out, code)
		}
	}
	return out
}
