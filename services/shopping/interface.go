package shopping

import "skyretail/models"

// ShoppingSessionService manages one user's shopping round: the
// normalized response snapshot, the evolving selection and the
// follow-up pricing request built from it.
type ShoppingSessionService interface {
	IngestResponse(rawXML string) (*models.ShoppingSession, error)
	GetSession(sessionID string) (*models.ShoppingSession, error)
	UpdateSelection(sessionID string, version int, selection models.Selection) (*models.ShoppingSession, error)
	AutoAssignSeats(sessionID string, version int, seatMaps []models.SeatMap, serviceIDs models.SeatServiceIDs) (*models.ShoppingSession, error)
	SelectSeat(sessionID string, version int, segmentRef string, seat models.Seat, paxRef string) (*models.ShoppingSession, error)
	BuildPriceRequest(sessionID string) (*models.PriceRequest, error)
	StripCategory(sessionID string, version int, category models.ServiceCategory) (*models.PriceRequest, error)
	CancelSession(sessionID string) error
}
