package shopping

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"skyretail/docreader"
	"skyretail/models"
	"skyretail/services/normalizer"
	"skyretail/services/pricereq"
	"skyretail/services/reconcile"
	"skyretail/services/seating"
	"skyretail/utils"
)

// DefaultShoppingSessionService implements ShoppingSessionService. The
// session store is injectable; when unset it falls back to the shared
// Redis session cache.
type DefaultShoppingSessionService struct {
	Normalizer       *normalizer.Normalizer
	Builder          *pricereq.Builder
	Solver           *seating.Solver
	Store            SessionStore
	JourneyRefPrefix string
	SegmentRefPrefix string
}

func (s *DefaultShoppingSessionService) store() SessionStore {
	if s.Store == nil {
		s.Store = NewRedisSessionStore()
	}
	return s.Store
}

// IngestResponse normalizes a raw shopping response, reconciles the
// a-la-carte bundles onto each offer, and stores the result as a new
// session.
func (s *DefaultShoppingSessionService) IngestResponse(rawXML string) (*models.ShoppingSession, error) {
	doc, err := docreader.ParseXMLString(rawXML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse shopping response: %w", err)
	}
	resp, err := s.Normalizer.Normalize(doc)
	if err != nil {
		return nil, err
	}

	engine := reconcile.NewEngine(
		s.JourneyRefPrefix,
		s.SegmentRefPrefix,
		models.NewServiceDefinitionIndex(resp.ServiceDefinitions),
		models.NewBundleDefinitionIndex(resp.BundleDefinitions),
		utils.GetLogger(),
	)
	for i := range resp.Offers {
		offer := &resp.Offers[i]
		offer.Bundles = engine.MatchBundlesToOffer(
			resp.ALaCarteItems, offer.ID,
			offer.SegmentRefs, offer.JourneyRefs,
			resp.ALaCarteOfferID,
		)
	}

	session := &models.ShoppingSession{
		SessionID: uuid.New().String(),
		Version:   1,
		Response:  *resp,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store().Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession retrieves a session from the store.
func (s *DefaultShoppingSessionService) GetSession(sessionID string) (*models.ShoppingSession, error) {
	return s.store().Load(sessionID)
}

// UpdateSelection replaces the session's selection. A stale version is
// rejected so a superseded in-flight update cannot overwrite newer
// selections with stale computed totals.
func (s *DefaultShoppingSessionService) UpdateSelection(sessionID string, version int, selection models.Selection) (*models.ShoppingSession, error) {
	session, err := s.store().Load(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Version != version {
		return nil, &StaleVersionError{Expected: session.Version, Got: version}
	}
	session.Selection = selection
	session.Version++
	if err := s.store().Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// AutoAssignSeats runs the solver over the supplied seat maps for the
// session's passenger group and stores the resulting selections.
func (s *DefaultShoppingSessionService) AutoAssignSeats(sessionID string, version int, seatMaps []models.SeatMap, serviceIDs models.SeatServiceIDs) (*models.ShoppingSession, error) {
	session, err := s.store().Load(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Version != version {
		return nil, &StaleVersionError{Expected: session.Version, Got: version}
	}
	session.SeatServiceIDs = serviceIDs

	selections, err := s.Solver.AutoAssign(
		session.Response.Passengers, seatMaps,
		serviceIDs, session.Response.ALaCarteOfferID,
	)
	if err != nil {
		return nil, err
	}
	session.Selection.Seats = selections
	session.Version++
	if err := s.store().Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectSeat validates a manual pick and stores it, replacing any
// previous seat of the same passenger on the same segment.
func (s *DefaultShoppingSessionService) SelectSeat(sessionID string, version int, segmentRef string, seat models.Seat, paxRef string) (*models.ShoppingSession, error) {
	session, err := s.store().Load(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Version != version {
		return nil, &StaleVersionError{Expected: session.Version, Got: version}
	}

	passengers := models.NewPassengerIndex(session.Response.Passengers)
	pax, ok := passengers[paxRef]
	if !ok {
		return nil, fmt.Errorf("unknown passenger ref %q", paxRef)
	}

	selection, err := s.Solver.SelectSeat(seat, pax, segmentRef, session.SeatServiceIDs, session.Response.ALaCarteOfferID)
	if err != nil {
		return nil, err
	}

	kept := session.Selection.Seats[:0:0]
	for _, existing := range session.Selection.Seats {
		if existing.PaxRef == paxRef && existing.SegmentRef == segmentRef {
			continue
		}
		kept = append(kept, existing)
	}
	session.Selection.Seats = append(kept, *selection)
	session.Version++
	if err := s.store().Save(session); err != nil {
		return nil, err
	}
	return session, nil
}

// BuildPriceRequest assembles the follow-up pricing request from the
// session's current selection snapshot.
func (s *DefaultShoppingSessionService) BuildPriceRequest(sessionID string) (*models.PriceRequest, error) {
	session, err := s.store().Load(sessionID)
	if err != nil {
		return nil, err
	}
	return s.Builder.Build(session.Selection, session.Response.ShoppingResponseID)
}

// StripCategory removes the offending ancillary category after an
// upstream rejection and rebuilds the request once. The rest of the
// transaction survives. It is a mutation like any other, so it carries
// the same version guard.
func (s *DefaultShoppingSessionService) StripCategory(sessionID string, version int, category models.ServiceCategory) (*models.PriceRequest, error) {
	session, err := s.store().Load(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Version != version {
		return nil, &StaleVersionError{Expected: session.Version, Got: version}
	}

	sel := &session.Selection
	if category == models.CategoryBundle {
		sel.Bundles = nil
	}
	if category == models.CategorySeat {
		sel.Seats = nil
	}
	var services []models.SelectedServiceItem
	for _, svc := range sel.Services {
		if svc.ServiceCategory != category {
			services = append(services, svc)
		}
	}
	sel.Services = services

	session.Version++
	if err := s.store().Save(session); err != nil {
		return nil, err
	}
	return s.Builder.Build(session.Selection, session.Response.ShoppingResponseID)
}

// CancelSession drops the session from the store.
func (s *DefaultShoppingSessionService) CancelSession(sessionID string) error {
	return s.store().Delete(sessionID)
}
