// Package normalizer converts a raw shopping response document into
// the typed entities the rest of the engine works with. It is a pure
// transform: missing optional fields become zero values or defaults,
// never errors; only an upstream error block aborts normalization.
package normalizer

import (
	"strings"
	"time"

	"skyretail/docreader"
	"skyretail/models"
)

// Normalizer holds the parse-time defaults.
type Normalizer struct {
	// DefaultCurrency is substituted when an amount carries no currency.
	DefaultCurrency string
}

// New returns a Normalizer with the given default currency.
func New(defaultCurrency string) *Normalizer {
	return &Normalizer{DefaultCurrency: defaultCurrency}
}

// Normalize converts the document into a ShoppingResponse. When the
// document signals a protocol-level error block, it returns a
// *ProtocolError and no entities.
func (nz *Normalizer) Normalize(doc docreader.Node) (*models.ShoppingResponse, error) {
	if err := protocolError(doc); err != nil {
		return nil, err
	}

	resp := &models.ShoppingResponse{
		ShoppingResponseID: shoppingResponseIDRules.String(doc),
	}

	dataLists := doc.Element("DataLists")
	if dataLists != nil {
		resp.Passengers = nz.parsePassengers(dataLists.Element("PaxList"))
		resp.Segments = nz.parseSegments(dataLists.Element("PaxSegmentList"))
		resp.Journeys = nz.parseJourneys(dataLists.Element("PaxJourneyList"))
		resp.ServiceDefinitions, resp.BundleDefinitions =
			nz.parseServiceDefinitions(dataLists.Element("ServiceDefinitionList"))
		resp.PriceClasses = nz.parsePriceClasses(dataLists.Element("PriceClassList"))
	}

	priceClasses := models.NewPriceClassIndex(resp.PriceClasses)

	offersGroup := doc.Element("OffersGroup")
	if offersGroup != nil {
		for _, offerNode := range offersGroup.Elements("Offer") {
			resp.Offers = append(resp.Offers, nz.parseOffer(offerNode, priceClasses))
		}
		if alc := offersGroup.Element("ALaCarteOffer"); alc != nil {
			nz.parseALaCarte(alc, resp)
		}
	}
	// Some responses put the a-la-carte container at document level.
	if resp.ALaCarteOfferID == "" {
		if alc := doc.Element("ALaCarteOffer"); alc != nil {
			nz.parseALaCarte(alc, resp)
		}
	}

	return resp, nil
}

// protocolError returns a *ProtocolError when the document carries an
// Errors block with at least one Error entry.
func protocolError(doc docreader.Node) error {
	errsNode := doc.Element("Errors")
	if errsNode == nil {
		return nil
	}
	entries := errsNode.Elements("Error")
	if len(entries) == 0 {
		return nil
	}
	perr := &ProtocolError{}
	for _, e := range entries {
		code := e.Attr("Code")
		if code == "" {
			code = docreader.ChildText(e, "Code")
		}
		msg := e.Text()
		if msg == "" {
			msg = docreader.ChildText(e, "ShortText")
		}
		perr.Codes = append(perr.Codes, code)
		perr.Messages = append(perr.Messages, msg)
	}
	return perr
}

func (nz *Normalizer) parsePassengers(list docreader.Node) []models.Passenger {
	if list == nil {
		return nil
	}
	var out []models.Passenger
	for _, p := range list.Elements("Pax") {
		id := p.Attr("PaxID")
		if id == "" {
			id = docreader.ChildText(p, "PaxID")
		}
		if id == "" {
			continue
		}
		out = append(out, models.Passenger{
			PaxID: id,
			Type:  models.PaxType(docreader.ChildText(p, "PTC")),
		})
	}
	return out
}

func (nz *Normalizer) parseSegments(list docreader.Node) []models.FlightSegment {
	if list == nil {
		return nil
	}
	var out []models.FlightSegment
	for _, s := range list.Elements("PaxSegment") {
		seg := models.FlightSegment{
			ID:        segmentIDRules.String(s),
			Cabin:     docreader.ChildText(s, "CabinType"),
			FareBasis: docreader.ChildText(s, "FareBasisCode"),
		}
		if dep := s.Element("Departure"); dep != nil {
			seg.Origin = docreader.ChildText(dep, "AirportCode")
			seg.Departure = pointTime(dep)
		}
		if arr := s.Element("Arrival"); arr != nil {
			seg.Destination = docreader.ChildText(arr, "AirportCode")
			seg.Arrival = pointTime(arr)
		}
		if mc := s.Element("MarketingCarrier"); mc != nil {
			seg.MarketingCarrier = carrierRules.String(mc)
			seg.FlightNumber = docreader.ChildText(mc, "FlightNumber")
		}
		if oc := s.Element("OperatingCarrier"); oc != nil {
			seg.OperatingCarrier = carrierRules.String(oc)
		}
		if seg.ID != "" {
			out = append(out, seg)
		}
	}
	return out
}

// pointTime reads a departure/arrival timestamp, preferring a combined
// DateTime element over separate Date and Time fields.
func pointTime(point docreader.Node) (t time.Time) {
	if v := docreader.ChildText(point, "DateTime"); v != "" {
		if parsed, ok := parseDateTime(v); ok {
			return parsed
		}
	}
	if parsed, ok := combineDateTime(
		docreader.ChildText(point, "Date"),
		docreader.ChildText(point, "Time"),
	); ok {
		return parsed
	}
	return t
}

func (nz *Normalizer) parseJourneys(list docreader.Node) []models.PaxJourney {
	if list == nil {
		return nil
	}
	var out []models.PaxJourney
	for _, j := range list.Elements("PaxJourney") {
		id := j.Attr("PaxJourneyID")
		if id == "" {
			id = docreader.ChildText(j, "PaxJourneyID")
		}
		if id == "" {
			continue
		}
		out = append(out, models.PaxJourney{
			ID:          id,
			SegmentRefs: elementTexts(j, "PaxSegmentRefID"),
		})
	}
	return out
}

// parseServiceDefinitions splits the service definition list into plain
// services and bundles. A definition is a bundle only when it carries
// the bundle category code pair (RFIC "F", RFISC "BDL") and a
// ServiceBundle inclusion list; anything else is classified by its
// single discriminating code.
func (nz *Normalizer) parseServiceDefinitions(list docreader.Node) ([]models.ServiceDefinition, []models.BundleDefinition) {
	if list == nil {
		return nil, nil
	}
	var defs []models.ServiceDefinition
	var bundles []models.BundleDefinition
	for _, sd := range list.Elements("ServiceDefinition") {
		def := models.ServiceDefinition{
			ID:          serviceDefIDRules.String(sd),
			Code:        serviceCodeRules.String(sd),
			Name:        serviceNameRules.String(sd),
			Description: serviceDescRules.String(sd),
		}
		if def.ID == "" {
			continue
		}
		rfic := docreader.ChildText(sd, "RFIC")
		rfisc := docreader.ChildText(sd, "RFISC")
		bundleNode := sd.Element("ServiceBundle")

		if rfic == "F" && rfisc == "BDL" && bundleNode != nil {
			def.Category = models.CategoryBundle
			defs = append(defs, def)
			bundles = append(bundles, models.BundleDefinition{
				ServiceDefinition: def,
				IncludedRefs:      elementTexts(bundleNode, "ServiceDefinitionRefID"),
			})
			continue
		}
		def.Category = classifyService(rfic, rfisc)
		defs = append(defs, def)
	}
	return defs, bundles
}

// classifyService maps the upstream category codes onto our buckets:
// RFIC "C" is baggage, RFISC "0B*" is the seat family, RFIC "G" is
// in-flight service (meals), everything else is a generic ancillary.
func classifyService(rfic, rfisc string) models.ServiceCategory {
	switch {
	case rfic == "C":
		return models.CategoryBaggage
	case strings.HasPrefix(rfisc, "0B"):
		return models.CategorySeat
	case rfic == "G":
		return models.CategoryMeal
	default:
		return models.CategoryAncillary
	}
}

func (nz *Normalizer) parsePriceClasses(list docreader.Node) []models.PriceClass {
	if list == nil {
		return nil
	}
	var out []models.PriceClass
	for _, pc := range list.Elements("PriceClass") {
		class := models.PriceClass{
			ID:        priceClassIDRules.String(pc),
			Code:      priceClassCodeRules.String(pc),
			FareBasis: docreader.ChildText(pc, "FareBasisCode"),
			Cabin:     docreader.ChildText(pc, "CabinType"),
			RBD:       priceClassRBDRules.String(pc),
		}
		if class.ID != "" {
			out = append(out, class)
		}
	}
	return out
}

func (nz *Normalizer) parseOffer(node docreader.Node, priceClasses models.PriceClassIndex) models.Offer {
	offer := models.Offer{
		ID:          offerIDRules.String(node),
		Owner:       offerOwnerRules.String(node),
		JourneyRefs: elementTexts(node, "PaxJourneyRefID"),
	}
	offer.TotalPrice, _ = totalPriceRules.Extract(node, nz.DefaultCurrency)

	if v, ok := offerExpiryRules.Lookup(node); ok {
		if t, parsed := parseDateTime(v); parsed {
			offer.Expiry = &t
		}
	}

	seen := make(map[string]bool)
	for _, itemNode := range node.Elements("OfferItem") {
		item := nz.parseOfferItem(itemNode, priceClasses)
		offer.Items = append(offer.Items, item)
		for _, ref := range item.SegmentRefs {
			if !seen[ref] {
				seen[ref] = true
				offer.SegmentRefs = append(offer.SegmentRefs, ref)
			}
		}
	}
	return offer
}

func (nz *Normalizer) parseOfferItem(node docreader.Node, priceClasses models.PriceClassIndex) models.OfferItem {
	item := models.OfferItem{
		ID:          offerItemIDRules.String(node),
		PaxRefs:     elementTexts(node, "PaxRefID"),
		FareBasis:   fareBasisRules.String(node),
		Cabin:       cabinRules.String(node),
		RBD:         rbdRules.String(node),
		SegmentRefs: elementTexts(node, "PaxSegmentRefID"),
	}
	item.BaseAmount, _ = basePriceRules.Extract(node, nz.DefaultCurrency)
	item.TaxAmount, _ = taxPriceRules.Extract(node, nz.DefaultCurrency)
	item.TotalAmount, _ = totalPriceRules.Extract(node, nz.DefaultCurrency)

	// Backfill fare attributes from a referenced price class.
	ref := docreader.ChildText(node, "PriceClassRefID")
	if ref == "" {
		if fd := node.Element("FareDetail"); fd != nil {
			ref = docreader.ChildText(fd, "PriceClassRefID")
		}
	}
	if ref != "" {
		if pc, ok := priceClasses[ref]; ok {
			if item.FareBasis == "" {
				item.FareBasis = pc.FareBasis
			}
			if item.Cabin == "" {
				item.Cabin = pc.Cabin
			}
			if item.RBD == "" {
				item.RBD = pc.RBD
			}
		}
	}
	return item
}

func (nz *Normalizer) parseALaCarte(node docreader.Node, resp *models.ShoppingResponse) {
	resp.ALaCarteOfferID = offerIDRules.String(node)
	resp.ALaCarteOwner = offerOwnerRules.String(node)
	for _, itemNode := range node.Elements("OfferItem") {
		item := models.ALaCarteOfferItem{
			ID:      offerItemIDRules.String(itemNode),
			PaxRefs: elementTexts(itemNode, "PaxRefID"),
		}
		item.Price, _ = unitPriceRules.Extract(itemNode, nz.DefaultCurrency)
		if svc := itemNode.Element("Service"); svc != nil {
			item.ServiceDefRef = docreader.ChildText(svc, "ServiceDefinitionRefID")
		}
		if item.ServiceDefRef == "" {
			item.ServiceDefRef = docreader.ChildText(itemNode, "ServiceDefinitionRefID")
		}
		if el := itemNode.Element("Eligibility"); el != nil {
			if refs := elementTexts(el, "PaxRefID"); len(refs) > 0 {
				item.PaxRefs = refs
			}
			item.JourneyRefs = elementTexts(el, "PaxJourneyRef")
			item.SegmentRefs = elementTexts(el, "PaxSegmentRefID")
		}
		if item.ID != "" {
			resp.ALaCarteItems = append(resp.ALaCarteItems, item)
		}
	}
}
