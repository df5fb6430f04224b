package models

import "time"

// FlightSegment is a single flown leg between two airports.
type FlightSegment struct {
	ID               string    `json:"id"`
	Origin           string    `json:"origin"`
	Destination      string    `json:"destination"`
	Departure        time.Time `json:"departure"`
	Arrival          time.Time `json:"arrival"`
	MarketingCarrier string    `json:"marketingCarrier"`
	OperatingCarrier string    `json:"operatingCarrier,omitempty"`
	FlightNumber     string    `json:"flightNumber,omitempty"`
	Cabin            string    `json:"cabin,omitempty"`
	FareBasis        string    `json:"fareBasis,omitempty"`
}

// PaxJourney is one logical directional flight composed of one or more
// segments in order.
type PaxJourney struct {
	ID          string   `json:"id"`
	SegmentRefs []string `json:"segmentRefs"`
}

// SegmentIndex looks flight segments up by id.
type SegmentIndex map[string]FlightSegment

// NewSegmentIndex builds the lookup map once; it is read-only afterwards.
func NewSegmentIndex(segments []FlightSegment) SegmentIndex {
	idx := make(SegmentIndex, len(segments))
	for _, s := range segments {
		idx[s.ID] = s
	}
	return idx
}

// JourneyIndex looks pax journeys up by id.
type JourneyIndex map[string]PaxJourney

// NewJourneyIndex builds the lookup map once; it is read-only afterwards.
func NewJourneyIndex(journeys []PaxJourney) JourneyIndex {
	idx := make(JourneyIndex, len(journeys))
	for _, j := range journeys {
		idx[j.ID] = j
	}
	return idx
}
