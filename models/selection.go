package models

// ItemKind tags the variant of a selected ancillary item.
type ItemKind string

const (
	ItemKindBundle  ItemKind = "bundle"
	ItemKindService ItemKind = "service"
	ItemKindSeat    ItemKind = "seat"
)

// SelectedItem is the common view over the three ancillary selection
// variants. The price request builder resolves the concrete variant
// with a type switch.
type SelectedItem interface {
	Kind() ItemKind
	Container() string
	Passengers() []string
	Category() ServiceCategory
}

// SelectedBundle is a bundle chosen for a set of passengers.
// PaxItemIDs carries the per-passenger item ids copied from the
// reconciled BundleOfferItem; passengers without an entry (ineligible
// types) are skipped at request construction, not errored.
type SelectedBundle struct {
	Code             string            `json:"code"`
	PaxRefs          []string          `json:"paxRefs"`
	PaxItemIDs       map[string]string `json:"paxItemIds"`
	JourneyRefs      []string          `json:"journeyRefs,omitempty"`
	Price            Money             `json:"price"`
	ContainerOfferID string            `json:"containerOfferId,omitempty"`
}

func (b SelectedBundle) Kind() ItemKind            { return ItemKindBundle }
func (b SelectedBundle) Container() string         { return b.ContainerOfferID }
func (b SelectedBundle) Passengers() []string      { return b.PaxRefs }
func (b SelectedBundle) Category() ServiceCategory { return CategoryBundle }

// SelectedServiceItem is a standalone ancillary service (extra bag,
// meal, ...) chosen for a set of passengers.
type SelectedServiceItem struct {
	ServiceID        string          `json:"serviceId"`
	ServiceCategory  ServiceCategory `json:"serviceCategory"`
	Quantity         int             `json:"quantity"`
	Price            Money           `json:"price"`
	ContainerOfferID string          `json:"containerOfferId,omitempty"`
	ItemID           string          `json:"itemId"`
	PaxRefs          []string        `json:"paxRefs"`
	Association      AssociationKind `json:"associationKind"`
	AssociationRefs  []string        `json:"associationRefs,omitempty"`
}

func (s SelectedServiceItem) Kind() ItemKind            { return ItemKindService }
func (s SelectedServiceItem) Container() string         { return s.ContainerOfferID }
func (s SelectedServiceItem) Passengers() []string      { return s.PaxRefs }
func (s SelectedServiceItem) Category() ServiceCategory { return s.ServiceCategory }

func (s SeatSelection) Kind() ItemKind            { return ItemKindSeat }
func (s SeatSelection) Container() string         { return s.ContainerOfferID }
func (s SeatSelection) Passengers() []string      { return []string{s.PaxRef} }
func (s SeatSelection) Category() ServiceCategory { return CategorySeat }

// SelectedFareItem is one chosen flight fare line.
type SelectedFareItem struct {
	ItemID  string   `json:"itemId"`
	PaxRefs []string `json:"paxRefs"`
}

// Selection is the user's current pick for one shopping session: the
// flight fare plus any ancillaries. It is the only mutable state the
// engine carries between calls.
type Selection struct {
	OfferID   string             `json:"offerId"`
	Owner     string             `json:"owner"`
	FareItems []SelectedFareItem `json:"fareItems"`

	Bundles  []SelectedBundle      `json:"bundles,omitempty"`
	Services []SelectedServiceItem `json:"services,omitempty"`
	Seats    []SeatSelection       `json:"seats,omitempty"`
}

// AncillaryItems returns all ancillary selections behind the shared
// SelectedItem interface, bundles first, then services, then seats.
func (s Selection) AncillaryItems() []SelectedItem {
	items := make([]SelectedItem, 0, len(s.Bundles)+len(s.Services)+len(s.Seats))
	for _, b := range s.Bundles {
		items = append(items, b)
	}
	for _, svc := range s.Services {
		items = append(items, svc)
	}
	for _, seat := range s.Seats {
		items = append(items, seat)
	}
	return items
}

// HasAncillaries reports whether any ancillary item is selected.
func (s Selection) HasAncillaries() bool {
	return len(s.Bundles) > 0 || len(s.Services) > 0 || len(s.Seats) > 0
}
