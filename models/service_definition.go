package models

// ServiceCategory classifies a service definition.
type ServiceCategory string

const (
	CategoryBundle    ServiceCategory = "bundle"
	CategoryBaggage   ServiceCategory = "baggage"
	CategorySeat      ServiceCategory = "seat"
	CategoryMeal      ServiceCategory = "meal"
	CategoryAncillary ServiceCategory = "ancillary"
)

// ServiceDefinition is a raw sellable service described in the
// response data lists. It carries no price; prices live on the
// a-la-carte offer items that reference it.
type ServiceDefinition struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Category    ServiceCategory `json:"category"`
	Description string          `json:"description,omitempty"`
}

// BundleDefinition is a service definition that packages other
// services. IncludedRefs point at the service definitions bundled in;
// they are resolved into typed buckets by the reconciliation engine.
type BundleDefinition struct {
	ServiceDefinition
	IncludedRefs []string `json:"includedRefs"`
}

// ServiceDefinitionIndex looks service definitions up by id.
type ServiceDefinitionIndex map[string]ServiceDefinition

// NewServiceDefinitionIndex builds the lookup map once; it is read-only afterwards.
func NewServiceDefinitionIndex(defs []ServiceDefinition) ServiceDefinitionIndex {
	idx := make(ServiceDefinitionIndex, len(defs))
	for _, d := range defs {
		idx[d.ID] = d
	}
	return idx
}

// BundleDefinitionIndex looks bundle definitions up by id.
type BundleDefinitionIndex map[string]BundleDefinition

// NewBundleDefinitionIndex builds the lookup map once; it is read-only afterwards.
func NewBundleDefinitionIndex(defs []BundleDefinition) BundleDefinitionIndex {
	idx := make(BundleDefinitionIndex, len(defs))
	for _, d := range defs {
		idx[d.ID] = d
	}
	return idx
}
