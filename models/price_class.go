package models

// PriceClass carries fare attributes shared by several offer items.
// Items that reference a price class get their missing fare basis,
// cabin and RBD backfilled from it during normalization.
type PriceClass struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	FareBasis string `json:"fareBasis,omitempty"`
	Cabin     string `json:"cabin,omitempty"`
	RBD       string `json:"rbd,omitempty"`
}

// PriceClassIndex looks price classes up by id.
type PriceClassIndex map[string]PriceClass

// NewPriceClassIndex builds the lookup map once; it is read-only afterwards.
func NewPriceClassIndex(classes []PriceClass) PriceClassIndex {
	idx := make(PriceClassIndex, len(classes))
	for _, pc := range classes {
		idx[pc.ID] = pc
	}
	return idx
}
