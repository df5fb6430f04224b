package normalizer

import (
	"strconv"
	"time"

	"skyretail/docreader"
	"skyretail/models"
)

// Rule reads one candidate location for a field. The upstream schema
// spells many fields in several ways, so every field is extracted by an
// ordered Chain of rules instead of ad hoc lookup code; the fallback
// order is data, not control flow.
type Rule interface {
	Extract(n docreader.Node) (string, bool)
}

// ElementText reads the trimmed text at a child element path.
type ElementText []string

func (p ElementText) Extract(n docreader.Node) (string, bool) {
	cur := n
	for _, name := range p {
		if cur == nil {
			return "", false
		}
		cur = cur.Element(name)
	}
	if cur == nil {
		return "", false
	}
	if t := cur.Text(); t != "" {
		return t, true
	}
	return "", false
}

// AttrValue reads an attribute, optionally below a child element path.
type AttrValue struct {
	Path []string
	Name string
}

func (a AttrValue) Extract(n docreader.Node) (string, bool) {
	cur := n
	for _, name := range a.Path {
		if cur == nil {
			return "", false
		}
		cur = cur.Element(name)
	}
	if cur == nil {
		return "", false
	}
	if v := cur.Attr(a.Name); v != "" {
		return v, true
	}
	return "", false
}

// Text builds an ElementText rule.
func Text(path ...string) Rule { return ElementText(path) }

// Attr builds an AttrValue rule.
func Attr(name string, path ...string) Rule { return AttrValue{Path: path, Name: name} }

// Chain evaluates rules in order and returns the first hit.
type Chain []Rule

// Lookup returns the first value any rule extracts.
func (c Chain) Lookup(n docreader.Node) (string, bool) {
	for _, r := range c {
		if v, ok := r.Extract(n); ok {
			return v, true
		}
	}
	return "", false
}

// String returns the first extracted value, or "".
func (c Chain) String(n docreader.Node) string {
	v, _ := c.Lookup(n)
	return v
}

// MoneyChain extracts an amount from the first present candidate
// element; the currency comes from that element's Code attribute or the
// supplied default.
type MoneyChain []string

func (c MoneyChain) Extract(n docreader.Node, defaultCurrency string) (models.Money, bool) {
	if n == nil {
		return models.Money{}, false
	}
	for _, name := range c {
		el := n.Element(name)
		if el == nil || el.Text() == "" {
			continue
		}
		amount, err := strconv.ParseFloat(el.Text(), 64)
		if err != nil {
			continue
		}
		currency := el.Attr("Code")
		if currency == "" {
			currency = defaultCurrency
		}
		return models.Money{Amount: amount, Currency: currency}, true
	}
	return models.Money{}, false
}

// Per-field extraction chains. Order is the documented fallback order.
var (
	shoppingResponseIDRules = Chain{Text("ShoppingResponseID"), Text("ShoppingResponseRefID")}

	offerIDRules     = Chain{Attr("OfferID"), Text("OfferID")}
	offerOwnerRules  = Chain{Attr("Owner"), Text("Owner")}
	offerExpiryRules = Chain{Text("ExpirationDateTime"), Text("OfferExpirationDateTime")}

	offerItemIDRules = Chain{Attr("OfferItemID"), Text("OfferItemID")}

	fareBasisRules = Chain{Text("FareDetail", "FareBasisCode"), Text("FareBasisCode")}
	cabinRules     = Chain{Text("FareDetail", "CabinType"), Text("CabinType")}
	rbdRules       = Chain{Text("FareDetail", "ClassOfService"), Text("FareDetail", "RBD"), Text("ClassOfService"), Text("RBD")}

	segmentIDRules = Chain{Attr("SegmentID"), Attr("PaxSegmentID"), Text("PaxSegmentID")}
	carrierRules   = Chain{Attr("AirlineID"), Text("AirlineID")}

	serviceDefIDRules   = Chain{Attr("ServiceDefinitionID"), Text("ServiceDefinitionID")}
	serviceCodeRules    = Chain{Text("ServiceCode"), Text("Code")}
	serviceNameRules    = Chain{Text("Name"), Text("ServiceName")}
	serviceDescRules    = Chain{Text("Desc"), Text("Description")}
	priceClassIDRules   = Chain{Attr("PriceClassID"), Text("PriceClassID")}
	priceClassCodeRules = Chain{Text("Code"), Text("ClassCode")}
	priceClassRBDRules  = Chain{Text("ClassOfService"), Text("RBD")}

	totalPriceRules = MoneyChain{"TotalPrice", "TotalAmount", "Price"}
	basePriceRules  = MoneyChain{"BaseAmount", "BaseFare"}
	taxPriceRules   = MoneyChain{"TaxAmount", "Taxes"}
	unitPriceRules  = MoneyChain{"UnitPrice", "TotalPrice", "TotalAmount", "Price"}
)

// elementTexts collects the non-empty texts of all direct children with
// the given name.
func elementTexts(n docreader.Node, name string) []string {
	if n == nil {
		return nil
	}
	var out []string
	for _, el := range n.Elements(name) {
		if t := el.Text(); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// parseDateTime accepts the timestamp layouts the upstream system has
// been observed to emit.
func parseDateTime(value string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// combineDateTime joins separate Date and Time fields.
func combineDateTime(date, clock string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	if clock == "" {
		clock = "00:00"
	}
	if t, err := time.Parse("2006-01-02 15:04", date+" "+clock); err == nil {
		return t, true
	}
	return time.Time{}, false
}
