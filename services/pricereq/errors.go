package pricereq

import "fmt"

// EmptyAncillaryError reports that ancillary selections existed but no
// ancillary item survived request assembly. This is a hard error: the
// follow-up pricing would silently omit ancillaries the user believes
// are included.
type EmptyAncillaryError struct {
	SelectionCount int
}

func (e *EmptyAncillaryError) Error() string {
	return fmt.Sprintf("no ancillary items could be assembled from %d selection(s)", e.SelectionCount)
}
