package reconcile

import "strings"

// numericCore strips the given prefix from a ref and returns the
// remaining numeric string. It returns "" when the prefix does not
// match or the remainder is not purely numeric, so unrelated id shapes
// never correlate by accident.
func numericCore(ref, prefix string) string {
	if prefix == "" || !strings.HasPrefix(ref, prefix) {
		return ""
	}
	core := ref[len(prefix):]
	if core == "" {
		return ""
	}
	for _, r := range core {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return core
}

// stringSet builds a membership set from a ref list.
func stringSet(refs []string) map[string]bool {
	set := make(map[string]bool, len(refs))
	for _, r := range refs {
		set[r] = true
	}
	return set
}
