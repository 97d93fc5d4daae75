// classifier/version.go
package classifier

import (
	"fmt"
	"strconv"
	"strings"
)

// CompareVersions compares two dotted version strings component-wise and
// numerically, returning -1, 0 or 1. Missing trailing components compare as
// zero, so "10.9" equals "10.9.0". A non-numeric component is an error; naive
// string ordering would rank "10.9" above "10.10", which is exactly the defect
// this comparison exists to avoid.
func CompareVersions(a, b string) (int, error) {
	aParts, err := splitVersion(a)
	if err != nil {
		return 0, err
	}
	bParts, err := splitVersion(b)
	if err != nil {
		return 0, err
	}

	n := len(aParts)
	if len(bParts) > n {
		n = len(bParts)
	}

	for i := 0; i < n; i++ {
		av, bv := 0, 0
		if i < len(aParts) {
			av = aParts[i]
		}
		if i < len(bParts) {
			bv = bParts[i]
		}
		if av < bv {
			return -1, nil
		}
		if av > bv {
			return 1, nil
		}
	}

	return 0, nil
}

func splitVersion(v string) ([]int, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, fmt.Errorf("empty version string")
	}

	parts := strings.Split(v, ".")
	components := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid version component %q in %q", part, v)
		}
		components = append(components, n)
	}

	return components, nil
}
