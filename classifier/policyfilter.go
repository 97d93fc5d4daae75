// classifier/policyfilter.go
package classifier

import (
	"strings"

	"github.com/deploymenttheory/jamf-api-tool/jamfpro"
)

// FilterPolicies returns the policies whose name contains any of the query
// strings (case-sensitive substring match). A policy matching several queries
// appears once, in collection order. The second return value lists the queries
// that matched nothing, so the caller can report a no-match line per query.
func FilterPolicies(all []jamfpro.PolicySummary, queries []string) ([]jamfpro.PolicySummary, []string) {
	matchedQueries := make(map[string]bool, len(queries))

	var targets []jamfpro.PolicySummary
	for _, policy := range all {
		matched := false
		for _, query := range queries {
			if strings.Contains(policy.Name, query) {
				matchedQueries[query] = true
				matched = true
			}
		}
		if matched {
			targets = append(targets, policy)
		}
	}

	var unmatched []string
	for _, query := range queries {
		if !matchedQueries[query] {
			unmatched = append(unmatched, query)
		}
	}

	return targets, unmatched
}
