// reporter/reporter.go
/* The reporter package turns classification and delete-outcome values into
console output and Slack payloads. It is a pure presentation layer: it consumes
result values computed elsewhere and never reaches back into the API. */
package reporter

import (
	"fmt"
	"io"

	"github.com/deploymenttheory/jamf-api-tool/classifier"
	"github.com/deploymenttheory/jamf-api-tool/deleter"
	"github.com/deploymenttheory/jamf-api-tool/jamfpro"
	"github.com/fatih/color"
)

var (
	headerColor  = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	failColor    = color.New(color.FgRed)
)

// Reporter formats run results onto a writer, typically stdout.
type Reporter struct {
	out io.Writer
}

// New returns a Reporter writing to out.
func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// computerLine renders one classified computer the way the summary lists them.
func computerLine(c classifier.Classified) string {
	return fmt.Sprintf("%d %s\tname : %s\n\t\tDEP  : %s\n\t\tseen : %d days ago",
		c.Record.ID, c.Record.OSVersion, c.Record.Name, c.Record.DEP, c.AgeDays)
}

// PrintComputerSummary writes the classification summary for a computer run.
// With an OS filter the compliant / non-compliant / stale sections are shown;
// without one the summary is a plain recent / stale split.
func (r *Reporter) PrintComputerSummary(result classifier.Result, osFilter string) {
	headerColor.Fprintln(r.out, "Loading complete...\n\nSummary:")

	if osFilter != "" {
		if compliant := result.Buckets[classifier.CompliantWithOS]; len(compliant) > 0 {
			fmt.Fprintf(r.out, "%d compliant and recent:\n", len(compliant))
			for _, c := range compliant {
				successColor.Fprintln(r.out, computerLine(c))
			}
		}
		if nonCompliant := result.Buckets[classifier.NonCompliantWithOS]; len(nonCompliant) > 0 {
			fmt.Fprintf(r.out, "%d non-compliant:\n", len(nonCompliant))
			for _, c := range nonCompliant {
				warnColor.Fprintln(r.out, computerLine(c))
			}
		}
		if stale := result.Buckets[classifier.Stale]; len(stale) > 0 {
			fmt.Fprintf(r.out, "%d stale - OS version not considered:\n", len(stale))
			for _, c := range stale {
				failColor.Fprintln(r.out, computerLine(c))
			}
		}
		return
	}

	recent := result.Buckets[classifier.Recent]
	stale := result.Buckets[classifier.Stale]
	fmt.Fprintf(r.out, "%d last check-in within the staleness window\n", len(recent))
	for _, c := range recent {
		successColor.Fprintln(r.out, computerLine(c))
	}
	fmt.Fprintf(r.out, "%d stale - last check-in beyond the staleness window\n", len(stale))
	for _, c := range stale {
		failColor.Fprintln(r.out, computerLine(c))
	}
}

// HealthScore computes the fleet health score as a percentage string with two
// decimals. The second return value is false when there are no records to score;
// in that case no score line must be emitted at all.
func HealthScore(recent, stale int) (string, bool) {
	total := recent + stale
	if total == 0 {
		return "", false
	}
	return fmt.Sprintf("%.2f%%", float64(recent)/float64(total)*100), true
}

// BuildHealthPayload assembles the Slack health message: the score line followed
// by one line per stale machine.
func BuildHealthPayload(score, serverURL string, stale []classifier.Classified) string {
	payload := fmt.Sprintf(":hospital: update health: %s - %d need to be fixed on %s\n",
		score, len(stale), serverURL)
	for _, c := range stale {
		payload += computerLine(c) + "\n"
	}
	return payload
}

// BuildQueryNotice assembles the informational Slack line posted before a full
// category/policy listing.
func BuildQueryNotice(categories int, serverURL string) string {
	return fmt.Sprintf("all %d categories were just queried on %s", categories, serverURL)
}

// PrintPolicyTarget writes one matched policy line.
func (r *Reporter) PrintPolicyTarget(policy jamfpro.PolicySummary) {
	warnColor.Fprintf(r.out, "- policy %d\tname  : %s\n", policy.ID, policy.Name)
}

// PrintPolicyDetail writes the per-category policy listing with package and scope.
func (r *Reporter) PrintPolicyDetail(policy jamfpro.PolicySummary, pkg, groups string) {
	warnColor.Fprintf(r.out, "  policy %d\tname  : %s\n", policy.ID, policy.Name)
	fmt.Fprintf(r.out, "\t\tpkg   : %s\n\t\tscope : %s\n", pkg, groups)
}

// PrintCategory writes one category header line.
func (r *Reporter) PrintCategory(category jamfpro.Category) {
	headerColor.Fprintf(r.out, "category %d\t%s\n", category.ID, category.Name)
}

// PrintNoMatch writes the explicit no-match line for one query. An empty result
// is a report line, not an error.
func (r *Reporter) PrintNoMatch(query string) {
	fmt.Fprintf(r.out, "No match found: %s\n", query)
}

// PrintDeleteOutcome writes the human-readable line for a terminal delete
// outcome. Every outcome produces a line; there is no silent failure path.
func (r *Reporter) PrintDeleteOutcome(kind deleter.Kind, id int, result deleter.Result) {
	switch result.Outcome {
	case deleter.Succeeded:
		successColor.Fprintf(r.out, "%s %d delete was successful\n", kind, id)
	case deleter.Conflict:
		warnColor.Fprintf(r.out, "WARNING: %s %d delete failed due to a conflict\n", kind, id)
	case deleter.Unauthorized:
		failColor.Fprintf(r.out, "ERROR: %s %d delete failed due to permissions error\n", kind, id)
	case deleter.ExhaustedRetries:
		warnColor.Fprintf(r.out, "WARNING: %s %d delete did not succeed after %d attempts\n",
			kind, id, result.Attempts)
		fmt.Fprintf(r.out, "HTTP DELETE response code: %d\n", result.LastStatusCode)
	}
}

// Printf writes an uncolored formatted line to the report writer.
func (r *Reporter) Printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}
