// tool/tool.go
/* The tool package holds the run modes of the CLI: single-pass, fully sequential
flows of fetch, classify/filter, optional delete and report. Each mode processes
records one at a time in program order; record-level failures are contained and
never halt the batch, while fetch failures abort the run. */
package tool

import (
	"context"

	"github.com/deploymenttheory/jamf-api-tool/classifier"
	"github.com/deploymenttheory/jamf-api-tool/credentials"
	"github.com/deploymenttheory/jamf-api-tool/deleter"
	"github.com/deploymenttheory/jamf-api-tool/jamfpro"
	"github.com/deploymenttheory/jamf-api-tool/logger"
	"github.com/deploymenttheory/jamf-api-tool/reporter"
	"github.com/deploymenttheory/jamf-api-tool/scratch"
	"go.uber.org/zap"
)

// Tool wires the fetcher, delete orchestrator and reporter for one run.
type Tool struct {
	Creds     *credentials.Credentials
	Fetcher   *jamfpro.Fetcher
	Deleter   *deleter.Orchestrator
	Reporter  *reporter.Reporter
	Slack     *reporter.SlackNotifier // nil unless --slack was requested
	Log       logger.Logger
	Verbosity int
}

// RunComputers performs the computer inventory pass: fetch the collection, load
// each record, classify, and report. With Slack enabled the aggregate health
// score is posted; when there are no classifiable records no score is computed
// at all.
func (t *Tool) RunComputers(ctx context.Context, osFilter string) error {
	summaries, err := t.Fetcher.ListComputers(ctx)
	if err != nil {
		return err
	}
	t.Reporter.Printf("%d computers found on %s\n", len(summaries), t.Creds.ServerURL)

	var records []classifier.ComputerRecord
	for _, summary := range summaries {
		t.Reporter.Printf("...loading info for computer %d\n", summary.ID)
		computer, err := t.Fetcher.GetComputer(ctx, summary.ID)
		if err != nil {
			// One unreadable record must not halt the inventory pass.
			t.Log.Error("Failed to load computer record",
				zap.Int("id", summary.ID), zap.Error(err))
			continue
		}
		records = append(records, classifier.ComputerRecord{
			ID:              summary.ID,
			Name:            computer.General.Name,
			OSVersion:       computer.Hardware.OSVersion,
			DEP:             computer.General.ManagementStatus.DEPStatus(),
			LastContactTime: computer.General.LastContactTime,
		})
	}

	if t.Verbosity > 1 {
		// Scratch dumps from an earlier run are stale; this run starts clean.
		if err := scratch.Clear(); err != nil {
			t.Log.Warn("Failed to clear scratch directory", zap.Error(err))
		}
		if path, err := scratch.WriteJSON(records); err == nil {
			t.Log.Debug("Dumped computer records", zap.String("path", path))
		}
	}

	result := classifier.Classify(records, classifier.Options{OSFilter: osFilter}, t.Log)
	t.Reporter.PrintComputerSummary(result, osFilter)

	if t.Slack != nil {
		recent := result.Count(classifier.Recent) +
			result.Count(classifier.CompliantWithOS) +
			result.Count(classifier.NonCompliantWithOS)
		stale := result.Buckets[classifier.Stale]

		score, ok := reporter.HealthScore(recent, len(stale))
		if !ok {
			t.Log.Info("No classifiable records, skipping health score")
			return nil
		}

		payload := reporter.BuildHealthPayload(score, t.Creds.ServerURL, stale)
		t.Reporter.Printf("%s", payload)
		if t.Verbosity > 1 {
			if path, err := scratch.WriteText(payload); err == nil {
				t.Log.Debug("Dumped health payload", zap.String("path", path))
			}
		}
		if err := t.Slack.Post(ctx, payload); err != nil {
			return err
		}
	}

	return nil
}

// RunPolicySearch lists policies matching any of the query substrings, deleting
// the matches when requested. Queries that match nothing each produce an
// explicit no-match line.
func (t *Tool) RunPolicySearch(ctx context.Context, queries []string, doDelete bool) error {
	policies, err := t.Fetcher.ListPolicies(ctx)
	if err != nil {
		return err
	}
	t.Reporter.Printf("Searching %d policies on %s:\n", len(policies), t.Creds.ServerURL)
	if !doDelete {
		t.Reporter.Printf("To delete policies, obtain a matching query, then run with the --delete argument\n")
	}

	targets, unmatched := classifier.FilterPolicies(policies, queries)

	if len(targets) > 0 {
		t.Reporter.Printf("Policies found:\n")
		for _, target := range targets {
			t.Reporter.PrintPolicyTarget(target)
			if doDelete {
				result := t.Deleter.Delete(ctx, deleter.KindPolicy, target.ID)
				t.Reporter.PrintDeleteOutcome(deleter.KindPolicy, target.ID, result)
			}
		}
		t.Reporter.Printf("%d total matches\n", len(targets))
	}

	for _, query := range unmatched {
		t.Reporter.PrintNoMatch(query)
	}

	return nil
}

// RunPolicyAll walks every category and lists its policies with package and
// scope detail. With Slack enabled an informational line is posted first.
func (t *Tool) RunPolicyAll(ctx context.Context) error {
	categories, err := t.Fetcher.ListCategories(ctx)
	if err != nil {
		return err
	}

	if t.Slack != nil {
		info := reporter.BuildQueryNotice(len(categories), t.Creds.ServerURL)
		if err := t.Slack.Post(ctx, info); err != nil {
			// Informational only; the listing still proceeds.
			t.Log.Warn("Slack notice failed", zap.Error(err))
		}
	}

	if len(categories) == 0 {
		t.Reporter.Printf("something went wrong: no categories found.\n")
		return nil
	}

	for _, category := range categories {
		t.Reporter.PrintCategory(category)

		policies, err := t.Fetcher.ListPoliciesInCategory(ctx, category.Name)
		if err != nil {
			return err
		}
		for _, summary := range policies {
			policy, err := t.Fetcher.GetPolicy(ctx, summary.ID)
			if err != nil {
				t.Log.Error("Failed to load policy record",
					zap.Int("id", summary.ID), zap.Error(err))
				continue
			}
			t.Reporter.PrintPolicyDetail(summary, policy.FirstPackageName(), policy.FirstGroupName())
		}
	}

	t.Reporter.Printf("\nAll policies listed above.. program complete for %s\n", t.Creds.ServerURL)
	return nil
}

// RunCategories checks each named category and lists its policies, deleting them
// when requested. An unknown category is reported, not fatal.
func (t *Tool) RunCategories(ctx context.Context, categories []string, doDelete bool) error {
	t.Reporter.Printf("categories to check are:\n%v\nTotal: %d\n", categories, len(categories))

	for _, name := range categories {
		t.Reporter.Printf("\nChecking '%s' on %s\n", name, t.Creds.ServerURL)

		policies, err := t.Fetcher.ListPoliciesInCategory(ctx, name)
		if err != nil {
			return err
		}
		if len(policies) == 0 {
			t.Reporter.Printf("Category '%s' not found\n", name)
			continue
		}

		if !doDelete {
			t.Reporter.Printf("Category '%s' exists with %d items: to delete them run this command again with the --delete flag.\n",
				name, len(policies))
		}

		for _, policy := range policies {
			t.Reporter.PrintPolicyTarget(policy)
			if doDelete {
				result := t.Deleter.Delete(ctx, deleter.KindPolicy, policy.ID)
				t.Reporter.PrintDeleteOutcome(deleter.KindPolicy, policy.ID, result)
			}
		}
	}

	return nil
}

// RunNames resolves each policy name to an id and reports it, deleting when
// requested. A name with no match produces a report line and the loop continues.
func (t *Tool) RunNames(ctx context.Context, names []string, doDelete bool) error {
	t.Reporter.Printf("policy names to check are:\n%v\nTotal: %d\n", names, len(names))

	for _, name := range names {
		t.Reporter.Printf("\nChecking '%s' on %s\n", name, t.Creds.ServerURL)

		id, found, err := t.Fetcher.GetPolicyIDByName(ctx, name)
		if err != nil {
			return err
		}
		if !found {
			t.Reporter.Printf("Policy '%s' not found\n", name)
			continue
		}

		policy, err := t.Fetcher.GetPolicy(ctx, id)
		if err != nil {
			return err
		}
		t.Reporter.Printf("Match found: '%s' ID: %d Group: %s\n",
			policy.General.Name, id, policy.FirstGroupName())

		if doDelete {
			result := t.Deleter.Delete(ctx, deleter.KindPolicy, id)
			t.Reporter.PrintDeleteOutcome(deleter.KindPolicy, id, result)
		}
	}

	return nil
}
