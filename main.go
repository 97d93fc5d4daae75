// main.go
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/deploymenttheory/jamf-api-tool/credentials"
	"github.com/deploymenttheory/jamf-api-tool/deleter"
	"github.com/deploymenttheory/jamf-api-tool/httpclient"
	"github.com/deploymenttheory/jamf-api-tool/jamfpro"
	"github.com/deploymenttheory/jamf-api-tool/logger"
	"github.com/deploymenttheory/jamf-api-tool/reporter"
	"github.com/deploymenttheory/jamf-api-tool/tool"
	"github.com/deploymenttheory/jamf-api-tool/version"
	"github.com/paularlott/cli"
)

func main() {
	rootCmd := buildRootCommand()

	if err := rootCmd.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildRootCommand() *cli.Command {
	return &cli.Command{
		Name:        version.GetAppName(),
		Version:     version.GetVersion(),
		Usage:       "List, search and clean policies and computer objects on a Jamf Pro server",
		Description: "Queries, classifies and optionally bulk-deletes policy and computer-inventory objects over the Jamf Pro API, with optional Slack health reporting.",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "computers", Usage: "Work on computer objects"},
			&cli.BoolFlag{Name: "policies", Usage: "Work on policy objects"},
			&cli.BoolFlag{Name: "all", Usage: "List every object of the selected kind"},
			&cli.StringFlag{Name: "search", Usage: "Comma-separated name substrings to search policies for"},
			&cli.StringFlag{Name: "category", Usage: "Comma-separated category names to check"},
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Comma-separated policy names to check"},
			&cli.StringFlag{Name: "os", Usage: "Restrict the computer report to an OS version floor"},
			&cli.BoolFlag{Name: "delete", Usage: "Delete matched objects; must be used with a search argument"},
			&cli.BoolFlag{Name: "slack", Usage: "Post a Slack webhook with the run summary"},
			&cli.StringFlag{Name: "url", Usage: "Jamf Pro server URL"},
			&cli.StringFlag{Name: "user", Usage: "A user with the rights to delete a policy"},
			&cli.StringFlag{Name: "password", Usage: "Password of the API user"},
			&cli.StringFlag{Name: "prefs", Usage: "Path to a JSON prefs file with JSS_URL, API_USERNAME, API_PASSWORD and SLACK_WEBHOOK"},
			&cli.IntFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Verbosity level (0-2)", DefaultValue: 0},
			&cli.StringFlag{Name: "log-level", Usage: "Log level (debug, info, warn, error); overrides --verbose"},
		},
		Run: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	computersMode := cmd.GetBool("computers")
	policiesMode := cmd.GetBool("policies")
	allFlag := cmd.GetBool("all")
	deleteFlag := cmd.GetBool("delete")
	slackFlag := cmd.GetBool("slack")
	osFilter := cmd.GetString("os")
	searches := splitMulti(cmd.GetString("search"))
	categories := splitMulti(cmd.GetString("category"))
	names := splitMulti(cmd.GetString("name"))
	verbosity := cmd.GetInt("verbose")

	if err := validateFlags(computersMode, policiesMode, allFlag, searches, categories, names); err != nil {
		return err
	}

	log := logger.BuildLogger(resolveLogLevel(cmd.GetString("log-level"), verbosity), "console", "\t")

	creds, err := credentials.Resolve(credentials.Options{
		URL:       cmd.GetString("url"),
		User:      cmd.GetString("user"),
		Password:  cmd.GetString("password"),
		PrefsPath: cmd.GetString("prefs"),
	})
	if err != nil {
		return err
	}

	// The webhook check happens before any network activity.
	if slackFlag && creds.SlackWebhook == "" {
		return fmt.Errorf("slack_webhook value error: set SLACK_WEBHOOK in your prefs file")
	}

	client, err := httpclient.BuildClient(httpclient.ClientConfig{
		BaseURL:            creds.ServerURL,
		EncodedCredentials: creds.Encoded,
	}, log)
	if err != nil {
		return err
	}

	t := &tool.Tool{
		Creds:     creds,
		Fetcher:   jamfpro.NewFetcher(client, log),
		Deleter:   deleter.New(client, deleter.DefaultPolicy, log),
		Reporter:  reporter.New(os.Stdout),
		Log:       log,
		Verbosity: verbosity,
	}
	if slackFlag {
		t.Slack = reporter.NewSlackNotifier(creds.SlackWebhook, log)
	}

	if computersMode {
		return t.RunComputers(ctx, osFilter)
	}

	if len(searches) > 0 {
		if err := t.RunPolicySearch(ctx, searches, deleteFlag); err != nil {
			return err
		}
	} else if allFlag {
		if err := t.RunPolicyAll(ctx); err != nil {
			return err
		}
	}

	if len(categories) > 0 {
		if err := t.RunCategories(ctx, categories, deleteFlag); err != nil {
			return err
		}
	}
	if len(names) > 0 {
		if err := t.RunNames(ctx, names, deleteFlag); err != nil {
			return err
		}
	}

	return nil
}

// validateFlags enforces the mode and modifier combinations. Invalid
// combinations print a syntax error and exit without any network activity.
func validateFlags(computersMode, policiesMode, allFlag bool, searches, categories, names []string) error {
	if computersMode == policiesMode {
		return fmt.Errorf("syntax error: use either --computers or --policies")
	}
	if len(searches) > 0 && allFlag {
		return fmt.Errorf("syntax error: use either --search or --all, but not both")
	}
	if computersMode && !allFlag {
		return fmt.Errorf("syntax error: --computers requires --all as a minimum")
	}
	if policiesMode && len(searches) == 0 && !allFlag && len(categories) == 0 && len(names) == 0 {
		return fmt.Errorf("syntax error: with --policies use --search, --all, --category or --name")
	}
	return nil
}

// resolveLogLevel maps the logging flags onto a level: an explicit --log-level
// name wins, otherwise the -v counter decides.
func resolveLogLevel(levelName string, verbosity int) logger.LogLevel {
	if levelName != "" {
		return logger.ParseLogLevelFromString(levelName)
	}
	return logger.LogLevelFromVerbosity(verbosity)
}

// splitMulti splits a comma-separated flag value into trimmed, non-empty parts.
func splitMulti(value string) []string {
	if value == "" {
		return nil
	}
	var parts []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
