// credentials/credentials.go
/* The credentials package resolves the server URL, account and webhook used for a
run. Values can come from CLI flags, from a JSON preferences file using the same
keys as an AutoPkg/JSSImporter preference domain, or interactively; flags always
win. The Basic credentials are b64-encoded once at resolution time. */
package credentials

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Credentials is the resolved credential set for one run.
type Credentials struct {
	ServerURL    string
	Username     string
	Password     string
	SlackWebhook string
	Encoded      string // base64-encoded user:password for Basic auth
}

// prefsFile mirrors the preference keys of an AutoPkg prefs file configured for
// JSSImporter.
type prefsFile struct {
	JSSURL       string `json:"JSS_URL"`
	APIUsername  string `json:"API_USERNAME"`
	APIPassword  string `json:"API_PASSWORD"`
	SlackWebhook string `json:"SLACK_WEBHOOK"`
}

// Options controls credential resolution.
type Options struct {
	URL       string // --url flag
	User      string // --user flag
	Password  string // --password flag
	PrefsPath string // --prefs flag, path to a JSON prefs file

	// Input/Output for interactive prompts. Nil defaults to stdin/stdout.
	// Password input is read without echo when stdin is a terminal.
	In  io.Reader
	Out io.Writer
}

// Resolve produces the credential set for a run. Flag values override prefs-file
// values; anything still missing is prompted for.
func Resolve(opts Options) (*Credentials, error) {
	creds := &Credentials{}

	if opts.PrefsPath != "" {
		prefs, err := loadPrefs(opts.PrefsPath)
		if err != nil {
			return nil, err
		}
		creds.ServerURL = prefs.JSSURL
		creds.Username = prefs.APIUsername
		creds.Password = prefs.APIPassword
		creds.SlackWebhook = prefs.SlackWebhook
	}

	if opts.URL != "" {
		creds.ServerURL = opts.URL
	}
	if opts.User != "" {
		creds.Username = opts.User
	}
	if opts.Password != "" {
		creds.Password = opts.Password
	}

	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	var err error
	if creds.ServerURL == "" {
		creds.ServerURL, err = promptLine(in, out, "Enter Jamf Pro Server URL : ")
		if err != nil {
			return nil, err
		}
	}
	if creds.Username == "" {
		creds.Username, err = promptLine(in, out, "Enter a Jamf Pro user with API rights : ")
		if err != nil {
			return nil, err
		}
	}
	if creds.Password == "" {
		creds.Password, err = promptPassword(in, out,
			fmt.Sprintf("Enter the password for '%s' : ", creds.Username))
		if err != nil {
			return nil, err
		}
	}

	creds.ServerURL = strings.TrimRight(creds.ServerURL, "/")
	creds.Encoded = EncodeCredentials(creds.Username, creds.Password)

	return creds, nil
}

// EncodeCredentials encodes a username and password into the base64 form used by
// the Basic authorization header.
func EncodeCredentials(username, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
}

// loadPrefs reads a JSON prefs file. Missing keys resolve to empty strings.
func loadPrefs(path string) (*prefsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading prefs file %s: %w", path, err)
	}

	prefs := &prefsFile{}
	if err := json.Unmarshal(data, prefs); err != nil {
		return nil, fmt.Errorf("parsing prefs file %s: %w", path, err)
	}

	return prefs, nil
}

// promptLine reads one line of input after printing a prompt.
func promptLine(in io.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("no input")
	}
	return strings.TrimSpace(scanner.Text()), nil
}

// promptPassword reads a password without echo when the input is a terminal,
// falling back to a plain line read otherwise (tests, piped input).
func promptPassword(in io.Reader, out io.Writer, prompt string) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(out, prompt)
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	return promptLine(in, out, prompt)
}
