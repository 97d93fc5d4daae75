// credentials/credentials_test.go
package credentials

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePrefs(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEncodeCredentials(t *testing.T) {
	// base64("admin:hunter2")
	assert.Equal(t, "YWRtaW46aHVudGVyMg==", EncodeCredentials("admin", "hunter2"))
}

func TestResolveFromFlags(t *testing.T) {
	creds, err := Resolve(Options{
		URL:      "https://jamf.example.com",
		User:     "admin",
		Password: "hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://jamf.example.com", creds.ServerURL)
	assert.Equal(t, "admin", creds.Username)
	assert.Equal(t, "hunter2", creds.Password)
	assert.Equal(t, EncodeCredentials("admin", "hunter2"), creds.Encoded)
}

func TestResolveFromPrefsFile(t *testing.T) {
	path := writePrefs(t, `{
		"JSS_URL": "https://jamf.example.com",
		"API_USERNAME": "svc-api",
		"API_PASSWORD": "s3cret",
		"SLACK_WEBHOOK": "https://hooks.slack.com/services/T/B/X"
	}`)

	creds, err := Resolve(Options{PrefsPath: path})

	require.NoError(t, err)
	assert.Equal(t, "https://jamf.example.com", creds.ServerURL)
	assert.Equal(t, "svc-api", creds.Username)
	assert.Equal(t, "s3cret", creds.Password)
	assert.Equal(t, "https://hooks.slack.com/services/T/B/X", creds.SlackWebhook)
}

func TestResolveFlagsOverridePrefs(t *testing.T) {
	path := writePrefs(t, `{
		"JSS_URL": "https://prefs.example.com",
		"API_USERNAME": "prefs-user",
		"API_PASSWORD": "prefs-pass"
	}`)

	creds, err := Resolve(Options{
		PrefsPath: path,
		URL:       "https://flag.example.com",
		User:      "flag-user",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://flag.example.com", creds.ServerURL)
	assert.Equal(t, "flag-user", creds.Username)
	assert.Equal(t, "prefs-pass", creds.Password, "values absent from flags fall through to prefs")
}

func TestResolvePromptsForMissingValues(t *testing.T) {
	in := strings.NewReader("https://prompted.example.com\nprompted-user\nprompted-pass\n")
	var out bytes.Buffer

	creds, err := Resolve(Options{In: in, Out: &out})

	require.NoError(t, err)
	assert.Equal(t, "https://prompted.example.com", creds.ServerURL)
	assert.Equal(t, "prompted-user", creds.Username)
	assert.Equal(t, "prompted-pass", creds.Password)
	assert.Contains(t, out.String(), "Enter Jamf Pro Server URL")
	assert.Contains(t, out.String(), "Enter the password for 'prompted-user'")
}

func TestResolvePromptsOnlyForPassword(t *testing.T) {
	in := strings.NewReader("prompted-pass\n")
	var out bytes.Buffer

	creds, err := Resolve(Options{
		URL:  "https://jamf.example.com",
		User: "admin",
		In:   in,
		Out:  &out,
	})

	require.NoError(t, err)
	assert.Equal(t, "prompted-pass", creds.Password)
	assert.NotContains(t, out.String(), "Enter Jamf Pro Server URL")
}

func TestResolveTrimsTrailingSlash(t *testing.T) {
	creds, err := Resolve(Options{
		URL:      "https://jamf.example.com/",
		User:     "admin",
		Password: "hunter2",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://jamf.example.com", creds.ServerURL)
}

func TestResolveMissingPrefsFile(t *testing.T) {
	_, err := Resolve(Options{PrefsPath: filepath.Join(t.TempDir(), "absent.json")})
	assert.Error(t, err)
}

func TestResolveMalformedPrefsFile(t *testing.T) {
	path := writePrefs(t, "{not json")
	_, err := Resolve(Options{PrefsPath: path})
	assert.Error(t, err)
}

func TestResolveNoInputAvailable(t *testing.T) {
	_, err := Resolve(Options{In: strings.NewReader(""), Out: &bytes.Buffer{}})
	assert.Error(t, err)
}
