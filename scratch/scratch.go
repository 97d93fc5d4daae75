// scratch/scratch.go
// The scratch package manages the tool-level temp directory for ad hoc response
// dumps. The files are best-effort debugging aids, uniquely named per write, and
// the directory may be cleared wholesale between runs.
package scratch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const dirName = "jamf_api_tool"

// Dir returns the scratch directory path without creating it.
func Dir() string {
	return filepath.Join(os.TempDir(), dirName)
}

// MakeDir ensures the scratch directory exists and returns its path.
func MakeDir() (string, error) {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// WriteJSON dumps a value as JSON to a uniquely named scratch file and returns
// the file path.
func WriteJSON(data any) (string, error) {
	dir, err := MakeDir()
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("jamf_api_tool_%s.json", uuid.NewString()))
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteText dumps text to a uniquely named scratch file and returns the file path.
func WriteText(data string) (string, error) {
	dir, err := MakeDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("jamf_api_tool_%s.txt", uuid.NewString()))
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// Clear removes the scratch directory and everything in it.
func Clear() error {
	return os.RemoveAll(Dir())
}
