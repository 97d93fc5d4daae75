// version.go
package version

import "fmt"

// AppName holds the name of the application
var AppName = "jamf-api-tool"

// Version holds the current version of the application
var Version = "1.0.0"

// GetAppName returns the name of the application
func GetAppName() string {
	return AppName
}

// GetVersion returns the current version of the application
func GetVersion() string {
	return Version
}

// GetUserAgentHeader returns the User-Agent string sent on every request.
func GetUserAgentHeader() string {
	return fmt.Sprintf("%s/%s", AppName, Version)
}
