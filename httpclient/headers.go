// httpclient/headers.go
package httpclient

import (
	"net/http"
	"strings"

	"github.com/deploymenttheory/jamf-api-tool/version"
)

// stickySessionCookieName is the cookie set by the Jamf cloud load balancer to pin
// a session to a backend node.
const stickySessionCookieName = "APBALANCEID"

// modern-API path segments. The Jamf Pro API ("universal" API) lives under /uapi
// or /api and speaks JSON with bearer-token auth; everything else is the Classic
// API, which takes Basic auth and XML payloads.
func isModernAPIPath(endpoint string) bool {
	return strings.Contains(endpoint, "/uapi") || strings.HasPrefix(endpoint, "/api/")
}

// isTokenPath reports whether the endpoint is the token-acquisition endpoint,
// which itself authenticates with Basic credentials.
func isTokenPath(endpoint string) bool {
	return strings.Contains(endpoint, "/auth/tokens") || strings.Contains(endpoint, "/auth/token")
}

// isFileUploadPath reports whether the endpoint is a Classic API file-upload
// endpoint, which requires a multipart form body.
func isFileUploadPath(endpoint string) bool {
	return strings.Contains(endpoint, "fileuploads")
}

// SelectContentTypeHeader determines the appropriate Content-Type header for a request.
// GET and DELETE requests carry no body so no Content-Type is set. POST and PUT send
// XML for the Classic API, JSON for the modern API and multipart form data for the
// Classic file-upload endpoints.
func SelectContentTypeHeader(method, endpoint string) string {
	switch method {
	case http.MethodGet, http.MethodDelete:
		return ""
	case http.MethodPost, http.MethodPut:
		if isFileUploadPath(endpoint) {
			return "multipart/form-data"
		}
		if isModernAPIPath(endpoint) {
			return "application/json"
		}
		return "application/xml"
	default:
		return ""
	}
}

// SelectAcceptHeader returns the Accept header for a request. The Classic API
// returns XML by default but honours an explicit JSON Accept header on reads,
// which keeps response decoding uniform across both API families.
func SelectAcceptHeader(method string) string {
	if method == http.MethodGet || method == http.MethodDelete {
		return "application/json"
	}
	return ""
}

// setRequestHeaders applies the auth, Accept and Content-Type rules to a request.
func (c *Client) setRequestHeaders(req *http.Request, method, endpoint string) {
	if isModernAPIPath(endpoint) && !isTokenPath(endpoint) {
		req.Header.Set("Authorization", "Bearer "+c.token)
	} else {
		req.Header.Set("Authorization", "Basic "+c.EncodedCredentials)
	}

	req.Header.Set("User-Agent", version.GetUserAgentHeader())

	if accept := SelectAcceptHeader(method); accept != "" {
		req.Header.Set("Accept", accept)
	}
	if contentType := SelectContentTypeHeader(method, endpoint); contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
}
