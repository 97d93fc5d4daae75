// httpclient/client.go
/* The httpclient package provides a configurable HTTP client tailored for interacting
with a Jamf Pro server. It selects the authorization scheme per endpoint family
(Basic credentials for the Classic API, a bearer token for the Jamf Pro API), selects
Accept/Content-Type headers by method and path, and maintains load-balancer sticky
sessions through an in-memory cookie jar owned by the client instance. */
package httpclient

import (
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/deploymenttheory/jamf-api-tool/logger"
	"go.uber.org/zap"
)

// defaultTimeout bounds each request; Jamf policy deletion is slow to propagate
// but individual calls still return promptly.
const defaultTimeout = 60 * time.Second

// Client represents an HTTP client to interact with a Jamf Pro instance.
type Client struct {
	BaseURL            string // Jamf Pro server URL without a trailing slash
	EncodedCredentials string // base64-encoded user:password for Basic auth
	Logger             logger.Logger

	http  *http.Client
	token string // bearer token for the Jamf Pro API, acquired lazily
}

// ClientConfig holds configuration options for the HTTP Client.
type ClientConfig struct {
	BaseURL            string
	EncodedCredentials string
	CustomTimeout      time.Duration
}

// BuildClient creates a new HTTP client with the provided configuration. The cookie
// jar is always enabled: the Jamf cloud load balancer pins a session to a backend
// node via the APBALANCEID cookie, and replaying it keeps all requests of a run on
// the same node.
func BuildClient(config ClientConfig, log logger.Logger) (*Client, error) {
	timeout := config.CustomTimeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, log.Error("Failed to create cookie jar", zap.Error(err))
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Jar:     jar,
	}

	log.Debug("New API client initialized",
		zap.String("base_url", config.BaseURL),
		zap.Duration("timeout", timeout),
	)

	return &Client{
		BaseURL:            config.BaseURL,
		EncodedCredentials: config.EncodedCredentials,
		Logger:             log,
		http:               httpClient,
	}, nil
}

// StickySessionCookie returns the value of the load-balancer session cookie held by
// the client's jar for its base URL, or an empty string when no session exists yet.
func (c *Client) StickySessionCookie() string {
	req, err := http.NewRequest(http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return ""
	}
	for _, cookie := range c.http.Jar.Cookies(req.URL) {
		if cookie.Name == stickySessionCookieName {
			return cookie.Value
		}
	}
	return ""
}
