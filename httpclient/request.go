// httpclient/request.go
package httpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/deploymenttheory/jamf-api-tool/response"
	"go.uber.org/zap"
)

// DoRequest constructs and executes a single HTTP request against the configured
// Jamf Pro instance and returns the fully-read response as an immutable value.
// The endpoint is a path relative to the client's base URL. Requests to the modern
// API acquire a bearer token on first use; Classic API requests authenticate with
// the client's Basic credentials. Retry governance is deliberately not handled
// here: callers that need it (the delete protocol) own their own retry policy.
func (c *Client) DoRequest(ctx context.Context, method, endpoint string, body []byte) (response.Response, error) {
	log := c.Logger

	if isModernAPIPath(endpoint) && !isTokenPath(endpoint) && c.token == "" {
		if err := c.acquireToken(ctx); err != nil {
			return response.Response{}, err
		}
	}

	url := c.BaseURL + endpoint

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return response.Response{}, err
	}
	c.setRequestHeaders(req, method, endpoint)

	if cookie := c.StickySessionCookie(); cookie != "" {
		log.Debug("Reusing sticky session", zap.String("cookie", stickySessionCookieName+"="+cookie))
	}

	startTime := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.LogError("request_error", method, url, 0, "", err, "")
		return response.Response{}, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.LogError("response_read_error", method, url, resp.StatusCode, resp.Status, err, "")
		return response.Response{}, err
	}

	log.LogRequestEnd("request_end", method, url, resp.StatusCode, time.Since(startTime))

	return response.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header.Clone(),
		Body:       bodyBytes,
	}, nil
}

// Get issues a GET request against the endpoint and decodes a success response into out.
// A non-2xx status is returned as a structured *response.APIError.
func (c *Client) Get(ctx context.Context, endpoint string, out any) (response.Response, error) {
	resp, err := c.DoRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return resp, err
	}
	if !resp.IsSuccess() {
		return resp, response.NewAPIError(resp, http.MethodGet, c.BaseURL+endpoint)
	}
	if out != nil {
		if err := resp.Decode(out); err != nil {
			return resp, c.Logger.Error("Failed to decode response body",
				zap.String("endpoint", endpoint), zap.Error(err))
		}
	}
	return resp, nil
}

// Delete issues a DELETE request against the endpoint. Status interpretation is the
// caller's concern: the delete protocol distinguishes conflict and permission
// failures from transient errors, so no error is synthesized here.
func (c *Client) Delete(ctx context.Context, endpoint string) (response.Response, error) {
	return c.DoRequest(ctx, http.MethodDelete, endpoint, nil)
}
