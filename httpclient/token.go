// httpclient/token.go
package httpclient

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// tokenEndpoint is the endpoint used to obtain a bearer token for the modern API.
const tokenEndpoint = "/uapi/auth/tokens"

// tokenResponse is the payload returned by the token endpoint.
type tokenResponse struct {
	Token string `json:"token"`
}

// acquireToken fetches a bearer token for the modern API using the stored Basic
// credentials. The token is held for the lifetime of the client; the tool is a
// single-pass batch process, so token refresh is not needed.
func (c *Client) acquireToken(ctx context.Context) error {
	log := c.Logger

	resp, err := c.DoRequest(ctx, http.MethodPost, tokenEndpoint, nil)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		log.LogError("token_authentication_failed", http.MethodPost, c.BaseURL+tokenEndpoint,
			resp.StatusCode, http.StatusText(resp.StatusCode),
			fmt.Errorf("authentication failed with status code: %d", resp.StatusCode),
			string(resp.Body))
		return fmt.Errorf("received non-OK response status: %d", resp.StatusCode)
	}

	tokenResp := &tokenResponse{}
	if err := resp.DecodeJSON(tokenResp); err != nil {
		return log.Error("Failed to decode token response", zap.Error(err))
	}
	if tokenResp.Token == "" {
		return log.Error("No token received from token endpoint")
	}

	c.token = tokenResp.Token
	log.Info("Session token received")

	return nil
}
