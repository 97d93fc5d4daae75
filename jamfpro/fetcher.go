// jamfpro/fetcher.go
package jamfpro

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/deploymenttheory/jamf-api-tool/logger"
	"github.com/deploymenttheory/jamf-api-tool/response"
	"go.uber.org/zap"
)

// Getter is the slice of the transport client the fetcher consumes.
type Getter interface {
	Get(ctx context.Context, endpoint string, out any) (response.Response, error)
}

// Fetcher wraps the transport client with Classic API endpoint helpers.
type Fetcher struct {
	client Getter
	log    logger.Logger
}

// NewFetcher returns a Fetcher issuing requests through the given client.
func NewFetcher(client Getter, log logger.Logger) *Fetcher {
	return &Fetcher{client: client, log: log}
}

// ListComputers returns the id/name summary of every computer on the server.
func (f *Fetcher) ListComputers(ctx context.Context) ([]ComputerSummary, error) {
	var wrapper computerListWrapper
	if _, err := f.client.Get(ctx, "/JSSResource/computers", &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Computers, nil
}

// GetComputer returns the full inventory record for one computer id.
func (f *Fetcher) GetComputer(ctx context.Context, id int) (*Computer, error) {
	var wrapper computerWrapper
	endpoint := fmt.Sprintf("/JSSResource/computers/id/%d", id)
	if _, err := f.client.Get(ctx, endpoint, &wrapper); err != nil {
		return nil, err
	}
	return &wrapper.Computer, nil
}

// ListPolicies returns the id/name summary of every policy on the server.
func (f *Fetcher) ListPolicies(ctx context.Context) ([]PolicySummary, error) {
	var wrapper policyListWrapper
	if _, err := f.client.Get(ctx, "/JSSResource/policies", &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Policies, nil
}

// GetPolicy returns the full record for one policy id.
func (f *Fetcher) GetPolicy(ctx context.Context, id int) (*Policy, error) {
	var wrapper policyWrapper
	endpoint := fmt.Sprintf("/JSSResource/policies/id/%d", id)
	if _, err := f.client.Get(ctx, endpoint, &wrapper); err != nil {
		return nil, err
	}
	return &wrapper.Policy, nil
}

// GetPolicyIDByName resolves a policy name to its id. A missing policy is not an
// error: the boolean reports whether a match was found.
func (f *Fetcher) GetPolicyIDByName(ctx context.Context, name string) (int, bool, error) {
	var wrapper policyWrapper
	endpoint := "/JSSResource/policies/name/" + url.PathEscape(name)
	if _, err := f.client.Get(ctx, endpoint, &wrapper); err != nil {
		if isNotFound(err) {
			f.log.Debug("Policy name not found on server", zap.String("name", name))
			return 0, false, nil
		}
		return 0, false, err
	}
	return wrapper.Policy.General.ID, true, nil
}

// ListCategories returns every policy category on the server.
func (f *Fetcher) ListCategories(ctx context.Context) ([]Category, error) {
	var wrapper categoryListWrapper
	if _, err := f.client.Get(ctx, "/JSSResource/categories", &wrapper); err != nil {
		return nil, err
	}
	return wrapper.Categories, nil
}

// ListPoliciesInCategory returns the policies assigned to a category, by category
// name. An unknown category yields an empty result, not an error.
func (f *Fetcher) ListPoliciesInCategory(ctx context.Context, category string) ([]PolicySummary, error) {
	var wrapper policyListWrapper
	endpoint := "/JSSResource/policies/category/" + url.PathEscape(category)
	if _, err := f.client.Get(ctx, endpoint, &wrapper); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return wrapper.Policies, nil
}

// isNotFound reports whether the error is a structured API error with a 404 status.
func isNotFound(err error) bool {
	var apiErr *response.APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
