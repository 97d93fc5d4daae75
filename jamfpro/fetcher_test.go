// jamfpro/fetcher_test.go
package jamfpro

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/deploymenttheory/jamf-api-tool/mocklogger"
	"github.com/deploymenttheory/jamf-api-tool/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cannedGetter serves fixed JSON bodies keyed by endpoint and records the
// endpoints it was asked for. Unknown endpoints answer with a 404 APIError.
type cannedGetter struct {
	bodies    map[string]string
	endpoints []string
}

func (g *cannedGetter) Get(_ context.Context, endpoint string, out any) (response.Response, error) {
	g.endpoints = append(g.endpoints, endpoint)
	body, ok := g.bodies[endpoint]
	if !ok {
		resp := response.Response{StatusCode: http.StatusNotFound, Headers: http.Header{}}
		return resp, response.NewAPIError(resp, http.MethodGet, endpoint)
	}
	resp := response.Response{StatusCode: http.StatusOK, Headers: http.Header{}, Body: []byte(body)}
	if out != nil {
		if err := json.Unmarshal([]byte(body), out); err != nil {
			return resp, err
		}
	}
	return resp, nil
}

func fetcherLogger() *mocklogger.MockLogger {
	ml := mocklogger.NewMockLogger()
	ml.On("Debug", mock.Anything, mock.Anything).Maybe()
	return ml
}

func TestListComputers(t *testing.T) {
	getter := &cannedGetter{bodies: map[string]string{
		"/JSSResource/computers": `{"computers": [{"id": 1, "name": "mac-01"}, {"id": 2, "name": "mac-02"}]}`,
	}}
	f := NewFetcher(getter, fetcherLogger())

	computers, err := f.ListComputers(context.Background())

	require.NoError(t, err)
	require.Len(t, computers, 2)
	assert.Equal(t, ComputerSummary{ID: 1, Name: "mac-01"}, computers[0])
}

func TestGetComputer(t *testing.T) {
	getter := &cannedGetter{bodies: map[string]string{
		"/JSSResource/computers/id/1": `{"computer": {
			"general": {
				"id": 1,
				"name": "mac-01",
				"last_contact_time": "2024-04-29 08:15:00",
				"management_status": {"enrolled_via_dep": true}
			},
			"hardware": {"os_version": "14.4.1"}
		}}`,
	}}
	f := NewFetcher(getter, fetcherLogger())

	computer, err := f.GetComputer(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "mac-01", computer.General.Name)
	assert.Equal(t, "2024-04-29 08:15:00", computer.General.LastContactTime)
	assert.Equal(t, "14.4.1", computer.Hardware.OSVersion)
	assert.Equal(t, "true", computer.General.ManagementStatus.DEPStatus())
}

func TestGetComputerNotFoundPropagates(t *testing.T) {
	f := NewFetcher(&cannedGetter{}, fetcherLogger())

	_, err := f.GetComputer(context.Background(), 999)

	require.Error(t, err)
	var apiErr *response.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestListPolicies(t *testing.T) {
	getter := &cannedGetter{bodies: map[string]string{
		"/JSSResource/policies": `{"policies": [{"id": 7, "name": "Install Chrome"}]}`,
	}}
	f := NewFetcher(getter, fetcherLogger())

	policies, err := f.ListPolicies(context.Background())

	require.NoError(t, err)
	require.Len(t, policies, 1)
	assert.Equal(t, "Install Chrome", policies[0].Name)
}

func TestGetPolicy(t *testing.T) {
	getter := &cannedGetter{bodies: map[string]string{
		"/JSSResource/policies/id/7": `{"policy": {
			"general": {"id": 7, "name": "Install Chrome", "category": {"id": 3, "name": "Browsers"}},
			"scope": {"computer_groups": [{"id": 11, "name": "All Managed"}]},
			"package_configuration": {"packages": [{"id": 20, "name": "Chrome-124.pkg"}]}
		}}`,
	}}
	f := NewFetcher(getter, fetcherLogger())

	policy, err := f.GetPolicy(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Install Chrome", policy.General.Name)
	assert.Equal(t, "All Managed", policy.FirstGroupName())
	assert.Equal(t, "Chrome-124.pkg", policy.FirstPackageName())
}

func TestPolicyFallbackNames(t *testing.T) {
	policy := &Policy{}
	assert.Equal(t, "none", policy.FirstGroupName())
	assert.Equal(t, "none", policy.FirstPackageName())
}

func TestGetPolicyIDByName(t *testing.T) {
	getter := &cannedGetter{bodies: map[string]string{
		"/JSSResource/policies/name/Install%20Chrome": `{"policy": {"general": {"id": 7, "name": "Install Chrome"}}}`,
	}}
	f := NewFetcher(getter, fetcherLogger())

	id, found, err := f.GetPolicyIDByName(context.Background(), "Install Chrome")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 7, id)
}

func TestGetPolicyIDByNameNotFound(t *testing.T) {
	f := NewFetcher(&cannedGetter{}, fetcherLogger())

	id, found, err := f.GetPolicyIDByName(context.Background(), "Missing Policy")

	require.NoError(t, err, "a missing policy name is a report condition, not an error")
	assert.False(t, found)
	assert.Zero(t, id)
}

func TestListCategories(t *testing.T) {
	getter := &cannedGetter{bodies: map[string]string{
		"/JSSResource/categories": `{"categories": [{"id": 3, "name": "Browsers"}, {"id": 4, "name": "Utilities"}]}`,
	}}
	f := NewFetcher(getter, fetcherLogger())

	categories, err := f.ListCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Browsers", categories[0].Name)
}

func TestListPoliciesInCategory(t *testing.T) {
	getter := &cannedGetter{bodies: map[string]string{
		"/JSSResource/policies/category/Browsers": `{"policies": [{"id": 7, "name": "Install Chrome"}]}`,
	}}
	f := NewFetcher(getter, fetcherLogger())

	policies, err := f.ListPoliciesInCategory(context.Background(), "Browsers")

	require.NoError(t, err)
	require.Len(t, policies, 1)
}

func TestListPoliciesInCategoryUnknownCategory(t *testing.T) {
	f := NewFetcher(&cannedGetter{}, fetcherLogger())

	policies, err := f.ListPoliciesInCategory(context.Background(), "No Such Category")

	require.NoError(t, err)
	assert.Empty(t, policies)
}

func TestDEPStatus(t *testing.T) {
	boolPtr := func(b bool) *bool { return &b }

	assert.Equal(t, "unknown", ManagementStatus{}.DEPStatus())
	assert.Equal(t, "true", ManagementStatus{EnrolledViaDEP: boolPtr(true)}.DEPStatus())
	assert.Equal(t, "false", ManagementStatus{EnrolledViaDEP: boolPtr(false)}.DEPStatus())
}
