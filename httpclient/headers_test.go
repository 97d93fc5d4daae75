// httpclient/headers_test.go
package httpclient

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectContentTypeHeader(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		endpoint string
		want     string
	}{
		{name: "get has no content type", method: http.MethodGet, endpoint: "/JSSResource/computers", want: ""},
		{name: "delete has no content type", method: http.MethodDelete, endpoint: "/JSSResource/policies/id/1", want: ""},
		{name: "classic post is xml", method: http.MethodPost, endpoint: "/JSSResource/policies/id/0", want: "application/xml"},
		{name: "classic put is xml", method: http.MethodPut, endpoint: "/JSSResource/computers/id/1", want: "application/xml"},
		{name: "modern post is json", method: http.MethodPost, endpoint: "/uapi/auth/tokens", want: "application/json"},
		{name: "api prefix post is json", method: http.MethodPost, endpoint: "/api/v1/computers-inventory", want: "application/json"},
		{name: "file upload is multipart", method: http.MethodPost, endpoint: "/JSSResource/fileuploads/computers/id/1", want: "multipart/form-data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectContentTypeHeader(tt.method, tt.endpoint))
		})
	}
}

func TestSelectAcceptHeader(t *testing.T) {
	assert.Equal(t, "application/json", SelectAcceptHeader(http.MethodGet))
	assert.Equal(t, "application/json", SelectAcceptHeader(http.MethodDelete))
	assert.Equal(t, "", SelectAcceptHeader(http.MethodPost))
	assert.Equal(t, "", SelectAcceptHeader(http.MethodPut))
}

func TestIsModernAPIPath(t *testing.T) {
	assert.True(t, isModernAPIPath("/uapi/v1/computers"))
	assert.True(t, isModernAPIPath("/api/v1/computers-inventory"))
	assert.False(t, isModernAPIPath("/JSSResource/computers"))
	assert.False(t, isModernAPIPath("/JSSResource/policies/id/1"))
}

func TestIsTokenPath(t *testing.T) {
	assert.True(t, isTokenPath("/uapi/auth/tokens"))
	assert.True(t, isTokenPath("/api/v1/auth/token"))
	assert.False(t, isTokenPath("/uapi/v1/computers"))
}
