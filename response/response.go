// response/response.go
// The response package carries the immutable value type returned by the transport
// layer together with helpers for decoding and status interpretation.
package response

import (
	"encoding/json"
	"encoding/xml"
	"net/http"
	"strings"
)

// Response is the immutable result of a single HTTP request: status code, headers
// and the fully-read body. It is constructed in one step by the transport layer
// and never mutated afterwards.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// IsSuccess reports whether the response carries a 2xx status code.
func (r Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// ContentType returns the MIME type of the response body without parameters.
func (r Response) ContentType() string {
	mimeType, _ := parseHeader(r.Headers.Get("Content-Type"))
	return mimeType
}

// DecodeJSON unmarshals the response body as JSON into the provided output structure.
func (r Response) DecodeJSON(out any) error {
	return json.Unmarshal(r.Body, out)
}

// DecodeXML unmarshals the response body as XML into the provided output structure.
func (r Response) DecodeXML(out any) error {
	return xml.Unmarshal(r.Body, out)
}

// Decode unmarshals the response body into out based on the Content-Type header.
// JSON is the default when the server does not declare a usable MIME type, which
// matches the Accept header the transport sends on GET and DELETE requests.
func (r Response) Decode(out any) error {
	switch {
	case strings.Contains(r.ContentType(), "xml"):
		return r.DecodeXML(out)
	default:
		return r.DecodeJSON(out)
	}
}
