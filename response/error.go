// response/error.go
// This file provides utility functions and structures for handling and categorizing HTTP error responses.
package response

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/antchfx/xmlquery"
	"golang.org/x/net/html"
)

// APIError represents an api error response.
type APIError struct {
	StatusCode  int      `json:"status_code"` // HTTP status code
	Method      string   `json:"method"`      // HTTP method used for the request
	URL         string   `json:"url"`         // The URL of the HTTP request
	HTTPStatus  int      `json:"httpStatus,omitempty"`
	Errors      []Errors `json:"errors,omitempty"`
	Message     string   `json:"message"`           // Summary of the error
	Details     []string `json:"details,omitempty"` // Detailed error messages, if any
	RawResponse string   `json:"raw_response"`      // Raw response body for debugging
}

// Errors represents individual error details within an API error response.
type Errors struct {
	Code        string  `json:"code,omitempty"`
	Field       string  `json:"field,omitempty"`
	Description string  `json:"description,omitempty"`
	ID          *string `json:"id,omitempty"`
}

// Error returns a string representation of the APIError, making it compatible with the error interface.
func (e *APIError) Error() string {
	data, err := json.Marshal(e)
	if err == nil {
		return string(data)
	}

	if e.Message == "" {
		e.Message = http.StatusText(e.StatusCode)
	}

	return fmt.Sprintf("API Error: StatusCode=%d, Message=%s", e.StatusCode, e.Message)
}

// NewAPIError extracts a structured error from a non-success response, keyed on the
// Content-Type of the error body. Jamf Pro Classic API errors arrive as XML or HTML,
// the Jamf Pro API returns JSON.
func NewAPIError(resp Response, method, url string) *APIError {
	apiError := &APIError{
		StatusCode: resp.StatusCode,
		Method:     method,
		URL:        url,
		Message:    "API Error Response",
	}

	mimeType, _ := parseHeader(resp.Headers.Get("Content-Type"))
	switch mimeType {
	case "application/json":
		parseJSONResponse(resp.Body, apiError)
	case "application/xml", "text/xml":
		parseXMLResponse(resp.Body, apiError)
	case "text/html":
		parseHTMLResponse(resp.Body, apiError)
	case "text/plain":
		parseTextResponse(resp.Body, apiError)
	default:
		apiError.RawResponse = string(resp.Body)
		apiError.Message = http.StatusText(resp.StatusCode)
	}

	return apiError
}

// parseJSONResponse attempts to parse the JSON error response and update the APIError structure.
func parseJSONResponse(bodyBytes []byte, apiError *APIError) {
	if err := json.Unmarshal(bodyBytes, apiError); err != nil {
		apiError.RawResponse = string(bodyBytes)
	} else if apiError.Message == "" {
		apiError.Message = "An unknown error occurred"
	}
}

// parseXMLResponse dynamically parses XML error responses and accumulates potential error messages.
func parseXMLResponse(bodyBytes []byte, apiError *APIError) {
	apiError.RawResponse = string(bodyBytes)

	doc, err := xmlquery.Parse(bytes.NewReader(bodyBytes))
	if err != nil {
		return
	}

	var messages []string
	var traverse func(*xmlquery.Node)
	traverse = func(n *xmlquery.Node) {
		if n.Type == xmlquery.TextNode && strings.TrimSpace(n.Data) != "" {
			messages = append(messages, strings.TrimSpace(n.Data))
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}

	traverse(doc)

	if len(messages) > 0 {
		apiError.Message = strings.Join(messages, "; ")
	} else {
		apiError.Message = "Failed to extract error details from XML response"
	}
}

// parseTextResponse updates the APIError structure based on a plain text error response.
func parseTextResponse(bodyBytes []byte, apiError *APIError) {
	bodyText := string(bodyBytes)
	apiError.RawResponse = bodyText
	apiError.Message = bodyText
}

// parseHTMLResponse extracts meaningful information from an HTML error response,
// concatenating all text within <p> tags found in the document.
func parseHTMLResponse(bodyBytes []byte, apiError *APIError) {
	apiError.RawResponse = string(bodyBytes)

	doc, err := html.Parse(bytes.NewReader(bodyBytes))
	if err != nil {
		return
	}

	var messages []string
	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "p" {
			var pContent strings.Builder
			var traverseChildren func(*html.Node)
			traverseChildren = func(c *html.Node) {
				if c.Type == html.TextNode {
					pContent.WriteString(strings.TrimSpace(c.Data) + " ")
				}
				for child := c.FirstChild; child != nil; child = child.NextSibling {
					traverseChildren(child)
				}
			}
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				traverseChildren(child)
			}
			finalContent := strings.TrimSpace(pContent.String())
			if finalContent != "" {
				messages = append(messages, finalContent)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)

	if len(messages) > 0 {
		apiError.Message = strings.Join(messages, "; ")
	} else {
		apiError.Message = "HTML Error: See 'Raw' field for details."
	}
}
