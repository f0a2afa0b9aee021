package obs

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hashicorp-forge/obsmeta/pkg/document"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	Method     string
	Route      string
	StatusCode int

	// Code and Summary come from the service's <status> error document,
	// when the body carries one.
	Code    string
	Summary string
}

func (e *APIError) Error() string {
	summary := e.Summary
	if summary == "" {
		summary = http.StatusText(e.StatusCode)
	}
	if e.Code != "" {
		return fmt.Sprintf("%s %s: status %d (%s): %s", e.Method, e.Route, e.StatusCode, e.Code, summary)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Route, e.StatusCode, summary)
}

// status is the error document the build service returns, e.g.
//
//	<status code="unknown_project"><summary>Project not found: home:bob</summary></status>
type status struct {
	Code    string
	Summary string
}

var statusSchema = document.NewSchema("status",
	document.Attr("code", func(s *status) *string { return &s.Code }),
	document.TextOrEmpty("summary", func(s *status) *string { return &s.Summary }),
)

func newAPIError(method, route string, statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		Method:     method,
		Route:      route,
		StatusCode: statusCode,
	}
	if st, err := statusSchema.Unmarshal(body); err == nil {
		apiErr.Code = st.Code
		apiErr.Summary = st.Summary
	}
	return apiErr
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized reports whether err is an APIError with status 401 or 403.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized) || hasStatus(err, http.StatusForbidden)
}

// IsConflict reports whether err is an APIError with status 409.
func IsConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}

func hasStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}
