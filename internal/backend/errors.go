package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotFound matches any APIError carrying a 404 status
var ErrNotFound = errors.New("backend: resource not found")

// APIError is returned for every non-2xx backend response
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Code       string
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("backend %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, msg)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// IsNotFound reports whether err is, or wraps, a backend 404
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsClientError reports whether the backend refused the request itself
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

type errorEnvelope struct {
	Error   json.RawMessage `json:"error"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newAPIError(method, path string, status int, body []byte) *APIError {
	apiErr := &APIError{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Body:       strings.TrimSpace(string(body)),
	}

	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return apiErr
	}

	apiErr.Code = envelope.Code
	apiErr.Message = envelope.Message

	if len(envelope.Error) > 0 {
		var detail errorDetail
		var text string
		switch {
		case json.Unmarshal(envelope.Error, &detail) == nil:
			if detail.Code != "" {
				apiErr.Code = detail.Code
			}
			if detail.Message != "" {
				apiErr.Message = detail.Message
			}
		case json.Unmarshal(envelope.Error, &text) == nil && apiErr.Message == "":
			apiErr.Message = text
		}
	}

	return apiErr
}
