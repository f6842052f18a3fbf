package backend

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAPIError_Bodies(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nested error object",
			body:        `{"error":{"code":"CUSTOMER_LOCKED","message":"Customer is locked"}}`,
			wantCode:    "CUSTOMER_LOCKED",
			wantMessage: "Customer is locked",
		},
		{
			name:        "error string",
			body:        `{"error":"Not allowed"}`,
			wantMessage: "Not allowed",
		},
		{
			name:        "flat message",
			body:        `{"code":"BAD","message":"Bad status"}`,
			wantCode:    "BAD",
			wantMessage: "Bad status",
		},
		{
			name: "non json body",
			body: "<html>gateway timeout</html>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newAPIError(http.MethodGet, "/customers", http.StatusBadRequest, []byte(tt.body))

			assert.Equal(t, tt.wantCode, err.Code)
			assert.Equal(t, tt.wantMessage, err.Message)
			assert.Equal(t, tt.body, err.Body)
		})
	}
}

func TestAPIError_ErrorString(t *testing.T) {
	err := newAPIError(http.MethodGet, "/accounts/a1", http.StatusServiceUnavailable, nil)
	assert.Equal(t, "backend GET /accounts/a1 returned 503: Service Unavailable", err.Error())
	assert.False(t, err.IsClientError())
}

func TestAPIError_IsNotFoundThroughWrapping(t *testing.T) {
	err := fmt.Errorf("load customer: %w", newAPIError(http.MethodGet, "/customers/x", http.StatusNotFound, nil))
	assert.True(t, errors.Is(err, ErrNotFound))
}
