package testutils

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coolbreeze/storefront/internal/api/middleware"
	"github.com/coolbreeze/storefront/internal/models"
	"github.com/coolbreeze/storefront/internal/utils/response"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// CreateTestRequestWithContext builds a request authenticated as a customer.
func CreateTestRequestWithContext(method, target string, body io.Reader, userID uuid.UUID, pathParams map[string]string) *http.Request {
	claims := &models.Claims{UserID: userID, Email: "test@example.com", Role: models.RoleCustomer}

	return CreateTestRequestWithClaims(method, target, body, claims, pathParams)
}

// CreateAdminRequest builds a request authenticated as an admin.
func CreateAdminRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	claims := &models.Claims{UserID: uuid.New(), Email: "admin@example.com", Role: models.RoleAdmin}

	return CreateTestRequestWithClaims(method, target, body, claims, pathParams)
}

func CreateTestRequestWithClaims(method, target string, body io.Reader, claims *models.Claims, pathParams map[string]string) *http.Request {
	req := CreateTestRequestWithoutContext(method, target, body, pathParams)
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, claims)

	return req.WithContext(ctx)
}

func CreateTestRequestWithoutContext(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.WithValue(req.Context(), middleware.LoggerKey, logger)

	return req.WithContext(ctx)
}

// DecodeResponse unmarshals the envelope and, when dest is non-nil, its data.
func DecodeResponse(t *testing.T, rr *httptest.ResponseRecorder, dest any) *response.APIResponse {
	t.Helper()

	var envelope struct {
		Success bool                    `json:"success"`
		Data    json.RawMessage         `json:"data"`
		Error   *response.ErrorResponse `json:"error"`
	}

	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope), "body: %s", rr.Body.String())

	if dest != nil && len(envelope.Data) > 0 {
		require.NoError(t, json.Unmarshal(envelope.Data, dest))
	}

	return &response.APIResponse{Success: envelope.Success, Error: envelope.Error}
}
