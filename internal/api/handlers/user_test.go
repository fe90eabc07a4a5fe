package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coolbreeze/storefront/internal/api/handlers"
	appErrors "github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/models"
	"github.com/coolbreeze/storefront/internal/services/mocks"
	"github.com/coolbreeze/storefront/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(b)
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("Success - User Registration", func(t *testing.T) {
		svc := mocks.NewUserService(t)
		h := handlers.NewUserHandler(svc)
		body := &models.RegisterRequest{Name: "Asha Rao", Email: "asha@example.com", Password: "Cool!Breeze2025"}
		created := &models.User{ID: uuid.New(), Name: body.Name, Email: body.Email, Role: models.RoleCustomer}

		svc.On("Register", mock.Anything, mock.MatchedBy(func(r *models.RegisterRequest) bool {
			return r.Email == body.Email && r.Name == body.Name
		})).Return(created, nil).Once()

		rr := httptest.NewRecorder()
		h.Register()(rr, testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/register", jsonBody(t, body), nil))

		assert.Equal(t, http.StatusCreated, rr.Code)

		var user models.User
		resp := testutils.DecodeResponse(t, rr, &user)
		assert.True(t, resp.Success)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("Failure - Validation", func(t *testing.T) {
		h := handlers.NewUserHandler(mocks.NewUserService(t))

		rr := httptest.NewRecorder()
		h.Register()(rr, testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/register",
			jsonBody(t, map[string]string{"email": "not-an-email"}), nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.False(t, testutils.DecodeResponse(t, rr, nil).Success)
	})

	t.Run("Failure - Weak password", func(t *testing.T) {
		svc := mocks.NewUserService(t)
		h := handlers.NewUserHandler(svc)

		svc.On("Register", mock.Anything, mock.Anything).
			Return(nil, appErrors.ValidationError("Password is too weak").WithDetail("password strength is weak")).Once()

		rr := httptest.NewRecorder()
		h.Register()(rr, testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/register",
			jsonBody(t, &models.RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "abcdefgh"}), nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		resp := testutils.DecodeResponse(t, rr, nil)
		assert.Equal(t, appErrors.ErrCodeValidation, resp.Error.Code)
		assert.Equal(t, []string{"password strength is weak"}, resp.Error.Details)
	})
}

func TestUserHandler_Login(t *testing.T) {
	creds := &models.LoginRequest{Email: "asha@example.com", Password: "Cool!Breeze2025"}

	tests := []struct {
		name   string
		resp   *models.LoginResponse
		status int
	}{
		{"Success", &models.LoginResponse{Success: true, Token: "jwt", ExpiresIn: 86400}, http.StatusOK},
		{"Bad credentials", &models.LoginResponse{Success: false, RemainingTries: 4}, http.StatusUnauthorized},
		{"Rate limited", &models.LoginResponse{Success: false, RetryAfter: 60}, http.StatusTooManyRequests},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewUserService(t)
			h := handlers.NewUserHandler(svc)

			svc.On("Login", mock.Anything, creds).Return(tc.resp, nil).Once()

			rr := httptest.NewRecorder()
			h.Login()(rr, testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/login", jsonBody(t, creds), nil))

			assert.Equal(t, tc.status, rr.Code)

			var got models.LoginResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, *tc.resp, got)
		})
	}
}

func TestUserHandler_PasswordStrength(t *testing.T) {
	svc := mocks.NewUserService(t)
	h := handlers.NewUserHandler(svc)

	svc.On("PasswordStrength", "hunter2hunter2").Return(models.PasswordStrength{Score: 2, Label: "fair"}).Once()

	rr := httptest.NewRecorder()
	h.PasswordStrength()(rr, testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/users/password-strength",
		jsonBody(t, &models.PasswordStrengthRequest{Password: "hunter2hunter2"}), nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var strength models.PasswordStrength
	testutils.DecodeResponse(t, rr, &strength)
	assert.Equal(t, "fair", strength.Label)
}

func TestUserHandler_Profile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewUserService(t)
		h := handlers.NewUserHandler(svc)
		userID := uuid.New()

		svc.On("GetUserByID", mock.Anything, userID).Return(&models.User{ID: userID, Name: "Asha"}, nil).Once()

		rr := httptest.NewRecorder()
		h.Profile()(rr, testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/users/profile", nil, userID, nil))

		assert.Equal(t, http.StatusOK, rr.Code)

		var user models.User
		testutils.DecodeResponse(t, rr, &user)
		assert.Equal(t, userID, user.ID)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		h := handlers.NewUserHandler(mocks.NewUserService(t))

		rr := httptest.NewRecorder()
		h.Profile()(rr, testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/users/profile", nil, nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		svc := mocks.NewUserService(t)
		h := handlers.NewUserHandler(svc)
		userID := uuid.New()

		svc.On("GetUserByID", mock.Anything, userID).Return(nil, appErrors.NotFoundError("User not found")).Once()

		rr := httptest.NewRecorder()
		h.Profile()(rr, testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/users/profile", nil, userID, nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
