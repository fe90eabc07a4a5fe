package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coolbreeze/storefront/internal/api/middleware"
	"github.com/coolbreeze/storefront/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var signingKey = []byte("coolbreeze-test-signing-key-0001")

type tokenOpts struct {
	userID uuid.UUID
	role   models.Role
	ttl    time.Duration
	noExp  bool
	key    []byte
	method jwt.SigningMethod
	issued time.Time
}

func signToken(t *testing.T, o tokenOpts) string {
	t.Helper()

	if o.userID == uuid.Nil {
		o.userID = uuid.New()
	}

	if o.role == "" {
		o.role = models.RoleCustomer
	}

	if o.key == nil {
		o.key = signingKey
	}

	if o.method == nil {
		o.method = jwt.SigningMethodHS256
	}

	if o.ttl == 0 {
		o.ttl = time.Hour
	}

	if o.issued.IsZero() {
		o.issued = time.Now()
	}

	claims := &models.Claims{
		UserID: o.userID,
		Email:  "asha@example.com",
		Role:   o.role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  o.userID.String(),
			IssuedAt: jwt.NewNumericDate(o.issued),
		},
	}

	if !o.noExp {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(o.ttl))
	}

	signed, err := jwt.NewWithClaims(o.method, claims).SignedString(o.key)
	require.NoError(t, err)

	return signed
}

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	return body
}

func TestAuthenticate_Accepts(t *testing.T) {
	auth := middleware.NewAuthMiddleware(signingKey)
	userID := uuid.New()

	var seen *models.Claims

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		require.True(t, ok)

		seen = claims

		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("Bearer header", func(t *testing.T) {
		seen = nil
		req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, tokenOpts{userID: userID}))

		rr := httptest.NewRecorder()
		auth.Authenticate(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		require.NotNil(t, seen)
		assert.Equal(t, userID, seen.UserID)
		assert.Equal(t, "asha@example.com", seen.Email)
	})

	t.Run("Query token on an event stream", func(t *testing.T) {
		seen = nil
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders/stream?access_token="+signToken(t, tokenOpts{userID: userID, role: models.RoleAdmin}), nil)
		req.Header.Set("Accept", "text/event-stream")

		rr := httptest.NewRecorder()
		auth.Authenticate(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		require.NotNil(t, seen)
		assert.True(t, seen.IsAdmin())
	})

	t.Run("Expired within clock skew", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, tokenOpts{ttl: -10 * time.Second}))

		rr := httptest.NewRecorder()
		auth.Authenticate(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestAuthenticate_Rejects(t *testing.T) {
	auth := middleware.NewAuthMiddleware(signingKey)

	next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("next handler must not run")
	})

	tests := []struct {
		name    string
		prepare func(t *testing.T, r *http.Request)
		message string
	}{
		{
			name:    "no header",
			prepare: func(*testing.T, *http.Request) {},
			message: "Authorization header is required",
		},
		{
			name:    "not a bearer scheme",
			prepare: func(_ *testing.T, r *http.Request) { r.Header.Set("Authorization", "Basic YWRtaW46YWRtaW4=") },
			message: "Invalid authorization format",
		},
		{
			name:    "empty bearer",
			prepare: func(_ *testing.T, r *http.Request) { r.Header.Set("Authorization", "Bearer ") },
			message: "Invalid or expired token",
		},
		{
			name:    "malformed token",
			prepare: func(_ *testing.T, r *http.Request) { r.Header.Set("Authorization", "Bearer not.a.jwt") },
			message: "Invalid or expired token",
		},
		{
			name: "foreign key",
			prepare: func(t *testing.T, r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, tokenOpts{key: []byte("some-other-key-entirely-000000")}))
			},
			message: "Invalid or expired token",
		},
		{
			name: "HS512 instead of HS256",
			prepare: func(t *testing.T, r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, tokenOpts{method: jwt.SigningMethodHS512}))
			},
			message: "Invalid or expired token",
		},
		{
			name: "expired beyond clock skew",
			prepare: func(t *testing.T, r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, tokenOpts{ttl: -time.Hour}))
			},
			message: "Invalid or expired token",
		},
		{
			name: "no expiry",
			prepare: func(t *testing.T, r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, tokenOpts{noExp: true}))
			},
			message: "Invalid or expired token",
		},
		{
			name: "issued in the future",
			prepare: func(t *testing.T, r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, tokenOpts{issued: time.Now().Add(time.Hour), ttl: 2 * time.Hour}))
			},
			message: "Invalid or expired token",
		},
		{
			name: "query token without event-stream accept",
			prepare: func(t *testing.T, r *http.Request) {
				q := r.URL.Query()
				q.Set("access_token", signToken(t, tokenOpts{}))
				r.URL.RawQuery = q.Encode()
			},
			message: "Authorization header is required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
			tc.prepare(t, req)

			rr := httptest.NewRecorder()
			auth.Authenticate(next).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)

			body := decodeError(t, rr)
			assert.False(t, body.Success)
			assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
			assert.Equal(t, tc.message, body.Error.Message)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	auth := middleware.NewAuthMiddleware(signingKey)

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	handler := auth.Authenticate(middleware.RequireAdmin(next))

	for role, want := range map[models.Role]int{
		models.RoleAdmin:    http.StatusNoContent,
		models.RoleCustomer: http.StatusForbidden,
	} {
		t.Run(string(role), func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, tokenOpts{role: role}))

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, want, rr.Code)
		})
	}

	t.Run("without Authenticate", func(t *testing.T) {
		rr := httptest.NewRecorder()
		middleware.RequireAdmin(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Authentication required", decodeError(t, rr).Error.Message)
	})
}
