package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/models"
	"github.com/coolbreeze/storefront/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey uuid.UUID

var UserContextKey = contextKey(uuid.New())

// clockSkew tolerates small drift between the API hosts that sign and verify.
const clockSkew = 30 * time.Second

type AuthMiddleware struct {
	jwtKey []byte
	parser *jwt.Parser
}

func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {
	return &AuthMiddleware{
		jwtKey: jwtKey,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(clockSkew),
		),
	}
}

// ClaimsFromContext returns the claims set by Authenticate.
func ClaimsFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(UserContextKey).(*models.Claims)

	return claims, ok && claims != nil
}

// bearerToken reads the token from the Authorization header. Browsers cannot
// set headers on an EventSource, so event-stream GETs may pass it as the
// access_token query parameter instead.
func bearerToken(r *http.Request) (string, *errors.AppError) {
	header := r.Header.Get("Authorization")

	if header == "" {
		if r.Method == http.MethodGet && strings.Contains(r.Header.Get("Accept"), "text/event-stream") {
			if token := r.URL.Query().Get("access_token"); token != "" {
				return token, nil
			}
		}

		return "", errors.UnauthorizedError("Authorization header is required")
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return "", errors.UnauthorizedError("Invalid authorization format")
	}

	return strings.TrimSpace(token), nil
}

func (m *AuthMiddleware) verify(token string) (*models.Claims, error) {
	claims := &models.Claims{}

	if _, err := m.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.jwtKey, nil
	}); err != nil {
		return nil, err
	}

	if claims.UserID == uuid.Nil {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := LoggerFromContext(r.Context())

		token, appErr := bearerToken(r)
		if appErr != nil {
			logger.Warn("Rejected unauthenticated request", slog.String("reason", appErr.Message))
			response.Error(w, appErr)

			return
		}

		claims, err := m.verify(token)
		if err != nil {
			logger.Warn("Token verification failed", slog.String("error", err.Error()))
			response.Error(w, errors.UnauthorizedError("Invalid or expired token"))

			return
		}

		scoped := logger.With(slog.String("userId", claims.UserID.String()), slog.String("role", string(claims.Role)))

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		ctx = context.WithValue(ctx, LoggerKey, scoped)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// RequireAdmin rejects requests whose claims do not carry the admin role.
// It must run after Authenticate.
func RequireAdmin(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		if !claims.IsAdmin() {
			LoggerFromContext(r.Context()).Warn("Admin access denied")
			response.Error(w, errors.ForbiddenError("Admin access required"))

			return
		}

		next.ServeHTTP(w, r)
	}
}
