package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/coolbreeze/storefront/internal/api/middleware"
	"github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/models"
	"github.com/coolbreeze/storefront/internal/utils/response"
)

// requireClaims writes a 401 and returns false when the request carries no
// authenticated user.
func requireClaims(w http.ResponseWriter, r *http.Request, action string) (*models.Claims, *slog.Logger, bool) {
	logger := middleware.LoggerFromContext(r.Context())

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		logger.Warn("Unauthorized attempt", slog.String("action", action))
		response.Error(w, errors.UnauthorizedError("Authentication required"))

		return nil, logger, false
	}

	return claims, logger.With(slog.String("userID", claims.UserID.String())), true
}

func queryInt(r *http.Request, name string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}

	return v
}
