package utils

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	appErrors "github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {
	if appErr := DecodeJSONBody(w, r, dest); appErr != nil {
		slog.Warn("Rejected request body", slog.String("endpoint", r.URL.Path), slog.String("detail", appErr.Detail))
		response.Error(w, appErr)

		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			slog.Warn("Request validation failed", slog.String("endpoint", r.URL.Path), slog.Int("fields", len(validationErrs)))
			response.ValidationError(w, validationErrs)

			return false
		}

		slog.Error("Unexpected validation error", slog.String("error", err.Error()))
		response.Error(w, appErrors.ValidationError("Invalid input data"))

		return false
	}

	return true
}

// ParseID reads a UUID path value.
func ParseID(r *http.Request, name string) (uuid.UUID, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return uuid.Nil, appErrors.BadRequestError("Missing " + name)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, appErrors.BadRequestError("Invalid " + name + " format").WithError(err)
	}

	return id, nil
}

// ParsePagination reads ?page= and ?pageSize=, falling back to defaults
// for missing or out-of-range values.
func ParsePagination(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	pageSize, err := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err != nil || pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	return page, pageSize
}

// NormalizePage clamps page and size for the service layer.
func NormalizePage(page, size int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}

	if size < 1 || size > MaxPageSize {
		size = DefaultPageSize
	}

	return page, size
}

// ShortCode returns n upper-case hex characters from a fresh UUID.
func ShortCode(n int) string {
	code := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(code) {
		n = len(code)
	}

	return strings.ToUpper(code[:n])
}
