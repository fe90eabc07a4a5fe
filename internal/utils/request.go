package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	appErrors "github.com/coolbreeze/storefront/internal/errors"
	"github.com/go-playground/validator/v10"
)

// MaxJSONBodyBytes caps request bodies; product images go through multipart
// uploads with their own limit.
const MaxJSONBodyBytes = 1 << 20

// DecodeJSONBody reads exactly one JSON value from the body into dest and
// maps every failure to a client error.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dest any) *appErrors.AppError {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxJSONBodyBytes))
	defer r.Body.Close()

	err := dec.Decode(dest)

	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		tooLarge  *http.MaxBytesError
	)

	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		return appErrors.BadRequestError("Invalid request body").WithDetail("request body cannot be empty")
	case errors.As(err, &tooLarge):
		return appErrors.PayloadTooLargeError(fmt.Sprintf("Request body must not exceed %d bytes", tooLarge.Limit))
	case errors.As(err, &syntaxErr):
		return appErrors.BadRequestError("Invalid request body").
			WithDetail(fmt.Sprintf("malformed JSON at offset %d", syntaxErr.Offset)).WithError(err)
	case errors.As(err, &typeErr):
		return appErrors.BadRequestError("Invalid request body").
			WithDetail(fmt.Sprintf("field %q must be %s", typeErr.Field, typeErr.Type)).WithError(err)
	default:
		return appErrors.BadRequestError("Invalid request body").WithDetail(err.Error()).WithError(err)
	}

	if dec.More() {
		return appErrors.BadRequestError("Invalid request body").WithDetail("body must contain a single JSON object")
	}

	return nil
}

// ValidateStruct runs the struct tags; the returned error wraps
// validator.ValidationErrors when the input itself is at fault.
func ValidateStruct(validate *validator.Validate, data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return fmt.Errorf("validation error: %w", validationErrs)
	}

	return fmt.Errorf("unexpected validation error: %w", err)
}
