package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/coolbreeze/storefront/internal/errors"
	"github.com/go-playground/validator/v10"
)

type APIResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	_ = WriteJson(w, statusCode, APIResponse{Success: true, Data: data})
}

// HTML writes a rendered document, used for invoices.
func HTML(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(body))
}

// Error maps err onto the envelope. Anything that is not an AppError is
// reported as a generic 500 so internals never leak to clients.
func Error(w http.ResponseWriter, err error) {
	appErr, ok := errors.IsAppError(err)
	if !ok {
		_ = WriteJson(w, http.StatusInternalServerError, APIResponse{
			Error: &ErrorResponse{Code: errors.ErrCodeInternal, Message: "An unexpected error occurred"},
		})

		return
	}

	body := &ErrorResponse{Code: appErr.Code, Message: appErr.Message}
	if appErr.Detail != "" {
		body.Details = []string{appErr.Detail}
	}

	_ = WriteJson(w, appErr.StatusCode, APIResponse{Error: body})
}

// ValidationError sends one message per failed field.
func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {
	details := make([]string, 0, len(errs))
	for _, fe := range errs {
		details = append(details, fieldMessage(fe))
	}

	_ = WriteJson(w, http.StatusBadRequest, APIResponse{
		Success: false,
		Error: &ErrorResponse{
			Code:    errors.ErrCodeValidation,
			Message: "Validation failed",
			Details: details,
		},
	})
}

var tagMessages = map[string]string{
	"required":         "Field %s is required",
	"email":            "Field %s must be a valid email address",
	"min":              "Field %s must be at least %s",
	"max":              "Field %s must be at most %s",
	"gt":               "Field %s must be greater than %s",
	"gte":              "Field %s must be greater than or equal to %s",
	"lt":               "Field %s must be less than %s",
	"lte":              "Field %s must be less than or equal to %s",
	"oneof":            "Field %s must be one of [%s]",
	"alphanumunicode":  "Field %s may only contain letters and digits",
	"iso3166_1_alpha2": "Field %s must be a two-letter country code",
	"e164":             "Field %s must be a phone number in international format",
	"url":              "Field %s must be a valid URL",
}

func fieldMessage(fe validator.FieldError) string {
	format, ok := tagMessages[fe.Tag()]
	if !ok {
		return fmt.Sprintf("Field %s is invalid: %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}

	if strings.Count(format, "%s") == 1 {
		return fmt.Sprintf(format, fe.Field())
	}

	return fmt.Sprintf(format, fe.Field(), fe.Param())
}
