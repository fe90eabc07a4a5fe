package handlers

import (
	"log/slog"
	"net/http"

	"github.com/coolbreeze/storefront/internal/api/middleware"
	"github.com/coolbreeze/storefront/internal/models"
	service "github.com/coolbreeze/storefront/internal/services"
	"github.com/coolbreeze/storefront/internal/utils"
	"github.com/coolbreeze/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: validator.New()}
}

// Register godoc
//
//	@Summary		Register a new customer
//	@Description	Creates a customer account. Weak passwords are rejected.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			user	body		models.RegisterRequest	true	"User Registration Details"
//	@Success		201		{object}	models.User				"User successfully registered"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error or weak password"
//	@Failure		409		{object}	response.ErrorResponse	"Email already registered"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Router			/users/register [post]
func (h *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid registration input")

			return
		}

		user, err := h.userService.Register(r.Context(), &req)
		if err != nil {
			logger.Error("User registration failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("User registered", slog.String("userId", user.ID.String()))
		response.Success(w, http.StatusCreated, user)
	}
}

// Login godoc
//
//	@Summary		Log in
//	@Description	Exchanges credentials for a JWT. Repeated failures are rate limited per email.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		models.LoginRequest		true	"User Credentials"
//	@Success		200			{object}	models.LoginResponse	"Login successful"
//	@Failure		401			{object}	models.LoginResponse	"Invalid credentials"
//	@Failure		429			{object}	models.LoginResponse	"Too many attempts"
//	@Failure		500			{object}	response.ErrorResponse	"Internal server error"
//	@Router			/users/login [post]
func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid login input")

			return
		}

		resp, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			logger.Error("Login failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		if !resp.Success {
			status := http.StatusUnauthorized
			if resp.RetryAfter > 0 {
				status = http.StatusTooManyRequests
			}

			logger.Warn("Login rejected", slog.Int("remainingTries", resp.RemainingTries), slog.Int("retryAfter", resp.RetryAfter))
			_ = response.WriteJson(w, status, resp)

			return
		}

		logger.Info("User logged in")
		_ = response.WriteJson(w, http.StatusOK, resp)
	}
}

// PasswordStrength godoc
//
//	@Summary		Score a password
//	@Description	Returns a 0-4 strength score with suggestions, for the registration form meter.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			password	body		models.PasswordStrengthRequest	true	"Password to score"
//	@Success		200			{object}	models.PasswordStrength
//	@Failure		400			{object}	response.ErrorResponse
//	@Router			/users/password-strength [post]
func (h *UserHandler) PasswordStrength() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.PasswordStrengthRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		response.Success(w, http.StatusOK, h.userService.PasswordStrength(req.Password))
	}
}

// Profile godoc
//
//	@Summary		Get current user profile
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	models.User				"User profile"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"User not found"
//	@Security		BearerAuth
//	@Router			/users/profile [get]
func (h *UserHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r, "profile")
		if !ok {
			return
		}

		user, err := h.userService.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			logger.Warn("Failed to load profile", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Debug("User profile accessed")
		response.Success(w, http.StatusOK, user)
	}
}
