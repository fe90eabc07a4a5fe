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

type NotificationHandler struct {
	notificationService service.NotificationService
	validator           *validator.Validate
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		validator:           validator.New(),
	}
}

// SendEmail godoc
//
//	@Summary		Send an email
//	@Description	Sends an arbitrary email through the notification pipeline and records it.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			email	body		models.EmailNotificationRequest	true	"Email details"
//	@Success		201		{object}	models.NotificationResponse
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		502		{object}	response.ErrorResponse	"Email provider failure"
//	@Security		BearerAuth
//	@Router			/admin/notifications/email [post]
func (h *NotificationHandler) SendEmail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.EmailNotificationRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid notification input")

			return
		}

		notification, err := h.notificationService.SendEmail(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to send email notification", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Email notification sent", slog.String("notificationId", notification.ID.String()))
		response.Success(w, http.StatusCreated, notification)
	}
}

// GetNotification godoc
//
//	@Summary		Get a notification
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string	true	"Notification ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Notification
//	@Failure		404	{object}	response.ErrorResponse
//	@Security		BearerAuth
//	@Router			/admin/notifications/{id} [get]
func (h *NotificationHandler) GetNotification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		notification, err := h.notificationService.GetNotification(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get notification", slog.String("notificationId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, notification)
	}
}

// ListNotifications godoc
//
//	@Summary		List notifications
//	@Tags			Admin
//	@Produce		json
//	@Param			status		query		string	false	"pending, sent or failed"
//	@Param			page		query		int		false	"Page number (default: 1)"
//	@Param			pageSize	query		int		false	"Items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Notification}
//	@Security		BearerAuth
//	@Router			/admin/notifications [get]
func (h *NotificationHandler) ListNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())
		page, pageSize := utils.ParsePagination(r)
		status := models.NotificationStatus(r.URL.Query().Get("status"))

		notifications, total, err := h.notificationService.ListNotifications(r.Context(), status, page, pageSize)
		if err != nil {
			logger.Error("Failed to list notifications", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.NewPage(notifications, total, page, pageSize))
	}
}
