package handlers_test

import (
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
)

func TestNotificationHandler_SendEmail(t *testing.T) {
	req := &models.EmailNotificationRequest{To: "asha@example.com", Subject: "Your cooler ships today", Content: "It's on the way."}

	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewNotificationService(t)
		h := handlers.NewNotificationHandler(svc)

		svc.On("SendEmail", mock.Anything, mock.MatchedBy(func(r *models.EmailNotificationRequest) bool {
			return r.To == req.To && r.Subject == req.Subject
		})).Return(&models.NotificationResponse{ID: uuid.New(), Status: models.StatusSent}, nil).Once()

		rr := httptest.NewRecorder()
		h.SendEmail()(rr, testutils.CreateAdminRequest(http.MethodPost, "/api/v1/admin/notifications/email", jsonBody(t, req), nil))

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Failure - Provider down", func(t *testing.T) {
		svc := mocks.NewNotificationService(t)
		h := handlers.NewNotificationHandler(svc)

		svc.On("SendEmail", mock.Anything, mock.Anything).Return(nil, appErrors.ThirdPartyError("Failed to send email")).Once()

		rr := httptest.NewRecorder()
		h.SendEmail()(rr, testutils.CreateAdminRequest(http.MethodPost, "/api/v1/admin/notifications/email", jsonBody(t, req), nil))

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})

	t.Run("Failure - Missing recipient", func(t *testing.T) {
		h := handlers.NewNotificationHandler(mocks.NewNotificationService(t))

		rr := httptest.NewRecorder()
		h.SendEmail()(rr, testutils.CreateAdminRequest(http.MethodPost, "/api/v1/admin/notifications/email",
			jsonBody(t, map[string]string{"subject": "x", "content": "y"}), nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestNotificationHandler_Reads(t *testing.T) {
	t.Run("GetNotification", func(t *testing.T) {
		svc := mocks.NewNotificationService(t)
		h := handlers.NewNotificationHandler(svc)
		id := uuid.New()

		svc.On("GetNotification", mock.Anything, id).Return(&models.Notification{ID: id, Status: models.StatusFailed}, nil).Once()

		rr := httptest.NewRecorder()
		h.GetNotification()(rr, testutils.CreateAdminRequest(http.MethodGet, "/api/v1/admin/notifications/"+id.String(), nil, map[string]string{"id": id.String()}))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("ListNotifications", func(t *testing.T) {
		svc := mocks.NewNotificationService(t)
		h := handlers.NewNotificationHandler(svc)

		svc.On("ListNotifications", mock.Anything, models.StatusFailed, 1, 50).Return([]*models.Notification{{}}, 1, nil).Once()

		rr := httptest.NewRecorder()
		h.ListNotifications()(rr, testutils.CreateAdminRequest(http.MethodGet, "/api/v1/admin/notifications?status=failed&pageSize=50", nil, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
