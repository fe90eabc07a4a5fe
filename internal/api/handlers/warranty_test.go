package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coolbreeze/storefront/internal/api/handlers"
	appErrors "github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/models"
	"github.com/coolbreeze/storefront/internal/services/mocks"
	"github.com/coolbreeze/storefront/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWarrantyHandler_RegisterWarranty(t *testing.T) {
	req := &models.RegisterWarrantyRequest{OrderID: uuid.New(), ProductID: uuid.New(), SerialNumber: "DC70X12345"}

	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewWarrantyService(t)
		h := handlers.NewWarrantyHandler(svc)

		svc.On("RegisterWarranty", mock.Anything, mock.Anything, req).
			Return(&models.Warranty{WarrantyNumber: "WR-2025-ABC123", Status: models.WarrantyStatusActive}, nil).Once()

		rr := httptest.NewRecorder()
		h.RegisterWarranty()(rr, testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/warranties", jsonBody(t, req), uuid.New(), nil))

		assert.Equal(t, http.StatusCreated, rr.Code)

		var got models.Warranty
		testutils.DecodeResponse(t, rr, &got)
		assert.Equal(t, "WR-2025-ABC123", got.WarrantyNumber)
	})

	t.Run("Failure - Serial with symbols", func(t *testing.T) {
		h := handlers.NewWarrantyHandler(mocks.NewWarrantyService(t))
		bad := *req
		bad.SerialNumber = "DC-70/123"

		rr := httptest.NewRecorder()
		h.RegisterWarranty()(rr, testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/warranties", jsonBody(t, &bad), uuid.New(), nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Duplicate serial", func(t *testing.T) {
		svc := mocks.NewWarrantyService(t)
		h := handlers.NewWarrantyHandler(svc)

		svc.On("RegisterWarranty", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, appErrors.DuplicateEntryError("Serial number already registered")).Once()

		rr := httptest.NewRecorder()
		h.RegisterWarranty()(rr, testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/warranties", jsonBody(t, req), uuid.New(), nil))

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestWarrantyHandler_Reads(t *testing.T) {
	t.Run("GetWarranty", func(t *testing.T) {
		svc := mocks.NewWarrantyService(t)
		h := handlers.NewWarrantyHandler(svc)
		id := uuid.New()

		svc.On("GetWarranty", mock.Anything, mock.Anything, id).Return(&models.Warranty{ID: id}, nil).Once()

		rr := httptest.NewRecorder()
		h.GetWarranty()(rr, testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/warranties/"+id.String(), nil, uuid.New(), map[string]string{"id": id.String()}))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("ListMyWarranties returns an empty array", func(t *testing.T) {
		svc := mocks.NewWarrantyService(t)
		h := handlers.NewWarrantyHandler(svc)
		userID := uuid.New()

		svc.On("ListMyWarranties", mock.Anything, userID).Return(nil, nil).Once()

		rr := httptest.NewRecorder()
		h.ListMyWarranties()(rr, testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/warranties", nil, userID, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"data":[]}`, rr.Body.String())
	})

	t.Run("LookupWarranty is public", func(t *testing.T) {
		svc := mocks.NewWarrantyService(t)
		h := handlers.NewWarrantyHandler(svc)
		expires := time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)

		svc.On("LookupWarranty", mock.Anything, "WR-2025-ABC123").Return(&models.WarrantyLookup{
			WarrantyNumber: "WR-2025-ABC123", ProductName: "Desert Cooler 70L", Status: models.WarrantyStatusActive, ExpiresAt: expires,
		}, nil).Once()

		rr := httptest.NewRecorder()
		h.LookupWarranty()(rr, testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/warranties/lookup/WR-2025-ABC123", nil,
			map[string]string{"number": "WR-2025-ABC123"}))

		assert.Equal(t, http.StatusOK, rr.Code)

		var got models.WarrantyLookup
		testutils.DecodeResponse(t, rr, &got)
		assert.Equal(t, expires, got.ExpiresAt)
	})

	t.Run("LookupWarranty unknown", func(t *testing.T) {
		svc := mocks.NewWarrantyService(t)
		h := handlers.NewWarrantyHandler(svc)

		svc.On("LookupWarranty", mock.Anything, "WR-0000-000000").Return(nil, appErrors.NotFoundError("Warranty not found")).Once()

		rr := httptest.NewRecorder()
		h.LookupWarranty()(rr, testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/warranties/lookup/WR-0000-000000", nil,
			map[string]string{"number": "WR-0000-000000"}))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestWarrantyHandler_Admin(t *testing.T) {
	t.Run("ListWarranties", func(t *testing.T) {
		svc := mocks.NewWarrantyService(t)
		h := handlers.NewWarrantyHandler(svc)

		svc.On("ListWarranties", mock.Anything, models.WarrantyStatusExpired, 3, 10).Return([]*models.Warranty{}, 21, nil).Once()

		rr := httptest.NewRecorder()
		h.ListWarranties()(rr, testutils.CreateAdminRequest(http.MethodGet, "/api/v1/admin/warranties?status=expired&page=3", nil, nil))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("VoidWarranty already void", func(t *testing.T) {
		svc := mocks.NewWarrantyService(t)
		h := handlers.NewWarrantyHandler(svc)
		id := uuid.New()

		svc.On("VoidWarranty", mock.Anything, id).Return(nil, appErrors.ConflictError("Warranty is already void")).Once()

		rr := httptest.NewRecorder()
		h.VoidWarranty()(rr, testutils.CreateAdminRequest(http.MethodPost, "/api/v1/admin/warranties/"+id.String()+"/void", nil, map[string]string{"id": id.String()}))

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}
