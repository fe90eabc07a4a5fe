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

func TestCartHandler_GetCart(t *testing.T) {
	svc := mocks.NewCartService(t)
	h := handlers.NewCartHandler(svc)
	userID := uuid.New()

	svc.On("GetCart", mock.Anything, userID).Return(&models.Cart{UserID: userID, Items: map[string]models.CartItem{}}, nil).Once()

	rr := httptest.NewRecorder()
	h.GetCart()(rr, testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/carts", nil, userID, nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var cart models.Cart
	testutils.DecodeResponse(t, rr, &cart)
	assert.Equal(t, userID, cart.UserID)
}

func TestCartHandler_AddItem(t *testing.T) {
	productID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		h := handlers.NewCartHandler(svc)
		userID := uuid.New()
		req := &models.AddItemRequest{ProductID: productID, Quantity: 2}

		svc.On("AddItem", mock.Anything, userID, req).Return(&models.Cart{UserID: userID, Total: 23600}, nil).Once()

		rr := httptest.NewRecorder()
		h.AddItem()(rr, testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/carts/items", jsonBody(t, req), userID, nil))

		assert.Equal(t, http.StatusOK, rr.Code)

		var cart models.Cart
		testutils.DecodeResponse(t, rr, &cart)
		assert.InDelta(t, 23600, cart.Total, 0.001)
	})

	t.Run("Failure - Insufficient stock", func(t *testing.T) {
		svc := mocks.NewCartService(t)
		h := handlers.NewCartHandler(svc)
		userID := uuid.New()

		svc.On("AddItem", mock.Anything, userID, mock.Anything).Return(nil, appErrors.BadRequestError("Insufficient stock")).Once()

		rr := httptest.NewRecorder()
		h.AddItem()(rr, testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/carts/items",
			jsonBody(t, &models.AddItemRequest{ProductID: productID, Quantity: 50}), userID, nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Quantity out of range", func(t *testing.T) {
		h := handlers.NewCartHandler(mocks.NewCartService(t))

		rr := httptest.NewRecorder()
		h.AddItem()(rr, testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/carts/items",
			jsonBody(t, &models.AddItemRequest{ProductID: productID, Quantity: 0}), uuid.New(), nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		h := handlers.NewCartHandler(mocks.NewCartService(t))

		rr := httptest.NewRecorder()
		h.AddItem()(rr, testutils.CreateTestRequestWithoutContext(http.MethodPost, "/api/v1/carts/items",
			jsonBody(t, &models.AddItemRequest{ProductID: productID, Quantity: 1}), nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	svc := mocks.NewCartService(t)
	h := handlers.NewCartHandler(svc)
	userID := uuid.New()
	req := &models.UpdateQuantityRequest{ProductID: uuid.New(), Quantity: 0}

	svc.On("UpdateQuantity", mock.Anything, userID, req).Return(&models.Cart{UserID: userID}, nil).Once()

	rr := httptest.NewRecorder()
	h.UpdateQuantity()(rr, testutils.CreateTestRequestWithContext(http.MethodPut, "/api/v1/carts/items", jsonBody(t, req), userID, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCartHandler_ClearCart(t *testing.T) {
	svc := mocks.NewCartService(t)
	h := handlers.NewCartHandler(svc)
	userID := uuid.New()

	svc.On("Clear", mock.Anything, userID).Return(nil).Once()

	rr := httptest.NewRecorder()
	h.ClearCart()(rr, testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/carts", nil, userID, nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
