package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/coolbreeze/storefront/internal/config"
	"github.com/coolbreeze/storefront/internal/models"
	"github.com/coolbreeze/storefront/pkg/mailer/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Mail:    config.Mail{AdminCopy: []string{"ops@coolbreeze.in"}},
		Invoice: config.Invoice{SellerName: "CoolBreeze Appliances Pvt. Ltd.", TaxRate: 0.18, SupportEmail: "support@coolbreeze.in"},
		Site:    config.Site{PublicURL: "https://coolbreeze.in"},
	}
}

func testOrder() *models.Order {
	return &models.Order{
		ID:            uuid.New(),
		OrderNumber:   "AC-20250601-ABC123",
		TotalAmount:   11800,
		PaymentMethod: models.PaymentMethodCOD,
		ContactEmail:  "asha@example.com",
		CreatedAt:     time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Items: []models.OrderItem{
			{ProductID: uuid.New(), ProductName: "Desert Cooler 70L", Quantity: 1, UnitPrice: 11800},
		},
	}
}

func proxyRequest(t *testing.T, method, path string, body any, query map[string]string) events.APIGatewayProxyRequest {
	t.Helper()

	payload, ok := body.(string)
	if !ok {
		raw, err := json.Marshal(body)
		require.NoError(t, err)

		payload = string(raw)
	}

	return events.APIGatewayProxyRequest{
		HTTPMethod:            method,
		Path:                  path,
		Body:                  payload,
		QueryStringParameters: query,
	}
}

func templateIs(name string) any {
	return mock.MatchedBy(func(req *models.EmailNotificationRequest) bool {
		return req.Metadata["template"] == name
	})
}

func TestHandle_OrderConfirmation(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		sender := mocks.NewSender(t)
		h := NewHandler(sender, testConfig())

		sender.On("Send", mock.Anything, mock.MatchedBy(func(req *models.EmailNotificationRequest) bool {
			return req.To == "asha@example.com" &&
				req.Subject == "Order AC-20250601-ABC123 confirmed" &&
				assert.ObjectsAreEqual([]string{"ops@coolbreeze.in"}, req.BCC)
		})).Return(nil).Once()

		resp, err := h.Handle(context.Background(), proxyRequest(t, http.MethodPost, "/order-confirmation",
			OrderConfirmationRequest{To: "asha@example.com", CustomerName: "Asha", Order: testOrder()}, nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)
		assert.JSONEq(t, `{"status":"sent"}`, resp.Body)
	})

	t.Run("Success - base64 body", func(t *testing.T) {
		sender := mocks.NewSender(t)
		h := NewHandler(sender, testConfig())

		sender.On("Send", mock.Anything, templateIs(models.TemplateOrderConfirmation)).Return(nil).Once()

		req := proxyRequest(t, http.MethodPost, "/order-confirmation",
			OrderConfirmationRequest{To: "asha@example.com", CustomerName: "Asha", Order: testOrder()}, nil)
		req.Body = base64.StdEncoding.EncodeToString([]byte(req.Body))
		req.IsBase64Encoded = true

		resp, err := h.Handle(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	})

	t.Run("Malformed base64 body", func(t *testing.T) {
		h := NewHandler(mocks.NewSender(t), testConfig())

		req := proxyRequest(t, http.MethodPost, "/order-confirmation", "not*base64", nil)
		req.IsBase64Encoded = true

		resp, err := h.Handle(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, resp.Body, "invalid base64 body")
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		h := NewHandler(mocks.NewSender(t), testConfig())

		resp, err := h.Handle(context.Background(), proxyRequest(t, http.MethodPost, "/order-confirmation", "{not json", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Missing recipient", func(t *testing.T) {
		h := NewHandler(mocks.NewSender(t), testConfig())

		resp, err := h.Handle(context.Background(), proxyRequest(t, http.MethodPost, "/order-confirmation",
			OrderConfirmationRequest{CustomerName: "Asha", Order: testOrder()}, nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, resp.Body, "To")
	})

	t.Run("Provider failure", func(t *testing.T) {
		sender := mocks.NewSender(t)
		h := NewHandler(sender, testConfig())

		sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp: connection refused")).Once()

		resp, err := h.Handle(context.Background(), proxyRequest(t, http.MethodPost, "/order-confirmation",
			OrderConfirmationRequest{To: "asha@example.com", CustomerName: "Asha", Order: testOrder()}, nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	})
}

func TestHandle_Warranty(t *testing.T) {
	sender := mocks.NewSender(t)
	h := NewHandler(sender, testConfig())

	warranty := &models.Warranty{
		WarrantyNumber: "WR-2025-ABC123",
		ProductName:    "Desert Cooler 70L",
		SerialNumber:   "DC70X12345",
		PurchaseDate:   time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		ExpiresAt:      time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC),
		Status:         models.WarrantyStatusActive,
	}

	sender.On("Send", mock.Anything, mock.MatchedBy(func(req *models.EmailNotificationRequest) bool {
		return req.Metadata["template"] == models.TemplateWarrantyRegistered &&
			containsAll(req.HTMLContent, "data:image/png;base64,", "https://coolbreeze.in/warranty/WR-2025-ABC123")
	})).Return(nil).Once()

	resp, err := h.Handle(context.Background(), proxyRequest(t, http.MethodPost, "/warranty",
		WarrantyRequest{To: "asha@example.com", CustomerName: "Asha", Warranty: warranty}, nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
}

func TestHandle_Complaint(t *testing.T) {
	complaint := &models.Complaint{
		TicketNumber: "CMP-20250601-ABC123",
		Category:     models.ComplaintProductDefect,
		Subject:      "Pump stopped",
		Description:  "The water pump stopped after a week of use.",
		Status:       models.ComplaintStatusOpen,
	}

	t.Run("Acknowledgement", func(t *testing.T) {
		sender := mocks.NewSender(t)
		h := NewHandler(sender, testConfig())

		sender.On("Send", mock.Anything, templateIs(models.TemplateComplaintAcknowledgement)).Return(nil).Once()

		resp, err := h.Handle(context.Background(), proxyRequest(t, http.MethodPost, "/complaint",
			ComplaintRequest{To: "asha@example.com", CustomerName: "Asha", Complaint: complaint}, nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	})

	t.Run("Resolution", func(t *testing.T) {
		sender := mocks.NewSender(t)
		h := NewHandler(sender, testConfig())
		resolved := *complaint
		resolved.Status = models.ComplaintStatusResolved

		sender.On("Send", mock.Anything, templateIs(models.TemplateComplaintResolved)).Return(nil).Once()

		resp, err := h.Handle(context.Background(), proxyRequest(t, http.MethodPost, "/complaint",
			ComplaintRequest{To: "asha@example.com", CustomerName: "Asha", Complaint: &resolved}, nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	})
}

func TestHandle_Invoice(t *testing.T) {
	t.Run("Renders without sending", func(t *testing.T) {
		h := NewHandler(mocks.NewSender(t), testConfig())

		resp, err := h.Handle(context.Background(), proxyRequest(t, http.MethodPost, "/invoice", InvoiceRequest{Order: testOrder()}, nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/html; charset=utf-8", resp.Headers["Content-Type"])
		assert.Contains(t, resp.Body, "INV-AC-20250601-ABC123")
	})

	t.Run("Sends to the order contact", func(t *testing.T) {
		sender := mocks.NewSender(t)
		h := NewHandler(sender, testConfig())

		sender.On("Send", mock.Anything, mock.MatchedBy(func(req *models.EmailNotificationRequest) bool {
			return req.To == "asha@example.com" && req.Subject == "Invoice INV-AC-20250601-ABC123"
		})).Return(nil).Once()

		resp, err := h.Handle(context.Background(), proxyRequest(t, http.MethodPost, "/invoice",
			InvoiceRequest{Order: testOrder()}, map[string]string{"send": "true"}))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestHandle_Routing(t *testing.T) {
	h := NewHandler(mocks.NewSender(t), testConfig())

	resp, err := h.Handle(context.Background(), proxyRequest(t, http.MethodPost, "/unknown", "{}", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = h.Handle(context.Background(), proxyRequest(t, http.MethodGet, "/invoice", "", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}

	return true
}
