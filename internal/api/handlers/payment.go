package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/coolbreeze/storefront/internal/api/middleware"
	"github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/models"
	service "github.com/coolbreeze/storefront/internal/services"
	"github.com/coolbreeze/storefront/internal/utils"
	"github.com/coolbreeze/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// Stripe webhook bodies are small; anything larger is not from Stripe.
const maxWebhookBytes = 64 << 10

type PaymentHandler struct {
	paymentService service.PaymentService
	validator      *validator.Validate
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService, validator: validator.New()}
}

// CreatePayment godoc
//
//	@Summary		Start an online payment
//	@Description	Creates a Stripe PaymentIntent for an online order and returns its client secret.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			payment	body		models.CreatePaymentRequest	true	"Order to pay"
//	@Success		201		{object}	models.PaymentResponse
//	@Failure		400		{object}	response.ErrorResponse	"Order is not an online order"
//	@Failure		403		{object}	response.ErrorResponse	"Not your order"
//	@Failure		409		{object}	response.ErrorResponse	"Order already paid or cancelled"
//	@Failure		502		{object}	response.ErrorResponse	"Stripe failure"
//	@Security		BearerAuth
//	@Router			/payments [post]
func (h *PaymentHandler) CreatePayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r, "create payment")
		if !ok {
			return
		}

		var req models.CreatePaymentRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid payment input")

			return
		}

		resp, err := h.paymentService.CreatePayment(r.Context(), claims, &req)
		if err != nil {
			logger.Error("Failed to initiate payment", slog.String("orderId", req.OrderID.String()), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Payment initiated", slog.String("paymentId", resp.Payment.ID))
		response.Success(w, http.StatusCreated, resp)
	}
}

// GetPayment godoc
//
//	@Summary		Get a payment
//	@Tags			Payments
//	@Produce		json
//	@Param			id	path		string	true	"Payment ID (Stripe PaymentIntent ID)"
//	@Success		200	{object}	models.Payment
//	@Failure		403	{object}	response.ErrorResponse
//	@Failure		404	{object}	response.ErrorResponse
//	@Security		BearerAuth
//	@Router			/payments/{id} [get]
func (h *PaymentHandler) GetPayment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r, "get payment")
		if !ok {
			return
		}

		id := r.PathValue("id")
		if id == "" {
			response.Error(w, errors.BadRequestError("Payment ID is required"))

			return
		}

		payment, err := h.paymentService.GetPaymentByID(r.Context(), claims, id)
		if err != nil {
			logger.Warn("Failed to get payment", slog.String("paymentId", id), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, payment)
	}
}

// ListPayments godoc
//
//	@Summary		List my payments
//	@Tags			Payments
//	@Produce		json
//	@Param			page		query		int	false	"Page number (default: 1)"
//	@Param			pageSize	query		int	false	"Items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Payment}
//	@Security		BearerAuth
//	@Router			/payments [get]
func (h *PaymentHandler) ListPayments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r, "list payments")
		if !ok {
			return
		}

		page, pageSize := utils.ParsePagination(r)

		payments, total, err := h.paymentService.ListPaymentsByCustomer(r.Context(), claims.UserID, page, pageSize)
		if err != nil {
			logger.Error("Failed to list payments", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.NewPage(payments, total, page, pageSize))
	}
}

// HandleStripeWebhook godoc
//
//	@Summary		Stripe webhook
//	@Description	Receives signed Stripe events and settles the matching order.
//	@Tags			Payments
//	@Accept			json
//	@Produce		json
//	@Param			Stripe-Signature	header		string	true	"Stripe signature"
//	@Success		200					{object}	map[string]bool
//	@Failure		400					{object}	response.ErrorResponse	"Missing or invalid signature"
//	@Router			/payments/webhook [post]
func (h *PaymentHandler) HandleStripeWebhook() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBytes))
		if err != nil {
			logger.Error("Error reading webhook body", slog.String("error", err.Error()))
			response.Error(w, errors.BadRequestError("Failed to read request body"))

			return
		}

		signature := r.Header.Get("Stripe-Signature")
		if signature == "" {
			logger.Warn("Missing Stripe signature")
			response.Error(w, errors.BadRequestError("Stripe signature is required"))

			return
		}

		event, err := h.paymentService.ProcessWebhook(r.Context(), payload, signature)
		if err != nil {
			logger.Error("Failed to process payment webhook", slog.String("eventId", event.ID), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Payment webhook processed", slog.String("eventId", event.ID), slog.String("type", string(event.Type)))
		response.Success(w, http.StatusOK, map[string]bool{"received": true})
	}
}

// RefundOrder godoc
//
//	@Summary		Refund an order
//	@Description	Refunds the full Stripe charge of a paid online order.
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string	true	"Order ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Order
//	@Failure		404	{object}	response.ErrorResponse
//	@Failure		409	{object}	response.ErrorResponse	"Order is not paid online"
//	@Failure		502	{object}	response.ErrorResponse	"Stripe failure"
//	@Security		BearerAuth
//	@Router			/admin/orders/{id}/refund [post]
func (h *PaymentHandler) RefundOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		order, err := h.paymentService.RefundOrder(r.Context(), id)
		if err != nil {
			logger.Error("Failed to refund order", slog.String("orderId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Order refunded", slog.String("orderId", id.String()))
		response.Success(w, http.StatusOK, order)
	}
}
