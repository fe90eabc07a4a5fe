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

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

// CreateOrder godoc
//
//	@Summary		Check out the cart
//	@Description	Places an order from the current cart, reserving stock and emailing a confirmation.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		models.CreateOrderRequest	true	"Shipping and payment details"
//	@Success		201		{object}	models.Order
//	@Failure		400		{object}	response.ErrorResponse	"Validation error, empty cart, or insufficient stock"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		500		{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/orders [post]
func (h *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r, "create order")
		if !ok {
			return
		}

		var req models.CreateOrderRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid create order input")

			return
		}

		order, err := h.orderService.CreateOrder(r.Context(), claims, &req)
		if err != nil {
			logger.Error("Failed to create order", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Order created", slog.String("orderId", order.ID.String()), slog.String("orderNumber", order.OrderNumber))
		response.Success(w, http.StatusCreated, order)
	}
}

// GetOrder godoc
//
//	@Summary		Get an order
//	@Tags			Orders
//	@Produce		json
//	@Param			id	path		string	true	"Order ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Order
//	@Failure		400	{object}	response.ErrorResponse	"Invalid order ID format"
//	@Failure		403	{object}	response.ErrorResponse	"Not your order"
//	@Failure		404	{object}	response.ErrorResponse	"Order not found"
//	@Security		BearerAuth
//	@Router			/orders/{id} [get]
func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r, "get order")
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		order, err := h.orderService.GetOrder(r.Context(), claims, id)
		if err != nil {
			logger.Warn("Failed to get order", slog.String("orderId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

// ListOrders godoc
//
//	@Summary		List my orders
//	@Tags			Orders
//	@Produce		json
//	@Param			page		query		int	false	"Page number (default: 1)"				minimum(1)
//	@Param			pageSize	query		int	false	"Items per page (default: 10, max: 100)"	minimum(1)	maximum(100)
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Order}
//	@Failure		401			{object}	response.ErrorResponse
//	@Security		BearerAuth
//	@Router			/orders [get]
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r, "list orders")
		if !ok {
			return
		}

		page, pageSize := utils.ParsePagination(r)

		orders, total, err := h.orderService.ListOrders(r.Context(), claims.UserID, page, pageSize)
		if err != nil {
			logger.Error("Failed to list orders", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.NewPage(orders, total, page, pageSize))
	}
}

// Invoice godoc
//
//	@Summary		Get an order invoice
//	@Description	Renders the GST tax invoice as HTML, or as JSON with ?format=json.
//	@Tags			Orders
//	@Produce		html
//	@Produce		json
//	@Param			id		path		string	true	"Order ID (UUID)"	Format(uuid)
//	@Param			format	query		string	false	"html (default) or json"
//	@Success		200		{object}	models.Invoice
//	@Failure		403		{object}	response.ErrorResponse
//	@Failure		404		{object}	response.ErrorResponse
//	@Security		BearerAuth
//	@Router			/orders/{id}/invoice [get]
func (h *OrderHandler) Invoice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r, "get invoice")
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		invoice, rendered, err := h.orderService.Invoice(r.Context(), claims, id)
		if err != nil {
			logger.Warn("Failed to render invoice", slog.String("orderId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		if r.URL.Query().Get("format") == "json" {
			response.Success(w, http.StatusOK, invoice)

			return
		}

		response.HTML(w, http.StatusOK, rendered.HTML)
	}
}

// ListAllOrders godoc
//
//	@Summary		List all orders
//	@Tags			Admin
//	@Produce		json
//	@Param			status		query		string	false	"Filter by order status"
//	@Param			page		query		int		false	"Page number (default: 1)"
//	@Param			pageSize	query		int		false	"Items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Order}
//	@Failure		403			{object}	response.ErrorResponse
//	@Security		BearerAuth
//	@Router			/admin/orders [get]
func (h *OrderHandler) ListAllOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())
		page, pageSize := utils.ParsePagination(r)
		status := models.OrderStatus(r.URL.Query().Get("status"))

		orders, total, err := h.orderService.ListAllOrders(r.Context(), status, page, pageSize)
		if err != nil {
			logger.Error("Failed to list orders", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.NewPage(orders, total, page, pageSize))
	}
}

// UpdateOrderStatus godoc
//
//	@Summary		Update order status
//	@Description	Moves an order along pending, confirmed, shipping, delivered. Cancelling restocks the items.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Order ID (UUID)"	Format(uuid)
//	@Param			status	body		models.UpdateOrderStatusRequest	true	"New order status"
//	@Success		200		{object}	models.Order
//	@Failure		400		{object}	response.ErrorResponse	"Invalid order ID or status"
//	@Failure		404		{object}	response.ErrorResponse	"Order not found"
//	@Failure		409		{object}	response.ErrorResponse	"Illegal status transition"
//	@Security		BearerAuth
//	@Router			/admin/orders/{id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid order id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger = logger.With(slog.String("orderId", id.String()))

		var req models.UpdateOrderStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update order status input")

			return
		}

		order, err := h.orderService.UpdateOrderStatus(r.Context(), id, req.Status)
		if err != nil {
			logger.Error("Failed to update order status", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Order status updated", slog.String("newStatus", string(req.Status)))
		response.Success(w, http.StatusOK, order)
	}
}

// SendInvoice godoc
//
//	@Summary		Email the invoice
//	@Description	Sends the tax invoice to the order's contact email.
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string	true	"Order ID (UUID)"	Format(uuid)
//	@Success		202	{object}	models.NotificationResponse
//	@Failure		404	{object}	response.ErrorResponse
//	@Failure		502	{object}	response.ErrorResponse	"Email provider failure"
//	@Security		BearerAuth
//	@Router			/admin/orders/{id}/invoice/send [post]
func (h *OrderHandler) SendInvoice() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		notification, err := h.orderService.SendInvoice(r.Context(), id)
		if err != nil {
			logger.Error("Failed to send invoice", slog.String("orderId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusAccepted, notification.Response())
	}
}
