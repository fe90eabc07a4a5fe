package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/coolbreeze/storefront/internal/api/middleware"
	"github.com/coolbreeze/storefront/internal/config"
	appErrors "github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/events"
	"github.com/coolbreeze/storefront/internal/invoice"
	"github.com/coolbreeze/storefront/internal/metrics"
	"github.com/coolbreeze/storefront/internal/models"
	repository "github.com/coolbreeze/storefront/internal/repositories"
	"github.com/coolbreeze/storefront/internal/templates"
	"github.com/coolbreeze/storefront/internal/utils"
	"github.com/google/uuid"
)

type OrderService interface {
	// CreateOrder checks out the customer's cart.
	CreateOrder(ctx context.Context, claims *models.Claims, req *models.CreateOrderRequest) (*models.Order, error)
	GetOrder(ctx context.Context, claims *models.Claims, id uuid.UUID) (*models.Order, error)
	ListOrders(ctx context.Context, customerID uuid.UUID, page, size int) ([]*models.Order, int, error)
	ListAllOrders(ctx context.Context, status models.OrderStatus, page, size int) ([]*models.Order, int, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error)
	Invoice(ctx context.Context, claims *models.Claims, id uuid.UUID) (*models.Invoice, *templates.Rendered, error)
	SendInvoice(ctx context.Context, id uuid.UUID) (*models.Notification, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	publisher events.Publisher
	notifier  NotificationService
	seller    *config.Invoice
	email     EmailSettings
	now       func() time.Time
}

func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, publisher events.Publisher,
	notifier NotificationService, seller *config.Invoice, email EmailSettings,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		publisher: publisher,
		notifier:  notifier,
		seller:    seller,
		email:     email,
		now:       time.Now,
	}
}

// NewOrderNumber returns AC-YYYYMMDD-XXXXXX.
func NewOrderNumber(now time.Time) string {
	return fmt.Sprintf("AC-%s-%s", now.Format("20060102"), utils.ShortCode(6))
}

func (s *orderService) CreateOrder(ctx context.Context, claims *models.Claims, req *models.CreateOrderRequest) (*models.Order, error) {
	cart, err := s.cartRepo.GetCartByCustomerID(ctx, claims.UserID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	if cart == nil || cart.IsEmpty() {
		return nil, appErrors.BadRequestError("Cannot create order with empty cart")
	}

	now := s.now()

	contactEmail := req.ContactEmail
	if contactEmail == "" {
		contactEmail = claims.Email
	}

	address := req.ShippingAddress

	order := &models.Order{
		ID:              uuid.New(),
		OrderNumber:     NewOrderNumber(now),
		CustomerID:      claims.UserID,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: &address,
		ContactEmail:    contactEmail,
		ContactPhone:    req.ContactPhone,
		Notes:           req.Notes,
		Items:           make([]models.OrderItem, 0, len(cart.Items)),
	}

	var total float64

	for _, item := range cart.Lines() {
		order.Items = append(order.Items, models.OrderItem{
			ID:          uuid.New(),
			OrderID:     order.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})

		total += float64(item.Quantity) * item.UnitPrice
	}

	order.TotalAmount = utils.RoundMoney(total)

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		var stockErr *repository.InsufficientStockError
		if errors.As(err, &stockErr) {
			return nil, appErrors.BadRequestError(stockErr.Error()).WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to create order").WithError(err)
	}

	metrics.OrderCreated(string(order.PaymentMethod))

	logger := middleware.LoggerFromContext(ctx).With(slog.String("orderNumber", order.OrderNumber))
	logger.Info("Order placed", slog.Float64("total", order.TotalAmount), slog.Int("items", len(order.Items)))

	cart.Empty(now)

	if err := s.cartRepo.UpdateCart(ctx, cart); err != nil {
		logger.Error("Failed to clear cart after checkout", slog.String("error", err.Error()))
	}

	s.publish(ctx, events.OrderCreated, order)

	notify(ctx, s.notifier, models.TemplateOrderConfirmation, order.ContactEmail, templates.OrderConfirmation{
		CustomerName: address.Name,
		Order:        order,
		SiteURL:      s.email.SiteURL,
		SupportEmail: s.email.SupportEmail,
	}, s.email.AdminCopy)

	return order, nil
}

func (s *orderService) publish(ctx context.Context, eventType events.OrderEventType, order *models.Order) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.Publish(ctx, events.NewOrderEvent(eventType, order)); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to publish order event",
			slog.String("type", string(eventType)),
			slog.String("orderId", order.ID.String()),
			slog.String("error", err.Error()))
	}
}

func (s *orderService) getOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, claims *models.Claims, id uuid.UUID) (*models.Order, error) {
	order, err := s.getOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canAccess(claims, order.CustomerID) {
		return nil, appErrors.ForbiddenError("You do not have access to this order")
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, customerID uuid.UUID, page, size int) ([]*models.Order, int, error) {
	page, size = utils.NormalizePage(page, size)

	orders, total, err := s.orderRepo.ListOrdersByCustomer(ctx, customerID, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to list orders").WithError(err)
	}

	return orders, total, nil
}

func (s *orderService) ListAllOrders(ctx context.Context, status models.OrderStatus, page, size int) ([]*models.Order, int, error) {
	page, size = utils.NormalizePage(page, size)

	orders, total, err := s.orderRepo.ListOrders(ctx, models.OrderFilter{Status: status}, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to list orders").WithError(err)
	}

	return orders, total, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	order, err := s.getOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, appErrors.ConflictError(fmt.Sprintf("Cannot move order from %s to %s", order.Status, status))
	}

	var deliveredAt *time.Time

	if status == models.OrderStatusDelivered {
		now := s.now()
		deliveredAt = &now
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, id, status, deliveredAt); err != nil {
		return nil, appErrors.DatabaseError("Failed to update order status").WithError(err)
	}

	order.Status = status
	order.DeliveredAt = deliveredAt

	s.publish(ctx, events.OrderStatusChanged, order)

	return order, nil
}

func (s *orderService) Invoice(ctx context.Context, claims *models.Claims, id uuid.UUID) (*models.Invoice, *templates.Rendered, error) {
	order, err := s.GetOrder(ctx, claims, id)
	if err != nil {
		return nil, nil, err
	}

	return s.renderInvoice(order)
}

func (s *orderService) renderInvoice(order *models.Order) (*models.Invoice, *templates.Rendered, error) {
	inv := invoice.Build(order, s.seller, order.CreatedAt)

	rendered, err := templates.Render(models.TemplateInvoice, inv)
	if err != nil {
		return nil, nil, appErrors.InternalError("Failed to render invoice").WithError(err)
	}

	return inv, rendered, nil
}

func (s *orderService) SendInvoice(ctx context.Context, id uuid.UUID) (*models.Notification, error) {
	order, err := s.getOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	_, rendered, err := s.renderInvoice(order)
	if err != nil {
		return nil, err
	}

	return s.notifier.Deliver(ctx, models.TemplateInvoice, &models.EmailNotificationRequest{
		To:          order.ContactEmail,
		Subject:     rendered.Subject,
		Content:     rendered.Text,
		HTMLContent: rendered.HTML,
	})
}
