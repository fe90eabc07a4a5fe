package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/coolbreeze/storefront/internal/api/middleware"
	appErrors "github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/events"
	"github.com/coolbreeze/storefront/internal/models"
	repository "github.com/coolbreeze/storefront/internal/repositories"
	"github.com/coolbreeze/storefront/internal/utils"
	"github.com/coolbreeze/storefront/pkg/stripe"
	"github.com/google/uuid"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, claims *models.Claims, req *models.CreatePaymentRequest) (*models.PaymentResponse, error)
	GetPaymentByID(ctx context.Context, claims *models.Claims, id string) (*models.Payment, error)
	ListPaymentsByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]*models.Payment, int, error)
	ProcessWebhook(ctx context.Context, payload []byte, signature string) (stripe.Event, error)
	// RefundOrder refunds the full online payment of an order.
	RefundOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error)
}

type paymentService struct {
	repo         repository.PaymentRepository
	orderRepo    repository.OrderRepository
	stripeClient stripe.Client
	publisher    events.Publisher
	currency     string
}

func NewPaymentService(repo repository.PaymentRepository, orderRepo repository.OrderRepository, stripeClient stripe.Client,
	publisher events.Publisher, currency string,
) PaymentService {
	return &paymentService{
		repo:         repo,
		orderRepo:    orderRepo,
		stripeClient: stripeClient,
		publisher:    publisher,
		currency:     currency,
	}
}

func (s *paymentService) CreatePayment(ctx context.Context, claims *models.Claims, req *models.CreatePaymentRequest) (*models.PaymentResponse, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	if order.CustomerID != claims.UserID {
		return nil, appErrors.ForbiddenError("You do not have access to this order")
	}

	switch {
	case order.PaymentMethod != models.PaymentMethodOnline:
		return nil, appErrors.BadRequestError("Order is payable on delivery")
	case order.PaymentStatus == models.PaymentStatusPaid:
		return nil, appErrors.ConflictError("Order is already paid")
	case order.Status == models.OrderStatusCancelled:
		return nil, appErrors.ConflictError("Order is cancelled")
	}

	paymentIntent, err := s.stripeClient.CreatePaymentIntent(ctx, stripe.IntentRequest{
		Amount:      utils.ToMinorUnits(order.TotalAmount),
		Currency:    s.currency,
		Description: "Order " + order.OrderNumber,
		Metadata: map[string]string{
			"order_id":     order.ID.String(),
			"order_number": order.OrderNumber,
		},
	})
	if err != nil {
		return nil, appErrors.ThirdPartyError("Failed to create payment intent").WithError(err)
	}

	payment := &models.Payment{
		ID:          paymentIntent.ID,
		OrderID:     order.ID,
		CustomerID:  claims.UserID,
		Amount:      order.TotalAmount,
		Currency:    s.currency,
		Description: "Order " + order.OrderNumber,
		Status:      models.PaymentRecordPending,
	}

	if err := s.repo.CreatePayment(ctx, payment); err != nil {
		return nil, appErrors.DatabaseError("Failed to record payment").WithError(err)
	}

	if err := s.orderRepo.UpdatePaymentStatus(ctx, order.ID, models.PaymentStatusPending, paymentIntent.ID); err != nil {
		return nil, appErrors.DatabaseError("Failed to link payment to order").WithError(err)
	}

	return &models.PaymentResponse{
		Payment:      payment,
		ClientSecret: paymentIntent.ClientSecret,
	}, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, claims *models.Claims, id string) (*models.Payment, error) {
	payment, err := s.repo.GetPaymentByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Payment not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch payment").WithError(err)
	}

	if payment.CustomerID != claims.UserID {
		return nil, appErrors.ForbiddenError("You do not have access to this payment")
	}

	return payment, nil
}

func (s *paymentService) ListPaymentsByCustomer(ctx context.Context, customerID uuid.UUID, page, size int) ([]*models.Payment, int, error) {
	page, size = utils.NormalizePage(page, size)

	payments, total, err := s.repo.ListPaymentsOfCustomer(ctx, customerID, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to fetch payments").WithError(err)
	}

	return payments, total, nil
}

func (s *paymentService) ProcessWebhook(ctx context.Context, payload []byte, signature string) (stripe.Event, error) {
	event, err := s.stripeClient.VerifyWebhookSignature(payload, signature)
	if err != nil {
		return stripe.Event{}, appErrors.BadRequestError("Webhook signature verification failed").WithError(err)
	}

	switch event.Type {
	case stripe.EventPaymentSucceeded, stripe.EventPaymentFailed:
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil || intent.ID == "" {
			return event, appErrors.BadRequestError("Missing payment intent ID in webhook")
		}

		if event.Type == stripe.EventPaymentSucceeded {
			err = s.settle(ctx, intent.ID, models.PaymentRecordSucceeded, models.PaymentStatusPaid)
		} else {
			err = s.settle(ctx, intent.ID, models.PaymentRecordFailed, models.PaymentStatusFailed)
		}

	case stripe.EventChargeRefunded:
		var charge stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil || charge.PaymentIntent == nil || charge.PaymentIntent.ID == "" {
			return event, appErrors.BadRequestError("Missing payment intent ID in webhook")
		}

		err = s.settle(ctx, charge.PaymentIntent.ID, models.PaymentRecordRefunded, models.PaymentStatusRefunded)

	default:
		middleware.LoggerFromContext(ctx).Debug("Ignoring webhook event", slog.String("type", string(event.Type)))
	}

	return event, err
}

// settle records a payment outcome on the payment and its order. A paid
// pending order is confirmed. Unknown intents are acknowledged so Stripe
// stops redelivering them.
func (s *paymentService) settle(ctx context.Context, intentID string, recordStatus models.PaymentRecordStatus, orderStatus models.PaymentStatus) error {
	logger := middleware.LoggerFromContext(ctx).With(slog.String("paymentIntentId", intentID))

	if err := s.repo.UpdatePaymentStatus(ctx, intentID, recordStatus); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.Warn("Webhook for unknown payment intent")

			return nil
		}

		return appErrors.DatabaseError("Failed to update payment status").WithError(err)
	}

	payment, err := s.repo.GetPaymentByID(ctx, intentID)
	if err != nil {
		return appErrors.DatabaseError("Failed to fetch payment").WithError(err)
	}

	if err := s.orderRepo.UpdatePaymentStatus(ctx, payment.OrderID, orderStatus, intentID); err != nil {
		return appErrors.DatabaseError("Failed to update order payment status").WithError(err)
	}

	if orderStatus != models.PaymentStatusPaid {
		return nil
	}

	order, err := s.orderRepo.GetOrderByID(ctx, payment.OrderID)
	if err != nil {
		return appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	if order.Status == models.OrderStatusPending {
		if err := s.orderRepo.UpdateOrderStatus(ctx, order.ID, models.OrderStatusConfirmed, nil); err != nil {
			return appErrors.DatabaseError("Failed to confirm order").WithError(err)
		}

		order.Status = models.OrderStatusConfirmed
	}

	order.PaymentStatus = models.PaymentStatusPaid

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.NewOrderEvent(events.OrderPaid, order)); err != nil {
			logger.Warn("Failed to publish order event", slog.String("error", err.Error()))
		}
	}

	logger.Info("Order paid", slog.String("orderNumber", order.OrderNumber))

	return nil
}

func (s *paymentService) RefundOrder(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.orderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Order not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch order").WithError(err)
	}

	if order.PaymentStatus != models.PaymentStatusPaid || order.PaymentIntentID == "" {
		return nil, appErrors.ConflictError("Only paid online orders can be refunded")
	}

	if _, err := s.stripeClient.RefundPayment(ctx, order.PaymentIntentID, 0); err != nil {
		return nil, appErrors.ThirdPartyError("Failed to refund payment").WithError(err)
	}

	if err := s.settle(ctx, order.PaymentIntentID, models.PaymentRecordRefunded, models.PaymentStatusRefunded); err != nil {
		return nil, err
	}

	order.PaymentStatus = models.PaymentStatusRefunded

	return order, nil
}
