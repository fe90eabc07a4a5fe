package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appErrors "github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/events"
	eventMocks "github.com/coolbreeze/storefront/internal/events/mocks"
	"github.com/coolbreeze/storefront/internal/models"
	repository "github.com/coolbreeze/storefront/internal/repositories"
	"github.com/coolbreeze/storefront/internal/repositories/mocks"
	service "github.com/coolbreeze/storefront/internal/services"
	"github.com/coolbreeze/storefront/pkg/stripe"
	stripeMocks "github.com/coolbreeze/storefront/pkg/stripe/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	stripego "github.com/stripe/stripe-go/v81"
)

type paymentFixture struct {
	payments  *mocks.PaymentRepository
	orders    *mocks.OrderRepository
	client    *stripeMocks.Client
	publisher *eventMocks.Publisher
	svc       service.PaymentService
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	f := &paymentFixture{
		payments:  mocks.NewPaymentRepository(t),
		orders:    mocks.NewOrderRepository(t),
		client:    stripeMocks.NewClient(t),
		publisher: eventMocks.NewPublisher(t),
	}

	f.svc = service.NewPaymentService(f.payments, f.orders, f.client, f.publisher, "inr")

	return f
}

func webhookEvent(eventType, raw string) stripe.Event {
	return stripe.Event{Type: stripego.EventType(eventType), Data: &stripego.EventData{Raw: []byte(raw)}}
}

func TestPaymentService_CreatePayment(t *testing.T) {
	claims := customerClaims()

	onlineOrder := func() *models.Order {
		o := sampleOrder(claims.UserID, models.OrderStatusPending)
		o.PaymentMethod = models.PaymentMethodOnline
		o.TotalAmount = 12499.99

		return o
	}

	t.Run("Success", func(t *testing.T) {
		f := newPaymentFixture(t)
		order := onlineOrder()

		f.orders.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil).Once()
		f.client.On("CreatePaymentIntent", mock.Anything, mock.MatchedBy(func(r stripe.IntentRequest) bool {
			return r.Amount == 1249999 && r.Currency == "inr" && r.Metadata["order_id"] == order.ID.String()
		})).Return(&stripe.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret"}, nil).Once()
		f.payments.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p *models.Payment) bool {
			return p.ID == "pi_123" && p.OrderID == order.ID && p.Status == models.PaymentRecordPending
		})).Return(nil).Once()
		f.orders.On("UpdatePaymentStatus", mock.Anything, order.ID, models.PaymentStatusPending, "pi_123").Return(nil).Once()

		resp, err := f.svc.CreatePayment(context.Background(), claims, &models.CreatePaymentRequest{OrderID: order.ID})

		require.NoError(t, err)
		assert.Equal(t, "pi_123_secret", resp.ClientSecret)
		assert.InDelta(t, 12499.99, resp.Payment.Amount, 0.001)
	})

	t.Run("Failure - Not the owner", func(t *testing.T) {
		f := newPaymentFixture(t)
		order := onlineOrder()

		f.orders.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil).Once()

		_, err := f.svc.CreatePayment(context.Background(), customerClaims(), &models.CreatePaymentRequest{OrderID: order.ID})

		assertAppCode(t, err, appErrors.ErrCodeForbidden)
	})

	t.Run("Failure - Already paid", func(t *testing.T) {
		f := newPaymentFixture(t)
		order := onlineOrder()
		order.PaymentStatus = models.PaymentStatusPaid

		f.orders.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil).Once()

		_, err := f.svc.CreatePayment(context.Background(), claims, &models.CreatePaymentRequest{OrderID: order.ID})

		assertAppCode(t, err, appErrors.ErrCodeConflict)
	})

	t.Run("Failure - Cash on delivery", func(t *testing.T) {
		f := newPaymentFixture(t)
		order := sampleOrder(claims.UserID, models.OrderStatusPending)

		f.orders.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil).Once()

		_, err := f.svc.CreatePayment(context.Background(), claims, &models.CreatePaymentRequest{OrderID: order.ID})

		assertAppCode(t, err, appErrors.ErrCodeBadRequest)
	})

	t.Run("Failure - Stripe error", func(t *testing.T) {
		f := newPaymentFixture(t)
		order := onlineOrder()

		f.orders.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil).Once()
		f.client.On("CreatePaymentIntent", mock.Anything, mock.Anything).Return(nil, errors.New("card_declined")).Once()

		_, err := f.svc.CreatePayment(context.Background(), claims, &models.CreatePaymentRequest{OrderID: order.ID})

		assertAppCode(t, err, appErrors.ErrCodeThirdPartyError)
	})
}

func TestPaymentService_GetPaymentByID(t *testing.T) {
	claims := customerClaims()

	t.Run("Owner", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.payments.On("GetPaymentByID", mock.Anything, "pi_1").Return(&models.Payment{ID: "pi_1", CustomerID: claims.UserID}, nil).Once()

		payment, err := f.svc.GetPaymentByID(context.Background(), claims, "pi_1")

		require.NoError(t, err)
		assert.Equal(t, "pi_1", payment.ID)
	})

	t.Run("Other customer", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.payments.On("GetPaymentByID", mock.Anything, "pi_1").Return(&models.Payment{ID: "pi_1", CustomerID: uuid.New()}, nil).Once()

		_, err := f.svc.GetPaymentByID(context.Background(), claims, "pi_1")

		assertAppCode(t, err, appErrors.ErrCodeForbidden)
	})

	t.Run("Missing", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.payments.On("GetPaymentByID", mock.Anything, "pi_1").Return(nil, repository.ErrNotFound).Once()

		_, err := f.svc.GetPaymentByID(context.Background(), claims, "pi_1")

		assertAppCode(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestPaymentService_ListPaymentsByCustomer(t *testing.T) {
	f := newPaymentFixture(t)
	customerID := uuid.New()

	f.payments.On("ListPaymentsOfCustomer", mock.Anything, customerID, 1, 10).Return([]*models.Payment{{}}, 1, nil).Once()

	payments, total, err := f.svc.ListPaymentsByCustomer(context.Background(), customerID, -1, 1000)

	require.NoError(t, err)
	assert.Len(t, payments, 1)
	assert.Equal(t, 1, total)
}

func TestPaymentService_ProcessWebhook(t *testing.T) {
	payload := []byte(`{}`)

	t.Run("Succeeded confirms a pending order", func(t *testing.T) {
		f := newPaymentFixture(t)
		order := sampleOrder(uuid.New(), models.OrderStatusPending)

		f.client.On("VerifyWebhookSignature", payload, "sig").
			Return(webhookEvent(stripe.EventPaymentSucceeded, `{"id":"pi_9","object":"payment_intent"}`), nil).Once()
		f.payments.On("UpdatePaymentStatus", mock.Anything, "pi_9", models.PaymentRecordSucceeded).Return(nil).Once()
		f.payments.On("GetPaymentByID", mock.Anything, "pi_9").Return(&models.Payment{ID: "pi_9", OrderID: order.ID}, nil).Once()
		f.orders.On("UpdatePaymentStatus", mock.Anything, order.ID, models.PaymentStatusPaid, "pi_9").Return(nil).Once()
		f.orders.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil).Once()
		f.orders.On("UpdateOrderStatus", mock.Anything, order.ID, models.OrderStatusConfirmed, (*time.Time)(nil)).Return(nil).Once()
		f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e events.OrderEvent) bool {
			return e.Type == events.OrderPaid && e.Status == models.OrderStatusConfirmed
		})).Return(nil).Once()

		event, err := f.svc.ProcessWebhook(context.Background(), payload, "sig")

		require.NoError(t, err)
		assert.Equal(t, stripe.EventPaymentSucceeded, string(event.Type))
	})

	t.Run("Failed marks payment failed", func(t *testing.T) {
		f := newPaymentFixture(t)
		orderID := uuid.New()

		f.client.On("VerifyWebhookSignature", payload, "sig").
			Return(webhookEvent(stripe.EventPaymentFailed, `{"id":"pi_8"}`), nil).Once()
		f.payments.On("UpdatePaymentStatus", mock.Anything, "pi_8", models.PaymentRecordFailed).Return(nil).Once()
		f.payments.On("GetPaymentByID", mock.Anything, "pi_8").Return(&models.Payment{ID: "pi_8", OrderID: orderID}, nil).Once()
		f.orders.On("UpdatePaymentStatus", mock.Anything, orderID, models.PaymentStatusFailed, "pi_8").Return(nil).Once()

		_, err := f.svc.ProcessWebhook(context.Background(), payload, "sig")

		require.NoError(t, err)
	})

	t.Run("Refund reads the charge's intent", func(t *testing.T) {
		f := newPaymentFixture(t)
		orderID := uuid.New()

		f.client.On("VerifyWebhookSignature", payload, "sig").
			Return(webhookEvent(stripe.EventChargeRefunded, `{"id":"ch_1","object":"charge","payment_intent":"pi_7"}`), nil).Once()
		f.payments.On("UpdatePaymentStatus", mock.Anything, "pi_7", models.PaymentRecordRefunded).Return(nil).Once()
		f.payments.On("GetPaymentByID", mock.Anything, "pi_7").Return(&models.Payment{ID: "pi_7", OrderID: orderID}, nil).Once()
		f.orders.On("UpdatePaymentStatus", mock.Anything, orderID, models.PaymentStatusRefunded, "pi_7").Return(nil).Once()

		_, err := f.svc.ProcessWebhook(context.Background(), payload, "sig")

		require.NoError(t, err)
	})

	t.Run("Unknown intent is acknowledged", func(t *testing.T) {
		f := newPaymentFixture(t)

		f.client.On("VerifyWebhookSignature", payload, "sig").
			Return(webhookEvent(stripe.EventPaymentSucceeded, `{"id":"pi_x"}`), nil).Once()
		f.payments.On("UpdatePaymentStatus", mock.Anything, "pi_x", models.PaymentRecordSucceeded).Return(repository.ErrNotFound).Once()

		_, err := f.svc.ProcessWebhook(context.Background(), payload, "sig")

		require.NoError(t, err)
	})

	t.Run("Bad signature", func(t *testing.T) {
		f := newPaymentFixture(t)

		f.client.On("VerifyWebhookSignature", payload, "bad").Return(stripe.Event{}, errors.New("no signatures found")).Once()

		_, err := f.svc.ProcessWebhook(context.Background(), payload, "bad")

		assertAppCode(t, err, appErrors.ErrCodeBadRequest)
	})

	t.Run("Other events are ignored", func(t *testing.T) {
		f := newPaymentFixture(t)

		f.client.On("VerifyWebhookSignature", payload, "sig").Return(webhookEvent("customer.created", `{}`), nil).Once()

		_, err := f.svc.ProcessWebhook(context.Background(), payload, "sig")

		require.NoError(t, err)
	})
}

func TestPaymentService_RefundOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newPaymentFixture(t)
		order := sampleOrder(uuid.New(), models.OrderStatusConfirmed)
		order.PaymentStatus = models.PaymentStatusPaid
		order.PaymentIntentID = "pi_5"

		f.orders.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil).Once()
		f.client.On("RefundPayment", mock.Anything, "pi_5", int64(0)).Return(&stripe.Refund{ID: "re_1"}, nil).Once()
		f.payments.On("UpdatePaymentStatus", mock.Anything, "pi_5", models.PaymentRecordRefunded).Return(nil).Once()
		f.payments.On("GetPaymentByID", mock.Anything, "pi_5").Return(&models.Payment{ID: "pi_5", OrderID: order.ID}, nil).Once()
		f.orders.On("UpdatePaymentStatus", mock.Anything, order.ID, models.PaymentStatusRefunded, "pi_5").Return(nil).Once()

		got, err := f.svc.RefundOrder(context.Background(), order.ID)

		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusRefunded, got.PaymentStatus)
	})

	t.Run("Unpaid order", func(t *testing.T) {
		f := newPaymentFixture(t)
		order := sampleOrder(uuid.New(), models.OrderStatusPending)

		f.orders.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil).Once()

		_, err := f.svc.RefundOrder(context.Background(), order.ID)

		assertAppCode(t, err, appErrors.ErrCodeConflict)
	})
}
