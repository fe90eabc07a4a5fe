package stripe

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"github.com/stripe/stripe-go/v81/refund"
	"github.com/stripe/stripe-go/v81/webhook"
)

type (
	Event         = stripe.Event
	PaymentIntent = stripe.PaymentIntent
	Refund        = stripe.Refund
	Charge        = stripe.Charge
)

// Webhook event types the storefront reacts to.
const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
	EventChargeRefunded   = "charge.refunded"
)

// IntentRequest describes a charge in minor units (paise for INR).
type IntentRequest struct {
	Amount      int64
	Currency    string
	Description string
	Metadata    map[string]string
}

type Client interface {
	CreatePaymentIntent(ctx context.Context, req IntentRequest) (*PaymentIntent, error)
	GetPaymentIntent(ctx context.Context, id string) (*PaymentIntent, error)
	RefundPayment(ctx context.Context, paymentIntentID string, amount int64) (*Refund, error)
	VerifyWebhookSignature(payload []byte, signature string) (Event, error)
}

type stripeClient struct {
	webhookSecret string
}

func NewStripeClient(apiKey string, webhookSecret string) Client {
	stripe.Key = apiKey

	return &stripeClient{webhookSecret: webhookSecret}
}

func (s *stripeClient) CreatePaymentIntent(ctx context.Context, req IntentRequest) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(req.Amount),
		Currency:    stripe.String(req.Currency),
		Description: stripe.String(req.Description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	return paymentintent.New(params)
}

func (s *stripeClient) GetPaymentIntent(ctx context.Context, id string) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	return paymentintent.Get(id, params)
}

// RefundPayment refunds amount paise of the intent; 0 refunds the full charge.
func (s *stripeClient) RefundPayment(ctx context.Context, paymentIntentID string, amount int64) (*Refund, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentIntentID),
	}
	params.Context = ctx

	if amount > 0 {
		params.Amount = stripe.Int64(amount)
	}

	return refund.New(params)
}

func (s *stripeClient) VerifyWebhookSignature(payload []byte, signature string) (Event, error) {
	if s.webhookSecret == "" {
		return Event{}, errors.New("webhook secret not configured")
	}

	return webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
}
