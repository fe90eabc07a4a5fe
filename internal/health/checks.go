package health

import (
	"context"
	"fmt"
	"time"

	"github.com/coolbreeze/storefront/internal/config"
	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/balance"
)

const Version = "1.0.0"

// NewHealthHandler builds the /health endpoint with Postgres, Redis and,
// when an API key is configured, Stripe checks. Stripe is reported but never
// fails the overall status.
func NewHealthHandler(cfg *config.Config) (*health.Health, error) {
	checks := []health.Config{
		{
			Name:    "database",
			Timeout: 3 * time.Second,
			Check:   postgres.New(postgres.Config{DSN: cfg.Database.GetDSN()}),
		},
		{
			Name:    "redis",
			Timeout: 2 * time.Second,
			Check:   healthRedis.New(healthRedis.Config{DSN: cfg.RedisConnect.GetDSN()}),
		},
	}

	if cfg.Stripe.APIKey != "" {
		checks = append(checks, health.Config{
			Name:      "stripe",
			Timeout:   5 * time.Second,
			SkipOnErr: true,
			Check:     StripeCheck(),
		})
	}

	return New(cfg.Env, checks...)
}

// New assembles a health instance from arbitrary checks.
func New(env string, checks ...health.Config) (*health.Health, error) {
	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "storefront-" + env,
			Version: Version,
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

// StripeCheck reads the account balance, the cheapest authenticated call.
func StripeCheck() health.CheckFunc {
	return func(ctx context.Context) error {
		params := &stripe.BalanceParams{Params: stripe.Params{Context: ctx}}

		if _, err := balance.Get(params); err != nil {
			return fmt.Errorf("failed to connect to stripe: %w", err)
		}

		return nil
	}
}
