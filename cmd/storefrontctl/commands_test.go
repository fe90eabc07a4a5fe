package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coolbreeze/storefront/internal/config"
	appErrors "github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/models"
	repository "github.com/coolbreeze/storefront/internal/repositories"
	repoMocks "github.com/coolbreeze/storefront/internal/repositories/mocks"
	"github.com/coolbreeze/storefront/internal/services/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}

	assert.Subset(t, names, []string{"migrate", "create-admin", "render-invoice"})
}

func TestCreateAdminCmd_RequiresFlags(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"create-admin", "--name", "Ops"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestCreateAdminCmd_ShortPassword(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"create-admin", "--name", "Ops", "--email", "ops@coolbreeze.in", "--password", "short"})

	err := root.Execute()
	assert.EqualError(t, err, "password must be at least 8 characters")
}

func TestRenderInvoiceCmd_BadOrderID(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"render-invoice", "--order", "not-a-uuid"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid order id")
}

func TestMigrateCmd_NoConfig(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	root := newRootCmd()
	root.SetArgs([]string{"migrate"})

	err := root.Execute()
	assert.ErrorContains(t, err, "config path is not set")
}

func TestCreateAdmin(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		users := mocks.NewUserService(t)
		id := uuid.New()

		users.On("CreateAdmin", mock.Anything, "Ops", "ops@coolbreeze.in", "correct-horse-9").
			Return(&models.User{ID: id, Email: "ops@coolbreeze.in", Role: models.RoleAdmin}, nil).Once()

		var out bytes.Buffer
		require.NoError(t, createAdmin(context.Background(), users, "Ops", "ops@coolbreeze.in", "correct-horse-9", &out))
		assert.Equal(t, "Created admin ops@coolbreeze.in ("+id.String()+")\n", out.String())
	})

	t.Run("Duplicate email", func(t *testing.T) {
		users := mocks.NewUserService(t)

		users.On("CreateAdmin", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, appErrors.DuplicateEntryError("Email already registered")).Once()

		err := createAdmin(context.Background(), users, "Ops", "ops@coolbreeze.in", "correct-horse-9", &bytes.Buffer{})
		assert.ErrorContains(t, err, "Email already registered")
	})
}

func TestRenderInvoice(t *testing.T) {
	seller := &config.Invoice{SellerName: "CoolBreeze Appliances Pvt. Ltd.", TaxRate: 0.18, SupportEmail: "support@coolbreeze.in"}

	t.Run("Writes the invoice HTML", func(t *testing.T) {
		orders := repoMocks.NewOrderRepository(t)
		id := uuid.New()

		orders.On("GetOrderByID", mock.Anything, id).Return(&models.Order{
			ID:            id,
			OrderNumber:   "AC-20250601-ABC123",
			TotalAmount:   11800,
			PaymentMethod: models.PaymentMethodCOD,
			CreatedAt:     time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
			Items:         []models.OrderItem{{ProductName: "Desert Cooler 70L", Quantity: 1, UnitPrice: 11800}},
		}, nil).Once()

		var out bytes.Buffer
		require.NoError(t, renderInvoice(context.Background(), orders, seller, id, &out))
		assert.Contains(t, out.String(), "INV-AC-20250601-ABC123")
		assert.Contains(t, out.String(), "Desert Cooler 70L")
	})

	t.Run("Unknown order", func(t *testing.T) {
		orders := repoMocks.NewOrderRepository(t)
		id := uuid.New()

		orders.On("GetOrderByID", mock.Anything, id).Return(nil, repository.ErrNotFound).Once()

		err := renderInvoice(context.Background(), orders, seller, id, &bytes.Buffer{})
		assert.EqualError(t, err, "order "+id.String()+" not found")
	})

	t.Run("Database failure", func(t *testing.T) {
		orders := repoMocks.NewOrderRepository(t)

		orders.On("GetOrderByID", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset")).Once()

		err := renderInvoice(context.Background(), orders, seller, uuid.New(), &bytes.Buffer{})
		assert.ErrorContains(t, err, "connection reset")
	})
}
