package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	cacheMocks "github.com/coolbreeze/storefront/internal/cache/mocks"
	appErrors "github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/models"
	repository "github.com/coolbreeze/storefront/internal/repositories"
	"github.com/coolbreeze/storefront/internal/repositories/mocks"
	service "github.com/coolbreeze/storefront/internal/services"
	serviceMocks "github.com/coolbreeze/storefront/internal/services/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type warrantyFixture struct {
	warranties *mocks.WarrantyRepository
	orders     *mocks.OrderRepository
	products   *mocks.ProductRepository
	notifier   *serviceMocks.NotificationService
	cache      *cacheMocks.Cache
	svc        service.WarrantyService
}

func newWarrantyFixture(t *testing.T) *warrantyFixture {
	f := &warrantyFixture{
		warranties: mocks.NewWarrantyRepository(t),
		orders:     mocks.NewOrderRepository(t),
		products:   mocks.NewProductRepository(t),
		notifier:   serviceMocks.NewNotificationService(t),
		cache:      cacheMocks.NewCache(t),
	}

	f.svc = service.NewWarrantyService(f.warranties, f.orders, f.products, f.notifier, f.cache, testEmail)

	return f
}

func TestNewWarrantyNumber(t *testing.T) {
	assert.Regexp(t, `^WR-2025-[0-9A-F]{6}$`, service.NewWarrantyNumber(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
}

func TestWarrantyService_RegisterWarranty(t *testing.T) {
	claims := customerClaims()
	delivered := time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)

	deliveredOrder := func() *models.Order {
		o := sampleOrder(claims.UserID, models.OrderStatusDelivered)
		o.DeliveredAt = &delivered

		return o
	}

	t.Run("Success - expiry from delivery date and QR email", func(t *testing.T) {
		f := newWarrantyFixture(t)
		order := deliveredOrder()
		productID := order.Items[0].ProductID

		f.orders.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil).Once()
		f.products.On("GetProductByID", mock.Anything, productID).
			Return(&models.Product{ID: productID, Kind: models.ProductKindCooler, WarrantyMonths: 12}, nil).Once()
		f.warranties.On("CountForOrderItem", mock.Anything, order.ID, productID).Return(0, nil).Once()
		f.warranties.On("CreateWarranty", mock.Anything, mock.AnythingOfType("*models.Warranty")).Return(nil).Once()
		f.notifier.On("Deliver", mock.Anything, models.TemplateWarrantyRegistered, mock.MatchedBy(func(r *models.EmailNotificationRequest) bool {
			return r.To == order.ContactEmail &&
				containsAll(r.HTMLContent, "data:image/png;base64,", "https://coolbreeze.in/warranty/WR-")
		})).Return(&models.Notification{}, nil).Once()

		w, err := f.svc.RegisterWarranty(context.Background(), claims, &models.RegisterWarrantyRequest{
			OrderID: order.ID, ProductID: productID, SerialNumber: "dc70x12345",
		})

		require.NoError(t, err)
		assert.Equal(t, delivered, w.PurchaseDate)
		assert.Equal(t, time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC), w.ExpiresAt)
		assert.Equal(t, "DC70X12345", w.SerialNumber)
		assert.Equal(t, models.WarrantyStatusActive, w.Status)
		assert.Equal(t, "Desert Cooler 70L", w.ProductName)
	})

	t.Run("Failure - Order not delivered", func(t *testing.T) {
		f := newWarrantyFixture(t)
		order := sampleOrder(claims.UserID, models.OrderStatusShipping)

		f.orders.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil).Once()

		_, err := f.svc.RegisterWarranty(context.Background(), claims, &models.RegisterWarrantyRequest{OrderID: order.ID, ProductID: order.Items[0].ProductID, SerialNumber: "SN1234"})

		assertAppCode(t, err, appErrors.ErrCodeBadRequest)
	})

	t.Run("Failure - Someone else's order", func(t *testing.T) {
		f := newWarrantyFixture(t)
		order := deliveredOrder()

		f.orders.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil).Once()

		_, err := f.svc.RegisterWarranty(context.Background(), customerClaims(), &models.RegisterWarrantyRequest{OrderID: order.ID, ProductID: order.Items[0].ProductID, SerialNumber: "SN1234"})

		assertAppCode(t, err, appErrors.ErrCodeForbidden)
	})

	t.Run("Failure - Product not on order", func(t *testing.T) {
		f := newWarrantyFixture(t)
		order := deliveredOrder()

		f.orders.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil).Once()

		_, err := f.svc.RegisterWarranty(context.Background(), claims, &models.RegisterWarrantyRequest{OrderID: order.ID, ProductID: uuid.New(), SerialNumber: "SN1234"})

		assertAppCode(t, err, appErrors.ErrCodeBadRequest)
	})

	t.Run("Failure - Spare parts are not registrable", func(t *testing.T) {
		f := newWarrantyFixture(t)
		order := deliveredOrder()
		productID := order.Items[0].ProductID

		f.orders.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil).Once()
		f.products.On("GetProductByID", mock.Anything, productID).
			Return(&models.Product{ID: productID, Kind: models.ProductKindSparePart, WarrantyMonths: 6}, nil).Once()

		_, err := f.svc.RegisterWarranty(context.Background(), claims, &models.RegisterWarrantyRequest{OrderID: order.ID, ProductID: productID, SerialNumber: "SN1234"})

		assertAppCode(t, err, appErrors.ErrCodeBadRequest)
	})

	t.Run("Failure - Duplicate serial", func(t *testing.T) {
		f := newWarrantyFixture(t)
		order := deliveredOrder()
		productID := order.Items[0].ProductID

		f.orders.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil).Once()
		f.products.On("GetProductByID", mock.Anything, productID).
			Return(&models.Product{ID: productID, Kind: models.ProductKindCooler, WarrantyMonths: 12}, nil).Once()
		f.warranties.On("CountForOrderItem", mock.Anything, order.ID, productID).Return(0, nil).Once()
		f.warranties.On("CreateWarranty", mock.Anything, mock.Anything).Return(repository.ErrDuplicate).Once()

		_, err := f.svc.RegisterWarranty(context.Background(), claims, &models.RegisterWarrantyRequest{OrderID: order.ID, ProductID: productID, SerialNumber: "SN1234"})

		assertAppCode(t, err, appErrors.ErrCodeDuplicateEntry)
	})

	t.Run("Failure - Every unit already registered", func(t *testing.T) {
		f := newWarrantyFixture(t)
		order := deliveredOrder()
		order.Items[0].Quantity = 2
		productID := order.Items[0].ProductID

		f.orders.On("GetOrderByID", mock.Anything, order.ID).Return(order, nil).Once()
		f.products.On("GetProductByID", mock.Anything, productID).
			Return(&models.Product{ID: productID, Kind: models.ProductKindCooler, WarrantyMonths: 12}, nil).Once()
		f.warranties.On("CountForOrderItem", mock.Anything, order.ID, productID).Return(2, nil).Once()

		_, err := f.svc.RegisterWarranty(context.Background(), claims, &models.RegisterWarrantyRequest{OrderID: order.ID, ProductID: productID, SerialNumber: "SN9999"})

		assertAppCode(t, err, appErrors.ErrCodeConflict)
	})
}

func TestWarrantyService_GetWarranty(t *testing.T) {
	claims := customerClaims()
	w := &models.Warranty{ID: uuid.New(), CustomerID: claims.UserID}

	f := newWarrantyFixture(t)
	f.warranties.On("GetWarrantyByID", mock.Anything, w.ID).Return(w, nil).Twice()

	got, err := f.svc.GetWarranty(context.Background(), claims, w.ID)
	require.NoError(t, err)
	assert.Equal(t, w.ID, got.ID)

	_, err = f.svc.GetWarranty(context.Background(), customerClaims(), w.ID)
	assertAppCode(t, err, appErrors.ErrCodeForbidden)
}

func TestWarrantyService_Lists(t *testing.T) {
	f := newWarrantyFixture(t)
	customerID := uuid.New()

	f.warranties.On("ListWarrantiesByCustomer", mock.Anything, customerID).Return([]*models.Warranty{{}, {}}, nil).Once()
	f.warranties.On("ListWarranties", mock.Anything, models.WarrantyStatusActive, 1, 10).Return([]*models.Warranty{{}}, 7, nil).Once()

	mine, err := f.svc.ListMyWarranties(context.Background(), customerID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, total, err := f.svc.ListWarranties(context.Background(), models.WarrantyStatusActive, 1, 10)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, 7, total)
}

func TestWarrantyService_LookupWarranty(t *testing.T) {
	expires := time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC)

	t.Run("Loads public fields and caches them", func(t *testing.T) {
		f := newWarrantyFixture(t)

		f.cache.On("Get", mock.Anything, "warranty-lookup:WR-2025-ABC123", mock.Anything).Return(false, nil).Once()
		f.warranties.On("GetWarrantyByNumber", mock.Anything, "WR-2025-ABC123").Return(&models.Warranty{
			WarrantyNumber: "WR-2025-ABC123", ProductName: "Desert Cooler 70L", SerialNumber: "SECRET",
			Status: models.WarrantyStatusActive, ExpiresAt: expires,
		}, nil).Once()
		f.cache.On("Set", mock.Anything, "warranty-lookup:WR-2025-ABC123", mock.Anything, mock.Anything).Return(nil).Once()

		lookup, err := f.svc.LookupWarranty(context.Background(), " wr-2025-abc123 ")

		require.NoError(t, err)
		assert.Equal(t, &models.WarrantyLookup{
			WarrantyNumber: "WR-2025-ABC123", ProductName: "Desert Cooler 70L", Status: models.WarrantyStatusActive, ExpiresAt: expires,
		}, lookup)
	})

	t.Run("Unknown number", func(t *testing.T) {
		f := newWarrantyFixture(t)

		f.cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, nil).Once()
		f.warranties.On("GetWarrantyByNumber", mock.Anything, "WR-0000-000000").Return(nil, repository.ErrNotFound).Once()

		_, err := f.svc.LookupWarranty(context.Background(), "WR-0000-000000")

		assertAppCode(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestWarrantyService_VoidWarranty(t *testing.T) {
	t.Run("Success invalidates the lookup", func(t *testing.T) {
		f := newWarrantyFixture(t)
		w := &models.Warranty{ID: uuid.New(), WarrantyNumber: "WR-2025-ABC123", Status: models.WarrantyStatusActive}

		f.warranties.On("GetWarrantyByID", mock.Anything, w.ID).Return(w, nil).Once()
		f.warranties.On("UpdateWarrantyStatus", mock.Anything, w.ID, models.WarrantyStatusVoid).Return(nil).Once()
		f.cache.On("Delete", mock.Anything, "warranty-lookup:WR-2025-ABC123").Return(nil).Once()

		got, err := f.svc.VoidWarranty(context.Background(), w.ID)

		require.NoError(t, err)
		assert.Equal(t, models.WarrantyStatusVoid, got.Status)
	})

	t.Run("Already void", func(t *testing.T) {
		f := newWarrantyFixture(t)
		w := &models.Warranty{ID: uuid.New(), Status: models.WarrantyStatusVoid}

		f.warranties.On("GetWarrantyByID", mock.Anything, w.ID).Return(w, nil).Once()

		_, err := f.svc.VoidWarranty(context.Background(), w.ID)

		assertAppCode(t, err, appErrors.ErrCodeConflict)
	})
}

func TestWarrantyService_SendExpiryReminders(t *testing.T) {
	now := time.Date(2026, 3, 25, 9, 0, 0, 0, time.UTC)
	window := 30 * 24 * time.Hour

	sent := &models.Warranty{ID: uuid.New(), WarrantyNumber: "WR-2025-AAAAAA", ProductName: "Desert Cooler 70L",
		ExpiresAt: now.AddDate(0, 0, 10), CustomerName: "Asha", CustomerEmail: "asha@example.com"}
	unrecorded := &models.Warranty{ID: uuid.New(), WarrantyNumber: "WR-2025-BBBBBB", ProductName: "Tower Cooler",
		ExpiresAt: now.AddDate(0, 0, 20), CustomerName: "Ravi", CustomerEmail: "ravi@example.com"}

	f := newWarrantyFixture(t)

	f.warranties.On("ListDueForReminder", mock.Anything, now, now.Add(window)).Return([]*models.Warranty{sent, unrecorded}, nil).Once()
	f.notifier.On("Deliver", mock.Anything, models.TemplateWarrantyReminder, mock.MatchedBy(func(r *models.EmailNotificationRequest) bool {
		return r.To == "asha@example.com"
	})).Return(&models.Notification{Status: models.StatusFailed}, errors.New("smtp down")).Once()
	f.notifier.On("Deliver", mock.Anything, models.TemplateWarrantyReminder, mock.MatchedBy(func(r *models.EmailNotificationRequest) bool {
		return r.To == "ravi@example.com"
	})).Return(nil, errors.New("db down")).Once()
	f.warranties.On("MarkReminderSent", mock.Anything, sent.ID, now).Return(nil).Once()

	reminded, err := f.svc.SendExpiryReminders(context.Background(), now, window)

	require.NoError(t, err)
	assert.Equal(t, 1, reminded)
}

func TestWarrantyService_ExpireWarranties(t *testing.T) {
	f := newWarrantyFixture(t)
	now := time.Now()

	f.warranties.On("ExpireDue", mock.Anything, now).Return([]string{"WR-2024-0A1B2C", "WR-2024-3D4E5F"}, nil).Once()
	f.cache.On("Delete", mock.Anything, "warranty-lookup:WR-2024-0A1B2C").Return(nil).Once()
	f.cache.On("Delete", mock.Anything, "warranty-lookup:WR-2024-3D4E5F").Return(errors.New("redis down")).Once()

	n, err := f.svc.ExpireWarranties(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
