package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/coolbreeze/storefront/internal/api/middleware"
	"github.com/coolbreeze/storefront/internal/cache"
	appErrors "github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/models"
	repository "github.com/coolbreeze/storefront/internal/repositories"
	"github.com/coolbreeze/storefront/internal/templates"
	"github.com/coolbreeze/storefront/internal/utils"
	"github.com/google/uuid"
)

const qrCodeSize = 256

type WarrantyService interface {
	RegisterWarranty(ctx context.Context, claims *models.Claims, req *models.RegisterWarrantyRequest) (*models.Warranty, error)
	GetWarranty(ctx context.Context, claims *models.Claims, id uuid.UUID) (*models.Warranty, error)
	ListMyWarranties(ctx context.Context, customerID uuid.UUID) ([]*models.Warranty, error)
	ListWarranties(ctx context.Context, status models.WarrantyStatus, page, size int) ([]*models.Warranty, int, error)
	LookupWarranty(ctx context.Context, number string) (*models.WarrantyLookup, error)
	VoidWarranty(ctx context.Context, id uuid.UUID) (*models.Warranty, error)
	// SendExpiryReminders emails owners of active warranties expiring within
	// the window and returns how many were reminded.
	SendExpiryReminders(ctx context.Context, now time.Time, within time.Duration) (int, error)
	ExpireWarranties(ctx context.Context, now time.Time) (int64, error)
}

type warrantyService struct {
	repo        repository.WarrantyRepository
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	notifier    NotificationService
	cache       cache.Cache
	email       EmailSettings
	now         func() time.Time
}

func NewWarrantyService(repo repository.WarrantyRepository, orderRepo repository.OrderRepository, productRepo repository.ProductRepository,
	notifier NotificationService, cache cache.Cache, email EmailSettings,
) WarrantyService {
	return &warrantyService{
		repo:        repo,
		orderRepo:   orderRepo,
		productRepo: productRepo,
		notifier:    notifier,
		cache:       cache,
		email:       email,
		now:         time.Now,
	}
}

// NewWarrantyNumber returns WR-YYYY-xxxxxx.
func NewWarrantyNumber(now time.Time) string {
	return fmt.Sprintf("WR-%d-%s", now.Year(), utils.ShortCode(6))
}

func (s *warrantyService) lookupURL(number string) string {
	return strings.TrimRight(s.email.SiteURL, "/") + "/warranty/" + number
}

func (s *warrantyService) RegisterWarranty(ctx context.Context, claims *models.Claims, req *models.RegisterWarrantyRequest) (*models.Warranty, error) {
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

	if order.Status != models.OrderStatusDelivered {
		return nil, appErrors.BadRequestError("Warranty can be registered once the order is delivered")
	}

	item, ok := order.HasProduct(req.ProductID)
	if !ok {
		return nil, appErrors.BadRequestError("Product is not part of this order")
	}

	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if product.Kind != models.ProductKindCooler || product.WarrantyMonths <= 0 {
		return nil, appErrors.BadRequestError("This product does not carry a registrable warranty")
	}

	registered, err := s.repo.CountForOrderItem(ctx, order.ID, product.ID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to check existing warranties").WithError(err)
	}

	if registered >= item.Quantity {
		return nil, appErrors.ConflictError(fmt.Sprintf("All %d units of this product already have a warranty", item.Quantity))
	}

	purchaseDate := order.UpdatedAt
	if order.DeliveredAt != nil {
		purchaseDate = *order.DeliveredAt
	}

	warranty := &models.Warranty{
		ID:             uuid.New(),
		WarrantyNumber: NewWarrantyNumber(s.now()),
		CustomerID:     claims.UserID,
		OrderID:        order.ID,
		ProductID:      product.ID,
		ProductName:    item.ProductName,
		SerialNumber:   strings.ToUpper(req.SerialNumber),
		PurchaseDate:   purchaseDate,
		ExpiresAt:      purchaseDate.AddDate(0, product.WarrantyMonths, 0),
		Status:         models.WarrantyStatusActive,
	}

	if err := s.repo.CreateWarranty(ctx, warranty); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, appErrors.DuplicateEntryError("Serial number already registered").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to register warranty").WithError(err)
	}

	lookupURL := s.lookupURL(warranty.WarrantyNumber)

	qrCode, err := templates.QRCodeDataURI(lookupURL, qrCodeSize)
	if err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to render warranty QR code", slog.String("error", err.Error()))
	}

	customerName := ""
	if order.ShippingAddress != nil {
		customerName = order.ShippingAddress.Name
	}

	notify(ctx, s.notifier, models.TemplateWarrantyRegistered, order.ContactEmail, templates.WarrantyRegistered{
		CustomerName: customerName,
		Warranty:     warranty,
		LookupURL:    lookupURL,
		QRCode:       qrCode,
	}, nil)

	return warranty, nil
}

func (s *warrantyService) getWarranty(ctx context.Context, id uuid.UUID) (*models.Warranty, error) {
	warranty, err := s.repo.GetWarrantyByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Warranty not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch warranty").WithError(err)
	}

	return warranty, nil
}

func (s *warrantyService) GetWarranty(ctx context.Context, claims *models.Claims, id uuid.UUID) (*models.Warranty, error) {
	warranty, err := s.getWarranty(ctx, id)
	if err != nil {
		return nil, err
	}

	if !canAccess(claims, warranty.CustomerID) {
		return nil, appErrors.ForbiddenError("You do not have access to this warranty")
	}

	return warranty, nil
}

func (s *warrantyService) ListMyWarranties(ctx context.Context, customerID uuid.UUID) ([]*models.Warranty, error) {
	warranties, err := s.repo.ListWarrantiesByCustomer(ctx, customerID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list warranties").WithError(err)
	}

	return warranties, nil
}

func (s *warrantyService) ListWarranties(ctx context.Context, status models.WarrantyStatus, page, size int) ([]*models.Warranty, int, error) {
	page, size = utils.NormalizePage(page, size)

	warranties, total, err := s.repo.ListWarranties(ctx, status, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to list warranties").WithError(err)
	}

	return warranties, total, nil
}

func (s *warrantyService) LookupWarranty(ctx context.Context, number string) (*models.WarrantyLookup, error) {
	number = strings.ToUpper(strings.TrimSpace(number))
	logger := middleware.LoggerFromContext(ctx)

	lookup, err := cache.Remember(ctx, s.cache, cache.Key(cache.WarrantyLookupKeyPrefix, number), 0,
		func(ctx context.Context) (*models.WarrantyLookup, error) {
			w, err := s.repo.GetWarrantyByNumber(ctx, number)
			if err != nil {
				return nil, err
			}

			return &models.WarrantyLookup{
				WarrantyNumber: w.WarrantyNumber,
				ProductName:    w.ProductName,
				Status:         w.Status,
				ExpiresAt:      w.ExpiresAt,
			}, nil
		},
		func(err error) {
			logger.Warn("Warranty lookup cache unavailable", slog.String("error", err.Error()))
		})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Warranty not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to look up warranty").WithError(err)
	}

	return lookup, nil
}

func (s *warrantyService) VoidWarranty(ctx context.Context, id uuid.UUID) (*models.Warranty, error) {
	warranty, err := s.getWarranty(ctx, id)
	if err != nil {
		return nil, err
	}

	if warranty.Status == models.WarrantyStatusVoid {
		return nil, appErrors.ConflictError("Warranty is already void")
	}

	if err := s.repo.UpdateWarrantyStatus(ctx, id, models.WarrantyStatusVoid); err != nil {
		return nil, appErrors.DatabaseError("Failed to void warranty").WithError(err)
	}

	warranty.Status = models.WarrantyStatusVoid

	if err := s.cache.Delete(ctx, cache.Key(cache.WarrantyLookupKeyPrefix, warranty.WarrantyNumber)); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to invalidate warranty lookup", slog.String("error", err.Error()))
	}

	return warranty, nil
}

func (s *warrantyService) SendExpiryReminders(ctx context.Context, now time.Time, within time.Duration) (int, error) {
	due, err := s.repo.ListDueForReminder(ctx, now, now.Add(within))
	if err != nil {
		return 0, appErrors.DatabaseError("Failed to list warranties due for reminder").WithError(err)
	}

	logger := middleware.LoggerFromContext(ctx)
	reminded := 0

	for _, w := range due {
		if ctx.Err() != nil {
			return reminded, ctx.Err()
		}

		n := notify(ctx, s.notifier, models.TemplateWarrantyReminder, w.CustomerEmail, templates.WarrantyReminder{
			CustomerName: w.CustomerName,
			Warranty:     w,
			DaysLeft:     w.DaysLeft(now),
			LookupURL:    s.lookupURL(w.WarrantyNumber),
		}, nil)
		if n == nil {
			continue
		}

		// A failed send is retried from the notification log, so the
		// reminder counts as handled once it is recorded.
		if err := s.repo.MarkReminderSent(ctx, w.ID, now); err != nil {
			logger.Error("Failed to stamp warranty reminder",
				slog.String("warrantyNumber", w.WarrantyNumber), slog.String("error", err.Error()))

			continue
		}

		reminded++
	}

	return reminded, nil
}

func (s *warrantyService) ExpireWarranties(ctx context.Context, now time.Time) (int64, error) {
	numbers, err := s.repo.ExpireDue(ctx, now)
	if err != nil {
		return 0, appErrors.DatabaseError("Failed to expire warranties").WithError(err)
	}

	for _, number := range numbers {
		if err := s.cache.Delete(ctx, cache.Key(cache.WarrantyLookupKeyPrefix, number)); err != nil {
			middleware.LoggerFromContext(ctx).Warn("Failed to invalidate warranty lookup",
				slog.String("warrantyNumber", number), slog.String("error", err.Error()))
		}
	}

	return int64(len(numbers)), nil
}
