package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/coolbreeze/storefront/internal/api/middleware"
	"github.com/coolbreeze/storefront/internal/cache"
	appErrors "github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/models"
	repository "github.com/coolbreeze/storefront/internal/repositories"
	"github.com/coolbreeze/storefront/internal/utils"
	"github.com/coolbreeze/storefront/pkg/storage"
	"github.com/google/uuid"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	ListProducts(ctx context.Context, filter models.ProductFilter, page, pageSize int) ([]*models.Product, int, error)
	// UploadImage sniffs, stores and links a product image.
	UploadImage(ctx context.Context, id uuid.UUID, data []byte) (*models.Product, error)
}

type productService struct {
	repo          repository.ProductRepository
	cache         cache.Cache
	images        storage.ImageStore
	maxImageBytes int64
}

func NewProductService(repo repository.ProductRepository, cache cache.Cache, images storage.ImageStore, maxImageBytes int64) ProductService {
	return &productService{repo: repo, cache: cache, images: images, maxImageBytes: maxImageBytes}
}

func productKey(id uuid.UUID) string {
	return cache.Key(cache.ProductKeyPrefix, id.String())
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		CategoryID:     req.CategoryID,
		Kind:           req.Kind,
		Name:           req.Name,
		Description:    req.Description,
		Price:          utils.RoundMoney(req.Price),
		StockQuantity:  req.StockQuantity,
		SKU:            req.SKU,
		Status:         models.ProductStatusActive,
		CompatibleWith: req.CompatibleWith,
	}

	switch {
	case req.WarrantyMonths != nil:
		product.WarrantyMonths = *req.WarrantyMonths
	case req.Kind == models.ProductKindCooler:
		product.WarrantyMonths = models.DefaultCoolerWarrantyMonths
	default:
		product.WarrantyMonths = models.DefaultSparePartWarrantyMonths
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, appErrors.DuplicateEntryError("A product with this SKU already exists").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	logger := middleware.LoggerFromContext(ctx)

	product, err := cache.Remember(ctx, s.cache, productKey(id), 0, func(ctx context.Context) (*models.Product, error) {
		return s.repo.GetProductByID(ctx, id)
	}, func(err error) {
		logger.Warn("Product cache unavailable", slog.String("productId", id.String()), slog.String("error", err.Error()))
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}

	if req.Name != nil {
		product.Name = *req.Name
	}

	if req.Description != nil {
		product.Description = *req.Description
	}

	if req.Price != nil {
		product.Price = utils.RoundMoney(*req.Price)
	}

	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}

	if req.Status != nil {
		product.Status = *req.Status
	}

	if req.WarrantyMonths != nil {
		product.WarrantyMonths = *req.WarrantyMonths
	}

	if req.CompatibleWith != nil {
		product.CompatibleWith = req.CompatibleWith
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, appErrors.DatabaseError("Failed to update product").WithError(err)
	}

	s.invalidate(ctx, id)

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, filter models.ProductFilter, page, pageSize int) ([]*models.Product, int, error) {
	page, pageSize = utils.NormalizePage(page, pageSize)

	products, total, err := s.repo.ListProducts(ctx, filter, page, pageSize)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to list products").WithError(err)
	}

	return products, total, nil
}

func (s *productService) UploadImage(ctx context.Context, id uuid.UUID, data []byte) (*models.Product, error) {
	if s.images == nil {
		return nil, appErrors.InternalError("Image storage is not configured")
	}

	if s.maxImageBytes > 0 && int64(len(data)) > s.maxImageBytes {
		return nil, appErrors.PayloadTooLargeError(fmt.Sprintf("Image exceeds %d bytes", s.maxImageBytes))
	}

	contentType, ext, err := storage.DetectImage(data)
	if err != nil {
		return nil, appErrors.ValidationError("Image must be JPEG, PNG or WebP").WithError(err)
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	key := fmt.Sprintf("products/%s/%s%s", id, uuid.NewString(), ext)

	url, err := s.images.Put(ctx, key, contentType, bytes.NewReader(data))
	if err != nil {
		return nil, appErrors.ThirdPartyError("Failed to upload image").WithError(err)
	}

	if err := s.repo.UpdateImageURL(ctx, id, url); err != nil {
		return nil, appErrors.DatabaseError("Failed to save image URL").WithError(err)
	}

	s.invalidate(ctx, id)

	product.ImageURL = url

	return product, nil
}

func (s *productService) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Delete(ctx, productKey(id)); err != nil {
		middleware.LoggerFromContext(ctx).Warn("Failed to invalidate product cache",
			slog.String("productId", id.String()), slog.String("error", err.Error()))
	}
}
