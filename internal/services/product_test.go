package service_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	cacheMocks "github.com/coolbreeze/storefront/internal/cache/mocks"
	appErrors "github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/models"
	repository "github.com/coolbreeze/storefront/internal/repositories"
	"github.com/coolbreeze/storefront/internal/repositories/mocks"
	service "github.com/coolbreeze/storefront/internal/services"
	storageMocks "github.com/coolbreeze/storefront/pkg/storage/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func TestProductService_CreateProduct(t *testing.T) {
	req := &models.CreateProductRequest{
		CategoryID:    1,
		Kind:          models.ProductKindCooler,
		Name:          "Desert Cooler 70L",
		Price:         12499.999,
		StockQuantity: 10,
		SKU:           "DC-70L",
	}

	t.Run("Success - cooler gets default warranty", func(t *testing.T) {
		repo := mocks.NewProductRepository(t)
		svc := service.NewProductService(repo, cacheMocks.NewCache(t), nil, 0)

		repo.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.SKU == req.SKU && p.Status == models.ProductStatusActive && p.WarrantyMonths == 12
		})).Return(nil).Once()

		product, err := svc.CreateProduct(context.Background(), req)

		require.NoError(t, err)
		assert.InDelta(t, 12500.0, product.Price, 0.001)
	})

	t.Run("Success - spare part default and explicit override", func(t *testing.T) {
		repo := mocks.NewProductRepository(t)
		svc := service.NewProductService(repo, cacheMocks.NewCache(t), nil, 0)

		part := *req
		part.Kind = models.ProductKindSparePart

		repo.On("CreateProduct", mock.Anything, mock.Anything).Return(nil).Twice()

		product, err := svc.CreateProduct(context.Background(), &part)
		require.NoError(t, err)
		assert.Equal(t, 6, product.WarrantyMonths)

		months := 0
		part.WarrantyMonths = &months

		product, err = svc.CreateProduct(context.Background(), &part)
		require.NoError(t, err)
		assert.Equal(t, 0, product.WarrantyMonths)
	})

	t.Run("Failure - Duplicate SKU", func(t *testing.T) {
		repo := mocks.NewProductRepository(t)
		svc := service.NewProductService(repo, cacheMocks.NewCache(t), nil, 0)

		repo.On("CreateProduct", mock.Anything, mock.Anything).Return(repository.ErrDuplicate).Once()

		_, err := svc.CreateProduct(context.Background(), req)

		assertAppCode(t, err, appErrors.ErrCodeDuplicateEntry)
	})
}

func TestProductService_GetProductByID(t *testing.T) {
	id := uuid.New()
	key := "product:" + id.String()

	t.Run("Cache hit", func(t *testing.T) {
		repo := mocks.NewProductRepository(t)
		c := cacheMocks.NewCache(t)
		svc := service.NewProductService(repo, c, nil, 0)

		c.On("Get", mock.Anything, key, mock.Anything).Run(func(args mock.Arguments) {
			dest := args.Get(2).(**models.Product)
			*dest = &models.Product{ID: id, Name: "Cached"}
		}).Return(true, nil).Once()

		product, err := svc.GetProductByID(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, "Cached", product.Name)
	})

	t.Run("Cache miss loads and stores", func(t *testing.T) {
		repo := mocks.NewProductRepository(t)
		c := cacheMocks.NewCache(t)
		svc := service.NewProductService(repo, c, nil, 0)
		product := &models.Product{ID: id, Name: "Tower Cooler"}

		c.On("Get", mock.Anything, key, mock.Anything).Return(false, nil).Once()
		repo.On("GetProductByID", mock.Anything, id).Return(product, nil).Once()
		c.On("Set", mock.Anything, key, product, mock.Anything).Return(nil).Once()

		got, err := svc.GetProductByID(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("Cache down still serves", func(t *testing.T) {
		repo := mocks.NewProductRepository(t)
		c := cacheMocks.NewCache(t)
		svc := service.NewProductService(repo, c, nil, 0)

		c.On("Get", mock.Anything, key, mock.Anything).Return(false, errors.New("redis down")).Once()
		repo.On("GetProductByID", mock.Anything, id).Return(&models.Product{ID: id}, nil).Once()
		c.On("Set", mock.Anything, key, mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()

		_, err := svc.GetProductByID(context.Background(), id)

		require.NoError(t, err)
	})

	t.Run("Not found", func(t *testing.T) {
		repo := mocks.NewProductRepository(t)
		c := cacheMocks.NewCache(t)
		svc := service.NewProductService(repo, c, nil, 0)

		c.On("Get", mock.Anything, key, mock.Anything).Return(false, nil).Once()
		repo.On("GetProductByID", mock.Anything, id).Return(nil, repository.ErrNotFound).Once()

		_, err := svc.GetProductByID(context.Background(), id)

		assertAppCode(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestProductService_UpdateProduct(t *testing.T) {
	id := uuid.New()

	t.Run("Success - partial update invalidates cache", func(t *testing.T) {
		repo := mocks.NewProductRepository(t)
		c := cacheMocks.NewCache(t)
		svc := service.NewProductService(repo, c, nil, 0)

		price := 9999.0
		status := models.ProductStatusInactive

		repo.On("GetProductByID", mock.Anything, id).Return(&models.Product{ID: id, Name: "Old", Price: 100}, nil).Once()
		repo.On("UpdateProduct", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.Name == "Old" && p.Price == price && p.Status == status
		})).Return(nil).Once()
		c.On("Delete", mock.Anything, "product:"+id.String()).Return(nil).Once()

		product, err := svc.UpdateProduct(context.Background(), id, &models.UpdateProductRequest{Price: &price, Status: &status})

		require.NoError(t, err)
		assert.Equal(t, status, product.Status)
	})

	t.Run("Failure - Not found", func(t *testing.T) {
		repo := mocks.NewProductRepository(t)
		svc := service.NewProductService(repo, cacheMocks.NewCache(t), nil, 0)

		repo.On("GetProductByID", mock.Anything, id).Return(nil, repository.ErrNotFound).Once()

		_, err := svc.UpdateProduct(context.Background(), id, &models.UpdateProductRequest{})

		assertAppCode(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestProductService_ListProducts(t *testing.T) {
	repo := mocks.NewProductRepository(t)
	svc := service.NewProductService(repo, cacheMocks.NewCache(t), nil, 0)
	filter := models.ProductFilter{Kind: models.ProductKindCooler, ActiveOnly: true}

	repo.On("ListProducts", mock.Anything, filter, 2, 10).Return([]*models.Product{{}, {}}, 12, nil).Once()

	products, total, err := svc.ListProducts(context.Background(), filter, 2, 0)

	require.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, 12, total)
}

func TestProductService_UploadImage(t *testing.T) {
	id := uuid.New()

	t.Run("Success", func(t *testing.T) {
		repo := mocks.NewProductRepository(t)
		c := cacheMocks.NewCache(t)
		images := storageMocks.NewImageStore(t)
		svc := service.NewProductService(repo, c, images, 1024)

		repo.On("GetProductByID", mock.Anything, id).Return(&models.Product{ID: id}, nil).Once()
		images.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "products/"+id.String()+"/") && strings.HasSuffix(key, ".png")
		}), "image/png", mock.AnythingOfType("*bytes.Reader")).Return("https://cdn.coolbreeze.in/p.png", nil).Once()
		repo.On("UpdateImageURL", mock.Anything, id, "https://cdn.coolbreeze.in/p.png").Return(nil).Once()
		c.On("Delete", mock.Anything, "product:"+id.String()).Return(nil).Once()

		product, err := svc.UploadImage(context.Background(), id, pngHeader)

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.coolbreeze.in/p.png", product.ImageURL)
	})

	t.Run("Failure - Too large", func(t *testing.T) {
		svc := service.NewProductService(mocks.NewProductRepository(t), cacheMocks.NewCache(t), storageMocks.NewImageStore(t), 8)

		_, err := svc.UploadImage(context.Background(), id, pngHeader)

		assertAppCode(t, err, appErrors.ErrCodePayloadTooLarge)
	})

	t.Run("Failure - Not an image", func(t *testing.T) {
		svc := service.NewProductService(mocks.NewProductRepository(t), cacheMocks.NewCache(t), storageMocks.NewImageStore(t), 1024)

		_, err := svc.UploadImage(context.Background(), id, []byte("GIF89a not allowed"))

		assertAppCode(t, err, appErrors.ErrCodeValidation)
	})

	t.Run("Failure - Upload error", func(t *testing.T) {
		repo := mocks.NewProductRepository(t)
		images := storageMocks.NewImageStore(t)
		svc := service.NewProductService(repo, cacheMocks.NewCache(t), images, 1024)

		repo.On("GetProductByID", mock.Anything, id).Return(&models.Product{ID: id}, nil).Once()
		images.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", io.ErrUnexpectedEOF).Once()

		_, err := svc.UploadImage(context.Background(), id, pngHeader)

		assertAppCode(t, err, appErrors.ErrCodeThirdPartyError)
	})
}
