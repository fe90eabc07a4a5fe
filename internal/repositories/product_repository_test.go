package repository_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coolbreeze/storefront/internal/models"
	repository "github.com/coolbreeze/storefront/internal/repositories"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productRowColumns = []string{
	"id", "category_id", "kind", "name", "description", "price", "stock_quantity", "sku", "status",
	"image_url", "warranty_months", "compatible_with", "created_at", "updated_at",
}

func TestProductRepository_CreateProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewProductRepo(db)

	product := &models.Product{
		CategoryID: 2, Kind: models.ProductKindSparePart, Name: "Honeycomb Pad 18in", Price: 499,
		StockQuantity: 40, SKU: "PAD-HC-18", Status: models.ProductStatusActive, WarrantyMonths: 6,
		CompatibleWith: []string{"Desert 70L", "Tower 40L"},
	}
	newID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(q("INSERT INTO products")).
		WithArgs(product.CategoryID, product.Kind, product.Name, product.Description, product.Price, product.StockQuantity,
			product.SKU, product.Status, product.WarrantyMonths, pq.Array(product.CompatibleWith)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(newID, now, now))

	require.NoError(t, repo.CreateProduct(t.Context(), product))
	assert.Equal(t, newID, product.ID)
}

func TestProductRepository_GetProductByID(t *testing.T) {
	t.Run("Success - With category and compatibility list", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)
		id := uuid.New()
		now := time.Now()

		columns := append(append([]string{}, productRowColumns...), "c_id", "c_name", "c_description")
		mock.ExpectQuery(q("JOIN categories c ON p.category_id = c.id")).WithArgs(id).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(id, int64(2), "spare_part", "Water Pump", "", 349.0, 12, "PUMP-18W",
				"active", "", 6, "{\"Desert 70L\",\"Tower 40L\"}", now, now, int64(2), "Spare Parts", "Pumps and pads"))

		product, err := repo.GetProductByID(t.Context(), id)

		require.NoError(t, err)
		assert.Equal(t, models.ProductKindSparePart, product.Kind)
		assert.Equal(t, []string{"Desert 70L", "Tower 40L"}, product.CompatibleWith)
		require.NotNil(t, product.Category)
		assert.Equal(t, "Spare Parts", product.Category.Name)
	})

	t.Run("Fail - Not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)

		mock.ExpectQuery(q("FROM products p")).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetProductByID(t.Context(), uuid.New())

		require.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestProductRepository_ListProducts(t *testing.T) {
	t.Run("Success - Storefront filter", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)
		now := time.Now()
		filter := models.ProductFilter{Kind: models.ProductKindCooler, ActiveOnly: true}

		mock.ExpectQuery(q("SELECT COUNT(*) FROM products p WHERE p.status = $1 AND p.kind = $2")).
			WithArgs(models.ProductStatusActive, models.ProductKindCooler).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

		mock.ExpectQuery(q("ORDER BY p.created_at DESC LIMIT $3 OFFSET $4")).
			WithArgs(models.ProductStatusActive, models.ProductKindCooler, 10, 10).
			WillReturnRows(sqlmock.NewRows(productRowColumns).
				AddRow(uuid.New(), int64(1), "cooler", "Desert 70L", "", 12999.0, 5, "DC-70", "active", "", 12, "{}", now, now))

		products, total, err := repo.ListProducts(t.Context(), filter, 2, 10)

		require.NoError(t, err)
		assert.Equal(t, 11, total)
		require.Len(t, products, 1)
		assert.Equal(t, "DC-70", products[0].SKU)
		assert.Empty(t, products[0].CompatibleWith)
	})

	t.Run("Success - No filter", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)

		mock.ExpectQuery(q("SELECT COUNT(*) FROM products p")).WithArgs().
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(q("LIMIT $1 OFFSET $2")).WithArgs(10, 0).
			WillReturnRows(sqlmock.NewRows(productRowColumns))

		products, total, err := repo.ListProducts(t.Context(), models.ProductFilter{}, 1, 10)

		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, products)
	})
}

func TestProductRepository_UpdateImageURL(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)
		id := uuid.New()

		mock.ExpectExec(q("UPDATE products SET image_url = $1")).WithArgs("https://cdn/x.png", id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateImageURL(t.Context(), id, "https://cdn/x.png"))
	})

	t.Run("Fail - Not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := repository.NewProductRepo(db)

		mock.ExpectExec(q("UPDATE products SET image_url")).WillReturnResult(sqlmock.NewResult(0, 0))

		require.ErrorIs(t, repo.UpdateImageURL(t.Context(), uuid.New(), "u"), repository.ErrNotFound)
	})
}

func TestProductRepository_UpdateProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewProductRepo(db)
	product := &models.Product{ID: uuid.New(), CategoryID: 1, Name: "Desert 70L", Price: 11999, StockQuantity: 3, Status: "active", WarrantyMonths: 12}
	now := time.Now()

	mock.ExpectQuery(q("UPDATE products")).
		WithArgs(product.CategoryID, product.Name, product.Description, product.Price, product.StockQuantity,
			product.Status, product.WarrantyMonths, pq.Array([]string{}), product.ID).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

	require.NoError(t, repo.UpdateProduct(t.Context(), product))
	assert.WithinDuration(t, now, product.UpdatedAt, time.Second)
}
