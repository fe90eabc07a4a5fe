package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/coolbreeze/storefront/internal/models"
	"github.com/coolbreeze/storefront/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	UpdateImageURL(ctx context.Context, id uuid.UUID, imageURL string) error
	ListProducts(ctx context.Context, filter models.ProductFilter, page, size int) ([]*models.Product, int, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `p.id, p.category_id, p.kind, p.name, p.description, p.price, p.stock_quantity,
		p.sku, p.status, p.image_url, p.warranty_months, p.compatible_with, p.created_at, p.updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner, extra ...any) (*models.Product, error) {
	product := &models.Product{}

	dest := []any{
		&product.ID, &product.CategoryID, &product.Kind, &product.Name, &product.Description, &product.Price,
		&product.StockQuantity, &product.SKU, &product.Status, &product.ImageURL, &product.WarrantyMonths,
		pq.Array(&product.CompatibleWith), &product.CreatedAt, &product.UpdatedAt,
	}

	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}

	return product, nil
}

// compatibleWith never hands NULL to the NOT NULL array column.
func compatibleWith(product *models.Product) []string {
	if product.CompatibleWith == nil {
		return []string{}
	}

	return product.CompatibleWith
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO products (category_id, kind, name, description, price, stock_quantity, sku, status, warranty_months, compatible_with)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query,
		product.CategoryID, product.Kind, product.Name, product.Description, product.Price,
		product.StockQuantity, product.SKU, product.Status, product.WarrantyMonths, pq.Array(compatibleWith(product)),
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", mapError(err))
	}

	return nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + productColumns + `, c.id, c.name, c.description
		FROM products p
		JOIN categories c ON p.category_id = c.id
		WHERE p.id = $1`

	var category models.Category

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id), &category.ID, &category.Name, &category.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", mapError(err))
	}

	product.Category = &category

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products
		SET category_id = $1, name = $2, description = $3, price = $4, stock_quantity = $5,
			status = $6, warranty_months = $7, compatible_with = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query,
		product.CategoryID, product.Name, product.Description, product.Price, product.StockQuantity,
		product.Status, product.WarrantyMonths, pq.Array(compatibleWith(product)), product.ID,
	).Scan(&product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", mapError(err))
	}

	return nil
}

func (r *productRepository) UpdateImageURL(ctx context.Context, id uuid.UUID, imageURL string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `UPDATE products SET image_url = $1, updated_at = NOW() WHERE id = $2`, imageURL, id)
	if err != nil {
		return fmt.Errorf("failed to update product image: %w", err)
	}

	return checkAffected(result)
}

func productWhere(filter models.ProductFilter) (string, []any) {
	var (
		clauses []string
		args    []any
	)

	if filter.ActiveOnly {
		args = append(args, models.ProductStatusActive)
		clauses = append(clauses, fmt.Sprintf("p.status = $%d", len(args)))
	}

	if filter.Kind != "" {
		args = append(args, filter.Kind)
		clauses = append(clauses, fmt.Sprintf("p.kind = $%d", len(args)))
	}

	if filter.CategoryID != 0 {
		args = append(args, filter.CategoryID)
		clauses = append(clauses, fmt.Sprintf("p.category_id = $%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

func (r *productRepository) ListProducts(ctx context.Context, filter models.ProductFilter, page, size int) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	where, args := productWhere(filter)

	var total int
	if err := r.DB.QueryRowContext(dbCtx, `SELECT COUNT(*) FROM products p`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM products p%s ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d`,
		productColumns, where, len(args)+1, len(args)+2)

	rows, err := r.DB.QueryContext(dbCtx, query, append(args, size, offset(page, size))...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]*models.Product, 0, size)

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, total, nil
}
