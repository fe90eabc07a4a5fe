package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/coolbreeze/storefront/internal/models"
	"github.com/coolbreeze/storefront/internal/utils"
	"github.com/google/uuid"
)

type CartRepository interface {
	// CreateCart inserts the customer's cart. If one already exists the
	// stored cart is loaded into cart instead, so two first requests racing
	// end up with the same row.
	CreateCart(ctx context.Context, cart *models.Cart) error
	GetCartByCustomerID(ctx context.Context, customerID uuid.UUID) (*models.Cart, error)
	UpdateCart(ctx context.Context, cart *models.Cart) error
}

const cartColumns = `id, user_id, items, total, created_at, updated_at`

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

func scanCart(row rowScanner, cart *models.Cart) error {
	var items []byte

	if err := row.Scan(&cart.ID, &cart.UserID, &items, &cart.Total, &cart.CreatedAt, &cart.UpdatedAt); err != nil {
		return err
	}

	cart.Items = nil
	if err := json.Unmarshal(items, &cart.Items); err != nil {
		return fmt.Errorf("failed to decode cart items: %w", err)
	}

	if cart.Items == nil {
		cart.Items = make(map[string]models.CartItem)
	}

	return nil
}

func (r *cartRepository) CreateCart(ctx context.Context, cart *models.Cart) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	items, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("failed to encode cart items: %w", err)
	}

	// The no-op update makes RETURNING yield the existing row on conflict.
	query := `
		INSERT INTO carts (id, user_id, items, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING ` + cartColumns

	row := r.DB.QueryRowContext(dbCtx, query, cart.ID, cart.UserID, items, cart.Total)
	if err := scanCart(row, cart); err != nil {
		return fmt.Errorf("failed to insert cart: %w", mapError(err))
	}

	return nil
}

func (r *cartRepository) GetCartByCustomerID(ctx context.Context, customerID uuid.UUID) (*models.Cart, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + cartColumns + ` FROM carts WHERE user_id = $1`

	cart := &models.Cart{}
	if err := scanCart(r.DB.QueryRowContext(dbCtx, query, customerID), cart); err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", mapError(err))
	}

	return cart, nil
}

func (r *cartRepository) UpdateCart(ctx context.Context, cart *models.Cart) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	items, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("failed to encode cart items: %w", err)
	}

	query := `
		UPDATE carts
		SET items = $1, total = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at`

	if err := r.DB.QueryRowContext(dbCtx, query, items, cart.Total, cart.ID).Scan(&cart.UpdatedAt); err != nil {
		return fmt.Errorf("failed to update cart: %w", mapError(err))
	}

	return nil
}
