package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	appErrors "github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/models"
	repository "github.com/coolbreeze/storefront/internal/repositories"
	"github.com/coolbreeze/storefront/internal/utils"
	"github.com/google/uuid"
)

type CartService interface {
	// GetCart returns the customer's cart, creating an empty one on first use.
	GetCart(ctx context.Context, customerID uuid.UUID) (*models.Cart, error)
	AddItem(ctx context.Context, customerID uuid.UUID, req *models.AddItemRequest) (*models.Cart, error)
	UpdateQuantity(ctx context.Context, customerID uuid.UUID, req *models.UpdateQuantityRequest) (*models.Cart, error)
	Clear(ctx context.Context, customerID uuid.UUID) error
}

type cartService struct {
	repo        repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(repo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{repo: repo, productRepo: productRepo}
}

func (s *cartService) GetCart(ctx context.Context, customerID uuid.UUID) (*models.Cart, error) {
	cart, err := s.repo.GetCartByCustomerID(ctx, customerID)
	if err == nil {
		return cart, nil
	}

	if !errors.Is(err, repository.ErrNotFound) {
		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	now := time.Now()

	cart = &models.Cart{
		ID:        uuid.New(),
		UserID:    customerID,
		Items:     make(map[string]models.CartItem),
		Total:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateCart(ctx, cart); err != nil {
		return nil, appErrors.DatabaseError("Failed to create cart").WithError(err)
	}

	return cart, nil
}

func (s *cartService) AddItem(ctx context.Context, customerID uuid.UUID, req *models.AddItemRequest) (*models.Cart, error) {
	product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if !product.IsActive() {
		return nil, appErrors.BadRequestError("Product is not available")
	}

	cart, err := s.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	key := req.ProductID.String()
	item := cart.Items[key]

	if item.Quantity+req.Quantity > product.StockQuantity {
		return nil, appErrors.BadRequestError(fmt.Sprintf("Only %d units of %s are in stock", product.StockQuantity, product.Name))
	}

	item.ProductID = product.ID
	item.ProductName = product.Name
	item.UnitPrice = product.Price
	item.Quantity += req.Quantity
	item.TotalPrice = utils.RoundMoney(float64(item.Quantity) * item.UnitPrice)

	cart.Items[key] = item

	return s.save(ctx, cart)
}

func (s *cartService) UpdateQuantity(ctx context.Context, customerID uuid.UUID, req *models.UpdateQuantityRequest) (*models.Cart, error) {
	cart, err := s.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	key := req.ProductID.String()

	item, exists := cart.Items[key]
	if !exists {
		return nil, appErrors.BadRequestError("Item not found in the cart")
	}

	if req.Quantity == 0 {
		delete(cart.Items, key)

		return s.save(ctx, cart)
	}

	if req.Quantity > item.Quantity {
		product, err := s.productRepo.GetProductByID(ctx, req.ProductID)
		if err != nil {
			return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
		}

		if req.Quantity > product.StockQuantity {
			return nil, appErrors.BadRequestError(fmt.Sprintf("Only %d units of %s are in stock", product.StockQuantity, product.Name))
		}
	}

	item.Quantity = req.Quantity
	item.TotalPrice = utils.RoundMoney(item.UnitPrice * float64(item.Quantity))
	cart.Items[key] = item

	return s.save(ctx, cart)
}

func (s *cartService) Clear(ctx context.Context, customerID uuid.UUID) error {
	cart, err := s.GetCart(ctx, customerID)
	if err != nil {
		return err
	}

	if cart.IsEmpty() {
		return nil
	}

	cart.Empty(time.Now())

	_, err = s.save(ctx, cart)

	return err
}

func (s *cartService) save(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	cart.UpdatedAt = time.Now()
	cart.Total = calculateTotal(cart.Items)

	if err := s.repo.UpdateCart(ctx, cart); err != nil {
		return nil, appErrors.DatabaseError("Failed to update cart").WithError(err)
	}

	return cart, nil
}

func calculateTotal(items map[string]models.CartItem) float64 {
	var totalPrice float64

	for _, item := range items {
		totalPrice += item.TotalPrice
	}

	return utils.RoundMoney(totalPrice)
}
