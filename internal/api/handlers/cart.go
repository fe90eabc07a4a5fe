package handlers

import (
	"log/slog"
	"net/http"

	"github.com/coolbreeze/storefront/internal/models"
	service "github.com/coolbreeze/storefront/internal/services"
	"github.com/coolbreeze/storefront/internal/utils"
	"github.com/coolbreeze/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GetCart godoc
//
//	@Summary		Get the current cart
//	@Description	Returns the customer's cart, creating an empty one on first use.
//	@Tags			Carts
//	@Produce		json
//	@Success		200	{object}	models.Cart
//	@Failure		401	{object}	response.ErrorResponse
//	@Security		BearerAuth
//	@Router			/carts [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r, "get cart")
		if !ok {
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to get cart", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// AddItem godoc
//
//	@Summary		Add an item to the cart
//	@Description	Adds a product at its current price. Quantity is checked against stock.
//	@Tags			Carts
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.AddItemRequest	true	"Item to add"
//	@Success		200		{object}	models.Cart
//	@Failure		400		{object}	response.ErrorResponse	"Invalid input, inactive product or insufficient stock"
//	@Failure		404		{object}	response.ErrorResponse	"Product not found"
//	@Security		BearerAuth
//	@Router			/carts/items [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r, "add cart item")
		if !ok {
			return
		}

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid add item input")

			return
		}

		cart, err := h.cartService.AddItem(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Warn("Failed to add cart item", slog.String("productId", req.ProductID.String()), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Item added to cart", slog.String("productId", req.ProductID.String()), slog.Int("quantity", req.Quantity))
		response.Success(w, http.StatusOK, cart)
	}
}

// UpdateQuantity godoc
//
//	@Summary		Change an item quantity
//	@Description	Sets the quantity of a cart line. Zero removes the line.
//	@Tags			Carts
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.UpdateQuantityRequest	true	"New quantity"
//	@Success		200		{object}	models.Cart
//	@Failure		400		{object}	response.ErrorResponse
//	@Security		BearerAuth
//	@Router			/carts/items [put]
func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r, "update cart item")
		if !ok {
			return
		}

		var req models.UpdateQuantityRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid update quantity input")

			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Warn("Failed to update cart item", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, cart)
	}
}

// ClearCart godoc
//
//	@Summary		Empty the cart
//	@Tags			Carts
//	@Success		204
//	@Failure		401	{object}	response.ErrorResponse
//	@Security		BearerAuth
//	@Router			/carts [delete]
func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r, "clear cart")
		if !ok {
			return
		}

		if err := h.cartService.Clear(r.Context(), claims.UserID); err != nil {
			logger.Error("Failed to clear cart", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
