package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/coolbreeze/storefront/internal/api/middleware"
	appErrors "github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/models"
	service "github.com/coolbreeze/storefront/internal/services"
	"github.com/coolbreeze/storefront/internal/utils"
	"github.com/coolbreeze/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

const imageFormField = "image"

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
	maxImageBytes  int64
}

func NewProductHandler(productService service.ProductService, maxImageBytes int64) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator.New(), maxImageBytes: maxImageBytes}
}

// CreateProduct godoc
//
//	@Summary		Create a product
//	@Description	Adds an air cooler or spare part to the catalogue.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.CreateProductRequest	true	"Product details"
//	@Success		201		{object}	models.Product
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		403		{object}	response.ErrorResponse	"Admin access required"
//	@Failure		409		{object}	response.ErrorResponse	"SKU already exists"
//	@Security		BearerAuth
//	@Router			/admin/products [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid product input")

			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Failed to create product", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Product created", slog.String("productId", product.ID.String()), slog.String("sku", product.SKU))
		response.Success(w, http.StatusCreated, product)
	}
}

// GetProduct godoc
//
//	@Summary		Get a product
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		string	true	"Product ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Product
//	@Failure		400	{object}	response.ErrorResponse	"Invalid product ID"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Router			/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get product", slog.String("productId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// UpdateProduct godoc
//
//	@Summary		Update a product
//	@Description	Partially updates a product. Only the supplied fields change.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Product ID (UUID)"	Format(uuid)
//	@Param			product	body		models.UpdateProductRequest	true	"Fields to update"
//	@Success		200		{object}	models.Product
//	@Failure		400		{object}	response.ErrorResponse
//	@Failure		404		{object}	response.ErrorResponse
//	@Security		BearerAuth
//	@Router			/admin/products/{id} [put]
func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		logger = logger.With(slog.String("productId", id.String()))

		var req models.UpdateProductRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid product update input")

			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			logger.Error("Failed to update product", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Product updated")
		response.Success(w, http.StatusOK, product)
	}
}

// ListProducts godoc
//
//	@Summary		List products
//	@Description	Lists active catalogue products, optionally filtered by kind and category.
//	@Tags			Products
//	@Produce		json
//	@Param			kind		query		string	false	"cooler or spare_part"
//	@Param			category	query		int		false	"Category ID"
//	@Param			page		query		int		false	"Page number (default: 1)"
//	@Param			pageSize	query		int		false	"Items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Product}
//	@Failure		500			{object}	response.ErrorResponse
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())
		page, pageSize := utils.ParsePagination(r)

		filter := models.ProductFilter{
			Kind:       models.ProductKind(r.URL.Query().Get("kind")),
			ActiveOnly: true,
		}

		if raw := r.URL.Query().Get("category"); raw != "" {
			categoryID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				response.Error(w, appErrors.BadRequestError("Invalid category"))

				return
			}

			filter.CategoryID = categoryID
		}

		products, total, err := h.productService.ListProducts(r.Context(), filter, page, pageSize)
		if err != nil {
			logger.Error("Failed to list products", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.NewPage(products, total, page, pageSize))
	}
}

// UploadImage godoc
//
//	@Summary		Upload a product image
//	@Description	Accepts a JPEG, PNG or WebP file in the "image" multipart field and stores it on S3.
//	@Tags			Admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		string	true	"Product ID (UUID)"	Format(uuid)
//	@Param			image	formData	file	true	"Image file"
//	@Success		200		{object}	models.Product
//	@Failure		400		{object}	response.ErrorResponse	"Missing or unsupported file"
//	@Failure		413		{object}	response.ErrorResponse	"File too large"
//	@Security		BearerAuth
//	@Router			/admin/products/{id}/image [put]
func (h *ProductHandler) UploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		logger = logger.With(slog.String("productId", id.String()))

		// Leave room for the multipart framing around the file.
		r.Body = http.MaxBytesReader(w, r.Body, h.maxImageBytes+1<<20)

		file, _, err := r.FormFile(imageFormField)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				response.Error(w, appErrors.PayloadTooLargeError("Image exceeds the upload limit"))

				return
			}

			logger.Warn("Missing image upload", slog.String("error", err.Error()))
			response.Error(w, appErrors.BadRequestError("An image file is required in the \"image\" field"))

			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, h.maxImageBytes+1))
		if err != nil {
			response.Error(w, appErrors.BadRequestError("Failed to read image").WithError(err))

			return
		}

		product, err := h.productService.UploadImage(r.Context(), id, data)
		if err != nil {
			logger.Error("Failed to upload product image", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Product image uploaded", slog.String("imageUrl", product.ImageURL))
		response.Success(w, http.StatusOK, product)
	}
}
