package handlers

import (
	"log/slog"
	"net/http"

	"github.com/coolbreeze/storefront/internal/api/middleware"
	"github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/models"
	service "github.com/coolbreeze/storefront/internal/services"
	"github.com/coolbreeze/storefront/internal/utils"
	"github.com/coolbreeze/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type WarrantyHandler struct {
	warrantyService service.WarrantyService
	validator       *validator.Validate
}

func NewWarrantyHandler(warrantyService service.WarrantyService) *WarrantyHandler {
	return &WarrantyHandler{warrantyService: warrantyService, validator: validator.New()}
}

// RegisterWarranty godoc
//
//	@Summary		Register a cooler warranty
//	@Description	Registers the serial number of a delivered cooler and emails a certificate with a QR code.
//	@Tags			Warranties
//	@Accept			json
//	@Produce		json
//	@Param			warranty	body		models.RegisterWarrantyRequest	true	"Order, product and serial number"
//	@Success		201			{object}	models.Warranty
//	@Failure		400			{object}	response.ErrorResponse	"Order not delivered or product not eligible"
//	@Failure		403			{object}	response.ErrorResponse	"Not your order"
//	@Failure		409			{object}	response.ErrorResponse	"Serial number already registered"
//	@Security		BearerAuth
//	@Router			/warranties [post]
func (h *WarrantyHandler) RegisterWarranty() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r, "register warranty")
		if !ok {
			return
		}

		var req models.RegisterWarrantyRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid warranty input")

			return
		}

		warranty, err := h.warrantyService.RegisterWarranty(r.Context(), claims, &req)
		if err != nil {
			logger.Warn("Failed to register warranty", slog.String("orderId", req.OrderID.String()), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Warranty registered", slog.String("warrantyNumber", warranty.WarrantyNumber))
		response.Success(w, http.StatusCreated, warranty)
	}
}

// GetWarranty godoc
//
//	@Summary		Get a warranty
//	@Tags			Warranties
//	@Produce		json
//	@Param			id	path		string	true	"Warranty ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Warranty
//	@Failure		403	{object}	response.ErrorResponse
//	@Failure		404	{object}	response.ErrorResponse
//	@Security		BearerAuth
//	@Router			/warranties/{id} [get]
func (h *WarrantyHandler) GetWarranty() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r, "get warranty")
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		warranty, err := h.warrantyService.GetWarranty(r.Context(), claims, id)
		if err != nil {
			logger.Warn("Failed to get warranty", slog.String("warrantyId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, warranty)
	}
}

// ListMyWarranties godoc
//
//	@Summary		List my warranties
//	@Tags			Warranties
//	@Produce		json
//	@Success		200	{array}		models.Warranty
//	@Failure		401	{object}	response.ErrorResponse
//	@Security		BearerAuth
//	@Router			/warranties [get]
func (h *WarrantyHandler) ListMyWarranties() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r, "list warranties")
		if !ok {
			return
		}

		warranties, err := h.warrantyService.ListMyWarranties(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to list warranties", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		if warranties == nil {
			warranties = []*models.Warranty{}
		}

		response.Success(w, http.StatusOK, warranties)
	}
}

// LookupWarranty godoc
//
//	@Summary		Look up a warranty
//	@Description	Public check of a warranty number, as encoded in the certificate QR code.
//	@Tags			Warranties
//	@Produce		json
//	@Param			number	path		string	true	"Warranty number"
//	@Success		200		{object}	models.WarrantyLookup
//	@Failure		404		{object}	response.ErrorResponse
//	@Router			/warranties/lookup/{number} [get]
func (h *WarrantyHandler) LookupWarranty() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		number := r.PathValue("number")
		if number == "" {
			response.Error(w, errors.BadRequestError("Warranty number is required"))

			return
		}

		lookup, err := h.warrantyService.LookupWarranty(r.Context(), number)
		if err != nil {
			logger.Info("Warranty lookup failed", slog.String("number", number), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, lookup)
	}
}

// ListWarranties godoc
//
//	@Summary		List all warranties
//	@Tags			Admin
//	@Produce		json
//	@Param			status		query		string	false	"active, expired or void"
//	@Param			page		query		int		false	"Page number (default: 1)"
//	@Param			pageSize	query		int		false	"Items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Warranty}
//	@Security		BearerAuth
//	@Router			/admin/warranties [get]
func (h *WarrantyHandler) ListWarranties() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())
		page, pageSize := utils.ParsePagination(r)
		status := models.WarrantyStatus(r.URL.Query().Get("status"))

		warranties, total, err := h.warrantyService.ListWarranties(r.Context(), status, page, pageSize)
		if err != nil {
			logger.Error("Failed to list warranties", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.NewPage(warranties, total, page, pageSize))
	}
}

// VoidWarranty godoc
//
//	@Summary		Void a warranty
//	@Tags			Admin
//	@Produce		json
//	@Param			id	path		string	true	"Warranty ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Warranty
//	@Failure		404	{object}	response.ErrorResponse
//	@Failure		409	{object}	response.ErrorResponse	"Already void"
//	@Security		BearerAuth
//	@Router			/admin/warranties/{id}/void [post]
func (h *WarrantyHandler) VoidWarranty() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		warranty, err := h.warrantyService.VoidWarranty(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to void warranty", slog.String("warrantyId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Warranty voided", slog.String("warrantyNumber", warranty.WarrantyNumber))
		response.Success(w, http.StatusOK, warranty)
	}
}
