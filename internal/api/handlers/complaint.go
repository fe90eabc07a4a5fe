package handlers

import (
	"log/slog"
	"net/http"

	"github.com/coolbreeze/storefront/internal/api/middleware"
	"github.com/coolbreeze/storefront/internal/models"
	service "github.com/coolbreeze/storefront/internal/services"
	"github.com/coolbreeze/storefront/internal/utils"
	"github.com/coolbreeze/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ComplaintHandler struct {
	complaintService service.ComplaintService
	validator        *validator.Validate
}

func NewComplaintHandler(complaintService service.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService, validator: validator.New()}
}

// FileComplaint godoc
//
//	@Summary		File a complaint
//	@Description	Opens a service ticket, optionally linked to an order or warranty, and emails an acknowledgement.
//	@Tags			Complaints
//	@Accept			json
//	@Produce		json
//	@Param			complaint	body		models.FileComplaintRequest	true	"Complaint details"
//	@Success		201			{object}	models.Complaint
//	@Failure		400			{object}	response.ErrorResponse
//	@Failure		403			{object}	response.ErrorResponse	"Referenced order or warranty is not yours"
//	@Security		BearerAuth
//	@Router			/complaints [post]
func (h *ComplaintHandler) FileComplaint() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r, "file complaint")
		if !ok {
			return
		}

		var req models.FileComplaintRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid complaint input")

			return
		}

		complaint, err := h.complaintService.FileComplaint(r.Context(), claims, &req)
		if err != nil {
			logger.Warn("Failed to file complaint", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Complaint filed", slog.String("ticketNumber", complaint.TicketNumber))
		response.Success(w, http.StatusCreated, complaint)
	}
}

// GetComplaint godoc
//
//	@Summary		Get a complaint
//	@Tags			Complaints
//	@Produce		json
//	@Param			id	path		string	true	"Complaint ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Complaint
//	@Failure		403	{object}	response.ErrorResponse
//	@Failure		404	{object}	response.ErrorResponse
//	@Security		BearerAuth
//	@Router			/complaints/{id} [get]
func (h *ComplaintHandler) GetComplaint() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r, "get complaint")
		if !ok {
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		complaint, err := h.complaintService.GetComplaint(r.Context(), claims, id)
		if err != nil {
			logger.Warn("Failed to get complaint", slog.String("complaintId", id.String()), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, complaint)
	}
}

// ListMyComplaints godoc
//
//	@Summary		List my complaints
//	@Tags			Complaints
//	@Produce		json
//	@Param			page		query		int	false	"Page number (default: 1)"
//	@Param			pageSize	query		int	false	"Items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Complaint}
//	@Security		BearerAuth
//	@Router			/complaints [get]
func (h *ComplaintHandler) ListMyComplaints() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, logger, ok := requireClaims(w, r, "list complaints")
		if !ok {
			return
		}

		page, pageSize := utils.ParsePagination(r)

		complaints, total, err := h.complaintService.ListMyComplaints(r.Context(), claims.UserID, page, pageSize)
		if err != nil {
			logger.Error("Failed to list complaints", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.NewPage(complaints, total, page, pageSize))
	}
}

// ListComplaints godoc
//
//	@Summary		List all complaints
//	@Tags			Admin
//	@Produce		json
//	@Param			status		query		string	false	"open, in_progress, resolved or closed"
//	@Param			page		query		int		false	"Page number (default: 1)"
//	@Param			pageSize	query		int		false	"Items per page (default: 10, max: 100)"
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Complaint}
//	@Security		BearerAuth
//	@Router			/admin/complaints [get]
func (h *ComplaintHandler) ListComplaints() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())
		page, pageSize := utils.ParsePagination(r)
		status := models.ComplaintStatus(r.URL.Query().Get("status"))

		complaints, total, err := h.complaintService.ListComplaints(r.Context(), status, page, pageSize)
		if err != nil {
			logger.Error("Failed to list complaints", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, models.NewPage(complaints, total, page, pageSize))
	}
}

// UpdateComplaintStatus godoc
//
//	@Summary		Update complaint status
//	@Description	Moves a ticket through open, in_progress, resolved and closed. Resolving emails the customer.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Complaint ID (UUID)"	Format(uuid)
//	@Param			status	body		models.UpdateComplaintStatusRequest	true	"New status and notes"
//	@Success		200		{object}	models.Complaint
//	@Failure		404		{object}	response.ErrorResponse
//	@Failure		409		{object}	response.ErrorResponse	"Illegal status transition"
//	@Security		BearerAuth
//	@Router			/admin/complaints/{id}/status [patch]
func (h *ComplaintHandler) UpdateComplaintStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			response.Error(w, err)

			return
		}

		logger = logger.With(slog.String("complaintId", id.String()))

		var req models.UpdateComplaintStatusRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid complaint status input")

			return
		}

		complaint, err := h.complaintService.UpdateComplaintStatus(r.Context(), id, &req)
		if err != nil {
			logger.Warn("Failed to update complaint", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Complaint status updated", slog.String("newStatus", string(req.Status)))
		response.Success(w, http.StatusOK, complaint)
	}
}
