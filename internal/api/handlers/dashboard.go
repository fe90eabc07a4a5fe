package handlers

import (
	"log/slog"
	"net/http"

	"github.com/coolbreeze/storefront/internal/api/middleware"
	service "github.com/coolbreeze/storefront/internal/services"
	"github.com/coolbreeze/storefront/internal/utils/response"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary godoc
//
//	@Summary		Dashboard summary
//	@Description	Order counts, revenue, today's orders, open complaints, active warranties and low-stock products.
//	@Tags			Admin
//	@Produce		json
//	@Success		200	{object}	models.DashboardSummary
//	@Security		BearerAuth
//	@Router			/admin/dashboard/summary [get]
func (h *DashboardHandler) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := h.dashboardService.Summary(r.Context())
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to load dashboard summary", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}

// Sales godoc
//
//	@Summary		Daily sales series
//	@Tags			Admin
//	@Produce		json
//	@Param			days	query		int	false	"Number of days, 1-365 (default: 30)"
//	@Success		200		{array}		models.SalesPoint
//	@Failure		400		{object}	response.ErrorResponse
//	@Security		BearerAuth
//	@Router			/admin/dashboard/sales [get]
func (h *DashboardHandler) Sales() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		series, err := h.dashboardService.SalesSeries(r.Context(), queryInt(r, "days"))
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Warn("Failed to load sales series", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, series)
	}
}

// TopProducts godoc
//
//	@Summary		Best-selling products
//	@Tags			Admin
//	@Produce		json
//	@Param			limit	query		int	false	"Number of products (default: 10, max: 50)"
//	@Success		200		{array}		models.TopProduct
//	@Security		BearerAuth
//	@Router			/admin/dashboard/top-products [get]
func (h *DashboardHandler) TopProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		top, err := h.dashboardService.TopProducts(r.Context(), queryInt(r, "limit"))
		if err != nil {
			middleware.LoggerFromContext(r.Context()).Error("Failed to load top products", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, top)
	}
}
