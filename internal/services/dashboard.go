package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/coolbreeze/storefront/internal/api/middleware"
	"github.com/coolbreeze/storefront/internal/cache"
	appErrors "github.com/coolbreeze/storefront/internal/errors"
	"github.com/coolbreeze/storefront/internal/models"
	repository "github.com/coolbreeze/storefront/internal/repositories"
	"github.com/coolbreeze/storefront/internal/utils"
)

const (
	defaultSalesDays  = 30
	maxSalesDays      = 365
	defaultTopLimit   = 10
	maxTopLimit       = 50
	summaryCacheTTL   = time.Minute
	dashboardDayLabel = "2006-01-02"
)

type DashboardService interface {
	Summary(ctx context.Context) (*models.DashboardSummary, error)
	// SalesSeries returns one point per day for the last days days, oldest
	// first. Days without orders are zero.
	SalesSeries(ctx context.Context, days int) ([]models.SalesPoint, error)
	TopProducts(ctx context.Context, limit int) ([]models.TopProduct, error)
}

type dashboardService struct {
	stats repository.StatsRepository
	cache cache.Cache
	loc   *time.Location
	now   func() time.Time
}

func NewDashboardService(stats repository.StatsRepository, cache cache.Cache, loc *time.Location) DashboardService {
	if loc == nil {
		loc = time.UTC
	}

	return &dashboardService{stats: stats, cache: cache, loc: loc, now: time.Now}
}

func (s *dashboardService) startOfDay(t time.Time) time.Time {
	t = t.In(s.loc)

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}

func (s *dashboardService) Summary(ctx context.Context) (*models.DashboardSummary, error) {
	logger := middleware.LoggerFromContext(ctx)

	summary, err := cache.Remember(ctx, s.cache, cache.Key(cache.DashboardKeyPrefix, "summary"), summaryCacheTTL,
		s.loadSummary,
		func(err error) {
			logger.Warn("Dashboard cache unavailable", slog.String("error", err.Error()))
		})
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load dashboard summary").WithError(err)
	}

	return summary, nil
}

func (s *dashboardService) loadSummary(ctx context.Context) (*models.DashboardSummary, error) {
	var (
		summary = &models.DashboardSummary{}
		err     error
	)

	if summary.OrdersByStatus, err = s.stats.OrderCountsByStatus(ctx); err != nil {
		return nil, err
	}

	if summary.Revenue, err = s.stats.Revenue(ctx); err != nil {
		return nil, err
	}

	summary.Revenue = utils.RoundMoney(summary.Revenue)

	if summary.OrdersToday, err = s.stats.CountOrdersSince(ctx, s.startOfDay(s.now())); err != nil {
		return nil, err
	}

	if summary.OpenComplaints, err = s.stats.CountComplaints(ctx, models.ComplaintStatusOpen); err != nil {
		return nil, err
	}

	if summary.ActiveWarranties, err = s.stats.CountWarranties(ctx, models.WarrantyStatusActive); err != nil {
		return nil, err
	}

	if summary.LowStock, err = s.stats.LowStockProducts(ctx, models.LowStockThreshold); err != nil {
		return nil, err
	}

	if summary.LowStock == nil {
		summary.LowStock = []models.LowStockProduct{}
	}

	return summary, nil
}

func (s *dashboardService) SalesSeries(ctx context.Context, days int) ([]models.SalesPoint, error) {
	if days == 0 {
		days = defaultSalesDays
	}

	if days < 1 || days > maxSalesDays {
		return nil, appErrors.ValidationError("days must be between 1 and 365")
	}

	today := s.startOfDay(s.now())
	since := today.AddDate(0, 0, -(days - 1))

	sales, err := s.stats.DailySales(ctx, since, s.loc.String())
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load sales").WithError(err)
	}

	byDay := make(map[string]repository.DailySales, len(sales))
	for _, d := range sales {
		byDay[d.Day] = d
	}

	series := make([]models.SalesPoint, 0, days)

	for day := since; !day.After(today); day = day.AddDate(0, 0, 1) {
		label := day.Format(dashboardDayLabel)
		d := byDay[label]

		series = append(series, models.SalesPoint{
			Date:    label,
			Orders:  d.Orders,
			Revenue: utils.RoundMoney(d.Revenue),
		})
	}

	return series, nil
}

func (s *dashboardService) TopProducts(ctx context.Context, limit int) ([]models.TopProduct, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}

	if limit > maxTopLimit {
		limit = maxTopLimit
	}

	top, err := s.stats.TopProducts(ctx, limit)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to load top products").WithError(err)
	}

	return top, nil
}
