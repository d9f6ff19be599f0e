package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ridwanfathin/menu-price-insights/internal/domain"
	"github.com/ridwanfathin/menu-price-insights/internal/pricing"
	"github.com/ridwanfathin/menu-price-insights/internal/repository"
)

// ErrHistoryUnavailable is returned when no price-history source is configured
var ErrHistoryUnavailable = errors.New("price history is not configured")

// ErrAlertNotFound is returned when an alert does not exist or belongs to another restaurant
var ErrAlertNotFound = errors.New("alert not found")

// PricingServiceError represents an error in the pricing service
type PricingServiceError struct {
	Op  string
	Err error
}

func (e *PricingServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

func (e *PricingServiceError) Unwrap() error {
	return e.Err
}

// PricingService defines the interface for pricing analytics
type PricingService interface {
	// Per-restaurant views over stored records
	GetComparison(ctx context.Context, restaurantID string) ([]domain.Dish, error)
	GetRecommendations(ctx context.Context, restaurantID string) ([]domain.Recommendation, error)
	GetTrend(ctx context.Context, req pricing.TrendRequest) (*domain.TrendSeries, error)
	GetInsights(ctx context.Context, restaurantID string, filter domain.InsightCategory) (*domain.InsightReport, error)
	GetKPIs(ctx context.Context, restaurantID string) (*domain.PricingKPIs, error)
	GetDashboard(ctx context.Context, restaurantID string) (*domain.DashboardStats, error)
	ListCompetitors(ctx context.Context, restaurantID string) ([]domain.Competitor, error)
	GetPriceHistory(ctx context.Context, query domain.HistoryQuery) (*domain.HistorySeries, error)
	ListAlerts(ctx context.Context, restaurantID string) ([]domain.Alert, error)
	MarkAlertRead(ctx context.Context, restaurantID, alertID string) error

	// Stateless analysis of caller-supplied records
	Analyze(ctx context.Context, dishRecords, competitorRecords []map[string]interface{}, selection string) (*domain.PricingAnalysis, error)
}

// PricingServiceConfig contains the collaborators of the pricing service
type PricingServiceConfig struct {
	Dishes         repository.DishRepository
	Competitors    repository.CompetitorRepository
	Alerts         repository.AlertRepository
	History        pricing.HistorySource
	HistoryMaxDays int
	MaxWorkers     int
	Logger         *zap.Logger
}

// PricingServiceImpl implements the PricingService interface
type PricingServiceImpl struct {
	dishes         repository.DishRepository
	competitors    repository.CompetitorRepository
	alerts         repository.AlertRepository
	history        pricing.HistorySource
	reconciler     *pricing.Reconciler
	historyMaxDays int
	workerPool     chan struct{}
	logger         *zap.Logger
}

// NewPricingService creates a new PricingService
func NewPricingService(config PricingServiceConfig) PricingService {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	maxWorkers := config.MaxWorkers
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	maxDays := config.HistoryMaxDays
	if maxDays < 1 {
		maxDays = 30
	}

	return &PricingServiceImpl{
		dishes:         config.Dishes,
		competitors:    config.Competitors,
		alerts:         config.Alerts,
		history:        config.History,
		reconciler:     pricing.NewReconciler(config.History, logger.Named("trend")),
		historyMaxDays: maxDays,
		workerPool:     make(chan struct{}, maxWorkers),
		logger:         logger,
	}
}

// loadDishes reads and normalizes the restaurant's dishes
func (s *PricingServiceImpl) loadDishes(ctx context.Context, restaurantID string) ([]domain.Dish, error) {
	rows, err := s.dishes.ListDishes(ctx, restaurantID)
	if err != nil {
		return nil, &PricingServiceError{Op: "list_dishes", Err: err}
	}

	dishes := pricing.NormalizeDishes(rows)
	if skipped := len(rows) - len(dishes); skipped > 0 {
		s.logger.Warn("skipped dish records without an identifier",
			zap.String("restaurant_id", restaurantID),
			zap.Int("skipped", skipped),
		)
	}
	return dishes, nil
}

func (s *PricingServiceImpl) loadCompetitors(ctx context.Context, restaurantID string) ([]domain.Competitor, error) {
	rows, err := s.competitors.ListCompetitors(ctx, restaurantID)
	if err != nil {
		return nil, &PricingServiceError{Op: "list_competitors", Err: err}
	}
	return pricing.NormalizeCompetitors(rows), nil
}

// loadAlerts reads and normalizes the restaurant's alerts. Without an alert store there are none.
func (s *PricingServiceImpl) loadAlerts(ctx context.Context, restaurantID string) ([]domain.Alert, error) {
	if s.alerts == nil {
		return []domain.Alert{}, nil
	}
	rows, err := s.alerts.ListAlerts(ctx, restaurantID)
	if err != nil {
		return nil, &PricingServiceError{Op: "list_alerts", Err: err}
	}
	return pricing.NormalizeAlerts(rows), nil
}

// GetComparison returns the classified comparison table
func (s *PricingServiceImpl) GetComparison(ctx context.Context, restaurantID string) ([]domain.Dish, error) {
	return s.loadDishes(ctx, restaurantID)
}

// GetRecommendations returns the top pricing recommendations
func (s *PricingServiceImpl) GetRecommendations(ctx context.Context, restaurantID string) ([]domain.Recommendation, error) {
	dishes, err := s.loadDishes(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return pricing.Recommend(dishes), nil
}

// GetTrend returns the reconciled trend. History failures degrade to the fallback series.
func (s *PricingServiceImpl) GetTrend(ctx context.Context, req pricing.TrendRequest) (*domain.TrendSeries, error) {
	dishes, err := s.loadDishes(ctx, req.RestaurantID)
	if err != nil {
		return nil, err
	}
	series := s.reconciler.Reconcile(ctx, dishes, req)
	return &series, nil
}

// GetInsights returns the insights of one category along with all category counts
func (s *PricingServiceImpl) GetInsights(ctx context.Context, restaurantID string, filter domain.InsightCategory) (*domain.InsightReport, error) {
	dishes, err := s.loadDishes(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	report := buildInsightReport(dishes, filter)
	return &report, nil
}

// GetKPIs returns the aggregate pricing indicators
func (s *PricingServiceImpl) GetKPIs(ctx context.Context, restaurantID string) (*domain.PricingKPIs, error) {
	dishes, err := s.loadDishes(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	kpis := pricing.Summarize(dishes)
	return &kpis, nil
}

// GetDashboard loads dishes, competitors and alerts concurrently and returns the headline numbers
func (s *PricingServiceImpl) GetDashboard(ctx context.Context, restaurantID string) (*domain.DashboardStats, error) {
	var dishes []domain.Dish
	var competitors []domain.Competitor
	var alerts []domain.Alert

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dishes, err = s.loadDishes(gctx, restaurantID)
		return err
	})
	g.Go(func() error {
		var err error
		competitors, err = s.loadCompetitors(gctx, restaurantID)
		return err
	})
	g.Go(func() error {
		var err error
		alerts, err = s.loadAlerts(gctx, restaurantID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := pricing.Dashboard(dishes, competitors, alerts)
	return &stats, nil
}

// ListCompetitors returns normalized competitor metadata
func (s *PricingServiceImpl) ListCompetitors(ctx context.Context, restaurantID string) ([]domain.Competitor, error) {
	return s.loadCompetitors(ctx, restaurantID)
}

// ListAlerts returns the restaurant's alerts, newest first
func (s *PricingServiceImpl) ListAlerts(ctx context.Context, restaurantID string) ([]domain.Alert, error) {
	return s.loadAlerts(ctx, restaurantID)
}

// MarkAlertRead acknowledges one alert of the restaurant
func (s *PricingServiceImpl) MarkAlertRead(ctx context.Context, restaurantID, alertID string) error {
	if s.alerts == nil {
		return &PricingServiceError{Op: "mark_alert_read", Err: ErrAlertNotFound}
	}
	found, err := s.alerts.MarkAlertRead(ctx, restaurantID, alertID)
	if err != nil {
		return &PricingServiceError{Op: "mark_alert_read", Err: err}
	}
	if !found {
		return &PricingServiceError{Op: "mark_alert_read", Err: ErrAlertNotFound}
	}
	return nil
}

// GetPriceHistory returns gap-filled history for one metric with the window clamped to the configured maximum
func (s *PricingServiceImpl) GetPriceHistory(ctx context.Context, query domain.HistoryQuery) (*domain.HistorySeries, error) {
	if s.history == nil {
		return nil, &PricingServiceError{Op: "get_price_history", Err: ErrHistoryUnavailable}
	}

	query.Metric = domain.ParsePriceMetric(string(query.Metric))
	query.Days = pricing.ClampDays(query.Days, s.historyMaxDays)

	series, err := s.history.FetchHistory(ctx, query)
	if err != nil {
		return nil, &PricingServiceError{Op: "get_price_history", Err: err}
	}
	return series, nil
}

// Analyze runs every pricing view over caller-supplied records. The trend is
// always the fallback projection since no history exists for ad-hoc records,
// and the dashboard reports no active alerts.
func (s *PricingServiceImpl) Analyze(ctx context.Context, dishRecords, competitorRecords []map[string]interface{}, selection string) (*domain.PricingAnalysis, error) {
	select {
	case s.workerPool <- struct{}{}:
		defer func() {
			<-s.workerPool
		}()
	case <-ctx.Done():
		return nil, &PricingServiceError{Op: "acquire_worker", Err: ctx.Err()}
	}

	dishes := pricing.NormalizeDishes(dishRecords)
	competitors := pricing.NormalizeCompetitors(competitorRecords)

	return &domain.PricingAnalysis{
		Dishes:          dishes,
		Recommendations: pricing.Recommend(dishes),
		Insights:        buildInsightReport(dishes, domain.InsightAll),
		KPIs:            pricing.Summarize(dishes),
		Trend:           pricing.FallbackTrend(dishes, selection),
		Dashboard:       pricing.Dashboard(dishes, competitors, nil),
		Competitors:     competitors,
		SkippedRecords:  len(dishRecords) - len(dishes),
	}, nil
}

func buildInsightReport(dishes []domain.Dish, filter domain.InsightCategory) domain.InsightReport {
	if filter == "" {
		filter = domain.InsightAll
	}
	insights := pricing.ClassifyInsights(dishes)
	return domain.InsightReport{
		Filter:   filter,
		Insights: pricing.FilterInsights(insights, filter),
		Counts:   pricing.CountInsights(insights),
	}
}
