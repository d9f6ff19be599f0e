package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/menu-price-insights/internal/domain"
	"github.com/ridwanfathin/menu-price-insights/internal/pricing"
)

type fakeDishRepository struct {
	rows         []map[string]interface{}
	err          error
	restaurantID string
}

func (f *fakeDishRepository) ListDishes(_ context.Context, restaurantID string) ([]map[string]interface{}, error) {
	f.restaurantID = restaurantID
	return f.rows, f.err
}

type fakeCompetitorRepository struct {
	rows []map[string]interface{}
	err  error
}

func (f *fakeCompetitorRepository) ListCompetitors(_ context.Context, _ string) ([]map[string]interface{}, error) {
	return f.rows, f.err
}

type fakeAlertRepository struct {
	rows   []map[string]interface{}
	err    error
	unread map[string]bool
}

func (f *fakeAlertRepository) ListAlerts(_ context.Context, _ string) ([]map[string]interface{}, error) {
	return f.rows, f.err
}

func (f *fakeAlertRepository) MarkAlertRead(_ context.Context, restaurantID, alertID string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if restaurantID != "r-1" || !f.unread[alertID] {
		return false, nil
	}
	delete(f.unread, alertID)
	return true, nil
}

type fakeHistory struct {
	series *domain.HistorySeries
	err    error
	last   domain.HistoryQuery
}

func (f *fakeHistory) FetchHistory(_ context.Context, query domain.HistoryQuery) (*domain.HistorySeries, error) {
	f.last = query
	return f.series, f.err
}

func sampleDishRows() []map[string]interface{} {
	return []map[string]interface{}{
		{"id": 1, "dish_name": "Biryani", "our_price": 120.0, "competitor_avg": 100.0},
		{"id": 2, "dish_name": "Naan", "our_price": 90.0, "competitor_avg": 100.0},
		{"id": 3, "dish_name": "Lassi", "our_price": 100.0, "competitor_avg": 0.0},
		{"dish_name": "Orphan", "our_price": 10.0},
	}
}

func newTestService(dishes *fakeDishRepository, competitors *fakeCompetitorRepository, history pricing.HistorySource) PricingService {
	return NewPricingService(PricingServiceConfig{
		Dishes:         dishes,
		Competitors:    competitors,
		History:        history,
		HistoryMaxDays: 30,
		MaxWorkers:     2,
	})
}

func TestPricingServiceViews(t *testing.T) {
	ctx := context.Background()
	dishes := &fakeDishRepository{rows: sampleDishRows()}
	competitors := &fakeCompetitorRepository{rows: []map[string]interface{}{
		{"id": 1, "restaurant_name": "Spice Route", "dishes_tracked": 5},
		{"id": 2, "restaurant_name": "Curry House", "status": "Disabled", "dishes_tracked": 3},
	}}
	alerts := &fakeAlertRepository{rows: []map[string]interface{}{
		{"id": 10, "dish_name": "Naan", "old_price": 95.0, "new_price": 90.0, "is_read": false},
		{"id": 9, "dish_name": "Biryani", "old_price": 130.0, "new_price": 120.0, "is_read": true},
		{"dish_name": "Orphan"},
	}}
	svc := NewPricingService(PricingServiceConfig{
		Dishes:      dishes,
		Competitors: competitors,
		Alerts:      alerts,
	})

	t.Run("Comparison", func(t *testing.T) {
		table, err := svc.GetComparison(ctx, "r-1")
		require.NoError(t, err)
		require.Len(t, table, 3)
		assert.Equal(t, "r-1", dishes.restaurantID)
		assert.Equal(t, domain.StatusHigher, table[0].Status)
		assert.Equal(t, domain.StatusLower, table[1].Status)
		assert.Equal(t, domain.StatusCompetitive, table[2].Status)
	})

	t.Run("Recommendations", func(t *testing.T) {
		recs, err := svc.GetRecommendations(ctx, "r-1")
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "Reduce price by 20%", recs[0].Suggestion)
		assert.Equal(t, "Increase price by 10%", recs[1].Suggestion)
	})

	t.Run("Insights", func(t *testing.T) {
		report, err := svc.GetInsights(ctx, "r-1", domain.InsightLower)
		require.NoError(t, err)
		assert.Equal(t, domain.InsightLower, report.Filter)
		require.Len(t, report.Insights, 1)
		assert.Equal(t, "Naan: Priced below competitors", report.Insights[0].Message)
		assert.Equal(t, domain.InsightCounts{All: 3, Higher: 1, Lower: 1, Competitive: 1}, report.Counts)
	})

	t.Run("KPIs", func(t *testing.T) {
		kpis, err := svc.GetKPIs(ctx, "r-1")
		require.NoError(t, err)
		assert.Equal(t, "1", kpis.HighestPricedDish.ID)
		assert.Equal(t, "2", kpis.LowestPricedDish.ID)
	})

	t.Run("Dashboard", func(t *testing.T) {
		stats, err := svc.GetDashboard(ctx, "r-1")
		require.NoError(t, err)
		assert.Equal(t, 3, stats.TotalDishes)
		assert.Equal(t, 2, stats.ComparableDishes)
		assert.InDelta(t, 15.0, stats.AverageAbsoluteDiff, 1e-9)
		assert.Equal(t, 2, stats.CompetitorsMonitored)
		assert.Equal(t, 1, stats.ActiveCompetitors)
		assert.Equal(t, 1, stats.ActiveAlerts)
	})

	t.Run("Alerts", func(t *testing.T) {
		list, err := svc.ListAlerts(ctx, "r-1")
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "10", list[0].ID)
		assert.Equal(t, "90.00", list[0].NewPrice.Decimal.StringFixed(2))
		assert.True(t, list[1].IsRead)
	})

	t.Run("TrendWithoutHistoryFallsBack", func(t *testing.T) {
		series, err := svc.GetTrend(ctx, pricing.TrendRequest{RestaurantID: "r-1", Selection: "2", AccessToken: "tok"})
		require.NoError(t, err)
		assert.Equal(t, domain.TrendSourceFallback, series.Source)
		assert.Equal(t, "2", series.Selection)
		assert.Equal(t, 87.0, *series.Points[0].OurPrice)
	})

	t.Run("PriceHistoryNotConfigured", func(t *testing.T) {
		_, err := svc.GetPriceHistory(ctx, domain.HistoryQuery{RestaurantID: "r-1"})
		assert.ErrorIs(t, err, ErrHistoryUnavailable)
	})
}

func TestPricingServiceRepositoryErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("connection reset")
	svc := newTestService(&fakeDishRepository{err: boom}, &fakeCompetitorRepository{}, nil)

	_, err := svc.GetComparison(ctx, "r-1")
	var serviceErr *PricingServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, "list_dishes", serviceErr.Op)
	assert.ErrorIs(t, err, boom)

	_, err = svc.GetDashboard(ctx, "r-1")
	assert.ErrorIs(t, err, boom)

	_, err = svc.GetTrend(ctx, pricing.TrendRequest{RestaurantID: "r-1"})
	assert.ErrorIs(t, err, boom)
}

func TestPricingServiceMarkAlertRead(t *testing.T) {
	ctx := context.Background()
	alerts := &fakeAlertRepository{unread: map[string]bool{"10": true}}
	svc := NewPricingService(PricingServiceConfig{Alerts: alerts})

	require.NoError(t, svc.MarkAlertRead(ctx, "r-1", "10"))

	err := svc.MarkAlertRead(ctx, "r-1", "10")
	assert.ErrorIs(t, err, ErrAlertNotFound)

	alerts.unread["11"] = true
	err = svc.MarkAlertRead(ctx, "r-2", "11")
	assert.ErrorIs(t, err, ErrAlertNotFound)

	alerts.err = errors.New("connection reset")
	err = svc.MarkAlertRead(ctx, "r-1", "11")
	var serviceErr *PricingServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, "mark_alert_read", serviceErr.Op)
	assert.NotErrorIs(t, err, ErrAlertNotFound)

	_, err = svc.GetDashboard(ctx, "r-1")
	assert.Error(t, err)
}

func TestPricingServiceWithoutAlertStore(t *testing.T) {
	svc := newTestService(&fakeDishRepository{}, &fakeCompetitorRepository{}, nil)

	list, err := svc.ListAlerts(context.Background(), "r-1")
	require.NoError(t, err)
	assert.Empty(t, list)

	stats, err := svc.GetDashboard(context.Background(), "r-1")
	require.NoError(t, err)
	assert.Zero(t, stats.ActiveAlerts)

	assert.ErrorIs(t, svc.MarkAlertRead(context.Background(), "r-1", "1"), ErrAlertNotFound)
}

func TestPricingServicePriceHistory(t *testing.T) {
	ctx := context.Background()
	history := &fakeHistory{series: &domain.HistorySeries{Metric: domain.MetricCompetitorAvg, Days: 30}}
	svc := newTestService(&fakeDishRepository{}, &fakeCompetitorRepository{}, history)

	series, err := svc.GetPriceHistory(ctx, domain.HistoryQuery{RestaurantID: "r-1", Metric: "competitor_avg", Days: 400})
	require.NoError(t, err)
	assert.Equal(t, domain.MetricCompetitorAvg, series.Metric)
	assert.Equal(t, 30, history.last.Days)
	assert.Equal(t, "r-1", history.last.RestaurantID)

	_, err = svc.GetPriceHistory(ctx, domain.HistoryQuery{Metric: "bogus", Days: 0})
	require.NoError(t, err)
	assert.Equal(t, domain.MetricOurPrice, history.last.Metric)
	assert.Equal(t, 1, history.last.Days)

	history.err = errors.New("timeout")
	_, err = svc.GetPriceHistory(ctx, domain.HistoryQuery{Days: 7})
	var serviceErr *PricingServiceError
	assert.ErrorAs(t, err, &serviceErr)
}

func TestPricingServiceAnalyze(t *testing.T) {
	svc := newTestService(&fakeDishRepository{}, &fakeCompetitorRepository{}, nil)

	analysis, err := svc.Analyze(context.Background(), sampleDishRows(), []map[string]interface{}{{"id": "c"}}, "missing")
	require.NoError(t, err)

	assert.Len(t, analysis.Dishes, 3)
	assert.Equal(t, 1, analysis.SkippedRecords)
	assert.Len(t, analysis.Recommendations, 2)
	assert.Equal(t, 3, analysis.Insights.Counts.All)
	assert.Equal(t, domain.InsightAll, analysis.Insights.Filter)
	assert.Equal(t, domain.TrendSourceFallback, analysis.Trend.Source)
	assert.Equal(t, pricing.SelectionAll, analysis.Trend.Selection)
	assert.Equal(t, 1, analysis.Dashboard.CompetitorsMonitored)
	require.Len(t, analysis.Competitors, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	busy := NewPricingService(PricingServiceConfig{MaxWorkers: 1}).(*PricingServiceImpl)
	busy.workerPool <- struct{}{}
	_, err = busy.Analyze(ctx, nil, nil, "")
	assert.ErrorIs(t, err, context.Canceled)
}
