package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/menu-price-insights/internal/domain"
	"github.com/ridwanfathin/menu-price-insights/internal/middleware"
	"github.com/ridwanfathin/menu-price-insights/internal/model"
	"github.com/ridwanfathin/menu-price-insights/internal/pricing"
	"github.com/ridwanfathin/menu-price-insights/internal/service"
)

type fakePricingService struct {
	dishes       []domain.Dish
	err          error
	trendRequest pricing.TrendRequest
	filter       domain.InsightCategory
	history      domain.HistoryQuery
	alerts       []domain.Alert
	readAlertID  string
}

func (f *fakePricingService) GetComparison(_ context.Context, _ string) ([]domain.Dish, error) {
	return f.dishes, f.err
}

func (f *fakePricingService) GetRecommendations(_ context.Context, _ string) ([]domain.Recommendation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return pricing.Recommend(f.dishes), nil
}

func (f *fakePricingService) GetTrend(_ context.Context, req pricing.TrendRequest) (*domain.TrendSeries, error) {
	f.trendRequest = req
	if f.err != nil {
		return nil, f.err
	}
	series := pricing.FallbackTrend(f.dishes, req.Selection)
	return &series, nil
}

func (f *fakePricingService) GetInsights(_ context.Context, _ string, filter domain.InsightCategory) (*domain.InsightReport, error) {
	f.filter = filter
	if f.err != nil {
		return nil, f.err
	}
	insights := pricing.ClassifyInsights(f.dishes)
	return &domain.InsightReport{
		Filter:   filter,
		Insights: pricing.FilterInsights(insights, filter),
		Counts:   pricing.CountInsights(insights),
	}, nil
}

func (f *fakePricingService) GetKPIs(_ context.Context, _ string) (*domain.PricingKPIs, error) {
	if f.err != nil {
		return nil, f.err
	}
	kpis := pricing.Summarize(f.dishes)
	return &kpis, nil
}

func (f *fakePricingService) GetDashboard(_ context.Context, _ string) (*domain.DashboardStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	stats := pricing.Dashboard(f.dishes, nil, f.alerts)
	return &stats, nil
}

func (f *fakePricingService) ListCompetitors(_ context.Context, _ string) ([]domain.Competitor, error) {
	return []domain.Competitor{{ID: "c1", RestaurantName: "Spice Route", Status: domain.CompetitorActive}}, f.err
}

func (f *fakePricingService) GetPriceHistory(_ context.Context, query domain.HistoryQuery) (*domain.HistorySeries, error) {
	f.history = query
	if f.err != nil {
		return nil, f.err
	}
	return &domain.HistorySeries{Metric: domain.MetricOurPrice, Days: query.Days}, nil
}

func (f *fakePricingService) ListAlerts(_ context.Context, _ string) ([]domain.Alert, error) {
	return f.alerts, f.err
}

func (f *fakePricingService) MarkAlertRead(_ context.Context, _ string, alertID string) error {
	f.readAlertID = alertID
	if f.err != nil {
		return f.err
	}
	for i := range f.alerts {
		if f.alerts[i].ID == alertID {
			f.alerts[i].IsRead = true
			return nil
		}
	}
	return &service.PricingServiceError{Op: "mark_alert_read", Err: service.ErrAlertNotFound}
}

func (f *fakePricingService) Analyze(_ context.Context, dishRecords, _ []map[string]interface{}, selection string) (*domain.PricingAnalysis, error) {
	dishes := pricing.NormalizeDishes(dishRecords)
	return &domain.PricingAnalysis{
		Dishes:          dishes,
		Recommendations: pricing.Recommend(dishes),
		KPIs:            pricing.Summarize(dishes),
		Trend:           pricing.FallbackTrend(dishes, selection),
		SkippedRecords:  len(dishRecords) - len(dishes),
	}, nil
}

func sampleDishes() []domain.Dish {
	return []domain.Dish{
		pricing.NewDish("1", "Biryani", "Mains", 120, 100, nil),
		pricing.NewDish("2", "Naan", "Breads", 90, 100, nil),
		pricing.NewDish("3", "Lassi", "Drinks", math.NaN(), 50, nil),
	}
}

func setupRouter(svc service.PricingService, authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	auth := func(c *gin.Context) {
		if authenticated {
			c.Set(middleware.RestaurantIDKey, "r-1")
			c.Set(middleware.AccessTokenKey, "token-1")
		}
		c.Next()
	}

	NewPricingHandler(svc, nil).RegisterPricingRoutes(router.Group("/v1"), auth)
	return router
}

func perform(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetComparison(t *testing.T) {
	router := setupRouter(&fakePricingService{dishes: sampleDishes()}, true)

	w := perform(router, http.MethodGet, "/v1/dishes/comparison", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.ComparisonListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Total)

	assert.Equal(t, "120.00", *resp.Data[0].OurPrice)
	assert.Equal(t, "+20%", resp.Data[0].Difference)
	assert.Equal(t, "Higher", resp.Data[0].Status)
	assert.Equal(t, "-10%", resp.Data[1].Difference)
	assert.Nil(t, resp.Data[2].OurPrice, "unknown prices are null")
}

func TestUnauthenticatedRequest(t *testing.T) {
	router := setupRouter(&fakePricingService{}, false)

	w := perform(router, http.MethodGet, "/v1/recommendations", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrNotAuthenticated, resp.Message)
}

func TestGetTrendForwardsSelectionAndToken(t *testing.T) {
	svc := &fakePricingService{dishes: sampleDishes()}
	router := setupRouter(svc, true)

	w := perform(router, http.MethodGet, "/v1/trend?dish_id=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, pricing.TrendRequest{RestaurantID: "r-1", Selection: "2", AccessToken: "token-1"}, svc.trendRequest)

	var resp model.TrendResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2", resp.Selection)
	assert.Equal(t, "fallback", resp.Source)
	require.Len(t, resp.Points, 7)
	assert.Equal(t, "Mon", resp.Points[0].Label)

	perform(router, http.MethodGet, "/v1/trend", nil)
	assert.Equal(t, pricing.SelectionAll, svc.trendRequest.Selection)
}

func TestGetInsights(t *testing.T) {
	svc := &fakePricingService{dishes: sampleDishes()}
	router := setupRouter(svc, true)

	w := perform(router, http.MethodGet, "/v1/insights?filter=higher", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.InsightsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "higher", resp.Filter)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Biryani: Priced significantly above market", resp.Data[0].Message)
	assert.Equal(t, 3, resp.Counts.All)

	w = perform(router, http.MethodGet, "/v1/insights?filter=cheapest", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetKPIs(t *testing.T) {
	t.Run("WithDishes", func(t *testing.T) {
		dishes := []domain.Dish{
			pricing.NewDish("1", "Biryani", "Mains", 120, 100, nil),
			pricing.NewDish("2", "Naan", "Breads", 90, 100, nil),
		}
		router := setupRouter(&fakePricingService{dishes: dishes}, true)

		w := perform(router, http.MethodGet, "/v1/insights/kpis", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp model.KPIsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Cards, 4)
		assert.Equal(t, model.KPICard{Label: "Average Price Difference", Value: "5.0%"}, resp.Cards[0])
		assert.Equal(t, model.KPICard{Label: "Highest Priced Dish", Value: "Biryani (₹120)"}, resp.Cards[1])
		assert.Equal(t, model.KPICard{Label: "Lowest Priced Dish", Value: "Naan (₹90)"}, resp.Cards[2])
		assert.Equal(t, model.KPICard{Label: "Competitor Undercut %", Value: "50%"}, resp.Cards[3])
	})

	t.Run("Empty", func(t *testing.T) {
		router := setupRouter(&fakePricingService{}, true)

		w := perform(router, http.MethodGet, "/v1/insights/kpis", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp model.KPIsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Nil(t, resp.HighestPricedDish)
		assert.Equal(t, "N/A", resp.Cards[1].Value)
		assert.Equal(t, "N/A", resp.Cards[2].Value)
		assert.Equal(t, "0%", resp.Cards[3].Value)
	})
}

func sampleAlerts() []domain.Alert {
	return []domain.Alert{
		{ID: "3", DishName: "Naan", NewPrice: decimal.NewNullDecimal(decimal.NewFromInt(85))},
		{ID: "2", DishName: "Biryani", IsRead: true},
		{ID: "1", DishName: "Lassi"},
	}
}

func TestGetDashboard(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		router := setupRouter(&fakePricingService{}, true)

		w := perform(router, http.MethodGet, "/v1/dashboard", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp model.DashboardResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Cards, 4)
		assert.Equal(t, "0.0%", resp.Cards[1].Value)
		assert.Equal(t, model.KPICard{Label: "Active Alerts", Value: "0"}, resp.Cards[2])
	})

	t.Run("CountsUnreadAlerts", func(t *testing.T) {
		router := setupRouter(&fakePricingService{dishes: sampleDishes(), alerts: sampleAlerts()}, true)

		w := perform(router, http.MethodGet, "/v1/dashboard", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp model.DashboardResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.ActiveAlerts)
		assert.Equal(t, model.KPICard{Label: "Active Alerts", Value: "2"}, resp.Cards[2])
		assert.Equal(t, "Competitors Monitored", resp.Cards[3].Label)
	})
}

func TestListAlerts(t *testing.T) {
	router := setupRouter(&fakePricingService{alerts: sampleAlerts()}, true)

	w := perform(router, http.MethodGet, "/v1/alerts", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.AlertsListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 2, resp.Unread)
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "85.00", *resp.Data[0].NewPrice)
	assert.Nil(t, resp.Data[0].OldPrice)
}

func TestMarkAlertRead(t *testing.T) {
	t.Run("Marked", func(t *testing.T) {
		svc := &fakePricingService{alerts: sampleAlerts()}
		router := setupRouter(svc, true)

		w := perform(router, http.MethodPut, "/v1/alerts/3/read", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "3", svc.readAlertID)
		assert.JSONEq(t, `{"message":"Alert marked as read"}`, w.Body.String())

		w = perform(router, http.MethodGet, "/v1/dashboard", nil)
		var resp model.DashboardResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.ActiveAlerts)
	})

	t.Run("UnknownAlert", func(t *testing.T) {
		router := setupRouter(&fakePricingService{alerts: sampleAlerts()}, true)

		w := perform(router, http.MethodPut, "/v1/alerts/99/read", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp model.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, ErrAlertNotFound, resp.Message)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		router := setupRouter(&fakePricingService{}, false)

		w := perform(router, http.MethodPut, "/v1/alerts/3/read", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestListCompetitors(t *testing.T) {
	router := setupRouter(&fakePricingService{}, true)

	w := perform(router, http.MethodGet, "/v1/competitors", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.CompetitorsListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Never", resp.Data[0].LastUpdated)
}

func TestGetPriceHistory(t *testing.T) {
	t.Run("ForwardsQuery", func(t *testing.T) {
		svc := &fakePricingService{}
		router := setupRouter(svc, true)

		w := perform(router, http.MethodGet, "/v1/price-history?metric=competitor_avg&days=14&dish_id=7", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.HistoryQuery{
			RestaurantID: "r-1",
			Metric:       domain.MetricCompetitorAvg,
			Days:         14,
			DishID:       "7",
			AccessToken:  "token-1",
		}, svc.history)
	})

	t.Run("DefaultDays", func(t *testing.T) {
		svc := &fakePricingService{}
		router := setupRouter(svc, true)

		perform(router, http.MethodGet, "/v1/price-history", nil)
		assert.Equal(t, pricing.DefaultHistoryDays, svc.history.Days)
	})

	t.Run("InvalidDays", func(t *testing.T) {
		router := setupRouter(&fakePricingService{}, true)

		w := perform(router, http.MethodGet, "/v1/price-history?days=week", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("NotConfigured", func(t *testing.T) {
		err := &service.PricingServiceError{Op: "get_price_history", Err: service.ErrHistoryUnavailable}
		router := setupRouter(&fakePricingService{err: err}, true)

		w := perform(router, http.MethodGet, "/v1/price-history", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestServiceErrorIsInternal(t *testing.T) {
	err := &service.PricingServiceError{Op: "list_dishes", Err: errors.New("connection refused")}
	router := setupRouter(&fakePricingService{err: err}, true)

	w := perform(router, http.MethodGet, "/v1/dishes/comparison", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrInternalServer, resp.Message)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestAnalyze(t *testing.T) {
	router := setupRouter(&fakePricingService{}, true)

	body := []byte(`{
		"dishes": [
			{"id": 1, "dish_name": "Biryani", "our_price": "120", "competitor_avg": 100},
			{"id": 2, "name": "Naan", "ourPrice": 90, "competitorAvg": 100},
			{"name": "No ID"}
		],
		"selection": "2"
	}`)
	w := perform(router, http.MethodPost, "/v1/pricing/analyze", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp model.AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Comparison.Total)
	assert.Equal(t, 1, resp.SkippedRecords)
	require.Len(t, resp.Recommendations, 2)
	assert.Equal(t, "Reduce price by 20%", resp.Recommendations[0].Suggestion)
	assert.Equal(t, "2", resp.Trend.Selection)
	assert.Equal(t, 87.0, *resp.Trend.Points[0].OurPrice)

	w = perform(router, http.MethodPost, "/v1/pricing/analyze", []byte(`{"dishes": "nope"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
