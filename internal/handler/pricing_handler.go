package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ridwanfathin/menu-price-insights/internal/domain"
	"github.com/ridwanfathin/menu-price-insights/internal/model"
	"github.com/ridwanfathin/menu-price-insights/internal/pricing"
	"github.com/ridwanfathin/menu-price-insights/internal/service"
)

// PricingHandler handles menu pricing analytics endpoints
type PricingHandler struct {
	pricingService service.PricingService
	logger         *zap.Logger
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(pricingService service.PricingService, logger *zap.Logger) *PricingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PricingHandler{
		pricingService: pricingService,
		logger:         logger,
	}
}

// GetComparison handles GET /v1/dishes/comparison endpoint
// @Summary Get price comparison table
// @Description Compare each dish price against the competitor average
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ComparisonListResponse "Comparison table"
// @Failure 401 {object} model.ErrorResponse "Unauthorized"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/dishes/comparison [get]
func (h *PricingHandler) GetComparison(c *gin.Context) {
	rid, ok := restaurantID(c)
	if !ok {
		respondUnauthorized(c, ErrNotAuthenticated)
		return
	}

	dishes, err := h.pricingService.GetComparison(c.Request.Context(), rid)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, model.NewComparisonListResponse(dishes))
}

// GetRecommendations handles GET /v1/recommendations endpoint
// @Summary Get pricing recommendations
// @Description Get the top three pricing recommendations ranked by price gap
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.RecommendationsResponse "Recommendations"
// @Failure 401 {object} model.ErrorResponse "Unauthorized"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/recommendations [get]
func (h *PricingHandler) GetRecommendations(c *gin.Context) {
	rid, ok := restaurantID(c)
	if !ok {
		respondUnauthorized(c, ErrNotAuthenticated)
		return
	}

	recs, err := h.pricingService.GetRecommendations(c.Request.Context(), rid)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, model.RecommendationsResponse{Data: model.NewRecommendationResponses(recs)})
}

// GetTrend handles GET /v1/trend endpoint
// @Summary Get price trend
// @Description Get the 7-day price trend for all dishes or one dish. Falls back to a projected series when history is unavailable.
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Param dish_id query string false "Dish ID (default: all)"
// @Success 200 {object} model.TrendResponse "Trend series"
// @Failure 401 {object} model.ErrorResponse "Unauthorized"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/trend [get]
func (h *PricingHandler) GetTrend(c *gin.Context) {
	rid, ok := restaurantID(c)
	if !ok {
		respondUnauthorized(c, ErrNotAuthenticated)
		return
	}

	selection := strings.TrimSpace(c.DefaultQuery("dish_id", pricing.SelectionAll))
	series, err := h.pricingService.GetTrend(c.Request.Context(), pricing.TrendRequest{
		RestaurantID: rid,
		Selection:    selection,
		AccessToken:  accessToken(c),
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, model.NewTrendResponse(*series))
}

// GetInsights handles GET /v1/insights endpoint
// @Summary Get market insights
// @Description Get market insights filtered by category, with counts for every category
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Param filter query string false "Category filter: all, higher, lower, competitive (default: all)"
// @Success 200 {object} model.InsightsResponse "Insights"
// @Failure 400 {object} model.ErrorResponse "Invalid filter"
// @Failure 401 {object} model.ErrorResponse "Unauthorized"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/insights [get]
func (h *PricingHandler) GetInsights(c *gin.Context) {
	rid, ok := restaurantID(c)
	if !ok {
		respondUnauthorized(c, ErrNotAuthenticated)
		return
	}

	filter, err := pricing.ParseInsightFilter(c.Query("filter"))
	if err != nil {
		respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("filter", err.Error()))
		return
	}

	report, err := h.pricingService.GetInsights(c.Request.Context(), rid, filter)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, model.NewInsightsResponse(*report))
}

// GetKPIs handles GET /v1/insights/kpis endpoint
// @Summary Get pricing KPIs
// @Description Get average difference, highest and lowest priced dish and competitor undercut ratio
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.KPIsResponse "KPIs"
// @Failure 401 {object} model.ErrorResponse "Unauthorized"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/insights/kpis [get]
func (h *PricingHandler) GetKPIs(c *gin.Context) {
	rid, ok := restaurantID(c)
	if !ok {
		respondUnauthorized(c, ErrNotAuthenticated)
		return
	}

	kpis, err := h.pricingService.GetKPIs(c.Request.Context(), rid)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, model.NewKPIsResponse(*kpis))
}

// GetDashboard handles GET /v1/dashboard endpoint
// @Summary Get dashboard stats
// @Description Get total dishes, average absolute price difference, unread alerts and monitored competitors
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DashboardResponse "Dashboard stats"
// @Failure 401 {object} model.ErrorResponse "Unauthorized"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/dashboard [get]
func (h *PricingHandler) GetDashboard(c *gin.Context) {
	rid, ok := restaurantID(c)
	if !ok {
		respondUnauthorized(c, ErrNotAuthenticated)
		return
	}

	stats, err := h.pricingService.GetDashboard(c.Request.Context(), rid)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, model.NewDashboardResponse(*stats))
}

// ListCompetitors handles GET /v1/competitors endpoint
// @Summary List competitors
// @Description List monitored competitor restaurants
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CompetitorsListResponse "Competitors"
// @Failure 401 {object} model.ErrorResponse "Unauthorized"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/competitors [get]
func (h *PricingHandler) ListCompetitors(c *gin.Context) {
	rid, ok := restaurantID(c)
	if !ok {
		respondUnauthorized(c, ErrNotAuthenticated)
		return
	}

	competitors, err := h.pricingService.ListCompetitors(c.Request.Context(), rid)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	data := model.NewCompetitorResponses(competitors)
	respondOK(c, model.CompetitorsListResponse{Data: data, Total: len(data)})
}

// ListAlerts handles GET /v1/alerts endpoint
// @Summary List price alerts
// @Description List competitor price alerts, newest first
// @Tags alerts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.AlertsListResponse "Alerts"
// @Failure 401 {object} model.ErrorResponse "Unauthorized"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/alerts [get]
func (h *PricingHandler) ListAlerts(c *gin.Context) {
	rid, ok := restaurantID(c)
	if !ok {
		respondUnauthorized(c, ErrNotAuthenticated)
		return
	}

	alerts, err := h.pricingService.ListAlerts(c.Request.Context(), rid)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, model.NewAlertsListResponse(alerts))
}

// MarkAlertRead handles PUT /v1/alerts/:id/read endpoint
// @Summary Mark alert as read
// @Description Acknowledge one price alert so it no longer counts as active
// @Tags alerts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} model.MessageResponse "Alert marked as read"
// @Failure 401 {object} model.ErrorResponse "Unauthorized"
// @Failure 404 {object} model.ErrorResponse "Alert not found"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/alerts/{id}/read [put]
func (h *PricingHandler) MarkAlertRead(c *gin.Context) {
	rid, ok := restaurantID(c)
	if !ok {
		respondUnauthorized(c, ErrNotAuthenticated)
		return
	}

	if err := h.pricingService.MarkAlertRead(c.Request.Context(), rid, c.Param("id")); err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, model.MessageResponse{Message: "Alert marked as read"})
}

// GetPriceHistory handles GET /v1/price-history endpoint
// @Summary Get price history
// @Description Get a gap-filled daily price history for one metric
// @Tags pricing
// @Produce json
// @Security BearerAuth
// @Param metric query string false "Metric: our_price or competitor_avg (default: our_price)"
// @Param days query int false "Number of days (default: 7)"
// @Param dish_id query string false "Restrict to one dish"
// @Success 200 {object} model.PriceHistoryResponse "Price history"
// @Failure 400 {object} model.ErrorResponse "Invalid query parameters"
// @Failure 401 {object} model.ErrorResponse "Unauthorized"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Failure 503 {object} model.ErrorResponse "History not configured"
// @Router /v1/price-history [get]
func (h *PricingHandler) GetPriceHistory(c *gin.Context) {
	rid, ok := restaurantID(c)
	if !ok {
		respondUnauthorized(c, ErrNotAuthenticated)
		return
	}

	days, err := getQueryInt(c, "days", pricing.DefaultHistoryDays)
	if err != nil {
		respondBadRequest(c, ErrInvalidQueryParams, newErrorDetail("days", err.Error()))
		return
	}

	series, err := h.pricingService.GetPriceHistory(c.Request.Context(), domain.HistoryQuery{
		RestaurantID: rid,
		Metric:       domain.PriceMetric(c.Query("metric")),
		Days:         days,
		DishID:       strings.TrimSpace(c.Query("dish_id")),
		AccessToken:  accessToken(c),
	})
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, model.NewPriceHistoryResponse(*series))
}

// Analyze handles POST /v1/pricing/analyze endpoint
// @Summary Analyze raw dish records
// @Description Run every pricing view over caller-supplied records without touching storage
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AnalyzeRequest true "Raw dish and competitor records"
// @Success 200 {object} model.AnalyzeResponse "Analysis"
// @Failure 400 {object} model.ErrorResponse "Invalid input"
// @Failure 401 {object} model.ErrorResponse "Unauthorized"
// @Failure 500 {object} model.ErrorResponse "Internal server error"
// @Router /v1/pricing/analyze [post]
func (h *PricingHandler) Analyze(c *gin.Context) {
	var req model.AnalyzeRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput, newErrorDetail("body", err.Error()))
		return
	}

	analysis, err := h.pricingService.Analyze(c.Request.Context(), req.Dishes, req.Competitors, req.Selection)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	respondOK(c, model.NewAnalyzeResponse(*analysis))
}

func (h *PricingHandler) handleServiceError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrHistoryUnavailable) {
		respondServiceUnavailable(c, ErrHistoryUnavailable)
		return
	}
	if errors.Is(err, service.ErrAlertNotFound) {
		respondNotFound(c, ErrAlertNotFound)
		return
	}

	h.logger.Error("pricing request failed",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	respondInternalServerError(c, ErrInternalServer)
}

// RegisterPricingRoutes registers all pricing routes behind the auth middleware
func (h *PricingHandler) RegisterPricingRoutes(router *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	protected := router.Group("", authMiddleware)
	{
		protected.GET("/dishes/comparison", h.GetComparison)
		protected.GET("/recommendations", h.GetRecommendations)
		protected.GET("/trend", h.GetTrend)
		protected.GET("/insights", h.GetInsights)
		protected.GET("/insights/kpis", h.GetKPIs)
		protected.GET("/dashboard", h.GetDashboard)
		protected.GET("/competitors", h.ListCompetitors)
		protected.GET("/price-history", h.GetPriceHistory)
		protected.GET("/alerts", h.ListAlerts)
		protected.PUT("/alerts/:id/read", h.MarkAlertRead)
		protected.POST("/pricing/analyze", h.Analyze)
	}
}
