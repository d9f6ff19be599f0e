package model

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/menu-price-insights/internal/domain"
	"github.com/ridwanfathin/menu-price-insights/internal/pricing"
)

// CurrencySymbol prefixes prices in display labels
const CurrencySymbol = "₹"

// DishComparisonResponse represents one row of the comparison table.
// Unknown prices are null.
type DishComparisonResponse struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	OurPrice          *string `json:"ourPrice"`
	CompetitorAvg     *string `json:"competitorAvg"`
	DifferencePercent float64 `json:"differencePercent"`
	Difference        string  `json:"difference"`
	Status            string  `json:"status"`
	CreatedAt         string  `json:"createdAt,omitempty"`
}

// ComparisonListResponse represents the comparison table
type ComparisonListResponse struct {
	Data  []DishComparisonResponse `json:"data"`
	Total int                      `json:"total"`
}

// RecommendationResponse represents a single pricing suggestion
type RecommendationResponse struct {
	DishID     string `json:"dishId"`
	DishName   string `json:"dishName"`
	Suggestion string `json:"suggestion"`
	Reason     string `json:"reason"`
}

// RecommendationsResponse represents the ranked suggestions
type RecommendationsResponse struct {
	Data []RecommendationResponse `json:"data"`
}

// TrendPointResponse represents one chart point
type TrendPointResponse struct {
	Label         string   `json:"label"`
	OurPrice      *float64 `json:"ourPrice"`
	CompetitorAvg *float64 `json:"competitorAvg"`
}

// TrendResponse represents a reconciled trend series
type TrendResponse struct {
	Selection string               `json:"selection"`
	Source    string               `json:"source"`
	Points    []TrendPointResponse `json:"points"`
}

// InsightResponse represents one market insight
type InsightResponse struct {
	DishID   string `json:"dishId"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// InsightCountsResponse holds the tab counts
type InsightCountsResponse struct {
	All         int `json:"all"`
	Higher      int `json:"higher"`
	Lower       int `json:"lower"`
	Competitive int `json:"competitive"`
}

// InsightsResponse represents filtered insights with every category count
type InsightsResponse struct {
	Filter string                `json:"filter"`
	Data   []InsightResponse     `json:"data"`
	Counts InsightCountsResponse `json:"counts"`
}

// KPIDishResponse identifies an extreme-priced dish
type KPIDishResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	OurPrice string `json:"ourPrice"`
}

// KPICard is a label/value pair ready for display
type KPICard struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// KPIsResponse represents the analytics indicators with their display cards
type KPIsResponse struct {
	AverageDifference  float64          `json:"averageDifference"`
	HighestPricedDish  *KPIDishResponse `json:"highestPricedDish"`
	LowestPricedDish   *KPIDishResponse `json:"lowestPricedDish"`
	CompetitorUndercut float64          `json:"competitorUndercut"`
	Cards              []KPICard        `json:"cards"`
}

// DashboardResponse represents the dashboard headline numbers
type DashboardResponse struct {
	TotalDishes           int       `json:"totalDishes"`
	AvgPriceDifference    float64   `json:"avgPriceDifference"`
	ComparableDishes      int       `json:"comparableDishes"`
	CompetitorsMonitored  int       `json:"competitorsMonitored"`
	ActiveCompetitors     int       `json:"activeCompetitors"`
	DishesTrackedByRivals int       `json:"dishesTrackedByRivals"`
	ActiveAlerts          int       `json:"activeAlerts"`
	Cards                 []KPICard `json:"cards"`
}

// AlertResponse represents one competitor price alert. Unknown prices are null.
type AlertResponse struct {
	ID        string  `json:"id"`
	DishName  string  `json:"dishName"`
	OldPrice  *string `json:"oldPrice"`
	NewPrice  *string `json:"newPrice"`
	Message   string  `json:"message"`
	CreatedAt string  `json:"createdAt,omitempty"`
	IsRead    bool    `json:"isRead"`
}

// AlertsListResponse represents the alert list
type AlertsListResponse struct {
	Data   []AlertResponse `json:"data"`
	Total  int             `json:"total"`
	Unread int             `json:"unread"`
}

// MessageResponse carries a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// CompetitorResponse represents competitor metadata
type CompetitorResponse struct {
	ID             string `json:"id"`
	RestaurantName string `json:"restaurantName"`
	Platform       string `json:"platform"`
	WebsiteURL     string `json:"websiteUrl"`
	DishesTracked  int    `json:"dishesTracked"`
	Status         string `json:"status"`
	ScrapedTitle   string `json:"scrapedTitle,omitempty"`
	LastUpdated    string `json:"lastUpdated"`
}

// CompetitorsListResponse represents the competitor list
type CompetitorsListResponse struct {
	Data  []CompetitorResponse `json:"data"`
	Total int                  `json:"total"`
}

// PriceHistoryPointResponse represents one day of price history
type PriceHistoryPointResponse struct {
	Day   string   `json:"day"`
	Date  string   `json:"date"`
	Price *float64 `json:"price"`
}

// PriceHistoryResponse represents a gap-filled history series
type PriceHistoryResponse struct {
	Metric string                      `json:"metric"`
	DishID *string                     `json:"dish_id"`
	Days   int                         `json:"days"`
	Points []PriceHistoryPointResponse `json:"points"`
}

// AnalyzeRequest carries raw records for a stateless analysis
type AnalyzeRequest struct {
	Dishes      []map[string]interface{} `json:"dishes" binding:"required"`
	Competitors []map[string]interface{} `json:"competitors"`
	Selection   string                   `json:"selection"`
}

// AnalyzeResponse bundles every pricing view of the submitted records
type AnalyzeResponse struct {
	Comparison      ComparisonListResponse   `json:"comparison"`
	Recommendations []RecommendationResponse `json:"recommendations"`
	Insights        InsightsResponse         `json:"insights"`
	KPIs            KPIsResponse             `json:"kpis"`
	Trend           TrendResponse            `json:"trend"`
	Dashboard       DashboardResponse        `json:"dashboard"`
	Competitors     []CompetitorResponse     `json:"competitors"`
	SkippedRecords  int                      `json:"skippedRecords"`
}

// FormatPrice renders a price with two decimals, or nil when it is unknown
func FormatPrice(v float64) *string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	s := decimal.NewFromFloat(v).StringFixed(2)
	return &s
}

// displayPrice renders a price without trailing zeros for labels
func displayPrice(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "N/A"
	}
	return decimal.NewFromFloat(v).String()
}

// FromDish converts a domain dish into a table row
func FromDish(dish domain.Dish) DishComparisonResponse {
	row := DishComparisonResponse{
		ID:                dish.ID,
		Name:              dish.Name,
		Category:          dish.Category,
		OurPrice:          FormatPrice(dish.OurPrice),
		CompetitorAvg:     FormatPrice(dish.CompetitorAvg),
		DifferencePercent: dish.DifferencePercent,
		Difference:        pricing.FormatDifference(dish.DifferencePercent),
		Status:            string(dish.Status),
	}
	if dish.CreatedAt != nil {
		row.CreatedAt = dish.CreatedAt.Format(time.RFC3339)
	}
	return row
}

// NewComparisonListResponse converts the dish table
func NewComparisonListResponse(dishes []domain.Dish) ComparisonListResponse {
	rows := make([]DishComparisonResponse, 0, len(dishes))
	for _, dish := range dishes {
		rows = append(rows, FromDish(dish))
	}
	return ComparisonListResponse{Data: rows, Total: len(rows)}
}

// NewRecommendationResponses converts recommendations, dropping the internal rank score
func NewRecommendationResponses(recs []domain.Recommendation) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, RecommendationResponse{
			DishID:     rec.DishID,
			DishName:   rec.DishName,
			Suggestion: rec.Suggestion,
			Reason:     rec.Reason,
		})
	}
	return out
}

// NewTrendResponse converts a trend series
func NewTrendResponse(series domain.TrendSeries) TrendResponse {
	points := make([]TrendPointResponse, 0, len(series.Points))
	for _, point := range series.Points {
		points = append(points, TrendPointResponse{
			Label:         point.Label,
			OurPrice:      finiteOrNil(point.OurPrice),
			CompetitorAvg: finiteOrNil(point.CompetitorAvg),
		})
	}
	return TrendResponse{
		Selection: series.Selection,
		Source:    string(series.Source),
		Points:    points,
	}
}

// NewInsightsResponse converts an insight report
func NewInsightsResponse(report domain.InsightReport) InsightsResponse {
	data := make([]InsightResponse, 0, len(report.Insights))
	for _, insight := range report.Insights {
		data = append(data, InsightResponse{
			DishID:   insight.DishID,
			Category: string(insight.Category),
			Message:  insight.Message,
		})
	}
	return InsightsResponse{
		Filter: string(report.Filter),
		Data:   data,
		Counts: InsightCountsResponse{
			All:         report.Counts.All,
			Higher:      report.Counts.Higher,
			Lower:       report.Counts.Lower,
			Competitive: report.Counts.Competitive,
		},
	}
}

// NewKPIsResponse converts KPIs and renders their display cards
func NewKPIsResponse(kpis domain.PricingKPIs) KPIsResponse {
	return KPIsResponse{
		AverageDifference:  kpis.AverageDifference,
		HighestPricedDish:  kpiDish(kpis.HighestPricedDish),
		LowestPricedDish:   kpiDish(kpis.LowestPricedDish),
		CompetitorUndercut: kpis.CompetitorUndercut,
		Cards: []KPICard{
			{Label: "Average Price Difference", Value: fmt.Sprintf("%.1f%%", kpis.AverageDifference)},
			{Label: "Highest Priced Dish", Value: dishLabel(kpis.HighestPricedDish)},
			{Label: "Lowest Priced Dish", Value: dishLabel(kpis.LowestPricedDish)},
			{Label: "Competitor Undercut %", Value: fmt.Sprintf("%.0f%%", kpis.CompetitorUndercut)},
		},
	}
}

// NewDashboardResponse converts dashboard stats and renders their display cards
func NewDashboardResponse(stats domain.DashboardStats) DashboardResponse {
	return DashboardResponse{
		TotalDishes:           stats.TotalDishes,
		AvgPriceDifference:    stats.AverageAbsoluteDiff,
		ComparableDishes:      stats.ComparableDishes,
		CompetitorsMonitored:  stats.CompetitorsMonitored,
		ActiveCompetitors:     stats.ActiveCompetitors,
		DishesTrackedByRivals: stats.DishesTrackedByRivals,
		ActiveAlerts:          stats.ActiveAlerts,
		Cards: []KPICard{
			{Label: "Total Dishes", Value: fmt.Sprintf("%d", stats.TotalDishes)},
			{Label: "Avg Price Difference", Value: fmt.Sprintf("%.1f%%", stats.AverageAbsoluteDiff)},
			{Label: "Active Alerts", Value: fmt.Sprintf("%d", stats.ActiveAlerts)},
			{Label: "Competitors Monitored", Value: fmt.Sprintf("%d", stats.CompetitorsMonitored)},
		},
	}
}

// NewAlertsListResponse converts alerts and counts the unread ones
func NewAlertsListResponse(alerts []domain.Alert) AlertsListResponse {
	data := make([]AlertResponse, 0, len(alerts))
	for _, alert := range alerts {
		row := AlertResponse{
			ID:       alert.ID,
			DishName: alert.DishName,
			OldPrice: formatDecimal(alert.OldPrice),
			NewPrice: formatDecimal(alert.NewPrice),
			Message:  alert.Message,
			IsRead:   alert.IsRead,
		}
		if alert.CreatedAt != nil {
			row.CreatedAt = alert.CreatedAt.Format(time.RFC3339)
		}
		data = append(data, row)
	}
	return AlertsListResponse{Data: data, Total: len(data), Unread: pricing.CountUnread(alerts)}
}

func formatDecimal(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := d.Decimal.StringFixed(2)
	return &s
}

// NewCompetitorResponses converts competitor metadata
func NewCompetitorResponses(competitors []domain.Competitor) []CompetitorResponse {
	out := make([]CompetitorResponse, 0, len(competitors))
	for _, competitor := range competitors {
		out = append(out, CompetitorResponse{
			ID:             competitor.ID,
			RestaurantName: competitor.RestaurantName,
			Platform:       competitor.Platform,
			WebsiteURL:     competitor.WebsiteURL,
			DishesTracked:  competitor.DishesTracked,
			Status:         string(competitor.Status),
			ScrapedTitle:   competitor.ScrapedTitle,
			LastUpdated:    competitor.LastUpdatedLabel(),
		})
	}
	return out
}

// NewPriceHistoryResponse converts a history series
func NewPriceHistoryResponse(series domain.HistorySeries) PriceHistoryResponse {
	points := make([]PriceHistoryPointResponse, 0, len(series.Points))
	for _, point := range series.Points {
		points = append(points, PriceHistoryPointResponse{
			Day:   point.Day,
			Date:  point.Date,
			Price: finiteOrNil(point.Price),
		})
	}
	return PriceHistoryResponse{
		Metric: string(series.Metric),
		DishID: series.DishID,
		Days:   series.Days,
		Points: points,
	}
}

// NewAnalyzeResponse converts a full analysis
func NewAnalyzeResponse(analysis domain.PricingAnalysis) AnalyzeResponse {
	return AnalyzeResponse{
		Comparison:      NewComparisonListResponse(analysis.Dishes),
		Recommendations: NewRecommendationResponses(analysis.Recommendations),
		Insights:        NewInsightsResponse(analysis.Insights),
		KPIs:            NewKPIsResponse(analysis.KPIs),
		Trend:           NewTrendResponse(analysis.Trend),
		Dashboard:       NewDashboardResponse(analysis.Dashboard),
		Competitors:     NewCompetitorResponses(analysis.Competitors),
		SkippedRecords:  analysis.SkippedRecords,
	}
}

func kpiDish(dish *domain.Dish) *KPIDishResponse {
	if dish == nil {
		return nil
	}
	return &KPIDishResponse{
		ID:       dish.ID,
		Name:     dish.Name,
		OurPrice: displayPrice(dish.OurPrice),
	}
}

func dishLabel(dish *domain.Dish) string {
	if dish == nil {
		return "N/A"
	}
	return fmt.Sprintf("%s (%s%s)", dish.Name, CurrencySymbol, displayPrice(dish.OurPrice))
}

func finiteOrNil(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}
