package domain

import (
	"strings"
)

// PriceMetric identifies one of the two tracked price series
type PriceMetric string

const (
	MetricOurPrice      PriceMetric = "our_price"
	MetricCompetitorAvg PriceMetric = "competitor_avg"
)

// ParsePriceMetric maps a query value to a metric, defaulting to our_price
func ParsePriceMetric(value string) PriceMetric {
	switch PriceMetric(strings.ToLower(strings.TrimSpace(value))) {
	case MetricCompetitorAvg:
		return MetricCompetitorAvg
	default:
		return MetricOurPrice
	}
}

// HistoryQuery describes one price-history request
type HistoryQuery struct {
	RestaurantID string
	Metric       PriceMetric
	Days         int
	DishID       string
	AccessToken  string
}

// HistoryPoint represents one period bucket of a history series
type HistoryPoint struct {
	Day   string   `json:"day"`
	Date  string   `json:"date,omitempty"`
	Price *float64 `json:"price"`
}

// HistorySeries represents an ordered, period-aligned series for one metric
type HistorySeries struct {
	Metric PriceMetric    `json:"metric"`
	DishID *string        `json:"dish_id"`
	Days   int            `json:"days"`
	Points []HistoryPoint `json:"points"`
}

// TrendSource tells where the points of a trend series came from
type TrendSource string

const (
	TrendSourceRemote   TrendSource = "remote"
	TrendSourceFallback TrendSource = "fallback"
	TrendSourceNone     TrendSource = "none"
)

// TrendPoint represents one aligned pair of prices for a period
type TrendPoint struct {
	Label         string   `json:"label"`
	OurPrice      *float64 `json:"ourPrice"`
	CompetitorAvg *float64 `json:"competitorAvg"`
}

// TrendSeries represents the chart-ready trend for a selection
type TrendSeries struct {
	Selection string       `json:"selection"`
	Source    TrendSource  `json:"source"`
	Points    []TrendPoint `json:"points"`
}
