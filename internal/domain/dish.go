package domain

import (
	"time"
)

// DishStatus is the three-way classification of a dish price against the competitor average
type DishStatus string

const (
	StatusHigher      DishStatus = "Higher"
	StatusLower       DishStatus = "Lower"
	StatusCompetitive DishStatus = "Competitive"
)

// Dish represents a canonical menu item with our price and the competitor average.
// DifferencePercent and Status are derived from OurPrice and CompetitorAvg and are
// only ever filled in by the pricing package.
type Dish struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Category          string     `json:"category"`
	OurPrice          float64    `json:"ourPrice"`
	CompetitorAvg     float64    `json:"competitorAvg"`
	DifferencePercent float64    `json:"differencePercent"`
	Status            DishStatus `json:"status"`
	CreatedAt         *time.Time `json:"createdAt,omitempty"`
}

// Recommendation represents a worded pricing suggestion for one dish
type Recommendation struct {
	DishID     string  `json:"dishId"`
	DishName   string  `json:"dishName"`
	Suggestion string  `json:"suggestion"`
	Reason     string  `json:"reason"`
	RankScore  float64 `json:"-"`
}

// InsightCategory is the market-position bucket of a dish
type InsightCategory string

const (
	InsightHigher      InsightCategory = "higher"
	InsightLower       InsightCategory = "lower"
	InsightCompetitive InsightCategory = "competitive"

	// InsightAll is only valid as a filter value
	InsightAll InsightCategory = "all"
)

// Insight represents a market commentary line for a dish
type Insight struct {
	DishID   string          `json:"dishId"`
	Category InsightCategory `json:"category"`
	Message  string          `json:"message"`
}

// InsightCounts holds per-category counts so tab badges can be rendered without another pass
type InsightCounts struct {
	All         int `json:"all"`
	Higher      int `json:"higher"`
	Lower       int `json:"lower"`
	Competitive int `json:"competitive"`
}

// PricingKPIs represents the aggregate indicators of the analytics page
type PricingKPIs struct {
	AverageDifference  float64 `json:"averageDifference"`
	HighestPricedDish  *Dish   `json:"highestPricedDish,omitempty"`
	LowestPricedDish   *Dish   `json:"lowestPricedDish,omitempty"`
	CompetitorUndercut float64 `json:"competitorUndercut"`
}

// DashboardStats represents the headline numbers of the dashboard
type DashboardStats struct {
	TotalDishes           int     `json:"totalDishes"`
	AverageAbsoluteDiff   float64 `json:"averageAbsoluteDiff"`
	ComparableDishes      int     `json:"comparableDishes"`
	CompetitorsMonitored  int     `json:"competitorsMonitored"`
	ActiveCompetitors     int     `json:"activeCompetitors"`
	DishesTrackedByRivals int     `json:"dishesTrackedByRivals"`
	ActiveAlerts          int     `json:"activeAlerts"`
}
