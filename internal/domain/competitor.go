package domain

import (
	"time"
)

// CompetitorStatus represents whether a competitor is still being monitored
type CompetitorStatus string

const (
	CompetitorActive   CompetitorStatus = "Active"
	CompetitorDisabled CompetitorStatus = "Disabled"
)

// Competitor represents a tracked rival restaurant. It is contextual metadata only
// and never goes through the comparator.
type Competitor struct {
	ID             string           `json:"id"`
	RestaurantName string           `json:"restaurantName"`
	Platform       string           `json:"platform"`
	WebsiteURL     string           `json:"websiteUrl"`
	DishesTracked  int              `json:"dishesTracked"`
	Status         CompetitorStatus `json:"status"`
	ScrapedTitle   string           `json:"scrapedTitle,omitempty"`
	LastUpdated    *time.Time       `json:"lastUpdated,omitempty"`
}

// LastUpdatedLabel returns the last update time or "Never"
func (c Competitor) LastUpdatedLabel() string {
	if c.LastUpdated == nil || c.LastUpdated.IsZero() {
		return "Never"
	}
	return c.LastUpdated.Format(time.RFC3339)
}
