package repository

import (
	"context"
)

// DishRepository reads the restaurant's dish records as loosely typed rows.
// Rows go through the normalizer before any pricing logic sees them.
type DishRepository interface {
	ListDishes(ctx context.Context, restaurantID string) ([]map[string]interface{}, error)
}

// CompetitorRepository reads the competitors tracked for a restaurant
type CompetitorRepository interface {
	ListCompetitors(ctx context.Context, restaurantID string) ([]map[string]interface{}, error)
}

// AlertRepository reads and acknowledges competitor price alerts
type AlertRepository interface {
	ListAlerts(ctx context.Context, restaurantID string) ([]map[string]interface{}, error)
	// MarkAlertRead reports false when no alert with that id belongs to the restaurant
	MarkAlertRead(ctx context.Context, restaurantID, alertID string) (bool, error)
}
