package pricing

import (
	"math"

	"github.com/ridwanfathin/menu-price-insights/internal/domain"
)

// Dashboard computes the headline numbers shown on the dashboard. The average
// is the mean absolute difference over dishes with a known price and baseline.
// Only unread alerts count as active.
func Dashboard(dishes []domain.Dish, competitors []domain.Competitor, alerts []domain.Alert) domain.DashboardStats {
	stats := domain.DashboardStats{
		TotalDishes:          len(dishes),
		CompetitorsMonitored: len(competitors),
		ActiveAlerts:         CountUnread(alerts),
	}

	var total float64
	for _, dish := range dishes {
		if !isFinite(dish.OurPrice) {
			continue
		}
		percent, ok := rawPercent(dish.OurPrice, dish.CompetitorAvg)
		if !ok {
			continue
		}
		total += math.Abs(percent)
		stats.ComparableDishes++
	}
	if stats.ComparableDishes > 0 {
		stats.AverageAbsoluteDiff = total / float64(stats.ComparableDishes)
	}

	for _, competitor := range competitors {
		if competitor.Status == domain.CompetitorActive {
			stats.ActiveCompetitors++
		}
		stats.DishesTrackedByRivals += competitor.DishesTracked
	}
	return stats
}
