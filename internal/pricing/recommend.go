package pricing

import (
	"fmt"
	"math"
	"sort"

	"github.com/ridwanfathin/menu-price-insights/internal/domain"
)

const (
	// MaxRecommendations bounds the number of suggestions returned by Recommend
	MaxRecommendations = 3

	// recommendationThreshold is the percent deviation beyond which a price change is suggested
	recommendationThreshold = 2.0
)

// Recommend ranks comparable dishes by absolute percent deviation and returns
// the most significant suggestions first. Dishes without a usable competitor
// baseline or with an unknown own price are left out entirely.
func Recommend(dishes []domain.Dish) []domain.Recommendation {
	recommendations := make([]domain.Recommendation, 0, len(dishes))

	for _, dish := range dishes {
		if !isFinite(dish.OurPrice) {
			continue
		}
		percentDiff, ok := rawPercent(dish.OurPrice, dish.CompetitorAvg)
		if !ok {
			continue
		}
		recommendations = append(recommendations, recommendationFor(dish, percentDiff))
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].RankScore > recommendations[j].RankScore
	})

	if len(recommendations) > MaxRecommendations {
		recommendations = recommendations[:MaxRecommendations]
	}
	return recommendations
}

func recommendationFor(dish domain.Dish, percentDiff float64) domain.Recommendation {
	rec := domain.Recommendation{
		DishID:   dish.ID,
		DishName: dish.Name,
	}
	magnitude := math.Round(math.Abs(percentDiff))

	switch {
	case percentDiff > recommendationThreshold:
		rec.Suggestion = fmt.Sprintf("Reduce price by %.0f%%", magnitude)
		rec.Reason = fmt.Sprintf("Price is %.0f%% higher than competitor average", magnitude)
		rec.RankScore = math.Abs(percentDiff)
	case percentDiff < -recommendationThreshold:
		rec.Suggestion = fmt.Sprintf("Increase price by %.0f%%", magnitude)
		rec.Reason = fmt.Sprintf("Currently priced %.0f%% below competitor average", magnitude)
		rec.RankScore = math.Abs(percentDiff)
	default:
		rec.Suggestion = "Keep price unchanged"
		rec.Reason = "Price is competitive in the market"
	}
	return rec
}
