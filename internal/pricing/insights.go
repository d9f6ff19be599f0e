package pricing

import (
	"fmt"
	"strings"

	"github.com/ridwanfathin/menu-price-insights/internal/domain"
)

const insightThreshold = 5.0

// ParseInsightFilter validates a filter value. An empty value means all.
func ParseInsightFilter(value string) (domain.InsightCategory, error) {
	switch category := domain.InsightCategory(strings.ToLower(strings.TrimSpace(value))); category {
	case "", domain.InsightAll:
		return domain.InsightAll, nil
	case domain.InsightHigher, domain.InsightLower, domain.InsightCompetitive:
		return category, nil
	default:
		return "", fmt.Errorf("unknown insight filter %q", value)
	}
}

// InsightPercent is the unrounded percent difference used for market commentary.
// It is 0 without a usable baseline and falls back to the rounded difference
// when the raw value cannot be computed.
func InsightPercent(dish domain.Dish) float64 {
	if !hasBaseline(dish.CompetitorAvg) {
		return 0
	}
	raw := (dish.OurPrice - dish.CompetitorAvg) / dish.CompetitorAvg * 100
	if !isFinite(raw) {
		return dish.DifferencePercent
	}
	return raw
}

// ClassifyInsights produces one insight per dish in input order
func ClassifyInsights(dishes []domain.Dish) []domain.Insight {
	insights := make([]domain.Insight, 0, len(dishes))
	for _, dish := range dishes {
		insights = append(insights, classify(dish))
	}
	return insights
}

func classify(dish domain.Dish) domain.Insight {
	percent := InsightPercent(dish)

	switch {
	case percent > insightThreshold:
		return domain.Insight{
			DishID:   dish.ID,
			Category: domain.InsightHigher,
			Message:  fmt.Sprintf("%s: Priced significantly above market", dish.Name),
		}
	case percent < -insightThreshold:
		return domain.Insight{
			DishID:   dish.ID,
			Category: domain.InsightLower,
			Message:  fmt.Sprintf("%s: Priced below competitors", dish.Name),
		}
	default:
		return domain.Insight{
			DishID:   dish.ID,
			Category: domain.InsightCompetitive,
			Message:  fmt.Sprintf("%s: Competitively positioned", dish.Name),
		}
	}
}

// FilterInsights keeps the insights of one category. The all filter returns the input unchanged.
func FilterInsights(insights []domain.Insight, filter domain.InsightCategory) []domain.Insight {
	if filter == domain.InsightAll || filter == "" {
		return insights
	}

	filtered := make([]domain.Insight, 0, len(insights))
	for _, insight := range insights {
		if insight.Category == filter {
			filtered = append(filtered, insight)
		}
	}
	return filtered
}

// CountInsights tallies insights per category
func CountInsights(insights []domain.Insight) domain.InsightCounts {
	counts := domain.InsightCounts{All: len(insights)}
	for _, insight := range insights {
		switch insight.Category {
		case domain.InsightHigher:
			counts.Higher++
		case domain.InsightLower:
			counts.Lower++
		default:
			counts.Competitive++
		}
	}
	return counts
}

// Summarize computes the analytics KPIs. An empty set yields zero values and no extremes.
func Summarize(dishes []domain.Dish) domain.PricingKPIs {
	var kpis domain.PricingKPIs
	if len(dishes) == 0 {
		return kpis
	}

	var totalDifference float64
	undercut := 0
	for i := range dishes {
		dish := dishes[i]
		totalDifference += InsightPercent(dish)

		if dish.CompetitorAvg < dish.OurPrice {
			undercut++
		}

		// unknown prices never win; ties keep the first dish seen
		if !isFinite(dish.OurPrice) {
			continue
		}
		if kpis.HighestPricedDish == nil || dish.OurPrice > kpis.HighestPricedDish.OurPrice {
			kpis.HighestPricedDish = &dishes[i]
		}
		if kpis.LowestPricedDish == nil || dish.OurPrice < kpis.LowestPricedDish.OurPrice {
			kpis.LowestPricedDish = &dishes[i]
		}
	}

	kpis.AverageDifference = totalDifference / float64(len(dishes))
	kpis.CompetitorUndercut = float64(undercut) / float64(len(dishes)) * 100
	return kpis
}
