package pricing

import (
	"fmt"
	"math"

	"github.com/ridwanfathin/menu-price-insights/internal/domain"
)

// Compare returns the whole-percent difference of ourPrice against competitorAvg
// and the resulting status. A missing, zero or negative baseline is reported as
// 0 / Competitive, as is any non-finite result.
func Compare(ourPrice, competitorAvg float64) (float64, domain.DishStatus) {
	raw, ok := rawPercent(ourPrice, competitorAvg)
	if !ok {
		return 0, domain.StatusCompetitive
	}

	percent := math.Round(raw)
	switch {
	case percent > 0:
		return percent, domain.StatusHigher
	case percent < 0:
		return percent, domain.StatusLower
	default:
		// avoid reporting -0
		return 0, domain.StatusCompetitive
	}
}

// FormatDifference renders a percent with an explicit sign for positive values
func FormatDifference(percent float64) string {
	if !isFinite(percent) {
		return "0%"
	}
	rounded := math.Round(percent)
	if rounded > 0 {
		return fmt.Sprintf("+%.0f%%", rounded)
	}
	if rounded == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", rounded)
}

// rawPercent is the unrounded difference; ok is false when there is no usable baseline
func rawPercent(ourPrice, competitorAvg float64) (float64, bool) {
	if !hasBaseline(competitorAvg) {
		return 0, false
	}
	percent := (ourPrice - competitorAvg) / competitorAvg * 100
	if !isFinite(percent) {
		return 0, false
	}
	return percent, true
}

func hasBaseline(competitorAvg float64) bool {
	return isFinite(competitorAvg) && competitorAvg > 0
}
