package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/menu-price-insights/internal/domain"
)

const (
	// DefaultHistoryDays is used when a price-history request does not name a window
	DefaultHistoryDays = 7

	dateLayout = "2006-01-02"
)

// ClampDays keeps a requested history window within [1, maxDays]
func ClampDays(requested, maxDays int) int {
	if maxDays < 1 {
		maxDays = 1
	}
	if requested < 1 {
		return 1
	}
	if requested > maxDays {
		return maxDays
	}
	return requested
}

// HistoryWindowStart returns the first day, at midnight UTC, of a window ending on end
func HistoryWindowStart(end time.Time, days int) time.Time {
	end = end.UTC()
	day := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return day.AddDate(0, 0, -(days - 1))
}

// FillHistoryGaps lays daily averages out on a contiguous window ending on end.
// A day without data repeats the last known value, or takes the baseline when
// nothing is known yet; it stays empty when neither exists. dailyAverages is
// keyed by ISO date.
func FillHistoryGaps(query domain.HistoryQuery, end time.Time, dailyAverages map[string]float64, baseline *float64) domain.HistorySeries {
	start := HistoryWindowStart(end, query.Days)

	series := domain.HistorySeries{
		Metric: query.Metric,
		Days:   query.Days,
		Points: make([]domain.HistoryPoint, 0, query.Days),
	}
	if query.DishID != "" {
		dishID := query.DishID
		series.DishID = &dishID
	}

	var lastKnown *float64
	for offset := 0; offset < query.Days; offset++ {
		day := start.AddDate(0, 0, offset)
		date := day.Format(dateLayout)

		var value *float64
		if avg, ok := dailyAverages[date]; ok && isFinite(avg) {
			value = &avg
		} else if lastKnown != nil {
			value = lastKnown
		} else if baseline != nil && isFinite(*baseline) {
			value = baseline
		}

		point := domain.HistoryPoint{
			Day:  day.Format("Mon"),
			Date: date,
		}
		if value != nil {
			lastKnown = value
			rounded := roundCents(*value)
			point.Price = &rounded
		}
		series.Points = append(series.Points, point)
	}
	return series
}

func roundCents(v float64) float64 {
	rounded, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return rounded
}
