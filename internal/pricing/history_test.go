package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/menu-price-insights/internal/domain"
)

func TestClampDays(t *testing.T) {
	assert.Equal(t, 1, ClampDays(0, 30))
	assert.Equal(t, 1, ClampDays(-4, 30))
	assert.Equal(t, 7, ClampDays(7, 30))
	assert.Equal(t, 30, ClampDays(90, 30))
	assert.Equal(t, 1, ClampDays(5, 0))
}

func TestHistoryWindowStart(t *testing.T) {
	end := time.Date(2025, 6, 15, 18, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), HistoryWindowStart(end, 7))
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), HistoryWindowStart(end, 1))
}

func TestFillHistoryGaps(t *testing.T) {
	// Sunday 2025-06-15, so the 7-day window starts on Monday
	end := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	query := domain.HistoryQuery{Metric: domain.MetricOurPrice, Days: 7}

	t.Run("CarriesLastKnownValueForward", func(t *testing.T) {
		baseline := 50.0
		series := FillHistoryGaps(query, end, map[string]float64{
			"2025-06-10": 101.234,
			"2025-06-13": 99.999,
		}, &baseline)

		require.Len(t, series.Points, 7)
		assert.Equal(t, domain.MetricOurPrice, series.Metric)
		assert.Equal(t, 7, series.Days)
		assert.Nil(t, series.DishID)

		assert.Equal(t, "Mon", series.Points[0].Day)
		assert.Equal(t, "2025-06-09", series.Points[0].Date)
		assert.Equal(t, "Sun", series.Points[6].Day)

		want := []float64{50, 101.23, 101.23, 101.23, 100, 100, 100}
		for i, point := range series.Points {
			require.NotNil(t, point.Price, "point %d", i)
			assert.Equal(t, want[i], *point.Price, "point %d", i)
		}
	})

	t.Run("NoDataAndNoBaseline", func(t *testing.T) {
		series := FillHistoryGaps(query, end, nil, nil)

		require.Len(t, series.Points, 7)
		for _, point := range series.Points {
			assert.Nil(t, point.Price)
		}
	})

	t.Run("LeadingGapWithoutBaseline", func(t *testing.T) {
		series := FillHistoryGaps(query, end, map[string]float64{"2025-06-11": 20}, nil)

		assert.Nil(t, series.Points[0].Price)
		assert.Nil(t, series.Points[1].Price)
		assert.Equal(t, 20.0, *series.Points[2].Price)
		assert.Equal(t, 20.0, *series.Points[6].Price)
	})

	t.Run("EchoesDishFilter", func(t *testing.T) {
		series := FillHistoryGaps(domain.HistoryQuery{Metric: domain.MetricCompetitorAvg, Days: 3, DishID: "42"}, end, nil, nil)

		require.NotNil(t, series.DishID)
		assert.Equal(t, "42", *series.DishID)
		assert.Equal(t, domain.MetricCompetitorAvg, series.Metric)
		require.Len(t, series.Points, 3)
		assert.Equal(t, "2025-06-13", series.Points[0].Date)
	})
}

func TestParsePriceMetric(t *testing.T) {
	assert.Equal(t, domain.MetricOurPrice, domain.ParsePriceMetric(""))
	assert.Equal(t, domain.MetricOurPrice, domain.ParsePriceMetric("bogus"))
	assert.Equal(t, domain.MetricCompetitorAvg, domain.ParsePriceMetric("competitor_avg"))
}
