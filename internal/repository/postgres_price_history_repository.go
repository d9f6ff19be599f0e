package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ridwanfathin/menu-price-insights/internal/domain"
	"github.com/ridwanfathin/menu-price-insights/internal/pricing"
)

var _ pricing.HistorySource = (*PostgresPriceHistoryRepository)(nil)

// PostgresPriceHistoryRepository reads daily averages from dish_price_history.
type PostgresPriceHistoryRepository struct {
	db  *pgxpool.Pool
	now func() time.Time
}

// NewPostgresPriceHistoryRepository creates a new PostgreSQL price history repository
func NewPostgresPriceHistoryRepository(db *pgxpool.Pool) *PostgresPriceHistoryRepository {
	return &PostgresPriceHistoryRepository{
		db:  db,
		now: time.Now,
	}
}

// FetchHistory returns one gap-filled point per day of the window ending today (UTC)
func (r *PostgresPriceHistoryRepository) FetchHistory(ctx context.Context, query domain.HistoryQuery) (*domain.HistorySeries, error) {
	if query.Days < 1 {
		query.Days = pricing.DefaultHistoryDays
	}
	query.Metric = domain.ParsePriceMetric(string(query.Metric))

	end := r.now()
	start := pricing.HistoryWindowStart(end, query.Days)

	sql, args := dailyAverageQuery(query, start)
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query price history: %w", err)
	}
	defer rows.Close()

	daily := make(map[string]float64)
	for rows.Next() {
		var day string
		var avg *float64
		if err := rows.Scan(&day, &avg); err != nil {
			return nil, fmt.Errorf("failed to scan price history row: %w", err)
		}
		if avg != nil {
			daily[day] = *avg
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price history rows: %w", err)
	}

	var baseline *float64
	sql, args = baselineQuery(query)
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&baseline); err != nil {
		return nil, fmt.Errorf("failed to query baseline price: %w", err)
	}

	series := pricing.FillHistoryGaps(query, end, daily, baseline)
	return &series, nil
}

// metricColumn maps a metric to its dishes column; only whitelisted names reach SQL
func metricColumn(metric domain.PriceMetric) string {
	if metric == domain.MetricCompetitorAvg {
		return "competitor_avg"
	}
	return "our_price"
}

func dailyAverageQuery(query domain.HistoryQuery, start time.Time) (string, []interface{}) {
	sql := `
		SELECT to_char((recorded_at AT TIME ZONE 'UTC')::date, 'YYYY-MM-DD') AS history_day,
		       AVG(price_value)::float8 AS avg_price
		FROM dish_price_history
		WHERE restaurant_id = $1
		  AND metric = $2
		  AND recorded_at >= $3`
	args := []interface{}{query.RestaurantID, string(query.Metric), start}

	if query.DishID != "" {
		sql += `
		  AND dish_id::text = $4`
		args = append(args, query.DishID)
	}

	sql += `
		GROUP BY history_day
		ORDER BY history_day ASC`
	return sql, args
}

func baselineQuery(query domain.HistoryQuery) (string, []interface{}) {
	sql := fmt.Sprintf(`SELECT AVG(%s)::float8 FROM dishes WHERE restaurant_id = $1`, metricColumn(query.Metric))
	args := []interface{}{query.RestaurantID}

	if query.DishID != "" {
		sql += ` AND id::text = $2`
		args = append(args, query.DishID)
	}
	return sql, args
}
