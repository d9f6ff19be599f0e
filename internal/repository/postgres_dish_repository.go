package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresDishRepository implements DishRepository using PostgreSQL
type PostgresDishRepository struct {
	db *pgxpool.Pool
}

// NewPostgresDishRepository creates a new PostgreSQL dish repository
func NewPostgresDishRepository(db *pgxpool.Pool) *PostgresDishRepository {
	return &PostgresDishRepository{
		db: db,
	}
}

// ListDishes returns the restaurant's dishes in creation order
func (r *PostgresDishRepository) ListDishes(ctx context.Context, restaurantID string) ([]map[string]interface{}, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, dish_name, category, our_price::float8 AS our_price,
		       competitor_avg::float8 AS competitor_avg, created_at
		FROM dishes
		WHERE restaurant_id = $1
		ORDER BY created_at ASC, id ASC
	`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query dishes: %w", err)
	}

	dishes, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("failed to read dishes: %w", err)
	}
	return dishes, nil
}

// PostgresCompetitorRepository implements CompetitorRepository using PostgreSQL
type PostgresCompetitorRepository struct {
	db *pgxpool.Pool
}

// NewPostgresCompetitorRepository creates a new PostgreSQL competitor repository
func NewPostgresCompetitorRepository(db *pgxpool.Pool) *PostgresCompetitorRepository {
	return &PostgresCompetitorRepository{
		db: db,
	}
}

// ListCompetitors returns the restaurant's competitors, most recently updated first
func (r *PostgresCompetitorRepository) ListCompetitors(ctx context.Context, restaurantID string) ([]map[string]interface{}, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, restaurant_name, platform, website_url, dishes_tracked,
		       status, scraped_title, last_updated
		FROM competitors
		WHERE restaurant_id = $1
		ORDER BY last_updated DESC NULLS LAST, id ASC
	`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query competitors: %w", err)
	}

	competitors, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("failed to read competitors: %w", err)
	}
	return competitors, nil
}

// PostgresAlertRepository implements AlertRepository using PostgreSQL
type PostgresAlertRepository struct {
	db *pgxpool.Pool
}

// NewPostgresAlertRepository creates a new PostgreSQL alert repository
func NewPostgresAlertRepository(db *pgxpool.Pool) *PostgresAlertRepository {
	return &PostgresAlertRepository{
		db: db,
	}
}

// ListAlerts returns the restaurant's alerts, newest first
func (r *PostgresAlertRepository) ListAlerts(ctx context.Context, restaurantID string) ([]map[string]interface{}, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id::text AS id, dish_name, old_price::float8 AS old_price,
		       new_price::float8 AS new_price, message, created_at, is_read
		FROM alerts
		WHERE restaurant_id = $1
		ORDER BY created_at DESC, id DESC
	`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}

	alerts, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, fmt.Errorf("failed to read alerts: %w", err)
	}
	return alerts, nil
}

// MarkAlertRead flags one alert as read. Alerts of other restaurants are never touched.
func (r *PostgresAlertRepository) MarkAlertRead(ctx context.Context, restaurantID, alertID string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE alerts SET is_read = TRUE
		WHERE id::text = $1 AND restaurant_id = $2
	`, alertID, restaurantID)
	if err != nil {
		return false, fmt.Errorf("failed to mark alert read: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
