package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Alert represents a recorded competitor price drop for one dish.
// Alerts are written by the scraper; this service only reads them and marks them read.
type Alert struct {
	ID        string              `json:"id"`
	DishName  string              `json:"dishName"`
	OldPrice  decimal.NullDecimal `json:"oldPrice"`
	NewPrice  decimal.NullDecimal `json:"newPrice"`
	Message   string              `json:"message"`
	CreatedAt *time.Time          `json:"createdAt,omitempty"`
	IsRead    bool                `json:"isRead"`
}
