package pricing

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ridwanfathin/menu-price-insights/internal/domain"
)

var (
	oldPriceKeys = []string{"old_price", "oldPrice"}
	newPriceKeys = []string{"new_price", "newPrice"}
	isReadKeys   = []string{"is_read", "isRead"}
)

// NormalizeAlert converts a loosely typed alert record. Rows without an id are dropped.
func NormalizeAlert(raw map[string]interface{}) (domain.Alert, bool) {
	id := stringField(raw, "id")
	if id == "" {
		return domain.Alert{}, false
	}

	return domain.Alert{
		ID:        id,
		DishName:  stringField(raw, dishNameKeys...),
		OldPrice:  decimalField(raw, oldPriceKeys...),
		NewPrice:  decimalField(raw, newPriceKeys...),
		Message:   stringField(raw, "message"),
		CreatedAt: timeField(raw, createdAtKeys...),
		IsRead:    boolField(raw, isReadKeys...),
	}, true
}

// NormalizeAlerts normalizes a batch, dropping rows without an identifier
func NormalizeAlerts(rows []map[string]interface{}) []domain.Alert {
	alerts := make([]domain.Alert, 0, len(rows))
	for _, row := range rows {
		if alert, ok := NormalizeAlert(row); ok {
			alerts = append(alerts, alert)
		}
	}
	return alerts
}

// CountUnread returns the number of alerts not yet marked read
func CountUnread(alerts []domain.Alert) int {
	unread := 0
	for _, alert := range alerts {
		if !alert.IsRead {
			unread++
		}
	}
	return unread
}

func decimalField(raw map[string]interface{}, keys ...string) decimal.NullDecimal {
	if n := numberField(raw, keys...); isFinite(n) {
		return decimal.NewNullDecimal(decimal.NewFromFloat(n))
	}
	return decimal.NullDecimal{}
}

// boolField accepts booleans, 0/1 numbers (MySQL TINYINT exports) and "true"/"false" strings
func boolField(raw map[string]interface{}, keys ...string) bool {
	value, ok := lookup(raw, keys...)
	if !ok {
		return false
	}

	switch v := value.(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && b
	default:
		n := toNumber(v)
		return isFinite(n) && n != 0
	}
}
