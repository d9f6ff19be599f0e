package pricing

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ridwanfathin/menu-price-insights/internal/domain"
)

var (
	dishNameKeys      = []string{"dish_name", "name", "dishName"}
	ourPriceKeys      = []string{"our_price", "ourPrice"}
	competitorAvgKeys = []string{"competitor_avg", "competitorAvg"}
	createdAtKeys     = []string{"created_at", "createdAt"}

	competitorNameKeys = []string{"restaurant_name", "restaurantName", "name"}
	websiteURLKeys     = []string{"website_url", "websiteUrl"}
	dishesTrackedKeys  = []string{"dishes_tracked", "dishesTracked"}
	scrapedTitleKeys   = []string{"scraped_title", "scrapedTitle"}
	lastUpdatedKeys    = []string{"last_updated", "lastUpdated"}

	timestampLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05.999999", "2006-01-02 15:04:05", "2006-01-02"}
)

// NormalizeDish converts a loosely typed record into a canonical dish.
// It returns false when the record has no identifier. Bad numeric input
// becomes NaN and ends up in the Competitive bucket.
func NormalizeDish(raw map[string]interface{}) (domain.Dish, bool) {
	id := stringField(raw, "id")
	if id == "" {
		return domain.Dish{}, false
	}

	return NewDish(
		id,
		stringField(raw, dishNameKeys...),
		stringField(raw, "category"),
		numberField(raw, ourPriceKeys...),
		numberField(raw, competitorAvgKeys...),
		timeField(raw, createdAtKeys...),
	), true
}

// NormalizeDishes normalizes a batch, dropping rows without an identifier
func NormalizeDishes(rows []map[string]interface{}) []domain.Dish {
	dishes := make([]domain.Dish, 0, len(rows))
	for _, row := range rows {
		if dish, ok := NormalizeDish(row); ok {
			dishes = append(dishes, dish)
		}
	}
	return dishes
}

// NewDish builds a dish with its comparison fields derived from the two prices
func NewDish(id, name, category string, ourPrice, competitorAvg float64, createdAt *time.Time) domain.Dish {
	percent, status := Compare(ourPrice, competitorAvg)
	return domain.Dish{
		ID:                id,
		Name:              name,
		Category:          category,
		OurPrice:          ourPrice,
		CompetitorAvg:     competitorAvg,
		DifferencePercent: percent,
		Status:            status,
		CreatedAt:         createdAt,
	}
}

// NormalizeCompetitor converts a loosely typed record into competitor metadata
func NormalizeCompetitor(raw map[string]interface{}) (domain.Competitor, bool) {
	id := stringField(raw, "id")
	if id == "" {
		return domain.Competitor{}, false
	}

	tracked := numberField(raw, dishesTrackedKeys...)
	dishesTracked := 0
	if isFinite(tracked) && tracked > 0 {
		dishesTracked = int(tracked)
	}

	status := domain.CompetitorActive
	if strings.EqualFold(stringField(raw, "status"), string(domain.CompetitorDisabled)) {
		status = domain.CompetitorDisabled
	}

	return domain.Competitor{
		ID:             id,
		RestaurantName: stringField(raw, competitorNameKeys...),
		Platform:       stringField(raw, "platform"),
		WebsiteURL:     stringField(raw, websiteURLKeys...),
		DishesTracked:  dishesTracked,
		Status:         status,
		ScrapedTitle:   stringField(raw, scrapedTitleKeys...),
		LastUpdated:    timeField(raw, lastUpdatedKeys...),
	}, true
}

// NormalizeCompetitors normalizes a batch, dropping rows without an identifier
func NormalizeCompetitors(rows []map[string]interface{}) []domain.Competitor {
	competitors := make([]domain.Competitor, 0, len(rows))
	for _, row := range rows {
		if competitor, ok := NormalizeCompetitor(row); ok {
			competitors = append(competitors, competitor)
		}
	}
	return competitors
}

func lookup(raw map[string]interface{}, keys ...string) (interface{}, bool) {
	for _, key := range keys {
		if value, ok := raw[key]; ok && value != nil {
			return value, true
		}
	}
	return nil, false
}

func stringField(raw map[string]interface{}, keys ...string) string {
	value, ok := lookup(raw, keys...)
	if !ok {
		return ""
	}

	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case []byte:
		return strings.TrimSpace(string(v))
	case [16]byte:
		// pgx decodes uuid columns into raw bytes
		return fmt.Sprintf("%x-%x-%x-%x-%x", v[0:4], v[4:6], v[6:8], v[8:10], v[10:16])
	case fmt.Stringer:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func numberField(raw map[string]interface{}, keys ...string) float64 {
	value, ok := lookup(raw, keys...)
	if !ok {
		return math.NaN()
	}
	return toNumber(value)
}

func toNumber(value interface{}) float64 {
	var n float64
	switch v := value.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int8:
		n = float64(v)
	case int16:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	case uint:
		n = float64(v)
	case uint8:
		n = float64(v)
	case uint16:
		n = float64(v)
	case uint32:
		n = float64(v)
	case uint64:
		n = float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return math.NaN()
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return math.NaN()
		}
		n = f
	default:
		return math.NaN()
	}

	if !isFinite(n) {
		return math.NaN()
	}
	return n
}

func timeField(raw map[string]interface{}, keys ...string) *time.Time {
	value, ok := lookup(raw, keys...)
	if !ok {
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return nil
		}
		return &v
	case *time.Time:
		return v
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return &t
			}
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
