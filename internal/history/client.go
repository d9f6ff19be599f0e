package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ridwanfathin/menu-price-insights/internal/domain"
)

const (
	historyPath      = "/api/price-history"
	defaultTimeout   = 10 * time.Second
	maxErrorBodySize = 512
)

// ErrUnauthorized is returned when the history service rejects the forwarded token
var ErrUnauthorized = errors.New("price history service rejected the access token")

// Client fetches price history from the external persistence API.
// It satisfies pricing.HistorySource.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// historyResponse is the wire shape of GET /api/price-history; dish_id may be a number or a string
type historyResponse struct {
	Metric string      `json:"metric"`
	DishID interface{} `json:"dish_id"`
	Days   int         `json:"days"`
	Points []struct {
		Day   string   `json:"day"`
		Date  string   `json:"date"`
		Price *float64 `json:"price"`
	} `json:"points"`
}

// NewClient creates a new history client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchHistory requests one metric series, forwarding the caller's bearer token
func (c *Client) FetchHistory(ctx context.Context, query domain.HistoryQuery) (*domain.HistorySeries, error) {
	params := url.Values{}
	params.Set("metric", string(query.Metric))
	params.Set("days", strconv.Itoa(query.Days))
	if query.DishID != "" {
		params.Set("dish_id", query.DishID)
	}

	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, historyPath, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if query.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+query.AccessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch price history: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusUnprocessableEntity {
		return nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, fmt.Errorf("price history API returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload historyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return payload.toSeries(query), nil
}

func (r historyResponse) toSeries(query domain.HistoryQuery) *domain.HistorySeries {
	series := &domain.HistorySeries{
		Metric: domain.ParsePriceMetric(r.Metric),
		Days:   r.Days,
		Points: make([]domain.HistoryPoint, 0, len(r.Points)),
	}
	if r.Metric == "" {
		series.Metric = query.Metric
	}

	switch id := r.DishID.(type) {
	case nil:
	case string:
		series.DishID = &id
	case float64:
		s := strconv.FormatFloat(id, 'f', -1, 64)
		series.DishID = &s
	default:
		s := fmt.Sprint(id)
		series.DishID = &s
	}

	for _, point := range r.Points {
		series.Points = append(series.Points, domain.HistoryPoint{
			Day:   point.Day,
			Date:  point.Date,
			Price: point.Price,
		})
	}
	return series
}
