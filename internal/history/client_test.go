package history

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridwanfathin/menu-price-insights/internal/domain"
)

func TestClientFetchHistory(t *testing.T) {
	t.Run("DecodesSeries", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/price-history", r.URL.Path)
			assert.Equal(t, "competitor_avg", r.URL.Query().Get("metric"))
			assert.Equal(t, "7", r.URL.Query().Get("days"))
			assert.Equal(t, "12", r.URL.Query().Get("dish_id"))
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"metric":"competitor_avg","dish_id":12,"days":7,"points":[
				{"day":"Mon","date":"2025-06-09","price":101.5},
				{"day":"Tue","date":"2025-06-10","price":null}
			]}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, time.Second)
		series, err := client.FetchHistory(context.Background(), domain.HistoryQuery{
			Metric:      domain.MetricCompetitorAvg,
			Days:        7,
			DishID:      "12",
			AccessToken: "tok",
		})
		require.NoError(t, err)

		assert.Equal(t, domain.MetricCompetitorAvg, series.Metric)
		require.NotNil(t, series.DishID)
		assert.Equal(t, "12", *series.DishID)
		require.Len(t, series.Points, 2)
		assert.Equal(t, "Mon", series.Points[0].Day)
		assert.Equal(t, 101.5, *series.Points[0].Price)
		assert.Nil(t, series.Points[1].Price)
	})

	t.Run("OmitsDishFilterForAll", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, present := r.URL.Query()["dish_id"]
			assert.False(t, present)
			_, _ = w.Write([]byte(`{"metric":"our_price","dish_id":null,"days":7,"points":[]}`))
		}))
		defer server.Close()

		series, err := NewClient(server.URL, time.Second).FetchHistory(context.Background(), domain.HistoryQuery{Metric: domain.MetricOurPrice, Days: 7})
		require.NoError(t, err)
		assert.Nil(t, series.DishID)
		assert.Empty(t, series.Points)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		_, err := NewClient(server.URL, time.Second).FetchHistory(context.Background(), domain.HistoryQuery{Metric: domain.MetricOurPrice, Days: 7})
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("ServerError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"Failed to fetch price history"}`, http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := NewClient(server.URL, time.Second).FetchHistory(context.Background(), domain.HistoryQuery{Metric: domain.MetricOurPrice, Days: 7})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("MalformedBody", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html>`))
		}))
		defer server.Close()

		_, err := NewClient(server.URL, time.Second).FetchHistory(context.Background(), domain.HistoryQuery{Metric: domain.MetricOurPrice, Days: 7})
		assert.Error(t, err)
	})

	t.Run("Timeout", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		_, err := NewClient(server.URL, 20*time.Millisecond).FetchHistory(context.Background(), domain.HistoryQuery{Metric: domain.MetricOurPrice, Days: 7})
		assert.Error(t, err)
	})
}
