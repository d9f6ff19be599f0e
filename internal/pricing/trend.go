package pricing

import (
	"context"
	"math"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ridwanfathin/menu-price-insights/internal/domain"
)

const (
	// SelectionAll selects the aggregate trend over every dish
	SelectionAll = "all"

	// TrendDays is the number of periods in a trend series
	TrendDays = 7
)

var (
	fallbackLabels      = [TrendDays]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	fallbackMultipliers = [TrendDays]float64{0.97, 1.01, 0.99, 1.03, 1.02, 1.06, 1.04}
)

// HistorySource provides period-aligned price history for one metric
type HistorySource interface {
	FetchHistory(ctx context.Context, query domain.HistoryQuery) (*domain.HistorySeries, error)
}

// TrendRequest identifies whose trend is reconciled and how the history source is reached
type TrendRequest struct {
	RestaurantID string
	Selection    string
	AccessToken  string
}

// Reconciler builds chart-ready trend series from remote history, or from a
// deterministic projection when history is unavailable
type Reconciler struct {
	source HistorySource
	logger *zap.Logger
}

// NewReconciler creates a reconciler. A nil source always yields the fallback series.
func NewReconciler(source HistorySource, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{
		source: source,
		logger: logger,
	}
}

// Reconcile returns the 7-point trend for the requested selection. History
// failures are never returned; they switch the result to the fallback series.
func (r *Reconciler) Reconcile(ctx context.Context, dishes []domain.Dish, req TrendRequest) domain.TrendSeries {
	selection := ResolveSelection(dishes, req.Selection)

	if len(dishes) == 0 {
		return domain.TrendSeries{
			Selection: selection,
			Source:    domain.TrendSourceNone,
			Points:    []domain.TrendPoint{},
		}
	}

	if r.source == nil || req.AccessToken == "" || !anyFinitePrice(dishes, selection) {
		return FallbackTrend(dishes, selection)
	}

	ourPrices, competitorAvgs, err := r.fetchBoth(ctx, req, selection)
	if !historyAvailable(err, ourPrices) {
		if err != nil {
			r.logger.Debug("price history unavailable, using fallback trend",
				zap.String("selection", selection),
				zap.Error(err),
			)
		}
		return FallbackTrend(dishes, selection)
	}

	return domain.TrendSeries{
		Selection: selection,
		Source:    domain.TrendSourceRemote,
		Points:    mergeHistory(ourPrices, competitorAvgs),
	}
}

// fetchBoth retrieves both metrics concurrently and waits for the slower one
func (r *Reconciler) fetchBoth(ctx context.Context, req TrendRequest, selection string) (*domain.HistorySeries, *domain.HistorySeries, error) {
	var ourPrices, competitorAvgs *domain.HistorySeries

	query := domain.HistoryQuery{
		RestaurantID: req.RestaurantID,
		Days:         TrendDays,
		AccessToken:  req.AccessToken,
	}
	if selection != SelectionAll {
		query.DishID = selection
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		q := query
		q.Metric = domain.MetricOurPrice
		series, err := r.source.FetchHistory(gctx, q)
		ourPrices = series
		return err
	})
	g.Go(func() error {
		q := query
		q.Metric = domain.MetricCompetitorAvg
		series, err := r.source.FetchHistory(gctx, q)
		competitorAvgs = series
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return ourPrices, competitorAvgs, nil
}

// historyAvailable decides between the remote and the fallback branch
func historyAvailable(fetchErr error, ourPrices *domain.HistorySeries) bool {
	if fetchErr != nil || ourPrices == nil {
		return false
	}
	for _, point := range ourPrices.Points {
		if point.Price != nil {
			return true
		}
	}
	return false
}

// mergeHistory pairs the two series by position. Every our-price position yields
// a point; the competitor value is absent where that series is shorter.
func mergeHistory(ourPrices, competitorAvgs *domain.HistorySeries) []domain.TrendPoint {
	points := make([]domain.TrendPoint, 0, len(ourPrices.Points))
	for i, point := range ourPrices.Points {
		trendPoint := domain.TrendPoint{
			Label:    point.Day,
			OurPrice: point.Price,
		}
		if competitorAvgs != nil && i < len(competitorAvgs.Points) {
			trendPoint.CompetitorAvg = competitorAvgs.Points[i].Price
		}
		points = append(points, trendPoint)
	}
	return points
}

// anyFinitePrice reports whether the selected dishes carry at least one known our price
func anyFinitePrice(dishes []domain.Dish, selection string) bool {
	for _, dish := range dishes {
		if selection != SelectionAll && dish.ID != selection {
			continue
		}
		if isFinite(dish.OurPrice) {
			return true
		}
	}
	return false
}

// ResolveSelection returns the selection if it names a dish in the set, otherwise "all"
func ResolveSelection(dishes []domain.Dish, selection string) string {
	if selection == "" || selection == SelectionAll {
		return SelectionAll
	}
	for _, dish := range dishes {
		if dish.ID == selection {
			return selection
		}
	}
	return SelectionAll
}

// FallbackTrend projects a fixed weekly pattern from the selected dish's prices,
// or from the mean prices of all dishes. The output depends only on its inputs.
func FallbackTrend(dishes []domain.Dish, selection string) domain.TrendSeries {
	selection = ResolveSelection(dishes, selection)
	if len(dishes) == 0 {
		return domain.TrendSeries{
			Selection: selection,
			Source:    domain.TrendSourceNone,
			Points:    []domain.TrendPoint{},
		}
	}

	var baseOurPrice, baseCompetitorAvg float64
	if selection == SelectionAll {
		for _, dish := range dishes {
			baseOurPrice += zeroIfUnknown(dish.OurPrice)
			baseCompetitorAvg += zeroIfUnknown(dish.CompetitorAvg)
		}
		baseOurPrice /= float64(len(dishes))
		baseCompetitorAvg /= float64(len(dishes))
	} else {
		for _, dish := range dishes {
			if dish.ID == selection {
				baseOurPrice = zeroIfUnknown(dish.OurPrice)
				baseCompetitorAvg = zeroIfUnknown(dish.CompetitorAvg)
				break
			}
		}
	}

	points := make([]domain.TrendPoint, 0, TrendDays)
	for i, label := range fallbackLabels {
		ourPrice := math.Round(baseOurPrice * fallbackMultipliers[i])
		competitorAvg := math.Round(baseCompetitorAvg * fallbackMultipliers[i])
		points = append(points, domain.TrendPoint{
			Label:         label,
			OurPrice:      &ourPrice,
			CompetitorAvg: &competitorAvg,
		})
	}

	return domain.TrendSeries{
		Selection: selection,
		Source:    domain.TrendSourceFallback,
		Points:    points,
	}
}

func zeroIfUnknown(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return v
}
