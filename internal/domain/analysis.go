package domain

// InsightReport holds a filtered insight list with the counts of every category
type InsightReport struct {
	Filter   InsightCategory `json:"filter"`
	Insights []Insight       `json:"insights"`
	Counts   InsightCounts   `json:"counts"`
}

// PricingAnalysis bundles every derived view of one dish snapshot
type PricingAnalysis struct {
	Dishes          []Dish           `json:"dishes"`
	Recommendations []Recommendation `json:"recommendations"`
	Insights        InsightReport    `json:"insights"`
	KPIs            PricingKPIs      `json:"kpis"`
	Trend           TrendSeries      `json:"trend"`
	Dashboard       DashboardStats   `json:"dashboard"`
	Competitors     []Competitor     `json:"competitors"`
	SkippedRecords  int              `json:"skippedRecords"`
}
