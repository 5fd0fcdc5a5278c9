package models

// AggregateBundle is the complete set of derived indexes for one dataset
// over one date range. It is produced by a full recompute and never patched
// incrementally.
//
// Structural invariants: every borough of the fixed set is present as a key
// even when its value is zero; every hourly slice has length 24 and every
// day-of-week slice length 7, with no gaps.
type AggregateBundle struct {
	Dataset           Dataset                `json:"dataset"`
	TotalByBorough    map[string]float64     `json:"total_by_borough"`
	HourlyByBorough   map[string][]float64   `json:"hourly_by_borough"`  // 24 buckets per borough
	DowByBorough      map[string][]float64   `json:"dow_by_borough"`     // 7 buckets, Sunday=0
	DailyData         map[string]*DailyEntry `json:"daily_data"`         // keyed by YYYY-MM-DD
	CategoryBreakdown map[string]float64     `json:"category_breakdown"` // complaint/event type, payment method
	TripStats         *TripStats             `json:"trip_stats,omitempty"`
	RecordCount       int                    `json:"record_count"`
}

// DailyEntry is the per-date slice of a bundle.
type DailyEntry struct {
	Total     float64            `json:"total"`
	ByBorough map[string]float64 `json:"by_borough"`
}

// TripStats carries the taxi running averages: city-wide and per borough,
// each divided by its own sample count.
type TripStats struct {
	AvgDistance float64                    `json:"avg_distance"`
	AvgFare     float64                    `json:"avg_fare"`
	AvgTip      float64                    `json:"avg_tip"`
	ByBorough   map[string]TripBoroughAvgs `json:"by_borough"`
}

// TripBoroughAvgs is one borough's slice of the taxi averages.
type TripBoroughAvgs struct {
	AvgDistance float64 `json:"avg_distance"`
	AvgFare     float64 `json:"avg_fare"`
	AvgTip      float64 `json:"avg_tip"`
	TripCount   int     `json:"trip_count"`
}

// DailySeries returns the bundle's daily totals for one borough restricted
// to the given dates, in date order. Dates the bundle has no entry for
// contribute 0.
func (b *AggregateBundle) DailySeries(borough string, dates []string) []float64 {
	series := make([]float64, len(dates))
	for i, d := range dates {
		if entry, ok := b.DailyData[d]; ok {
			series[i] = entry.ByBorough[borough]
		}
	}
	return series
}

// DailyTotals returns the bundle's city-wide totals for the given dates.
func (b *AggregateBundle) DailyTotals(dates []string) []float64 {
	series := make([]float64, len(dates))
	for i, d := range dates {
		if entry, ok := b.DailyData[d]; ok {
			series[i] = entry.Total
		}
	}
	return series
}
