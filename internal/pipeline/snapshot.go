package pipeline

import (
	"sort"
	"time"

	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/correlate"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/stats"
)

// Snapshot is the complete, immutable output of one full recompute over a
// date range. Consumers receive the snapshot by value of reference and
// must treat it as read-only; a new range or window selection produces a
// new snapshot rather than patching this one.
type Snapshot struct {
	Version    int64     `json:"version"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	ComputedAt time.Time `json:"computed_at"`

	Records map[models.Dataset][]models.NormalizedRecord `json:"-"`
	Drops   map[models.Dataset]models.DropCounts         `json:"drops"`

	Bundles  map[models.Dataset]*models.AggregateBundle `json:"bundles"`
	Matrix   *models.CorrelationMatrix                  `json:"matrix"`
	Impacts  []models.EventImpact                       `json:"impacts"`
	Clusters []models.Cluster                           `json:"clusters"`
	Weather  *correlate.WeatherAnalysis                 `json:"weather"`
	Insights []models.Insight                           `json:"insights"`
}

// DatasetSummary condenses one dataset's bundle for the dashboard header.
// CategoryDiversity is the normalized Shannon entropy of the category
// breakdown: 0 when one category dominates completely, 1 when activity is
// spread evenly.
type DatasetSummary struct {
	Dataset           models.Dataset `json:"dataset"`
	RecordCount       int            `json:"record_count"`
	Total             float64        `json:"total"`
	DailyMean         float64        `json:"daily_mean"`
	DailyMedian       float64        `json:"daily_median"`
	DailyP90          float64        `json:"daily_p90"`
	PeakDate          string         `json:"peak_date,omitempty"`
	PeakValue         float64        `json:"peak_value"`
	CategoryDiversity float64        `json:"category_diversity"`
	Dropped           int            `json:"dropped"`
}

// Summaries returns one summary per dataset in canonical order.
func (s *Snapshot) Summaries() []DatasetSummary {
	out := make([]DatasetSummary, 0, len(s.Bundles))
	for _, d := range models.AllDatasets() {
		bundle, ok := s.Bundles[d]
		if !ok {
			continue
		}

		dates := make([]string, 0, len(bundle.DailyData))
		for date := range bundle.DailyData {
			dates = append(dates, date)
		}
		sort.Strings(dates)
		daily := bundle.DailyTotals(dates)

		categories := make([]float64, 0, len(bundle.CategoryBreakdown))
		for _, v := range bundle.CategoryBreakdown {
			categories = append(categories, v)
		}

		summary := DatasetSummary{
			Dataset:           d,
			RecordCount:       bundle.RecordCount,
			Total:             stats.Sum(daily),
			DailyMean:         stats.Mean(daily),
			DailyMedian:       stats.Median(daily),
			DailyP90:          stats.Percentile(daily, 90),
			PeakValue:         stats.Max(daily),
			CategoryDiversity: stats.NormalizedEntropy(categories),
			Dropped:           s.Drops[d].Total(),
		}
		for i, date := range dates {
			if daily[i] == summary.PeakValue {
				summary.PeakDate = date
				break
			}
		}
		out = append(out, summary)
	}
	return out
}
