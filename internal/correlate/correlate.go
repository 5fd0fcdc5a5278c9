package correlate

import (
	"sort"

	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/boroughs"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/stats"
)

// Fixed analysis constants. These are design constants, not runtime
// configuration.
const (
	// minOverlapDays is the smallest number of overlapping date buckets a
	// pair of series needs before a coefficient is computed at all.
	minOverlapDays = 3

	// impactThresholdPct is the minimum |percent change| for an event
	// impact to be retained.
	impactThresholdPct = 10.0

	// insightCorrelationMin is the |r| above which a dataset-pair
	// coefficient is surfaced as an insight.
	insightCorrelationMin = 0.5

	// insightImpactPct is the |percent change| above which an event impact
	// is surfaced as an insight.
	insightImpactPct = 20.0
)

// SharedDates returns the sorted intersection of the two bundles' daily
// date keys.
func SharedDates(a, b *models.AggregateBundle) []string {
	dates := make([]string, 0, len(a.DailyData))
	for d := range a.DailyData {
		if _, ok := b.DailyData[d]; ok {
			dates = append(dates, d)
		}
	}
	sort.Strings(dates)
	return dates
}

// BoroughCorrelations computes, for each borough, the Pearson coefficient
// between the two bundles' daily series. A borough with fewer than
// minOverlapDays overlapping dates is omitted from the result, not zeroed.
func BoroughCorrelations(a, b *models.AggregateBundle) map[string]float64 {
	dates := SharedDates(a, b)
	if len(dates) < minOverlapDays {
		return map[string]float64{}
	}

	out := make(map[string]float64, 5)
	for _, borough := range boroughs.All() {
		x := a.DailySeries(borough, dates)
		y := b.DailySeries(borough, dates)
		out[borough] = stats.PearsonCorrelation(x, y)
	}
	return out
}

// BuildMatrix computes the symmetric dataset-pair correlation matrix. A
// cell is the arithmetic mean of the per-borough coefficients for that
// pair; a pair for which no borough produced a value stays nil.
func BuildMatrix(bundles map[models.Dataset]*models.AggregateBundle) *models.CorrelationMatrix {
	datasets := models.AllDatasets()
	matrix := models.NewCorrelationMatrix(datasets)

	for i := 0; i < len(datasets); i++ {
		for j := i + 1; j < len(datasets); j++ {
			a, okA := bundles[datasets[i]]
			b, okB := bundles[datasets[j]]
			if !okA || !okB {
				continue
			}
			perBorough := BoroughCorrelations(a, b)
			if len(perBorough) == 0 {
				continue
			}
			values := make([]float64, 0, len(perBorough))
			for _, r := range perBorough {
				values = append(values, r)
			}
			matrix.Set(datasets[i], datasets[j], stats.Mean(values))
		}
	}
	return matrix
}
