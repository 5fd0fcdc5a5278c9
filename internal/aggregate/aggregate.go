package aggregate

import (
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/boroughs"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/stats"
)

// Build derives the complete aggregate bundle for one dataset in a single
// pass over its normalized records. An empty input yields a structurally
// complete bundle with all zeros; the shape is never omitted. Running Build
// twice on the same input yields identical bundles.
func Build(dataset models.Dataset, records []models.NormalizedRecord) *models.AggregateBundle {
	bundle := newZeroBundle(dataset)

	var tripAcc *tripAccumulator
	if dataset == models.DatasetTaxi {
		tripAcc = newTripAccumulator()
	}

	for i := range records {
		rec := &records[i]

		// The normalizer guarantees membership in the fixed borough set and
		// bucket bounds; anything else would corrupt the fixed-shape
		// indexes, so it is skipped outright.
		hourly, ok := bundle.HourlyByBorough[rec.Borough]
		if !ok || rec.Hour < 0 || rec.Hour > 23 || rec.DayOfWeek < 0 || rec.DayOfWeek > 6 {
			continue
		}

		bundle.TotalByBorough[rec.Borough] += rec.Magnitude
		hourly[rec.Hour] += rec.Magnitude
		bundle.DowByBorough[rec.Borough][rec.DayOfWeek] += rec.Magnitude

		day, ok := bundle.DailyData[rec.Date]
		if !ok {
			day = &models.DailyEntry{ByBorough: zeroBoroughMap()}
			bundle.DailyData[rec.Date] = day
		}
		day.Total += rec.Magnitude
		day.ByBorough[rec.Borough] += rec.Magnitude

		if rec.Category != "" {
			bundle.CategoryBreakdown[rec.Category] += rec.Magnitude
		}

		if tripAcc != nil && rec.Trip != nil {
			tripAcc.add(rec.Borough, rec.Trip)
		}

		bundle.RecordCount++
	}

	if tripAcc != nil {
		bundle.TripStats = tripAcc.finish()
	}
	return bundle
}

// BuildAll builds one bundle per dataset.
func BuildAll(records map[models.Dataset][]models.NormalizedRecord) map[models.Dataset]*models.AggregateBundle {
	bundles := make(map[models.Dataset]*models.AggregateBundle, len(records))
	for _, d := range models.AllDatasets() {
		bundles[d] = Build(d, records[d])
	}
	return bundles
}

func newZeroBundle(dataset models.Dataset) *models.AggregateBundle {
	bundle := &models.AggregateBundle{
		Dataset:           dataset,
		TotalByBorough:    zeroBoroughMap(),
		HourlyByBorough:   make(map[string][]float64, 5),
		DowByBorough:      make(map[string][]float64, 5),
		DailyData:         make(map[string]*models.DailyEntry),
		CategoryBreakdown: make(map[string]float64),
	}
	for _, b := range boroughs.All() {
		bundle.HourlyByBorough[b] = make([]float64, 24)
		bundle.DowByBorough[b] = make([]float64, 7)
	}
	return bundle
}

func zeroBoroughMap() map[string]float64 {
	m := make(map[string]float64, 5)
	for _, b := range boroughs.All() {
		m[b] = 0
	}
	return m
}

// tripAccumulator collects taxi metric samples during the aggregation pass.
// Per-borough averages divide by each borough's own sample count; empty
// sample lists average to 0 rather than dividing by zero.
type tripAccumulator struct {
	distances []float64
	fares     []float64
	tips      []float64
	byBorough map[string]*boroughSamples
}

type boroughSamples struct {
	distances []float64
	fares     []float64
	tips      []float64
}

func newTripAccumulator() *tripAccumulator {
	acc := &tripAccumulator{byBorough: make(map[string]*boroughSamples, 5)}
	for _, b := range boroughs.All() {
		acc.byBorough[b] = &boroughSamples{}
	}
	return acc
}

func (a *tripAccumulator) add(borough string, m *models.TripMetrics) {
	a.distances = append(a.distances, m.Distance)
	a.fares = append(a.fares, m.Fare)
	a.tips = append(a.tips, m.Tip)

	s := a.byBorough[borough]
	s.distances = append(s.distances, m.Distance)
	s.fares = append(s.fares, m.Fare)
	s.tips = append(s.tips, m.Tip)
}

func (a *tripAccumulator) finish() *models.TripStats {
	ts := &models.TripStats{
		AvgDistance: stats.Mean(a.distances),
		AvgFare:     stats.Mean(a.fares),
		AvgTip:      stats.Mean(a.tips),
		ByBorough:   make(map[string]models.TripBoroughAvgs, len(a.byBorough)),
	}
	for b, s := range a.byBorough {
		ts.ByBorough[b] = models.TripBoroughAvgs{
			AvgDistance: stats.Mean(s.distances),
			AvgFare:     stats.Mean(s.fares),
			AvgTip:      stats.Mean(s.tips),
			TripCount:   len(s.distances),
		}
	}
	return ts
}
