package correlate

import (
	"fmt"
	"math"
	"sort"

	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/stats"
)

// WeatherAnalysis correlates daily mean temperature and precipitation with
// each dataset's city-wide daily totals. Weather is an optional input: when
// the proxy is unreachable or too few station-days overlap, Available stays
// false and the rest of the pipeline is unaffected.
type WeatherAnalysis struct {
	Available       bool                        `json:"available"`
	TempCorrelation map[models.Dataset]*float64 `json:"temp_correlation"`
	PrcpCorrelation map[models.Dataset]*float64 `json:"prcp_correlation"`
}

// WeatherCorrelations builds the weather analysis from proxy observations.
// Multiple stations on one date are averaged into a single city series.
func WeatherCorrelations(obs []models.WeatherObservation, bundles map[models.Dataset]*models.AggregateBundle) *WeatherAnalysis {
	analysis := &WeatherAnalysis{
		TempCorrelation: make(map[models.Dataset]*float64, len(bundles)),
		PrcpCorrelation: make(map[models.Dataset]*float64, len(bundles)),
	}
	for _, d := range models.AllDatasets() {
		analysis.TempCorrelation[d] = nil
		analysis.PrcpCorrelation[d] = nil
	}
	if len(obs) == 0 {
		return analysis
	}

	tempByDate := make(map[string][]float64)
	prcpByDate := make(map[string][]float64)
	for _, o := range obs {
		tempByDate[o.Date] = append(tempByDate[o.Date], (o.TMax+o.TMin)/2)
		prcpByDate[o.Date] = append(prcpByDate[o.Date], o.Prcp)
	}

	for _, d := range models.AllDatasets() {
		bundle, ok := bundles[d]
		if !ok {
			continue
		}

		dates := make([]string, 0, len(tempByDate))
		for date := range tempByDate {
			if _, ok := bundle.DailyData[date]; ok {
				dates = append(dates, date)
			}
		}
		if len(dates) < minOverlapDays {
			continue
		}
		sort.Strings(dates)

		temp := make([]float64, len(dates))
		prcp := make([]float64, len(dates))
		for i, date := range dates {
			temp[i] = stats.Mean(tempByDate[date])
			prcp[i] = stats.Mean(prcpByDate[date])
		}
		activity := bundle.DailyTotals(dates)

		tr := stats.PearsonCorrelation(temp, activity)
		pr := stats.PearsonCorrelation(prcp, activity)
		analysis.TempCorrelation[d] = &tr
		analysis.PrcpCorrelation[d] = &pr
		analysis.Available = true
	}
	return analysis
}

func (w *WeatherAnalysis) insights() []models.Insight {
	if w == nil || !w.Available {
		return nil
	}

	out := make([]models.Insight, 0)
	for _, d := range models.AllDatasets() {
		if r := w.TempCorrelation[d]; r != nil && math.Abs(*r) > insightCorrelationMin {
			out = append(out, models.Insight{
				Kind: "weather",
				Text: fmt.Sprintf("Daily temperature and %s move %sly together (r=%.2f)",
					datasetLabels[d], directionWord(*r), *r),
				Strength: math.Abs(*r),
			})
		}
		if r := w.PrcpCorrelation[d]; r != nil && math.Abs(*r) > insightCorrelationMin {
			out = append(out, models.Insight{
				Kind: "weather",
				Text: fmt.Sprintf("Precipitation shows a %s %s relationship with %s (r=%.2f)",
					strengthWord(*r), directionWord(*r), datasetLabels[d], *r),
				Strength: math.Abs(*r),
			})
		}
	}
	return out
}
