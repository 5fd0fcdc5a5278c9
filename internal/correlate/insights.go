package correlate

import (
	"fmt"
	"math"
	"sort"

	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
)

var datasetLabels = map[models.Dataset]string{
	models.DatasetCalls311: "311 complaints",
	models.DatasetTransit:  "subway ridership",
	models.DatasetTaxi:     "taxi trips",
	models.DatasetEvents:   "public events",
}

// Insights renders the strongest findings as natural-language strings:
// dataset-pair coefficients with |r| > 0.5 and event impacts with
// |change| > 20%. Output is ordered strongest first.
func Insights(matrix *models.CorrelationMatrix, impacts []models.EventImpact, weather *WeatherAnalysis) []models.Insight {
	insights := make([]models.Insight, 0)

	datasets := matrix.Datasets
	for i := 0; i < len(datasets); i++ {
		for j := i + 1; j < len(datasets); j++ {
			r := matrix.Get(datasets[i], datasets[j])
			if r == nil || math.Abs(*r) <= insightCorrelationMin {
				continue
			}
			insights = append(insights, models.Insight{
				Kind: "correlation",
				Text: fmt.Sprintf("%s and %s show a %s %s correlation (r=%.2f)",
					datasetLabels[datasets[i]], datasetLabels[datasets[j]],
					strengthWord(*r), directionWord(*r), *r),
				Strength: math.Abs(*r),
			})
		}
	}

	for _, imp := range impacts {
		if imp.MaxAbsChange <= insightImpactPct {
			continue
		}
		name := imp.EventName
		if name == "" {
			name = "An event"
		}
		insights = append(insights, models.Insight{
			Kind: "event_impact",
			Text: fmt.Sprintf("%s in %s on %s shifted local activity by up to %.0f%%",
				name, imp.Borough, imp.Date, imp.MaxAbsChange),
			Strength: imp.MaxAbsChange / 100,
		})
	}

	if weather != nil {
		insights = append(insights, weather.insights()...)
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Strength > insights[j].Strength
	})
	return insights
}

func directionWord(r float64) string {
	if r < 0 {
		return "negative"
	}
	return "positive"
}

func strengthWord(r float64) string {
	if math.Abs(r) > 0.8 {
		return "strong"
	}
	return "moderate"
}
