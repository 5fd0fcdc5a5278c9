package correlate

import (
	"math"
	"sort"

	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/boroughs"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/normalize"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/stats"
)

// EventImpacts measures, for every event, the day-before vs day-of change
// in 311, transit, and taxi activity for the event's borough. A change is
// only computed when the before-value is nonzero, and only retained when
// its magnitude exceeds impactThresholdPct. Each dataset is judged
// independently, so one event can carry up to three change values. Results
// are sorted by the
// maximum absolute change across available metrics, descending.
func EventImpacts(events []models.RawEventRow, bundles map[models.Dataset]*models.AggregateBundle) []models.EventImpact {
	impacts := make([]models.EventImpact, 0)

	for _, ev := range events {
		start, ok := normalize.ParseTimestamp(ev.StartDatetime)
		if !ok {
			continue
		}
		borough, ok := boroughs.Resolve(ev.EventBorough)
		if !ok {
			continue
		}

		dayOf := start.Format("2006-01-02")
		dayBefore := start.AddDate(0, 0, -1).Format("2006-01-02")

		impact := models.EventImpact{
			EventID:   ev.EventID,
			EventName: ev.EventName,
			Borough:   borough,
			Date:      dayOf,
		}

		impact.CallsChange = boroughDayChange(bundles[models.DatasetCalls311], borough, dayBefore, dayOf)
		impact.TransitChange = boroughDayChange(bundles[models.DatasetTransit], borough, dayBefore, dayOf)
		impact.TaxiChange = boroughDayChange(bundles[models.DatasetTaxi], borough, dayBefore, dayOf)

		maxAbs := 0.0
		for _, change := range []*float64{impact.CallsChange, impact.TransitChange, impact.TaxiChange} {
			if change != nil && math.Abs(*change) > maxAbs {
				maxAbs = math.Abs(*change)
			}
		}
		if maxAbs == 0 {
			continue
		}
		impact.MaxAbsChange = maxAbs
		impacts = append(impacts, impact)
	}

	sort.SliceStable(impacts, func(i, j int) bool {
		return impacts[i].MaxAbsChange > impacts[j].MaxAbsChange
	})
	return impacts
}

// boroughDayChange returns the retained percent change for one borough and
// dataset between two dates, or nil when the before-value is zero or the
// change is below the significance threshold.
func boroughDayChange(bundle *models.AggregateBundle, borough, dayBefore, dayOf string) *float64 {
	if bundle == nil {
		return nil
	}
	before := dailyBoroughValue(bundle, dayBefore, borough)
	during := dailyBoroughValue(bundle, dayOf, borough)

	pct, ok := stats.PercentChange(before, during)
	if !ok || math.Abs(pct) <= impactThresholdPct {
		return nil
	}
	return &pct
}

func dailyBoroughValue(bundle *models.AggregateBundle, date, borough string) float64 {
	entry, ok := bundle.DailyData[date]
	if !ok {
		return 0
	}
	return entry.ByBorough[borough]
}
