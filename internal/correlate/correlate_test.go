package correlate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/aggregate"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
)

// bundleWithDaily builds a bundle whose Manhattan daily series matches the
// given date -> value map.
func bundleWithDaily(t *testing.T, dataset models.Dataset, daily map[string]float64) *models.AggregateBundle {
	t.Helper()

	records := make([]models.NormalizedRecord, 0, len(daily))
	for date, v := range daily {
		records = append(records, models.NormalizedRecord{
			Date: date, Hour: 12, DayOfWeek: 1, Borough: "Manhattan", Magnitude: v,
		})
	}
	return aggregate.Build(dataset, records)
}

func TestSharedDates(t *testing.T) {
	a := bundleWithDaily(t, models.DatasetCalls311, map[string]float64{
		"2024-01-01": 1, "2024-01-02": 1, "2024-01-03": 1,
	})
	b := bundleWithDaily(t, models.DatasetTransit, map[string]float64{
		"2024-01-02": 1, "2024-01-03": 1, "2024-01-04": 1,
	})

	assert.Equal(t, []string{"2024-01-02", "2024-01-03"}, SharedDates(a, b))
}

func TestBoroughCorrelations(t *testing.T) {
	t.Run("fewer than three overlapping dates yields empty", func(t *testing.T) {
		a := bundleWithDaily(t, models.DatasetCalls311, map[string]float64{"2024-01-01": 1, "2024-01-02": 2})
		b := bundleWithDaily(t, models.DatasetTransit, map[string]float64{"2024-01-01": 3, "2024-01-02": 4})

		assert.Empty(t, BoroughCorrelations(a, b))
	})

	t.Run("perfectly aligned series", func(t *testing.T) {
		a := bundleWithDaily(t, models.DatasetCalls311, map[string]float64{
			"2024-01-01": 1, "2024-01-02": 2, "2024-01-03": 3,
		})
		b := bundleWithDaily(t, models.DatasetTransit, map[string]float64{
			"2024-01-01": 10, "2024-01-02": 20, "2024-01-03": 30,
		})

		perBorough := BoroughCorrelations(a, b)
		require.Contains(t, perBorough, "Manhattan")
		assert.InDelta(t, 1.0, perBorough["Manhattan"], 1e-9)
		// Boroughs with flat zero series correlate to 0, not NaN.
		assert.Equal(t, 0.0, perBorough["Queens"])
	})
}

func TestBuildMatrix(t *testing.T) {
	a := bundleWithDaily(t, models.DatasetCalls311, map[string]float64{
		"2024-01-01": 1, "2024-01-02": 2, "2024-01-03": 3,
	})
	b := bundleWithDaily(t, models.DatasetTransit, map[string]float64{
		"2024-01-01": 30, "2024-01-02": 20, "2024-01-03": 10,
	})
	bundles := map[models.Dataset]*models.AggregateBundle{
		models.DatasetCalls311: a,
		models.DatasetTransit:  b,
		models.DatasetTaxi:     aggregate.Build(models.DatasetTaxi, nil),
		models.DatasetEvents:   aggregate.Build(models.DatasetEvents, nil),
	}

	matrix := BuildMatrix(bundles)

	t.Run("diagonal is one", func(t *testing.T) {
		for _, d := range models.AllDatasets() {
			r := matrix.Get(d, d)
			require.NotNil(t, r)
			assert.Equal(t, 1.0, *r)
		}
	})

	t.Run("cells are symmetric", func(t *testing.T) {
		ab := matrix.Get(models.DatasetCalls311, models.DatasetTransit)
		ba := matrix.Get(models.DatasetTransit, models.DatasetCalls311)
		require.NotNil(t, ab)
		require.NotNil(t, ba)
		assert.Equal(t, *ab, *ba)
		assert.Negative(t, *ab)
	})

	t.Run("pair without overlap stays nil", func(t *testing.T) {
		assert.Nil(t, matrix.Get(models.DatasetCalls311, models.DatasetTaxi))
		assert.Nil(t, matrix.Get(models.DatasetTaxi, models.DatasetEvents))
	})
}

func TestEventImpacts(t *testing.T) {
	bundles := map[models.Dataset]*models.AggregateBundle{
		models.DatasetCalls311: bundleWithDaily(t, models.DatasetCalls311, map[string]float64{
			"2024-06-14": 10, "2024-06-15": 15,
		}),
		models.DatasetTransit: bundleWithDaily(t, models.DatasetTransit, map[string]float64{
			"2024-06-14": 100, "2024-06-15": 105, // +5%, below threshold
		}),
		models.DatasetTaxi: bundleWithDaily(t, models.DatasetTaxi, map[string]float64{
			"2024-06-15": 40, // no day-before value
		}),
	}

	event := models.RawEventRow{
		EventID:       "E-1",
		EventName:     "Street Fair",
		StartDatetime: "2024-06-15T12:00:00",
		EventBorough:  "Manhattan",
	}

	t.Run("thresholds applied per dataset", func(t *testing.T) {
		impacts := EventImpacts([]models.RawEventRow{event}, bundles)
		require.Len(t, impacts, 1)

		imp := impacts[0]
		require.NotNil(t, imp.CallsChange)
		assert.InDelta(t, 50.0, *imp.CallsChange, 1e-9)
		assert.Nil(t, imp.TransitChange) // below 10%
		assert.Nil(t, imp.TaxiChange)    // zero baseline
		assert.InDelta(t, 50.0, imp.MaxAbsChange, 1e-9)
		assert.Equal(t, "2024-06-15", imp.Date)
	})

	t.Run("event with no retained change is omitted", func(t *testing.T) {
		quiet := event
		quiet.EventID = "E-2"
		quiet.StartDatetime = "2024-03-01T12:00:00"

		impacts := EventImpacts([]models.RawEventRow{quiet}, bundles)
		assert.Empty(t, impacts)
	})

	t.Run("sorted by max absolute change descending", func(t *testing.T) {
		drop := models.RawEventRow{
			EventID:       "E-3",
			StartDatetime: "2024-06-15T12:00:00",
			EventBorough:  "Manhattan",
		}
		bigger := map[models.Dataset]*models.AggregateBundle{
			models.DatasetCalls311: bundleWithDaily(t, models.DatasetCalls311, map[string]float64{
				"2024-06-14": 10, "2024-06-15": 15,
			}),
			models.DatasetTransit: bundleWithDaily(t, models.DatasetTransit, map[string]float64{
				"2024-06-14": 100, "2024-06-15": 20, // -80%
			}),
		}

		impacts := EventImpacts([]models.RawEventRow{event, drop}, bigger)
		require.Len(t, impacts, 2)
		assert.GreaterOrEqual(t, impacts[0].MaxAbsChange, impacts[1].MaxAbsChange)
		assert.InDelta(t, 80.0, impacts[0].MaxAbsChange, 1e-9)
	})

	t.Run("unparsable start or borough skipped", func(t *testing.T) {
		bad := []models.RawEventRow{
			{EventID: "E-4", StartDatetime: "garbage", EventBorough: "Manhattan"},
			{EventID: "E-5", StartDatetime: "2024-06-15T12:00:00", EventBorough: "Atlantis"},
		}
		assert.Empty(t, EventImpacts(bad, bundles))
	})
}

func TestInsights(t *testing.T) {
	matrix := models.NewCorrelationMatrix(models.AllDatasets())
	matrix.Set(models.DatasetCalls311, models.DatasetTransit, 0.85)
	matrix.Set(models.DatasetCalls311, models.DatasetTaxi, 0.3) // below threshold

	change := 35.0
	impacts := []models.EventImpact{
		{EventID: "E-1", EventName: "Parade", Borough: "Manhattan", Date: "2024-06-15",
			CallsChange: &change, MaxAbsChange: 35},
		{EventID: "E-2", Borough: "Queens", Date: "2024-06-16", MaxAbsChange: 12}, // below 20%
	}

	insights := Insights(matrix, impacts, nil)
	require.Len(t, insights, 2)

	// Strongest first: |r|=0.85 beats 35%/100.
	assert.Equal(t, "correlation", insights[0].Kind)
	assert.Contains(t, insights[0].Text, "strong positive")
	assert.Equal(t, "event_impact", insights[1].Kind)
	assert.Contains(t, insights[1].Text, "Parade")
}

func TestWeatherCorrelations(t *testing.T) {
	bundles := map[models.Dataset]*models.AggregateBundle{
		models.DatasetCalls311: bundleWithDaily(t, models.DatasetCalls311, map[string]float64{
			"2024-01-01": 10, "2024-01-02": 20, "2024-01-03": 30,
		}),
	}

	t.Run("no observations leaves analysis unavailable", func(t *testing.T) {
		analysis := WeatherCorrelations(nil, bundles)
		assert.False(t, analysis.Available)
		assert.Nil(t, analysis.TempCorrelation[models.DatasetCalls311])
	})

	t.Run("too little overlap leaves dataset nil", func(t *testing.T) {
		obs := []models.WeatherObservation{
			{Station: "KNYC", Date: "2024-01-01", TMax: 10, TMin: 0, Prcp: 0},
			{Station: "KNYC", Date: "2024-01-02", TMax: 12, TMin: 2, Prcp: 0},
		}
		analysis := WeatherCorrelations(obs, bundles)
		assert.False(t, analysis.Available)
	})

	t.Run("stations averaged into one city series", func(t *testing.T) {
		obs := []models.WeatherObservation{
			{Station: "KNYC", Date: "2024-01-01", TMax: 10, TMin: 0, Prcp: 1},
			{Station: "KLGA", Date: "2024-01-01", TMax: 14, TMin: 4, Prcp: 3},
			{Station: "KNYC", Date: "2024-01-02", TMax: 20, TMin: 10, Prcp: 0},
			{Station: "KNYC", Date: "2024-01-03", TMax: 30, TMin: 20, Prcp: 0},
		}
		analysis := WeatherCorrelations(obs, bundles)
		require.True(t, analysis.Available)

		r := analysis.TempCorrelation[models.DatasetCalls311]
		require.NotNil(t, r)
		// Mean temps 7, 15, 25 rise with activity 10, 20, 30.
		assert.Positive(t, *r)
	})
}
