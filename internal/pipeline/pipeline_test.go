package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/boroughs"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/normalize"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/observability"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	return New(normalize.New(boroughs.DefaultZoneTable()), observability.NewMetricsForTesting())
}

func sampleRaw() *models.RawDatasets {
	return &models.RawDatasets{
		Calls311: []models.Raw311Row{
			{CreatedDate: "2024-01-01T09:00:00", Borough: "Manhattan", ComplaintType: "Noise"},
			{CreatedDate: "2024-01-02T10:00:00", Borough: "Manhattan", ComplaintType: "Noise"},
			{CreatedDate: "2024-01-03T11:00:00", Borough: "Manhattan", ComplaintType: "Heat"},
			{CreatedDate: "bad timestamp", Borough: "Manhattan"},
		},
		Transit: []models.RawTransitRow{
			{TransitTimestamp: "2024-01-01T09:00:00", Borough: "Manhattan", Ridership: "100"},
			{TransitTimestamp: "2024-01-02T09:00:00", Borough: "Manhattan", Ridership: "200"},
			{TransitTimestamp: "2024-01-03T09:00:00", Borough: "Manhattan", Ridership: "300"},
		},
		Events: []models.RawEventRow{
			{EventID: "E-1", EventName: "Parade", StartDatetime: "2024-01-02T12:00:00", EventBorough: "Manhattan"},
		},
	}
}

func TestEngineRun(t *testing.T) {
	engine := testEngine(t)

	snapshot := engine.Run(sampleRaw(), nil, "2024-01-01", "2024-01-03")
	require.NotNil(t, snapshot)

	t.Run("versions increase monotonically", func(t *testing.T) {
		second := engine.Run(sampleRaw(), nil, "2024-01-01", "2024-01-03")
		assert.Greater(t, second.Version, snapshot.Version)
	})

	t.Run("drops counted per dataset", func(t *testing.T) {
		assert.Equal(t, 1, snapshot.Drops[models.DatasetCalls311].BadTimestamp)
		assert.Equal(t, 0, snapshot.Drops[models.DatasetTransit].Total())
	})

	t.Run("bundles complete for all datasets", func(t *testing.T) {
		for _, d := range models.AllDatasets() {
			require.Contains(t, snapshot.Bundles, d)
		}
		assert.Equal(t, 3, snapshot.Bundles[models.DatasetCalls311].RecordCount)
		assert.Equal(t, 600.0, snapshot.Bundles[models.DatasetTransit].TotalByBorough["Manhattan"])
	})

	t.Run("matrix populated with symmetric cells", func(t *testing.T) {
		r := snapshot.Matrix.Get(models.DatasetCalls311, models.DatasetTransit)
		require.NotNil(t, r)
		mirror := snapshot.Matrix.Get(models.DatasetTransit, models.DatasetCalls311)
		require.NotNil(t, mirror)
		assert.Equal(t, *r, *mirror)
	})

	t.Run("weather analysis present but unavailable without observations", func(t *testing.T) {
		require.NotNil(t, snapshot.Weather)
		assert.False(t, snapshot.Weather.Available)
	})

	t.Run("sparse coordinates produce no clusters", func(t *testing.T) {
		assert.Empty(t, snapshot.Clusters)
	})
}

func TestSnapshotSummaries(t *testing.T) {
	engine := testEngine(t)
	snapshot := engine.Run(sampleRaw(), nil, "2024-01-01", "2024-01-03")

	summaries := snapshot.Summaries()
	require.Len(t, summaries, len(models.AllDatasets()))

	calls := summaries[0]
	assert.Equal(t, models.DatasetCalls311, calls.Dataset)
	assert.Equal(t, 3, calls.RecordCount)
	assert.Equal(t, 3.0, calls.Total)
	assert.InDelta(t, 1.0, calls.DailyMean, 1e-9)
	assert.Equal(t, 1, calls.Dropped)

	// Calls split 2:1 across Noise and Heat, so diversity is below 1 but
	// well above 0.
	assert.Greater(t, calls.CategoryDiversity, 0.5)
	assert.Less(t, calls.CategoryDiversity, 1.0)

	transit := summaries[1]
	assert.Equal(t, 600.0, transit.Total)
	assert.Equal(t, "2024-01-03", transit.PeakDate)
	assert.Equal(t, 300.0, transit.PeakValue)
	assert.InDelta(t, 280.0, transit.DailyP90, 1e-9)
}
