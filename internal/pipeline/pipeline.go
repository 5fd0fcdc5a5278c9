package pipeline

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/aggregate"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/cluster"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/correlate"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/normalize"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/observability"
)

// Engine runs the full normalize -> aggregate -> correlate -> cluster
// pipeline. Each Run is a pure computation over its inputs producing a
// fresh versioned snapshot; the engine itself holds no dataset state, so
// concurrent Runs cannot corrupt each other.
type Engine struct {
	normalizer *normalize.Normalizer
	metrics    *observability.Metrics
	version    atomic.Int64
}

// New creates an engine. metrics may be nil.
func New(normalizer *normalize.Normalizer, metrics *observability.Metrics) *Engine {
	return &Engine{normalizer: normalizer, metrics: metrics}
}

// Normalizer exposes the engine's normalizer for transient windowed
// recomputes, which share the same reference tables.
func (e *Engine) Normalizer() *normalize.Normalizer {
	return e.normalizer
}

// Run executes one full recompute. Aggregation completes for every dataset
// before correlation starts, since correlation reads completed daily
// series. Weather observations are optional; nil degrades the weather
// analysis to "insufficient data" without affecting anything else.
func (e *Engine) Run(raw *models.RawDatasets, weather []models.WeatherObservation, startDate, endDate string) *Snapshot {
	started := time.Now()

	records, drops := e.normalizer.All(raw)
	bundles := aggregate.BuildAll(records)

	matrix := correlate.BuildMatrix(bundles)
	impacts := correlate.EventImpacts(raw.Events, bundles)
	weatherAnalysis := correlate.WeatherCorrelations(weather, bundles)
	clusters := cluster.Grid(cluster.FlattenRecords(records))
	insights := correlate.Insights(matrix, impacts, weatherAnalysis)

	snapshot := &Snapshot{
		Version:    e.version.Add(1),
		StartDate:  startDate,
		EndDate:    endDate,
		ComputedAt: time.Now(),
		Records:    records,
		Drops:      drops,
		Bundles:    bundles,
		Matrix:     matrix,
		Impacts:    impacts,
		Clusters:   clusters,
		Weather:    weatherAnalysis,
		Insights:   insights,
	}

	normalized, dropped := 0, 0
	for _, d := range models.AllDatasets() {
		normalized += len(records[d])
		dropped += drops[d].Total()
	}
	if e.metrics != nil {
		e.metrics.RecomputeDuration.Observe(time.Since(started).Seconds())
		e.metrics.RowsNormalized.Add(float64(normalized))
		e.metrics.RowsDropped.Add(float64(dropped))
	}
	log.Printf("[Pipeline] Recompute v%d complete: %d records (%d dropped), %d clusters, %d insights in %v",
		snapshot.Version, normalized, dropped, len(clusters), len(insights), time.Since(started))

	return snapshot
}
