package cluster

import (
	"math"
	"sort"

	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/boroughs"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
)

const (
	// CellSizeDegrees is the fixed grid pitch, roughly 500m at NYC latitude.
	CellSizeDegrees = 0.005

	// minClusterPoints is the smallest cell population that counts as a
	// cluster.
	minClusterPoints = 3

	// minTotalPoints guards against clustering sparse data: below this the
	// result is an empty list, not a handful of noise cells.
	minTotalPoints = 10
)

type cell struct {
	sumLat, sumLng float64
	count          int
	typeCounts     map[string]int
	typeOrder      []string // insertion order, for the deterministic tie-break
}

// Grid buckets coordinate-bearing points from all sources into fixed
// 0.005-degree cells and returns the cells holding at least three points,
// sorted by point count descending. The dominant type of a cell is the type
// with the highest count; on a tie the type first encountered in iteration
// order wins, which keeps the output reproducible for a given input order.
func Grid(points []models.ClusterPoint) []models.Cluster {
	if len(points) < minTotalPoints {
		return []models.Cluster{}
	}

	type key struct{ x, y int }
	cells := make(map[key]*cell)
	order := make([]key, 0)

	for _, p := range points {
		k := key{
			x: int(math.Floor(p.Lng / CellSizeDegrees)),
			y: int(math.Floor(p.Lat / CellSizeDegrees)),
		}
		c, ok := cells[k]
		if !ok {
			c = &cell{typeCounts: make(map[string]int)}
			cells[k] = c
			order = append(order, k)
		}
		c.sumLat += p.Lat
		c.sumLng += p.Lng
		c.count++
		if _, seen := c.typeCounts[p.Type]; !seen {
			c.typeOrder = append(c.typeOrder, p.Type)
		}
		c.typeCounts[p.Type]++
	}

	clusters := make([]models.Cluster, 0)
	for _, k := range order {
		c := cells[k]
		if c.count < minClusterPoints {
			continue
		}
		centerLat := c.sumLat / float64(c.count)
		centerLng := c.sumLng / float64(c.count)
		clusters = append(clusters, models.Cluster{
			CenterLat:    centerLat,
			CenterLng:    centerLng,
			PointCount:   c.count,
			Types:        c.typeCounts,
			DominantType: dominantType(c),
			Borough:      boroughs.Nearest(centerLat, centerLng),
		})
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].PointCount > clusters[j].PointCount
	})
	return clusters
}

// FlattenRecords converts the coordinate-bearing normalized records of all
// datasets into cluster points, typed by source dataset.
func FlattenRecords(records map[models.Dataset][]models.NormalizedRecord) []models.ClusterPoint {
	points := make([]models.ClusterPoint, 0)
	for _, d := range models.AllDatasets() {
		for i := range records[d] {
			rec := &records[d][i]
			if !rec.HasCoord {
				continue
			}
			points = append(points, models.ClusterPoint{
				Lat:  rec.Lat,
				Lng:  rec.Lng,
				Type: string(d),
			})
		}
	}
	return points
}

func dominantType(c *cell) string {
	best := ""
	bestCount := -1
	// Walk the explicit insertion-order list so ties resolve to the first
	// inserted type instead of whatever map iteration produces.
	for _, t := range c.typeOrder {
		if c.typeCounts[t] > bestCount {
			best = t
			bestCount = c.typeCounts[t]
		}
	}
	return best
}
