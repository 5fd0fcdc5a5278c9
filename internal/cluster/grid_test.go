package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
)

// pt puts a point near Times Square, offset within one 0.005-degree cell.
func pt(typ string, dLat, dLng float64) models.ClusterPoint {
	return models.ClusterPoint{Lat: 40.7580 + dLat, Lng: -73.9855 + dLng, Type: typ}
}

func TestGrid(t *testing.T) {
	t.Run("fewer than ten points total yields empty", func(t *testing.T) {
		points := make([]models.ClusterPoint, 9)
		for i := range points {
			points[i] = pt("311", 0, 0)
		}
		clusters := Grid(points)
		assert.NotNil(t, clusters)
		assert.Empty(t, clusters)
	})

	t.Run("dense cell clusters, stragglers do not", func(t *testing.T) {
		points := []models.ClusterPoint{
			pt("311", 0.0000, 0.0000),
			pt("311", 0.0004, 0.0004),
			pt("311", 0.0008, 0.0008),
			pt("transit", 0.0002, 0.0006),
			pt("transit", 0.0006, 0.0002),
			// Far-away singles in their own cells.
			pt("311", 0.1, 0.1),
			pt("311", 0.2, 0.2),
			pt("311", 0.3, 0.3),
			pt("311", 0.4, 0.4),
			pt("311", 0.5, 0.5),
		}

		clusters := Grid(points)
		require.Len(t, clusters, 1)

		c := clusters[0]
		assert.Equal(t, 5, c.PointCount)
		assert.Equal(t, 3, c.Types["311"])
		assert.Equal(t, 2, c.Types["transit"])
		assert.Equal(t, "311", c.DominantType)
		assert.Equal(t, "Manhattan", c.Borough)
		assert.InDelta(t, 40.7580, c.CenterLat, 0.005)
		assert.InDelta(t, -73.9855, c.CenterLng, 0.005)
	})

	t.Run("dominant type tie resolves to first seen", func(t *testing.T) {
		points := []models.ClusterPoint{
			pt("transit", 0.0000, 0.0000),
			pt("311", 0.0001, 0.0001),
			pt("transit", 0.0002, 0.0002),
			pt("311", 0.0003, 0.0003),
		}
		// Pad to pass the sparse-data guard.
		for i := 0; i < 6; i++ {
			points = append(points, pt("311", 0.1+float64(i)*0.1, 0.1))
		}

		clusters := Grid(points)
		require.NotEmpty(t, clusters)
		assert.Equal(t, "transit", clusters[0].DominantType)
	})

	t.Run("sorted by point count descending", func(t *testing.T) {
		points := make([]models.ClusterPoint, 0)
		for i := 0; i < 3; i++ {
			points = append(points, pt("311", 0, 0))
		}
		for i := 0; i < 5; i++ {
			points = append(points, pt("events", 0.1, 0.1))
		}
		for i := 0; i < 4; i++ {
			points = append(points, pt("taxi", 0.2, 0.2))
		}

		clusters := Grid(points)
		require.Len(t, clusters, 3)
		assert.Equal(t, 5, clusters[0].PointCount)
		assert.Equal(t, 4, clusters[1].PointCount)
		assert.Equal(t, 3, clusters[2].PointCount)
	})
}

func TestFlattenRecords(t *testing.T) {
	records := map[models.Dataset][]models.NormalizedRecord{
		models.DatasetCalls311: {
			{Lat: 40.75, Lng: -73.98, HasCoord: true},
			{HasCoord: false}, // no coordinate, skipped
		},
		models.DatasetTransit: {
			{Lat: 40.70, Lng: -73.95, HasCoord: true},
		},
	}

	points := FlattenRecords(records)
	require.Len(t, points, 2)
	assert.Equal(t, string(models.DatasetCalls311), points[0].Type)
	assert.Equal(t, string(models.DatasetTransit), points[1].Type)
}
