package boroughs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	cases := map[string]string{
		"MANHATTAN":      Manhattan,
		"Manhattan":      Manhattan,
		"  manhattan  ":  Manhattan,
		"NEW YORK":       Manhattan,
		"BROOKLYN":       Brooklyn,
		"Kings":          Brooklyn,
		"BK":             Brooklyn,
		"The Bronx":      Bronx,
		"BX":             Bronx,
		"qns":            Queens,
		"STATEN ISLAND":  StatenIsland,
		"Richmond":       StatenIsland,
	}
	for raw, want := range cases {
		got, ok := Resolve(raw)
		assert.True(t, ok, "expected %q to resolve", raw)
		assert.Equal(t, want, got)
	}

	for _, raw := range []string{"", "Unspecified", "JERSEY CITY", "N/A"} {
		_, ok := Resolve(raw)
		assert.False(t, ok, "expected %q to fail", raw)
	}
}

func TestAll(t *testing.T) {
	names := All()
	require.Len(t, names, 5)
	assert.Equal(t, Manhattan, names[0])

	for _, name := range names {
		info, ok := Centroid(name)
		require.True(t, ok)
		assert.Equal(t, name, info.Name)
		assert.NotZero(t, info.Lat)
		assert.NotZero(t, info.Lng)
		assert.NotEmpty(t, info.Color)
	}
}

func TestNearest(t *testing.T) {
	assert.Equal(t, Manhattan, Nearest(40.7580, -73.9855))    // Times Square
	assert.Equal(t, Brooklyn, Nearest(40.6782, -73.9442))     // Brooklyn centroid
	assert.Equal(t, StatenIsland, Nearest(40.5795, -74.1502)) // Staten Island centroid
	assert.Equal(t, Queens, Nearest(40.7769, -73.8740))       // LaGuardia
}
