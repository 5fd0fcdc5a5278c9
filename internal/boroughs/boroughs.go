package boroughs

import (
	"strings"

	"github.com/golang/geo/s2"
)

// The five boroughs form a closed set: aggregation keys are always drawn
// from it, and rows naming anything else are dropped rather than coerced.
const (
	Manhattan    = "Manhattan"
	Brooklyn     = "Brooklyn"
	Bronx        = "Bronx"
	Queens       = "Queens"
	StatenIsland = "Staten Island"
)

// Info holds the static centroid and display color for one borough. Both
// are externally supplied reference data consumed read-only.
type Info struct {
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Color string  `json:"color"`
}

var ordered = []Info{
	{Name: Manhattan, Lat: 40.7831, Lng: -73.9712, Color: "#e41a1c"},
	{Name: Brooklyn, Lat: 40.6782, Lng: -73.9442, Color: "#377eb8"},
	{Name: Bronx, Lat: 40.8448, Lng: -73.8648, Color: "#4daf4a"},
	{Name: Queens, Lat: 40.7282, Lng: -73.7949, Color: "#984ea3"},
	{Name: StatenIsland, Lat: 40.5795, Lng: -74.1502, Color: "#ff7f00"},
}

var byName = func() map[string]Info {
	m := make(map[string]Info, len(ordered))
	for _, b := range ordered {
		m[b.Name] = b
	}
	return m
}()

// All returns the five borough names in canonical order.
func All() []string {
	names := make([]string, len(ordered))
	for i, b := range ordered {
		names[i] = b.Name
	}
	return names
}

// Infos returns the full reference table in canonical order.
func Infos() []Info {
	out := make([]Info, len(ordered))
	copy(out, ordered)
	return out
}

// Centroid returns the static centroid info for a canonical borough name.
func Centroid(name string) (Info, bool) {
	b, ok := byName[name]
	return b, ok
}

// Resolve maps a raw borough string from an upstream feed to a canonical
// name. Feeds disagree on casing ("BROOKLYN", "Brooklyn") and the Bronx
// article ("The Bronx", "BX"). Unknown strings resolve to nothing.
func Resolve(raw string) (string, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	switch s {
	case "MANHATTAN", "NEW YORK", "MN":
		return Manhattan, true
	case "BROOKLYN", "KINGS", "BK":
		return Brooklyn, true
	case "BRONX", "THE BRONX", "BX":
		return Bronx, true
	case "QUEENS", "QN", "QNS":
		return Queens, true
	case "STATEN ISLAND", "RICHMOND", "SI":
		return StatenIsland, true
	}
	return "", false
}

// Nearest returns the borough whose centroid is closest to the given
// coordinate by great-circle distance.
func Nearest(lat, lng float64) string {
	p := s2.LatLngFromDegrees(lat, lng)
	best := ordered[0].Name
	bestDist := p.Distance(s2.LatLngFromDegrees(ordered[0].Lat, ordered[0].Lng))
	for _, b := range ordered[1:] {
		d := p.Distance(s2.LatLngFromDegrees(b.Lat, b.Lng))
		if d < bestDist {
			bestDist = d
			best = b.Name
		}
	}
	return best
}
