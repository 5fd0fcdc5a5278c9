package models

// ClusterPoint is one coordinate-bearing record flattened out of any
// dataset for spatial clustering.
type ClusterPoint struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Type string  `json:"type"` // source dataset or category label
}

// Cluster is one grid cell that accumulated enough points to count as a
// multi-source activity hotspot.
type Cluster struct {
	CenterLat    float64        `json:"center_lat"`
	CenterLng    float64        `json:"center_lng"`
	PointCount   int            `json:"point_count"`
	Types        map[string]int `json:"types"`
	DominantType string         `json:"dominant_type"`
	Borough      string         `json:"borough,omitempty"` // nearest borough centroid
}
