package models

// NormalizedRecord is the common shape every raw row is reduced to before
// aggregation. Created once during normalization and immutable afterwards.
//
// Invariants: Hour in [0,23], DayOfWeek in [0,6] with Sunday=0, Borough a
// member of the fixed five-borough set. Rows that cannot satisfy these are
// dropped by the normalizer, never defaulted.
type NormalizedRecord struct {
	Date      string  `json:"date"` // YYYY-MM-DD
	Hour      int     `json:"hour"`
	DayOfWeek int     `json:"day_of_week"`
	Borough   string  `json:"borough"`
	Lat       float64 `json:"lat,omitempty"`
	Lng       float64 `json:"lng,omitempty"`
	HasCoord  bool    `json:"has_coord"`
	Category  string  `json:"category,omitempty"`
	Magnitude float64 `json:"magnitude"`

	// Trip carries taxi metrics for averaging. Set on at most one record
	// per trip so a trip with both endpoints resolved is not sampled twice.
	Trip *TripMetrics `json:"trip,omitempty"`
}

// TripMetrics are the per-trip values the taxi aggregator averages.
type TripMetrics struct {
	Distance float64 `json:"distance"`
	Fare     float64 `json:"fare"`
	Tip      float64 `json:"tip"`
}

// DropCounts records how many raw rows each normalizer excluded, by reason.
// Excluded rows are counted, never surfaced as errors.
type DropCounts struct {
	BadTimestamp int `json:"bad_timestamp"`
	NoBorough    int `json:"no_borough"`
}

// Total returns the number of dropped rows.
func (d DropCounts) Total() int {
	return d.BadTimestamp + d.NoBorough
}
