package models

// CorrelationMatrix holds pairwise Pearson coefficients between datasets.
// A nil cell means the pair had insufficient overlapping data; the diagonal
// is always 1. Symmetry is structural: the same value is written to both
// [a][b] and [b][a].
type CorrelationMatrix struct {
	Datasets []Dataset                        `json:"datasets"`
	Cells    map[Dataset]map[Dataset]*float64 `json:"cells"`
}

// NewCorrelationMatrix returns a matrix with every cell nil except the
// diagonal.
func NewCorrelationMatrix(datasets []Dataset) *CorrelationMatrix {
	m := &CorrelationMatrix{
		Datasets: datasets,
		Cells:    make(map[Dataset]map[Dataset]*float64, len(datasets)),
	}
	for _, d := range datasets {
		m.Cells[d] = make(map[Dataset]*float64, len(datasets))
		one := 1.0
		m.Cells[d][d] = &one
	}
	return m
}

// Set writes r to both [a][b] and [b][a].
func (m *CorrelationMatrix) Set(a, b Dataset, r float64) {
	v := r
	m.Cells[a][b] = &v
	m.Cells[b][a] = &v
}

// Get returns the coefficient for a pair, or nil when unknown.
func (m *CorrelationMatrix) Get(a, b Dataset) *float64 {
	row, ok := m.Cells[a]
	if !ok {
		return nil
	}
	return row[b]
}

// EventImpact is the measured change in another dataset's activity around a
// public event: day-before vs day-of for the event's borough. A nil change
// means that dataset had no significant (or computable) delta.
type EventImpact struct {
	EventID       string   `json:"event_id"`
	EventName     string   `json:"event_name,omitempty"`
	Borough       string   `json:"borough"`
	Date          string   `json:"date"`
	CallsChange   *float64 `json:"percent_change_calls,omitempty"`
	TransitChange *float64 `json:"percent_change_transit,omitempty"`
	TaxiChange    *float64 `json:"percent_change_taxi,omitempty"`
	MaxAbsChange  float64  `json:"max_abs_change"`
}

// Insight is a human-readable finding surfaced from the correlation and
// event-impact analyses.
type Insight struct {
	Kind     string  `json:"kind"` // "correlation", "event_impact", "weather"
	Text     string  `json:"text"`
	Strength float64 `json:"strength"`
}
