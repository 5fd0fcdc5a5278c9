package models

import "time"

// Ingest task states.
const (
	IngestStatusRunning   = "running"
	IngestStatusCompleted = "completed"
	IngestStatusFailed    = "failed"
)

// IngestStatus tracks the latest ingest outcome for one source feed.
type IngestStatus struct {
	Source    string    `json:"source" db:"source"`
	Status    string    `json:"status" db:"status"`
	Error     string    `json:"error,omitempty" db:"error"`
	RowCount  int       `json:"row_count" db:"row_count"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
