package repository

import (
	"database/sql"
	"fmt"

	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
)

// StatusRepository tracks the latest ingest outcome per source feed.
type StatusRepository struct {
	db *sql.DB
}

// NewStatusRepository creates a new ingest status repository
func NewStatusRepository(db *sql.DB) *StatusRepository {
	return &StatusRepository{db: db}
}

// Upsert records the latest status for a source, replacing any prior row.
func (r *StatusRepository) Upsert(status models.IngestStatus) error {
	_, err := r.db.Exec(
		`INSERT INTO ingest_status (source, status, error, row_count, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(source) DO UPDATE SET
			status = excluded.status,
			error = excluded.error,
			row_count = excluded.row_count,
			updated_at = excluded.updated_at`,
		status.Source, status.Status, status.Error, status.RowCount, status.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert ingest status: %w", err)
	}
	return nil
}

// Get returns the latest status for one source.
func (r *StatusRepository) Get(source string) (*models.IngestStatus, error) {
	var s models.IngestStatus
	err := r.db.QueryRow(
		`SELECT source, status, error, row_count, updated_at FROM ingest_status WHERE source = ?`,
		source).Scan(&s.Source, &s.Status, &s.Error, &s.RowCount, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ingest status: %w", err)
	}
	return &s, nil
}

// List returns the latest status for every source.
func (r *StatusRepository) List() ([]models.IngestStatus, error) {
	rows, err := r.db.Query(
		`SELECT source, status, error, row_count, updated_at FROM ingest_status ORDER BY source`)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingest statuses: %w", err)
	}
	defer rows.Close()

	var statuses []models.IngestStatus
	for rows.Next() {
		var s models.IngestStatus
		if err := rows.Scan(&s.Source, &s.Status, &s.Error, &s.RowCount, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan ingest status: %w", err)
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}
