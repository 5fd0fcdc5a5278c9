package database

import (
	"database/sql"
	"fmt"
)

// Raw feed tables mirror the upstream Socrata field names; values stay TEXT
// because Socrata serializes everything as strings and normalization owns
// the parsing. Indexes cover the date-range queries the dashboard issues.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS nyc_311_calls (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_date TEXT NOT NULL,
		borough TEXT,
		complaint_type TEXT,
		descriptor TEXT,
		incident_zip TEXT,
		latitude TEXT,
		longitude TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_311_created_date ON nyc_311_calls(created_date)`,

	`CREATE TABLE IF NOT EXISTS mta_ridership (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		transit_timestamp TEXT NOT NULL,
		station_complex TEXT,
		borough TEXT,
		ridership TEXT,
		payment_method TEXT,
		latitude TEXT,
		longitude TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_mta_timestamp ON mta_ridership(transit_timestamp)`,

	`CREATE TABLE IF NOT EXISTS tlc_trips (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		pickup_datetime TEXT NOT NULL,
		dropoff_datetime TEXT,
		pulocationid TEXT,
		dolocationid TEXT,
		trip_distance TEXT,
		fare_amount TEXT,
		tip_amount TEXT,
		payment_type TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tlc_pickup ON tlc_trips(pickup_datetime)`,

	`CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_id TEXT,
		event_name TEXT,
		start_datetime TEXT NOT NULL,
		end_datetime TEXT,
		event_borough TEXT,
		event_type TEXT,
		latitude TEXT,
		longitude TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_events_start ON events(start_datetime)`,

	`CREATE TABLE IF NOT EXISTS ingest_status (
		source TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		error TEXT,
		row_count INTEGER NOT NULL DEFAULT 0,
		updated_at TIMESTAMP NOT NULL
	)`,
}

// ApplySchema creates all tables and indexes if they do not exist.
func ApplySchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
