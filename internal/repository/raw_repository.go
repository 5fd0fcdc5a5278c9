package repository

import (
	"database/sql"
	"fmt"

	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
)

// RawRepository handles database operations for the raw feed tables. Rows
// are stored exactly as ingested; all parsing and validation happens in the
// normalizer.
type RawRepository struct {
	db *sql.DB
}

// NewRawRepository creates a new raw-row repository
func NewRawRepository(db *sql.DB) *RawRepository {
	return &RawRepository{db: db}
}

// Insert311 bulk-inserts 311 rows inside one transaction.
func (r *RawRepository) Insert311(rows []models.Raw311Row) error {
	return r.bulkInsert(len(rows),
		`INSERT INTO nyc_311_calls (created_date, borough, complaint_type, descriptor, incident_zip, latitude, longitude)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		func(stmt *sql.Stmt, i int) error {
			row := rows[i]
			_, err := stmt.Exec(row.CreatedDate, row.Borough, row.ComplaintType, row.Descriptor, row.IncidentZip, row.Latitude, row.Longitude)
			return err
		})
}

// InsertTransit bulk-inserts subway ridership rows.
func (r *RawRepository) InsertTransit(rows []models.RawTransitRow) error {
	return r.bulkInsert(len(rows),
		`INSERT INTO mta_ridership (transit_timestamp, station_complex, borough, ridership, payment_method, latitude, longitude)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		func(stmt *sql.Stmt, i int) error {
			row := rows[i]
			_, err := stmt.Exec(row.TransitTimestamp, row.StationComplex, row.Borough, row.Ridership, row.PaymentMethod, row.Latitude, row.Longitude)
			return err
		})
}

// InsertTaxi bulk-inserts taxi trip rows.
func (r *RawRepository) InsertTaxi(rows []models.RawTaxiRow) error {
	return r.bulkInsert(len(rows),
		`INSERT INTO tlc_trips (pickup_datetime, dropoff_datetime, pulocationid, dolocationid, trip_distance, fare_amount, tip_amount, payment_type)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		func(stmt *sql.Stmt, i int) error {
			row := rows[i]
			_, err := stmt.Exec(row.PickupDatetime, row.DropoffDatetime, row.PULocationID, row.DOLocationID, row.TripDistance, row.FareAmount, row.TipAmount, row.PaymentType)
			return err
		})
}

// InsertEvents bulk-inserts event rows.
func (r *RawRepository) InsertEvents(rows []models.RawEventRow) error {
	return r.bulkInsert(len(rows),
		`INSERT INTO events (event_id, event_name, start_datetime, end_datetime, event_borough, event_type, latitude, longitude)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		func(stmt *sql.Stmt, i int) error {
			row := rows[i]
			_, err := stmt.Exec(row.EventID, row.EventName, row.StartDatetime, row.EndDatetime, row.EventBorough, row.EventType, row.Latitude, row.Longitude)
			return err
		})
}

func (r *RawRepository) bulkInsert(n int, query string, bind func(*sql.Stmt, int) error) error {
	if n == 0 {
		return nil
	}
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if err := bind(stmt, i); err != nil {
			return fmt.Errorf("failed to insert row %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit insert: %w", err)
	}
	return nil
}

// GetRange loads every feed's raw rows whose timestamps fall in
// [startDate, endDate] (YYYY-MM-DD, inclusive). Events are matched on
// interval overlap with the range so multi-day events at the boundary are
// not lost. ISO date prefixes compare lexicographically, which keeps these
// range scans on the plain TEXT indexes.
func (r *RawRepository) GetRange(startDate, endDate string) (*models.RawDatasets, error) {
	raw := &models.RawDatasets{}

	rows, err := r.db.Query(
		`SELECT created_date, borough, complaint_type, descriptor, incident_zip, latitude, longitude
		 FROM nyc_311_calls
		 WHERE substr(created_date, 1, 10) BETWEEN ? AND ?
		 ORDER BY created_date`, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query 311 calls: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var row models.Raw311Row
		if err := rows.Scan(&row.CreatedDate, &row.Borough, &row.ComplaintType, &row.Descriptor, &row.IncidentZip, &row.Latitude, &row.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan 311 row: %w", err)
		}
		raw.Calls311 = append(raw.Calls311, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.db.Query(
		`SELECT transit_timestamp, station_complex, borough, ridership, payment_method, latitude, longitude
		 FROM mta_ridership
		 WHERE substr(transit_timestamp, 1, 10) BETWEEN ? AND ?
		 ORDER BY transit_timestamp`, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query transit rows: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var row models.RawTransitRow
		if err := rows.Scan(&row.TransitTimestamp, &row.StationComplex, &row.Borough, &row.Ridership, &row.PaymentMethod, &row.Latitude, &row.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan transit row: %w", err)
		}
		raw.Transit = append(raw.Transit, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.db.Query(
		`SELECT pickup_datetime, dropoff_datetime, pulocationid, dolocationid, trip_distance, fare_amount, tip_amount, payment_type
		 FROM tlc_trips
		 WHERE substr(pickup_datetime, 1, 10) BETWEEN ? AND ?
		 ORDER BY pickup_datetime`, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query taxi trips: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var row models.RawTaxiRow
		if err := rows.Scan(&row.PickupDatetime, &row.DropoffDatetime, &row.PULocationID, &row.DOLocationID, &row.TripDistance, &row.FareAmount, &row.TipAmount, &row.PaymentType); err != nil {
			return nil, fmt.Errorf("failed to scan taxi row: %w", err)
		}
		raw.Taxi = append(raw.Taxi, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.db.Query(
		`SELECT event_id, event_name, start_datetime, end_datetime, event_borough, event_type, latitude, longitude
		 FROM events
		 WHERE substr(start_datetime, 1, 10) <= ?
		   AND substr(COALESCE(NULLIF(end_datetime, ''), start_datetime), 1, 10) >= ?
		 ORDER BY start_datetime`, endDate, startDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var row models.RawEventRow
		if err := rows.Scan(&row.EventID, &row.EventName, &row.StartDatetime, &row.EndDatetime, &row.EventBorough, &row.EventType, &row.Latitude, &row.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		raw.Events = append(raw.Events, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return raw, nil
}

// RowCounts returns the total stored rows per feed table.
func (r *RawRepository) RowCounts() (map[string]int64, error) {
	counts := make(map[string]int64, 4)
	for table, source := range map[string]string{
		"nyc_311_calls": string(models.DatasetCalls311),
		"mta_ridership": string(models.DatasetTransit),
		"tlc_trips":     string(models.DatasetTaxi),
		"events":        string(models.DatasetEvents),
	} {
		var n int64
		if err := r.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		counts[source] = n
	}
	return counts, nil
}
