package models

// Raw rows mirror the field names of the upstream NYC Open Data (Socrata)
// feeds. Socrata serializes every value as a string, so numeric fields stay
// strings here and are parsed during normalization; a malformed value never
// fails a whole payload.

// Raw311Row is one 311 service request.
type Raw311Row struct {
	ID            int64  `json:"id,omitempty" db:"id"`
	CreatedDate   string `json:"created_date" db:"created_date"`
	Borough       string `json:"borough" db:"borough"`
	ComplaintType string `json:"complaint_type" db:"complaint_type"`
	Descriptor    string `json:"descriptor,omitempty" db:"descriptor"`
	IncidentZip   string `json:"incident_zip,omitempty" db:"incident_zip"`
	Latitude      string `json:"latitude,omitempty" db:"latitude"`
	Longitude     string `json:"longitude,omitempty" db:"longitude"`
}

// RawTransitRow is one MTA subway ridership reading.
type RawTransitRow struct {
	ID               int64  `json:"id,omitempty" db:"id"`
	TransitTimestamp string `json:"transit_timestamp" db:"transit_timestamp"`
	StationComplex   string `json:"station_complex" db:"station_complex"`
	Borough          string `json:"borough" db:"borough"`
	Ridership        string `json:"ridership" db:"ridership"`
	PaymentMethod    string `json:"payment_method,omitempty" db:"payment_method"`
	Latitude         string `json:"latitude,omitempty" db:"latitude"`
	Longitude        string `json:"longitude,omitempty" db:"longitude"`
}

// RawTaxiRow is one TLC yellow-cab trip. Trips carry zone IDs rather than
// coordinates; borough resolution goes through the zone reference table.
type RawTaxiRow struct {
	ID              int64  `json:"id,omitempty" db:"id"`
	PickupDatetime  string `json:"pickup_datetime" db:"pickup_datetime"`
	DropoffDatetime string `json:"dropoff_datetime,omitempty" db:"dropoff_datetime"`
	PULocationID    string `json:"pulocationid" db:"pulocationid"`
	DOLocationID    string `json:"dolocationid" db:"dolocationid"`
	TripDistance    string `json:"trip_distance,omitempty" db:"trip_distance"`
	FareAmount      string `json:"fare_amount,omitempty" db:"fare_amount"`
	TipAmount       string `json:"tip_amount,omitempty" db:"tip_amount"`
	PaymentType     string `json:"payment_type,omitempty" db:"payment_type"`
}

// RawEventRow is one permitted public event.
type RawEventRow struct {
	ID            int64  `json:"id,omitempty" db:"id"`
	EventID       string `json:"event_id" db:"event_id"`
	EventName     string `json:"event_name,omitempty" db:"event_name"`
	StartDatetime string `json:"start_datetime" db:"start_datetime"`
	EndDatetime   string `json:"end_datetime,omitempty" db:"end_datetime"`
	EventBorough  string `json:"event_borough" db:"event_borough"`
	EventType     string `json:"event_type,omitempty" db:"event_type"`
	Latitude      string `json:"latitude,omitempty" db:"latitude"`
	Longitude     string `json:"longitude,omitempty" db:"longitude"`
}

// RawDatasets bundles the raw rows for every feed over one date range.
type RawDatasets struct {
	Calls311 []Raw311Row
	Transit  []RawTransitRow
	Taxi     []RawTaxiRow
	Events   []RawEventRow
}

// Counts returns per-feed raw row counts.
func (r *RawDatasets) Counts() map[Dataset]int {
	return map[Dataset]int{
		DatasetCalls311: len(r.Calls311),
		DatasetTransit:  len(r.Transit),
		DatasetTaxi:     len(r.Taxi),
		DatasetEvents:   len(r.Events),
	}
}
