package normalize

import (
	"strconv"
	"time"

	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/boroughs"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
)

// Normalizer converts raw heterogeneous rows into the canonical normalized
// shape. It is a pure function of its input plus the static borough and
// zone reference tables; rows with an unparsable timestamp or no resolvable
// borough are counted and dropped, never defaulted.
type Normalizer struct {
	zones *boroughs.ZoneTable
}

// New creates a normalizer backed by the given taxi zone table.
func New(zones *boroughs.ZoneTable) *Normalizer {
	return &Normalizer{zones: zones}
}

// Calls311 normalizes 311 service requests. Magnitude is 1 per row and the
// complaint type becomes the category.
func (n *Normalizer) Calls311(rows []models.Raw311Row) ([]models.NormalizedRecord, models.DropCounts) {
	records := make([]models.NormalizedRecord, 0, len(rows))
	var drops models.DropCounts

	for _, row := range rows {
		ts, ok := ParseTimestamp(row.CreatedDate)
		if !ok {
			drops.BadTimestamp++
			continue
		}
		borough, ok := boroughs.Resolve(row.Borough)
		if !ok {
			drops.NoBorough++
			continue
		}

		rec := newRecord(ts, borough)
		rec.Category = row.ComplaintType
		rec.Magnitude = 1
		rec.Lat, rec.Lng, rec.HasCoord = parseCoord(row.Latitude, row.Longitude)
		records = append(records, rec)
	}
	return records, drops
}

// Transit normalizes subway ridership readings. Ridership is a weighted
// magnitude; malformed or missing values contribute 0, never NaN.
func (n *Normalizer) Transit(rows []models.RawTransitRow) ([]models.NormalizedRecord, models.DropCounts) {
	records := make([]models.NormalizedRecord, 0, len(rows))
	var drops models.DropCounts

	for _, row := range rows {
		ts, ok := ParseTimestamp(row.TransitTimestamp)
		if !ok {
			drops.BadTimestamp++
			continue
		}
		borough, ok := boroughs.Resolve(row.Borough)
		if !ok {
			drops.NoBorough++
			continue
		}

		rec := newRecord(ts, borough)
		rec.Category = row.PaymentMethod
		rec.Magnitude = parseFloat(row.Ridership)
		rec.Lat, rec.Lng, rec.HasCoord = parseCoord(row.Latitude, row.Longitude)
		records = append(records, rec)
	}
	return records, drops
}

// Taxi normalizes TLC trips. Each trip contributes one record per endpoint
// whose zone resolves to a borough; a trip with neither endpoint resolvable
// is dropped. No coordinate is synthesized for taxi records: zone IDs are
// areas, not points, and spatial placement is deferred to the visual layer.
// Trip metrics ride on the first kept endpoint so averages sample each trip
// once.
func (n *Normalizer) Taxi(rows []models.RawTaxiRow) ([]models.NormalizedRecord, models.DropCounts) {
	records := make([]models.NormalizedRecord, 0, len(rows))
	var drops models.DropCounts

	for _, row := range rows {
		pickupTS, pickupOK := ParseTimestamp(row.PickupDatetime)
		dropoffTS, dropoffOK := ParseTimestamp(row.DropoffDatetime)
		if !pickupOK && !dropoffOK {
			drops.BadTimestamp++
			continue
		}

		pickupBorough, puOK := n.zoneBorough(row.PULocationID)
		dropoffBorough, doOK := n.zoneBorough(row.DOLocationID)

		metrics := &models.TripMetrics{
			Distance: parseFloat(row.TripDistance),
			Fare:     parseFloat(row.FareAmount),
			Tip:      parseFloat(row.TipAmount),
		}

		kept := false
		if pickupOK && puOK {
			rec := newRecord(pickupTS, pickupBorough)
			rec.Category = row.PaymentType
			rec.Magnitude = 1
			rec.Trip = metrics
			records = append(records, rec)
			kept = true
		}
		if dropoffOK && doOK {
			rec := newRecord(dropoffTS, dropoffBorough)
			rec.Category = row.PaymentType
			rec.Magnitude = 1
			if !kept {
				rec.Trip = metrics
			}
			records = append(records, rec)
			kept = true
		}
		if !kept {
			drops.NoBorough++
		}
	}
	return records, drops
}

// Events normalizes permitted public events, keyed by their start time.
// The raw end time still matters for timeline overlap filtering, which
// operates on raw rows.
func (n *Normalizer) Events(rows []models.RawEventRow) ([]models.NormalizedRecord, models.DropCounts) {
	records := make([]models.NormalizedRecord, 0, len(rows))
	var drops models.DropCounts

	for _, row := range rows {
		ts, ok := ParseTimestamp(row.StartDatetime)
		if !ok {
			drops.BadTimestamp++
			continue
		}
		borough, ok := boroughs.Resolve(row.EventBorough)
		if !ok {
			drops.NoBorough++
			continue
		}

		rec := newRecord(ts, borough)
		rec.Category = row.EventType
		rec.Magnitude = 1
		rec.Lat, rec.Lng, rec.HasCoord = parseCoord(row.Latitude, row.Longitude)
		records = append(records, rec)
	}
	return records, drops
}

// All normalizes every feed in the raw bundle.
func (n *Normalizer) All(raw *models.RawDatasets) (map[models.Dataset][]models.NormalizedRecord, map[models.Dataset]models.DropCounts) {
	records := make(map[models.Dataset][]models.NormalizedRecord, 4)
	drops := make(map[models.Dataset]models.DropCounts, 4)

	records[models.DatasetCalls311], drops[models.DatasetCalls311] = n.Calls311(raw.Calls311)
	records[models.DatasetTransit], drops[models.DatasetTransit] = n.Transit(raw.Transit)
	records[models.DatasetTaxi], drops[models.DatasetTaxi] = n.Taxi(raw.Taxi)
	records[models.DatasetEvents], drops[models.DatasetEvents] = n.Events(raw.Events)
	return records, drops
}

func (n *Normalizer) zoneBorough(zoneID string) (string, bool) {
	id, err := strconv.Atoi(zoneID)
	if err != nil {
		return "", false
	}
	return n.zones.Borough(id)
}

func newRecord(ts time.Time, borough string) models.NormalizedRecord {
	return models.NormalizedRecord{
		Date:      dateKey(ts),
		Hour:      ts.Hour(),
		DayOfWeek: int(ts.Weekday()), // Sunday = 0
		Borough:   borough,
	}
}

// parseFloat parses an upstream numeric string, defaulting malformed or
// missing values to 0.
func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseCoord parses a latitude/longitude pair. A coordinate only counts
// when both halves parse and are non-zero.
func parseCoord(latStr, lngStr string) (float64, float64, bool) {
	if latStr == "" || lngStr == "" {
		return 0, 0, false
	}
	lat, err1 := strconv.ParseFloat(latStr, 64)
	lng, err2 := strconv.ParseFloat(lngStr, 64)
	if err1 != nil || err2 != nil || (lat == 0 && lng == 0) {
		return 0, 0, false
	}
	return lat, lng, true
}
