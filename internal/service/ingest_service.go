package service

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/jonboulle/clockwork"

	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/observability"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/repository"
)

// IngestService accepts already-parsed row payloads per source feed and
// persists them. Payload decoding uses sonic: ingest bodies are the largest
// JSON this service touches.
type IngestService struct {
	rawRepo    *repository.RawRepository
	statusRepo *repository.StatusRepository
	clock      clockwork.Clock
	metrics    *observability.Metrics
}

// NewIngestService creates an ingest service. metrics may be nil.
func NewIngestService(rawRepo *repository.RawRepository, statusRepo *repository.StatusRepository, clock clockwork.Clock, metrics *observability.Metrics) *IngestService {
	return &IngestService{
		rawRepo:    rawRepo,
		statusRepo: statusRepo,
		clock:      clock,
		metrics:    metrics,
	}
}

// Ingest decodes and stores one source's payload, recording the outcome in
// the ingest status table either way.
func (s *IngestService) Ingest(source string, payload []byte) (int, error) {
	count, err := s.decodeAndStore(source, payload)

	status := models.IngestStatus{
		Source:    source,
		Status:    models.IngestStatusCompleted,
		RowCount:  count,
		UpdatedAt: s.clock.Now(),
	}
	if err != nil {
		status.Status = models.IngestStatusFailed
		status.Error = err.Error()
		if s.metrics != nil {
			s.metrics.IngestErrors.WithLabelValues(source).Inc()
		}
	} else if s.metrics != nil {
		s.metrics.IngestRows.WithLabelValues(source).Add(float64(count))
	}
	if upsertErr := s.statusRepo.Upsert(status); upsertErr != nil && err == nil {
		err = upsertErr
	}
	return count, err
}

// Statuses returns the latest ingest outcome per source.
func (s *IngestService) Statuses() ([]models.IngestStatus, error) {
	return s.statusRepo.List()
}

// RowCounts returns total stored rows per source.
func (s *IngestService) RowCounts() (map[string]int64, error) {
	return s.rawRepo.RowCounts()
}

func (s *IngestService) decodeAndStore(source string, payload []byte) (int, error) {
	switch models.Dataset(source) {
	case models.DatasetCalls311:
		var rows []models.Raw311Row
		if err := sonic.Unmarshal(payload, &rows); err != nil {
			return 0, fmt.Errorf("decode 311 payload: %w", err)
		}
		return len(rows), s.rawRepo.Insert311(rows)
	case models.DatasetTransit:
		var rows []models.RawTransitRow
		if err := sonic.Unmarshal(payload, &rows); err != nil {
			return 0, fmt.Errorf("decode transit payload: %w", err)
		}
		return len(rows), s.rawRepo.InsertTransit(rows)
	case models.DatasetTaxi:
		var rows []models.RawTaxiRow
		if err := sonic.Unmarshal(payload, &rows); err != nil {
			return 0, fmt.Errorf("decode taxi payload: %w", err)
		}
		return len(rows), s.rawRepo.InsertTaxi(rows)
	case models.DatasetEvents:
		var rows []models.RawEventRow
		if err := sonic.Unmarshal(payload, &rows); err != nil {
			return 0, fmt.Errorf("decode events payload: %w", err)
		}
		return len(rows), s.rawRepo.InsertEvents(rows)
	}
	return 0, fmt.Errorf("unknown source %q", source)
}
