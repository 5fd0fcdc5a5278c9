package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/pipeline"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/repository"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/timeline"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/weather"
)

// ErrUpdateInProgress is returned when an update is requested while a
// recompute is already running. The dashboard disables its controls during
// a recompute; a second trigger is a client bug, not a queueing request.
var ErrUpdateInProgress = errors.New("dashboard update already in progress")

// ErrNoSnapshot is returned when a read arrives before any update has run.
var ErrNoSnapshot = errors.New("no dashboard data loaded yet")

// DashboardService owns the canonical snapshot. Only Update replaces it,
// and only after a recompute completes in full; readers always observe a
// complete snapshot, never a partial one. Timeline selections produce
// transient views that leave the canonical snapshot untouched.
type DashboardService struct {
	rawRepo *repository.RawRepository
	engine  *pipeline.Engine
	weather weather.Source // nil when no proxy is configured

	updating sync.Mutex // held for the duration of one recompute

	mu      sync.RWMutex
	current *pipeline.Snapshot
	raw     *models.RawDatasets // raw rows backing the current snapshot
}

// NewDashboardService creates a dashboard service. weatherSource may be nil.
func NewDashboardService(rawRepo *repository.RawRepository, engine *pipeline.Engine, weatherSource weather.Source) *DashboardService {
	return &DashboardService{
		rawRepo: rawRepo,
		engine:  engine,
		weather: weatherSource,
	}
}

// Update runs a full recompute over [startDate, endDate] and swaps in the
// resulting snapshot. A concurrent call fails fast with
// ErrUpdateInProgress instead of queueing.
func (s *DashboardService) Update(ctx context.Context, startDate, endDate string) (*pipeline.Snapshot, error) {
	if !s.updating.TryLock() {
		return nil, ErrUpdateInProgress
	}
	defer s.updating.Unlock()

	raw, err := s.rawRepo.GetRange(startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("load raw datasets: %w", err)
	}

	// Weather is a pass-through concern: a failed fetch degrades the
	// weather analysis to "insufficient data" and must not abort the
	// update.
	var observations []models.WeatherObservation
	if s.weather != nil {
		observations, err = s.weather.DailyObservations(ctx, startDate, endDate)
		if err != nil {
			log.Printf("[Dashboard] Weather fetch failed, continuing without: %v", err)
			observations = nil
		}
	}

	snapshot := s.engine.Run(raw, observations, startDate, endDate)

	// Swap only after the recompute completed in full, and never replace a
	// newer snapshot with a stale late-resolving one.
	s.mu.Lock()
	if s.current == nil || snapshot.Version > s.current.Version {
		s.current = snapshot
		s.raw = raw
	} else {
		log.Printf("[Dashboard] Discarding stale recompute v%d (current v%d)", snapshot.Version, s.current.Version)
		snapshot = s.current
	}
	s.mu.Unlock()

	return snapshot, nil
}

// Snapshot returns the canonical snapshot, or ErrNoSnapshot before the
// first update.
func (s *DashboardService) Snapshot() (*pipeline.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, ErrNoSnapshot
	}
	return s.current, nil
}

// Marks generates timeline marks. With no explicit range the current
// snapshot's range is used.
func (s *DashboardService) Marks(g models.Granularity, startDate, endDate string) ([]models.TimeMark, error) {
	if startDate == "" || endDate == "" {
		snap, err := s.Snapshot()
		if err != nil {
			return nil, err
		}
		startDate, endDate = snap.StartDate, snap.EndDate
	}
	return timeline.Marks(g, startDate, endDate)
}

// SelectMark filters the current snapshot's raw datasets into the mark's
// window and re-aggregates the subset. The result is a preview: the
// canonical snapshot and its raw rows are not modified.
func (s *DashboardService) SelectMark(mark models.TimeMark) (*timeline.WindowedView, error) {
	s.mu.RLock()
	raw := s.raw
	s.mu.RUnlock()
	if raw == nil {
		return nil, ErrNoSnapshot
	}
	return timeline.Window(s.engine.Normalizer(), raw, mark), nil
}
