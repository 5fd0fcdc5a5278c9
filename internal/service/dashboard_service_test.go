package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/boroughs"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/database"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/models"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/normalize"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/pipeline"
	"github.com/prathamssaraf/NYC-Urban-Rhythm/internal/repository"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, database.ApplySchema(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func newDashboardService(t *testing.T) (*DashboardService, *repository.RawRepository) {
	t.Helper()
	rawRepo := repository.NewRawRepository(newTestDB(t))
	engine := pipeline.New(normalize.New(boroughs.DefaultZoneTable()), nil)
	return NewDashboardService(rawRepo, engine, nil), rawRepo
}

func seedCalls(t *testing.T, repo *repository.RawRepository) {
	t.Helper()
	require.NoError(t, repo.Insert311([]models.Raw311Row{
		{CreatedDate: "2024-01-01T09:00:00", Borough: "MANHATTAN", ComplaintType: "Noise"},
		{CreatedDate: "2024-01-01T14:00:00", Borough: "MANHATTAN", ComplaintType: "Noise"},
		{CreatedDate: "2024-01-02T09:00:00", Borough: "QUEENS", ComplaintType: "Heat"},
	}))
}

func TestDashboardServiceUpdate(t *testing.T) {
	svc, rawRepo := newDashboardService(t)
	seedCalls(t, rawRepo)

	t.Run("reads before first update fail", func(t *testing.T) {
		_, err := svc.Snapshot()
		assert.ErrorIs(t, err, ErrNoSnapshot)

		_, err = svc.SelectMark(models.TimeMark{
			Granularity: models.GranularityDay, StartDate: "2024-01-01", EndDate: "2024-01-01",
		})
		assert.ErrorIs(t, err, ErrNoSnapshot)
	})

	t.Run("update builds and installs a snapshot", func(t *testing.T) {
		snapshot, err := svc.Update(context.Background(), "2024-01-01", "2024-01-31")
		require.NoError(t, err)
		assert.Equal(t, int64(1), snapshot.Version)
		assert.Equal(t, 3, snapshot.Bundles[models.DatasetCalls311].RecordCount)

		current, err := svc.Snapshot()
		require.NoError(t, err)
		assert.Same(t, snapshot, current)
	})

	t.Run("new update replaces the snapshot", func(t *testing.T) {
		snapshot, err := svc.Update(context.Background(), "2024-01-01", "2024-01-01")
		require.NoError(t, err)
		assert.Equal(t, int64(2), snapshot.Version)
		assert.Equal(t, 2, snapshot.Bundles[models.DatasetCalls311].RecordCount)
	})
}

func TestDashboardServiceSelectMark(t *testing.T) {
	svc, rawRepo := newDashboardService(t)
	seedCalls(t, rawRepo)

	snapshot, err := svc.Update(context.Background(), "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	view, err := svc.SelectMark(models.TimeMark{
		Granularity: models.GranularityDay, StartDate: "2024-01-01", EndDate: "2024-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, view.Bundles[models.DatasetCalls311].RecordCount)

	// The windowed view is a preview; the canonical snapshot is untouched.
	current, err := svc.Snapshot()
	require.NoError(t, err)
	assert.Same(t, snapshot, current)
	assert.Equal(t, 3, current.Bundles[models.DatasetCalls311].RecordCount)
}

func TestDashboardServiceMarks(t *testing.T) {
	svc, rawRepo := newDashboardService(t)
	seedCalls(t, rawRepo)

	t.Run("explicit range needs no snapshot", func(t *testing.T) {
		marks, err := svc.Marks(models.GranularityDay, "2024-01-01", "2024-01-03")
		require.NoError(t, err)
		assert.Len(t, marks, 3)
	})

	t.Run("defaults to snapshot range", func(t *testing.T) {
		_, err := svc.Marks(models.GranularityDay, "", "")
		assert.ErrorIs(t, err, ErrNoSnapshot)

		_, err = svc.Update(context.Background(), "2024-01-01", "2024-01-05")
		require.NoError(t, err)

		marks, err := svc.Marks(models.GranularityDay, "", "")
		require.NoError(t, err)
		assert.Len(t, marks, 5)
	})
}
