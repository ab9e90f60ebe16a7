package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/db"
	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestSessionRepo_SaveAndGet(t *testing.T) {
	repo := NewSQLiteSessionRepo(testDB(t))
	ctx := context.Background()

	s := domain.NewSession("ds-1", 2)
	s.PlanText = "Forecast sales for 30 days."
	s.ProposedConfig = &domain.ForecastConfig{
		DsCol:   "date",
		YCol:    "sales",
		Freq:    domain.FreqDaily,
		Periods: 30,
	}
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.GetByDatasetID(ctx, "ds-1")
	require.NoError(t, err)
	assert.Equal(t, "ds-1", got.DatasetID)
	assert.Equal(t, s.PlanText, got.PlanText)
	require.NotNil(t, got.ProposedConfig)
	assert.Equal(t, *s.ProposedConfig, *got.ProposedConfig)
	assert.Equal(t, 2, got.MaxAttempts)
}

func TestSessionRepo_SaveOverwrites(t *testing.T) {
	repo := NewSQLiteSessionRepo(testDB(t))
	ctx := context.Background()

	s := domain.NewSession("ds-1", 2)
	s.PlanText = "first"
	require.NoError(t, repo.Save(ctx, s))

	s.PlanText = "second"
	s.ConfirmedConfig = &domain.ForecastConfig{DsCol: "date", YCol: "sales", Freq: "D", Periods: 30}
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.GetByDatasetID(ctx, "ds-1")
	require.NoError(t, err)
	assert.Equal(t, "second", got.PlanText)
	require.NotNil(t, got.ConfirmedConfig)
}

func TestSessionRepo_GetMissing(t *testing.T) {
	repo := NewSQLiteSessionRepo(testDB(t))

	_, err := repo.GetByDatasetID(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_Delete(t *testing.T) {
	repo := NewSQLiteSessionRepo(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.NewSession("ds-1", 2)))
	require.NoError(t, repo.Delete(ctx, "ds-1"))

	_, err := repo.GetByDatasetID(ctx, "ds-1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent session is not an error.
	assert.NoError(t, repo.Delete(ctx, "ds-1"))
}

func TestSessionRepo_ExecEnvelopeRoundTrip(t *testing.T) {
	repo := NewSQLiteSessionRepo(testDB(t))
	ctx := context.Background()

	s := domain.NewSession("ds-1", 2)
	s.GeneratedCode = "def run(df, config):\n    return {}"
	s.ExecOutput = &domain.ForecastResult{
		Forecast:     []map[string]any{{"date": "2024-01-07", "sales_forecast": 101.5}},
		ConfigUsed:   domain.ForecastConfig{DsCol: "date", YCol: "sales", Freq: "D", Periods: 1},
		TrainingRows: 6,
		InputRows:    6,
	}
	s.Attempt = 1
	require.NoError(t, repo.Save(ctx, s))

	got, err := repo.GetByDatasetID(ctx, "ds-1")
	require.NoError(t, err)
	require.NotNil(t, got.ExecOutput)
	assert.Equal(t, 6, got.ExecOutput.TrainingRows)
	assert.Equal(t, 1, got.Attempt)
	assert.Equal(t, s.GeneratedCode, got.GeneratedCode)
}
