package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
// The session is stored as a JSON document; the dataset frame is never
// part of it, so rows stay small regardless of dataset size.
type SQLiteSessionRepo struct {
	db *sql.DB
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(db *sql.DB) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Save(ctx context.Context, s *domain.Session) error {
	state, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling session state: %w", err)
	}

	query := `INSERT INTO sessions (dataset_id, state, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(dataset_id) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		s.DatasetID,
		string(state),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByDatasetID(ctx context.Context, datasetID string) (*domain.Session, error) {
	query := `SELECT state FROM sessions WHERE dataset_id = ?`
	var state string
	err := r.db.QueryRowContext(ctx, query, datasetID).Scan(&state)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("session %s: %w", datasetID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}

	var s domain.Session
	if err := json.Unmarshal([]byte(state), &s); err != nil {
		return nil, fmt.Errorf("unmarshaling session state: %w", err)
	}
	return &s, nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, datasetID string) error {
	query := `DELETE FROM sessions WHERE dataset_id = ?`
	if _, err := r.db.ExecContext(ctx, query, datasetID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
