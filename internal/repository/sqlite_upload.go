package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SQLiteUploadRepo implements UploadRepo using a SQLite database.
type SQLiteUploadRepo struct {
	db *sql.DB
}

// NewSQLiteUploadRepo creates a new SQLiteUploadRepo.
func NewSQLiteUploadRepo(db *sql.DB) *SQLiteUploadRepo {
	return &SQLiteUploadRepo{db: db}
}

func (r *SQLiteUploadRepo) Create(ctx context.Context, u *UploadRecord) error {
	query := `INSERT INTO uploads (dataset_id, filename, n_rows, n_cols, created_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(dataset_id) DO UPDATE SET filename = excluded.filename,
			n_rows = excluded.n_rows, n_cols = excluded.n_cols, created_at = excluded.created_at`
	_, err := r.db.ExecContext(ctx, query,
		u.DatasetID,
		u.Filename,
		u.NumRows,
		u.NumCols,
		u.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting upload record: %w", err)
	}
	return nil
}

func (r *SQLiteUploadRepo) GetByDatasetID(ctx context.Context, datasetID string) (*UploadRecord, error) {
	query := `SELECT dataset_id, filename, n_rows, n_cols, created_at FROM uploads WHERE dataset_id = ?`
	row := r.db.QueryRowContext(ctx, query, datasetID)
	return scanUpload(row.Scan)
}

func (r *SQLiteUploadRepo) List(ctx context.Context) ([]*UploadRecord, error) {
	query := `SELECT dataset_id, filename, n_rows, n_cols, created_at FROM uploads ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing uploads: %w", err)
	}
	defer rows.Close()

	var uploads []*UploadRecord
	for rows.Next() {
		u, err := scanUpload(rows.Scan)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating uploads: %w", err)
	}
	return uploads, nil
}

func (r *SQLiteUploadRepo) Delete(ctx context.Context, datasetID string) error {
	query := `DELETE FROM uploads WHERE dataset_id = ?`
	if _, err := r.db.ExecContext(ctx, query, datasetID); err != nil {
		return fmt.Errorf("deleting upload record: %w", err)
	}
	return nil
}

func scanUpload(scan func(dest ...any) error) (*UploadRecord, error) {
	var u UploadRecord
	var createdAtStr string

	err := scan(&u.DatasetID, &u.Filename, &u.NumRows, &u.NumCols, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("upload record: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning upload record: %w", err)
	}

	u.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &u, nil
}
