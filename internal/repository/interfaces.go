package repository

import (
	"context"
	"time"

	"github.com/Aliza-Akhtar22/Code-Plan-Agent/internal/domain"
)

// SessionRepo persists conversation sessions keyed by dataset id.
// Save is last-writer-wins per key; no merge semantics.
type SessionRepo interface {
	Save(ctx context.Context, s *domain.Session) error
	GetByDatasetID(ctx context.Context, datasetID string) (*domain.Session, error)
	Delete(ctx context.Context, datasetID string) error
}

// UploadRecord is the durable bookkeeping row for an uploaded dataset.
// The frame itself lives in the in-memory dataset store.
type UploadRecord struct {
	DatasetID string
	Filename  string
	NumRows   int
	NumCols   int
	CreatedAt time.Time
}

// UploadRepo records dataset uploads.
type UploadRepo interface {
	Create(ctx context.Context, u *UploadRecord) error
	GetByDatasetID(ctx context.Context, datasetID string) (*UploadRecord, error)
	List(ctx context.Context) ([]*UploadRecord, error)
	Delete(ctx context.Context, datasetID string) error
}
