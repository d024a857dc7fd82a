package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-jobboard/internal/domain/entity"
)

var (
	// ErrSnapshotNotFound is returned by Load when nothing has been persisted yet.
	ErrSnapshotNotFound = errors.New("snapshot not found")
	// ErrSnapshotCorrupt wraps decode failures of a stored snapshot.
	ErrSnapshotCorrupt = errors.New("snapshot corrupt")
)

// SnapshotRepository persists the whole store state at once.
// Save must replace the previous snapshot so a reader never sees a partial write.
type SnapshotRepository interface {
	Load(ctx context.Context) (*entity.Snapshot, error)
	Save(ctx context.Context, s *entity.Snapshot) error
}
