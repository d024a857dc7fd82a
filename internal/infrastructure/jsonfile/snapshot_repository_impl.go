package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/oksasatya/go-jobboard/internal/domain/entity"
	"github.com/oksasatya/go-jobboard/internal/domain/repository"
)

// SnapshotRepository keeps the snapshot in a single JSON file.
type SnapshotRepository struct {
	path string
}

func NewSnapshotRepository(path string) *SnapshotRepository {
	return &SnapshotRepository{path: path}
}

func (r *SnapshotRepository) Path() string { return r.path }

func (r *SnapshotRepository) Load(ctx context.Context) (*entity.Snapshot, error) {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, repository.ErrSnapshotNotFound
		}
		return nil, err
	}
	s := &entity.Snapshot{}
	if err := json.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrSnapshotCorrupt, err)
	}
	if err := s.Normalize(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrSnapshotCorrupt, err)
	}
	return s, nil
}

// Save writes to a temp file next to the target and renames it into place.
func (r *SnapshotRepository) Save(ctx context.Context, s *entity.Snapshot) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(r.path)
	tmp := filepath.Join(dir, "."+filepath.Base(r.path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, r.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)
