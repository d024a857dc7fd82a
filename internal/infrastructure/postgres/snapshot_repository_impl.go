package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-jobboard/internal/domain/entity"
	"github.com/oksasatya/go-jobboard/internal/domain/repository"
)

// snapshotRowID is the only row of the snapshots table.
const snapshotRowID = 1

type SnapshotRepository struct {
	pool *pgxpool.Pool
}

func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

func (r *SnapshotRepository) Load(ctx context.Context) (*entity.Snapshot, error) {
	var data []byte
	row := r.pool.QueryRow(ctx, `
		SELECT data
		FROM snapshots
		WHERE id = $1
	`, snapshotRowID)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrSnapshotNotFound
		}
		return nil, err
	}
	s := &entity.Snapshot{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrSnapshotCorrupt, err)
	}
	if err := s.Normalize(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrSnapshotCorrupt, err)
	}
	return s, nil
}

func (r *SnapshotRepository) Save(ctx context.Context, s *entity.Snapshot) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO snapshots (id, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`, snapshotRowID, data)
	return err
}

var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)
