package application

import (
	"context"
	"strconv"

	"github.com/oksasatya/go-jobboard/internal/domain/entity"
)

// Guards only read state. The require* forms expect the caller to hold mu;
// the exported Assert* forms take the read lock themselves.

func requireUser(st *entity.Snapshot, userID string) (*entity.User, error) {
	u, ok := st.Users[userID]
	if !ok {
		return nil, ErrInvalidUserID
	}
	return u, nil
}

func requireJob(st *entity.Snapshot, jobID string) (*entity.JobPost, error) {
	p, ok := st.Posts[jobID]
	if !ok {
		return nil, ErrInvalidJobID
	}
	return p, nil
}

func requireCreator(p *entity.JobPost, userID string) error {
	if strconv.Itoa(p.CreatorID) != userID {
		return ErrNotCreator
	}
	return nil
}

func requireWatcher(st *entity.Snapshot, p *entity.JobPost, userID string) error {
	author, ok := st.Users[strconv.Itoa(p.CreatorID)]
	if !ok || !author.WatchedByUserIDs[userID] {
		return ErrNotWatcher
	}
	return nil
}

func (s *Store) AssertValidUserID(ctx context.Context, userID string) error {
	return s.read(func(st *entity.Snapshot) error {
		_, err := requireUser(st, userID)
		return err
	})
}

func (s *Store) AssertValidJobID(ctx context.Context, jobID string) error {
	return s.read(func(st *entity.Snapshot) error {
		_, err := requireJob(st, jobID)
		return err
	})
}

func (s *Store) AssertCreator(ctx context.Context, userID, jobID string) error {
	return s.read(func(st *entity.Snapshot) error {
		p, err := requireJob(st, jobID)
		if err != nil {
			return err
		}
		return requireCreator(p, userID)
	})
}

func (s *Store) AssertWatcher(ctx context.Context, userID, jobID string) error {
	return s.read(func(st *entity.Snapshot) error {
		p, err := requireJob(st, jobID)
		if err != nil {
			return err
		}
		return requireWatcher(st, p, userID)
	})
}
