package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-jobboard/internal/domain/entity"
	repo "github.com/oksasatya/go-jobboard/internal/domain/repository"
	"github.com/oksasatya/go-jobboard/pkg/helpers"
)

// Store owns every User and JobPost for the life of the process.
//
// All state access goes through mu. Mutations hold the write lock across the
// guard checks, the change itself and the snapshot flush, so one request's
// mutate-then-flush never interleaves with another's. Reads take the read lock.
// The lock is not reentrant: exported methods never call each other while holding it.
type Store struct {
	mu    sync.RWMutex
	state *entity.Snapshot

	Repo   repo.SnapshotRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger

	Publisher     Publisher
	ES            *elasticsearch.Client
	ESUsersIndex  string
	HashPasswords bool

	now func() time.Time
}

type Option func(*Store)

func WithPublisher(p Publisher) Option { return func(s *Store) { s.Publisher = p } }
func WithPasswordHashing(on bool) Option {
	return func(s *Store) { s.HashPasswords = on }
}
func WithSearch(es *elasticsearch.Client, index string) Option {
	return func(s *Store) {
		s.ES = es
		s.ESUsersIndex = index
	}
}

// WithClock replaces time.Now for createdAt stamps.
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// Open loads the persisted snapshot. A missing or corrupt snapshot is treated
// as a first run: the store starts empty and is flushed straight away. Any other
// load failure is returned so a readable-later snapshot is never overwritten.
func Open(ctx context.Context, r repo.SnapshotRepository, jwt *helpers.JWTManager, logger *logrus.Logger, opts ...Option) (*Store, error) {
	s := &Store{
		Repo:   r,
		JWT:    jwt,
		Logger: logger,
		now:    time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	if s.Logger == nil {
		s.Logger = logrus.StandardLogger()
	}

	snap, err := r.Load(ctx)
	if err == nil {
		s.state = snap
		helpers.LogInfo(s.Logger, "database loaded", logrus.Fields{"users": len(snap.Users), "posts": len(snap.Posts)})
		return s, nil
	}

	if !errors.Is(err, repo.ErrSnapshotNotFound) && !errors.Is(err, repo.ErrSnapshotCorrupt) {
		return nil, fmt.Errorf("loading database failed: %w", err)
	}
	s.Logger.WithError(err).Warn("no database found, creating a new one")
	s.state = entity.NewSnapshot()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.flushLocked(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// mutate runs fn and then flushes, all under the write lock. Nothing is flushed
// when fn fails; guards inside fn must run before any field is touched.
func (s *Store) mutate(ctx context.Context, fn func(st *entity.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.state); err != nil {
		return err
	}
	return s.flushLocked(ctx)
}

func (s *Store) read(fn func(st *entity.Snapshot) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.state)
}

// flushLocked writes the whole state. A started flush always runs to completion.
// The in-memory change is kept when the write fails.
func (s *Store) flushLocked(ctx context.Context) error {
	if err := s.Repo.Save(context.WithoutCancel(ctx), s.state); err != nil {
		s.Logger.WithError(err).Error("writing to database failed")
		return fmt.Errorf("writing to database failed: %w", err)
	}
	return nil
}

// Reset drops every user and post and persists the empty state.
func (s *Store) Reset(ctx context.Context) error {
	return s.mutate(ctx, func(st *entity.Snapshot) error {
		fresh := entity.NewSnapshot()
		*st = *fresh
		return nil
	})
}

type Stats struct {
	Users int `json:"users"`
	Posts int `json:"posts"`
}

func (s *Store) Stats() Stats {
	var out Stats
	_ = s.read(func(st *entity.Snapshot) error {
		out = Stats{Users: len(st.Users), Posts: len(st.Posts)}
		return nil
	})
	return out
}

func (s *Store) createdAtNow() string {
	return s.now().UTC().Format(entity.CreatedAtLayout)
}
