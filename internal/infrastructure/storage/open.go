package storage

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-jobboard/config"
	"github.com/oksasatya/go-jobboard/internal/domain/repository"
	"github.com/oksasatya/go-jobboard/internal/infrastructure/jsonfile"
	pginfra "github.com/oksasatya/go-jobboard/internal/infrastructure/postgres"
)

// Options tunes OpenSnapshots for the calling command.
type Options struct {
	// Migrate applies the postgres migrations before the pool is opened.
	Migrate bool
	// AppName is reported to postgres as application_name.
	AppName string
}

// OpenSnapshots picks the persistence driver from STORAGE_DRIVER. The returned
// close func is never nil.
func OpenSnapshots(ctx context.Context, cfg *config.Config, logger *logrus.Logger, o Options) (repository.SnapshotRepository, func(), error) {
	switch cfg.StorageDriver {
	case "postgres":
		if o.Migrate {
			if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
				return nil, func() {}, err
			}
		}
		appName := o.AppName
		if appName == "" {
			appName = cfg.AppName
		}
		pool, err := pginfra.NewPool(ctx, pginfra.PoolOptions{
			DSN:         cfg.PostgresDSN(),
			AppName:     appName,
			MaxConns:    cfg.DBMaxConns,
			MinConns:    cfg.DBMinConns,
			MaxConnLife: cfg.DBMaxConnLife,
		})
		if err != nil {
			return nil, func() {}, err
		}
		logger.Info("using postgres snapshot storage")
		return pginfra.NewSnapshotRepository(pool), pool.Close, nil
	case "file", "":
		logger.WithField("path", cfg.DataFile).Info("using json file snapshot storage")
		return jsonfile.NewSnapshotRepository(cfg.DataFile), func() {}, nil
	default:
		return nil, func() {}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
}
