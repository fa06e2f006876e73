package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/keeper-reveal/internal/config"
	"github.com/MKhiriev/keeper-reveal/internal/logger"
)

// Storages groups the repositories of one backend.
type Storages struct {
	Submissions SubmissionRepository
	State       StateRepository

	db *DB
}

// NewStorages opens the backend selected by cfg.Driver, migrates SQL
// schemas, and wraps every repository so that writes reach publisher.
// A nil publisher leaves the repositories undecorated.
func NewStorages(ctx context.Context, cfg config.Storage, publisher EventPublisher, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	s := new(Storages)

	switch cfg.Driver {
	case config.DriverPostgres, config.DriverSQLite:
		var (
			db  *DB
			err error
		)
		if cfg.Driver == config.DriverPostgres {
			db, err = NewConnectPostgres(ctx, cfg.DB, log)
		} else {
			db, err = NewConnectSQLite(ctx, cfg.DB, log)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s connection error: %w", ErrStoreUnavailable, cfg.Driver, err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		s.db = db
		s.Submissions = NewSubmissionRepository(db, log)
		s.State = NewStateRepository(db, log)

	case config.DriverFile:
		fileStore, err := NewFileStore(cfg.File.Path)
		if err != nil {
			return nil, err
		}
		s.Submissions, s.State = fileStore, fileStore

	case config.DriverMemory:
		memStore := NewMemoryStore()
		s.Submissions, s.State = memStore, memStore

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	if publisher != nil {
		s.Submissions = WithSubmissionEvents(s.Submissions, publisher)
		s.State = WithStateEvents(s.State, publisher)
	}

	return s, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
