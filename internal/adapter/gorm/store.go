package gorm

import (
	"context"

	"github.com/bornholm/workers/internal/core/port"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// OpenFunc opens a new connection to the database.
// The returned *gorm.DB is owned by the caller, which must close it.
type OpenFunc func(ctx context.Context) (*gorm.DB, error)

type Store struct {
	openDatabase OpenFunc
}

// Initialize implements port.WorkerStore.
//
// Missing tables are created. Existing tables are left untouched,
// whatever the statement that created them.
func (s *Store) Initialize(ctx context.Context) error {
	err := s.withDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		models := []any{
			&Birth{},
			&Worker{},
		}

		migrator := db.Migrator()

		for _, m := range models {
			if migrator.HasTable(m) {
				continue
			}

			if err := migrator.CreateTable(m); err != nil {
				return storageError(ctx, "initialize schema", err)
			}
		}

		return nil
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// withDatabase opens a connection, hands it to fn and closes it
// whatever the outcome of fn.
func (s *Store) withDatabase(ctx context.Context, fn func(ctx context.Context, db *gorm.DB) error) (err error) {
	db, err := s.openDatabase(ctx)
	if err != nil {
		return storageError(ctx, "open database", err)
	}

	defer func() {
		if closeErr := closeDatabase(db); closeErr != nil && err == nil {
			err = storageError(ctx, "close database", closeErr)
		}
	}()

	if err := fn(ctx, db.WithContext(ctx)); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func closeDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.WithStack(err)
	}

	if err := sqlDB.Close(); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func NewStore(openDatabase OpenFunc) *Store {
	return &Store{
		openDatabase: openDatabase,
	}
}

var _ port.WorkerStore = &Store{}
