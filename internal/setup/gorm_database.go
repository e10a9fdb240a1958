package setup

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	gormAdapter "github.com/bornholm/workers/internal/adapter/gorm"
	"github.com/bornholm/workers/internal/config"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

func newGormDatabaseOpenerFromConfig(conf *config.Config, opts *Options) gormAdapter.OpenFunc {
	gormLogger := logger.New(
		log.New(opts.LogWriter, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  getGormLogLevel(conf.Logger.Level),
			IgnoreRecordNotFoundError: true,
		},
	)

	return func(ctx context.Context) (*gorm.DB, error) {
		dialector := gormlite.Open(conf.Storage.Database.DSN)

		db, err := gorm.Open(dialector, &gorm.Config{
			Logger: gormLogger,
		})
		if err != nil {
			return nil, errors.WithStack(err)
		}

		if conf.Logger.Level == slog.LevelDebug {
			db = db.Debug()
		}

		internalDB, err := db.DB()
		if err != nil {
			return nil, errors.WithStack(err)
		}

		// Pragmas are set per connection
		internalDB.SetMaxOpenConns(1)

		pragmas := fmt.Sprintf("PRAGMA foreign_keys=on; PRAGMA busy_timeout=%d", conf.Storage.Database.BusyTimeout.Milliseconds())

		if err := db.WithContext(ctx).Exec(pragmas).Error; err != nil {
			if closeErr := internalDB.Close(); closeErr != nil {
				slog.ErrorContext(ctx, "could not close database", slog.Any("error", errors.WithStack(closeErr)))
			}

			return nil, errors.WithStack(err)
		}

		return db, nil
	}
}

func getGormLogLevel(level slog.Level) logger.LogLevel {
	switch level {
	case slog.LevelError:
		return logger.Error
	case slog.LevelWarn:
		return logger.Warn
	case slog.LevelInfo, slog.LevelDebug:
		return logger.Info
	default:
		return logger.Error
	}
}
