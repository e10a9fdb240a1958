package setup

import (
	"context"
	"log/slog"

	gormAdapter "github.com/bornholm/workers/internal/adapter/gorm"
	"github.com/bornholm/workers/internal/config"
	"github.com/bornholm/workers/internal/core/port"
)

// NewWorkerStoreFromConfig returns a store bound to the configured database.
// No connection is opened until an operation is called on the store.
func NewWorkerStoreFromConfig(ctx context.Context, conf *config.Config, funcs ...OptionFunc) (port.WorkerStore, error) {
	opts := NewOptions(funcs...)

	slog.DebugContext(ctx, "using worker store", slog.String("dsn", conf.Storage.Database.DSN))

	return gormAdapter.NewStore(newGormDatabaseOpenerFromConfig(conf, opts)), nil
}
