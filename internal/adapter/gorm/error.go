package gorm

import (
	"context"
	"log/slog"

	"github.com/bornholm/workers/internal/core/port"
	"github.com/ncruces/go-sqlite3"
	"github.com/pkg/errors"
)

func storageError(ctx context.Context, op string, err error) error {
	if isLockError(err) {
		slog.WarnContext(ctx, "database is locked by another process", slog.String("op", op))
	}

	return errors.WithStack(port.NewStorageError(op, err))
}

func isLockError(err error) bool {
	return errors.Is(err, sqlite3.BUSY) || errors.Is(err, sqlite3.LOCKED)
}
