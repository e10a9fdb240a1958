package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

const DefaultDatabaseFilename = "users.db"

type Storage struct {
	Database Database `envPrefix:"DATABASE_"`
}

type Database struct {
	DSN         string        `env:"DSN,expand"`
	BusyTimeout time.Duration `env:"BUSY_TIMEOUT" envDefault:"5s"`
}

// DefaultDatabasePath returns the path of the database file
// in the current user's home directory.
func DefaultDatabasePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "could not find user home directory")
	}

	return filepath.Join(home, DefaultDatabaseFilename), nil
}
