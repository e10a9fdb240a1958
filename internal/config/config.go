package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	Logger  Logger  `envPrefix:"LOGGER_"`
	Storage Storage `envPrefix:"STORAGE_"`
}

func Parse() (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: "WORKERS_",
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if conf.Storage.Database.DSN == "" {
		dsn, err := DefaultDatabasePath()
		if err != nil {
			return nil, errors.WithStack(err)
		}

		conf.Storage.Database.DSN = dsn
	}

	return &conf, nil
}
