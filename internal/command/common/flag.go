package common

import (
	"log/slog"

	"github.com/bornholm/workers/internal/config"
	"github.com/bornholm/workers/internal/core/port"
	"github.com/bornholm/workers/internal/log"
	"github.com/bornholm/workers/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"

	// Register resolver schemes

	_ "github.com/Bornholm/amatl/pkg/resolver/file"
	_ "github.com/Bornholm/amatl/pkg/resolver/http"
	_ "github.com/Bornholm/amatl/pkg/resolver/stdin"
)

const (
	ParamConfig = "config"

	paramDatabase = "db"
	paramFormat   = "format"

	metadataConfig = "config"
)

var (
	flagDatabase = altsrc.NewStringFlag(&cli.StringFlag{
		Name:        paramDatabase,
		EnvVars:     []string{"WORKERS_DB"},
		Usage:       "The database file name",
		DefaultText: "$HOME/" + config.DefaultDatabaseFilename,
	})
	flagFormat = altsrc.NewStringFlag(&cli.StringFlag{
		Name:    paramFormat,
		Aliases: []string{"o"},
		Value:   string(FormatTable),
		Usage:   "Output format (table, json or yaml)",
	})
)

func WithDatabaseFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagDatabase,
	}, flags...)
}

func WithOutputFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagFormat,
	}, flags...)
}

// InitInputSource loads the values of the given flags from the
// configuration file passed with the global --config flag, if any.
func InitInputSource(flags []cli.Flag) cli.BeforeFunc {
	return altsrc.InitInputSourceWithContext(flags, NewResolverSourceFromFlagFunc(ParamConfig))
}

func SetConfig(ctx *cli.Context, conf *config.Config) {
	if ctx.App.Metadata == nil {
		ctx.App.Metadata = map[string]any{}
	}

	ctx.App.Metadata[metadataConfig] = conf
}

func GetConfig(ctx *cli.Context) (*config.Config, error) {
	conf, ok := ctx.App.Metadata[metadataConfig].(*config.Config)
	if !ok {
		parsed, err := config.Parse()
		if err != nil {
			return nil, errors.WithStack(err)
		}

		conf = parsed
	}

	// Do not alter the shared configuration
	clone := *conf

	if ctx.IsSet(paramDatabase) {
		clone.Storage.Database.DSN = ctx.String(paramDatabase)
	}

	return &clone, nil
}

// GetWorkerStore returns an initialized worker store bound to the
// database selected by the --db flag or the configuration.
func GetWorkerStore(ctx *cli.Context) (port.WorkerStore, error) {
	conf, err := GetConfig(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	storeCtx := log.WithAttrs(ctx.Context, slog.String("db", conf.Storage.Database.DSN))

	store, err := setup.NewWorkerStoreFromConfig(storeCtx, conf, setup.WithLogWriter(ctx.App.ErrWriter))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := store.Initialize(storeCtx); err != nil {
		return nil, errors.Wrapf(err, "could not initialize database '%s'", conf.Storage.Database.DSN)
	}

	return store, nil
}

func GetFormat(ctx *cli.Context) (Format, error) {
	format := Format(ctx.String(paramFormat))

	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return format, nil
	default:
		return "", errors.Errorf("unknown output format '%s'", format)
	}
}
