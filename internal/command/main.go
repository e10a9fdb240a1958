package command

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/bornholm/workers/internal/build"
	"github.com/bornholm/workers/internal/command/common"
	"github.com/bornholm/workers/internal/config"
	"github.com/bornholm/workers/internal/log"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionPrinter = func(ctx *cli.Context) {
		fmt.Fprintf(ctx.App.Writer, "%s %s\n", ctx.App.Name, ctx.App.Version)
	}
}

func Main(name string, usage string, commands ...*cli.Command) {
	app := NewApp(name, usage, commands...)

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func NewApp(name string, usage string, commands ...*cli.Command) *cli.App {
	app := &cli.App{
		Name:     name,
		Usage:    usage,
		Commands: commands,
		Version:  build.ShortVersion,
		Before: func(ctx *cli.Context) error {
			workdir := ctx.String("workdir")
			// Switch to new working directory if defined
			if workdir != "" {
				if err := os.Chdir(workdir); err != nil {
					return errors.Wrap(err, "could not change working directory")
				}
			}

			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse config")
			}

			if ctx.IsSet("log-level") {
				conf.Logger.Level = parseLogLevel(ctx.String("log-level"))
			}

			logger := slog.New(log.ContextHandler{
				Handler: slog.NewTextHandler(ctx.App.ErrWriter, &slog.HandlerOptions{
					Level:     conf.Logger.Level,
					AddSource: true,
				}),
			})

			slog.SetDefault(logger)

			slog.DebugContext(ctx.Context, "starting", slog.String("version", build.LongVersion))

			common.SetConfig(ctx, conf)

			return nil
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    common.ParamConfig,
				EnvVars: []string{"WORKERS_CLI_CONFIG"},
				Aliases: []string{"c"},
				Usage:   "configuration file to use",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Value:   false,
				EnvVars: []string{"WORKERS_CLI_DEBUG"},
				Usage:   "Toggle debug mode",
			},
			&cli.StringFlag{
				Name:    "workdir",
				Value:   "",
				EnvVars: []string{"WORKERS_CLI_WORKDIR"},
				Usage:   "The working directory",
			},
			&cli.StringFlag{
				Name:        "log-level",
				EnvVars:     []string{"WORKERS_CLI_LOG_LEVEL"},
				Usage:       "Set logging level (debug, info, warn or error)",
				DefaultText: "warn",
			},
		},
	}

	app.ExitErrHandler = func(ctx *cli.Context, err error) {
		if err == nil {
			return
		}

		debug := ctx.Bool("debug")

		if !debug {
			slog.ErrorContext(ctx.Context, err.Error())
		} else {
			slog.ErrorContext(ctx.Context, fmt.Sprintf("%+v", err))
		}
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	return app
}

func parseLogLevel(logLevel string) slog.Level {
	switch logLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
