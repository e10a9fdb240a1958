package add

import (
	"log/slog"

	"github.com/bornholm/workers/internal/command/common"
	"github.com/bornholm/workers/internal/core/model"
	"github.com/bornholm/workers/internal/log"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagName  = "name"
	flagPhone = "phone"
	flagBirth = "birth"
)

func Command() *cli.Command {
	flags := common.WithDatabaseFlags(
		&cli.StringFlag{
			Name:     flagName,
			Aliases:  []string{"n"},
			Usage:    "The worker's name",
			Required: true,
		},
		&cli.StringFlag{
			Name:    flagPhone,
			Aliases: []string{"p"},
			Usage:   "The worker's phone number",
		},
		&cli.IntFlag{
			Name:     flagBirth,
			Aliases:  []string{"b"},
			Usage:    "The worker's birth year",
			Required: true,
		},
	)

	return &cli.Command{
		Name:   "add",
		Usage:  "Add a new worker",
		Flags:  flags,
		Before: common.InitInputSource(flags),
		Action: func(cCtx *cli.Context) error {
			ctx := log.WithAttrs(cCtx.Context, slog.String("command", "add"))

			store, err := common.GetWorkerStore(cCtx)
			if err != nil {
				return errors.Wrap(err, "could not retrieve worker store")
			}

			// An absent phone number is stored as an empty string
			worker := model.Worker{
				Name:   cCtx.String(flagName),
				Number: cCtx.String(flagPhone),
				Year:   cCtx.Int(flagBirth),
			}

			if err := store.AddWorker(ctx, worker); err != nil {
				return errors.Wrapf(err, "could not add worker '%s'", worker.Name)
			}

			slog.InfoContext(ctx, "worker added", slog.String("name", worker.Name), slog.Int("year", worker.Year))

			return nil
		},
	}
}
