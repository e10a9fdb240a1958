package selection

import (
	"log/slog"

	"github.com/bornholm/workers/internal/command/common"
	"github.com/bornholm/workers/internal/log"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagNumber = "number"
)

func Command() *cli.Command {
	flags := common.WithDatabaseFlags(
		common.WithOutputFlags(
			&cli.StringFlag{
				Name:     flagNumber,
				Aliases:  []string{"N"},
				Usage:    "The required phone number",
				Required: true,
			},
		)...,
	)

	return &cli.Command{
		Name:   "select",
		Usage:  "Select the workers with the given phone number",
		Flags:  flags,
		Before: common.InitInputSource(flags),
		Action: func(cCtx *cli.Context) error {
			number := cCtx.String(flagNumber)

			ctx := log.WithAttrs(cCtx.Context, slog.String("command", "select"), slog.String("number", number))

			format, err := common.GetFormat(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			store, err := common.GetWorkerStore(cCtx)
			if err != nil {
				return errors.Wrap(err, "could not retrieve worker store")
			}

			workers, err := store.SelectWorkersByNumber(ctx, number)
			if err != nil {
				return errors.Wrapf(err, "could not select workers with number '%s'", number)
			}

			slog.DebugContext(ctx, "workers selected", slog.Int("total", len(workers)))

			if err := common.RenderWorkers(cCtx.App.Writer, format, workers); err != nil {
				return errors.Wrap(err, "could not render workers")
			}

			return nil
		},
	}
}
