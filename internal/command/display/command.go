package display

import (
	"log/slog"

	"github.com/bornholm/workers/internal/command/common"
	"github.com/bornholm/workers/internal/log"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	flags := common.WithDatabaseFlags(
		common.WithOutputFlags()...,
	)

	return &cli.Command{
		Name:   "display",
		Usage:  "Display all workers",
		Flags:  flags,
		Before: common.InitInputSource(flags),
		Action: func(cCtx *cli.Context) error {
			ctx := log.WithAttrs(cCtx.Context, slog.String("command", "display"))

			format, err := common.GetFormat(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			store, err := common.GetWorkerStore(cCtx)
			if err != nil {
				return errors.Wrap(err, "could not retrieve worker store")
			}

			workers, err := store.ListWorkers(ctx)
			if err != nil {
				return errors.Wrap(err, "could not list workers")
			}

			slog.DebugContext(ctx, "workers listed", slog.Int("total", len(workers)))

			if err := common.RenderWorkers(cCtx.App.Writer, format, workers); err != nil {
				return errors.Wrap(err, "could not render workers")
			}

			return nil
		},
	}
}
