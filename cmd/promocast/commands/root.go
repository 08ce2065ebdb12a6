package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/multierr"
)

const stopTimeout = 5 * time.Second

// Execute runs the promocast CLI
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "promocast",
		Short:        "In-store promotional signage",
		SilenceUsage: true,
	}

	root.AddCommand(
		playCmd(),
		storeCmd(),
		productCmd(),
		announcementCmd(),
		durationCmd(),
	)
	return root
}

// runApp starts the graph built from opts, runs fn and stops the graph.
// Targets for fn are usually filled with fx.Populate.
func runApp(ctx context.Context, fn func(ctx context.Context) error, opts ...fx.Option) (err error) {
	app := fx.New(opts...)
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
		defer cancel()
		err = multierr.Append(err, app.Stop(stopCtx))
	}()

	return fn(ctx)
}
