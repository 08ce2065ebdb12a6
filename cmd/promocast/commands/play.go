package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/genricoloni/promocast/internal/config"
	"github.com/genricoloni/promocast/internal/domain"
	"github.com/genricoloni/promocast/internal/engine"
	"github.com/genricoloni/promocast/internal/render"
	"github.com/genricoloni/promocast/internal/render/tui"
	"github.com/genricoloni/promocast/internal/state"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type playOptions struct {
	store     string
	duration  int
	items     []string
	all       bool
	search    string
	wallpaper bool
}

// play: resolve the selection and present it until exit.
func playCmd() *cobra.Command {
	var opts playOptions
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Present products and announcements",
		Long: "Present a playlist in the terminal, or as the desktop wallpaper with --wallpaper.\n" +
			"Without --item every product (filtered by --search) is played, followed by every announcement.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.store, "store", "", "store id (default: first store)")
	cmd.Flags().IntVar(&opts.duration, "duration", 0, "seconds per slide, 1-60 (default: saved duration)")
	cmd.Flags().StringArrayVar(&opts.items, "item", nil, "content to play as product:ID or announcement:ID, repeatable")
	cmd.Flags().BoolVar(&opts.all, "all", false, "also queue every product and announcement")
	cmd.Flags().StringVar(&opts.search, "search", "", "only queue products whose name or category match")
	cmd.Flags().BoolVar(&opts.wallpaper, "wallpaper", false, "paint slides on the desktop instead of the terminal")
	return cmd
}

// session holds what a play run needs from the graph
type session struct {
	logger   *zap.Logger
	cfg      *config.AppConfig
	state    *state.State
	engine   *engine.Engine
	controls domain.Controls
	hub      *render.Hub
}

func runPlay(ctx context.Context, opts playOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var s session
	fxOpts := []fx.Option{
		AppOptions,
		fx.Populate(&s.logger, &s.cfg, &s.state, &s.engine, &s.controls, &s.hub),
	}
	if opts.wallpaper {
		fxOpts = append(fxOpts, WallpaperOptions)
	} else {
		fxOpts = append(fxOpts, interactiveLogging)
	}

	return runApp(ctx, func(ctx context.Context) error {
		catalog := s.state.Snapshot()
		refs, err := buildPlaylist(catalog, opts.items, opts.all, opts.search)
		if err != nil {
			return err
		}
		storeID, err := pickStore(catalog, opts.store)
		if err != nil {
			return err
		}
		duration := config.ClampDuration(pickDuration(opts.duration, catalog.DefaultDuration, s.cfg.GetDefaultDuration()))

		if opts.wallpaper {
			return s.playWallpaper(ctx, refs, storeID, duration)
		}
		return s.playTerminal(ctx, refs, storeID, duration)
	}, fxOpts...)
}

// playTerminal presents in the terminal until the user quits
func (s session) playTerminal(ctx context.Context, refs []domain.ContentReference, storeID string, duration int) error {
	screen := tui.NewRenderer(s.logger, s.controls, duration)
	detach := s.hub.Attach(screen)
	defer detach()

	if err := s.engine.Launch(ctx, refs, storeID, duration); err != nil {
		return err
	}
	defer s.engine.Exit()

	return screen.Run(ctx)
}

// playWallpaper runs headless until a signal arrives or the session ends
func (s session) playWallpaper(ctx context.Context, refs []domain.ContentReference, storeID string, duration int) error {
	if err := s.engine.Launch(ctx, refs, storeID, duration); err != nil {
		return err
	}
	defer s.engine.Exit()

	s.logger.Info("Presenting on the desktop, press Ctrl+C to stop")
	select {
	case <-ctx.Done():
	case <-s.engine.Done():
	}
	return nil
}
