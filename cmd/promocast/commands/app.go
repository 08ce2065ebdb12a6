package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/genricoloni/promocast/internal/carousel"
	"github.com/genricoloni/promocast/internal/compositor"
	"github.com/genricoloni/promocast/internal/config"
	"github.com/genricoloni/promocast/internal/domain"
	"github.com/genricoloni/promocast/internal/engine"
	"github.com/genricoloni/promocast/internal/executor"
	"github.com/genricoloni/promocast/internal/fetcher"
	"github.com/genricoloni/promocast/internal/inhibit"
	"github.com/genricoloni/promocast/internal/render"
	"github.com/genricoloni/promocast/internal/render/wallpaper"
	"github.com/genricoloni/promocast/internal/state"
	"github.com/genricoloni/promocast/internal/storage"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// AppOptions is the dependency graph shared by every command
var AppOptions = fx.Options(
	// Logger configuration
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),

	// Provide dependencies
	fx.Provide(
		fx.Annotate(config.Load, fx.As(fx.Self()), fx.As(new(domain.Config))),
		newLogger,
		newStorage,
		fx.Annotate(state.New, fx.As(fx.Self()), fx.As(new(domain.CatalogSource))),
		newHub,
		fx.Annotate(newPlayer, fx.As(fx.Self()), fx.As(new(domain.Controls))),
		fx.Annotate(inhibit.NewScreenSaverInhibitor, fx.As(fx.Self()), fx.As(new(domain.Inhibitor))),
		engine.NewEngine,
	),

	// Lifecycle hooks
	fx.Invoke(registerHooks),
)

// WallpaperOptions adds the desktop wallpaper pipeline to AppOptions
var WallpaperOptions = fx.Options(
	fx.Provide(
		compositor.NewScreenResolution,
		fx.Annotate(compositor.NewSlideCompositor, fx.As(new(domain.Compositor))),
		fx.Annotate(fetcher.NewHTTPFetcher, fx.As(new(domain.Fetcher))),
		fx.Annotate(executor.NewExecutor, fx.As(new(domain.Executor))),
		wallpaper.NewRenderer,
	),
	fx.Invoke(registerWallpaperHooks),
)

// interactiveLogging moves logs into a file while the terminal UI owns the screen
var interactiveLogging = fx.Decorate(newFileLogger)

// newLogger creates the production logger at the configured level
func newLogger(cfg *config.AppConfig) (*zap.Logger, error) {
	zcfg, err := loggerConfig(cfg)
	if err != nil {
		return nil, err
	}
	return zcfg.Build()
}

// newFileLogger is newLogger writing to the interactive log file
func newFileLogger(cfg *config.AppConfig) (*zap.Logger, error) {
	zcfg, err := loggerConfig(cfg)
	if err != nil {
		return nil, err
	}

	path := cfg.InteractiveLogFile()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	return zcfg.Build()
}

func loggerConfig(cfg *config.AppConfig) (zap.Config, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.LogLevel != "" {
		level, err := zap.ParseAtomicLevel(cfg.LogLevel)
		if err != nil {
			return zcfg, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		zcfg.Level = level
	}
	return zcfg, nil
}

// newStorage opens the database and closes it when the app stops
func newStorage(lc fx.Lifecycle, cfg *config.AppConfig, logger *zap.Logger) (*storage.Store, error) {
	store, err := storage.Open(cfg.DBPath, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})
	return store, nil
}

// newHub creates the frame fan-out with slide logging attached
func newHub(logger *zap.Logger) *render.Hub {
	return render.NewHub(render.NewLogRenderer(logger))
}

func newPlayer(logger *zap.Logger, cfg domain.Config, hub *render.Hub) *carousel.Player {
	timing := carousel.Timing{
		Tick:       cfg.GetTickInterval(),
		Entrance:   cfg.GetEntranceDelay(),
		Transition: cfg.GetTransitionDelay(),
	}
	return carousel.NewPlayer(logger, timing, hub)
}

// registerHooks loads the catalog on start and persists every later
// change; on stop it ends any live session and lets go of the bus
func registerHooks(
	lc fx.Lifecycle,
	logger *zap.Logger,
	cfg *config.AppConfig,
	st *state.State,
	store *storage.Store,
	eng *engine.Engine,
	inh *inhibit.ScreenSaverInhibitor,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Promocast started",
				zap.String("db", cfg.DBPath),
				zap.String("outputDir", cfg.OutputDir),
				zap.Int("defaultDuration", cfg.DefaultDuration),
				zap.Duration("tick", cfg.TickInterval))

			catalog, err := store.Load()
			if err != nil {
				return fmt.Errorf("load catalog: %w", err)
			}
			st.Load(catalog)
			if len(catalog.Stores) == 0 {
				if err := store.Save(st.Snapshot()); err != nil {
					return fmt.Errorf("save seeded catalog: %w", err)
				}
			}
			st.Subscribe(store.Save)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			return multierr.Combine(eng.Stop(ctx), inh.Close(ctx))
		},
	})
}

// registerWallpaperHooks attaches the wallpaper renderer for the lifetime
// of the app and restores the desktop afterwards
func registerWallpaperHooks(lc fx.Lifecycle, hub *render.Hub, r *wallpaper.Renderer) {
	var detach func()
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := r.Start(ctx); err != nil {
				return err
			}
			detach = hub.Attach(r)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if detach != nil {
				detach()
			}
			return r.Stop(ctx)
		},
	})
}
