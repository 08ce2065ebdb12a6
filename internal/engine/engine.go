package engine

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/genricoloni/promocast/internal/carousel"
	"github.com/genricoloni/promocast/internal/domain"
	"github.com/genricoloni/promocast/internal/resolver"
	"go.uber.org/zap"
)

// ErrUnknownStore is returned when a launch names a store that does not exist
var ErrUnknownStore = errors.New("unknown store")

const (
	inhibitReason  = "Displaying promotions"
	releaseTimeout = 2 * time.Second
)

// Engine orchestrates a presentation session.
// It snapshots the catalog, resolves the playlist, keeps the screen awake
// and hands the items to the player.
type Engine struct {
	logger    *zap.Logger
	cfg       domain.Config
	catalog   domain.CatalogSource
	player    *carousel.Player
	inhibitor domain.Inhibitor

	mu   sync.Mutex
	done chan struct{} // closed when the current session ends
}

// NewEngine creates a new orchestration engine
func NewEngine(
	logger *zap.Logger,
	cfg domain.Config,
	catalog domain.CatalogSource,
	player *carousel.Player,
	inhibitor domain.Inhibitor,
) *Engine {
	done := make(chan struct{})
	close(done)
	return &Engine{
		logger:    logger,
		cfg:       cfg,
		catalog:   catalog,
		player:    player,
		inhibitor: inhibitor,
		done:      done,
	}
}

// Launch starts presenting refs for the given store. The catalog is read
// once; edits made afterwards do not reach the running session. A live
// session is ended first.
func (e *Engine) Launch(ctx context.Context, refs []domain.ContentReference, storeID string, durationSeconds int) error {
	snapshot := e.catalog.Snapshot()

	store, ok := snapshot.FindStore(storeID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStore, storeID)
	}

	items := resolver.ResolveCatalog(refs, snapshot)
	if len(items) == 0 {
		e.logger.Warn("Nothing to present",
			zap.Int("references", len(refs)),
			zap.String("store", store.Name))
		return carousel.ErrEmptyPlaylist
	}
	if dropped := len(refs) - len(items); dropped > 0 {
		e.logger.Warn("Skipping references to deleted content", zap.Int("dropped", dropped))
	}

	if durationSeconds < 1 {
		durationSeconds = 1
	}

	e.player.Exit()

	if e.cfg.InhibitScreensaver() {
		if err := e.inhibitor.Inhibit(ctx, inhibitReason); err != nil {
			e.logger.Warn("Could not inhibit screensaver, the display may blank", zap.Error(err))
		}
	}

	done := make(chan struct{})
	var once sync.Once
	onExit := func() {
		once.Do(func() {
			e.teardown()
			close(done)
		})
	}

	e.mu.Lock()
	e.done = done
	e.mu.Unlock()

	if err := e.player.Start(items, store, durationSeconds, onExit); err != nil {
		onExit()
		return err
	}

	e.logger.Info("Session launched",
		zap.String("store", store.Name),
		zap.Int("items", len(items)),
		zap.Int("duration", durationSeconds))
	return nil
}

// Done is closed when the current session ends. Before any launch it is
// already closed.
func (e *Engine) Done() <-chan struct{} {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.done
}

// Exit ends the current session
func (e *Engine) Exit() {
	e.player.Exit()
}

// Stop ends any live session and waits for the clock to wind down
func (e *Engine) Stop(ctx context.Context) error {
	e.logger.Info("Engine stopping...")
	e.player.Close()
	return e.inhibitor.Release(ctx)
}

// teardown runs once per session, after the player stopped its clock
func (e *Engine) teardown() {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	if err := e.inhibitor.Release(ctx); err != nil {
		e.logger.Warn("Failed to release screensaver inhibition", zap.Error(err))
	}
	e.logger.Info("Session ended")
}
