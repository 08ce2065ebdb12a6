// Package wallpaper paints the visible slide as the desktop wallpaper.
package wallpaper

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/genricoloni/promocast/internal/domain"
	"go.uber.org/zap"
)

const (
	defaultDebounce = 500 * time.Millisecond
	artFallbackURL  = "https://picsum.photos/seed/%s/1200"
)

// Renderer turns carousel frames into wallpapers.
// It listens to frames, fetches artwork, composes the slide and sets it.
type Renderer struct {
	logger     *zap.Logger
	fetcher    domain.Fetcher
	compositor domain.Compositor
	executor   domain.Executor
	debounce   time.Duration

	frames chan domain.Frame // holds at most the latest unprocessed frame

	mu                sync.Mutex
	lastKey           string
	cancel            context.CancelFunc
	wg                sync.WaitGroup
	originalWallpaper string // Path to wallpaper captured at startup
}

// NewRenderer creates a wallpaper renderer
func NewRenderer(
	logger *zap.Logger,
	fetch domain.Fetcher,
	comp domain.Compositor,
	exec domain.Executor,
) *Renderer {
	return &Renderer{
		logger:     logger,
		fetcher:    fetch,
		compositor: comp,
		executor:   exec,
		debounce:   defaultDebounce,
		frames:     make(chan domain.Frame, 1),
	}
}

// Start captures the current wallpaper and launches the paint loop.
// It returns immediately (non-blocking).
func (r *Renderer) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		return nil
	}

	r.logger.Info("Wallpaper renderer starting...")

	if wallpaper, err := r.executor.GetCurrentWallpaper(ctx); err == nil {
		r.originalWallpaper = wallpaper
		r.logger.Info("Captured original wallpaper for restoration",
			zap.String("path", wallpaper))
	} else {
		r.logger.Warn("Could not capture current wallpaper, restore on exit will be disabled",
			zap.Error(err))
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.wg.Add(1)
	go r.runLoop(loopCtx)
	return nil
}

// Render implements domain.Renderer. Only frames that reveal a new slide
// are forwarded; it never blocks the carousel clock.
func (r *Renderer) Render(frame domain.Frame) {
	r.mu.Lock()
	switch {
	case frame.Phase == domain.PhaseExited:
		r.lastKey = ""
		r.mu.Unlock()
		return
	case frame.Phase != domain.PhaseShowing || !frame.Visible:
		r.mu.Unlock()
		return
	}
	key := fmt.Sprintf("%d/%s", frame.Index, frame.Item.ID())
	if key == r.lastKey {
		r.mu.Unlock()
		return
	}
	r.lastKey = key
	r.mu.Unlock()

	for {
		select {
		case r.frames <- frame:
			return
		default:
			// drop the stale pending frame, latest wins
			select {
			case <-r.frames:
			default:
			}
		}
	}
}

// runLoop is the paint loop with debouncing.
// Debouncing prevents excessive wallpaper updates when users skip through slides quickly.
func (r *Renderer) runLoop(ctx context.Context) {
	defer r.wg.Done()

	timer := time.NewTimer(r.debounce)
	timer.Stop()

	var pending *domain.Frame

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			r.logger.Info("Wallpaper loop stopped")
			return

		case frame := <-r.frames:
			r.logger.Debug("Slide received, debouncing...",
				zap.Int("slide", frame.Index),
				zap.String("title", frame.Item.Title()))
			pending = &frame
			timer.Reset(r.debounce)

		case <-timer.C:
			if pending != nil {
				r.paint(ctx, *pending)
				pending = nil
			}
		}
	}
}

// paint runs the complete wallpaper pipeline for a single slide
func (r *Renderer) paint(ctx context.Context, frame domain.Frame) {
	var art []byte
	if url := artworkURL(frame.Item); url != "" {
		data, err := r.fetcher.Fetch(ctx, url)
		if err != nil {
			r.logger.Warn("Failed to fetch artwork, using a flat background",
				zap.String("url", url),
				zap.Error(err))
		} else {
			art = data
		}
	}

	path, err := r.compositor.Generate(ctx, frame, art)
	if err != nil && art != nil {
		r.logger.Warn("Artwork unusable, retrying without it", zap.Error(err))
		path, err = r.compositor.Generate(ctx, frame, nil)
	}
	if err != nil {
		r.logger.Error("Failed to generate slide", zap.Error(err))
		return
	}

	if err := r.executor.SetWallpaper(ctx, path); err != nil {
		r.logger.Error("Failed to set wallpaper", zap.Error(err))
		return
	}

	r.logger.Info("Wallpaper updated successfully",
		zap.String("path", path),
		zap.String("slide", frame.Item.Title()))
}

// Stop ends the paint loop and restores the original wallpaper
func (r *Renderer) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	original := r.originalWallpaper
	r.mu.Unlock()

	if cancel == nil {
		return nil
	}
	r.logger.Info("Wallpaper renderer stopping...")
	cancel()
	r.wg.Wait()

	if original == "" {
		r.logger.Info("No original wallpaper to restore")
		return nil
	}

	r.logger.Info("Restoring original wallpaper", zap.String("path", original))
	if err := r.executor.SetWallpaper(ctx, original); err != nil {
		r.logger.Error("Failed to restore original wallpaper", zap.Error(err))
		return err
	}

	r.logger.Info("Original wallpaper restored successfully")
	return nil
}

// artworkURL returns the image source for a product, falling back to a
// placeholder seeded by the product id. Announcements carry no artwork.
func artworkURL(item domain.ResolvedItem) string {
	if item.Kind != domain.KindProduct {
		return ""
	}
	if item.Product.ImageURL != "" {
		return item.Product.ImageURL
	}
	return fmt.Sprintf(artFallbackURL, item.Product.ID)
}
