package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces_mock.go -package=mocks

// Renderer observes carousel frames.
// Render is called synchronously from the clock, so implementations must
// return quickly and must not call back into the player on the same goroutine.
type Renderer interface {
	Render(frame Frame)
}

// Controls are the user intents a renderer may emit back to the carousel
type Controls interface {
	Next()
	Prev()
	JumpTo(index int) bool
	SetDuration(seconds int)
	Exit()
}

// CatalogSource provides read-only snapshots of the application data
type CatalogSource interface {
	// Snapshot returns a copy that later edits do not affect
	Snapshot() Catalog
}

// Inhibitor keeps the display awake while a session plays
type Inhibitor interface {
	// Inhibit asks the desktop not to blank the screen
	Inhibit(ctx context.Context, reason string) error

	// Release drops a previous inhibition, it is a no-op when none is held
	Release(ctx context.Context) error
}

// Compositor renders a slide into an encoded image
type Compositor interface {
	// Compose draws the slide for frame, art is optional product artwork
	Compose(ctx context.Context, frame Frame, art []byte) ([]byte, error)

	// Generate composes and writes the slide to disk, returning its path
	Generate(ctx context.Context, frame Frame, art []byte) (string, error)
}

// Fetcher defines the interface for retrieving product artwork
type Fetcher interface {
	// Fetch downloads image data from a URL
	// Returns the raw image bytes or an error
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Executor defines the interface for painting frames on the desktop
type Executor interface {
	// SetWallpaper sets the desktop wallpaper to the specified image path
	SetWallpaper(ctx context.Context, imagePath string) error

	// GetCurrentWallpaper retrieves the path to the currently set wallpaper
	// Returns an error if the operation is not supported or fails
	GetCurrentWallpaper(ctx context.Context) (string, error)
}

// Config defines the interface for application configuration
type Config interface {
	// GetOutputDir returns the directory for composed frames
	GetOutputDir() string

	// GetDefaultDuration returns the per-slide duration in seconds
	GetDefaultDuration() int

	// GetTickInterval returns the clock period
	GetTickInterval() time.Duration

	// GetEntranceDelay returns the grace window before the first slide shows
	GetEntranceDelay() time.Duration

	// GetTransitionDelay returns the hide window between slides
	GetTransitionDelay() time.Duration

	// InhibitScreensaver reports whether playback should keep the screen awake
	InhibitScreensaver() bool
}
