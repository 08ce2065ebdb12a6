//go:build !linux && !windows
// +build !linux,!windows

package executor

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// ErrUnsupportedPlatform is returned by every StubExecutor operation
var ErrUnsupportedPlatform = errors.New("wallpaper mode is not available on this platform")

// StubExecutor is a placeholder for platforms without a wallpaper setter
type StubExecutor struct {
	logger *zap.Logger
}

// NewExecutor refuses to build a wallpaper sink so the CLI can say so up front
func NewExecutor(logger *zap.Logger) (*StubExecutor, error) {
	logger.Warn("Wallpaper mode requested on an unsupported platform")
	return nil, ErrUnsupportedPlatform
}

// SetWallpaper always fails
func (e *StubExecutor) SetWallpaper(ctx context.Context, imagePath string) error {
	return ErrUnsupportedPlatform
}

// GetCurrentWallpaper always fails
func (e *StubExecutor) GetCurrentWallpaper(ctx context.Context) (string, error) {
	return "", ErrUnsupportedPlatform
}
