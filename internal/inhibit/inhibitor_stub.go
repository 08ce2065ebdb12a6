//go:build !linux
// +build !linux

// Package inhibit keeps the desktop from blanking while slides play.
package inhibit

import (
	"context"

	"go.uber.org/zap"
)

// ScreenSaverInhibitor stub for platforms without a session bus
type ScreenSaverInhibitor struct {
	logger *zap.Logger
}

// NewScreenSaverInhibitor creates a stub inhibitor
func NewScreenSaverInhibitor(logger *zap.Logger) *ScreenSaverInhibitor {
	return &ScreenSaverInhibitor{logger: logger}
}

// Inhibit is a no-op on non-Linux platforms
func (s *ScreenSaverInhibitor) Inhibit(ctx context.Context, reason string) error {
	s.logger.Debug("Screensaver inhibition is only supported on Linux systems")
	return nil
}

// Release is a no-op on non-Linux platforms
func (s *ScreenSaverInhibitor) Release(ctx context.Context) error {
	return nil
}

// Close is a no-op on non-Linux platforms
func (s *ScreenSaverInhibitor) Close(ctx context.Context) error {
	return nil
}
