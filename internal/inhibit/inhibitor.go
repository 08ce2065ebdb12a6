//go:build linux
// +build linux

// Package inhibit keeps the desktop from blanking while slides play.
package inhibit

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	screenSaverDest = "org.freedesktop.ScreenSaver"
	screenSaverPath = "/org/freedesktop/ScreenSaver"
	inhibitMethod   = "org.freedesktop.ScreenSaver.Inhibit"
	unInhibitMethod = "org.freedesktop.ScreenSaver.UnInhibit"
	applicationName = "promocast"
)

// ScreenSaverInhibitor talks to org.freedesktop.ScreenSaver on the session bus
type ScreenSaverInhibitor struct {
	logger  *zap.Logger
	connect func() (DBusClient, error)

	mu     sync.Mutex
	conn   DBusClient
	cookie uint32
	held   bool
}

// NewScreenSaverInhibitor creates an inhibitor that connects lazily
func NewScreenSaverInhibitor(logger *zap.Logger) *ScreenSaverInhibitor {
	return &ScreenSaverInhibitor{
		logger: logger,
		connect: func() (DBusClient, error) {
			return NewStdDBusClient()
		},
	}
}

// Inhibit takes an inhibition cookie. Calling it while one is held is a no-op.
func (s *ScreenSaverInhibitor) Inhibit(ctx context.Context, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.held {
		return nil
	}

	if s.conn == nil {
		conn, err := s.connect()
		if err != nil {
			return fmt.Errorf("session bus connection failed: %w", err)
		}
		s.conn = conn
	}

	var cookie uint32
	if err := s.conn.Call(ctx, screenSaverDest, screenSaverPath, inhibitMethod, &cookie, applicationName, reason); err != nil {
		return fmt.Errorf("screensaver inhibit: %w", err)
	}

	s.cookie = cookie
	s.held = true
	s.logger.Info("Screensaver inhibited", zap.Uint32("cookie", cookie), zap.String("reason", reason))
	return nil
}

// Release drops the held cookie, it is a no-op when none is held
func (s *ScreenSaverInhibitor) Release(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.releaseLocked(ctx)
}

func (s *ScreenSaverInhibitor) releaseLocked(ctx context.Context) error {
	if !s.held {
		return nil
	}
	// the cookie is gone either way once the call is attempted
	s.held = false

	if err := s.conn.Call(ctx, screenSaverDest, screenSaverPath, unInhibitMethod, nil, s.cookie); err != nil {
		return fmt.Errorf("screensaver uninhibit: %w", err)
	}

	s.logger.Info("Screensaver inhibition released", zap.Uint32("cookie", s.cookie))
	return nil
}

// Close releases any inhibition and closes the bus connection
func (s *ScreenSaverInhibitor) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.releaseLocked(ctx)
	if s.conn != nil {
		err = multierr.Append(err, s.conn.Close())
		s.conn = nil
	}
	return err
}
