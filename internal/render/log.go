package render

import (
	"sync"

	"github.com/genricoloni/promocast/internal/domain"
	"go.uber.org/zap"
)

// LogRenderer writes slide changes to the log. Progress-only frames are
// not logged.
type LogRenderer struct {
	logger *zap.Logger

	mu        sync.Mutex
	lastIndex int
	lastPhase domain.Phase
	shown     bool
}

// NewLogRenderer creates a renderer that logs through logger
func NewLogRenderer(logger *zap.Logger) *LogRenderer {
	return &LogRenderer{logger: logger, lastIndex: -1}
}

// Render implements domain.Renderer
func (l *LogRenderer) Render(frame domain.Frame) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch frame.Phase {
	case domain.PhaseExited:
		if l.lastPhase != domain.PhaseExited {
			l.logger.Info("Presentation closed", zap.Int("lastSlide", frame.Index))
		}
		l.shown = false
		l.lastIndex = -1

	case domain.PhaseShowing:
		if !l.shown || frame.Index != l.lastIndex {
			l.logger.Info("Showing slide",
				zap.Int("slide", frame.Index+1),
				zap.Int("of", frame.Count),
				zap.String("kind", string(frame.Item.Kind)),
				zap.String("title", frame.Item.Title()),
				zap.String("store", frame.Store.Name))
		}
		l.shown = true
		l.lastIndex = frame.Index

	case domain.PhaseTransitioning:
		if l.lastPhase != domain.PhaseTransitioning {
			l.logger.Debug("Hiding slide", zap.Int("slide", frame.Index+1))
		}
		l.shown = false
	}

	l.lastPhase = frame.Phase
}
