package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/genricoloni/promocast/internal/domain"
	"go.uber.org/zap"
)

// Renderer runs the terminal presentation and receives carousel frames.
type Renderer struct {
	logger  *zap.Logger
	program *tea.Program
	frames  chan domain.Frame // holds at most the latest undelivered frame
}

// NewRenderer builds the program. By default it takes over the alternate
// screen; opts are applied after that.
func NewRenderer(logger *zap.Logger, controls domain.Controls, durationSeconds int, opts ...tea.ProgramOption) *Renderer {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	return &Renderer{
		logger:  logger,
		program: tea.NewProgram(New(controls, durationSeconds), opts...),
		frames:  make(chan domain.Frame, 1),
	}
}

// Render implements domain.Renderer. It never waits on the program.
func (r *Renderer) Render(frame domain.Frame) {
	for {
		select {
		case r.frames <- frame:
			return
		default:
			select {
			case <-r.frames:
			default:
			}
		}
	}
}

// Run blocks until the session exits, the user quits or ctx is done.
func (r *Renderer) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go r.pump(ctx)

	r.logger.Info("Terminal presentation started")
	if _, err := r.program.Run(); err != nil {
		return fmt.Errorf("terminal presentation: %w", err)
	}
	r.logger.Info("Terminal presentation closed")
	return nil
}

// pump delivers frames to the program and quits it when ctx ends
func (r *Renderer) pump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			r.program.Quit()
			return
		case frame := <-r.frames:
			r.program.Send(FrameMsg{Frame: frame})
		}
	}
}
