package tui

import "github.com/genricoloni/promocast/internal/domain"

// FrameMsg carries a carousel frame into the program.
type FrameMsg struct {
	Frame domain.Frame
}

// marqueeTickMsg scrolls the ticker line one step.
type marqueeTickMsg struct{}
