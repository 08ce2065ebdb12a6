package tui

// Key binding constants used in handleKey.
const (
	KeyQuit      = "q"
	KeyQuitUpper = "Q"
	KeyEsc       = "esc"
	KeyCtrlC     = "ctrl+c"
	KeySpace     = " "
	KeyRight     = "right"
	KeyLeft      = "left"
	KeyL         = "l"
	KeyH         = "h"
	KeySlower    = "+"
	KeySlowerAlt = "="
	KeyFaster    = "-"
)
