package tui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the presentation.
var (
	ColorWhite   = lipgloss.Color("#FFFFFF")
	ColorGray    = lipgloss.Color("#666666")
	ColorDimGray = lipgloss.Color("#444444")
	ColorSlate   = lipgloss.Color("#1E293B")
	ColorYellow  = lipgloss.Color("#FACC15")
	ColorRed     = lipgloss.Color("#E11D48")
)

// Base styles reused by the slide views.
var (
	StoreBadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(ColorWhite)

	CounterStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	PromotionStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Foreground(ColorWhite).
			Background(ColorRed)

	NameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite)

	SloganStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(ColorYellow)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(ColorGray)

	PriceLabelStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	PriceStyle = lipgloss.NewStyle().
			Bold(true)

	AddressLabelStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorGray)

	AddressStyle = lipgloss.NewStyle().
			Foreground(ColorWhite)

	IndicatorActiveStyle = lipgloss.NewStyle().
				Bold(true)

	IndicatorStyle = lipgloss.NewStyle().
			Foreground(ColorDimGray)

	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(ColorDimGray)

	MarqueeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSlate).
			Background(ColorYellow)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorDimGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)
)
