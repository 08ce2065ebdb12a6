// Package tui presents the carousel in the terminal and turns key presses
// into carousel controls.
package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/genricoloni/promocast/internal/config"
	"github.com/genricoloni/promocast/internal/domain"
)

const (
	defaultWidth    = 80
	defaultBodyRows = 12
	reservedRows    = 7
	marqueeInterval = 150 * time.Millisecond
	maxDots         = 30
)

// Model is the bubbletea model for a playback session.
type Model struct {
	controls domain.Controls

	frame    domain.Frame
	hasFrame bool
	duration int

	width   int
	height  int
	marquee int

	quitting bool
}

// New creates a model that sends navigation to controls.
func New(controls domain.Controls, durationSeconds int) Model {
	return Model{
		controls: controls,
		duration: config.ClampDuration(durationSeconds),
	}
}

// Init starts the marquee.
func (m Model) Init() tea.Cmd {
	return marqueeTickCmd()
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case FrameMsg:
		m.frame = msg.Frame
		m.hasFrame = true
		if msg.Frame.Phase == domain.PhaseExited {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case marqueeTickMsg:
		if m.quitting {
			return m, nil
		}
		m.marquee++
		return m, marqueeTickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey processes key presses. Controls run inside commands because
// the player renders synchronously and would wait on this loop.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	switch key := msg.String(); key {
	case KeyQuit, KeyQuitUpper, KeyEsc, KeyCtrlC:
		m.quitting = true
		return m, tea.Sequence(exitCmd(m.controls), tea.Quit)

	case KeyRight, KeyL, KeySpace:
		return m, nextCmd(m.controls)

	case KeyLeft, KeyH:
		return m, prevCmd(m.controls)

	case KeySlower, KeySlowerAlt:
		return m.changeDuration(1)

	case KeyFaster:
		return m.changeDuration(-1)

	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			return m, jumpCmd(m.controls, int(key[0]-'1'))
		}
	}

	return m, nil
}

func (m Model) changeDuration(delta int) (tea.Model, tea.Cmd) {
	next := config.ClampDuration(m.duration + delta)
	if next == m.duration {
		return m, nil
	}
	m.duration = next
	return m, setDurationCmd(m.controls, next)
}

// View renders the current slide.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.hasFrame {
		return DimStyle.Render("Preparando presentación...")
	}

	f := m.frame
	width := m.contentWidth()
	theme := hexColor(f.Item.ThemeColor(), lipgloss.Color(domain.DefaultThemeColor))

	var sections []string
	sections = append(sections, m.renderHeader(width, theme))
	sections = append(sections, "")
	sections = append(sections, m.renderBody(width, m.bodyHeight()))
	sections = append(sections, progressBar(f.Progress, width, theme))

	if dots := indicators(f.Index, f.Count, theme); dots != "" {
		sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, dots))
	}
	if f.Store.Address != "" {
		sections = append(sections, AddressLabelStyle.Render("VISÍTANOS EN")+"  "+AddressStyle.Render(f.Store.Address))
	}
	if f.Item.Kind == domain.KindProduct {
		sections = append(sections, marqueeLine(marqueeSegment(*f.Item.Product), m.marquee, width))
	}
	sections = append(sections, m.renderHelp())

	return strings.Join(sections, "\n")
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m Model) bodyHeight() int {
	if m.height <= 0 {
		return defaultBodyRows
	}
	return max(6, m.height-reservedRows)
}

func (m Model) renderHeader(width int, theme lipgloss.Color) string {
	f := m.frame
	badge := StoreBadgeStyle.
		Background(hexColor(f.Store.LogoColor, theme)).
		Render(strings.ToUpper(f.Store.Name))

	counter := CounterStyle.Render(fmt.Sprintf("%d/%d", f.Index+1, f.Count))
	gap := width - lipgloss.Width(badge) - lipgloss.Width(counter)
	if gap < 1 {
		gap = 1
	}
	return badge + strings.Repeat(" ", gap) + counter
}

// renderBody leaves the area empty while the slide is hidden
func (m Model) renderBody(width, height int) string {
	box := lipgloss.NewStyle().Width(width).Height(height)
	f := m.frame
	if !f.Visible {
		return box.Render("")
	}

	switch f.Item.Kind {
	case domain.KindProduct:
		return box.Render(renderProduct(*f.Item.Product, width))
	case domain.KindAnnouncement:
		return renderAnnouncement(*f.Item.Announcement, width, height)
	}
	return box.Render("")
}

func renderProduct(p domain.Product, width int) string {
	theme := hexColor(p.ThemeColor(), lipgloss.Color(domain.DefaultThemeColor))
	unit := strings.ToUpper(string(p.Unit))

	var lines []string
	if label := p.PromotionLabel(); label != "" {
		lines = append(lines, PromotionStyle.Render(label), "")
	}
	lines = append(lines, NameStyle.Render(strings.ToUpper(p.Name)))
	if p.Slogan != "" {
		lines = append(lines, SloganStyle.Foreground(theme).Render(`"`+p.Slogan+`"`))
	}
	lines = append(lines, "", DescriptionStyle.Width(width).Render(p.DisplayDescription()), "")
	lines = append(lines, PriceLabelStyle.Render("PRECIO POR "+unit))
	lines = append(lines, PriceStyle.Foreground(theme).Render("$ "+domain.FormatPrice(p.Price))+
		PriceLabelStyle.Render(" / "+unit))

	return strings.Join(lines, "\n")
}

func renderAnnouncement(a domain.Announcement, width, height int) string {
	bg := hexColor(a.BackgroundColor, ColorSlate)
	fg := hexColor(a.TextColor, ColorWhite)
	align := textAlign(a.TextAlign)

	var parts []string
	if a.Title != "" {
		parts = append(parts, lipgloss.NewStyle().Bold(true).Render(strings.ToUpper(a.Title)))
	}
	if a.Title != "" && a.Message != "" {
		parts = append(parts, "")
	}
	if a.Message != "" {
		parts = append(parts, a.Message)
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(1, 4).
		Background(bg).
		Foreground(fg).
		Align(align).
		AlignVertical(lipgloss.Center).
		Render(strings.Join(parts, "\n"))
}

func (m Model) renderHelp() string {
	return HelpStyle.Render(fmt.Sprintf("←/→ navegar · 1-9 ir a · +/- duración (%ds) · q salir", m.duration))
}

func progressBar(fraction float64, width int, theme lipgloss.Color) string {
	filled := int(math.Round(fraction * float64(width)))
	filled = min(max(filled, 0), width)
	return lipgloss.NewStyle().Foreground(theme).Render(strings.Repeat("━", filled)) +
		ProgressEmptyStyle.Render(strings.Repeat("─", width-filled))
}

// indicators draws one mark per slide, falling back to a counter for
// playlists too long to fit
func indicators(index, count int, active lipgloss.Color) string {
	if count <= 1 {
		return ""
	}
	if count > maxDots {
		return IndicatorActiveStyle.Foreground(active).Render(fmt.Sprintf("%d / %d", index+1, count))
	}
	dots := make([]string, count)
	for i := range dots {
		if i == index {
			dots[i] = IndicatorActiveStyle.Foreground(active).Render("━━")
		} else {
			dots[i] = IndicatorStyle.Render("•")
		}
	}
	return strings.Join(dots, " ")
}

func marqueeSegment(p domain.Product) string {
	return strings.ToUpper(p.Name) + " • " + p.MarqueeTag() + " • CALIDAD PREMIUM • "
}

// marqueeLine returns a width-wide window of the repeated segment,
// shifted by offset runes
func marqueeLine(segment string, offset, width int) string {
	seg := []rune(segment)
	if len(seg) == 0 || width <= 0 {
		return ""
	}
	start := offset % len(seg)
	line := make([]rune, width)
	for i := range line {
		line[i] = seg[(start+i)%len(seg)]
	}
	return MarqueeStyle.Render(string(line))
}

func textAlign(align string) lipgloss.Position {
	switch align {
	case "left", "text-left":
		return lipgloss.Left
	case "right", "text-right":
		return lipgloss.Right
	}
	return lipgloss.Center
}

// hexColor accepts #rgb and #rrggbb, anything else yields fallback
func hexColor(s string, fallback lipgloss.Color) lipgloss.Color {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return fallback
	}
	if _, err := strconv.ParseUint(s[1:], 16, 32); err != nil {
		return fallback
	}
	return lipgloss.Color(s)
}

func marqueeTickCmd() tea.Cmd {
	return tea.Tick(marqueeInterval, func(time.Time) tea.Msg {
		return marqueeTickMsg{}
	})
}

func nextCmd(c domain.Controls) tea.Cmd {
	return func() tea.Msg {
		c.Next()
		return nil
	}
}

func prevCmd(c domain.Controls) tea.Cmd {
	return func() tea.Msg {
		c.Prev()
		return nil
	}
}

func jumpCmd(c domain.Controls, index int) tea.Cmd {
	return func() tea.Msg {
		c.JumpTo(index)
		return nil
	}
}

func setDurationCmd(c domain.Controls, seconds int) tea.Cmd {
	return func() tea.Msg {
		c.SetDuration(seconds)
		return nil
	}
}

func exitCmd(c domain.Controls) tea.Cmd {
	return func() tea.Msg {
		c.Exit()
		return nil
	}
}
