package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Mode is the color mode preference. It only affects rendering.
type Mode int

const (
	Dark Mode = iota
	Light
)

func (m Mode) String() string {
	if m == Light {
		return "light"
	}
	return "dark"
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == Light {
		return Dark
	}
	return Light
}

// ParseMode maps "light" to Light and anything else to Dark.
func ParseMode(s string) Mode {
	if s == "light" {
		return Light
	}
	return Dark
}

type palette struct {
	primary, secondary, accent, success, errorC, warning color.Color
	text, textDim, bgDark, bgCard, border                color.Color
}

var palettes = map[Mode]palette{
	Dark: {
		primary:   lipgloss.Color("#8B5CF6"), // Vivid Purple
		secondary: lipgloss.Color("#3B82F6"), // Blue
		accent:    lipgloss.Color("#F97316"), // Orange
		success:   lipgloss.Color("#22C55E"),
		errorC:    lipgloss.Color("#F43F5E"),
		warning:   lipgloss.Color("#EAB308"),
		text:      lipgloss.Color("#F8FAFC"),
		textDim:   lipgloss.Color("#94A3B8"),
		bgDark:    lipgloss.Color("#0F172A"),
		bgCard:    lipgloss.Color("#1E293B"),
		border:    lipgloss.Color("#334155"),
	},
	Light: {
		primary:   lipgloss.Color("#6D28D9"),
		secondary: lipgloss.Color("#2563EB"),
		accent:    lipgloss.Color("#C2410C"),
		success:   lipgloss.Color("#15803D"),
		errorC:    lipgloss.Color("#BE123C"),
		warning:   lipgloss.Color("#A16207"),
		text:      lipgloss.Color("#0F172A"),
		textDim:   lipgloss.Color("#475569"),
		bgDark:    lipgloss.Color("#F8FAFC"),
		bgCard:    lipgloss.Color("#E2E8F0"),
		border:    lipgloss.Color("#CBD5E1"),
	},
}

var current = Dark

// Color palette, swapped by Apply.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Warning   color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressLow    lipgloss.Style
	ProgressEmpty  lipgloss.Style
	Card           lipgloss.Style
)

func init() {
	Apply(Dark)
}

// Current returns the active mode.
func Current() Mode {
	return current
}

// Apply switches the palette and rebuilds the derived styles. Call it from the
// UI goroutine only.
func Apply(m Mode) {
	p, ok := palettes[m]
	if !ok {
		m, p = Dark, palettes[Dark]
	}
	current = m

	Primary, Secondary, Accent = p.primary, p.secondary, p.accent
	Success, Error, Warning = p.success, p.errorC, p.warning
	Text, TextDim = p.text, p.textDim
	BgDark, BgCard, Border = p.bgDark, p.bgCard, p.border

	Title = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body = lipgloss.NewStyle().Foreground(Text)
	Hint = lipgloss.NewStyle().Foreground(TextDim).Italic(true)

	Selected = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Correct = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect = lipgloss.NewStyle().Foreground(Error).Bold(true)

	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressLow = lipgloss.NewStyle().Background(Error)
	ProgressEmpty = lipgloss.NewStyle().Background(Border)
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
}
