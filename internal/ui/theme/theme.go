package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: warm earth tones, herbal green for balance.
var (
	Primary   = lipgloss.Color("#D97706") // Amber
	Secondary = lipgloss.Color("#4D7C0F") // Herbal green
	Accent    = lipgloss.Color("#FBBF24") // Gold
	Success   = lipgloss.Color("#65A30D") // Leaf
	Warning   = lipgloss.Color("#F59E0B") // Ochre
	Error     = lipgloss.Color("#DC2626") // Cinnabar
	Text      = lipgloss.Color("#F5F5F4") // Rice paper
	TextDim   = lipgloss.Color("#A8A29E") // Stone
	BgDark    = lipgloss.Color("#1C1917") // Ink
	BgCard    = lipgloss.Color("#292524") // Dark stone
	Border    = lipgloss.Color("#44403C") // Stone
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Chosen = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	Notice = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

// ScoreStyle returns the bar style for a skewed constitution score:
// red when affirmed, ochre when leaning, green otherwise.
func ScoreStyle(score, affirmed, leaning float64) lipgloss.Style {
	switch {
	case score >= affirmed:
		return lipgloss.NewStyle().Background(Error)
	case score >= leaning:
		return lipgloss.NewStyle().Background(Warning)
	default:
		return lipgloss.NewStyle().Background(Success)
	}
}
