package views

import (
	"github.com/charmbracelet/lipgloss"

	"recipebook/internal/domain"
)

// Palette holds the colors of one theme variant
type Palette struct {
	Background  lipgloss.Color
	Text        lipgloss.Color
	Muted       lipgloss.Color // placeholders and secondary text
	Border      lipgloss.Color
	Accent      lipgloss.Color
	InputBg     lipgloss.Color
	ButtonText  lipgloss.Color
	Error       lipgloss.Color
	Success     lipgloss.Color
	SelectionBg lipgloss.Color
}

var palettes = map[domain.Theme]Palette{
	domain.ThemeLight: {
		Background:  lipgloss.Color("#ffffff"),
		Text:        lipgloss.Color("#000000"),
		Muted:       lipgloss.Color("#555555"),
		Border:      lipgloss.Color("#cccccc"),
		Accent:      lipgloss.Color("#6200ea"),
		InputBg:     lipgloss.Color("#f2f2f2"),
		ButtonText:  lipgloss.Color("#ffffff"),
		Error:       lipgloss.Color("#b00020"),
		Success:     lipgloss.Color("#2e7d32"),
		SelectionBg: lipgloss.Color("#e8ddff"),
	},
	domain.ThemeDark: {
		Background:  lipgloss.Color("#000000"),
		Text:        lipgloss.Color("#ffffff"),
		Muted:       lipgloss.Color("#aaaaaa"),
		Border:      lipgloss.Color("#444444"),
		Accent:      lipgloss.Color("#bb86fc"),
		InputBg:     lipgloss.Color("#1e1e1e"),
		ButtonText:  lipgloss.Color("#ffffff"),
		Error:       lipgloss.Color("#cf6679"),
		Success:     lipgloss.Color("#81c784"),
		SelectionBg: lipgloss.Color("#3700b3"),
	},
}

// PaletteFor returns the palette of a theme, light for unknown values
func PaletteFor(t domain.Theme) Palette {
	if p, ok := palettes[t]; ok {
		return p
	}
	return palettes[domain.ThemeLight]
}

// Styles contains all the style definitions for one theme
type Styles struct {
	Theme   domain.Theme
	Palette Palette

	Main        lipgloss.Style
	Title       lipgloss.Style
	Text        lipgloss.Style
	Dim         lipgloss.Style
	Input       lipgloss.Style
	InputFocus  lipgloss.Style
	Button      lipgloss.Style
	Link        lipgloss.Style
	Tab         lipgloss.Style
	TabActive   lipgloss.Style
	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	Section     lipgloss.Style
	Selected    lipgloss.Style
	Highlight   lipgloss.Style
	StatusError lipgloss.Style
	StatusOK    lipgloss.Style
	Spinner     lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates the styles for a theme
func NewStyles(t domain.Theme) *Styles {
	p := PaletteFor(t)
	base := lipgloss.NewStyle().Foreground(p.Text)

	return &Styles{
		Theme:   t,
		Palette: p,
		Main: lipgloss.NewStyle().
			Background(p.Background).
			Foreground(p.Text).
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text).
			MarginBottom(1),
		Text: base,
		Dim:  lipgloss.NewStyle().Foreground(p.Muted),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Background(p.InputBg).
			Padding(0, 1),
		InputFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Background(p.InputBg).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.ButtonText).
			Background(p.Accent).
			Padding(0, 4).
			MarginTop(1),
		Link: lipgloss.NewStyle().Foreground(p.Accent).Underline(true),
		Tab: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 2),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent).
			Padding(0, 2).
			Underline(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1).
			MarginTop(1),
		CardTitle:   lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		Section:     lipgloss.NewStyle().Bold(true).Foreground(p.Text).MarginTop(1),
		Selected:    lipgloss.NewStyle().Background(p.SelectionBg).Foreground(p.Text).Bold(true),
		Highlight:   lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		StatusError: lipgloss.NewStyle().Foreground(p.Error),
		StatusOK:    lipgloss.NewStyle().Foreground(p.Success),
		Spinner:     lipgloss.NewStyle().Foreground(p.Accent),
		Help:        lipgloss.NewStyle().Foreground(p.Muted),
	}
}
