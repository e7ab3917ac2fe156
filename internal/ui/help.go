package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// helpRenderer renders the key reference
type helpRenderer struct {
	keys keyMap
}

// newHelpRenderer creates a help renderer for a key map
func newHelpRenderer(keys keyMap) *helpRenderer {
	return &helpRenderer{keys: keys}
}

// RenderHelpContent generates help content with colors for the pager
func (r *helpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	k := r.keys
	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Login", []key.Binding{k.NextField, k.PrevField, k.Submit}},
		{"Recipes", []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End, k.Open, k.Reload}},
		{"Search", []key.Binding{k.Search, k.Blur}},
		{"Profile", []key.Binding{k.Logout}},
		{"Other", []key.Binding{k.SwitchTab, k.ToggleTheme, k.Help, k.Quit, k.ForceQuit}},
	}

	var help strings.Builder
	help.WriteString(titleStyle.Render("Recipebook Help"))
	help.WriteString("\n")

	for i, section := range sections {
		help.WriteString(sectionStyle.Render(section.title))
		help.WriteString("\n")
		for _, b := range section.bindings {
			h := b.Help()
			help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-10s", h.Key)), descStyle.Render(h.Desc)))
		}
		if i < len(sections)-1 {
			help.WriteString("\n")
		}
	}

	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  Search matches recipe names, ignoring case."))

	return help.String()
}
