package views

import (
	"fmt"
	"strings"
)

func (r *Renderer) renderProfile(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Welcome to the Profile Screen!"))
	b.WriteString("\n")

	user := state.Profile.User
	if user == nil {
		b.WriteString(r.styles.Dim.Render("Not signed in."))
		return b.String()
	}

	b.WriteString(r.styles.Text.Render(fmt.Sprintf("Name: %s", user.DisplayName())))
	b.WriteString("\n")
	b.WriteString(r.styles.Text.Render(fmt.Sprintf("Username: %s", user.Username)))
	b.WriteString("\n")
	if user.Email != "" {
		b.WriteString(r.styles.Text.Render(fmt.Sprintf("Email: %s", user.Email)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(r.styles.Link.Render(ThemeToggleLabel(r.styles.Theme)))
	return b.String()
}
