package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"recipebook/internal/domain"
)

const (
	loginFocusUsername = iota
	loginFocusPassword
	loginFocusSubmit
)

func (r *Renderer) renderLogin(state ViewState) string {
	ls := state.Login
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("Login"))
	b.WriteString("\n")

	b.WriteString(r.inputBox(ls.UsernameInput, ls.Focus == loginFocusUsername))
	b.WriteString("\n")
	b.WriteString(r.inputBox(ls.PasswordInput, ls.Focus == loginFocusPassword))
	b.WriteString("\n")

	label := "Login"
	if ls.Submitting {
		label = "Signing in..."
	}
	button := r.styles.Button
	if ls.Focus == loginFocusSubmit {
		button = button.Underline(true)
	}
	b.WriteString(button.Render(label))
	b.WriteString("\n\n")

	b.WriteString(r.styles.Link.Render(ThemeToggleLabel(r.styles.Theme)))
	b.WriteString("\n")

	if ls.Notice != "" {
		b.WriteString("\n")
		style := r.styles.StatusOK
		if ls.NoticeIsError {
			style = r.styles.StatusError
		}
		notice := ls.Notice
		if ls.NoticeTitle != "" {
			notice = ls.NoticeTitle + ": " + ls.Notice
		}
		b.WriteString(style.Render(notice))
	}

	return lipgloss.NewStyle().Width(inputWidth(state.Width)).Render(b.String())
}

func (r *Renderer) inputBox(rendered string, focused bool) string {
	if focused {
		return r.styles.InputFocus.Render(rendered)
	}
	return r.styles.Input.Render(rendered)
}

// ThemeToggleLabel is the text of the theme switch for the current theme
func ThemeToggleLabel(current domain.Theme) string {
	if current == domain.ThemeDark {
		return "Switch to Light Theme"
	}
	return "Switch to Dark Theme"
}

func inputWidth(width int) int {
	const maxWidth = 60
	if width <= 0 || width-4 > maxWidth {
		return maxWidth
	}
	return width - 4
}
