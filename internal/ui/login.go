package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"recipebook/internal/ui/services/session"
	"recipebook/internal/ui/views"
)

const (
	focusUsername = iota
	focusPassword
	focusSubmit
	loginFields
)

// loginForm holds the state of the login screen
type loginForm struct {
	username   textinput.Model
	password   textinput.Model
	focus      int
	submitting bool
	result     *session.Result
}

func newLoginForm(styles *views.Styles) *loginForm {
	username := textinput.New()
	username.Placeholder = "Username"
	username.Prompt = ""
	username.CharLimit = 64

	password := textinput.New()
	password.Placeholder = "Password"
	password.Prompt = ""
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	f := &loginForm{username: username, password: password}
	f.applyStyles(styles)
	f.username.Focus()
	return f
}

func (f *loginForm) applyStyles(styles *views.Styles) {
	for _, ti := range []*textinput.Model{&f.username, &f.password} {
		ti.TextStyle = styles.Text
		ti.PlaceholderStyle = styles.Dim
		ti.Cursor.Style = styles.Text
	}
}

// setFocus moves focus to a field and returns the cursor blink command
func (f *loginForm) setFocus(field int) tea.Cmd {
	f.focus = (field + loginFields) % loginFields
	f.username.Blur()
	f.password.Blur()
	switch f.focus {
	case focusUsername:
		return f.username.Focus()
	case focusPassword:
		return f.password.Focus()
	}
	return nil
}

// update forwards a message to the focused input
func (f *loginForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focus {
	case focusUsername:
		f.username, cmd = f.username.Update(msg)
	case focusPassword:
		f.password, cmd = f.password.Update(msg)
	}
	return cmd
}

func (f *loginForm) setWidth(width int) {
	w := width - 12
	if w > 50 {
		w = 50
	}
	if w < 10 {
		w = 10
	}
	f.username.Width = w
	f.password.Width = w
}

func (f *loginForm) viewState() views.LoginState {
	ls := views.LoginState{
		UsernameInput: f.username.View(),
		PasswordInput: f.password.View(),
		Focus:         f.focus,
		Submitting:    f.submitting,
	}
	if f.result != nil {
		ls.NoticeTitle = f.result.Title
		ls.Notice = f.result.Notice
		ls.NoticeIsError = !f.result.OK()
	}
	return ls
}
