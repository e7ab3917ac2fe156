package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	ToggleTheme key.Binding
	SwitchTab   key.Binding
	NextField   key.Binding
	PrevField   key.Binding
	Submit      key.Binding
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Home        key.Binding
	End         key.Binding
	Open        key.Binding
	Search      key.Binding
	Blur        key.Binding
	Reload      key.Binding
	Logout      key.Binding
	Help        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		ToggleTheme: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "theme")),
		SwitchTab:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch tab")),
		NextField:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "login")),
		Up:          key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:         key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Open:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Blur:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave search")),
		Reload:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
		Logout:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "logout")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func (k keyMap) loginHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.ToggleTheme, k.ForceQuit}
}

func (k keyMap) recipesHelp(searching bool) []key.Binding {
	if searching {
		return []key.Binding{k.Up, k.Down, k.Open, k.Blur, k.Reload, k.SwitchTab, k.ToggleTheme, k.ForceQuit}
	}
	return []key.Binding{k.Up, k.Down, k.Open, k.Search, k.Reload, k.SwitchTab, k.Help, k.Quit}
}

func (k keyMap) profileHelp() []key.Binding {
	return []key.Binding{k.Logout, k.SwitchTab, k.ToggleTheme, k.Help, k.Quit}
}
