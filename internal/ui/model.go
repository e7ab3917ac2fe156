package ui

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"recipebook/internal/config"
	"recipebook/internal/domain"
	"recipebook/internal/eventbus"
	"recipebook/internal/ui/services/fetch"
	"recipebook/internal/ui/services/navigation"
	"recipebook/internal/ui/services/session"
	"recipebook/internal/ui/services/theme"
	"recipebook/internal/ui/views"
)

var errNoPager = errors.New("pager not available")

// Client is the remote service the UI talks to
type Client interface {
	fetch.Source
	session.Authenticator
}

// Model represents the UI state
type Model struct {
	ctx     context.Context
	cfg     *config.Config
	bus     eventbus.EventBus
	source  fetch.Source
	session *session.Service
	theme   *theme.Service

	renderer *views.Renderer
	keys     keyMap
	help     help.Model
	pager    Pager
	program  *tea.Program

	width         int
	height        int
	screen        views.Screen
	login         *loginForm
	recipes       *recipesScreen
	statusMessage string
	inPagerMode   bool
}

// NewModel creates a new UI model. ctx bounds every request the UI makes.
func NewModel(ctx context.Context, cfg *config.Config, bus eventbus.EventBus, client Client) *Model {
	defaults := domain.Credentials{
		Username:      cfg.Login.Username,
		Password:      cfg.Login.Password,
		ExpiresInMins: cfg.API.ExpiresInMins,
	}
	themes := theme.NewService(cfg.ThemeValue(), bus)
	renderer := views.NewRenderer(themes.Current())

	return &Model{
		ctx:      ctx,
		cfg:      cfg,
		bus:      bus,
		source:   client,
		session:  session.NewService(client, bus, defaults),
		theme:    themes,
		renderer: renderer,
		keys:     newKeyMap(),
		help:     help.New(),
		screen:   views.ScreenLogin,
		login:    newLoginForm(renderer.Styles()),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager = NewPager(p)
}

// SetPager replaces the pager used for recipe details
func (m *Model) SetPager(p Pager) {
	m.pager = p
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.login.setWidth(msg.Width)
		if m.recipes != nil {
			m.recipes.input.Width = msg.Width - 12
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case loginResultMsg:
		return m.handleLoginResult(msg.result)

	case fetchSettledMsg:
		if m.recipes == nil || m.recipes.id != msg.owner {
			log.Printf("ui: ignoring fetch result for closed screen %s", msg.owner)
			return m, nil
		}
		m.recipes.nav.Clamp()
		return m, nil

	case spinner.TickMsg:
		if m.recipes == nil || !m.recipes.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.recipes.spinner, cmd = m.recipes.spinner.Update(msg)
		return m, cmd

	case EventMsg:
		return m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case recipePagerMsg:
		if msg.err != nil {
			log.Printf("Recipe pager failed for %d: %v", msg.recipeID, msg.err)
			m.statusMessage = fmt.Sprintf("Could not open recipe: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	default:
		// Cursor blink and other input messages
		switch m.screen {
		case views.ScreenLogin:
			return m, m.login.update(msg)
		case views.ScreenRecipes:
			if m.recipes != nil {
				return m, m.recipes.updateInput(msg)
			}
		}
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, m.quit()
	case key.Matches(msg, m.keys.ToggleTheme):
		m.applyTheme(m.theme.Toggle())
		return m, nil
	}

	switch m.screen {
	case views.ScreenLogin:
		return m.handleLoginKey(msg)
	case views.ScreenRecipes:
		return m.handleRecipesKey(msg)
	case views.ScreenProfile:
		return m.handleProfileKey(msg)
	}
	return m, nil
}

func (m *Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.login
	if f.submitting {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		if f.focus == focusUsername {
			return m, f.setFocus(focusPassword)
		}
		return m, m.submitLogin()
	case key.Matches(msg, m.keys.NextField):
		return m, f.setFocus(f.focus + 1)
	case key.Matches(msg, m.keys.PrevField):
		return m, f.setFocus(f.focus - 1)
	}
	return m, f.update(msg)
}

func (m *Model) submitLogin() tea.Cmd {
	m.login.submitting = true
	m.login.result = nil

	ctx, sess := m.ctx, m.session
	username, password := m.login.username.Value(), m.login.password.Value()
	return func() tea.Msg {
		return loginResultMsg{result: sess.Login(ctx, username, password)}
	}
}

func (m *Model) handleLoginResult(result session.Result) (tea.Model, tea.Cmd) {
	m.login.submitting = false
	m.login.result = &result
	if !result.OK() {
		return m, nil
	}

	m.statusMessage = result.Notice
	m.recipes = newRecipesScreen(m.source, m.bus, m.renderer.Styles(), m.cfg.UI.ListHeight)
	if m.width > 0 {
		m.recipes.input.Width = m.width - 12
	}
	m.screen = views.ScreenRecipes
	return m, tea.Batch(m.recipes.load(m.ctx), textinput.Blink)
}

func (m *Model) handleRecipesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rs := m.recipes
	if rs == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.SwitchTab):
		m.screen = views.ScreenProfile
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		rs.nav.Reset()
		return m, rs.load(m.ctx)
	case key.Matches(msg, m.keys.Up):
		rs.nav.Navigate(navigation.DirectionUp)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		rs.nav.Navigate(navigation.DirectionDown)
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		rs.nav.Navigate(navigation.DirectionPageUp)
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		rs.nav.Navigate(navigation.DirectionPageDown)
		return m, nil
	case key.Matches(msg, m.keys.Open):
		if recipe, ok := rs.selected(); ok {
			return m, m.openRecipe(recipe)
		}
		return m, nil
	}

	if rs.input.Focused() {
		if key.Matches(msg, m.keys.Blur) {
			rs.input.Blur()
			return m, nil
		}
		return m, rs.updateInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Home):
		rs.nav.Navigate(navigation.DirectionHome)
	case key.Matches(msg, m.keys.End):
		rs.nav.Navigate(navigation.DirectionEnd)
	case key.Matches(msg, m.keys.Search):
		return m, rs.input.Focus()
	case key.Matches(msg, m.keys.Help):
		return m, m.showHelp()
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	}
	return m, nil
}

func (m *Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.SwitchTab):
		m.screen = views.ScreenRecipes
	case key.Matches(msg, m.keys.Logout):
		return m, m.logout()
	case key.Matches(msg, m.keys.Help):
		return m, m.showHelp()
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	}
	return m, nil
}

// handleEvent processes domain events
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.ThemeChangedEvent:
		if m.renderer.Styles().Theme != e.Theme {
			m.theme.Set(e.Theme)
			m.applyTheme(e.Theme)
		}
	case eventbus.FetchStateChangedEvent:
		if m.recipes != nil && m.recipes.id == e.Owner {
			m.recipes.nav.Clamp()
		}
	case eventbus.LoginFailedEvent:
		log.Printf("ui: login failed (rejected=%t): %s", e.Rejected, e.Message)
	}
	return m, nil
}

func (m *Model) applyTheme(t domain.Theme) {
	m.renderer = views.NewRenderer(t)
	styles := m.renderer.Styles()
	m.login.applyStyles(styles)
	if m.recipes != nil {
		m.recipes.applyStyles(styles)
	}
}

func (m *Model) logout() tea.Cmd {
	m.session.Logout()
	if m.recipes != nil {
		m.recipes.close()
		m.recipes = nil
	}
	m.login = newLoginForm(m.renderer.Styles())
	m.login.setWidth(m.width)
	m.screen = views.ScreenLogin
	m.statusMessage = ""
	return textinput.Blink
}

func (m *Model) quit() tea.Cmd {
	if m.recipes != nil {
		m.recipes.close()
	}
	return tea.Quit
}

// openRecipe returns a command that shows a recipe using the pager
func (m *Model) openRecipe(recipe domain.Recipe) tea.Cmd {
	return m.fetchPager(views.RecipeDetail(recipe), func(err error) tea.Msg {
		return recipePagerMsg{recipeID: recipe.ID, err: err}
	})
}

// showHelp returns a command that shows the key reference using the pager
func (m *Model) showHelp() tea.Cmd {
	return m.fetchPager(newHelpRenderer(m.keys).RenderHelpContent(), func(err error) tea.Msg {
		return helpPagerMsg{err: err}
	})
}

// fetchPager returns a command that pages content, pausing and resuming rendering
func (m *Model) fetchPager(content string, done func(error) tea.Msg) tea.Cmd {
	pager, program := m.pager, m.program
	return func() tea.Msg {
		if pager == nil {
			return done(errNoPager)
		}
		// Send pause message to stop rendering
		if program != nil {
			program.Send(pauseRenderingMsg{})
		}

		err := pager.Show(content)

		// Send resume message to restart rendering
		if program != nil {
			program.Send(resumeRenderingMsg{})
		}
		return done(err)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	state := views.ViewState{
		Width:      m.width,
		Height:     m.height,
		Screen:     m.screen,
		StatusLine: m.statusMessage,
	}

	switch m.screen {
	case views.ScreenLogin:
		state.Login = m.login.viewState()
		state.HelpView = m.help.ShortHelpView(m.keys.loginHelp())
	case views.ScreenRecipes:
		if m.recipes != nil {
			state.Recipes = m.recipes.viewState()
			state.HelpView = m.help.ShortHelpView(m.keys.recipesHelp(m.recipes.input.Focused()))
		}
	case views.ScreenProfile:
		state.Profile = views.ProfileState{User: m.session.User()}
		state.HelpView = m.help.ShortHelpView(m.keys.profileHelp())
	}

	return m.renderer.Render(state)
}
