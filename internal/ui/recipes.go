package ui

import (
	"context"
	"log"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"recipebook/internal/domain"
	"recipebook/internal/eventbus"
	"recipebook/internal/ui/services/fetch"
	"recipebook/internal/ui/services/navigation"
	"recipebook/internal/ui/services/search"
	"recipebook/internal/ui/views"
)

// recipesScreen is one instance of the recipe list. Each instance owns its
// fetch controller, so results addressed to a closed instance are dropped.
type recipesScreen struct {
	id      string
	fetch   *fetch.Service
	search  *search.Service
	nav     *navigation.Service
	input   textinput.Model
	spinner spinner.Model
}

func newRecipesScreen(source fetch.Source, bus eventbus.EventBus, styles *views.Styles, listHeight int) *recipesScreen {
	id := uuid.NewString()
	fs := fetch.NewService(source, bus, id)

	input := textinput.New()
	input.Placeholder = "Search Recipes..."
	input.Prompt = "/ "
	input.CharLimit = 128

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	s := &recipesScreen{
		id:      id,
		fetch:   fs,
		search:  search.NewService(fs, bus, id),
		input:   input,
		spinner: sp,
	}
	s.nav = navigation.NewService(listHeight, func() int { return len(s.search.Visible()) })
	s.applyStyles(styles)
	s.input.Focus()
	return s
}

func (s *recipesScreen) applyStyles(styles *views.Styles) {
	s.input.TextStyle = styles.Text
	s.input.PlaceholderStyle = styles.Dim
	s.input.PromptStyle = styles.Dim
	s.input.Cursor.Style = styles.Text
	s.spinner.Style = styles.Spinner
}

// load starts a fetch. The screen is Loading as soon as load returns; the
// command settles the request.
func (s *recipesScreen) load(ctx context.Context) tea.Cmd {
	req := s.fetch.Begin()
	owner := s.id
	fetchCmd := func() tea.Msg {
		return fetchSettledMsg{owner: owner, state: req.Do(ctx)}
	}
	return tea.Batch(fetchCmd, s.spinner.Tick)
}

func (s *recipesScreen) close() {
	log.Printf("recipes[%s]: closing", s.id)
	s.fetch.Close()
}

func (s *recipesScreen) loading() bool {
	st := s.fetch.State().Status
	return st == domain.FetchIdle || st == domain.FetchLoading
}

// updateInput forwards a message to the search bar and refilters when the
// text changed
func (s *recipesScreen) updateInput(msg tea.Msg) tea.Cmd {
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.search.SetQuery(s.input.Value())
		s.nav.Reset()
	}
	return cmd
}

func (s *recipesScreen) selected() (domain.Recipe, bool) {
	visible := s.search.Visible()
	cursor := s.nav.Cursor()
	if cursor < 0 || cursor >= len(visible) {
		return domain.Recipe{}, false
	}
	return visible[cursor], true
}

func (s *recipesScreen) viewState() views.RecipesState {
	st := s.fetch.State()
	return views.RecipesState{
		SearchInput:   s.input.View(),
		SearchFocused: s.input.Focused(),
		Query:         s.search.Query(),
		Status:        st.Status,
		Message:       st.Message,
		Visible:       search.Filter(st, s.search.Query()),
		Total:         len(st.Recipes),
		Cursor:        s.nav.Cursor(),
		Offset:        s.nav.ViewportOffset(),
		ListHeight:    s.nav.ViewportHeight(),
		Spinner:       s.spinner.View(),
	}
}
