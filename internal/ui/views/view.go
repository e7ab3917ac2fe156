package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"recipebook/internal/domain"
)

// Screen identifies the screen being shown
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenRecipes
	ScreenProfile
)

// LoginState is what the login screen needs to render
type LoginState struct {
	UsernameInput string // rendered text inputs
	PasswordInput string
	Focus         int // 0 username, 1 password, 2 submit button
	Submitting    bool
	NoticeTitle   string
	Notice        string
	NoticeIsError bool
}

// RecipesState is what the recipes screen needs to render
type RecipesState struct {
	SearchInput   string // rendered search bar
	SearchFocused bool
	Query         string
	Status        domain.FetchStatus
	Message       string
	Visible       []domain.Recipe
	Total         int // size of the ready set
	Cursor        int
	Offset        int
	ListHeight    int
	Spinner       string
}

// ProfileState is what the profile screen needs to render
type ProfileState struct {
	User *domain.User
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width      int
	Height     int
	Screen     Screen
	Login      LoginState
	Recipes    RecipesState
	Profile    ProfileState
	HelpView   string
	StatusLine string
}

// Renderer handles all view rendering for one theme
type Renderer struct {
	styles       *Styles
	recipeRender *RecipeRenderer
}

// NewRenderer creates a renderer for a theme
func NewRenderer(theme domain.Theme) *Renderer {
	styles := NewStyles(theme)
	return &Renderer{
		styles:       styles,
		recipeRender: NewRecipeRenderer(styles),
	}
}

// Styles returns the styles the renderer draws with
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	switch state.Screen {
	case ScreenLogin:
		content.WriteString(r.renderLogin(state))
	case ScreenRecipes:
		content.WriteString(r.renderTabs(state))
		content.WriteString("\n\n")
		content.WriteString(r.renderRecipes(state))
	case ScreenProfile:
		content.WriteString(r.renderTabs(state))
		content.WriteString("\n\n")
		content.WriteString(r.renderProfile(state))
	}

	footer := state.HelpView
	if state.StatusLine != "" {
		footer = r.styles.Dim.Render(state.StatusLine) + "\n" + footer
	}

	if footer != "" {
		// Push the footer to the bottom of the screen
		currentLines := strings.Count(content.String(), "\n") + 1
		footerLines := strings.Count(footer, "\n") + 1
		availableLines := state.Height - 2 // Main style has vertical padding of 1
		if padding := availableLines - currentLines - footerLines; padding > 0 {
			content.WriteString(strings.Repeat("\n", padding))
		} else {
			content.WriteString("\n")
		}
		content.WriteString(footer)
	}

	mainStyle := r.styles.Main
	if state.Width > 0 {
		mainStyle = mainStyle.Width(state.Width)
	}
	if state.Height > 0 {
		mainStyle = mainStyle.Height(state.Height).MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

func (r *Renderer) renderTabs(state ViewState) string {
	tabs := []struct {
		name   string
		screen Screen
	}{
		{"Recipes", ScreenRecipes},
		{"Profile", ScreenProfile},
	}

	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t.screen == state.Screen {
			parts = append(parts, r.styles.TabActive.Render(t.name))
		} else {
			parts = append(parts, r.styles.Tab.Render(t.name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (r *Renderer) renderRecipes(state ViewState) string {
	rs := state.Recipes
	var b strings.Builder

	b.WriteString(rs.SearchInput)
	b.WriteString("\n")

	switch rs.Status {
	case domain.FetchIdle, domain.FetchLoading:
		b.WriteString(r.styles.Spinner.Render(rs.Spinner))
		b.WriteString(" ")
		b.WriteString(r.styles.Dim.Render("Loading recipes..."))
		return b.String()
	case domain.FetchFailed:
		b.WriteString(r.styles.StatusError.Render(rs.Message))
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render("Press ctrl+r to try again."))
		return b.String()
	}

	if len(rs.Visible) == 0 {
		if strings.TrimSpace(rs.Query) == "" {
			b.WriteString(r.styles.Dim.Render("No recipes."))
		} else {
			b.WriteString(r.styles.Dim.Render(fmt.Sprintf("No recipes match %q.", rs.Query)))
		}
		return b.String()
	}

	b.WriteString(r.styles.Dim.Render(fmt.Sprintf("%d of %d recipes", len(rs.Visible), rs.Total)))
	b.WriteString("\n")

	height := rs.ListHeight
	if height <= 0 {
		height = len(rs.Visible)
	}
	end := rs.Offset + height
	if end > len(rs.Visible) {
		end = len(rs.Visible)
	}
	for i := rs.Offset; i < end; i++ {
		b.WriteString(r.recipeRender.RenderRow(rs.Visible[i], i == rs.Cursor, rs.Query, state.Width))
		b.WriteString("\n")
	}
	if end < len(rs.Visible) {
		b.WriteString(r.styles.Dim.Render(fmt.Sprintf("  ... %d more", len(rs.Visible)-end)))
		b.WriteString("\n")
	}

	if rs.Cursor >= 0 && rs.Cursor < len(rs.Visible) {
		b.WriteString(r.recipeRender.RenderCard(rs.Visible[rs.Cursor], state.Width))
	}
	return b.String()
}
