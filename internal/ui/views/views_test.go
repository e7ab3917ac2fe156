package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipebook/internal/domain"
)

var recipes = []domain.Recipe{
	{
		ID: 1, Name: "Classic Margherita Pizza", Cuisine: "Italian", Difficulty: "Easy",
		PrepTimeMinutes: 20, CookTimeMinutes: 15, Servings: 4, CaloriesPerServing: 300,
		Rating: 4.6, ReviewCount: 98, Ingredients: []string{"Pizza dough", "Fresh basil"},
		Instructions: []string{"Preheat the oven", "Bake"}, Tags: []string{"Pizza"}, MealType: []string{"Dinner"},
	},
	{ID: 2, Name: "Chicken Tikka Masala", Cuisine: "Indian", Difficulty: "Medium", Rating: 4.8},
}

func render(theme domain.Theme, state ViewState) string {
	if state.Width == 0 {
		state.Width = 120
	}
	return NewRenderer(theme).Render(state)
}

func TestPaletteFor(t *testing.T) {
	light := PaletteFor(domain.ThemeLight)
	dark := PaletteFor(domain.ThemeDark)
	assert.Equal(t, "#ffffff", string(light.Background))
	assert.Equal(t, "#000000", string(light.Text))
	assert.Equal(t, "#000000", string(dark.Background))
	assert.Equal(t, "#ffffff", string(dark.Text))
	assert.Equal(t, light, PaletteFor("sepia"))
}

func TestNewStylesCarriesTheme(t *testing.T) {
	assert.Equal(t, domain.ThemeDark, NewStyles(domain.ThemeDark).Theme)
	assert.Equal(t, domain.ThemeDark, NewRenderer(domain.ThemeDark).Styles().Theme)
}

func TestThemeToggleLabel(t *testing.T) {
	assert.Equal(t, "Switch to Dark Theme", ThemeToggleLabel(domain.ThemeLight))
	assert.Equal(t, "Switch to Light Theme", ThemeToggleLabel(domain.ThemeDark))
}

func TestRenderLogin(t *testing.T) {
	out := render(domain.ThemeLight, ViewState{
		Screen: ScreenLogin,
		Login: LoginState{
			UsernameInput: "Username",
			PasswordInput: "Password",
			NoticeTitle:   "Login Failed",
			Notice:        "Invalid credentials",
			NoticeIsError: true,
		},
	})
	assert.Contains(t, out, "Login")
	assert.Contains(t, out, "Username")
	assert.Contains(t, out, "Password")
	assert.Contains(t, out, "Switch to Dark Theme")
	assert.Contains(t, out, "Login Failed: Invalid credentials")

	dark := render(domain.ThemeDark, ViewState{Screen: ScreenLogin, Login: LoginState{Submitting: true}})
	assert.Contains(t, dark, "Switch to Light Theme")
	assert.Contains(t, dark, "Signing in...")
}

func TestRenderRecipesLoading(t *testing.T) {
	out := render(domain.ThemeLight, ViewState{
		Screen:  ScreenRecipes,
		Recipes: RecipesState{SearchInput: "Search Recipes...", Status: domain.FetchLoading, Spinner: "*"},
	})
	assert.Contains(t, out, "Recipes")
	assert.Contains(t, out, "Profile")
	assert.Contains(t, out, "Search Recipes...")
	assert.Contains(t, out, "Loading recipes...")
}

func TestRenderRecipesFailedIsDistinctFromNoMatches(t *testing.T) {
	failed := render(domain.ThemeLight, ViewState{
		Screen:  ScreenRecipes,
		Recipes: RecipesState{Status: domain.FetchFailed, Message: "Something went wrong. Please try again later."},
	})
	assert.Contains(t, failed, "Something went wrong. Please try again later.")
	assert.NotContains(t, failed, "No recipes match")

	noMatch := render(domain.ThemeLight, ViewState{
		Screen:  ScreenRecipes,
		Recipes: RecipesState{Status: domain.FetchReady, Query: "xyz", Visible: []domain.Recipe{}, Total: 2},
	})
	assert.Contains(t, noMatch, `No recipes match "xyz".`)
	assert.NotContains(t, noMatch, "Something went wrong")

	empty := render(domain.ThemeLight, ViewState{
		Screen:  ScreenRecipes,
		Recipes: RecipesState{Status: domain.FetchReady},
	})
	assert.Contains(t, empty, "No recipes.")
}

func TestRenderRecipesReady(t *testing.T) {
	out := render(domain.ThemeLight, ViewState{
		Screen: ScreenRecipes,
		Recipes: RecipesState{
			Status:     domain.FetchReady,
			Visible:    recipes,
			Total:      2,
			Cursor:     0,
			ListHeight: 10,
		},
	})
	assert.Contains(t, out, "2 of 2 recipes")
	assert.Contains(t, out, "> Classic Margherita Pizza")
	assert.Contains(t, out, "Chicken Tikka Masala")
	assert.Contains(t, out, "Cuisine: Italian")
	assert.Contains(t, out, "Prep Time: 20 minutes")
	assert.Contains(t, out, "Rating: 4.6 (98 reviews)")
	assert.True(t, strings.Index(out, "Classic Margherita Pizza") < strings.Index(out, "Chicken Tikka Masala"))
}

func TestRenderRecipesWindow(t *testing.T) {
	out := render(domain.ThemeLight, ViewState{
		Screen: ScreenRecipes,
		Recipes: RecipesState{
			Status:     domain.FetchReady,
			Visible:    recipes,
			Total:      2,
			Cursor:     1,
			Offset:     1,
			ListHeight: 1,
		},
	})
	assert.Contains(t, out, "> Chicken Tikka Masala")
	assert.NotContains(t, out, "Classic Margherita Pizza")
}

func TestRenderProfile(t *testing.T) {
	out := render(domain.ThemeDark, ViewState{
		Screen:  ScreenProfile,
		Profile: ProfileState{User: &domain.User{Username: "emilys", FirstName: "Emily", LastName: "Johnson", Email: "emily@x.com"}},
	})
	assert.Contains(t, out, "Welcome to the Profile Screen!")
	assert.Contains(t, out, "Name: Emily Johnson")
	assert.Contains(t, out, "Email: emily@x.com")

	anon := render(domain.ThemeLight, ViewState{Screen: ScreenProfile})
	assert.Contains(t, anon, "Not signed in.")
}

func TestRenderFooter(t *testing.T) {
	out := render(domain.ThemeLight, ViewState{
		Screen:     ScreenProfile,
		Height:     30,
		HelpView:   "q quit",
		StatusLine: "Welcome, emilys!",
	})
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 30)
	assert.Contains(t, out, "q quit")
	assert.Contains(t, out, "Welcome, emilys!")
}

func TestRecipeDetail(t *testing.T) {
	detail := RecipeDetail(recipes[0])
	assert.True(t, strings.HasPrefix(detail, "Classic Margherita Pizza\n========================\n"))
	assert.Contains(t, detail, "Calories per Serving: 300")
	assert.Contains(t, detail, "Meal Type: Dinner")
	assert.Contains(t, detail, "Ingredients:\n  - Pizza dough\n  - Fresh basil\n")
	assert.Contains(t, detail, "Instructions:\n  1. Preheat the oven\n  2. Bake\n")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Chicken", truncate("Chicken", 10))
	assert.Equal(t, "Chick...", truncate("Chicken Tikka", 8))
	assert.Equal(t, "Chicken Tikka", truncate("Chicken Tikka", 2))
}
