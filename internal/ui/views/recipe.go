package views

import (
	"fmt"
	"strconv"
	"strings"

	"recipebook/internal/domain"
)

// RecipeRenderer handles rendering of recipe rows and cards
type RecipeRenderer struct {
	styles *Styles
}

// NewRecipeRenderer creates a new recipe renderer
func NewRecipeRenderer(styles *Styles) *RecipeRenderer {
	return &RecipeRenderer{styles: styles}
}

// RenderRow renders one line of the recipe list
func (r *RecipeRenderer) RenderRow(recipe domain.Recipe, isSelected bool, query string, width int) string {
	cursor := "  "
	if isSelected {
		cursor = "> "
	}

	meta := fmt.Sprintf("  %s · %s · %s", recipe.Cuisine, recipe.Difficulty, formatRating(recipe.Rating))
	name := truncate(recipe.Name, width-len(cursor)-len([]rune(meta))-4)

	if isSelected {
		return r.styles.Selected.Render(cursor+name) + r.styles.Dim.Render(meta)
	}
	return cursor + r.highlight(name, query) + r.styles.Dim.Render(meta)
}

// RenderCard renders the summary of the selected recipe
func (r *RecipeRenderer) RenderCard(recipe domain.Recipe, width int) string {
	var b strings.Builder
	b.WriteString(r.styles.CardTitle.Render(recipe.Name))
	b.WriteString("\n")
	for _, line := range summaryLines(recipe) {
		b.WriteString(r.styles.Text.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(r.styles.Dim.Render("enter: ingredients & instructions"))

	style := r.styles.Card
	// Main padding (4) plus card border (2) and some slack
	if width > 12 {
		style = style.Width(width - 8)
	}
	return style.Render(b.String())
}

// highlight marks the first occurrence of query in name
func (r *RecipeRenderer) highlight(name, query string) string {
	q := strings.TrimSpace(query)
	if q == "" {
		return r.styles.Text.Render(name)
	}
	lowerName := strings.ToLower(name)
	// byte offsets are only usable when lowering kept the length
	if len(lowerName) != len(name) {
		return r.styles.Text.Render(name)
	}
	idx := strings.Index(lowerName, strings.ToLower(q))
	if idx < 0 || idx+len(q) > len(name) {
		return r.styles.Text.Render(name)
	}
	return r.styles.Text.Render(name[:idx]) +
		r.styles.Highlight.Render(name[idx:idx+len(q)]) +
		r.styles.Text.Render(name[idx+len(q):])
}

// RecipeDetail renders the full recipe as plain text for the pager
func RecipeDetail(recipe domain.Recipe) string {
	var b strings.Builder
	b.WriteString(recipe.Name)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len([]rune(recipe.Name))))
	b.WriteString("\n\n")
	for _, line := range summaryLines(recipe) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(recipe.MealType) > 0 {
		fmt.Fprintf(&b, "Meal Type: %s\n", strings.Join(recipe.MealType, ", "))
	}
	if len(recipe.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(recipe.Tags, ", "))
	}
	if recipe.Image != "" {
		fmt.Fprintf(&b, "Image: %s\n", recipe.Image)
	}

	b.WriteString("\nIngredients:\n")
	for _, ing := range recipe.Ingredients {
		fmt.Fprintf(&b, "  - %s\n", ing)
	}

	b.WriteString("\nInstructions:\n")
	for i, step := range recipe.Instructions {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, step)
	}
	return b.String()
}

func summaryLines(recipe domain.Recipe) []string {
	return []string{
		"Cuisine: " + recipe.Cuisine,
		"Difficulty: " + recipe.Difficulty,
		fmt.Sprintf("Prep Time: %d minutes", recipe.PrepTimeMinutes),
		fmt.Sprintf("Cook Time: %d minutes", recipe.CookTimeMinutes),
		fmt.Sprintf("Servings: %d", recipe.Servings),
		fmt.Sprintf("Calories per Serving: %d", recipe.CaloriesPerServing),
		fmt.Sprintf("Rating: %s (%d reviews)", formatRating(recipe.Rating), recipe.ReviewCount),
	}
}

func formatRating(rating float64) string {
	return strconv.FormatFloat(rating, 'f', -1, 64)
}

func truncate(s string, max int) string {
	if max <= 3 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
