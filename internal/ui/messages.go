package ui

import (
	"recipebook/internal/eventbus"
	"recipebook/internal/ui/services/fetch"
	"recipebook/internal/ui/services/session"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// loginResultMsg carries the outcome of a login attempt
type loginResultMsg struct {
	result session.Result
}

// fetchSettledMsg is sent when a recipe load of a screen instance settles
type fetchSettledMsg struct {
	owner string
	state fetch.State
}

// recipePagerMsg is sent when the recipe pager exits
type recipePagerMsg struct {
	recipeID int
	err      error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
