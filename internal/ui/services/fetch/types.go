package fetch

import (
	"context"

	"recipebook/internal/domain"
)

// Failure messages shown to the user
const (
	MsgRejected       = "Failed to load recipes"
	MsgSomethingWrong = "Something went wrong. Please try again later."
)

// State is the fetch state of one recipes screen. Recipes is meaningful only
// when Status is FetchReady, Message and Err only when it is FetchFailed.
type State struct {
	Status  domain.FetchStatus
	Recipes []domain.Recipe
	Message string
	Err     error
}

// Ready reports whether the load settled successfully
func (s State) Ready() bool { return s.Status == domain.FetchReady }

// Source lists recipes from the remote service
type Source interface {
	ListRecipes(ctx context.Context) ([]domain.Recipe, error)
}
