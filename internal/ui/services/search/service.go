package search

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"recipebook/internal/domain"
	"recipebook/internal/eventbus"
	"recipebook/internal/ui/services/fetch"
)

// Service holds the live query of one recipes screen and derives the visible
// recipes from it
type Service struct {
	mu     sync.RWMutex
	source Source
	bus    eventbus.EventBus
	owner  string
	query  string
}

// NewService creates a search service over source. bus may be nil.
func NewService(source Source, bus eventbus.EventBus, owner string) *Service {
	return &Service{
		source: source,
		bus:    bus,
		owner:  owner,
	}
}

// SetQuery replaces the query and returns the recipes it selects
func (s *Service) SetQuery(q string) []domain.Recipe {
	s.mu.Lock()
	s.query = q
	s.mu.Unlock()

	visible := Filter(s.source.State(), q)

	if s.bus != nil {
		s.bus.Publish(eventbus.QueryChangedEvent{
			Owner:      s.owner,
			Query:      q,
			MatchCount: len(visible),
		})
	}
	return visible
}

// Query returns the current query as typed
func (s *Service) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// Visible returns the recipes selected by the current query
func (s *Service) Visible() []domain.Recipe {
	return Filter(s.source.State(), s.Query())
}

// Filter returns the recipes of a ready state whose name contains query,
// ignoring case and surrounding whitespace in the query. The result keeps
// the order of state.Recipes. Any state other than ready yields no recipes.
func Filter(state fetch.State, query string) []domain.Recipe {
	if !state.Ready() {
		return []domain.Recipe{}
	}

	needle := normalize(query)
	visible := make([]domain.Recipe, 0, len(state.Recipes))
	for _, r := range state.Recipes {
		if needle == "" || strings.Contains(fold(r.Name), needle) {
			visible = append(visible, r)
		}
	}
	return visible
}

// Matches reports whether name is selected by query
func Matches(name, query string) bool {
	needle := normalize(query)
	return needle == "" || strings.Contains(fold(name), needle)
}

func normalize(query string) string {
	return fold(strings.TrimSpace(query))
}

// fold applies Unicode case folding
func fold(s string) string {
	return cases.Fold().String(s)
}
