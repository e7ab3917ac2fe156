package theme

import (
	"log"
	"sync"

	"recipebook/internal/domain"
	"recipebook/internal/eventbus"
)

// Service owns the current theme. Renderers receive the value explicitly;
// nothing reads it from ambient state.
type Service struct {
	mu      sync.RWMutex
	current domain.Theme
	bus     eventbus.EventBus
}

// NewService creates a theme service starting at initial. bus may be nil.
func NewService(initial domain.Theme, bus eventbus.EventBus) *Service {
	if initial != domain.ThemeDark {
		initial = domain.ThemeLight
	}
	return &Service{current: initial, bus: bus}
}

// Current returns the active theme
func (s *Service) Current() domain.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Toggle switches to the other theme and returns it
func (s *Service) Toggle() domain.Theme {
	s.mu.Lock()
	s.current = s.current.Opposite()
	next := s.current
	s.mu.Unlock()

	log.Printf("ThemeService: switched to %s", next)
	s.publish(next)
	return next
}

// Set selects a theme. Setting the active theme is a no-op.
func (s *Service) Set(t domain.Theme) {
	s.mu.Lock()
	if s.current == t {
		s.mu.Unlock()
		return
	}
	s.current = t
	s.mu.Unlock()

	s.publish(t)
}

func (s *Service) publish(t domain.Theme) {
	if s.bus != nil {
		s.bus.Publish(eventbus.ThemeChangedEvent{Theme: t})
	}
}
