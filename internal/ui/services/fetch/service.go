package fetch

import (
	"context"
	"log"
	"sync"

	"recipebook/internal/api"
	"recipebook/internal/domain"
	"recipebook/internal/eventbus"
)

// Service tracks the load of the recipe list for one recipes screen
type Service struct {
	mu     sync.Mutex
	source Source
	bus    eventbus.EventBus
	owner  string

	state  State
	token  uint64 // incremented by every Begin
	closed bool
}

// Request is one outstanding load started by Begin
type Request struct {
	svc   *Service
	token uint64
}

// NewService creates a fetch service. bus may be nil.
func NewService(source Source, bus eventbus.EventBus, owner string) *Service {
	return &Service{
		source: source,
		bus:    bus,
		owner:  owner,
		state:  State{Status: domain.FetchIdle},
	}
}

// State returns the current fetch state
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Begin moves the service to Loading and returns the request that will
// settle it. A later Begin supersedes any request still in flight.
func (s *Service) Begin() *Request {
	s.mu.Lock()
	s.token++
	req := &Request{svc: s, token: s.token}
	closed := s.closed
	if !closed {
		// Recipes from a previous load are kept out of view while loading
		s.state = State{Status: domain.FetchLoading}
	}
	s.mu.Unlock()

	if !closed {
		log.Printf("FetchService[%s]: loading (request %d)", s.owner, req.token)
		s.publish(State{Status: domain.FetchLoading})
	}
	return req
}

// Do performs the network request and settles the state if the request is
// still current. It returns the service state after the call.
func (r *Request) Do(ctx context.Context) State {
	recipes, err := r.svc.source.ListRecipes(ctx)

	next := State{Status: domain.FetchReady, Recipes: recipes}
	if err != nil {
		next = failedState(err)
	}

	s := r.svc
	s.mu.Lock()
	if s.closed || r.token != s.token {
		current := s.state
		closed := s.closed
		s.mu.Unlock()
		log.Printf("FetchService[%s]: dropping stale request %d (closed=%t)", s.owner, r.token, closed)
		return current
	}
	s.state = next
	s.mu.Unlock()

	if err != nil {
		log.Printf("FetchService[%s]: request %d failed: %v", s.owner, r.token, err)
	} else {
		log.Printf("FetchService[%s]: request %d ready with %d recipes", s.owner, r.token, len(recipes))
	}
	s.publish(next)
	return next
}

// Load performs one load synchronously
func (s *Service) Load(ctx context.Context) State {
	return s.Begin().Do(ctx)
}

// Close deactivates the service; requests settling afterwards are dropped
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

// Owner returns the id of the screen this service belongs to
func (s *Service) Owner() string {
	return s.owner
}

func (s *Service) publish(st State) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(eventbus.FetchStateChangedEvent{
		Owner:   s.owner,
		Status:  st.Status,
		Count:   len(st.Recipes),
		Message: st.Message,
	})
}

func failedState(err error) State {
	msg := MsgSomethingWrong
	if api.IsRejection(err) {
		msg = MsgRejected
	}
	return State{Status: domain.FetchFailed, Message: msg, Err: err}
}
