package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"recipebook/internal/api"
	"recipebook/internal/domain"
	"recipebook/internal/eventbus"
)

const (
	msgInvalidCredentials = "Invalid credentials"
	msgSomethingWrong     = "Something went wrong. Please try again later."
)

// Authenticator submits credentials to the remote service
type Authenticator interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.User, error)
}

// Result is the outcome of a login attempt as shown to the user
type Result struct {
	User   *domain.User
	Title  string // "Login Successful", "Login Failed" or "Error"
	Notice string
	Err    error
}

// OK reports whether the attempt signed the user in
func (r Result) OK() bool { return r.User != nil }

// Service tracks the signed-in user
type Service struct {
	mu       sync.RWMutex
	auth     Authenticator
	bus      eventbus.EventBus
	defaults domain.Credentials
	user     *domain.User
}

// NewService creates a session service. defaults fill in blank form fields.
func NewService(auth Authenticator, bus eventbus.EventBus, defaults domain.Credentials) *Service {
	return &Service{auth: auth, bus: bus, defaults: defaults}
}

// Login submits the given credentials, using the configured defaults for
// blank fields
func (s *Service) Login(ctx context.Context, username, password string) Result {
	creds := domain.Credentials{
		Username:      strings.TrimSpace(username),
		Password:      password,
		ExpiresInMins: s.defaults.ExpiresInMins,
	}
	if creds.Username == "" {
		creds.Username = s.defaults.Username
	}
	if creds.Password == "" {
		creds.Password = s.defaults.Password
	}

	user, err := s.auth.Login(ctx, creds)
	if err != nil {
		res := failure(err)
		log.Printf("SessionService: login as %q failed: %v", creds.Username, err)
		s.publish(eventbus.LoginFailedEvent{Message: res.Notice, Rejected: api.IsRejection(err)})
		return res
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	log.Printf("SessionService: signed in as %q", user.Username)
	s.publish(eventbus.LoginSucceededEvent{User: *user})
	return Result{
		User:   user,
		Title:  "Login Successful",
		Notice: fmt.Sprintf("Welcome, %s!", user.Username),
	}
}

// Logout forgets the signed-in user
func (s *Service) Logout() {
	s.mu.Lock()
	user := s.user
	s.user = nil
	s.mu.Unlock()

	if user == nil {
		return
	}
	log.Printf("SessionService: signed out %q", user.Username)
	s.publish(eventbus.LoggedOutEvent{Username: user.Username})
}

// User returns the signed-in user, or nil
func (s *Service) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Service) publish(e eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}

func failure(err error) Result {
	var rej *api.RejectionError
	if errors.As(err, &rej) {
		msg := rej.Message
		if msg == "" {
			msg = msgInvalidCredentials
		}
		return Result{Title: "Login Failed", Notice: msg, Err: err}
	}
	return Result{Title: "Error", Notice: msgSomethingWrong, Err: err}
}
