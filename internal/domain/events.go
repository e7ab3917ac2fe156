package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventFetchStateChanged EventType = "FetchStateChanged"
	EventQueryChanged      EventType = "QueryChanged"
	EventThemeChanged      EventType = "ThemeChanged"
	EventLoginSucceeded    EventType = "LoginSucceeded"
	EventLoginFailed       EventType = "LoginFailed"
	EventLoggedOut         EventType = "LoggedOut"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// FetchStateChangedEvent is emitted on every fetch state transition of a recipes screen
type FetchStateChangedEvent struct {
	Owner   string // recipes screen instance id
	Status  FetchStatus
	Count   int    // number of recipes when ready
	Message string // failure message when failed
}

func (e FetchStateChangedEvent) Type() EventType { return EventFetchStateChanged }

// QueryChangedEvent is emitted when the search query of a recipes screen changes
type QueryChangedEvent struct {
	Owner      string
	Query      string
	MatchCount int
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// ThemeChangedEvent is emitted when the theme is toggled
type ThemeChangedEvent struct {
	Theme Theme
}

func (e ThemeChangedEvent) Type() EventType { return EventThemeChanged }

// LoginSucceededEvent is emitted after a successful login
type LoginSucceededEvent struct {
	User User
}

func (e LoginSucceededEvent) Type() EventType { return EventLoginSucceeded }

// LoginFailedEvent is emitted when a login attempt fails
type LoginFailedEvent struct {
	Message  string
	Rejected bool // server answered with a failure status
}

func (e LoginFailedEvent) Type() EventType { return EventLoginFailed }

// LoggedOutEvent is emitted when the user signs out
type LoggedOutEvent struct {
	Username string
}

func (e LoggedOutEvent) Type() EventType { return EventLoggedOut }
