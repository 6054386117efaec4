// Package session holds the simulated login state and the navigation guard
// that keeps anonymous users out of gated views.
//
// There are two states and a single transition: Anonymous → Authenticated,
// taken by Login. Nothing ever goes back; there is no logout, expiry or
// persistence.
package session

import "sync"

// State is the authentication state of the running client.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	switch s {
	case Authenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Session is the process-wide holder of the State. The zero value is an
// anonymous session. It is safe for concurrent use.
type Session struct {
	mu    sync.RWMutex
	state State
}

func New() *Session {
	return &Session{}
}

func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Login moves the session to Authenticated, whatever it was before, and
// returns the landing route to navigate to.
func (s *Session) Login() Route {
	s.mu.Lock()
	s.state = Authenticated
	s.mu.Unlock()
	return RouteDashboard
}
