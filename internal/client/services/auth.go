// This file defines the authentication service. Login is simulated: it
// flips the session to authenticated without asking for or checking any
// credentials.
package services

import (
	"context"

	"github.com/dmitrijs2005/postdesk/internal/client/client"
	"github.com/dmitrijs2005/postdesk/internal/client/session"
	"github.com/dmitrijs2005/postdesk/internal/logging"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: authenticate the session unconditionally and return the landing route.
//   - State: current session state.
//   - Ping: check that the posts API is reachable.
type AuthService interface {
	Login(ctx context.Context) session.Route
	State() session.State
	Ping(ctx context.Context) error
}

type authService struct {
	client  client.Client
	session *session.Session
	logger  logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and session holder.
func NewAuthService(c client.Client, s *session.Session, logger logging.Logger) AuthService {
	return &authService{client: c, session: s, logger: logger.With("module", "auth")}
}

func (a *authService) Login(ctx context.Context) session.Route {
	landing := a.session.Login()
	a.logger.Info(ctx, "login successful", "landing", landing)
	return landing
}

func (a *authService) State() session.State {
	return a.session.State()
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}
