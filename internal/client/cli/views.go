package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/postdesk/internal/client/session"
)

// Open navigates to path through the guard and renders whatever screen the
// guard settles on.
func (a *App) Open(ctx context.Context, path string) error {
	d, err := session.Resolve(a.authService.State(), path)
	if err != nil {
		if errors.Is(err, session.ErrUnknownRoute) {
			fmt.Fprintf(a.out, "Unknown path: %s\n", path)
		}
		return err
	}
	if d.Action == session.Redirect {
		a.logger.Debug(ctx, "redirected", "from", session.Normalize(path), "to", d.Route)
	}
	return a.show(ctx, d.Route)
}

// Login flips the session to authenticated and lands on the dashboard.
func (a *App) Login(ctx context.Context) error {
	landing := a.authService.Login(ctx)
	fmt.Fprintln(a.out, "Logged in.")
	return a.show(ctx, landing)
}

func (a *App) show(ctx context.Context, route session.Route) error {
	a.setRoute(route)

	switch route {
	case session.RouteLogin:
		renderLogin(a.out)
	case session.RouteDashboard:
		renderDashboard(a.out)
	case session.RoutePosts:
		b, err := a.postService.Mount(ctx)
		renderBoard(a.out, b, a.termWidthFn())
		return err
	}
	return nil
}

func renderLogin(w io.Writer) {
	fmt.Fprintln(w, "Login")
	fmt.Fprintln(w, "  [ Login with Google ]")
	fmt.Fprintln(w, "Type 'login' to continue.")
}

func renderDashboard(w io.Writer) {
	fmt.Fprintln(w, "Dashboard")
	fmt.Fprintln(w, "Welcome! Type 'posts' to manage posts (/crud).")
}
