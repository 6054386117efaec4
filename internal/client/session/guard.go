package session

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownRoute = errors.New("unknown route")

// Route is a navigable path of the client.
type Route string

const (
	RouteRoot      Route = "/"
	RouteLogin     Route = "/login"
	RouteDashboard Route = "/dashboard"
	RoutePosts     Route = "/crud"
)

var routes = map[Route]bool{
	RouteRoot:      false,
	RouteLogin:     false,
	RouteDashboard: true,
	RoutePosts:     true,
}

// Gated reports whether the route requires an authenticated session.
func (r Route) Gated() bool {
	return routes[r]
}

type Action int

const (
	Render Action = iota
	Redirect
)

func (a Action) String() string {
	if a == Redirect {
		return "redirect"
	}
	return "render"
}

// Decision is the outcome of navigation: render Route, or redirect to it.
type Decision struct {
	Action Action
	Route  Route
}

// Guard decides whether route may be rendered in the given state. Public
// routes always render; gated ones render only when authenticated and
// otherwise redirect to the login view.
func Guard(state State, route Route) Decision {
	if route.Gated() && state != Authenticated {
		return Decision{Action: Redirect, Route: RouteLogin}
	}
	return Decision{Action: Render, Route: route}
}

// Normalize turns user input such as "crud", "/CRUD/" or " /login " into a
// Route.
func Normalize(path string) Route {
	p := strings.ToLower(strings.TrimSpace(path))
	p = strings.TrimRight(p, "/")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return Route(p)
}

// Resolve maps a raw path to a navigation decision. The root path always
// redirects to the login view; every other known route goes through Guard.
func Resolve(state State, path string) (Decision, error) {
	route := Normalize(path)
	if _, ok := routes[route]; !ok {
		return Decision{}, fmt.Errorf("%w: %s", ErrUnknownRoute, route)
	}
	if route == RouteRoot {
		return Decision{Action: Redirect, Route: RouteLogin}, nil
	}
	return Guard(state, route), nil
}
