package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/postdesk/internal/client/client"
	"github.com/dmitrijs2005/postdesk/internal/client/config"
	"github.com/dmitrijs2005/postdesk/internal/client/services"
	"github.com/dmitrijs2005/postdesk/internal/client/session"
	"github.com/dmitrijs2005/postdesk/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	postService services.PostService
	logger      logging.Logger
	reader      *bufio.Reader
	out         io.Writer
	termWidthFn func() int

	mu    sync.RWMutex
	route session.Route
	mode  Mode
}

func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	apiClient, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, logger)
	if err != nil {
		return nil, err
	}

	as := services.NewAuthService(apiClient, session.New(), logger)
	ps := services.NewPostService(apiClient, c.PageSize, c.SuccessMessageTTL, logger)

	return &App{
		config:      c,
		authService: as,
		postService: ps,
		logger:      logger.With("module", "cli"),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		termWidthFn: stdoutWidth,
		route:       session.RouteRoot,
	}, nil
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "switched mode", "mode", mode)
	}
}

func (a *App) getMode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setRoute(r session.Route) {
	a.mu.Lock()
	a.route = r
	a.mu.Unlock()
}

func (a *App) currentRoute() session.Route {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.route
}

func (a *App) isLoggedIn() bool {
	return a.authService.State() == session.Authenticated
}

// getStatus renders the prompt status, e.g. "/crud (authenticated online)".
func (a *App) getStatus() string {
	s := a.authService.State().String()
	if m := a.getMode(); m != "" {
		s = s + " " + string(m)
	}
	return fmt.Sprintf("%s (%s)", a.currentRoute(), s)
}

// Run shows the entry screen, starts the connectivity watcher and blocks in
// the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.postService.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	fmt.Fprintln(a.out, "Welcome to postdesk (type 'help' for commands)")
	_ = a.Open(ctx, string(session.RouteRoot))

	if a.config.OnlineCheckInterval > 0 {
		go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

// StartOnlineStatusWatcher pings the API right away and then every interval,
// switching the displayed mode between online and offline. It returns when
// ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
	err := a.authService.Ping(pingCtx)
	cancel()

	switch {
	case ctx.Err() != nil:
		return
	case err != nil:
		a.logger.Debug(ctx, "ping failed", "error", err)
		a.setMode(ModeOffline)
	default:
		a.setMode(ModeOnline)
	}
}
