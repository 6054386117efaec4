package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/postdesk/internal/client/models"
	"github.com/dmitrijs2005/postdesk/internal/client/services"
	"github.com/dmitrijs2005/postdesk/internal/client/session"
)

var (
	ErrLoginRequired = errors.New("login required")
	ErrPostsNotOpen  = errors.New("posts screen is not open")
	ErrInvalidID     = errors.New("invalid post id")
)

// requirePosts lets post commands through only on the mounted posts screen.
// Anonymous users are sent to the login screen, as navigation would.
func (a *App) requirePosts(ctx context.Context) error {
	if d := session.Guard(a.authService.State(), session.RoutePosts); d.Action == session.Redirect {
		_ = a.show(ctx, d.Route)
		return ErrLoginRequired
	}
	if a.currentRoute() != session.RoutePosts {
		fmt.Fprintln(a.out, "Open the posts screen first (type 'posts').")
		return ErrPostsNotOpen
	}
	return nil
}

func (a *App) render(b services.Board) {
	renderBoard(a.out, b, a.termWidthFn())
}

// report prints errors the board does not already show.
func (a *App) report(err error) {
	var reason *services.FailureReason
	switch {
	case err == nil, errors.As(err, &reason):
	case errors.Is(err, services.ErrCancelled):
	default:
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}

func (a *App) List(ctx context.Context) error {
	if err := a.requirePosts(ctx); err != nil {
		return err
	}
	a.render(a.postService.Board())
	return nil
}

func (a *App) Create(ctx context.Context) error {
	if err := a.requirePosts(ctx); err != nil {
		return err
	}

	current := a.postService.Board().CreateDraft
	title, err := promptField(a.reader, a.out, "Title", current.Title)
	if err != nil {
		return err
	}
	body, err := promptBody(a.reader, a.out, current.Body)
	if err != nil {
		return err
	}

	b, err := a.postService.Create(ctx, models.Draft{Title: title, Body: body})
	a.report(err)
	a.render(b)
	return err
}

func (a *App) Edit(ctx context.Context, arg string) error {
	if err := a.requirePosts(ctx); err != nil {
		return err
	}
	id, err := parseID(arg)
	if err != nil {
		a.report(err)
		return err
	}

	b, err := a.postService.Edit(id)
	if err != nil {
		a.report(err)
		return err
	}

	draft := b.EditDraft.Draft()
	if draft.Title, err = promptField(a.reader, a.out, "Title", draft.Title); err != nil {
		return err
	}
	if draft.Body, err = promptBody(a.reader, a.out, draft.Body); err != nil {
		return err
	}
	if b, err = a.postService.Revise(draft); err != nil {
		a.report(err)
		return err
	}

	ok, err := Confirm(a.reader, "Save changes?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		a.render(b)
		return nil
	}
	return a.Save(ctx)
}

func (a *App) Save(ctx context.Context) error {
	if err := a.requirePosts(ctx); err != nil {
		return err
	}

	open := a.postService.Board().EditDraft
	if open == nil {
		fmt.Fprintln(a.out, "No post is being edited. Use 'edit <id>' first.")
		return services.ErrNoEditDraft
	}

	b, err := a.postService.Update(ctx, open.Draft())
	a.report(err)
	a.render(b)
	return err
}

func (a *App) Cancel(ctx context.Context) error {
	if err := a.requirePosts(ctx); err != nil {
		return err
	}
	b := a.postService.CancelEdit()
	fmt.Fprintln(a.out, "Edit cancelled.")
	a.render(b)
	return nil
}

func (a *App) Delete(ctx context.Context, arg string) error {
	if err := a.requirePosts(ctx); err != nil {
		return err
	}
	id, err := parseID(arg)
	if err != nil {
		a.report(err)
		return err
	}

	confirm := func(_ context.Context, prompt string) (bool, error) {
		return Confirm(a.reader, prompt, a.out)
	}
	b, err := a.postService.Delete(ctx, id, confirm)
	if errors.Is(err, services.ErrCancelled) {
		fmt.Fprintln(a.out, "Delete cancelled.")
	}
	a.report(err)
	a.render(b)
	return err
}
