// Package services contains application services for the postdesk client.
// This file defines the posts controller: it keeps the local list in step
// with the remote collection through load, create, update and delete.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/postdesk/internal/client/client"
	"github.com/dmitrijs2005/postdesk/internal/client/models"
	"github.com/dmitrijs2005/postdesk/internal/logging"
	"golang.org/x/sync/semaphore"
)

const (
	MsgCreated = "Post created successfully!"
	MsgUpdated = "Post updated successfully!"
	MsgDeleted = "Post deleted successfully!"

	DeletePrompt = "Are you sure you want to delete this post?"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrNoEditDraft  = errors.New("no post is being edited")
	ErrCancelled    = errors.New("cancelled")
)

// ConfirmFunc asks the user a yes/no question and blocks for the answer.
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

// PostService drives the posts view.
//
// Contract:
//   - Mount: reset the view and load the first page of the collection.
//   - Create: send a new post; on success it goes to the top of the list.
//   - Edit / CancelEdit: open or discard the edit form for a listed post.
//   - Revise: change the fields of the open edit form without sending them.
//   - Update: send the edited post; on success it replaces the listed one.
//   - Delete: after confirmation, remove a post remotely, then locally.
//   - Board: snapshot of the current state, safe to call at any time.
//
// The local list only changes after the server confirmed an operation.
// Operations run one at a time; a second one waits for the first to finish
// or for its own context to end. Operation failures are returned as
// *FailureReason and are also recorded on the Board.
type PostService interface {
	Mount(ctx context.Context) (Board, error)
	Create(ctx context.Context, draft models.Draft) (Board, error)
	Edit(id int) (Board, error)
	CancelEdit() Board
	Revise(draft models.Draft) (Board, error)
	Update(ctx context.Context, draft models.Draft) (Board, error)
	Delete(ctx context.Context, id int, confirm ConfirmFunc) (Board, error)
	Board() Board
	Close()
}

type postService struct {
	client   client.Client
	pageSize int
	logger   logging.Logger
	notice   *Notice
	actions  *semaphore.Weighted

	mu    sync.RWMutex
	board Board
}

// NewPostService builds a PostService. pageSize caps how many posts a load
// keeps; messageTTL is how long success messages stay visible.
func NewPostService(c client.Client, pageSize int, messageTTL time.Duration, logger logging.Logger) PostService {
	return &postService{
		client:   c,
		pageSize: pageSize,
		logger:   logger.With("module", "posts"),
		notice:   NewNotice(messageTTL),
		actions:  semaphore.NewWeighted(1),
		board:    newBoard(),
	}
}

// Board returns a snapshot with the current success message filled in.
func (s *postService) Board() Board {
	s.mu.RLock()
	b := s.board.Clone()
	s.mu.RUnlock()

	b.Success = s.notice.Text()
	return b
}

func (s *postService) update(fn func(Board) Board) {
	s.mu.Lock()
	s.board = fn(s.board)
	s.mu.Unlock()
}

func (s *postService) setActionLoading(v bool) {
	s.update(func(b Board) Board {
		b.ActionLoading = v
		return b
	})
}

// begin takes the action slot. The returned func releases it.
func (s *postService) begin(ctx context.Context) (func(), error) {
	if err := s.actions.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return func() { s.actions.Release(1) }, nil
}

func (s *postService) fail(ctx context.Context, op Op, err error) *FailureReason {
	reason := failure(op, err)
	s.logger.Warn(ctx, "operation failed", "op", op, "error", err)
	return reason
}

// act runs one write operation: it takes the action slot, raises the
// action-loading flag for the duration of call, then applies either the
// successful result or the failure in a single state update.
func (s *postService) act(ctx context.Context, op Op, msg string, call func() (func(Board) Board, error)) (Board, error) {
	done, err := s.begin(ctx)
	if err != nil {
		return s.Board(), err
	}
	defer done()

	s.setActionLoading(true)

	apply, err := call()
	if err != nil {
		reason := s.fail(ctx, op, err)
		s.update(func(b Board) Board {
			b = b.Failed(reason)
			b.ActionLoading = false
			return b
		})
		return s.Board(), reason
	}

	s.update(func(b Board) Board {
		b = apply(b)
		b.ActionLoading = false
		return b
	})
	s.notice.Show(msg)
	return s.Board(), nil
}

func (s *postService) Mount(ctx context.Context) (Board, error) {
	done, err := s.begin(ctx)
	if err != nil {
		return s.Board(), err
	}
	defer done()

	s.notice.Clear()
	s.update(func(Board) Board { return newBoard() })

	posts, err := s.client.ListPosts(ctx)
	if err != nil {
		reason := s.fail(ctx, OpLoad, err)
		s.update(func(b Board) Board { return b.Failed(reason) })
		return s.Board(), reason
	}

	s.update(func(b Board) Board { return b.Loaded(posts, s.pageSize) })
	s.logger.Debug(ctx, "posts loaded", "received", len(posts))
	return s.Board(), nil
}

func (s *postService) Create(ctx context.Context, draft models.Draft) (Board, error) {
	s.update(func(b Board) Board {
		b.CreateDraft = draft
		return b
	})
	if err := draft.Validate(); err != nil {
		return s.Board(), err
	}

	return s.act(ctx, OpCreate, MsgCreated, func() (func(Board) Board, error) {
		created, err := s.client.CreatePost(ctx, draft)
		if err != nil {
			return nil, err
		}
		s.logger.Info(ctx, "post created", "id", created.ID)
		return func(b Board) Board { return b.Created(created) }, nil
	})
}

func (s *postService) Edit(id int) (Board, error) {
	var err error
	s.update(func(b Board) Board {
		p, ok := b.Find(id)
		if !ok {
			err = fmt.Errorf("%w: %d", ErrPostNotFound, id)
			return b
		}
		b.EditDraft = &p
		return b
	})
	return s.Board(), err
}

func (s *postService) CancelEdit() Board {
	s.update(func(b Board) Board {
		b.EditDraft = nil
		return b
	})
	return s.Board()
}

func (s *postService) Revise(draft models.Draft) (Board, error) {
	var err error
	s.update(func(b Board) Board {
		if b.EditDraft == nil {
			err = ErrNoEditDraft
			return b
		}
		revised := b.EditDraft.WithDraft(draft)
		b.EditDraft = &revised
		return b
	})
	return s.Board(), err
}

func (s *postService) Update(ctx context.Context, draft models.Draft) (Board, error) {
	var (
		edited models.Post
		err    error
	)
	s.update(func(b Board) Board {
		if b.EditDraft == nil {
			err = ErrNoEditDraft
			return b
		}
		edited = b.EditDraft.WithDraft(draft)
		b.EditDraft = &edited
		return b
	})
	if err != nil {
		return s.Board(), err
	}
	if err := draft.Validate(); err != nil {
		return s.Board(), err
	}

	return s.act(ctx, OpUpdate, MsgUpdated, func() (func(Board) Board, error) {
		updated, err := s.client.UpdatePost(ctx, edited)
		if err != nil {
			return nil, err
		}
		s.logger.Info(ctx, "post updated", "id", updated.ID)
		return func(b Board) Board { return b.Updated(updated) }, nil
	})
}

func (s *postService) Delete(ctx context.Context, id int, confirm ConfirmFunc) (Board, error) {
	if _, ok := s.Board().Find(id); !ok {
		return s.Board(), fmt.Errorf("%w: %d", ErrPostNotFound, id)
	}

	ok, err := confirm(ctx, DeletePrompt)
	if err != nil {
		return s.Board(), err
	}
	if !ok {
		return s.Board(), ErrCancelled
	}

	return s.act(ctx, OpDelete, MsgDeleted, func() (func(Board) Board, error) {
		if err := s.client.DeletePost(ctx, id); err != nil {
			return nil, err
		}
		s.logger.Info(ctx, "post deleted", "id", id)
		return func(b Board) Board { return b.Deleted(id) }, nil
	})
}

// Close drops the pending success message timer.
func (s *postService) Close() {
	s.notice.Clear()
}
