package services

import (
	"fmt"

	"github.com/dmitrijs2005/postdesk/internal/client/models"
)

// Op names a posts operation for failure reporting.
type Op string

const (
	OpLoad   Op = "load"
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

var failureMessages = map[Op]string{
	OpLoad:   "Failed to fetch data",
	OpCreate: "Failed to create post",
	OpUpdate: "Failed to update post",
	OpDelete: "Failed to delete post",
}

// FailureReason is the tagged outcome of a failed operation. Every
// failure of an operation has the same message, whatever went wrong on the
// wire; Cause keeps the underlying error for logs and errors.Is.
type FailureReason struct {
	Op      Op
	Message string
	Cause   error
}

func failure(op Op, cause error) *FailureReason {
	return &FailureReason{Op: op, Message: failureMessages[op], Cause: cause}
}

func (f *FailureReason) Error() string {
	if f.Cause == nil {
		return f.Message
	}
	return fmt.Sprintf("%s: %v", f.Message, f.Cause)
}

func (f *FailureReason) Unwrap() error {
	return f.Cause
}

// Board is the complete state of the posts view.
type Board struct {
	Posts         []models.Post
	Loading       bool
	ActionLoading bool
	Error         string
	Success       string
	CreateDraft   models.Draft
	// EditDraft is non-nil while the edit form is open.
	EditDraft *models.Post
}

// newBoard is the state of a freshly mounted view, before its first load.
func newBoard() Board {
	return Board{Loading: true}
}

// Clone returns a deep copy, so callers can keep it while the service
// moves on.
func (b Board) Clone() Board {
	out := b
	if b.Posts != nil {
		out.Posts = append([]models.Post(nil), b.Posts...)
	}
	if b.EditDraft != nil {
		d := *b.EditDraft
		out.EditDraft = &d
	}
	return out
}

// Find returns the first post with the given id from the local list.
func (b Board) Find(id int) (models.Post, bool) {
	if i := b.index(id); i >= 0 {
		return b.Posts[i], true
	}
	return models.Post{}, false
}

// Loaded keeps the first limit posts, in server order.
func (b Board) Loaded(posts []models.Post, limit int) Board {
	out := b.Clone()
	if limit >= 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	out.Posts = append([]models.Post(nil), posts...)
	out.Loading = false
	out.Error = ""
	return out
}

// Created puts the server's copy of a new post at the top of the list and
// empties the create form.
func (b Board) Created(p models.Post) Board {
	out := b.Clone()
	out.Posts = append([]models.Post{p}, out.Posts...)
	out.CreateDraft = models.Draft{}
	out.Error = ""
	return out
}

// Updated swaps in the server's copy of an edited post and closes the
// edit form. Only the first post with that id is replaced, the same one
// Find returns; other posts are untouched.
func (b Board) Updated(p models.Post) Board {
	out := b.Clone()
	if i := out.index(p.ID); i >= 0 {
		out.Posts[i] = p
	}
	out.EditDraft = nil
	out.Error = ""
	return out
}

// Deleted drops the first post with the given id. The demo API hands out
// the same id to every created post, so ids in the list are not unique.
func (b Board) Deleted(id int) Board {
	out := b.Clone()
	if i := out.index(id); i >= 0 {
		out.Posts = append(out.Posts[:i:i], out.Posts[i+1:]...)
	}
	out.Error = ""
	return out
}

func (b Board) index(id int) int {
	for i, p := range b.Posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Failed records a failure. The list is left alone, except after a failed
// load, which leaves it empty.
func (b Board) Failed(r *FailureReason) Board {
	out := b.Clone()
	out.Error = r.Message
	if r.Op == OpLoad {
		out.Posts = nil
		out.Loading = false
	}
	return out
}
