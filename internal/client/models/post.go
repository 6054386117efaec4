// Package models defines client-side data models used by the postdesk CLI.
package models

import (
	"errors"
	"strings"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrBodyRequired  = errors.New("body is required")
)

// Post is a record of the remote collection. ID is assigned by the server.
type Post struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId,omitempty"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// Draft holds the fields of a post that is being created. It has no
// identity until the server echoes it back.
type Draft struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Validate enforces the required-field rule of the create and edit forms.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(d.Body) == "" {
		return ErrBodyRequired
	}
	return nil
}

// IsZero reports whether nothing has been typed into the draft yet.
func (d Draft) IsZero() bool {
	return d.Title == "" && d.Body == ""
}

// Draft returns the editable fields of p.
func (p Post) Draft() Draft {
	return Draft{Title: p.Title, Body: p.Body}
}

// WithDraft returns a copy of p with title and body taken from d.
// Identity and owner are preserved.
func (p Post) WithDraft(d Draft) Post {
	p.Title = d.Title
	p.Body = d.Body
	return p
}
