// Package client talks to the remote posts API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     ListPosts, CreatePost, UpdatePost, DeletePost and Ping.
//  2. A JSON-over-HTTP implementation (see HTTPClient) for
//     JSONPlaceholder-style collections: GET/POST /posts and
//     PUT/DELETE /posts/{id}.
//
// # Error Handling
//
// Failures are exposed as sentinel errors that callers match with
// errors.Is: ErrUnavailable (transport), ErrUnexpectedStatus (any non-2xx,
// see StatusError for the code) and ErrDecode (malformed body).
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. Every call takes a context and
// is additionally bounded by the configured request timeout.
package client
