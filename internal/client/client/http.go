package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/postdesk/internal/client/models"
	"github.com/dmitrijs2005/postdesk/internal/logging"
	"github.com/google/uuid"
)

const (
	postsPath       = "/posts"
	requestIDHeader = "X-Request-ID"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

// NewHTTPClient returns a client for the collection rooted at baseURL,
// e.g. "https://jsonplaceholder.typicode.com". timeout bounds each request;
// zero means no client-side limit beyond the caller's context.
func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBaseURL, baseURL)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With("module", "api_client"),
	}, nil
}

func postPath(id int) string {
	return fmt.Sprintf("%s/%d", postsPath, id)
}

// do sends one request. in, when non-nil, is sent as the JSON body; out,
// when non-nil, receives the decoded JSON response.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	log := c.logger.With("request_id", requestID, "method", method, "path", path)
	started := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	log.Debug(ctx, "request finished", "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		log.Warn(ctx, "unexpected status", "status", resp.StatusCode)
		return &StatusError{Code: resp.StatusCode}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Warn(ctx, "response decode failed", "error", err)
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// ListPosts returns the whole collection in server order.
func (c *HTTPClient) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.do(ctx, http.MethodGet, postsPath, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost sends the draft and returns the record echoed by the server,
// carrying its newly assigned ID.
func (c *HTTPClient) CreatePost(ctx context.Context, draft models.Draft) (models.Post, error) {
	var created models.Post
	if err := c.do(ctx, http.MethodPost, postsPath, draft, &created); err != nil {
		return models.Post{}, err
	}
	return created, nil
}

// UpdatePost replaces the record addressed by post.ID with post and returns
// the server's copy.
func (c *HTTPClient) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	var updated models.Post
	if err := c.do(ctx, http.MethodPut, postPath(post.ID), post, &updated); err != nil {
		return models.Post{}, err
	}
	return updated, nil
}

// DeletePost removes the record. The response body is ignored.
func (c *HTTPClient) DeletePost(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, postPath(id), nil, nil)
}

// Ping checks that the API answers at all. Client errors still count as
// reachable; only transport failures and 5xx are reported.
func (c *HTTPClient) Ping(ctx context.Context) error {
	err := c.do(ctx, http.MethodHead, postsPath, nil, nil)
	var se *StatusError
	if errors.As(err, &se) && se.Code < 500 {
		return nil
	}
	return err
}
