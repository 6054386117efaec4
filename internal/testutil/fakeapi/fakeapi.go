// Package fakeapi serves an in-memory JSONPlaceholder-style posts
// collection for tests.
package fakeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/dmitrijs2005/postdesk/internal/client/models"
	"github.com/gorilla/mux"
)

type override struct {
	status int
	body   string
}

type Server struct {
	*httptest.Server

	mu        sync.Mutex
	posts     []models.Post
	nextID    int
	overrides map[string]override
	calls     []string
}

// New starts a server seeded with n posts numbered 1..n. It is closed
// automatically when the test ends.
func New(t testing.TB, n int) *Server {
	t.Helper()

	s := &Server{overrides: make(map[string]override)}
	for i := 1; i <= n; i++ {
		s.posts = append(s.posts, models.Post{
			ID:     i,
			UserID: 1,
			Title:  fmt.Sprintf("title %d", i),
			Body:   fmt.Sprintf("body %d", i),
		})
	}
	s.nextID = n + 1

	r := mux.NewRouter()
	r.Use(s.record)
	r.HandleFunc("/posts", s.list).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/posts", s.create).Methods(http.MethodPost)
	r.HandleFunc("/posts/{id:[0-9]+}", s.update).Methods(http.MethodPut)
	r.HandleFunc("/posts/{id:[0-9]+}", s.remove).Methods(http.MethodDelete)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Server.Close)
	return s
}

// Respond makes every request with the given method answer with status and
// raw body instead of the normal behaviour.
func (s *Server) Respond(method string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[method] = override{status: status, body: body}
}

// Calls lists the requests received so far as "METHOD /path".
func (s *Server) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// Posts returns a copy of the stored collection.
func (s *Server) Posts() []models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Post(nil), s.posts...)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.calls = append(s.calls, r.Method+" "+r.URL.Path)
		o, ok := s.overrides[r.Method]
		s.mu.Unlock()

		if ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(o.status)
			_, _ = w.Write([]byte(o.body))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Posts())
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var p models.Post
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	s.mu.Lock()
	p.ID = s.nextID
	s.nextID++
	s.posts = append(s.posts, p)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	var p models.Post
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	p.ID = pathID(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == p.ID {
			s.posts[i] = p
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{})
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{})
}
