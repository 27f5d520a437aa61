// Package apitest runs an in-memory stand-in for the travel plans resource
// API so that client, service and CLI tests can talk real HTTP.
//
// It mimics a json-server style backend: collections of JSON objects,
// equality filtering on query parameters, server-assigned ids. Individual
// routes can be forced to fail or to answer with an arbitrary body.
package apitest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"testing"

	"github.com/dmitrijs2005/travelplanner/internal/client/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Request is a request as the server saw it.
type Request struct {
	Method    string
	Path      string
	Query     string
	RequestID string
	Body      []byte
}

type override struct {
	status int
	body   string
}

type record = map[string]any

// Server is safe for concurrent use.
type Server struct {
	*httptest.Server

	mu          sync.RWMutex
	collections map[string][]record
	overrides   map[string]override
	requests    []Request
}

// New starts a server and stops it when the test ends.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		collections: map[string][]record{"users": {}, "travel-plans": {}},
		overrides:   map[string]override{},
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.record)
	r.Use(s.intercept)

	r.Route("/{collection}", func(r chi.Router) {
		r.Get("/", s.list)
		r.Post("/", s.create)
		r.Get("/{id}", s.get)
		r.Put("/{id}", s.replace)
		r.Delete("/{id}", s.remove)
	})
	return r
}

// AddUser seeds an account and returns its id.
func (s *Server) AddUser(a models.Account, password string) string {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	s.insert("users", record{
		"id":       a.ID,
		"username": a.Username,
		"password": password,
		"email":    a.Email,
		"isAdmin":  a.IsAdmin,
	})
	return a.ID
}

// AddPlan seeds a travel plan and returns its id.
func (s *Server) AddPlan(p models.TravelPlan) string {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	s.insert("travel-plans", record{
		"id":          p.ID,
		"name":        p.Name,
		"description": p.Description,
		"country":     p.Country,
		"username":    p.OwnerUsername,
	})
	return p.ID
}

// Fail makes every request for method and path answer with status.
func (s *Server) Fail(method, path string, status int) {
	s.Respond(method, path, status, `{"error":"forced failure"}`)
}

// Respond makes every request for method and path answer with status and body.
func (s *Server) Respond(method, path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[method+" "+path] = override{status: status, body: body}
}

// Reset removes all overrides.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides = map[string]override{}
}

// Requests returns every request received so far, in arrival order.
func (s *Server) Requests() []Request {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.requests)
}

// Plans returns the stored travel plans.
func (s *Server) Plans() []models.TravelPlan {
	var out []models.TravelPlan
	s.decodeAll("travel-plans", &out)
	return out
}

// Users returns the stored accounts without passwords.
func (s *Server) Users() []models.Account {
	var out []models.Account
	s.decodeAll("users", &out)
	return out
}

func (s *Server) decodeAll(collection string, into any) {
	s.mu.RLock()
	b, err := json.Marshal(s.collections[collection])
	s.mu.RUnlock()
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(b, into); err != nil {
		panic(err)
	}
}

func (s *Server) insert(collection string, rec record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], rec)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:    r.Method,
			Path:      r.URL.Path,
			Query:     r.URL.RawQuery,
			RequestID: r.Header.Get("X-Request-ID"),
			Body:      body,
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) intercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.RLock()
		o, ok := s.overrides[r.Method+" "+r.URL.Path]
		s.mu.RUnlock()
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(o.status)
		_, _ = io.WriteString(w, o.body)
	})
}

func (s *Server) collection(w http.ResponseWriter, r *http.Request) (string, bool) {
	name := chi.URLParam(r, "collection")
	s.mu.RLock()
	_, ok := s.collections[name]
	s.mu.RUnlock()
	if !ok {
		http.NotFound(w, r)
	}
	return name, ok
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	name, ok := s.collection(w, r)
	if !ok {
		return
	}
	filters := r.URL.Query()

	s.mu.RLock()
	out := make([]record, 0)
	for _, rec := range s.collections[name] {
		if matches(rec, filters) {
			out = append(out, rec)
		}
	}
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	name, ok := s.collection(w, r)
	if !ok {
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := indexOf(s.collections[name], chi.URLParam(r, "id"))
	if i < 0 {
		writeJSON(w, http.StatusNotFound, record{})
		return
	}
	writeJSON(w, http.StatusOK, s.collections[name][i])
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	name, ok := s.collection(w, r)
	if !ok {
		return
	}
	var rec record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil || rec == nil {
		writeJSON(w, http.StatusBadRequest, record{"error": "invalid body"})
		return
	}
	if _, ok := rec["id"]; !ok {
		rec["id"] = uuid.NewString()
	}
	s.insert(name, rec)
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) replace(w http.ResponseWriter, r *http.Request) {
	name, ok := s.collection(w, r)
	if !ok {
		return
	}
	var rec record
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil || rec == nil {
		writeJSON(w, http.StatusBadRequest, record{"error": "invalid body"})
		return
	}
	id := chi.URLParam(r, "id")
	rec["id"] = id

	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.collections[name], id)
	if i < 0 {
		writeJSON(w, http.StatusNotFound, record{})
		return
	}
	s.collections[name][i] = rec
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	name, ok := s.collection(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := indexOf(s.collections[name], chi.URLParam(r, "id"))
	if i < 0 {
		writeJSON(w, http.StatusNotFound, record{})
		return
	}
	s.collections[name] = slices.Delete(s.collections[name], i, i+1)
	writeJSON(w, http.StatusOK, record{})
}

func matches(rec record, filters map[string][]string) bool {
	for k, vals := range filters {
		v, ok := rec[k]
		if !ok || len(vals) == 0 || fmt.Sprint(v) != vals[0] {
			return false
		}
	}
	return true
}

func indexOf(recs []record, id string) int {
	return slices.IndexFunc(recs, func(rec record) bool { return fmt.Sprint(rec["id"]) == id })
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
