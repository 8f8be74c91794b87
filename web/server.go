// Package web exposes the bond collection over a local HTTP API, with
// notifications pushed to connected browsers over a websocket.
package web

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/etnz/bondbook"
	"github.com/etnz/bondbook/kvstore"
	"github.com/gorilla/mux"
)

// Server serves the collection API. All mutations are serialized behind a
// single mutex: the core model is single user, single action at a time.
type Server struct {
	Router *mux.Router

	opts  bondbook.Options
	hub   *Hub
	notes *bondbook.Center

	mu    sync.Mutex
	col   *bondbook.Collection
	store kvstore.Store
}

// NewServer hydrates the collection from the store and wires the routes.
func NewServer(store kvstore.Store, opts bondbook.Options) *Server {
	hub := NewHub()
	s := &Server{
		Router: mux.NewRouter(),
		opts:   opts,
		hub:    hub,
		notes:  bondbook.NewCenter(bondbook.DefaultLifetime, hub.NotificationPosted, hub.NotificationRemoved),
		col:    bondbook.LoadCollection(store),
		store:  store,
	}

	api := s.Router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/bonds", s.handleList).Methods(http.MethodGet)
	api.HandleFunc("/bonds", s.handleIngest).Methods(http.MethodPost)
	api.HandleFunc("/bonds/{id}", s.handleDelete).Methods(http.MethodDelete)
	api.HandleFunc("/clear", s.handleClear).Methods(http.MethodPost)
	api.HandleFunc("/notifications/{id}", s.handleDismiss).Methods(http.MethodDelete)
	s.Router.HandleFunc("/ws", hub.Handle)
	return s
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("serve addr=%q", addr)
	return http.ListenAndServe(addr, s.Router)
}

// persist writes through after a mutation. The in-memory collection stays
// authoritative when the write fails; the failure is reported once.
func (s *Server) persist() {
	if err := bondbook.SaveCollection(s.store, s.col); err != nil {
		log.Printf("persist-failed err=%q", err)
		s.notes.Post(bondbook.SeverityError, "could not save your collection")
	}
}

type listResponse struct {
	Bonds []bondbook.Identifier `json:"bonds"`
	Total int                   `json:"total"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	resp := listResponse{
		Bonds: s.col.Filter(r.URL.Query().Get("q")),
		Total: s.col.Len(),
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

type ingestRequest struct {
	Input string `json:"input"`
}

type ingestResponse struct {
	bondbook.Outcome
	Message    string `json:"message"`
	Severity   string `json:"severity"`
	ClearInput bool   `json:"clearInput"`
	Total      int    `json:"total"`
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	var req ingestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	outcome := bondbook.Ingest(req.Input, s.col, s.opts)
	if len(outcome.Accepted) > 0 {
		s.col.Insert(outcome.Accepted)
		s.persist()
	}
	total := s.col.Len()
	s.mu.Unlock()

	s.notes.Post(outcome.Severity(), outcome.Message())
	writeJSON(w, http.StatusOK, ingestResponse{
		Outcome:    outcome,
		Message:    outcome.Message(),
		Severity:   outcome.Severity().String(),
		ClearInput: outcome.ClearInput(),
		Total:      total,
	})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := bondbook.Identifier(mux.Vars(r)["id"])

	s.mu.Lock()
	removed := s.col.Delete(id)
	if removed {
		s.persist()
	}
	s.mu.Unlock()

	// Deletion succeeds unconditionally: absence is a no-op, not a failure.
	if removed {
		s.notes.Post(bondbook.SeveritySuccess, "removed bond "+string(id))
	}
	w.WriteHeader(http.StatusNoContent)
}

type clearRequest struct {
	Confirm bool `json:"confirm"`
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	var req clearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.Confirm {
		// The confirmation gate: clearing is never silent.
		http.Error(w, "clear requires confirm=true", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	n := s.col.Len()
	if n > 0 {
		s.col.Clear()
		s.persist()
	}
	s.mu.Unlock()

	if n > 0 {
		s.notes.Post(bondbook.SeverityWarning, "collection cleared")
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDismiss(w http.ResponseWriter, r *http.Request) {
	s.notes.Dismiss(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write-response-failed err=%q", err)
	}
}
