package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"readerd/internal/app"
	"readerd/internal/util"
	"readerd/pkg/domain"
)

// readerMissingMsg is the fixed body of every not-found answer.
const readerMissingMsg = "The reader does not exist."

// Config wires required dependencies for the HTTP server.
type Config struct {
	App *app.App
}

// Server exposes HTTP endpoints for the reader service.
type Server struct {
	app *app.App
	mux *http.ServeMux
}

// New constructs the server with routes configured.
func New(cfg Config) (*Server, error) {
	if cfg.App == nil {
		return nil, errors.New("app is required")
	}
	s := &Server{
		app: cfg.App,
		mux: http.NewServeMux(),
	}
	s.routes()
	return s, nil
}

// Router returns the configured handler.
func (s *Server) Router() http.Handler {
	return util.WithRequestID(util.WithRequestLog("reader", util.WithSecurityHeaders(util.WithCORS(s.mux))))
}

func (s *Server) routes() {
	s.mux.HandleFunc("/healthz", s.handleHealth)

	// readers
	s.mux.HandleFunc("/readers", s.handleReaders)
	s.mux.HandleFunc("/readers/", s.handleReaderByID)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReaders(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleCreateReader(w, r)
	case http.MethodGet:
		s.handleListReaders(w)
	default:
		methodNotAllowed(w)
	}
}

// /readers/{id}
func (s *Server) handleReaderByID(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/readers/")
	if path == "" || strings.Contains(path, "/") {
		notFound(w, "not found")
		return
	}
	id, err := strconv.ParseInt(path, 10, 64)
	if err != nil {
		// An id the store cannot hold matches no row.
		notFound(w, readerMissingMsg)
		return
	}
	switch r.Method {
	case http.MethodPatch:
		s.handleUpdateReader(w, r, id)
	case http.MethodDelete:
		s.handleDeleteReader(w, id)
	default:
		methodNotAllowed(w)
	}
}

type createReaderRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *Server) handleCreateReader(w http.ResponseWriter, r *http.Request) {
	var req createReaderRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	reader, err := s.app.CreateReader(req.Name, req.Email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, reader)
}

func (s *Server) handleListReaders(w http.ResponseWriter) {
	readers, err := s.app.ListReaders()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, readers)
}

func (s *Server) handleUpdateReader(w http.ResponseWriter, r *http.Request, id int64) {
	var fields domain.ReaderUpdate
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	count, err := s.app.UpdateReader(id, fields)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if count == 0 {
		notFound(w, readerMissingMsg)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": count})
}

func (s *Server) handleDeleteReader(w http.ResponseWriter, id int64) {
	count, err := s.app.DeleteReader(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if count == 0 {
		notFound(w, readerMissingMsg)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func notFound(w http.ResponseWriter, msg string) {
	writeError(w, http.StatusNotFound, msg)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
