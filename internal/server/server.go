// Package server exposes the generator over HTTP: a thin endpoint that
// translates query parameters into one generation run and returns the
// flat tile list.
package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/generation"
	"github.com/MaxwellsDaemon-ca/BurghGen/pkg/spec"
)

// Server is the map generation HTTP server.
type Server struct {
	port        int
	allowOrigin string
}

// New creates a server listening on the given port. allowOrigin, when
// non-empty, is sent back as the CORS allow-origin header.
func New(port int, allowOrigin string) *Server {
	return &Server{
		port:        port,
		allowOrigin: allowOrigin,
	}
}

// Start launches the HTTP server and blocks.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("BurghGen server starting on http://localhost%s", addr)

	return http.ListenAndServe(addr, s.Handler())
}

// Handler returns the route mux, exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /generate", s.handleGenerate)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, err := requestFromQuery(r)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := generation.Generate(req)
	if err != nil {
		httpError(w, http.StatusBadRequest, err.Error())
		return
	}

	if s.allowOrigin != "" {
		w.Header().Set("Access-Control-Allow-Origin", s.allowOrigin)
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result.Tiles); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// requestFromQuery builds a map request from query parameters, applying
// the historical defaults for anything missing.
func requestFromQuery(r *http.Request) (spec.MapRequest, error) {
	req := spec.Default()
	q := r.URL.Query()

	if v := q.Get("type"); v != "" {
		req.Type = v
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return req, fmt.Errorf("invalid seed %q", v)
		}
		req.Seed = seed
	}
	if v := q.Get("width"); v != "" {
		width, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("invalid width %q", v)
		}
		req.Width = width
	}
	if v := q.Get("height"); v != "" {
		height, err := strconv.Atoi(v)
		if err != nil {
			return req, fmt.Errorf("invalid height %q", v)
		}
		req.Height = height
	}

	return req, nil
}

func httpError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
