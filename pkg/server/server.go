package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/ofx-tools/wsexport/pkg/config"
	"github.com/ofx-tools/wsexport/pkg/export"
	"github.com/ofx-tools/wsexport/pkg/ofx"
	"github.com/ofx-tools/wsexport/pkg/wsclient"
)

// Server fronts the export pipeline for the browser-side integration layer.
// It holds no per-session state: every request carries its own bearer token
// and identity id, and the export runs to completion within the request.
type Server struct {
	cfg config.Config
	srv *http.Server

	// newClient is swapped in tests to point at a fake brokerage API.
	newClient func(cfg config.Config, token, identityID string) export.Client
}

func New(cfg config.Config) *Server {
	s := &Server{
		cfg: cfg,
		newClient: func(cfg config.Config, token, identityID string) export.Client {
			return wsclient.New(cfg, token, identityID)
		},
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Identity-Id"},
		MaxAge:         300,
	}).Handler)
	r.Post("/export", s.handleExport)

	s.srv = &http.Server{Handler: r}
	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// ListenAndServe serves on addr until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	go func() {
		<-ctx.Done()
		_ = s.srv.Shutdown(context.Background())
	}()

	logrus.Infof("export service listening on %s", ln.Addr())
	if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

type exportResponse struct {
	MIMEType  string            `json:"mimeType"`
	Documents map[string][]byte `json:"documents"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleExport runs one export action. The caller supplies the brokerage
// bearer token and identity id; the response maps account id to the document
// bytes (base64 in JSON).
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
		return
	}
	identityID := r.Header.Get("X-Identity-Id")
	if identityID == "" {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing X-Identity-Id header"})
		return
	}

	var scope export.Scope
	if err := json.NewDecoder(r.Body).Decode(&scope); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid scope: %v", err)})
		return
	}

	exporter := export.New(s.newClient(s.cfg, token, identityID), s.cfg)
	docs, err := exporter.Run(r.Context(), scope)
	if err != nil {
		var fetchErr *wsclient.FetchError
		if errors.As(err, &fetchErr) {
			respondJSON(w, http.StatusBadGateway, errorResponse{Error: fetchErr.Error()})
			return
		}
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	respondJSON(w, http.StatusOK, exportResponse{MIMEType: ofx.MIMEType, Documents: docs})
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logrus.Errorf("failed to encode response: %v", err)
	}
}
