package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/decislog/insight/internal/events"
	"github.com/decislog/insight/internal/heuristics"
)

type Server struct {
	router *chi.Mux
	engine *heuristics.Engine
	events *events.Publisher
	port   int
}

// NewServer wires the analyze routes. publisher may be nil when no broker
// is configured; apiToken "" disables bearer auth.
func NewServer(port int, apiToken string, engine *heuristics.Engine, publisher *events.Publisher) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router: router,
		engine: engine,
		events: publisher,
		port:   port,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/insight/status", s.status)

	router.Route("/api/v1/analyze", func(r chi.Router) {
		r.Use(BearerAuthMiddleware(apiToken))
		r.Post("/tags", s.analyzeTags)
		r.Post("/similar", s.analyzeSimilar)
		r.Post("/risk", s.analyzeRisk)
		r.Post("/blindspots", s.analyzeBlindspots)
		r.Post("/assumption", s.analyzeAssumption)
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"service": "insight",
		"engine":  "rule-based",
		"status":  "ok",
	})
}

// BearerAuthMiddleware guards routes with a static bearer token. An empty
// token disables the check.
func BearerAuthMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
				writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid or missing bearer token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// envelope is the conventional response wrapper: {success, data} on
// success, {success:false, error:{message, code}} on failure.
type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *errorBody `json:"error,omitempty"`
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Success: false, Error: &errorBody{Message: message, Code: code}})
}
