// Package rest exposes a small JSON read API over the blog service.
package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/akshay23/spurs-blog-mcp-server/internal/service"
	"github.com/gorilla/mux"
)

// Server represents the REST API server.
type Server struct {
	port   string
	server *http.Server
}

// NewServer creates a REST server over svc.
func NewServer(port string, svc *service.Blog) *Server {
	handler := NewHandler(svc)

	router := mux.NewRouter()

	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/articles", handler.GetArticles).Methods("GET")
	api.HandleFunc("/results", handler.GetGameResults).Methods("GET")
	api.HandleFunc("/players", handler.GetPlayers).Methods("GET")
	api.HandleFunc("/search", handler.SearchArticles).Methods("GET")

	return &Server{
		port: port,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server.
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
