package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/shaling-ai/data-insights/internal/api/handlers"
	"github.com/shaling-ai/data-insights/internal/config"
	"github.com/shaling-ai/data-insights/internal/core"
	"github.com/shaling-ai/data-insights/internal/export"
	"github.com/shaling-ai/data-insights/internal/logging"
)

// Server wraps the HTTP server instance and its handlers.
type Server struct {
	httpServer *http.Server
}

// NewServer builds and wires all routes over the data source.
func NewServer(cfg *config.Config, src core.DataSource) *Server {
	statsHandler := handlers.NewStatsHandler(src)
	userHandler := handlers.NewUserHandler(src)
	sessionHandler := handlers.NewSessionHandler(src)
	exportHandler := handlers.NewExportHandler(src, export.Options{
		MaxUsers:              cfg.SampleUsers,
		MaxSessionsPerUser:    cfg.SampleSessions,
		MaxMessagesPerSession: cfg.SampleMessages,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/healthz", statsHandler.Healthz)

	r.Route("/api", func(api chi.Router) {
		api.Get("/stats", statsHandler.GetStats)
		api.Get("/users", userHandler.ListUsers)
		api.Get("/users/{uuid}", userHandler.GetUser)
		api.Get("/sessions/{uuid}", sessionHandler.GetSession)
		api.Get("/export", exportHandler.GetExport)
	})

	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	return &Server{httpServer: httpSrv}
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	logging.Logger.Infof("HTTP server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Logger.Info("Shutting down HTTP server...")
	return s.httpServer.Shutdown(ctx)
}
