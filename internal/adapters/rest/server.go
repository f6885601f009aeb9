package rest

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	core_ports "github.com/stnslvsvnv/ted-scraper/internal/core/port"
)

type Server struct {
	httpServer *http.Server
	logger     core_ports.LoggerPort
}

// NewServer создает и настраивает роутер и HTTP-сервер.
// webDir - каталог с фронтендом: из него отдаются index.html и /static/*.
func NewServer(port string, webDir string, handlers *SearchHandlers, baseLogger core_ports.LoggerPort) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		// фронтенд обычно отдаётся этим же сервисом, но при локальной
		// разработке он живёт на другом порту, поэтому пускаем всех
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Trace-ID"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/search", handlers.HandleSearch)
		r.Get("/notices/{publicationNumber}", handlers.HandleGetNotice)
		r.Get("/health", handlers.HandleHealth)
	})

	// Фронтенд: лендинг и статика. Поисковая логика от них не зависит.
	r.Get("/", serveIndex(webDir))
	staticDir := filepath.Join(webDir, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
		logger: baseLogger,
	}
}

func serveIndex(webDir string) http.HandlerFunc {
	indexPath := filepath.Join(webDir, "index.html")
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := os.Stat(indexPath); err != nil {
			RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
			return
		}
		http.ServeFile(w, r, indexPath)
	}
}

// Start запускает HTTP-сервер
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_ports.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop корректно останавливает сервер
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
