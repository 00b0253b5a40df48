package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"tripweaver/internal/app/session"
	"tripweaver/internal/pkg/config"
)

// Server holds the dependencies for the HTTP server
type Server struct {
	cfg      *config.Config
	logger   *zap.Logger
	sessions *session.Store
	router   http.Handler
}

// New creates a new Server instance with all dependencies
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		sessions: session.NewStore(cfg.Session.TTL, logger),
	}

	if cfg.Gemini.APIKey == "" {
		// Boot still succeeds; each submission fails fast with a
		// configuration error until the key is supplied.
		logger.Warn("GEMINI_API_KEY is not set; plan generation will fail until it is configured")
	}

	return s, nil
}

// HTTPServer creates and configures the HTTP server
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         ":" + s.cfg.ServerPort,
		Handler:      s.router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 2 * time.Minute,
	}
}

// SetRouter sets the HTTP router/handler
func (s *Server) SetRouter(router http.Handler) {
	s.router = router
}

// Sessions returns the session store
func (s *Server) Sessions() *session.Store {
	return s.sessions
}

// GetLogger returns the logger instance
func (s *Server) GetLogger() *zap.Logger {
	return s.logger
}

// GetConfig returns the configuration
func (s *Server) GetConfig() *config.Config {
	return s.cfg
}
