package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/bagdasarian/timetrack/internal/auth"
	"github.com/bagdasarian/timetrack/internal/config"
	"github.com/bagdasarian/timetrack/internal/handler"
)

type Server struct {
	handler *handler.Handler
	server  *http.Server
	logger  *slog.Logger
}

func NewServer(h *handler.Handler, tokens *auth.TokenIssuer, cfg config.ServerConfig, logger *slog.Logger) *Server {
	return &Server{
		handler: h,
		logger:  logger,
		server: &http.Server{
			Addr:         cfg.Address(),
			Handler:      NewRouter(h, tokens, logger),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// NewRouter собирает mux и middleware; Metrics должен оставаться последним
func NewRouter(h *handler.Handler, tokens *auth.TokenIssuer, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	SetupRoutes(mux, h)

	return Chain(
		RequestID,
		Logger(logger),
		Recovery(logger),
		auth.Middleware(tokens),
		Metrics,
	)(mux)
}

func (s *Server) Start() error {
	s.logger.Info("server starting", slog.String("addr", s.server.Addr))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
