package delivery_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"inkwell-blog-service/internal/logger"
)

type Server struct {
	server  *http.Server
	handler http.Handler
	address string
	port    int
	log     *logger.Logger
}

func NewServer(handler http.Handler, address string, port int, log *logger.Logger) *Server {
	return &Server{
		handler: handler,
		address: address,
		port:    port,
		log:     log,
	}
}

func (s *Server) Run() error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.address, s.port),
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  time.Minute,
	}

	s.log.Info("Starting HTTP server", slog.Int("port", s.port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
