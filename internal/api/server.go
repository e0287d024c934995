package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/stepgraph/internal/config"
	"github.com/katalvlaran/stepgraph/internal/engine"
	"github.com/katalvlaran/stepgraph/internal/metrics"
)

// NewRouter wires middleware and routes. m may be nil, in which case
// /metrics is not registered.
func NewRouter(eng *engine.Engine, cfg config.ServerConfig, logger *log.Logger, m *metrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog(logger, m), cors(cfg.CORSOrigins))

	h := &handlers{eng: eng}
	r.GET("/healthz", h.health)
	r.POST("/run-algorithm", rateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst), h.runAlgorithm)
	if m != nil {
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}

	return r
}

// Server is an http.Server that shuts down when its context is cancelled.
type Server struct {
	srv             *http.Server
	log             *log.Logger
	shutdownTimeout time.Duration
}

// NewServer binds handler to cfg.Addr.
func NewServer(handler http.Handler, cfg config.ServerConfig, logger *log.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              cfg.Addr,
			Handler:           handler,
			ReadHeaderTimeout: time.Duration(cfg.ReadTimeoutSec) * time.Second,
			ReadTimeout:       time.Duration(cfg.ReadTimeoutSec) * time.Second,
		},
		log:             logger,
		shutdownTimeout: time.Duration(cfg.ShutdownTimeoutSec) * time.Second,
	}
}

// ListenAndServe listens on the configured address and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("api: listen %s: %w", s.srv.Addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then drains in-flight
// requests for at most the shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("HTTP server listening on %s", ln.Addr())
		errCh <- s.srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Infof("Shutting down HTTP server (timeout %s)", s.shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("api: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
