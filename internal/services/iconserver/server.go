// Package iconserver serves rendered icons over HTTP.
package iconserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/iconkit/internal/icons/provider"
	"github.com/louisbranch/iconkit/internal/icons/render"
	"github.com/louisbranch/iconkit/internal/platform/timeouts"
)

// defaultCacheMaxAge is the Cache-Control max-age for rendered icons.
const defaultCacheMaxAge = time.Hour

// Config defines the inputs for the icon HTTP server.
type Config struct {
	HTTPAddr string
	Registry *provider.Registry
	Defaults render.Defaults
	// CacheMaxAge sets Cache-Control on icon responses. Zero uses the default;
	// negative disables caching.
	CacheMaxAge time.Duration
	// Resources are closed by Server.Close, e.g. the custom icon store.
	Resources []io.Closer
}

// Server hosts the icon HTTP endpoints.
type Server struct {
	httpAddr   string
	handler    *handler
	httpServer *http.Server
	resources  []io.Closer
}

// NewServer validates cfg and builds a server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if cfg.Registry == nil {
		return nil, errors.New("icon registry is required")
	}
	if err := cfg.Defaults.Validate(); err != nil {
		return nil, fmt.Errorf("default style: %w", err)
	}
	maxAge := cfg.CacheMaxAge
	if maxAge == 0 {
		maxAge = defaultCacheMaxAge
	}

	h := &handler{registry: cfg.Registry, defaults: cfg.Defaults, cacheMaxAge: maxAge}
	return &Server{
		httpAddr: httpAddr,
		handler:  h,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           h.routes(),
			ReadHeaderTimeout: timeouts.ReadHeader,
			WriteTimeout:      timeouts.Write,
			IdleTimeout:       timeouts.Idle,
		},
		resources: cfg.Resources,
	}, nil
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("icon server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serveErr := make(chan error, 1)
	log.Printf("icon server listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the resources handed to the server.
func (s *Server) Close() {
	if s == nil {
		return
	}
	for _, resource := range s.resources {
		if resource == nil {
			continue
		}
		if err := resource.Close(); err != nil {
			log.Printf("close icon server resource: %v", err)
		}
	}
	s.resources = nil
}
