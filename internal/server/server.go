// Package server exposes the roadmap requester over a small JSON HTTP API.
// It is stateless: every request makes its own provider call.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/josephgoksu/roadmapper/internal/logger"
	"github.com/josephgoksu/roadmapper/internal/roadmap"
)

// Generator abstracts the roadmap requester.
type Generator interface {
	Request(ctx context.Context, topic string) (*roadmap.Roadmap, error)
}

// Options configures a Server.
type Options struct {
	Port           int
	AllowedOrigins []string
	Generator      Generator
	Logger         *logger.Logger

	// Reported by /api/info.
	Version  string
	Provider string
	Model    string
}

type Server struct {
	gen     Generator
	log     *logger.Logger
	port    int
	info    InfoResponse
	origins []string
	engine  *gin.Engine
	server  *http.Server
}

func New(opts Options) (*Server, error) {
	if opts.Generator == nil {
		return nil, errors.New("server needs a roadmap generator")
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	s := &Server{
		gen:     opts.Generator,
		log:     opts.Logger,
		port:    opts.Port,
		origins: opts.AllowedOrigins,
		info: InfoResponse{
			Version:  opts.Version,
			Provider: opts.Provider,
			Model:    opts.Model,
		},
	}
	s.engine = s.registerRoutes()

	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Handler returns the routed gin engine.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Addr is the listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

func (s *Server) Start(wg *sync.WaitGroup, errChan chan<- error) {
	wg.Add(1)
	go func() {
		defer wg.Done()

		s.log.Info("API server listening", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("API server error: %w", err)
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
