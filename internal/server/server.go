package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/cipherpipe-go/internal/config"
	"github.com/cipherpipe-go/internal/handler"
)

// Server exposes the cipher toolkit over HTTP
type Server struct {
	cfg        *config.Config
	engine     *gin.Engine
	httpServer *http.Server
}

// New creates a server instance with the pipeline assembled from config
func New(cfg *config.Config) (*Server, error) {
	pipe, err := cfg.BuildPipeline()
	if err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(TraceMiddleware())
	engine.Use(LoggerMiddleware())
	engine.Use(CORSMiddleware())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	s := &Server{cfg: cfg, engine: engine}

	api := handler.New(pipe)
	s.engine.GET("/health", api.Health)
	group := s.engine.Group("/api")
	group.POST("/encode", api.Encode)
	group.POST("/decode", api.Decode)
	group.GET("/stages", api.Stages)
	group.GET("/kinds", api.Kinds)

	return s, nil
}

// Start starts the HTTP server and blocks until it exits
func (s *Server) Start() error {
	addr := s.cfg.ListenAddr()
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Info().Str("addr", addr).Msg("Starting HTTP server")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
