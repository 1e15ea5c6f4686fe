// Package api exposes the draw-odds engine over a JSON HTTP surface.
// Handlers validate caller input at this boundary and reject before
// the engine is invoked; the engine itself never faults on in-domain
// input.
package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tcgtools/topdeck/internal/config"
)

// Server bundles the engine configuration and logger behind the HTTP
// handlers. It holds no per-request state; every computation is a
// pure function of the request payload.
type Server struct {
	cfg    config.EngineConfig
	logger *zap.Logger
}

// NewServer creates a Server with the given engine ceilings.
//
// Precondition: logger must be non-nil; cfg must pass validation.
func NewServer(cfg config.EngineConfig, logger *zap.Logger) *Server {
	return &Server{cfg: cfg, logger: logger}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", s.handleHealth)

	v1 := r.Group("/v1")
	v1.POST("/probability", s.handleProbability)
	v1.POST("/timeline", s.handleTimeline)
	v1.POST("/analysis", s.handleAnalysis)

	return r
}

// requestLogger logs one line per request with outcome fields.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}
