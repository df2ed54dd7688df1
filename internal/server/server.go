package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/engine"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/generator"
	"github.com/oliv6362/ecommerce-database-benchmark/internal/usecase"
)

type Server struct {
	router   *gin.Engine
	backends *engine.Set
}

// NewServer creates a new server instance
func NewServer(backends *engine.Set) *Server {
	router := gin.Default()

	server := &Server{
		router:   router,
		backends: backends,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
	}

	bench := s.router.Group("/benchmark")
	{
		bench.POST("/seed", s.seed)
		bench.POST("/run", s.run)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	for _, backend := range []*engine.Backend{s.backends.SQL, s.backends.Mongo} {
		if err := backend.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "error",
				"engine": string(backend.Name),
				"error":  "storage engine connection failed",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ecommerce-database-benchmark",
		"version": "0.1.0",
	})
}

// statusFor maps error classes to HTTP status codes. Validation errors and
// unsupported configuration are the caller's fault; everything unclassified
// is a server-side failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, engine.ErrUnknownEngine),
		errors.Is(err, generator.ErrUnknownProfile),
		errors.Is(err, generator.ErrInvalidProfile):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrDomainViolation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
