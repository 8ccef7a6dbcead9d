package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/existflow/ironplan/internal/logger"
	"github.com/existflow/ironplan/internal/schedule"
	"github.com/existflow/ironplan/internal/store"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// shutdownTimeout bounds how long Run waits for in-flight requests
const shutdownTimeout = 5 * time.Second

// Options tune the server
type Options struct {
	Widget schedule.Config  // Options published with the schedule
	Clock  func() time.Time // Source of "today" for sessions, defaults to time.Now
}

// Server publishes a planning catalog as JSON and hosts selection sessions
// for browser calendar widgets
type Server struct {
	catalog  *store.Catalog
	widget   schedule.Config
	rows     []schedule.Resource
	sessions *registry
	echo     *echo.Echo
}

// New creates a new server over catalog
func New(catalog *store.Catalog, opts Options) *Server {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	s := &Server{
		catalog:  catalog,
		widget:   opts.Widget,
		rows:     schedule.Project(catalog.Employees(), catalog.Tasks()),
		sessions: newRegistry(catalog, opts.Clock),
	}
	s.setupEcho()
	return s
}

func (s *Server) setupEcho() {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(requestLogger)
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.CORS())

	// Health check
	e.GET("/health", s.handleHealth)

	// API v1
	api := e.Group("/api/v1")

	// Read-only catalog
	api.GET("/employees", s.handleEmployees)
	api.GET("/schedule", s.handleSchedule)
	api.GET("/tasks/:id", s.handleTask)
	api.GET("/labels", s.handleLabels)
	api.GET("/dataset", s.handleDataset)

	// Selection sessions
	api.POST("/sessions", s.handleCreateSession)
	sess := api.Group("/sessions/:id")
	sess.Use(s.sessionMiddleware)
	sess.GET("", s.handleGetSession)
	sess.POST("/employee", s.handleSelectEmployee)
	sess.POST("/click", s.handleClick)
	sess.POST("/close", s.handleClose)
	sess.POST("/delete", s.handleDelete)
	sess.POST("/edit", s.handleEdit)
	sess.POST("/add", s.handleAdd)
	sess.POST("/week/previous", s.handlePreviousWeek)
	sess.POST("/week/next", s.handleNextWeek)
	sess.POST("/week/today", s.handleToday)

	s.echo = e
}

// Router returns the HTTP handler
func (s *Server) Router() http.Handler {
	return s.echo
}

// Start starts the server
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Run serves on addr until ctx is done, then drains in-flight requests
func (s *Server) Run(ctx context.Context, addr string) error {
	errc := make(chan error, 1)
	go func() {
		errc <- s.Start(addr)
	}()

	select {
	case err := <-errc:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
