package server

import (
	"net/http"
	"time"

	"github.com/existflow/ironplan/internal/logger"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// requestLogger logs each request and its outcome
func requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		req := c.Request()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		res := c.Response()
		fields := []logger.Field{
			logger.F("method", req.Method),
			logger.F("uri", req.RequestURI),
			logger.F("status", res.Status),
			logger.F("size", res.Size),
			logger.F("duration", time.Since(start).String()),
			logger.F("request_id", res.Header().Get(echo.HeaderXRequestID)),
		}
		if res.Status >= http.StatusInternalServerError {
			logger.Error("HTTP Request", fields...)
		} else {
			logger.Info("HTTP Request", fields...)
		}
		return nil
	}
}

// sessionMiddleware resolves the :id path parameter to a live session
func (s *Server) sessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid session id"})
		}
		if !s.sessions.exists(id) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "session not found"})
		}

		c.Set("session_id", id)
		return next(c)
	}
}
