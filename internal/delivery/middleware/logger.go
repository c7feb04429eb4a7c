package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"credkeeper/config"
	deliverycontext "credkeeper/internal/delivery/context"
	"credkeeper/internal/errors"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request when debug is enabled.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.debug {
		return next
	}

	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

// logRequest logs the request line only. Bodies carry credentials and are never logged.
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	status := c.Response().Status

	// The error handler has not run yet, so derive the status it will write.
	if err != nil {
		status = http.StatusInternalServerError

		var httpErr *echo.HTTPError
		var coded interface{ HTTPCode() int }
		switch {
		case errors.As(err, &coded):
			status = coded.HTTPCode()
		case errors.As(err, &httpErr):
			status = httpErr.Code
		}
	}

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if err != nil {
		fields = append(fields, slog.String("error", err.Error()))
	}

	logLevel := slog.LevelInfo
	switch {
	case status >= 500:
		logLevel = slog.LevelError
	case status >= 400:
		logLevel = slog.LevelWarn
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}
