package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/threads-backend/internal/middleware"
	"github.com/deppfellow/threads-backend/internal/server"
	"github.com/labstack/echo/v4"
)

const (
	CheckDatabase = "database"
	CheckRedis    = "redis"
)

// HealthCheck probes one dependency.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type HealthHandler struct {
	Handler
	checks  []HealthCheck
	timeout time.Duration
}

// NewHealthHandler probes the dependencies listed in
// Observability.HealthChecks.Checks. Unknown names are skipped.
func NewHealthHandler(s *server.Server) *HealthHandler {
	cfg := s.Config.Observability.HealthChecks
	if !cfg.Enabled {
		return NewHealthHandlerWithChecks(s, cfg.Timeout)
	}

	var checks []HealthCheck
	for _, name := range cfg.Checks {
		switch name {
		case CheckDatabase:
			if s.DB != nil {
				checks = append(checks, HealthCheck{Name: name, Check: s.DB.Ping})
			}
		case CheckRedis:
			if s.Redis != nil {
				checks = append(checks, HealthCheck{Name: name, Check: func(ctx context.Context) error {
					return s.Redis.Ping(ctx).Err()
				}})
			}
		default:
			s.Logger.Warn().Str("check", name).Msg("unknown health check, skipping")
		}
	}

	return NewHealthHandlerWithChecks(s, cfg.Timeout, checks...)
}

func NewHealthHandlerWithChecks(s *server.Server, timeout time.Duration, checks ...HealthCheck) *HealthHandler {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HealthHandler{
		Handler: NewHandler(s),
		checks:  checks,
		timeout: timeout,
	}
}

type checkResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]checkResult `json:"checks"`
}

// CheckHealth runs every check and answers 200 when all pass, 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := healthResponse{
		Status:      "healthy",
		Timestamp:   start.UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]checkResult, len(h.checks)),
	}

	for _, check := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
		checkStart := time.Now()
		err := check.Check(ctx)
		elapsed := time.Since(checkStart)
		cancel()

		if err != nil {
			response.Status = "unhealthy"
			response.Checks[check.Name] = checkResult{
				Status:       "unhealthy",
				ResponseTime: elapsed.String(),
				Error:        err.Error(),
			}

			logger.Error().
				Err(err).
				Str("check", check.Name).
				Dur("response_time", elapsed).
				Msg("health check failed")

			h.recordEvent("HealthCheckError", map[string]any{
				"check_type":       check.Name,
				"operation":        "health_check",
				"error_type":       check.Name + "_unhealthy",
				"response_time_ms": elapsed.Milliseconds(),
				"error_message":    err.Error(),
			})
			continue
		}

		response.Checks[check.Name] = checkResult{
			Status:       "healthy",
			ResponseTime: elapsed.String(),
		}
		logger.Debug().
			Str("check", check.Name).
			Dur("response_time", elapsed).
			Msg("health check passed")
	}

	if response.Status != "healthy" {
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}
