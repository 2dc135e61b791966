package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/deppfellow/threads-backend/internal/errs"
	"github.com/deppfellow/threads-backend/internal/lib/webhook"
	"github.com/deppfellow/threads-backend/internal/middleware"
	"github.com/deppfellow/threads-backend/internal/server"
	"github.com/deppfellow/threads-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

const (
	messageMethodNotAllowed = "Method not allowed"
	messageMissingHeaders   = "Missing headers"
	messageInvalidPayload   = "Invalid payload"
)

type WebhookHandler struct {
	Handler
	webhooks *service.WebhookService
}

func NewWebhookHandler(s *server.Server, webhooks *service.WebhookService) *WebhookHandler {
	return &WebhookHandler{
		Handler:  NewHandler(s),
		webhooks: webhooks,
	}
}

func message(c echo.Context, status int, msg string) error {
	return c.JSON(status, errs.MessageResponse{Message: msg})
}

// ReceiveClerk handles a Clerk organization webhook delivery. Only PUT is
// accepted. Nothing is dispatched unless the svix signature verifies.
func (h *WebhookHandler) ReceiveClerk(c echo.Context) error {
	if c.Request().Method != http.MethodPut {
		return message(c, http.StatusMethodNotAllowed, messageMethodNotAllowed)
	}

	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "clerk_webhook").
		Str("svix_id", c.Request().Header.Get(webhook.HeaderID)).
		Logger()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to read webhook body")
		return message(c, http.StatusBadRequest, messageInvalidPayload)
	}

	event, err := h.webhooks.Verify(body, c.Request().Header)
	if err != nil {
		logger.Warn().Err(err).Msg("webhook verification failed")
		h.recordEvent("WebhookVerificationFailed", map[string]any{
			"error_message": err.Error(),
			"ip":            c.RealIP(),
		})

		switch {
		case errors.Is(err, webhook.ErrMissingHeaders):
			return message(c, http.StatusBadRequest, messageMissingHeaders)
		case errors.Is(err, webhook.ErrMalformedPayload):
			return message(c, http.StatusBadRequest, messageInvalidPayload)
		default:
			return message(c, http.StatusBadRequest, err.Error())
		}
	}

	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.AddAttribute("webhook.event_type", string(event.Type()))
	}

	result := h.webhooks.Dispatch(c.Request().Context(), event)

	logger.Info().
		Str("event_type", string(event.Type())).
		Int("status", result.Status).
		Dur("duration", time.Since(start)).
		Msg("webhook processed")

	return message(c, result.Status, result.Message)
}
