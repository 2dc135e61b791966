// Package router builds the echo instance: the global middleware chain, the
// system routes, the Clerk webhook receiver and the authenticated /api/v1
// group.
package router

import (
	"github.com/deppfellow/threads-backend/internal/handler"
	"github.com/deppfellow/threads-backend/internal/middleware"
	"github.com/deppfellow/threads-backend/internal/server"
	"github.com/deppfellow/threads-backend/internal/service"
	"github.com/labstack/echo/v4"
)

const WebhookClerkPath = "/api/webhook/clerk"

func NewRouter(s *server.Server, h *handler.Handlers, services *service.Services) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.Recover(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.CORS(WebhookClerkPath),
		middlewares.Global.Secure(),
	)

	registerSystemRoutes(router, h)

	// Every method, OPTIONS included, reaches the handler so non-PUT deliveries
	// get the 405 body.
	router.Any(WebhookClerkPath, h.Webhook.ReceiveClerk,
		middlewares.Global.BodyLimit(middleware.WebhookBodyLimit))

	v1 := router.Group("/api/v1",
		middlewares.RateLimit.Limit(),
		middlewares.Auth.RequireAuth,
		middlewares.ContextEnhancer.EnhanceContext(),
	)
	registerThreadRoutes(v1, h)

	return router
}
