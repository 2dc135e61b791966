package handler

import (
	"github.com/deppfellow/threads-backend/internal/server"
	"github.com/deppfellow/threads-backend/internal/service"
)

type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Webhook *WebhookHandler
	Thread  *ThreadHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Webhook: NewWebhookHandler(s, services.Webhook),
		Thread:  NewThreadHandler(s, services.Thread),
	}
}
