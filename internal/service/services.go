// Package service holds the business logic between the handlers and the
// repositories.
package service

import (
	"fmt"

	"github.com/deppfellow/threads-backend/internal/lib/job"
	"github.com/deppfellow/threads-backend/internal/lib/webhook"
	"github.com/deppfellow/threads-backend/internal/repository"
	"github.com/deppfellow/threads-backend/internal/server"
)

type Services struct {
	Auth    *AuthService
	Job     *job.JobService
	Webhook *WebhookService
	Thread  *ThreadService
}

// NewService builds every service. A bad webhook signing secret is a
// configuration error and fails construction.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	verifier, err := webhook.NewVerifier(
		s.Config.Webhook.SigningSecret,
		webhook.WithTolerance(s.Config.Webhook.Tolerance),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid webhook configuration: %w", err)
	}

	var notifier WelcomeNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Auth:    NewAuthService(s.Config.Auth.SecretKey),
		Job:     s.Job,
		Webhook: NewWebhookService(verifier, repos.Community, notifier, s.Logger),
		Thread:  NewThreadService(repos.Thread, repos.Community),
	}, nil
}
