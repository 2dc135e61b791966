package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/threads-backend/internal/config"
	"github.com/deppfellow/threads-backend/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type welcomeMailer interface {
	SendCommunityWelcomeEmail(to, firstName, communityName string) error
}

// InitHandlers builds the dependencies the task handlers need.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.emails = email.NewClient(cfg, logger)
}

// EnqueueCommunityWelcome schedules the welcome email for a new member.
func (j *JobService) EnqueueCommunityWelcome(ctx context.Context, p CommunityWelcomePayload) error {
	task, err := NewCommunityWelcomeTask(p)
	if err != nil {
		return fmt.Errorf("failed to build %s task: %w", TaskCommunityWelcome, err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s task: %w", TaskCommunityWelcome, err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Str("community_id", p.CommunityID).
		Msg("enqueued community welcome email")
	return nil
}

func (j *JobService) handleCommunityWelcomeTask(ctx context.Context, t *asynq.Task) error {
	var p CommunityWelcomePayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// retrying cannot fix a bad payload
		return fmt.Errorf("failed to unmarshal community welcome payload: %v: %w", err, asynq.SkipRetry)
	}

	log := j.logger.With().
		Str("type", TaskCommunityWelcome).
		Str("community_id", p.CommunityID).
		Logger()

	log.Info().Msg("processing community welcome email task")

	if err := j.emails.SendCommunityWelcomeEmail(p.To, p.FirstName, p.CommunityName); err != nil {
		log.Error().Err(err).Msg("failed to send community welcome email")
		return err
	}

	log.Info().Msg("sent community welcome email")
	return nil
}
