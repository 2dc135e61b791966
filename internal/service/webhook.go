package service

import (
	"context"
	"net/http"

	"github.com/deppfellow/threads-backend/internal/lib/job"
	"github.com/deppfellow/threads-backend/internal/lib/webhook"
	"github.com/deppfellow/threads-backend/internal/model"
	"github.com/rs/zerolog"
)

// StatusMembershipFailed is the failure status of the membership-created
// branch. It is inconsistent with the 500 every other branch returns and is
// kept as is.
const StatusMembershipFailed = 505

const (
	MessageCommunityCreated   = "Community created"
	MessageInvitationCreated  = "Invitation created"
	MessageInvitationAccepted = "Invitation accepted"
	MessageMemberRemoved      = "Member removed"
	MessageCommunityUpdated   = "Community updated"
	MessageCommunityDeleted   = "Community deleted"
	MessageEventIgnored       = "Event ignored"
	MessageInternalError      = "Internal Server Error"
)

// CommunityMutator is the store the dispatcher writes to.
type CommunityMutator interface {
	CreateCommunity(ctx context.Context, id, name, slug, image, bio, creatorID string) error
	UpdateCommunityInfo(ctx context.Context, id, name, slug, image string) error
	DeleteCommunity(ctx context.Context, id string) error
	AddMemberToCommunity(ctx context.Context, communityID, userID string) error
	RemoveUserFromCommunity(ctx context.Context, userID, communityID string) error
}

// WelcomeNotifier schedules the welcome email for a new member.
type WelcomeNotifier interface {
	EnqueueCommunityWelcome(ctx context.Context, p job.CommunityWelcomePayload) error
}

// Result is the status and message written back to the webhook caller.
type Result struct {
	Status  int
	Message string
}

type WebhookService struct {
	verifier *webhook.Verifier
	store    CommunityMutator
	notifier WelcomeNotifier
	logger   *zerolog.Logger
}

// NewWebhookService wires the dispatcher. notifier may be nil.
func NewWebhookService(verifier *webhook.Verifier, store CommunityMutator, notifier WelcomeNotifier, logger *zerolog.Logger) *WebhookService {
	return &WebhookService{
		verifier: verifier,
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Verify authenticates a delivery and decodes its event.
func (s *WebhookService) Verify(body []byte, headers http.Header) (webhook.Event, error) {
	return s.verifier.Verify(body, headers)
}

// Dispatch applies exactly one community mutation for event. Mutation errors
// are logged and reported as a failure Result; they are never returned.
func (s *WebhookService) Dispatch(ctx context.Context, event webhook.Event) Result {
	log := s.log(ctx).With().Str("event_type", string(event.Type())).Logger()

	switch e := event.(type) {
	case *webhook.OrganizationCreated:
		err := s.store.CreateCommunity(ctx, e.ID, e.Name, e.Slug, e.Image(), model.DefaultCommunityBio, e.CreatedBy)
		return s.result(&log, err, http.StatusCreated, MessageCommunityCreated, http.StatusInternalServerError)

	case *webhook.InvitationCreated:
		log.Info().
			Str("invitation_id", e.ID).
			Str("organization_id", e.OrganizationID).
			Str("role", e.Role).
			Str("status", e.Status).
			Msg("invitation created")
		return Result{Status: http.StatusCreated, Message: MessageInvitationCreated}

	case *webhook.MembershipCreated:
		err := s.store.AddMemberToCommunity(ctx, e.Organization.ID, e.PublicUserData.UserID)
		if err == nil {
			s.notifyMemberJoined(ctx, &log, e)
		}
		return s.result(&log, err, http.StatusCreated, MessageInvitationAccepted, StatusMembershipFailed)

	case *webhook.MembershipDeleted:
		err := s.store.RemoveUserFromCommunity(ctx, e.PublicUserData.UserID, e.Organization.ID)
		return s.result(&log, err, http.StatusCreated, MessageMemberRemoved, http.StatusInternalServerError)

	case *webhook.OrganizationUpdated:
		err := s.store.UpdateCommunityInfo(ctx, e.ID, e.Name, e.Slug, e.Image())
		return s.result(&log, err, http.StatusCreated, MessageCommunityUpdated, http.StatusInternalServerError)

	case *webhook.OrganizationDeleted:
		err := s.store.DeleteCommunity(ctx, e.ID)
		return s.result(&log, err, http.StatusCreated, MessageCommunityDeleted, http.StatusInternalServerError)

	default:
		log.Debug().Msg("ignoring webhook event")
		return Result{Status: http.StatusOK, Message: MessageEventIgnored}
	}
}

func (s *WebhookService) result(log *zerolog.Logger, err error, okStatus int, okMessage string, failStatus int) Result {
	if err != nil {
		log.Error().Err(err).Int("status", failStatus).Msg("webhook mutation failed")
		return Result{Status: failStatus, Message: MessageInternalError}
	}
	log.Info().Int("status", okStatus).Msg(okMessage)
	return Result{Status: okStatus, Message: okMessage}
}

// notifyMemberJoined enqueues the welcome email. Failures only get logged.
func (s *WebhookService) notifyMemberJoined(ctx context.Context, log *zerolog.Logger, e *webhook.MembershipCreated) {
	if s.notifier == nil || e.PublicUserData.Identifier == "" {
		return
	}

	err := s.notifier.EnqueueCommunityWelcome(ctx, job.CommunityWelcomePayload{
		To:            e.PublicUserData.Identifier,
		FirstName:     e.PublicUserData.FirstName,
		CommunityID:   e.Organization.ID,
		CommunityName: e.Organization.Name,
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to enqueue community welcome email")
	}
}

// log prefers the request-scoped logger set by the context middleware.
func (s *WebhookService) log(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.logger
}
