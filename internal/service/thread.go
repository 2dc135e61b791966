package service

import (
	"context"
	"strings"

	"github.com/deppfellow/threads-backend/internal/errs"
	"github.com/deppfellow/threads-backend/internal/model"
	"github.com/deppfellow/threads-backend/internal/validation"
	"github.com/google/uuid"
)

type ThreadStore interface {
	CreateThread(ctx context.Context, text, authorID, communityID string) (*model.Thread, error)
	AddComment(ctx context.Context, parentID uuid.UUID, text, authorID string) (*model.Thread, error)
}

type CommunityReader interface {
	GetCommunity(ctx context.Context, id string) (*model.Community, error)
	IsMember(ctx context.Context, communityID, userID string) (bool, error)
}

type ThreadService struct {
	threads     ThreadStore
	communities CommunityReader
}

func NewThreadService(threads ThreadStore, communities CommunityReader) *ThreadService {
	return &ThreadService{threads: threads, communities: communities}
}

// CreateThread posts req as userID. Posting into a community requires
// membership.
func (s *ThreadService) CreateThread(ctx context.Context, userID string, req *validation.ThreadRequest) (*model.Thread, error) {
	if req.AccountID != userID {
		return nil, errs.NewForbiddenError("You can only post as yourself", true)
	}

	communityID := strings.TrimSpace(req.CommunityID)
	if communityID != "" {
		if _, err := s.communities.GetCommunity(ctx, communityID); err != nil {
			return nil, err
		}

		member, err := s.communities.IsMember(ctx, communityID, userID)
		if err != nil {
			return nil, err
		}
		if !member {
			return nil, errs.NewForbiddenError("You are not a member of this community", true)
		}
	}

	return s.threads.CreateThread(ctx, req.Thread, userID, communityID)
}

// AddComment replies to the thread in req as userID.
func (s *ThreadService) AddComment(ctx context.Context, userID string, req *validation.CommentRequest) (*model.Thread, error) {
	parentID, err := uuid.Parse(req.ThreadID)
	if err != nil {
		return nil, errs.NewBadRequestError("Invalid thread id", true, nil, nil, nil)
	}

	return s.threads.AddComment(ctx, parentID, req.Thread, userID)
}
