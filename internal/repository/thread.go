package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/threads-backend/internal/model"
	"github.com/google/uuid"
)

type ThreadRepository struct {
	db DBTX
}

func NewThreadRepository(db DBTX) *ThreadRepository {
	return &ThreadRepository{db: db}
}

// CreateThread stores a top-level thread. communityID may be empty.
func (r *ThreadRepository) CreateThread(ctx context.Context, text, authorID, communityID string) (*model.Thread, error) {
	t := &model.Thread{
		ID:       uuid.New(),
		Text:     text,
		AuthorID: authorID,
	}
	if communityID != "" {
		t.CommunityID = &communityID
	}

	const stmt = `
		INSERT INTO threads (id, text, author_id, community_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	if err := r.db.QueryRow(ctx, stmt, t.ID.String(), t.Text, t.AuthorID, t.CommunityID).Scan(&t.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to create thread: %w", err)
	}
	return t, nil
}

// AddComment stores a reply under parentID. The comment inherits the
// parent's community; an unknown parent is a foreign key violation.
func (r *ThreadRepository) AddComment(ctx context.Context, parentID uuid.UUID, text, authorID string) (*model.Thread, error) {
	t := &model.Thread{
		ID:       uuid.New(),
		Text:     text,
		AuthorID: authorID,
		ParentID: &parentID,
	}

	const stmt = `
		INSERT INTO threads (id, text, author_id, community_id, parent_id)
		SELECT $1::uuid, $2::text, $3::text, p.community_id, ref.id
		FROM (SELECT $4::uuid AS id) AS ref
		LEFT JOIN threads p ON p.id = ref.id
		RETURNING community_id, created_at`

	if err := r.db.QueryRow(ctx, stmt, t.ID.String(), t.Text, t.AuthorID, parentID.String()).Scan(&t.CommunityID, &t.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to add comment to %s: %w", parentID, err)
	}
	return t, nil
}
