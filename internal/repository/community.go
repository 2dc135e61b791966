package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/threads-backend/internal/model"
	"github.com/deppfellow/threads-backend/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const (
	communitiesTable = "communities"
	membersTable     = "community_members"
)

type CommunityRepository struct {
	db DBTX
}

func NewCommunityRepository(db DBTX) *CommunityRepository {
	return &CommunityRepository{db: db}
}

// CreateCommunity inserts a community. A second create for the same id or
// slug fails with a unique violation.
func (r *CommunityRepository) CreateCommunity(ctx context.Context, id, name, slug, image, bio, creatorID string) error {
	const stmt = `
		INSERT INTO communities (id, name, slug, image, bio, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := r.db.Exec(ctx, stmt, id, name, slug, image, bio, creatorID); err != nil {
		return fmt.Errorf("failed to create community %s: %w", id, err)
	}
	return nil
}

func (r *CommunityRepository) GetCommunity(ctx context.Context, id string) (*model.Community, error) {
	const stmt = `
		SELECT id, name, slug, image, bio, created_by, created_at, updated_at
		FROM communities
		WHERE id = $1`

	var c model.Community
	err := r.db.QueryRow(ctx, stmt, id).Scan(
		&c.ID, &c.Name, &c.Slug, &c.Image, &c.Bio, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sqlerr.NotFound(communitiesTable)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get community %s: %w", id, err)
	}
	return &c, nil
}

func (r *CommunityRepository) UpdateCommunityInfo(ctx context.Context, id, name, slug, image string) error {
	const stmt = `
		UPDATE communities
		SET name = $2, slug = $3, image = $4, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, stmt, id, name, slug, image)
	if err != nil {
		return fmt.Errorf("failed to update community %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return sqlerr.NotFound(communitiesTable)
	}
	return nil
}

// DeleteCommunity removes the community; memberships and threads go with it.
func (r *CommunityRepository) DeleteCommunity(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM communities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete community %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return sqlerr.NotFound(communitiesTable)
	}
	return nil
}

// AddMemberToCommunity is a no-op when the membership already exists. An
// unknown community is a foreign key violation.
func (r *CommunityRepository) AddMemberToCommunity(ctx context.Context, communityID, userID string) error {
	const stmt = `
		INSERT INTO community_members (community_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (community_id, user_id) DO NOTHING`

	if _, err := r.db.Exec(ctx, stmt, communityID, userID); err != nil {
		return fmt.Errorf("failed to add %s to community %s: %w", userID, communityID, err)
	}
	return nil
}

func (r *CommunityRepository) RemoveUserFromCommunity(ctx context.Context, userID, communityID string) error {
	const stmt = `DELETE FROM community_members WHERE community_id = $1 AND user_id = $2`

	tag, err := r.db.Exec(ctx, stmt, communityID, userID)
	if err != nil {
		return fmt.Errorf("failed to remove %s from community %s: %w", userID, communityID, err)
	}
	if tag.RowsAffected() == 0 {
		return sqlerr.NotFound(membersTable)
	}
	return nil
}

func (r *CommunityRepository) IsMember(ctx context.Context, communityID, userID string) (bool, error) {
	const stmt = `SELECT EXISTS (SELECT 1 FROM community_members WHERE community_id = $1 AND user_id = $2)`

	var ok bool
	if err := r.db.QueryRow(ctx, stmt, communityID, userID).Scan(&ok); err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return ok, nil
}
