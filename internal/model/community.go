// Package model holds the records persisted by the repositories.
package model

import "time"

// DefaultCommunityBio is stored for communities created from the identity
// provider, which has no bio field.
const DefaultCommunityBio = "org bio"

// Community mirrors a Clerk organization. ID is the organization id.
type Community struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Image     string    `json:"image"`
	Bio       string    `json:"bio"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Membership struct {
	CommunityID string    `json:"communityId"`
	UserID      string    `json:"userId"`
	JoinedAt    time.Time `json:"joinedAt"`
}
