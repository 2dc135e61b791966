package model

import (
	"time"

	"github.com/google/uuid"
)

// Thread is a post. Comments are threads with a ParentID.
type Thread struct {
	ID          uuid.UUID  `json:"id"`
	Text        string     `json:"text"`
	AuthorID    string     `json:"author"`
	CommunityID *string    `json:"community,omitempty"`
	ParentID    *uuid.UUID `json:"parentId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}
