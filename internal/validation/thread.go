package validation

import "strings"

// ThreadRequest is the form submitted when posting a thread.
type ThreadRequest struct {
	Thread      string `json:"thread" validate:"min=3"`
	AccountID   string `json:"accountId" validate:"required"`
	CommunityID string `json:"communityId,omitempty"`
}

func (r *ThreadRequest) Validate() error {
	if err := Struct(r); err != nil {
		return err
	}
	// A whitespace-only account id passes "required".
	if strings.TrimSpace(r.AccountID) == "" {
		return CustomValidationErrors{{Field: "accountId", Message: "is required"}}
	}
	return nil
}

// CommentRequest is the form submitted when replying to a thread. ThreadID
// comes from the path.
type CommentRequest struct {
	ThreadID string `param:"threadId" json:"-" validate:"required,uuid"`
	Thread   string `json:"thread" validate:"min=3"`
}

func (r *CommentRequest) Validate() error {
	return Struct(r)
}
