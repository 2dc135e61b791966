package webhook

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// EventType is the Clerk event name carried in the payload's "type" field.
type EventType string

const (
	OrganizationCreatedType EventType = "organization.created"
	OrganizationUpdatedType EventType = "organization.updated"
	OrganizationDeletedType EventType = "organization.deleted"
	InvitationCreatedType   EventType = "organizationInvitation.created"
	MembershipCreatedType   EventType = "organizationMembership.created"
	MembershipDeletedType   EventType = "organizationMembership.deleted"
)

// Event is one of the typed payloads below, or *UnknownEvent.
type Event interface {
	Type() EventType
}

type OrganizationCreated struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	LogoURL   string `json:"logo_url"`
	ImageURL  string `json:"image_url"`
	CreatedBy string `json:"created_by" validate:"required"`
}

func (*OrganizationCreated) Type() EventType { return OrganizationCreatedType }

// Image is the logo, or the generated image when no logo was uploaded.
func (e *OrganizationCreated) Image() string { return firstNonEmpty(e.LogoURL, e.ImageURL) }

type OrganizationUpdated struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	LogoURL  string `json:"logo_url"`
	ImageURL string `json:"image_url"`
}

func (*OrganizationUpdated) Type() EventType { return OrganizationUpdatedType }

// Image is the uploaded logo only. Updates never fall back to the generated
// image, so clearing a logo clears the community image.
func (e *OrganizationUpdated) Image() string { return e.LogoURL }

type OrganizationDeleted struct {
	ID string `json:"id" validate:"required"`
}

func (*OrganizationDeleted) Type() EventType { return OrganizationDeletedType }

type InvitationCreated struct {
	ID             string `json:"id" validate:"required"`
	EmailAddress   string `json:"email_address"`
	OrganizationID string `json:"organization_id"`
	Role           string `json:"role"`
	Status         string `json:"status"`
}

func (*InvitationCreated) Type() EventType { return InvitationCreatedType }

type Organization struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// PublicUserData is the member's public profile. Identifier is the primary
// email address or username.
type PublicUserData struct {
	UserID     string `json:"user_id" validate:"required"`
	Identifier string `json:"identifier"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

type Membership struct {
	ID             string         `json:"id"`
	Role           string         `json:"role"`
	Organization   Organization   `json:"organization"`
	PublicUserData PublicUserData `json:"public_user_data"`
}

type MembershipCreated struct {
	Membership
}

func (*MembershipCreated) Type() EventType { return MembershipCreatedType }

type MembershipDeleted struct {
	Membership
}

func (*MembershipDeleted) Type() EventType { return MembershipDeletedType }

// UnknownEvent carries any event type this service does not act on.
type UnknownEvent struct {
	EventType EventType
	Data      json.RawMessage
}

func (e *UnknownEvent) Type() EventType { return e.EventType }

type envelope struct {
	Type   EventType       `json:"type"`
	Object string          `json:"object"`
	Data   json.RawMessage `json:"data"`
}

var validate = validator.New()

// Decode parses a Clerk webhook body. Failures wrap ErrMalformedPayload.
func Decode(body []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if env.Type == "" {
		return nil, fmt.Errorf("%w: missing event type", ErrMalformedPayload)
	}

	var event Event
	switch env.Type {
	case OrganizationCreatedType:
		event = &OrganizationCreated{}
	case OrganizationUpdatedType:
		event = &OrganizationUpdated{}
	case OrganizationDeletedType:
		event = &OrganizationDeleted{}
	case InvitationCreatedType:
		event = &InvitationCreated{}
	case MembershipCreatedType:
		event = &MembershipCreated{}
	case MembershipDeletedType:
		event = &MembershipDeleted{}
	default:
		return &UnknownEvent{EventType: env.Type, Data: env.Data}, nil
	}

	if len(env.Data) == 0 {
		return nil, fmt.Errorf("%w: %s has no data", ErrMalformedPayload, env.Type)
	}
	if err := json.Unmarshal(env.Data, event); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedPayload, env.Type, err)
	}
	if err := validate.Struct(event); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedPayload, env.Type, err)
	}

	return event, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
