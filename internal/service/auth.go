package service

import (
	"github.com/clerk/clerk-sdk-go/v2"
)

// AuthService configures the Clerk SDK used to verify session tokens on the
// authenticated routes.
type AuthService struct{}

func NewAuthService(secretKey string) *AuthService {
	clerk.SetKey(secretKey)
	return &AuthService{}
}
