package domain

import (
	userDomain "github.com/allisson/auth/internal/user/domain"
)

// TokenTypeBearer is the only token type this service issues.
const TokenTypeBearer = "bearer"

// LoginInput contains the credentials presented at the login endpoint.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput is the result of a successful login. User carries the
// authenticated user record with the password hash cleared.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	User        *userDomain.User
}
