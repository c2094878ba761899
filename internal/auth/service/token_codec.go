package service

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/allisson/auth/internal/auth/domain"
)

// tokenClaims is the wire representation of session claims. The layout is
// standard JWT so issued tokens stay interoperable with existing clients.
type tokenClaims struct {
	UserID string   `json:"user_id"`
	RoleID string   `json:"role_id"`
	Scopes []string `json:"scopes"`
	jwt.RegisteredClaims
}

// tokenCodec implements TokenCodec using HMAC-signed JWTs.
type tokenCodec struct {
	secret []byte
	method *jwt.SigningMethodHMAC
}

// NewTokenCodec creates a TokenCodec signing with the given symmetric secret.
// Supported algorithms: HS256 (default), HS384, HS512.
func NewTokenCodec(secret []byte, algorithm string) (TokenCodec, error) {
	var method *jwt.SigningMethodHMAC
	switch algorithm {
	case "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("unsupported signing algorithm: %s", algorithm)
	}

	if len(secret) == 0 {
		return nil, fmt.Errorf("signing secret must not be empty")
	}

	return &tokenCodec{
		secret: secret,
		method: method,
	}, nil
}

// Mint serializes and signs the claims. The signature covers the full claim
// set; the expiry comes from claims.ExpiresAt. Every token gets a fresh v7
// UUID as jti so two logins in the same second still produce distinct
// tokens that can be told apart in logs.
func (t *tokenCodec) Mint(claims *authDomain.Claims) (string, error) {
	wire := tokenClaims{
		UserID: claims.UserID.String(),
		RoleID: claims.RoleID.String(),
		Scopes: claims.Scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.Must(uuid.NewV7()).String(),
			Subject:   claims.Subject,
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
		},
	}

	token, err := jwt.NewWithClaims(t.method, wire).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Parse verifies the token signature and structure and returns the claims.
// Expiry is compared exactly against the current time, no leeway.
func (t *tokenCodec) Parse(token string) (*authDomain.Claims, error) {
	var wire tokenClaims

	_, err := jwt.ParseWithClaims(
		token,
		&wire,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{t.method.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, authDomain.ErrExpiredToken
		}
		return nil, authDomain.ErrInvalidToken
	}

	userID, err := uuid.Parse(wire.UserID)
	if err != nil {
		return nil, authDomain.ErrInvalidToken
	}
	roleID, err := uuid.Parse(wire.RoleID)
	if err != nil {
		return nil, authDomain.ErrInvalidToken
	}

	return &authDomain.Claims{
		Subject:   wire.Subject,
		UserID:    userID,
		RoleID:    roleID,
		Scopes:    wire.Scopes,
		ExpiresAt: wire.ExpiresAt.Time,
	}, nil
}
