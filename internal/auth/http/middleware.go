package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/allisson/auth/internal/auth/usecase"
	apperrors "github.com/allisson/auth/internal/errors"
	"github.com/allisson/auth/internal/httputil"
)

// authorizationCookie is the cookie checked when no Authorization header is
// present. The swagger login endpoint sets it so browser sessions work.
const authorizationCookie = "Authorization"

// extractBearerToken pulls the bearer credential from the Authorization header
// or, failing that, from an Authorization cookie of the same "Bearer <token>"
// form. The header takes precedence. Returns ("", false) when neither carries
// a well-formed bearer credential.
func extractBearerToken(c *gin.Context) (string, bool) {
	if token, ok := parseBearer(c.GetHeader("Authorization")); ok {
		return token, true
	}
	if cookie, err := c.Cookie(authorizationCookie); err == nil {
		if token, ok := parseBearer(cookie); ok {
			return token, true
		}
	}
	return "", false
}

// parseBearer parses a "Bearer <token>" value (scheme is case-insensitive).
func parseBearer(value string) (string, bool) {
	const bearerPrefix = "bearer "
	if len(value) <= len(bearerPrefix) ||
		!strings.EqualFold(value[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := value[len(bearerPrefix):]
	if token == "" {
		return "", false
	}
	return token, true
}

// RequireScopes guards a route behind token verification and scope checks.
//
// The middleware:
//  1. Extracts the bearer token from the Authorization header or cookie
//  2. Verifies it and checks the required scopes via AuthUseCase.Authorize
//  3. Stores the decoded claims in the request context for handlers
//
// Error handling:
//   - Missing/malformed bearer credential → 401 Unauthorized
//   - Invalid or expired token → 401 Unauthorized
//   - Valid token lacking a required scope → 403 Forbidden
//
// Usage:
//
//	router.GET("/v1/roles",
//	    RequireScopes(authUseCase, logger, authDomain.ScopeRoleRead),
//	    handler)
func RequireScopes(
	authUseCase authUseCase.AuthUseCase,
	logger *slog.Logger,
	scopes ...string,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken, ok := extractBearerToken(c)
		if !ok {
			logger.Debug("authentication failed: missing bearer credential")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		claims, err := authUseCase.Authorize(c.Request.Context(), rawToken, scopes)
		if err != nil {
			logger.Debug("authorization failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithClaims(c.Request.Context(), claims)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authorization successful",
			slog.String("subject", claims.Subject),
			slog.String("user_id", claims.UserID.String()))

		c.Next()
	}
}
