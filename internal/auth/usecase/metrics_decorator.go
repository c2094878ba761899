package usecase

import (
	"context"
	"time"

	authDomain "github.com/allisson/auth/internal/auth/domain"
	"github.com/allisson/auth/internal/metrics"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Login records metrics for login operations.
func (a *authUseCaseWithMetrics) Login(
	ctx context.Context,
	input *authDomain.LoginInput,
) (*authDomain.LoginOutput, error) {
	start := time.Now()
	output, err := a.next.Login(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "login", status)
	a.metrics.RecordDuration(ctx, "auth", "login", time.Since(start), status)

	return output, err
}

// Authorize records metrics for authorization checks.
func (a *authUseCaseWithMetrics) Authorize(
	ctx context.Context,
	rawToken string,
	requiredScopes []string,
) (*authDomain.Claims, error) {
	start := time.Now()
	claims, err := a.next.Authorize(ctx, rawToken, requiredScopes)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "authorize", status)
	a.metrics.RecordDuration(ctx, "auth", "authorize", time.Since(start), status)

	return claims, err
}
