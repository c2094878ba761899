package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/auth/internal/metrics"
	"github.com/allisson/auth/internal/user/domain"
)

// userUseCaseWithMetrics decorates the user use case with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a user use case with metrics recording.
func NewUserUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *userUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", operation, status)
	u.metrics.RecordDuration(ctx, "user", operation, time.Since(start), status)
}

// Create records metrics for user creation.
func (u *userUseCaseWithMetrics) Create(
	ctx context.Context,
	input *CreateUserInput,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Create(ctx, input)
	u.record(ctx, "create", start, err)
	return user, err
}

// Get records metrics for user retrieval.
func (u *userUseCaseWithMetrics) Get(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Get(ctx, userID)
	u.record(ctx, "get", start, err)
	return user, err
}

// GetByUsername records metrics for user retrieval by username.
func (u *userUseCaseWithMetrics) GetByUsername(
	ctx context.Context,
	username string,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.GetByUsername(ctx, username)
	u.record(ctx, "get_by_username", start, err)
	return user, err
}

// GetAll records metrics for user listing.
func (u *userUseCaseWithMetrics) GetAll(
	ctx context.Context,
	offset, limit int,
) ([]*domain.User, error) {
	start := time.Now()
	users, err := u.next.GetAll(ctx, offset, limit)
	u.record(ctx, "get_all", start, err)
	return users, err
}

// Update records metrics for user updates.
func (u *userUseCaseWithMetrics) Update(
	ctx context.Context,
	userID uuid.UUID,
	input *UpdateUserInput,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Update(ctx, userID, input)
	u.record(ctx, "update", start, err)
	return user, err
}

// Delete records metrics for user deletion.
func (u *userUseCaseWithMetrics) Delete(ctx context.Context, userID uuid.UUID) error {
	start := time.Now()
	err := u.next.Delete(ctx, userID)
	u.record(ctx, "delete", start, err)
	return err
}
