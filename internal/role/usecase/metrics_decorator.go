package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/auth/internal/metrics"
	"github.com/allisson/auth/internal/role/domain"
)

// roleUseCaseWithMetrics decorates the role use case with metrics instrumentation.
type roleUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewRoleUseCaseWithMetrics wraps a role use case with metrics recording.
func NewRoleUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &roleUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (r *roleUseCaseWithMetrics) record(
	ctx context.Context,
	operation string,
	start time.Time,
	err error,
) {
	status := "success"
	if err != nil {
		status = "error"
	}

	r.metrics.RecordOperation(ctx, "role", operation, status)
	r.metrics.RecordDuration(ctx, "role", operation, time.Since(start), status)
}

// Create records metrics for role creation.
func (r *roleUseCaseWithMetrics) Create(
	ctx context.Context,
	input *CreateRoleInput,
) (*domain.Role, error) {
	start := time.Now()
	role, err := r.next.Create(ctx, input)
	r.record(ctx, "create", start, err)
	return role, err
}

// Get records metrics for role retrieval.
func (r *roleUseCaseWithMetrics) Get(ctx context.Context, roleID uuid.UUID) (*domain.Role, error) {
	start := time.Now()
	role, err := r.next.Get(ctx, roleID)
	r.record(ctx, "get", start, err)
	return role, err
}

// GetByName records metrics for role retrieval by name.
func (r *roleUseCaseWithMetrics) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	start := time.Now()
	role, err := r.next.GetByName(ctx, name)
	r.record(ctx, "get_by_name", start, err)
	return role, err
}

// GetAll records metrics for role listing.
func (r *roleUseCaseWithMetrics) GetAll(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Role, error) {
	start := time.Now()
	roles, err := r.next.GetAll(ctx, offset, limit)
	r.record(ctx, "get_all", start, err)
	return roles, err
}

// Update records metrics for role updates.
func (r *roleUseCaseWithMetrics) Update(
	ctx context.Context,
	roleID uuid.UUID,
	input *UpdateRoleInput,
) (*domain.Role, error) {
	start := time.Now()
	role, err := r.next.Update(ctx, roleID, input)
	r.record(ctx, "update", start, err)
	return role, err
}

// Delete records metrics for role deletion.
func (r *roleUseCaseWithMetrics) Delete(ctx context.Context, roleID uuid.UUID) error {
	start := time.Now()
	err := r.next.Delete(ctx, roleID)
	r.record(ctx, "delete", start, err)
	return err
}
