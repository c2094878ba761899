package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/auth/internal/database"
	apperrors "github.com/allisson/auth/internal/errors"
	"github.com/allisson/auth/internal/role/domain"
)

// MySQLRoleRepository implements role persistence for MySQL.
type MySQLRoleRepository struct {
	db *sql.DB
}

// NewMySQLRoleRepository creates a new MySQLRoleRepository.
func NewMySQLRoleRepository(db *sql.DB) *MySQLRoleRepository {
	return &MySQLRoleRepository{db: db}
}

// Create inserts a new role.
func (r *MySQLRoleRepository) Create(ctx context.Context, role *domain.Role) error {
	querier := database.GetTx(ctx, r.db)

	permissions, err := json.Marshal(role.Permissions)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal role permissions")
	}

	query := `INSERT INTO roles (id, name, permissions, created_by, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		role.ID.String(),
		role.Name,
		permissions,
		role.CreatedBy,
		role.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRoleNameTaken
		}
		return apperrors.Wrap(err, "failed to create role")
	}
	return nil
}

// Get retrieves a role by ID.
func (r *MySQLRoleRepository) Get(ctx context.Context, roleID uuid.UUID) (*domain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, permissions, created_by, created_at, updated_by, updated_at
			  FROM roles WHERE id = ?`

	role, err := scanRole(querier.QueryRowContext(ctx, query, roleID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get role by id")
	}
	return role, nil
}

// GetByName retrieves a role by its unique name.
func (r *MySQLRoleRepository) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, permissions, created_by, created_at, updated_by, updated_at
			  FROM roles WHERE name = ?`

	role, err := scanRole(querier.QueryRowContext(ctx, query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get role by name")
	}
	return role, nil
}

// GetAll retrieves roles ordered by creation time with pagination.
func (r *MySQLRoleRepository) GetAll(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, permissions, created_by, created_at, updated_by, updated_at
			  FROM roles ORDER BY created_at LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list roles")
	}
	defer rows.Close()

	var roles []*domain.Role
	for rows.Next() {
		role, err := scanRole(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan role")
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate roles")
	}
	return roles, nil
}

// Update modifies an existing role.
func (r *MySQLRoleRepository) Update(ctx context.Context, role *domain.Role) error {
	querier := database.GetTx(ctx, r.db)

	permissions, err := json.Marshal(role.Permissions)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal role permissions")
	}

	query := `UPDATE roles
			  SET name = ?,
				  permissions = ?,
				  updated_by = ?,
				  updated_at = ?
			  WHERE id = ?`

	_, err = querier.ExecContext(
		ctx,
		query,
		role.Name,
		permissions,
		role.UpdatedBy,
		role.UpdatedAt,
		role.ID.String(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRoleNameTaken
		}
		return apperrors.Wrap(err, "failed to update role")
	}
	return nil
}

// Delete removes a role by ID.
func (r *MySQLRoleRepository) Delete(ctx context.Context, roleID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM roles WHERE id = ?`

	if _, err := querier.ExecContext(ctx, query, roleID.String()); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrRoleInUse
		}
		return apperrors.Wrap(err, "failed to delete role")
	}
	return nil
}
