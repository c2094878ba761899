// Package repository implements data persistence for role entities.
//
// Provides PostgreSQL and MySQL implementations with transaction support via
// database.GetTx(). Permissions are stored as a JSON array column.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/auth/internal/database"
	apperrors "github.com/allisson/auth/internal/errors"
	"github.com/allisson/auth/internal/role/domain"
)

// PostgreSQLRoleRepository implements role persistence for PostgreSQL.
type PostgreSQLRoleRepository struct {
	db *sql.DB
}

// NewPostgreSQLRoleRepository creates a new PostgreSQLRoleRepository.
func NewPostgreSQLRoleRepository(db *sql.DB) *PostgreSQLRoleRepository {
	return &PostgreSQLRoleRepository{db: db}
}

// Create inserts a new role.
func (r *PostgreSQLRoleRepository) Create(ctx context.Context, role *domain.Role) error {
	querier := database.GetTx(ctx, r.db)

	permissions, err := json.Marshal(role.Permissions)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal role permissions")
	}

	query := `INSERT INTO roles (id, name, permissions, created_by, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err = querier.ExecContext(
		ctx,
		query,
		role.ID,
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
func (r *PostgreSQLRoleRepository) Get(ctx context.Context, roleID uuid.UUID) (*domain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, permissions, created_by, created_at, updated_by, updated_at
			  FROM roles WHERE id = $1`

	role, err := scanRole(querier.QueryRowContext(ctx, query, roleID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get role by id")
	}
	return role, nil
}

// GetByName retrieves a role by its unique name.
func (r *PostgreSQLRoleRepository) GetByName(ctx context.Context, name string) (*domain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, permissions, created_by, created_at, updated_by, updated_at
			  FROM roles WHERE name = $1`

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
func (r *PostgreSQLRoleRepository) GetAll(
	ctx context.Context,
	offset, limit int,
) ([]*domain.Role, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, permissions, created_by, created_at, updated_by, updated_at
			  FROM roles ORDER BY created_at LIMIT $1 OFFSET $2`

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
func (r *PostgreSQLRoleRepository) Update(ctx context.Context, role *domain.Role) error {
	querier := database.GetTx(ctx, r.db)

	permissions, err := json.Marshal(role.Permissions)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal role permissions")
	}

	query := `UPDATE roles
			  SET name = $1,
				  permissions = $2,
				  updated_by = $3,
				  updated_at = $4
			  WHERE id = $5`

	_, err = querier.ExecContext(
		ctx,
		query,
		role.Name,
		permissions,
		role.UpdatedBy,
		role.UpdatedAt,
		role.ID,
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
func (r *PostgreSQLRoleRepository) Delete(ctx context.Context, roleID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM roles WHERE id = $1`

	if _, err := querier.ExecContext(ctx, query, roleID); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrRoleInUse
		}
		return apperrors.Wrap(err, "failed to delete role")
	}
	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanRole scans a role row including the JSON permissions column.
func scanRole(row rowScanner) (*domain.Role, error) {
	var (
		role        domain.Role
		permissions []byte
		updatedBy   sql.NullString
		updatedAt   sql.NullTime
	)

	err := row.Scan(
		&role.ID,
		&role.Name,
		&permissions,
		&role.CreatedBy,
		&role.CreatedAt,
		&updatedBy,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(permissions, &role.Permissions); err != nil {
		return nil, err
	}
	if updatedBy.Valid {
		role.UpdatedBy = updatedBy.String
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		role.UpdatedAt = &t
	}
	return &role, nil
}

// isUniqueViolation checks if the error is a unique constraint violation for
// either PostgreSQL or MySQL.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate entry")
}

// isForeignKeyViolation checks if the error is a foreign key constraint
// violation for either PostgreSQL or MySQL.
func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint")
}
