// Package repository implements data persistence for user entities.
//
// Provides PostgreSQL and MySQL implementations with transaction support via
// database.GetTx().
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/auth/internal/database"
	apperrors "github.com/allisson/auth/internal/errors"
	"github.com/allisson/auth/internal/user/domain"
)

// PostgreSQLUserRepository implements user persistence for PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQLUserRepository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}

// Create inserts a new user.
func (r *PostgreSQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, username, name, role_id, password, created_by, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.ID,
		user.Username,
		user.Name,
		user.RoleID,
		user.Password,
		user.CreatedBy,
		user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// Get retrieves a user by ID.
func (r *PostgreSQLUserRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, name, role_id, password, created_by, created_at, updated_by, updated_at
			  FROM users WHERE id = $1`

	user, err := scanUser(querier.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by id")
	}
	return user, nil
}

// GetByUsername retrieves a user by username.
func (r *PostgreSQLUserRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, name, role_id, password, created_by, created_at, updated_by, updated_at
			  FROM users WHERE username = $1`

	user, err := scanUser(querier.QueryRowContext(ctx, query, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by username")
	}
	return user, nil
}

// GetAll retrieves users ordered by creation time with pagination.
func (r *PostgreSQLUserRepository) GetAll(
	ctx context.Context,
	offset, limit int,
) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, name, role_id, password, created_by, created_at, updated_by, updated_at
			  FROM users ORDER BY created_at LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user")
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate users")
	}
	return users, nil
}

// Update modifies an existing user.
func (r *PostgreSQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users
			  SET username = $1,
				  name = $2,
				  role_id = $3,
				  password = $4,
				  updated_by = $5,
				  updated_at = $6
			  WHERE id = $7`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.Username,
		user.Name,
		user.RoleID,
		user.Password,
		user.UpdatedBy,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return apperrors.Wrap(err, "failed to update user")
	}
	return nil
}

// Delete removes a user by ID.
func (r *PostgreSQLUserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM users WHERE id = $1`

	if _, err := querier.ExecContext(ctx, query, userID); err != nil {
		return apperrors.Wrap(err, "failed to delete user")
	}
	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanUser scans a user row including nullable update audit columns.
func scanUser(row rowScanner) (*domain.User, error) {
	var (
		user      domain.User
		updatedBy sql.NullString
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Name,
		&user.RoleID,
		&user.Password,
		&user.CreatedBy,
		&user.CreatedAt,
		&updatedBy,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if updatedBy.Valid {
		user.UpdatedBy = updatedBy.String
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		user.UpdatedAt = &t
	}
	return &user, nil
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
