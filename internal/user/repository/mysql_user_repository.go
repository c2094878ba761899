package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/auth/internal/database"
	apperrors "github.com/allisson/auth/internal/errors"
	"github.com/allisson/auth/internal/user/domain"
)

// MySQLUserRepository implements user persistence for MySQL.
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

// Create inserts a new user.
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, username, name, role_id, password, created_by, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.ID.String(),
		user.Username,
		user.Name,
		user.RoleID.String(),
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
func (r *MySQLUserRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, name, role_id, password, created_by, created_at, updated_by, updated_at
			  FROM users WHERE id = ?`

	user, err := scanUser(querier.QueryRowContext(ctx, query, userID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by id")
	}
	return user, nil
}

// GetByUsername retrieves a user by username.
func (r *MySQLUserRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, name, role_id, password, created_by, created_at, updated_by, updated_at
			  FROM users WHERE username = ?`

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
func (r *MySQLUserRepository) GetAll(
	ctx context.Context,
	offset, limit int,
) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, username, name, role_id, password, created_by, created_at, updated_by, updated_at
			  FROM users ORDER BY created_at LIMIT ? OFFSET ?`

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
func (r *MySQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users
			  SET username = ?,
				  name = ?,
				  role_id = ?,
				  password = ?,
				  updated_by = ?,
				  updated_at = ?
			  WHERE id = ?`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.Username,
		user.Name,
		user.RoleID.String(),
		user.Password,
		user.UpdatedBy,
		user.UpdatedAt,
		user.ID.String(),
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
func (r *MySQLUserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM users WHERE id = ?`

	if _, err := querier.ExecContext(ctx, query, userID.String()); err != nil {
		return apperrors.Wrap(err, "failed to delete user")
	}
	return nil
}
