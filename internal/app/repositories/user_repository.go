package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vidyarth/vidyarth-backend/internal/app/models"
	"github.com/vidyarth/vidyarth-backend/internal/pkg/apperrors"
	"github.com/vidyarth/vidyarth-backend/internal/pkg/dberrors"
)

// UserRepository handles identity rows in the users table.
type UserRepository struct {
	db Querier
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// GetByUsername retrieves a user by exact username match.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, username, password, role, created_at, updated_at
		FROM users
		WHERE username = $1`,
		username).Scan(
		&user.ID, &user.Username, &user.Password, &user.Role,
		&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: querying user by username: %v", apperrors.ErrStoreUnavailable, err)
	}

	return user, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, `
		SELECT id, username, password, role, created_at, updated_at
		FROM users
		WHERE id = $1`,
		id).Scan(
		&user.ID, &user.Username, &user.Password, &user.Role,
		&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: querying user by id: %v", apperrors.ErrStoreUnavailable, err)
	}

	return user, nil
}

// GetAllByRole retrieves all users with the given role in insertion order.
func (r *UserRepository) GetAllByRole(ctx context.Context, role models.RoleType) ([]models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, username, password, role, created_at, updated_at
		FROM users
		WHERE role = $1
		ORDER BY id`,
		role)
	if err != nil {
		return nil, fmt.Errorf("%w: querying users by role: %v", apperrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Password, &user.Role,
			&user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading user rows: %v", apperrors.ErrStoreUnavailable, err)
	}

	return users, nil
}

// UpsertByUsername inserts the user or, when the username already
// exists, refreshes its credential. The role is never changed on
// conflict: roles are immutable after creation.
func (r *UserRepository) UpsertByUsername(ctx context.Context, user *models.User) (int64, error) {
	if !user.Role.Valid() {
		return 0, fmt.Errorf("%w: %q", apperrors.ErrInvalidRole, user.Role)
	}

	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (username, password, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO UPDATE
			SET password = EXCLUDED.password, updated_at = CURRENT_TIMESTAMP
		RETURNING id`,
		user.Username, user.Password, user.Role).Scan(&id)

	if err != nil {
		// A unique violation here means a constraint other than the
		// conflict arbiter fired, or a concurrent insert raced us.
		if dberrors.IsUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %s", apperrors.ErrUsernameExists, user.Username)
		}
		return 0, fmt.Errorf("%w: upserting user: %v", apperrors.ErrStoreUnavailable, err)
	}

	user.ID = id
	return id, nil
}
