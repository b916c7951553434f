package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/vidyarth/vidyarth-backend/internal/app/models"
	"github.com/vidyarth/vidyarth-backend/internal/pkg/apperrors"
)

type stubRow struct {
	err error
}

func (r stubRow) Scan(_ ...any) error { return r.err }

// stubQuerier returns the configured error from every row scan and
// records whether it was reached at all.
type stubQuerier struct {
	rowErr  error
	queried bool
}

func (q *stubQuerier) Exec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, q.rowErr
}

func (q *stubQuerier) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	return nil, q.rowErr
}

func (q *stubQuerier) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	q.queried = true
	return stubRow{err: q.rowErr}
}

func TestUpsertByUsernameRejectsUnknownRole(t *testing.T) {
	q := &stubQuerier{}
	repo := NewUserRepository(q)

	_, err := repo.UpsertByUsername(context.Background(), &models.User{
		Username: "vidyarth_student",
		Password: "hash",
		Role:     "superuser",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
	assert.False(t, q.queried, "invalid role must be rejected before touching storage")
}

func TestUpsertByUsernameMapsUniqueViolation(t *testing.T) {
	q := &stubQuerier{rowErr: &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}}
	repo := NewUserRepository(q)

	_, err := repo.UpsertByUsername(context.Background(), &models.User{
		Username: "vidyarth_student",
		Password: "hash",
		Role:     models.RoleStudent,
	})

	assert.ErrorIs(t, err, apperrors.ErrUsernameExists)
}

func TestUpsertByUsernameWrapsStoreErrors(t *testing.T) {
	q := &stubQuerier{rowErr: errors.New("connection refused")}
	repo := NewUserRepository(q)

	_, err := repo.UpsertByUsername(context.Background(), &models.User{
		Username: "vidyarth_student",
		Password: "hash",
		Role:     models.RoleStudent,
	})

	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, apperrors.ErrUsernameExists)
}

func TestGetByUsernameNotFound(t *testing.T) {
	q := &stubQuerier{rowErr: pgx.ErrNoRows}
	repo := NewUserRepository(q)

	_, err := repo.GetByUsername(context.Background(), "nobody")

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestGetByIDStoreError(t *testing.T) {
	q := &stubQuerier{rowErr: errors.New("read timeout")}
	repo := NewUserRepository(q)

	_, err := repo.GetByID(context.Background(), 1)

	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}
