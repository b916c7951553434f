package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vidyarth/vidyarth-backend/internal/app/models"
)

// Querier is the subset of pgx operations the repositories need. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so the same repositories work
// inside and outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// IUserRepository defines the storage operations for identities.
type IUserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetAllByRole(ctx context.Context, role models.RoleType) ([]models.User, error)
	UpsertByUsername(ctx context.Context, user *models.User) (int64, error)
}

// IAcademicRepository defines the storage operations for per-student
// academic, financial and library records.
type IAcademicRepository interface {
	GetAcademicRecord(ctx context.Context, studentID int64) (*models.AcademicRecord, error)
	ListFees(ctx context.Context, studentID int64) ([]models.FeeRecord, error)
	ListLoans(ctx context.Context, studentID int64) ([]models.LibraryLoan, error)
	ListPerformance(ctx context.Context, studentID int64) ([]models.PerformanceSample, error)
	ListAttendance(ctx context.Context, studentID int64) ([]models.AttendanceSample, error)
}

// ICourseworkRepository defines the storage operations for exam and
// assignment records.
type ICourseworkRepository interface {
	ListExams(ctx context.Context) ([]models.ExamRecord, error)
	ListAssignments(ctx context.Context) ([]models.AssignmentRecord, error)
}

// Repositories bundles all repositories over one connection source.
type Repositories struct {
	Users      *UserRepository
	Academic   *AcademicRepository
	Coursework *CourseworkRepository
}

// NewRepositories creates the repository set over a connection pool.
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return newRepositories(pool)
}

// NewTxRepositories creates the repository set over a transaction, for
// callers that need several writes to commit atomically.
func NewTxRepositories(tx pgx.Tx) *Repositories {
	return newRepositories(tx)
}

func newRepositories(q Querier) *Repositories {
	return &Repositories{
		Users:      NewUserRepository(q),
		Academic:   NewAcademicRepository(q),
		Coursework: NewCourseworkRepository(q),
	}
}
