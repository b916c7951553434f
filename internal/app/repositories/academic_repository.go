package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vidyarth/vidyarth-backend/internal/app/models"
	"github.com/vidyarth/vidyarth-backend/internal/pkg/apperrors"
)

// AcademicRepository handles per-student academic, financial and
// library rows. All list queries return rows in insertion order.
type AcademicRepository struct {
	db Querier
}

// NewAcademicRepository creates a new AcademicRepository
func NewAcademicRepository(db Querier) *AcademicRepository {
	return &AcademicRepository{
		db: db,
	}
}

// GetAcademicRecord retrieves the single academic record for a student.
// An authenticated student without one is a hard fault, so the absence
// maps to ErrMissingRecord rather than a zero-valued record.
func (r *AcademicRepository) GetAcademicRecord(ctx context.Context, studentID int64) (*models.AcademicRecord, error) {
	record := &models.AcademicRecord{}
	err := r.db.QueryRow(ctx, `
		SELECT id, student_id, gpa, attendance, pending_fees, books_issued
		FROM academic_records
		WHERE student_id = $1`,
		studentID).Scan(
		&record.ID, &record.StudentID, &record.GPA, &record.Attendance,
		&record.PendingFees, &record.BooksIssued)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewMissingRecordError(fmt.Sprintf("no academic record for student %d", studentID))
		}
		return nil, fmt.Errorf("%w: querying academic record: %v", apperrors.ErrStoreUnavailable, err)
	}

	return record, nil
}

// ListFees retrieves all fee records for a student.
func (r *AcademicRepository) ListFees(ctx context.Context, studentID int64) ([]models.FeeRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, type, amount, paid, due_date
		FROM fee_records
		WHERE student_id = $1
		ORDER BY id`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying fee records: %v", apperrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var fees []models.FeeRecord
	for rows.Next() {
		var fee models.FeeRecord
		if err := rows.Scan(&fee.ID, &fee.StudentID, &fee.Type, &fee.Amount, &fee.Paid, &fee.DueDate); err != nil {
			return nil, fmt.Errorf("error scanning fee row: %w", err)
		}
		fees = append(fees, fee)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading fee rows: %v", apperrors.ErrStoreUnavailable, err)
	}

	return fees, nil
}

// ListLoans retrieves all library loans for a student.
func (r *AcademicRepository) ListLoans(ctx context.Context, studentID int64) ([]models.LibraryLoan, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, title, issued_date, due_date, returned
		FROM library_loans
		WHERE student_id = $1
		ORDER BY id`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying library loans: %v", apperrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var loans []models.LibraryLoan
	for rows.Next() {
		var loan models.LibraryLoan
		if err := rows.Scan(&loan.ID, &loan.StudentID, &loan.Title, &loan.IssuedDate, &loan.DueDate, &loan.Returned); err != nil {
			return nil, fmt.Errorf("error scanning loan row: %w", err)
		}
		loans = append(loans, loan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading loan rows: %v", apperrors.ErrStoreUnavailable, err)
	}

	return loans, nil
}

// ListPerformance retrieves the GPA time series for a student in the
// order the samples were appended.
func (r *AcademicRepository) ListPerformance(ctx context.Context, studentID int64) ([]models.PerformanceSample, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, date, gpa
		FROM performance_samples
		WHERE student_id = $1
		ORDER BY id`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying performance samples: %v", apperrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var samples []models.PerformanceSample
	for rows.Next() {
		var sample models.PerformanceSample
		if err := rows.Scan(&sample.ID, &sample.StudentID, &sample.Date, &sample.GPA); err != nil {
			return nil, fmt.Errorf("error scanning performance row: %w", err)
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading performance rows: %v", apperrors.ErrStoreUnavailable, err)
	}

	return samples, nil
}

// ListAttendance retrieves the attendance time series for a student in
// the order the samples were appended.
func (r *AcademicRepository) ListAttendance(ctx context.Context, studentID int64) ([]models.AttendanceSample, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, student_id, date, percentage
		FROM attendance_samples
		WHERE student_id = $1
		ORDER BY id`,
		studentID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying attendance samples: %v", apperrors.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var samples []models.AttendanceSample
	for rows.Next() {
		var sample models.AttendanceSample
		if err := rows.Scan(&sample.ID, &sample.StudentID, &sample.Date, &sample.Percentage); err != nil {
			return nil, fmt.Errorf("error scanning attendance row: %w", err)
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading attendance rows: %v", apperrors.ErrStoreUnavailable, err)
	}

	return samples, nil
}

// UpsertAcademicRecord inserts or refreshes the academic record for a
// student. Used by the seed routine; the dashboard paths never write.
func (r *AcademicRepository) UpsertAcademicRecord(ctx context.Context, record *models.AcademicRecord) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO academic_records (student_id, gpa, attendance, pending_fees, books_issued)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (student_id) DO UPDATE
			SET gpa = EXCLUDED.gpa, attendance = EXCLUDED.attendance,
			    pending_fees = EXCLUDED.pending_fees, books_issued = EXCLUDED.books_issued
		RETURNING id`,
		record.StudentID, record.GPA, record.Attendance, record.PendingFees, record.BooksIssued).Scan(&record.ID)

	if err != nil {
		return fmt.Errorf("error upserting academic record: %w", err)
	}

	return nil
}

// CreateFee inserts a fee record.
func (r *AcademicRepository) CreateFee(ctx context.Context, fee *models.FeeRecord) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO fee_records (student_id, type, amount, paid, due_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		fee.StudentID, fee.Type, fee.Amount, fee.Paid, fee.DueDate).Scan(&fee.ID)

	if err != nil {
		return fmt.Errorf("error creating fee record: %w", err)
	}

	return nil
}

// CreateLoan inserts a library loan.
func (r *AcademicRepository) CreateLoan(ctx context.Context, loan *models.LibraryLoan) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO library_loans (student_id, title, issued_date, due_date, returned)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		loan.StudentID, loan.Title, loan.IssuedDate, loan.DueDate, loan.Returned).Scan(&loan.ID)

	if err != nil {
		return fmt.Errorf("error creating library loan: %w", err)
	}

	return nil
}

// CreatePerformanceSample appends a GPA sample.
func (r *AcademicRepository) CreatePerformanceSample(ctx context.Context, sample *models.PerformanceSample) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO performance_samples (student_id, date, gpa)
		VALUES ($1, $2, $3)
		RETURNING id`,
		sample.StudentID, sample.Date, sample.GPA).Scan(&sample.ID)

	if err != nil {
		return fmt.Errorf("error creating performance sample: %w", err)
	}

	return nil
}

// CreateAttendanceSample appends an attendance sample.
func (r *AcademicRepository) CreateAttendanceSample(ctx context.Context, sample *models.AttendanceSample) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO attendance_samples (student_id, date, percentage)
		VALUES ($1, $2, $3)
		RETURNING id`,
		sample.StudentID, sample.Date, sample.Percentage).Scan(&sample.ID)

	if err != nil {
		return fmt.Errorf("error creating attendance sample: %w", err)
	}

	return nil
}
